package cmd

import (
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"tripval/trip"
)

var inputPath string
var outputPath string

// NamedInput pairs a trip label from the CSV with its raw field values.
type NamedInput struct {
	Name string
	Raw  trip.RawInput
}

func calcCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "calc",
		Short:   "accept two CSV file paths",
		Long:    `accept two CSV file paths, one for input and one for output. It will read trip rows from the input CSV, validate each row, and write the value breakdown for every trip to the output CSV.`,
		Example: `tripval calc --input trips.csv --output values.csv`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if inputPath == "" || outputPath == "" {
				return cmd.Help()
			}

			// read the input CSV file
			inputFile, err := os.Open(inputPath)
			if err != nil {
				return err
			}
			defer func(inputFile *os.File) {
				err := inputFile.Close()
				if err != nil {
					log.Fatalf("Failed to close input file: %v", err)
				}
			}(inputFile)

			csvContent, err := csv.NewReader(inputFile).ReadAll()
			if err != nil {
				return err
			}

			inputs, err := ParseCSVToRawInputs(csvContent)
			if err != nil {
				return fmt.Errorf("failed to parse CSV: %w", err)
			}
			if len(inputs) == 0 {
				return fmt.Errorf("no trip rows found in the CSV")
			}

			results, rowErrs := calculateAll(inputs)
			if len(rowErrs) > 0 {
				return fmt.Errorf("invalid trip rows:\n%s", strings.Join(rowErrs, "\n"))
			}

			// write the results to the output CSV file
			outputFile, err := os.Create(outputPath)
			if err != nil {
				return err
			}
			defer func(outputFile *os.File) {
				err := outputFile.Close()
				if err != nil {
					log.Fatalf("Failed to close output file: %v", err)
				}
			}(outputFile)

			if err := WriteResultsCSV(outputFile, inputs, results); err != nil {
				return fmt.Errorf("failed to write results: %w", err)
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&inputPath, "input", "i", "", "csv input file path (required)")
	err := cmd.MarkFlagRequired("input")
	if err != nil {
		log.Fatal(err)
		return nil
	}
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "csv output file path (required)")
	err = cmd.MarkFlagRequired("output")
	if err != nil {
		log.Fatal(err)
		return nil
	}

	return cmd
}

// csvColumns is the expected input header:
// name,international,seniorityYears,tafb,hourlyRate,credit,position,regional,nightPayHours,aircraft,hoursInWidebody
const csvColumns = 11

// ParseCSVToRawInputs parses CSV content into named raw trip inputs.
// Numeric columns stay as strings; coercion belongs to trip.Validate.
func ParseCSVToRawInputs(csvContent [][]string) ([]NamedInput, error) {
	if len(csvContent) == 0 {
		return nil, fmt.Errorf("CSV is empty")
	}

	// skip the header row
	dataRows := csvContent[1:]

	var inputs []NamedInput
	for i, row := range dataRows {
		if len(row) != csvColumns {
			return nil, fmt.Errorf("row %d: expected %d columns, but got %d", i+2, csvColumns, len(row)) // +2 to account for the header row
		}

		international, err := strconv.ParseBool(strings.TrimSpace(row[1]))
		if err != nil {
			return nil, fmt.Errorf("row %d: failed to convert international '%s' to bool: %w", i+2, row[1], err)
		}
		regional, err := strconv.ParseBool(strings.TrimSpace(row[7]))
		if err != nil {
			return nil, fmt.Errorf("row %d: failed to convert regional '%s' to bool: %w", i+2, row[7], err)
		}

		inputs = append(inputs, NamedInput{
			Name: strings.TrimSpace(row[0]),
			Raw: trip.RawInput{
				InternationalTrip:     international,
				SeniorityYears:        row[2],
				TAFB:                  row[3],
				HourlyRate:            row[4],
				Credit:                row[5],
				Position:              row[6],
				IsRegionalDestination: regional,
				NightPayHours:         row[8],
				Aircraft:              row[9],
				HoursInWidebody:       row[10],
			},
		})
	}

	return inputs, nil
}

// calculateAll validates and calculates every row. Field errors are
// accumulated per row and reported all together, so one pass over the file
// surfaces every problem.
func calculateAll(inputs []NamedInput) ([]trip.TripResult, []string) {
	results := make([]trip.TripResult, 0, len(inputs))
	var rowErrs []string
	for i, named := range inputs {
		in, errs := trip.Validate(named.Raw)
		if errs != nil {
			rowErrs = append(rowErrs, fmt.Sprintf("row %d (%s): %s", i+2, named.Name, errs.Error()))
			results = append(results, trip.TripResult{})
			continue
		}
		results = append(results, trip.Calculate(in))
	}
	return results, rowErrs
}

// WriteResultsCSV writes one breakdown row per trip, amounts formatted to
// cents. Rounding happens here only; the calculator stays exact.
func WriteResultsCSV(w io.Writer, inputs []NamedInput, results []trip.TripResult) error {
	writer := csv.NewWriter(w)
	defer writer.Flush()

	header := []string{"name", "perdiem", "perdiemValue", "positionCredit", "internationalCredit", "nightPayCredit", "baseValue", "totalTripValue"}
	if err := writer.Write(header); err != nil {
		return err
	}

	for i, res := range results {
		row := []string{
			inputs[i].Name,
			fmt.Sprintf("%.2f", res.Perdiem),
			fmt.Sprintf("%.2f", res.PerdiemValue),
			fmt.Sprintf("%.2f", res.PositionCredit),
			fmt.Sprintf("%.2f", res.InternationalCredit),
			fmt.Sprintf("%.2f", res.NightPayCredit),
			fmt.Sprintf("%.2f", res.BaseValue),
			fmt.Sprintf("%.2f", res.TotalTripValue),
		}
		if err := writer.Write(row); err != nil {
			return err
		}
	}

	return writer.Error()
}
