package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tripval/trip"
)

func sampleCSV() [][]string {
	return [][]string{
		{"name", "international", "seniorityYears", "tafb", "hourlyRate", "credit", "position", "regional", "nightPayHours", "aircraft", "hoursInWidebody"},
		{"LAX turn", "false", "4", "10", "50", "20", "Speaker", "false", "4", "", ""},
		{"CUN layover", "true", "10", "20", "60", "30", "Purser", "true", "0", "B757", ""},
	}
}

func TestParseCSVToRawInputs(t *testing.T) {
	inputs, err := ParseCSVToRawInputs(sampleCSV())
	require.NoError(t, err)
	require.Len(t, inputs, 2)

	assert.Equal(t, "LAX turn", inputs[0].Name)
	assert.False(t, inputs[0].Raw.InternationalTrip)
	assert.Equal(t, "4", inputs[0].Raw.SeniorityYears)
	assert.Equal(t, "Speaker", inputs[0].Raw.Position)

	assert.Equal(t, "CUN layover", inputs[1].Name)
	assert.True(t, inputs[1].Raw.InternationalTrip)
	assert.True(t, inputs[1].Raw.IsRegionalDestination)
	assert.Equal(t, "B757", inputs[1].Raw.Aircraft)
}

func TestParseCSVToRawInputsErrors(t *testing.T) {
	_, err := ParseCSVToRawInputs(nil)
	assert.Error(t, err)

	short := sampleCSV()
	short[1] = short[1][:5]
	_, err = ParseCSVToRawInputs(short)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "row 2")

	badBool := sampleCSV()
	badBool[1][1] = "yes please"
	_, err = ParseCSVToRawInputs(badBool)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "international")
}

func TestCalculateAll(t *testing.T) {
	inputs, err := ParseCSVToRawInputs(sampleCSV())
	require.NoError(t, err)

	results, rowErrs := calculateAll(inputs)
	require.Empty(t, rowErrs)
	require.Len(t, results, 2)
	assert.InDelta(t, 1075.00, results[0].TotalTripValue, 1e-9)
	assert.InDelta(t, 2009.00, results[1].TotalTripValue, 1e-9)
}

func TestCalculateAllReportsEveryBadRow(t *testing.T) {
	content := sampleCSV()
	content[1][3] = "-5"   // tafb
	content[2][5] = "nope" // credit

	inputs, err := ParseCSVToRawInputs(content)
	require.NoError(t, err)

	_, rowErrs := calculateAll(inputs)
	require.Len(t, rowErrs, 2)
	assert.Contains(t, rowErrs[0], "row 2")
	assert.Contains(t, rowErrs[0], "TAFB must be a positive number")
	assert.Contains(t, rowErrs[1], "row 3")
	assert.Contains(t, rowErrs[1], "Credit must be a positive number")
}

func TestWriteResultsCSV(t *testing.T) {
	inputs, err := ParseCSVToRawInputs(sampleCSV())
	require.NoError(t, err)
	results, rowErrs := calculateAll(inputs)
	require.Empty(t, rowErrs)

	var buf bytes.Buffer
	require.NoError(t, WriteResultsCSV(&buf, inputs, results))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "name,perdiem,perdiemValue,positionCredit,internationalCredit,nightPayCredit,baseValue,totalTripValue", lines[0])
	assert.Equal(t, "LAX turn,2.30,23.00,50.00,0.00,2.00,1000.00,1075.00", lines[1])
	assert.Equal(t, "CUN layover,2.95,59.00,90.00,60.00,0.00,1800.00,2009.00", lines[2])
}

// calculateAll feeds trip.Validate directly, so a purser row without an
// aircraft still computes (zero position credit).
func TestCalculateAllPurserWithoutAircraft(t *testing.T) {
	content := sampleCSV()
	content[2][9] = ""

	inputs, err := ParseCSVToRawInputs(content)
	require.NoError(t, err)

	results, rowErrs := calculateAll(inputs)
	require.Empty(t, rowErrs)

	in, errs := trip.Validate(inputs[1].Raw)
	require.Nil(t, errs)
	assert.Equal(t, trip.AircraftNone, in.Aircraft)
	assert.InDelta(t, 0, results[1].PositionCredit, 1e-9)
}
