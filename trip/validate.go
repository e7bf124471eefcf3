package trip

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Human labels used in validation messages, keyed by JSON field name.
var fieldLabels = map[string]string{
	"seniorityYears":  "Seniority Years",
	"tafb":            "TAFB",
	"hourlyRate":      "Hourly Rate",
	"credit":          "Credit",
	"nightPayHours":   "Night Pay Hours",
	"hoursInWidebody": "Hours in Widebody",
}

var positions = []Position{PositionSpeaker, PositionGalley, PositionPurser}

var aircraftByName = map[string]Aircraft{
	string(AircraftA319):    AircraftA319,
	string(AircraftA320):    AircraftA320,
	string(AircraftB737):    AircraftB737,
	string(AircraftB737800): AircraftB737800,
	string(AircraftB737900): AircraftB737900,
	string(AircraftB757):    AircraftB757,
	string(AircraftWide):    AircraftWide,
}

// Validate coerces and checks a raw submission. It returns the fully typed
// input on success, or every field violation found; it never stops at the
// first bad field, so a caller can show all problems at once.
func Validate(raw RawInput) (TripInput, FieldErrors) {
	var errs FieldErrors

	numeric := func(field, value string) float64 {
		// ParseFloat accepts "NaN" and "Inf", neither of which is a real
		// amount; they must fail like any other bad value.
		v, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
			errs = append(errs, FieldError{
				Field:   field,
				Message: fmt.Sprintf("%s must be a positive number", fieldLabels[field]),
			})
			return 0
		}
		return v
	}

	in := TripInput{
		InternationalTrip:     raw.InternationalTrip,
		IsRegionalDestination: raw.IsRegionalDestination,
		SeniorityYears:        numeric("seniorityYears", raw.SeniorityYears),
		TAFB:                  numeric("tafb", raw.TAFB),
		HourlyRate:            numeric("hourlyRate", raw.HourlyRate),
		Credit:                numeric("credit", raw.Credit),
		NightPayHours:         numeric("nightPayHours", raw.NightPayHours),
	}

	in.Position, errs = validatePosition(raw.Position, errs)

	// Aircraft and widebody hours stay optional for every position: a purser
	// without an aircraft or a galley without hours still validates, and the
	// calculator defaults the credit to zero.
	if a := strings.TrimSpace(raw.Aircraft); a != "" {
		in.Aircraft = aircraftByName[a]
	}
	if h := strings.TrimSpace(raw.HoursInWidebody); h != "" {
		in.HoursInWidebody = numeric("hoursInWidebody", h)
	}

	if len(errs) > 0 {
		return TripInput{}, errs
	}
	return in, nil
}

func validatePosition(value string, errs FieldErrors) (Position, FieldErrors) {
	p := Position(strings.TrimSpace(value))
	for _, known := range positions {
		if p == known {
			return p, errs
		}
	}
	return "", append(errs, FieldError{
		Field:   "position",
		Message: fmt.Sprintf("Position must be one of %s, %s, %s", PositionSpeaker, PositionGalley, PositionPurser),
	})
}
