package trip

import "math"

// Contract pay rules.
const (
	perdiemDomestic      = 2.20 // $/hr away from base, domestic
	perdiemInternational = 2.70 // $/hr away from base, international
	perdiemSeniorityStep = 0.05 // added per two full years of seniority

	internationalCreditFactor = 2.0
	speakerCreditFactor       = 2.5
	nightPayDivisor           = 2.0
)

// Calculate produces the value breakdown for a validated trip. It is total:
// every TripInput has a defined result, and missing optional fields fall
// back to zero credit rather than failing.
func Calculate(in TripInput) TripResult {
	seniorityFactor := math.Floor(in.SeniorityYears / 2)

	perdiem := perdiemDomestic
	if in.InternationalTrip {
		perdiem = perdiemInternational
	}
	perdiem += seniorityFactor * perdiemSeniorityStep

	var internationalCredit float64
	if in.InternationalTrip {
		internationalCredit = in.Credit * internationalCreditFactor
	}

	res := TripResult{
		Perdiem:             perdiem,
		PerdiemValue:        perdiem * in.TAFB,
		PositionCredit:      positionCredit(in),
		InternationalCredit: internationalCredit,
		NightPayCredit:      in.NightPayHours / nightPayDivisor,
		BaseValue:           in.HourlyRate * in.Credit,
	}
	res.TotalTripValue = res.BaseValue + res.PerdiemValue + res.PositionCredit +
		res.InternationalCredit + res.NightPayCredit
	return res
}

func positionCredit(in TripInput) float64 {
	switch in.Position {
	case PositionPurser:
		return in.Credit * purserMultiplier(in.Aircraft, in.IsRegionalDestination)
	case PositionGalley:
		// Galley pay tracks widebody hours only, independent of credit,
		// aircraft and destination.
		return in.HoursInWidebody
	case PositionSpeaker:
		return in.Credit * speakerCreditFactor
	}
	return 0
}

// purserMultiplier maps the equipment group and destination region to the
// purser credit multiplier. Unknown or missing aircraft pays nothing.
func purserMultiplier(a Aircraft, regional bool) float64 {
	switch a {
	case AircraftA319, AircraftA320, AircraftB737:
		if regional {
			return 2
		}
		return 1
	case AircraftB737800, AircraftB737900, AircraftB757:
		if regional {
			return 3
		}
		return 2
	case AircraftWide:
		if regional {
			return 4
		}
		return 3
	}
	return 0
}
