package trip

// Threshold for float comparisons
const epsilon = 1e-9

// Position is the crew position worked on the trip.
type Position string

const (
	PositionSpeaker Position = "Speaker"
	PositionGalley  Position = "Galley"
	PositionPurser  Position = "Purser"
)

// Aircraft is the equipment flown. Only meaningful for pursers; the zero
// value means no aircraft was given and yields zero position credit.
type Aircraft string

const (
	AircraftNone    Aircraft = ""
	AircraftA319    Aircraft = "A319"
	AircraftA320    Aircraft = "A320"
	AircraftB737    Aircraft = "B737"
	AircraftB737800 Aircraft = "B737-800"
	AircraftB737900 Aircraft = "B737-900"
	AircraftB757    Aircraft = "B757"
	AircraftWide    Aircraft = "widebody"
)

// RawInput is a candidate trip record as submitted by a client form.
// Numeric fields arrive as strings and are coerced by Validate; booleans
// must be real booleans, there is no truthy-string coercion.
type RawInput struct {
	InternationalTrip     bool   `json:"internationalTrip"`
	SeniorityYears        string `json:"seniorityYears"`
	TAFB                  string `json:"tafb"`
	HourlyRate            string `json:"hourlyRate"`
	Credit                string `json:"credit"`
	Position              string `json:"position"`
	IsRegionalDestination bool   `json:"isRegionalDestination"`
	NightPayHours         string `json:"nightPayHours"`
	Aircraft              string `json:"aircraft,omitempty"`
	HoursInWidebody       string `json:"hoursInWidebody,omitempty"`
}

// TripInput is a validated trip record. Aircraft and HoursInWidebody are
// only meaningful for the matching position; Calculate defaults them safely
// when unset, so a TripInput is always calculable.
type TripInput struct {
	InternationalTrip     bool
	SeniorityYears        float64
	TAFB                  float64
	HourlyRate            float64
	Credit                float64
	Position              Position
	IsRegionalDestination bool
	NightPayHours         float64
	Aircraft              Aircraft
	HoursInWidebody       float64
}

// TripResult is the value breakdown for one trip. Amounts are unrounded;
// rounding to cents is left to whoever displays the result.
type TripResult struct {
	Perdiem             float64 `json:"perdiem"`
	PerdiemValue        float64 `json:"perdiemValue"`
	PositionCredit      float64 `json:"positionCredit"`
	InternationalCredit float64 `json:"internationalCredit"`
	NightPayCredit      float64 `json:"nightPayCredit"`
	BaseValue           float64 `json:"baseValue"`
	TotalTripValue      float64 `json:"totalTripValue"`
}

// FieldError reports one invalid input field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// FieldErrors is every validation failure found in a single submission.
type FieldErrors []FieldError

func (e FieldErrors) Error() string {
	msg := ""
	for i, fe := range e {
		if i > 0 {
			msg += "; "
		}
		msg += fe.Message
	}
	return msg
}
