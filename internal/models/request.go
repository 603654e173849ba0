package models

// SearchRequest is a candidate flight search as submitted by the caller.
// Dates are dd/MM/yyyy strings; airport codes are lowercase identifiers
// from the supported network.
type SearchRequest struct {
	DepartureDate          string `json:"departure_date"`
	ReturnDate             string `json:"return_date"`
	DepartureAirportCode   string `json:"departure_airport"`
	DestinationAirportCode string `json:"destination_airport"`
	SeatingClass           string `json:"seating_class"`
	EmergencyRowSeating    bool   `json:"emergency_row_seating"`
	AdultCount             int    `json:"adult_count"`
	ChildCount             int    `json:"child_count"`
	InfantCount            int    `json:"infant_count"`
}

// SearchCriteria mirrors SearchRequest field for field. It is the committed
// form held by the validator after a request has passed every rule.
type SearchCriteria struct {
	DepartureDate          string `json:"departure_date"`
	ReturnDate             string `json:"return_date"`
	DepartureAirportCode   string `json:"departure_airport"`
	DestinationAirportCode string `json:"destination_airport"`
	SeatingClass           string `json:"seating_class"`
	EmergencyRowSeating    bool   `json:"emergency_row_seating"`
	AdultCount             int    `json:"adult_count"`
	ChildCount             int    `json:"child_count"`
	InfantCount            int    `json:"infant_count"`
}

const (
	ClassEconomy        = "economy"
	ClassPremiumEconomy = "premium economy"
	ClassBusiness       = "business"
	ClassFirst          = "first"
)

// Membership is case-sensitive: "Economy" or "SYD" are not valid values.
var validAirports = map[string]struct{}{
	"syd": {},
	"mel": {},
	"lax": {},
	"cdg": {},
	"del": {},
	"pvg": {},
	"doh": {},
}

var validSeatingClasses = map[string]struct{}{
	ClassEconomy:        {},
	ClassPremiumEconomy: {},
	ClassBusiness:       {},
	ClassFirst:          {},
}

func IsValidAirport(code string) bool {
	_, ok := validAirports[code]
	return ok
}

func IsValidSeatingClass(class string) bool {
	_, ok := validSeatingClasses[class]
	return ok
}
