package search

import (
	"sync"
	"time"

	"github.com/worldwanderer/flightsearch/internal/models"
)

const dateLayout = "02/01/2006"

// Clock supplies the current time for the departure-date check. Injecting it
// keeps the validator deterministic under test.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// Validator checks a proposed flight search against the booking rules and,
// only when every rule passes, commits the whole request as its held state.
// The rules run in a fixed order and stop at the first failure; a failed call
// never touches the held state, no matter how far it got.
//
// The held state is a single value swapped under one lock, so a concurrent
// reader sees either the previous committed search or the new one in full,
// never a mix of the two.
type Validator struct {
	mu        sync.RWMutex
	committed *models.SearchCriteria
	clock     Clock
}

func NewValidator() *Validator {
	return NewValidatorWithClock(systemClock{})
}

func NewValidatorWithClock(clock Clock) *Validator {
	return &Validator{clock: clock}
}

// Validate runs the rule pipeline against req. It returns true and replaces
// the held search only if every rule passes; otherwise it returns false and
// leaves the held search exactly as it was. All failures collapse into the
// boolean result, none carries detail.
func (v *Validator) Validate(req models.SearchRequest) bool {
	v.mu.Lock()
	defer v.mu.Unlock()

	if !validPassengerCounts(req.AdultCount, req.ChildCount, req.InfantCount) {
		return false
	}
	if !models.IsValidSeatingClass(req.SeatingClass) {
		return false
	}
	if !validAirportPair(req.DepartureAirportCode, req.DestinationAirportCode) {
		return false
	}
	dep, ok := parseStrictDate(req.DepartureDate)
	if !ok {
		return false
	}
	ret, ok := parseStrictDate(req.ReturnDate)
	if !ok {
		return false
	}
	if !v.validDateOrder(dep, ret) {
		return false
	}
	if !validSeatingRules(req.SeatingClass, req.EmergencyRowSeating, req.ChildCount, req.InfantCount) {
		return false
	}

	v.committed = &models.SearchCriteria{
		DepartureDate:          req.DepartureDate,
		ReturnDate:             req.ReturnDate,
		DepartureAirportCode:   req.DepartureAirportCode,
		DestinationAirportCode: req.DestinationAirportCode,
		SeatingClass:           req.SeatingClass,
		EmergencyRowSeating:    req.EmergencyRowSeating,
		AdultCount:             req.AdultCount,
		ChildCount:             req.ChildCount,
		InfantCount:            req.InfantCount,
	}
	return true
}

// Total must be 1-9; at most 2 children per adult and 1 infant per adult,
// so an adult-free booking cannot carry children or infants.
func validPassengerCounts(adults, children, infants int) bool {
	if adults < 0 || children < 0 || infants < 0 {
		return false
	}
	total := adults + children + infants
	if total < 1 || total > 9 {
		return false
	}
	if children > adults*2 {
		return false
	}
	if infants > adults {
		return false
	}
	return true
}

func validAirportPair(dep, dest string) bool {
	if !models.IsValidAirport(dep) || !models.IsValidAirport(dest) {
		return false
	}
	return dep != dest
}

// parseStrictDate parses dd/MM/yyyy and rejects anything the calendar does
// not contain, e.g. 31/04 or 29/02 outside a leap year. time.Parse accepts
// single-digit day and month, so the round-trip check also forces the
// zero-padded form.
func parseStrictDate(s string) (time.Time, bool) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, false
	}
	if t.Format(dateLayout) != s {
		return time.Time{}, false
	}
	return t, true
}

// Departure may not be before today's local date; return may not be before
// departure. Departing today and returning the same day are both allowed.
func (v *Validator) validDateOrder(dep, ret time.Time) bool {
	now := v.clock.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if dep.Before(today) {
		return false
	}
	if ret.Before(dep) {
		return false
	}
	return true
}

// Emergency rows exist only in economy, and only adults may sit in them.
// First class takes no children, business no infants.
func validSeatingRules(class string, emergencyRow bool, children, infants int) bool {
	if emergencyRow && class != models.ClassEconomy {
		return false
	}
	if children > 0 {
		if emergencyRow {
			return false
		}
		if class == models.ClassFirst {
			return false
		}
	}
	if infants > 0 {
		if emergencyRow {
			return false
		}
		if class == models.ClassBusiness {
			return false
		}
	}
	return true
}

// Committed returns the most recently accepted search. ok is false until the
// first successful Validate call.
func (v *Validator) Committed() (models.SearchCriteria, bool) {
	v.mu.RLock()
	defer v.mu.RUnlock()
	if v.committed == nil {
		return models.SearchCriteria{}, false
	}
	return *v.committed, true
}

// Per-field accessors over the held search. Each returns the zero value
// before the first successful Validate call.

func (v *Validator) DepartureDate() string {
	c, _ := v.Committed()
	return c.DepartureDate
}

func (v *Validator) ReturnDate() string {
	c, _ := v.Committed()
	return c.ReturnDate
}

func (v *Validator) DepartureAirportCode() string {
	c, _ := v.Committed()
	return c.DepartureAirportCode
}

func (v *Validator) DestinationAirportCode() string {
	c, _ := v.Committed()
	return c.DestinationAirportCode
}

func (v *Validator) SeatingClass() string {
	c, _ := v.Committed()
	return c.SeatingClass
}

func (v *Validator) EmergencyRowSeating() bool {
	c, _ := v.Committed()
	return c.EmergencyRowSeating
}

func (v *Validator) AdultCount() int {
	c, _ := v.Committed()
	return c.AdultCount
}

func (v *Validator) ChildCount() int {
	c, _ := v.Committed()
	return c.ChildCount
}

func (v *Validator) InfantCount() int {
	c, _ := v.Committed()
	return c.InfantCount
}
