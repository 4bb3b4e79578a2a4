package booking

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrCheckInPast    = errors.New("check-in cannot be before today")
	ErrCheckOutBefore = errors.New("check-out cannot be before check-in")
	ErrGuestsTooFew   = errors.New("at least one guest is required")
)

// ValidationError is a local, recoverable failure: submission is blocked
// and no network call is made.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// VenueTerms are the venue constraints the form validates against.
type VenueTerms struct {
	VenueID       string
	PricePerNight float64
	MaxGuests     int
}

// Form tracks the user's date and guest input for one venue and produces a
// fresh Quote on every change. The observer is notified on each successful
// change, not once; the sidebar relies on the continuous stream.
type Form struct {
	terms    VenueTerms
	checkIn  time.Time
	checkOut time.Time
	guests   int
	onChange func(Quote)
	now      func() time.Time
}

func NewForm(terms VenueTerms, onChange func(Quote)) *Form {
	return &Form{terms: terms, guests: 1, onChange: onChange, now: time.Now}
}

func (f *Form) SetCheckIn(t time.Time) error {
	if dayBefore(t, f.now()) {
		return ErrCheckInPast
	}
	f.checkIn = t
	f.emit()
	return nil
}

func (f *Form) SetCheckOut(t time.Time) error {
	min := f.now()
	if !f.checkIn.IsZero() {
		min = f.checkIn
	}
	if dayBefore(t, min) {
		return ErrCheckOutBefore
	}
	f.checkOut = t
	f.emit()
	return nil
}

func (f *Form) SetGuests(n int) error {
	if n < 1 {
		return ErrGuestsTooFew
	}
	f.guests = n
	f.emit()
	return nil
}

func (f *Form) Quote() Quote {
	return NewQuote(f.checkIn, f.checkOut, f.guests, f.terms.PricePerNight)
}

// Validate applies the submit-time constraints. It never touches the
// network.
func (f *Form) Validate() error {
	if f.checkIn.IsZero() || f.checkOut.IsZero() {
		return &ValidationError{Message: "Please select both check-in and check-out dates"}
	}
	if f.guests > f.terms.MaxGuests {
		return &ValidationError{Message: fmt.Sprintf("Maximum %d guests allowed", f.terms.MaxGuests)}
	}
	return nil
}

func (f *Form) emit() {
	if f.onChange != nil {
		f.onChange(f.Quote())
	}
}

// dayBefore compares calendar dates in each time's own location, so a UTC
// midnight from a date input never trips the floor checks in zones behind
// UTC.
func dayBefore(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	if ay != by {
		return ay < by
	}
	if am != bm {
		return am < bm
	}
	return ad < bd
}
