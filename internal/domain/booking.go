package domain

import "time"

// Booking is a reservation of a venue for a date range. Venue is the
// back-reference filled in by _venue=true requests; it is never owned by
// the booking.
type Booking struct {
	ID       string    `json:"id"`
	DateFrom time.Time `json:"dateFrom"`
	DateTo   time.Time `json:"dateTo"`
	Guests   int       `json:"guests"`
	Venue    *Venue    `json:"venue,omitempty"`
	Customer *Profile  `json:"customer,omitempty"`
	Created  time.Time `json:"created"`
	Updated  time.Time `json:"updated"`
}
