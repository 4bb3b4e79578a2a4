// Package booking implements the reservation workflow: the live price
// quote, the date/guest input constraints, and the submission flow.
package booking

import (
	"math"
	"time"
)

// Quote is the derived nights/total-price preview for a prospective date
// range. It is never persisted; TotalPrice stays 0 until both dates are
// chosen.
type Quote struct {
	CheckIn    time.Time `json:"checkIn"`
	CheckOut   time.Time `json:"checkOut"`
	Guests     int       `json:"guests"`
	Nights     int       `json:"nights"`
	TotalPrice float64   `json:"totalPrice"`
}

// Nights is the number of nights between the two dates, rounded up.
// The difference is taken on wall-clock dates, so a range crossing a DST
// transition still counts calendar nights. Zero when either date is
// unset; a same-day range is zero nights.
func Nights(checkIn, checkOut time.Time) int {
	if checkIn.IsZero() || checkOut.IsZero() {
		return 0
	}
	diff := wallClock(checkOut).Sub(wallClock(checkIn))
	if diff < 0 {
		diff = -diff
	}
	return int(math.Ceil(diff.Hours() / 24))
}

// wallClock rebuilds the local date and time of day in UTC, where every
// day is exactly 24 hours long.
func wallClock(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), time.UTC)
}

// Summary names the sidebar state: no dates yet, dates chosen but nothing
// to charge, or a computed total.
func (q Quote) Summary() string {
	switch {
	case q.CheckIn.IsZero() || q.CheckOut.IsZero():
		return "no dates selected"
	case q.TotalPrice == 0:
		return "price pending"
	default:
		return "price computed"
	}
}

func NewQuote(checkIn, checkOut time.Time, guests int, pricePerNight float64) Quote {
	nights := Nights(checkIn, checkOut)
	return Quote{
		CheckIn:    checkIn,
		CheckOut:   checkOut,
		Guests:     guests,
		Nights:     nights,
		TotalPrice: float64(nights) * pricePerNight,
	}
}
