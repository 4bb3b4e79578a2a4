package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vaberg/holidaze/internal/domain"
)

func TestFromBookings_OneBlockedRangePerBooking(t *testing.T) {
	from := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 6, 4, 0, 0, 0, 0, time.UTC)
	bookings := []domain.Booking{
		{ID: "b1", DateFrom: from, DateTo: to},
		{ID: "b2", DateFrom: to, DateTo: to.AddDate(0, 0, 2)},
	}

	events := FromBookings(bookings)

	require.Len(t, events, 2)
	assert.Equal(t, "Booked", events[0].Title)
	assert.Equal(t, from, events[0].Start)
	assert.Equal(t, to, events[0].End)
	assert.True(t, events[0].AllDay)
	assert.Equal(t, "block", events[0].Display)
}

func TestFromBookings_EmptyListRendersNoEvents(t *testing.T) {
	assert.Empty(t, FromBookings(nil))
}
