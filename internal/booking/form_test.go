package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestForm(t *testing.T, terms VenueTerms, onChange func(Quote)) *Form {
	t.Helper()
	form := NewForm(terms, onChange)
	form.now = func() time.Time { return date(2025, 5, 20) }
	return form
}

func TestForm_NotifiesObserverOnEveryChange(t *testing.T) {
	var quotes []Quote
	form := newTestForm(t, VenueTerms{VenueID: "v1", PricePerNight: 1000, MaxGuests: 4}, func(q Quote) {
		quotes = append(quotes, q)
	})

	require.NoError(t, form.SetCheckIn(date(2025, 6, 1)))
	require.NoError(t, form.SetCheckOut(date(2025, 6, 4)))
	require.NoError(t, form.SetGuests(2))

	require.Len(t, quotes, 3)
	assert.Equal(t, 0, quotes[0].Nights)
	assert.Equal(t, 3, quotes[1].Nights)
	assert.Equal(t, 3000.0, quotes[1].TotalPrice)
	assert.Equal(t, 2, quotes[2].Guests)
}

func TestForm_RejectsCheckInBeforeToday(t *testing.T) {
	form := newTestForm(t, VenueTerms{PricePerNight: 100, MaxGuests: 2}, nil)

	err := form.SetCheckIn(date(2025, 5, 19))
	assert.ErrorIs(t, err, ErrCheckInPast)
}

func TestForm_AcceptsTodayCheckInFromZoneBehindUTC(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	form := NewForm(VenueTerms{PricePerNight: 100, MaxGuests: 2}, nil)
	// Late evening locally; the same calendar day's UTC midnight is already
	// in the past as an instant.
	form.now = func() time.Time { return time.Date(2025, 5, 20, 22, 0, 0, 0, loc) }

	assert.NoError(t, form.SetCheckIn(date(2025, 5, 20)))
}

func TestForm_RejectsCheckOutBeforeCheckIn(t *testing.T) {
	form := newTestForm(t, VenueTerms{PricePerNight: 100, MaxGuests: 2}, nil)
	require.NoError(t, form.SetCheckIn(date(2025, 6, 10)))

	err := form.SetCheckOut(date(2025, 6, 9))
	assert.ErrorIs(t, err, ErrCheckOutBefore)
}

func TestForm_RejectsZeroGuests(t *testing.T) {
	form := newTestForm(t, VenueTerms{PricePerNight: 100, MaxGuests: 2}, nil)

	assert.ErrorIs(t, form.SetGuests(0), ErrGuestsTooFew)
}

func TestForm_ValidateRequiresBothDates(t *testing.T) {
	form := newTestForm(t, VenueTerms{PricePerNight: 100, MaxGuests: 2}, nil)
	require.NoError(t, form.SetCheckIn(date(2025, 6, 1)))

	err := form.Validate()
	require.Error(t, err)
	assert.Equal(t, "Please select both check-in and check-out dates", err.Error())
}

func TestForm_ValidateRejectsTooManyGuests(t *testing.T) {
	form := newTestForm(t, VenueTerms{PricePerNight: 100, MaxGuests: 4}, nil)
	require.NoError(t, form.SetCheckIn(date(2025, 6, 1)))
	require.NoError(t, form.SetCheckOut(date(2025, 6, 3)))
	require.NoError(t, form.SetGuests(5))

	err := form.Validate()
	require.Error(t, err)
	assert.Equal(t, "Maximum 4 guests allowed", err.Error())
}

func TestForm_SameDayBookingPassesValidation(t *testing.T) {
	form := newTestForm(t, VenueTerms{PricePerNight: 100, MaxGuests: 2}, nil)
	require.NoError(t, form.SetCheckIn(date(2025, 6, 1)))
	require.NoError(t, form.SetCheckOut(date(2025, 6, 1)))

	assert.NoError(t, form.Validate())
	assert.Equal(t, 0, form.Quote().Nights)
}
