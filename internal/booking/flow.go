package booking

import (
	"context"
	"sync"

	"github.com/vaberg/holidaze/internal/domain"
	"github.com/vaberg/holidaze/internal/holidaze"
	"github.com/vaberg/holidaze/internal/session"
)

type State string

const (
	StateIdle       State = "idle"
	StateValidating State = "validating"
	StateSubmitting State = "submitting"
	StateSucceeded  State = "succeeded"
	StateFailed     State = "failed"
)

type Creator interface {
	CreateBooking(ctx context.Context, token string, req holidaze.CreateBookingRequest) (*domain.Booking, error)
}

// Flow drives one reservation from the form to the upstream API:
// Idle -> Validating -> Submitting -> Succeeded | Failed. Validation
// failures and a missing session return to Idle without a network call;
// a failed submission keeps the entered values.
type Flow struct {
	mu      sync.Mutex
	form    *Form
	creator Creator
	state   State
	lastErr string
	booking *domain.Booking
}

func NewFlow(form *Form, creator Creator) *Flow {
	return &Flow{form: form, creator: creator, state: StateIdle}
}

func (f *Flow) Submit(ctx context.Context, sess *session.Session) (*domain.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.lastErr = ""
	f.state = StateValidating
	if err := f.form.Validate(); err != nil {
		f.state = StateIdle
		f.lastErr = err.Error()
		return nil, err
	}

	if sess == nil {
		f.state = StateIdle
		return nil, session.ErrNoSession
	}

	f.state = StateSubmitting
	created, err := f.creator.CreateBooking(ctx, sess.Token, f.request())
	if err != nil {
		f.state = StateFailed
		f.lastErr = err.Error()
		return nil, err
	}

	f.state = StateSucceeded
	f.booking = created
	return created, nil
}

// Acknowledge returns a failed flow to the editable state. Entered values
// are untouched.
func (f *Flow) Acknowledge() {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.state == StateFailed {
		f.state = StateIdle
	}
}

func (f *Flow) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

func (f *Flow) Err() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.lastErr
}

func (f *Flow) Booking() *domain.Booking {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.booking
}

func (f *Flow) request() holidaze.CreateBookingRequest {
	return holidaze.CreateBookingRequest{
		DateFrom: f.form.checkIn,
		DateTo:   f.form.checkOut,
		Guests:   f.form.guests,
		VenueID:  f.form.terms.VenueID,
	}
}
