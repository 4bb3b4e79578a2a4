package view

import (
	"context"
	"errors"

	"github.com/vaberg/holidaze/internal/domain"
	"github.com/vaberg/holidaze/internal/session"
)

// ErrNotConfirmed guards destructive operations: the request is never sent
// until the user has explicitly confirmed.
var ErrNotConfirmed = errors.New("confirmation required")

type BookingAPI interface {
	ProfileBookings(ctx context.Context, token, name string) ([]domain.Booking, error)
	DeleteBooking(ctx context.Context, token, id string) error
}

// MyBookings is the "my reservations" view: the user's bookings with
// optimistic removal after a confirmed cancel.
type MyBookings struct {
	api  BookingAPI
	list BookingList
}

func NewMyBookings(api BookingAPI) *MyBookings {
	return &MyBookings{api: api}
}

func (v *MyBookings) Refresh(ctx context.Context, sess *session.Session) ([]domain.Booking, error) {
	if sess == nil {
		return nil, session.ErrNoSession
	}

	gen := v.list.BeginFetch()
	bookings, err := v.api.ProfileBookings(ctx, sess.Token, sess.User.Name)
	if err != nil {
		return nil, err
	}
	v.list.ApplyFetch(gen, bookings)
	return v.list.Items(), nil
}

// Cancel deletes one reservation. On success the entry is removed from the
// local list by id; on failure the list is left untouched.
func (v *MyBookings) Cancel(ctx context.Context, sess *session.Session, id string, confirmed bool) error {
	if sess == nil {
		return session.ErrNoSession
	}
	if !confirmed {
		return ErrNotConfirmed
	}

	if err := v.api.DeleteBooking(ctx, sess.Token, id); err != nil {
		return err
	}
	v.list.Remove(id)
	return nil
}

func (v *MyBookings) Bookings() []domain.Booking {
	return v.list.Items()
}
