package view

import (
	"context"

	"github.com/vaberg/holidaze/internal/domain"
	"github.com/vaberg/holidaze/internal/holidaze"
	"github.com/vaberg/holidaze/internal/session"
)

type VenueAPI interface {
	ProfileVenues(ctx context.Context, token, name string) ([]domain.Venue, error)
	CreateVenue(ctx context.Context, token string, req holidaze.VenueRequest) (*domain.Venue, error)
	UpdateVenue(ctx context.Context, token, id string, req holidaze.VenueRequest) (*domain.Venue, error)
	DeleteVenue(ctx context.Context, token, id string) error
}

// MyVenues is the owner-side venue management view. Mutations apply to the
// local list only after the server confirms, with the returned
// representation as the authority (the server normalizes numeric fields).
type MyVenues struct {
	api  VenueAPI
	list VenueList
}

func NewMyVenues(api VenueAPI) *MyVenues {
	return &MyVenues{api: api}
}

func (v *MyVenues) Refresh(ctx context.Context, sess *session.Session) ([]domain.Venue, error) {
	if sess == nil {
		return nil, session.ErrNoSession
	}

	gen := v.list.BeginFetch()
	venues, err := v.api.ProfileVenues(ctx, sess.Token, sess.User.Name)
	if err != nil {
		return nil, err
	}
	v.list.ApplyFetch(gen, venues)
	return v.list.Items(), nil
}

func (v *MyVenues) Create(ctx context.Context, sess *session.Session, req holidaze.VenueRequest) (*domain.Venue, error) {
	if sess == nil {
		return nil, session.ErrNoSession
	}
	normalized, err := NormalizeVenueRequest(req)
	if err != nil {
		return nil, err
	}

	created, err := v.api.CreateVenue(ctx, sess.Token, normalized)
	if err != nil {
		return nil, err
	}
	v.list.Add(*created)
	return created, nil
}

// Edit sends the full editable field set and replaces the list entry with
// whatever the server returns.
func (v *MyVenues) Edit(ctx context.Context, sess *session.Session, id string, req holidaze.VenueRequest) (*domain.Venue, error) {
	if sess == nil {
		return nil, session.ErrNoSession
	}
	normalized, err := NormalizeVenueRequest(req)
	if err != nil {
		return nil, err
	}

	updated, err := v.api.UpdateVenue(ctx, sess.Token, id, normalized)
	if err != nil {
		return nil, err
	}
	v.list.Replace(*updated)
	return updated, nil
}

func (v *MyVenues) Delete(ctx context.Context, sess *session.Session, id string, confirmed bool) error {
	if sess == nil {
		return session.ErrNoSession
	}
	if !confirmed {
		return ErrNotConfirmed
	}

	if err := v.api.DeleteVenue(ctx, sess.Token, id); err != nil {
		return err
	}
	v.list.Remove(id)
	return nil
}

func (v *MyVenues) Venues() []domain.Venue {
	return v.list.Items()
}
