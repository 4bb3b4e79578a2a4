package holidaze

import (
	"context"
	"net/http"
	"net/url"

	"github.com/vaberg/holidaze/internal/domain"
)

type ProfileUpdateRequest struct {
	Bio          string        `json:"bio,omitempty"`
	Avatar       *domain.Media `json:"avatar,omitempty"`
	Banner       *domain.Media `json:"banner,omitempty"`
	VenueManager *bool         `json:"venueManager,omitempty"`
}

func (c *Client) GetProfile(ctx context.Context, token, name string) (*domain.Profile, error) {
	var profile domain.Profile
	if err := c.do(ctx, http.MethodGet, "/holidaze/profiles/"+name, nil, token, nil, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

func (c *Client) UpdateProfile(ctx context.Context, token, name string, req ProfileUpdateRequest) (*domain.Profile, error) {
	var profile domain.Profile
	if err := c.do(ctx, http.MethodPut, "/holidaze/profiles/"+name, nil, token, req, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

// ProfileBookings returns the user's reservations with venue details attached.
func (c *Client) ProfileBookings(ctx context.Context, token, name string) ([]domain.Booking, error) {
	query := url.Values{"_venue": {"true"}}
	var bookings []domain.Booking
	if err := c.do(ctx, http.MethodGet, "/holidaze/profiles/"+name+"/bookings", query, token, nil, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

// ProfileVenues returns venues owned by the user, each with its bookings.
func (c *Client) ProfileVenues(ctx context.Context, token, name string) ([]domain.Venue, error) {
	query := url.Values{"_bookings": {"true"}}
	var venues []domain.Venue
	if err := c.do(ctx, http.MethodGet, "/holidaze/profiles/"+name+"/venues", query, token, nil, &venues); err != nil {
		return nil, err
	}
	return venues, nil
}
