package holidaze

import (
	"context"
	"net/http"
	"time"

	"github.com/vaberg/holidaze/internal/domain"
)

type CreateBookingRequest struct {
	DateFrom time.Time `json:"dateFrom"`
	DateTo   time.Time `json:"dateTo"`
	Guests   int       `json:"guests"`
	VenueID  string    `json:"venueId"`
}

func (c *Client) CreateBooking(ctx context.Context, token string, req CreateBookingRequest) (*domain.Booking, error) {
	var booking domain.Booking
	if err := c.do(ctx, http.MethodPost, "/holidaze/bookings", nil, token, req, &booking); err != nil {
		return nil, err
	}
	return &booking, nil
}

func (c *Client) DeleteBooking(ctx context.Context, token, id string) error {
	return c.do(ctx, http.MethodDelete, "/holidaze/bookings/"+id, nil, token, nil, nil)
}
