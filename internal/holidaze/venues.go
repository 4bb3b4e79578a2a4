package holidaze

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/vaberg/holidaze/internal/domain"
)

type ListOptions struct {
	Limit     int
	Offset    int
	Sort      string
	SortOrder string
}

type VenueRequest struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Media       []domain.Media  `json:"media"`
	Price       float64         `json:"price"`
	MaxGuests   int             `json:"maxGuests"`
	Rating      float64         `json:"rating"`
	Meta        domain.Meta     `json:"meta"`
	Location    domain.Location `json:"location"`
}

// ListVenues fetches venues with owner and booking back-references included.
func (c *Client) ListVenues(ctx context.Context, opts ListOptions) ([]domain.Venue, error) {
	if opts.Limit == 0 {
		opts.Limit = 100
	}
	if opts.Sort == "" {
		opts.Sort = "created"
	}
	if opts.SortOrder == "" {
		opts.SortOrder = "desc"
	}

	query := url.Values{
		"limit":     {strconv.Itoa(opts.Limit)},
		"offset":    {strconv.Itoa(opts.Offset)},
		"sort":      {opts.Sort},
		"sortOrder": {opts.SortOrder},
		"_owner":    {"true"},
		"_bookings": {"true"},
	}

	var venues []domain.Venue
	if err := c.do(ctx, http.MethodGet, "/holidaze/venues", query, "", nil, &venues); err != nil {
		return nil, err
	}
	return venues, nil
}

func (c *Client) SearchVenues(ctx context.Context, term string) ([]domain.Venue, error) {
	query := url.Values{
		"q":         {term},
		"limit":     {"100"},
		"offset":    {"0"},
		"_owner":    {"true"},
		"_bookings": {"true"},
	}

	var venues []domain.Venue
	if err := c.do(ctx, http.MethodGet, "/holidaze/venues/search", query, "", nil, &venues); err != nil {
		return nil, err
	}
	return venues, nil
}

func (c *Client) GetVenue(ctx context.Context, id string, withBookings bool) (*domain.Venue, error) {
	query := url.Values{"_owner": {"true"}}
	if withBookings {
		query.Set("_bookings", "true")
	}

	var venue domain.Venue
	if err := c.do(ctx, http.MethodGet, "/holidaze/venues/"+id, query, "", nil, &venue); err != nil {
		return nil, err
	}
	return &venue, nil
}

func (c *Client) CreateVenue(ctx context.Context, token string, req VenueRequest) (*domain.Venue, error) {
	var venue domain.Venue
	if err := c.do(ctx, http.MethodPost, "/holidaze/venues", nil, token, req, &venue); err != nil {
		return nil, err
	}
	return &venue, nil
}

func (c *Client) UpdateVenue(ctx context.Context, token, id string, req VenueRequest) (*domain.Venue, error) {
	var venue domain.Venue
	if err := c.do(ctx, http.MethodPut, "/holidaze/venues/"+id, nil, token, req, &venue); err != nil {
		return nil, err
	}
	return &venue, nil
}

func (c *Client) DeleteVenue(ctx context.Context, token, id string) error {
	return c.do(ctx, http.MethodDelete, "/holidaze/venues/"+id, nil, token, nil, nil)
}
