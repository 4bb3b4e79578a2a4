package venues

import (
	"context"

	"github.com/vaberg/holidaze/internal/domain"
	"github.com/vaberg/holidaze/internal/holidaze"
)

type VenueUseCase interface {
	List(ctx context.Context) ([]domain.Venue, error)
	Search(ctx context.Context, term string) ([]domain.Venue, error)
	Get(ctx context.Context, id string) (*domain.Venue, error)
	WarmCache(ctx context.Context) error
}

type Cache interface {
	GetVenues(ctx context.Context) ([]domain.Venue, error)
	SetVenues(ctx context.Context, venues []domain.Venue) error
}

type Lister interface {
	ListVenues(ctx context.Context, opts holidaze.ListOptions) ([]domain.Venue, error)
	SearchVenues(ctx context.Context, term string) ([]domain.Venue, error)
	GetVenue(ctx context.Context, id string, withBookings bool) (*domain.Venue, error)
}

type VenueService struct {
	api   Lister
	cache Cache
}

func NewVenueService(api Lister, cache Cache) *VenueService {
	return &VenueService{api: api, cache: cache}
}

// List serves the browse page through the cache when possible.
func (s *VenueService) List(ctx context.Context) ([]domain.Venue, error) {
	if s.cache != nil {
		if cached, err := s.cache.GetVenues(ctx); err == nil && cached != nil {
			return cached, nil
		}
	}

	venues, err := s.api.ListVenues(ctx, holidaze.ListOptions{})
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		_ = s.cache.SetVenues(ctx, venues)
	}
	return venues, nil
}

// Search always goes upstream; results depend on the term and are not
// cached.
func (s *VenueService) Search(ctx context.Context, term string) ([]domain.Venue, error) {
	return s.api.SearchVenues(ctx, term)
}

func (s *VenueService) Get(ctx context.Context, id string) (*domain.Venue, error) {
	return s.api.GetVenue(ctx, id, true)
}

// WarmCache refreshes the cached list unconditionally; the worker calls
// this on a ticker.
func (s *VenueService) WarmCache(ctx context.Context) error {
	venues, err := s.api.ListVenues(ctx, holidaze.ListOptions{})
	if err != nil {
		return err
	}
	if s.cache == nil {
		return nil
	}
	return s.cache.SetVenues(ctx, venues)
}

var _ VenueUseCase = (*VenueService)(nil)
