package venues

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/vaberg/holidaze/internal/domain"
	"github.com/vaberg/holidaze/internal/holidaze"
)

type MockLister struct {
	mock.Mock
}

func (m *MockLister) ListVenues(ctx context.Context, opts holidaze.ListOptions) ([]domain.Venue, error) {
	args := m.Called(ctx, opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Venue), args.Error(1)
}

func (m *MockLister) SearchVenues(ctx context.Context, term string) ([]domain.Venue, error) {
	args := m.Called(ctx, term)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Venue), args.Error(1)
}

func (m *MockLister) GetVenue(ctx context.Context, id string, withBookings bool) (*domain.Venue, error) {
	args := m.Called(ctx, id, withBookings)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Venue), args.Error(1)
}

type MockCache struct {
	mock.Mock
}

func (m *MockCache) GetVenues(ctx context.Context) ([]domain.Venue, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Venue), args.Error(1)
}

func (m *MockCache) SetVenues(ctx context.Context, venues []domain.Venue) error {
	args := m.Called(ctx, venues)
	return args.Error(0)
}

func TestList_CacheHitSkipsUpstream(t *testing.T) {
	api := new(MockLister)
	cache := new(MockCache)
	cached := []domain.Venue{{ID: "v1"}}
	cache.On("GetVenues", mock.Anything).Return(cached, nil)

	service := NewVenueService(api, cache)
	venues, err := service.List(context.Background())

	require.NoError(t, err)
	assert.Equal(t, cached, venues)
	api.AssertNotCalled(t, "ListVenues", mock.Anything, mock.Anything)
}

func TestList_CacheMissFetchesAndFills(t *testing.T) {
	api := new(MockLister)
	cache := new(MockCache)
	fetched := []domain.Venue{{ID: "v1"}, {ID: "v2"}}
	cache.On("GetVenues", mock.Anything).Return(nil, nil)
	cache.On("SetVenues", mock.Anything, fetched).Return(nil)
	api.On("ListVenues", mock.Anything, holidaze.ListOptions{}).Return(fetched, nil)

	service := NewVenueService(api, cache)
	venues, err := service.List(context.Background())

	require.NoError(t, err)
	assert.Equal(t, fetched, venues)
	cache.AssertExpectations(t)
}

func TestList_UpstreamFailurePropagates(t *testing.T) {
	api := new(MockLister)
	cache := new(MockCache)
	cache.On("GetVenues", mock.Anything).Return(nil, nil)
	api.On("ListVenues", mock.Anything, mock.Anything).Return(nil, errors.New("upstream down"))

	service := NewVenueService(api, cache)
	_, err := service.List(context.Background())

	assert.Error(t, err)
}

func TestWarmCache_RefreshesUnconditionally(t *testing.T) {
	api := new(MockLister)
	cache := new(MockCache)
	fetched := []domain.Venue{{ID: "v1"}}
	api.On("ListVenues", mock.Anything, holidaze.ListOptions{}).Return(fetched, nil)
	cache.On("SetVenues", mock.Anything, fetched).Return(nil)

	service := NewVenueService(api, cache)
	require.NoError(t, service.WarmCache(context.Background()))

	cache.AssertExpectations(t)
	cache.AssertNotCalled(t, "GetVenues", mock.Anything)
}
