// Package view holds the per-session list state behind the management
// views. Lists change only through reducer-style transitions keyed by
// entity id; the server response is the sole source of truth on success
// and nothing moves on failure.
package view

import (
	"sync"

	"github.com/vaberg/holidaze/internal/domain"
)

// BookingList is the in-memory reservation list for one session. Fetches
// are generation-tracked: a slow response started before a newer fetch is
// discarded instead of overwriting newer data.
type BookingList struct {
	mu    sync.Mutex
	gen   uint64
	items []domain.Booking
}

// BeginFetch marks a new fetch and returns its generation.
func (l *BookingList) BeginFetch() uint64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.gen++
	return l.gen
}

// ApplyFetch installs items only when gen is still the latest fetch.
func (l *BookingList) ApplyFetch(gen uint64, items []domain.Booking) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	if gen != l.gen {
		return false
	}
	l.items = append([]domain.Booking(nil), items...)
	return true
}

// Remove deletes exactly the entry with the given id, preserving the
// relative order of the rest.
func (l *BookingList) Remove(id string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	for i, b := range l.items {
		if b.ID == id {
			l.items = append(l.items[:i], l.items[i+1:]...)
			return true
		}
	}
	return false
}

func (l *BookingList) Items() []domain.Booking {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]domain.Booking(nil), l.items...)
}

// VenueList is the owner-side venue list for one session.
type VenueList struct {
	mu    sync.Mutex
	gen   uint64
	items []domain.Venue
}

func (l *VenueList) BeginFetch() uint64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.gen++
	return l.gen
}

func (l *VenueList) ApplyFetch(gen uint64, items []domain.Venue) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	if gen != l.gen {
		return false
	}
	l.items = append([]domain.Venue(nil), items...)
	return true
}

func (l *VenueList) Remove(id string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	for i, v := range l.items {
		if v.ID == id {
			l.items = append(l.items[:i], l.items[i+1:]...)
			return true
		}
	}
	return false
}

// Replace swaps the entry with the same id for the server's
// representation, keeping list order.
func (l *VenueList) Replace(updated domain.Venue) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	for i, v := range l.items {
		if v.ID == updated.ID {
			l.items[i] = updated
			return true
		}
	}
	return false
}

// Add appends a server-confirmed venue.
func (l *VenueList) Add(v domain.Venue) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.items = append(l.items, v)
}

func (l *VenueList) Items() []domain.Venue {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]domain.Venue(nil), l.items...)
}
