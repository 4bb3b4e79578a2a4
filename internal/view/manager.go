package view

import (
	"sync"

	"github.com/vaberg/holidaze/internal/session"
)

// API is the upstream surface the management views need.
type API interface {
	BookingAPI
	VenueAPI
}

// Manager hands out the per-session view state and drops it when the
// session ends.
type Manager struct {
	mu       sync.Mutex
	api      API
	bookings map[string]*MyBookings
	venues   map[string]*MyVenues
}

func NewManager(api API) *Manager {
	return &Manager{
		api:      api,
		bookings: make(map[string]*MyBookings),
		venues:   make(map[string]*MyVenues),
	}
}

func (m *Manager) Bookings(sessionID string) *MyBookings {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.bookings[sessionID]
	if !ok {
		v = NewMyBookings(m.api)
		m.bookings[sessionID] = v
	}
	return v
}

func (m *Manager) Venues(sessionID string) *MyVenues {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.venues[sessionID]
	if !ok {
		v = NewMyVenues(m.api)
		m.venues[sessionID] = v
	}
	return v
}

// Drop forgets all view state for a session.
func (m *Manager) Drop(sessionID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.bookings, sessionID)
	delete(m.venues, sessionID)
}

// OnSessionChange wires the manager to session store notifications: view
// state does not outlive its session.
func (m *Manager) OnSessionChange(change session.Change) {
	if change.Session == nil {
		m.Drop(change.SessionID)
	}
}
