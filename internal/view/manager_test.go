package view

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vaberg/holidaze/internal/session"
)

type stubAPI struct {
	MockBookingAPI
	MockVenueAPI
}

func TestManager_ReusesViewStatePerSession(t *testing.T) {
	m := NewManager(&stubAPI{})

	assert.Same(t, m.Bookings("s1"), m.Bookings("s1"))
	assert.Same(t, m.Venues("s1"), m.Venues("s1"))
	assert.NotSame(t, m.Bookings("s1"), m.Bookings("s2"))
}

func TestManager_LogoutDropsViewState(t *testing.T) {
	m := NewManager(&stubAPI{})
	before := m.Bookings("s1")

	m.OnSessionChange(session.Change{SessionID: "s1", Session: nil})

	assert.NotSame(t, before, m.Bookings("s1"))
}

func TestManager_LoginChangeKeepsState(t *testing.T) {
	m := NewManager(&stubAPI{})
	before := m.Venues("s1")

	m.OnSessionChange(session.Change{SessionID: "s1", Session: &session.Session{ID: "s1"}})

	assert.Same(t, before, m.Venues("s1"))
}
