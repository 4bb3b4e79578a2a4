// Package session holds the authenticated-user state for the application.
// A session is either absent (anonymous) or carries the profile plus the
// upstream bearer token. Every mutation notifies subscribers synchronously,
// before the mutating call returns.
package session

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/vaberg/holidaze/internal/domain"
)

var ErrNoSession = errors.New("no active session")

type Session struct {
	ID    string
	User  domain.Profile
	Token string
}

// Record is the durable form of a session.
type Record struct {
	User  domain.Profile `json:"user"`
	Token string         `json:"token"`
}

// Persistence stores session records durably. Load returns (nil, nil) when
// no record exists; an unparseable record is reported as an error and the
// store treats it as logged out.
type Persistence interface {
	Save(ctx context.Context, id string, rec Record) error
	Load(ctx context.Context, id string) (*Record, error)
	Delete(ctx context.Context, id string) error
}

// Change is delivered to subscribers on every mutation. Session is nil
// after a logout.
type Change struct {
	SessionID string
	Session   *Session
}

const defaultTTL = 24 * time.Hour

// cachedSession is the in-memory copy of a session. It carries its own
// deadline so it cannot outlive the persisted record's TTL.
type cachedSession struct {
	sess      *Session
	expiresAt time.Time
}

type Store struct {
	mu       sync.RWMutex
	sessions map[string]cachedSession
	subs     map[int]func(Change)
	nextSub  int
	persist  Persistence
	ttl      time.Duration
	now      func() time.Time
}

func NewStore(persist Persistence, ttl time.Duration) *Store {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &Store{
		sessions: make(map[string]cachedSession),
		subs:     make(map[int]func(Change)),
		persist:  persist,
		ttl:      ttl,
		now:      time.Now,
	}
}

// Login creates a new session for the user and token.
func (s *Store) Login(ctx context.Context, user domain.Profile, token string) (*Session, error) {
	if token == "" {
		return nil, errors.New("access token is required")
	}

	sess := &Session{ID: uuid.NewString(), User: user, Token: token}
	if err := s.persist.Save(ctx, sess.ID, Record{User: user, Token: token}); err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.sessions[sess.ID] = cachedSession{sess: sess, expiresAt: s.now().Add(s.ttl)}
	s.mu.Unlock()

	s.notify(Change{SessionID: sess.ID, Session: sess})
	return sess, nil
}

// Get resolves a session id. The persisted record is authoritative: the
// memory copy is served only until its deadline, after which the record is
// re-checked and its absence makes the caller anonymous. A missing or
// corrupt record yields (nil, nil).
func (s *Store) Get(ctx context.Context, id string) (*Session, error) {
	if id == "" {
		return nil, nil
	}

	s.mu.Lock()
	entry, cached := s.sessions[id]
	if cached && s.now().Before(entry.expiresAt) {
		s.mu.Unlock()
		return entry.sess, nil
	}
	if cached {
		delete(s.sessions, id)
	}
	s.mu.Unlock()

	rec, err := s.persist.Load(ctx, id)
	if err != nil {
		// A record we cannot re-parse forces re-authentication.
		_ = s.persist.Delete(ctx, id)
		rec = nil
	}
	if rec == nil {
		if cached {
			// The memory copy outlived its record; dependent state goes
			// with it.
			s.notify(Change{SessionID: id, Session: nil})
		}
		return nil, nil
	}

	// Slide the record's TTL so it expires together with the new memory
	// copy.
	if err := s.persist.Save(ctx, id, *rec); err != nil {
		return nil, err
	}

	sess := &Session{ID: id, User: rec.User, Token: rec.Token}
	s.mu.Lock()
	s.sessions[id] = cachedSession{sess: sess, expiresAt: s.now().Add(s.ttl)}
	s.mu.Unlock()
	return sess, nil
}

// UpdateUser replaces the profile while preserving the token.
func (s *Store) UpdateUser(ctx context.Context, id string, user domain.Profile) (*Session, error) {
	s.mu.Lock()
	current, ok := s.sessions[id]
	if !ok {
		s.mu.Unlock()
		return nil, ErrNoSession
	}
	updated := &Session{ID: id, User: user, Token: current.sess.Token}
	s.sessions[id] = cachedSession{sess: updated, expiresAt: s.now().Add(s.ttl)}
	s.mu.Unlock()

	if err := s.persist.Save(ctx, id, Record{User: user, Token: updated.Token}); err != nil {
		return nil, err
	}

	s.notify(Change{SessionID: id, Session: updated})
	return updated, nil
}

// Logout destroys the session in memory and in persistence.
func (s *Store) Logout(ctx context.Context, id string) error {
	s.mu.Lock()
	delete(s.sessions, id)
	s.mu.Unlock()

	if err := s.persist.Delete(ctx, id); err != nil {
		return err
	}

	s.notify(Change{SessionID: id, Session: nil})
	return nil
}

// Subscribe registers fn for change notifications and returns its
// unsubscribe function.
func (s *Store) Subscribe(fn func(Change)) func() {
	s.mu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}
}

func (s *Store) notify(change Change) {
	s.mu.RLock()
	fns := make([]func(Change), 0, len(s.subs))
	for _, fn := range s.subs {
		fns = append(fns, fn)
	}
	s.mu.RUnlock()

	for _, fn := range fns {
		fn(change)
	}
}
