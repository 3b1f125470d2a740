// SPDX-License-Identifier: MIT

package api

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/algoviz/catalog"
	"github.com/katalvlaran/algoviz/playback"
)

var (
	// ErrSessionNotFound is returned for an unknown or deleted session id.
	ErrSessionNotFound = errors.New("api: session not found")

	// ErrSessionLimit is returned when the store already holds its maximum.
	ErrSessionLimit = errors.New("api: session limit reached")
)

// Session pairs a generated run with the controller replaying it.
type Session struct {
	ID         uuid.UUID
	Run        *catalog.Run
	Controller *playback.Controller
	CreatedAt  time.Time
}

// Store is a bounded, concurrency-safe set of live sessions.
type Store struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]*Session
	max      int
	opts     []playback.Option
}

// NewStore returns a Store holding at most maxSessions sessions. opts are
// applied to every controller it creates.
func NewStore(maxSessions int, opts ...playback.Option) *Store {
	return &Store{
		sessions: make(map[uuid.UUID]*Session),
		max:      maxSessions,
		opts:     opts,
	}
}

// Create loads run into a new controller and registers it.
func (s *Store) Create(run *catalog.Run) (*Session, error) {
	ctl := playback.New(s.opts...)
	if err := ctl.Load(run.Frames); err != nil {
		return nil, fmt.Errorf("api: load run %s: %w", run.ID, err)
	}
	sess := &Session{
		ID:         uuid.New(),
		Run:        run,
		Controller: ctl,
		CreatedAt:  time.Now().UTC(),
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.max > 0 && len(s.sessions) >= s.max {
		return nil, fmt.Errorf("%w (%d)", ErrSessionLimit, s.max)
	}
	s.sessions[sess.ID] = sess

	return sess, nil
}

// Get returns the session with id.
func (s *Store) Get(id uuid.UUID) (*Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess, ok := s.sessions[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrSessionNotFound, id)
	}

	return sess, nil
}

// Delete stops and removes the session with id.
func (s *Store) Delete(id uuid.UUID) error {
	s.mu.Lock()
	sess, ok := s.sessions[id]
	delete(s.sessions, id)
	s.mu.Unlock()
	if !ok {
		return fmt.Errorf("%w: %s", ErrSessionNotFound, id)
	}
	sess.Controller.Close()

	return nil
}

// Len returns the number of live sessions.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.sessions)
}

// Close stops every session and empties the store.
func (s *Store) Close() {
	s.mu.Lock()
	sessions := s.sessions
	s.sessions = make(map[uuid.UUID]*Session)
	s.mu.Unlock()
	for _, sess := range sessions {
		sess.Controller.Close()
	}
}
