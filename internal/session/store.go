// Package session keeps per-browser analysis state between requests. State
// lives in memory only: restarting the server clears every session, which is
// the intended lifecycle for uploaded datasets.
package session

import (
	"context"
	"sync"
	"time"

	"watermetal/ai"
	"watermetal/domain/core"
	"watermetal/domain/risk"
)

// Session is everything the dashboard knows about one uploaded dataset.
type Session struct {
	ID          core.SessionID
	Filename    string
	Fingerprint core.Fingerprint
	UploadedAt  time.Time
	Table       risk.Table
	Bundle      *risk.Bundle
	LastAsk     *ai.AskOutcome
}

type record struct {
	sess     *Session
	lastSeen time.Time
}

// Store is an in-memory session map with idle expiry.
type Store struct {
	mu   sync.RWMutex
	ttl  time.Duration
	byID map[core.SessionID]*record
}

func NewStore(ttl time.Duration) *Store {
	return &Store{
		ttl:  ttl,
		byID: make(map[core.SessionID]*record),
	}
}

// Put stores or replaces a session and refreshes its idle clock.
func (s *Store) Put(sess *Session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.byID[sess.ID] = &record{sess: sess, lastSeen: time.Now()}
}

// Get returns the session and refreshes its idle clock.
func (s *Store) Get(id core.SessionID) (*Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.byID[id]
	if !ok {
		return nil, false
	}
	rec.lastSeen = time.Now()
	return rec.sess, true
}

// Update mutates a session under the store lock, so concurrent requests from
// one browser cannot interleave their writes.
func (s *Store) Update(id core.SessionID, fn func(*Session)) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.byID[id]
	if !ok {
		return false
	}
	fn(rec.sess)
	rec.lastSeen = time.Now()
	return true
}

func (s *Store) Delete(id core.SessionID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.byID, id)
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.byID)
}

// Sweep removes sessions idle longer than the TTL and reports how many were
// dropped. A non-positive TTL disables expiry.
func (s *Store) Sweep() int {
	if s.ttl <= 0 {
		return 0
	}

	cutoff := time.Now().Add(-s.ttl)
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for id, rec := range s.byID {
		if rec.lastSeen.Before(cutoff) {
			delete(s.byID, id)
			removed++
		}
	}
	return removed
}

// StartSweeper runs Sweep on the given interval until the context is done.
func (s *Store) StartSweeper(ctx context.Context, interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				s.Sweep()
			}
		}
	}()
}
