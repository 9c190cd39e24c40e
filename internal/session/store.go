// Package session keeps per-visitor chat history in memory. Sessions are
// identified by opaque ids the client echoes back; nothing here survives a
// restart, which is fine for a stateless assistant widget.
package session

import (
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

type Message struct {
	Role    string
	Content string
}

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Store is a TTL-evicting map of session id to chat history. Histories are
// capped at maxHistory messages; the oldest turns fall off first so the
// context sent upstream stays bounded.
type Store struct {
	mu         sync.Mutex
	ttl        time.Duration
	maxHistory int
	now        func() time.Time
	sessions   map[string]*entry
}

type entry struct {
	history  []Message
	lastSeen time.Time
}

func NewStore(ttl time.Duration, maxHistory int) *Store {
	if ttl <= 0 {
		ttl = 30 * time.Minute
	}
	if maxHistory <= 0 {
		maxHistory = 20
	}
	return &Store{
		ttl:        ttl,
		maxHistory: maxHistory,
		now:        time.Now,
		sessions:   make(map[string]*entry),
	}
}

// EnsureID normalizes a client-supplied session id, minting a fresh one when
// the client sent nothing.
func (s *Store) EnsureID(id string) string {
	id = strings.TrimSpace(id)
	if id == "" {
		return uuid.NewString()
	}
	return id
}

// History returns a copy of the session's messages, oldest first. Expired or
// unknown sessions yield nil.
func (s *Store) History(id string) []Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.evict()

	e, ok := s.sessions[id]
	if !ok {
		return nil
	}
	e.lastSeen = s.now()
	history := make([]Message, len(e.history))
	copy(history, e.history)
	return history
}

// Append records messages for the session, creating it on first use.
func (s *Store) Append(id string, messages ...Message) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.evict()

	e, ok := s.sessions[id]
	if !ok {
		e = &entry{}
		s.sessions[id] = e
	}
	e.lastSeen = s.now()
	e.history = append(e.history, messages...)
	if over := len(e.history) - s.maxHistory; over > 0 {
		e.history = append([]Message(nil), e.history[over:]...)
	}
}

// Reset drops one session's history.
func (s *Store) Reset(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
}

// Len reports the live session count after eviction.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.evict()
	return len(s.sessions)
}

// evict removes sessions idle past the TTL. Callers hold the lock.
func (s *Store) evict() {
	cutoff := s.now().Add(-s.ttl)
	for id, e := range s.sessions {
		if e.lastSeen.Before(cutoff) {
			delete(s.sessions, id)
		}
	}
}
