package fitting

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// sweepInterval bounds how often idle sessions are swept.
const sweepInterval = time.Minute

type session struct {
	room     *Room
	lastSeen time.Time
}

// Registry owns the fitting rooms of all live browsing sessions. Rooms live
// only in memory and are dropped once idle for longer than ttl. A room is
// created only when a session first puts something in it.
type Registry struct {
	mu        sync.Mutex
	sessions  map[string]*session
	ttl       time.Duration
	now       func() time.Time
	lastSweep time.Time
}

func NewRegistry(ttl time.Duration) *Registry {
	return &Registry{
		sessions: make(map[string]*session),
		ttl:      ttl,
		now:      time.Now,
	}
}

// NewSessionID returns a fresh random session identifier.
func NewSessionID() string {
	return uuid.NewString()
}

// Get returns the room for id, creating an empty one when the session is
// unknown or expired.
func (r *Registry) Get(id string) *Room {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	r.sweepLocked(now)

	s := r.liveLocked(id, now)
	if s == nil {
		s = &session{room: NewRoom()}
		r.sessions[id] = s
	}
	s.lastSeen = now
	return s.room
}

// Peek returns the live room for id, or nil. It never creates a room.
func (r *Registry) Peek(id string) *Room {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	r.sweepLocked(now)

	s := r.liveLocked(id, now)
	if s == nil {
		return nil
	}
	s.lastSeen = now
	return s.room
}

// Discard ends a session and forgets its room.
func (r *Registry) Discard(id string) {
	r.mu.Lock()
	delete(r.sessions, id)
	r.mu.Unlock()
}

// Len reports how many rooms are held.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}

func (r *Registry) expired(s *session, now time.Time) bool {
	return r.ttl > 0 && now.Sub(s.lastSeen) > r.ttl
}

func (r *Registry) liveLocked(id string, now time.Time) *session {
	s, ok := r.sessions[id]
	if !ok {
		return nil
	}
	if r.expired(s, now) {
		delete(r.sessions, id)
		return nil
	}
	return s
}

func (r *Registry) sweepLocked(now time.Time) {
	if r.ttl <= 0 || now.Sub(r.lastSweep) < sweepInterval {
		return
	}
	r.lastSweep = now
	for id, s := range r.sessions {
		if r.expired(s, now) {
			delete(r.sessions, id)
		}
	}
}
