package session

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Store hands out sessions keyed by opaque ids, so the HTTP host can serve
// independent interactive users. Sessions idle past their allotted time are
// evicted by a background cleanup loop.
type Store struct {
	cfg Config

	mu       sync.Mutex
	sessions map[string]*entry
}

type entry struct {
	session  *Session
	lastSeen time.Time
}

// NewStore creates an empty session store; every session it creates is
// configured with cfg.
func NewStore(cfg Config) *Store {
	return &Store{
		cfg:      cfg,
		sessions: make(map[string]*entry),
	}
}

// Create makes a fresh session and returns its id.
func (st *Store) Create() (string, *Session) {
	id := uuid.New().String()
	s := New(st.cfg)

	st.mu.Lock()
	st.sessions[id] = &entry{session: s, lastSeen: time.Now()}
	st.mu.Unlock()

	return id, s
}

// Get returns the session for id and marks it as recently used.
func (st *Store) Get(id string) (*Session, bool) {
	st.mu.Lock()
	defer st.mu.Unlock()

	e, ok := st.sessions[id]
	if !ok {
		return nil, false
	}
	e.lastSeen = time.Now()
	return e.session, true
}

// Len reports the number of live sessions.
func (st *Store) Len() int {
	st.mu.Lock()
	defer st.mu.Unlock()

	return len(st.sessions)
}

// cleanup evicts sessions idle for maxIdle or longer.
func (st *Store) cleanup(now time.Time, maxIdle time.Duration) {
	st.mu.Lock()
	defer st.mu.Unlock()

	for id, e := range st.sessions {
		if now.Sub(e.lastSeen) >= maxIdle {
			delete(st.sessions, id)
		}
	}
}

// StartCleanup launches a background goroutine that evicts idle sessions
// every interval. It stops when ctx is cancelled.
func (st *Store) StartCleanup(ctx context.Context, interval, maxIdle time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case now := <-ticker.C:
				st.cleanup(now, maxIdle)
			}
		}
	}()
}
