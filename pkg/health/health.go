// Package health provides HTTP liveness and readiness endpoints backed by
// named check functions.
package health

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"sync/atomic"
	"time"
)

// DefaultCheckTimeout bounds a single check when no timeout is given.
const DefaultCheckTimeout = 5 * time.Second

// CheckFunc probes a single dependency. A nil error means healthy.
type CheckFunc func(ctx context.Context) error

type check struct {
	name    string
	timeout time.Duration
	fn      CheckFunc
}

// Health runs registered checks on demand and reports the result over HTTP.
// Liveness checks guard the process itself; readiness checks additionally
// gate traffic and can be flipped off during shutdown with SetReady.
type Health struct {
	mu        sync.Mutex
	liveness  []check
	readiness []check
	ready     atomic.Bool
}

// New returns a Health with no checks registered and readiness off.
func New() *Health {
	return &Health{}
}

// AddLivenessCheck registers fn under name for the liveness endpoint.
func (h *Health) AddLivenessCheck(name string, timeout time.Duration, fn CheckFunc) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.liveness = append(h.liveness, newCheck(name, timeout, fn))
}

// AddReadinessCheck registers fn under name for the readiness endpoint.
// Readiness implies liveness, so readiness checks run on both endpoints.
func (h *Health) AddReadinessCheck(name string, timeout time.Duration, fn CheckFunc) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.readiness = append(h.readiness, newCheck(name, timeout, fn))
}

func newCheck(name string, timeout time.Duration, fn CheckFunc) check {
	if timeout <= 0 {
		timeout = DefaultCheckTimeout
	}
	return check{name: name, timeout: timeout, fn: fn}
}

// SetReady toggles the readiness gate. The readiness endpoint reports 503
// while the gate is off regardless of check results.
func (h *Health) SetReady(ready bool) {
	h.ready.Store(ready)
}

// LiveEndpoint reports process liveness.
func (h *Health) LiveEndpoint(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	checks := append([]check(nil), h.liveness...)
	h.mu.Unlock()

	h.respond(w, r, checks, true)
}

// ReadyEndpoint reports readiness to serve traffic: the readiness gate plus
// every registered check.
func (h *Health) ReadyEndpoint(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	checks := append([]check(nil), h.liveness...)
	checks = append(checks, h.readiness...)
	h.mu.Unlock()

	h.respond(w, r, checks, h.ready.Load())
}

type report struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks,omitempty"`
}

func (h *Health) respond(w http.ResponseWriter, r *http.Request, checks []check, gate bool) {
	results := make(map[string]string, len(checks))
	healthy := gate

	for _, c := range checks {
		ctx, cancel := context.WithTimeout(r.Context(), c.timeout)
		err := c.fn(ctx)
		cancel()
		if err != nil {
			results[c.name] = err.Error()
			healthy = false
			continue
		}
		results[c.name] = "ok"
	}

	status := "ok"
	code := http.StatusOK
	if !healthy {
		status = "unavailable"
		code = http.StatusServiceUnavailable
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(report{Status: status, Checks: results})
}
