// Package notify implements the transient user-feedback channel: a single
// status message that replaces its predecessor and clears itself after a
// fixed time.
package notify

import (
	"sync"
	"time"
)

// Severity of a notification.
type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityError   Severity = "error"
)

// DefaultTTL is how long a notification stays visible.
const DefaultTTL = 3 * time.Second

// Notification is a single transient status message.
type Notification struct {
	Message  string
	Severity Severity
}

// Notifier holds at most one visible notification. Posting replaces the
// current one and schedules its expiry. A generation counter ties each expiry
// timer to the post that armed it, so a timer left over from a replaced
// message can never clear a newer one.
type Notifier struct {
	mu      sync.Mutex
	ttl     time.Duration
	gen     uint64
	current *Notification
}

// New creates a Notifier whose messages expire after ttl. A non-positive ttl
// falls back to DefaultTTL.
func New(ttl time.Duration) *Notifier {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Notifier{ttl: ttl}
}

// Post replaces the visible notification and arms its expiry timer.
func (n *Notifier) Post(message string, severity Severity) {
	n.mu.Lock()
	n.gen++
	gen := n.gen
	n.current = &Notification{Message: message, Severity: severity}
	n.mu.Unlock()

	time.AfterFunc(n.ttl, func() {
		n.mu.Lock()
		if n.gen == gen {
			n.current = nil
		}
		n.mu.Unlock()
	})
}

// Current returns the visible notification, if any.
func (n *Notifier) Current() (Notification, bool) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.current == nil {
		return Notification{}, false
	}
	return *n.current, true
}

// Clear drops the visible notification without waiting for its expiry.
// Pending timers are invalidated.
func (n *Notifier) Clear() {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.gen++
	n.current = nil
}
