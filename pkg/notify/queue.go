package notify

import (
	"fmt"
	"sync"
	"time"

	"github.com/gen2brain/beeep"
)

// DefaultTTL is how long a toast stays on screen before expiring on its own
const DefaultTTL = 5 * time.Second

// Notification is a single pending toast
type Notification struct {
	ID             string
	ContactName    string
	Message        string
	ConversationID int64
	CreatedAt      time.Time
}

// Alerter raises an OS-level alert for a notification. It is strictly
// best-effort: a failure never affects the in-app queue.
type Alerter interface {
	Alert(title, body string) error
}

// DesktopAlerter sends alerts through the host's notification daemon
type DesktopAlerter struct {
	AppName  string
	IconPath string
}

// Alert raises a desktop notification
func (d DesktopAlerter) Alert(title, body string) error {
	// Truncate body for the notification daemon
	if len(body) > 100 {
		body = body[:97] + "..."
	}
	return beeep.Notify(fmt.Sprintf("%s - %s", d.AppName, title), body, d.IconPath)
}

// Queue is the ordered collection of pending toasts. Entries render in
// insertion order and removal never reorders the rest. Enqueue comes from the
// inbound feed while Dismiss/Activate come from user input, so every
// mutation is a single locked read-modify-write.
type Queue struct {
	mu      sync.Mutex
	entries []Notification
	nextSeq int64
	ttl     time.Duration
	alerter Alerter
}

// NewQueue creates an empty queue. alerter may be nil when OS alerts are
// unavailable or denied; the in-app queue works the same either way.
func NewQueue(ttl time.Duration, alerter Alerter) *Queue {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Queue{ttl: ttl, alerter: alerter}
}

// TTL returns how long an entry lives without user interaction
func (q *Queue) TTL() time.Duration { return q.ttl }

// Enqueue appends a toast for an inbound message and returns its id. The
// caller schedules the expiry timer for TTL() from now.
func (q *Queue) Enqueue(contactName, message string, conversationID int64) Notification {
	q.mu.Lock()
	now := time.Now()
	q.nextSeq++
	n := Notification{
		ID:             fmt.Sprintf("%d-%d", now.UnixMilli(), q.nextSeq),
		ContactName:    contactName,
		Message:        message,
		ConversationID: conversationID,
		CreatedAt:      now,
	}
	q.entries = append(q.entries, n)
	q.mu.Unlock()

	if q.alerter != nil {
		// Best-effort OS alert; failure is deliberately swallowed
		_ = q.alerter.Alert(contactName, message)
	}
	return n
}

// Dismiss removes the entry with the given id. Returns false when the entry
// is already gone, which makes the expiry timer and the manual dismiss path
// safe to race: whichever runs second is a no-op.
func (q *Queue) Dismiss(id string) bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	for i, n := range q.entries {
		if n.ID == id {
			q.entries = append(q.entries[:i], q.entries[i+1:]...)
			return true
		}
	}
	return false
}

// Activate removes the entry and returns its target conversation id. The
// caller applies the navigation in the same update step so removal and
// navigation are observed together.
func (q *Queue) Activate(id string) (int64, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	for i, n := range q.entries {
		if n.ID == id {
			q.entries = append(q.entries[:i], q.entries[i+1:]...)
			return n.ConversationID, true
		}
	}
	return 0, false
}

// Entries returns a snapshot of the pending toasts in insertion order
func (q *Queue) Entries() []Notification {
	q.mu.Lock()
	defer q.mu.Unlock()
	out := make([]Notification, len(q.entries))
	copy(out, q.entries)
	return out
}

// Len returns the number of pending toasts
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.entries)
}

// Oldest returns the front of the queue, the entry keyboard shortcuts act on
func (q *Queue) Oldest() (Notification, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.entries) == 0 {
		return Notification{}, false
	}
	return q.entries[0], true
}
