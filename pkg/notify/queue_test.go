package notify

import (
	"errors"
	"fmt"
	"testing"
	"time"
)

type recordingAlerter struct {
	calls []string
	err   error
}

func (r *recordingAlerter) Alert(title, body string) error {
	r.calls = append(r.calls, fmt.Sprintf("%s: %s", title, body))
	return r.err
}

func TestEnqueueFIFOOrder(t *testing.T) {
	q := NewQueue(DefaultTTL, nil)

	for i := 0; i < 5; i++ {
		q.Enqueue(fmt.Sprintf("contact-%d", i), "hello", int64(i))
	}

	entries := q.Entries()
	if len(entries) != 5 {
		t.Fatalf("Len = %d, want 5", len(entries))
	}
	for i, n := range entries {
		if n.ContactName != fmt.Sprintf("contact-%d", i) {
			t.Errorf("entry %d = %q, out of insertion order", i, n.ContactName)
		}
	}
}

func TestDismissIsIdempotent(t *testing.T) {
	q := NewQueue(DefaultTTL, nil)
	n := q.Enqueue("Anna Smirnova", "hi", 1)

	if !q.Dismiss(n.ID) {
		t.Fatal("first Dismiss() = false, want true")
	}
	if q.Dismiss(n.ID) {
		t.Error("second Dismiss() = true, want false (entry already removed)")
	}
	if q.Len() != 0 {
		t.Errorf("Len = %d after dismiss, want 0", q.Len())
	}
}

func TestDismissKeepsOrderOfRest(t *testing.T) {
	q := NewQueue(DefaultTTL, nil)
	a := q.Enqueue("a", "1", 1)
	b := q.Enqueue("b", "2", 2)
	c := q.Enqueue("c", "3", 3)

	q.Dismiss(b.ID)

	entries := q.Entries()
	if len(entries) != 2 || entries[0].ID != a.ID || entries[1].ID != c.ID {
		t.Errorf("entries after middle dismiss = %v, want [a c] order", entries)
	}
}

func TestActivateReturnsTarget(t *testing.T) {
	q := NewQueue(DefaultTTL, nil)
	n := q.Enqueue("Maria Petrova", "thanks!", 3)

	convID, ok := q.Activate(n.ID)
	if !ok || convID != 3 {
		t.Fatalf("Activate() = %d, %v, want 3, true", convID, ok)
	}
	if q.Len() != 0 {
		t.Errorf("Len = %d after activate, want 0", q.Len())
	}

	// A stale expiry acting on the activated entry must be a no-op
	if q.Dismiss(n.ID) {
		t.Error("Dismiss() after Activate() = true, want false")
	}
	if _, ok := q.Activate(n.ID); ok {
		t.Error("second Activate() = true, want false")
	}
}

func TestEnqueueRaisesAlert(t *testing.T) {
	rec := &recordingAlerter{}
	q := NewQueue(DefaultTTL, rec)

	q.Enqueue("Dmitry Ivanov", "did you see the documents?", 2)

	if len(rec.calls) != 1 {
		t.Fatalf("alerter calls = %d, want 1", len(rec.calls))
	}
	if rec.calls[0] != "Dmitry Ivanov: did you see the documents?" {
		t.Errorf("alert content = %q", rec.calls[0])
	}
}

func TestAlerterFailureIsSwallowed(t *testing.T) {
	rec := &recordingAlerter{err: errors.New("no notification daemon")}
	q := NewQueue(DefaultTTL, rec)

	n := q.Enqueue("Anna Smirnova", "hi", 1)

	if q.Len() != 1 {
		t.Errorf("Len = %d after failed alert, want 1 (queue unaffected)", q.Len())
	}
	if got, ok := q.Oldest(); !ok || got.ID != n.ID {
		t.Errorf("Oldest() = %v, %v, want the enqueued entry", got, ok)
	}
}

func TestUniqueIDs(t *testing.T) {
	q := NewQueue(DefaultTTL, nil)
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		n := q.Enqueue("x", "y", 1)
		if seen[n.ID] {
			t.Fatalf("duplicate notification id %q", n.ID)
		}
		seen[n.ID] = true
	}
}

func TestTTLDefault(t *testing.T) {
	if got := NewQueue(0, nil).TTL(); got != DefaultTTL {
		t.Errorf("TTL() = %v, want %v", got, DefaultTTL)
	}
	if got := NewQueue(2*time.Second, nil).TTL(); got != 2*time.Second {
		t.Errorf("TTL() = %v, want 2s", got)
	}
}
