// Package notify provides transient status notifications. A notification
// replaces whatever is currently shown; it either auto-dismisses after a
// short duration or, when marked as progress, persists until replaced.
package notify

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// DefaultDismissAfter is how long a non-progress notification stays visible.
const DefaultDismissAfter = 4 * time.Second

// Notifier displays a transient message. Progress notifications persist
// until replaced and carry a busy indicator; others auto-dismiss.
type Notifier interface {
	Notify(message string, progress bool)
}

// Notification is a single transient message.
type Notification struct {
	ID       string    `json:"id"`
	Message  string    `json:"message"`
	Progress bool      `json:"progress"`
	ShownAt  time.Time `json:"shown_at"`
}

// Hub is an in-process Notifier. A UI layer subscribes for updates; callers
// only ever see the single current notification.
type Hub struct {
	mu           sync.Mutex
	current      *Notification
	timer        *time.Timer
	subs         []chan Notification
	dismissAfter time.Duration
}

// NewHub creates a Hub with the default dismiss duration.
func NewHub() *Hub {
	return &Hub{dismissAfter: DefaultDismissAfter}
}

// NewHubWithDismiss creates a Hub with a custom dismiss duration.
func NewHubWithDismiss(d time.Duration) *Hub {
	if d <= 0 {
		d = DefaultDismissAfter
	}
	return &Hub{dismissAfter: d}
}

// Notify replaces the current notification. When progress is false the
// notification is cleared after the dismiss duration unless another one
// replaced it first.
func (h *Hub) Notify(message string, progress bool) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.timer != nil {
		h.timer.Stop()
		h.timer = nil
	}

	n := Notification{
		ID:       uuid.New().String(),
		Message:  message,
		Progress: progress,
		ShownAt:  time.Now(),
	}
	h.current = &n
	h.broadcast(n)

	if !progress {
		id := n.ID
		h.timer = time.AfterFunc(h.dismissAfter, func() {
			h.dismiss(id)
		})
	}
}

// Current returns the notification on display, or nil.
func (h *Hub) Current() *Notification {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.current == nil {
		return nil
	}
	n := *h.current
	return &n
}

// Subscribe returns a channel receiving every notification shown after the
// call. Slow subscribers miss updates rather than blocking the notifier.
func (h *Hub) Subscribe() <-chan Notification {
	h.mu.Lock()
	defer h.mu.Unlock()
	ch := make(chan Notification, 8)
	h.subs = append(h.subs, ch)
	return ch
}

// dismiss clears the current notification if it still matches id.
func (h *Hub) dismiss(id string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.current != nil && h.current.ID == id {
		h.current = nil
	}
}

// broadcast sends to all subscribers without blocking. Caller holds the lock.
func (h *Hub) broadcast(n Notification) {
	for _, ch := range h.subs {
		select {
		case ch <- n:
		default:
		}
	}
}
