// Package notify is the application-wide notification sink. Producers
// push short success/error/info messages; every subscriber is handed
// the full active list on each change, and entries drop off on their
// own after a fixed display window.
package notify

import (
	"strconv"
	"sync"
	"time"
)

const DefaultTTL = 5 * time.Second

type Kind string

const (
	KindSuccess Kind = "success"
	KindError   Kind = "error"
	KindInfo    Kind = "info"
)

type Notification struct {
	ID      string `json:"id"`
	Kind    Kind   `json:"type"`
	Message string `json:"message"`
}

// Hub fans notifications out to its subscribers. Construct one per
// application and inject it; there is no package-level instance.
type Hub struct {
	ttl time.Duration

	mu      sync.Mutex
	seq     int
	nextSub int
	active  []Notification
	subs    map[int]func([]Notification)
}

func NewHub(ttl time.Duration) *Hub {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Hub{ttl: ttl, subs: make(map[int]func([]Notification))}
}

func (h *Hub) Success(message string) { h.Notify(KindSuccess, message) }
func (h *Hub) Error(message string)   { h.Notify(KindError, message) }
func (h *Hub) Info(message string)    { h.Notify(KindInfo, message) }

func (h *Hub) Notify(kind Kind, message string) {
	h.mu.Lock()
	h.seq++
	n := Notification{ID: strconv.Itoa(h.seq), Kind: kind, Message: message}
	h.active = append(h.active, n)
	h.mu.Unlock()

	h.broadcast()
	time.AfterFunc(h.ttl, func() { h.remove(n.ID) })
}

// Subscribe registers an observer and immediately replays the current
// list to it. The returned func cancels the subscription.
func (h *Hub) Subscribe(fn func([]Notification)) (cancel func()) {
	h.mu.Lock()
	id := h.nextSub
	h.nextSub++
	h.subs[id] = fn
	h.mu.Unlock()

	fn(h.Active())
	return func() {
		h.mu.Lock()
		delete(h.subs, id)
		h.mu.Unlock()
	}
}

func (h *Hub) Active() []Notification {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make([]Notification, len(h.active))
	copy(out, h.active)
	return out
}

func (h *Hub) remove(id string) {
	h.mu.Lock()
	found := false
	for i, n := range h.active {
		if n.ID == id {
			h.active = append(h.active[:i], h.active[i+1:]...)
			found = true
			break
		}
	}
	h.mu.Unlock()
	if found {
		h.broadcast()
	}
}

// broadcast snapshots the list and the subscribers, then calls outside
// the lock so a subscriber may publish or unsubscribe from inside its
// callback.
func (h *Hub) broadcast() {
	h.mu.Lock()
	list := make([]Notification, len(h.active))
	copy(list, h.active)
	subs := make([]func([]Notification), 0, len(h.subs))
	for _, fn := range h.subs {
		subs = append(subs, fn)
	}
	h.mu.Unlock()

	for _, fn := range subs {
		fn(list)
	}
}
