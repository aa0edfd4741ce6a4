// Package watch provides the snapshot subscription primitive shared by the
// cart and order stores: every publish delivers the full current snapshot,
// not a diff, to each registered callback.
package watch

import "sync"

// Hub fans a snapshot out to registered subscribers. Delivery is strictly
// ordered per subscriber because callbacks run under the hub lock; keep
// callbacks cheap.
type Hub[T any] struct {
	mu     sync.Mutex
	nextID int
	subs   map[int]func(T)
}

func NewHub[T any]() *Hub[T] {
	return &Hub[T]{subs: make(map[int]func(T))}
}

// Subscribe registers fn and returns its disposer. The disposer is safe to
// call more than once; delivery stops after the first call.
func (h *Hub[T]) Subscribe(fn func(T)) func() {
	h.mu.Lock()
	id := h.nextID
	h.nextID++
	h.subs[id] = fn
	h.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			h.mu.Lock()
			delete(h.subs, id)
			h.mu.Unlock()
		})
	}
}

// Publish delivers snapshot to every current subscriber.
func (h *Hub[T]) Publish(snapshot T) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for _, fn := range h.subs {
		fn(snapshot)
	}
}

// Len reports the current subscriber count.
func (h *Hub[T]) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subs)
}
