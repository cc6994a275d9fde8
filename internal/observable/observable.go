// Package observable provides a minimal synchronous publish/subscribe value.
//
// A Value holds the current state of some source (the open document, the
// open folder, the preference record). Set commits a new state and then calls
// every registered listener with the new and previous state, in registration
// order, on the caller's goroutine. There is no batching and no async
// dispatch: when Set returns, every listener has run.
package observable

import "sync"

// Listener receives the committed state and the state it replaced.
type Listener[T any] func(current, previous T)

// Subscriber is implemented by anything that publishes state changes.
// The returned function unregisters the listener; calling it more than once
// is a no-op.
type Subscriber[T any] interface {
	Subscribe(Listener[T]) (unsubscribe func())
}

type subscription[T any] struct {
	id int
	fn Listener[T]
}

// Value is a concurrency-safe observable cell. The zero value holds the zero
// T and has no listeners.
type Value[T any] struct {
	mu        sync.Mutex
	current   T
	nextID    int
	listeners []subscription[T]
}

// New returns a Value initialized to v.
func New[T any](v T) *Value[T] {
	return &Value[T]{current: v}
}

// Get returns the current state.
func (v *Value[T]) Get() T {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.current
}

// Set commits next and notifies listeners.
func (v *Value[T]) Set(next T) {
	v.Update(func(T) T { return next })
}

// Update commits fn(current) and notifies listeners. fn runs under the
// value's lock and must not call back into v.
func (v *Value[T]) Update(fn func(current T) T) {
	v.mu.Lock()
	prev := v.current
	v.current = fn(prev)
	cur := v.current
	listeners := make([]subscription[T], len(v.listeners))
	copy(listeners, v.listeners)
	v.mu.Unlock()

	for _, l := range listeners {
		l.fn(cur, prev)
	}
}

// Subscribe registers fn and returns its unsubscribe function.
func (v *Value[T]) Subscribe(fn Listener[T]) func() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.nextID++
	id := v.nextID
	v.listeners = append(v.listeners, subscription[T]{id: id, fn: fn})

	var once sync.Once
	return func() {
		once.Do(func() { v.remove(id) })
	}
}

// Len reports how many listeners are registered.
func (v *Value[T]) Len() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return len(v.listeners)
}

func (v *Value[T]) remove(id int) {
	v.mu.Lock()
	defer v.mu.Unlock()
	for i, l := range v.listeners {
		if l.id == id {
			v.listeners = append(v.listeners[:i:i], v.listeners[i+1:]...)
			return
		}
	}
}
