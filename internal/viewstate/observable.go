// ABOUTME: Observable value holder used by the view-state objects.
// ABOUTME: Subscribers are notified synchronously on every Set, in subscription order.
package viewstate

import (
	"slices"
	"sync"
)

type subscriber[T any] struct {
	id int
	fn func(T)
}

// Observable holds a value and notifies subscribers when it changes.
type Observable[T any] struct {
	mu    sync.Mutex
	value T
	subs  []subscriber[T]
	next  int
}

// NewObservable returns an Observable holding initial.
func NewObservable[T any](initial T) *Observable[T] {
	return &Observable[T]{value: initial}
}

// Get returns the current value.
func (o *Observable[T]) Get() T {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.value
}

// Set stores v and calls every subscriber with it.
func (o *Observable[T]) Set(v T) {
	o.mu.Lock()
	o.value = v
	subs := slices.Clone(o.subs)
	o.mu.Unlock()

	for _, s := range subs {
		s.fn(v)
	}
}

// Subscribe registers fn and returns a function that removes it.
func (o *Observable[T]) Subscribe(fn func(T)) (unsubscribe func()) {
	o.mu.Lock()
	defer o.mu.Unlock()

	id := o.next
	o.next++
	o.subs = append(o.subs, subscriber[T]{id: id, fn: fn})

	return func() {
		o.mu.Lock()
		defer o.mu.Unlock()
		o.subs = slices.DeleteFunc(o.subs, func(s subscriber[T]) bool { return s.id == id })
	}
}
