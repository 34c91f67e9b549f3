// Package observable provides a single observable value with a read-only view.
package observable

import (
	"slices"
	"sync"
)

// ReadOnly is the consumer side of a Value.
type ReadOnly[T any] interface {
	Get() T
	Subscribe(fn func(T)) (cancel func())
}

// Value holds one value of type T and notifies subscribers when it is Set.
type Value[T any] struct {
	mu     sync.RWMutex
	value  T
	nextID uint64
	subs   []subscription[T]
}

type subscription[T any] struct {
	id uint64
	fn func(T)
}

func New[T any](initial T) *Value[T] {
	return &Value[T]{value: initial}
}

func (v *Value[T]) Get() T {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.value
}

// Set replaces the value and calls every subscriber on the calling goroutine,
// in subscription order.
func (v *Value[T]) Set(value T) {
	v.mu.Lock()
	v.value = value
	subs := slices.Clone(v.subs)
	v.mu.Unlock()

	for _, s := range subs {
		s.fn(value)
	}
}

// Subscribe registers fn and immediately calls it with the current value.
// The returned cancel func may be called more than once.
func (v *Value[T]) Subscribe(fn func(T)) (cancel func()) {
	v.mu.Lock()
	v.nextID++
	id := v.nextID
	v.subs = append(v.subs, subscription[T]{id: id, fn: fn})
	current := v.value
	v.mu.Unlock()

	fn(current)

	var once sync.Once
	return func() {
		once.Do(func() { v.unsubscribe(id) })
	}
}

func (v *Value[T]) unsubscribe(id uint64) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.subs = slices.DeleteFunc(v.subs, func(s subscription[T]) bool { return s.id == id })
}

// ReadOnly returns a view that cannot Set.
func (v *Value[T]) ReadOnly() ReadOnly[T] {
	return readOnly[T]{v: v}
}

type readOnly[T any] struct {
	v *Value[T]
}

func (r readOnly[T]) Get() T {
	return r.v.Get()
}

func (r readOnly[T]) Subscribe(fn func(T)) func() {
	return r.v.Subscribe(fn)
}
