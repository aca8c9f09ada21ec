// Package observe provides a synchronous listener registry used by the
// components that own observable state (the document session and the
// editor size model).
//
// Listeners run on the caller's goroutine, in subscription order, before
// Notify returns. Owners call Notify after their state is fully updated, so a
// listener never observes a half-applied mutation.
package observe

// Listeners is a registry of callbacks receiving values of type T.
// The zero value is ready to use. It is not safe for concurrent use; owners
// mutate and notify from a single event loop.
type Listeners[T any] struct {
	nextID  int
	entries []entry[T]
}

type entry[T any] struct {
	id int
	fn func(T)
}

// Subscribe registers fn and returns a function that removes it.
// Calling the returned function more than once is a no-op.
func (l *Listeners[T]) Subscribe(fn func(T)) (unsubscribe func()) {
	id := l.nextID
	l.nextID++
	l.entries = append(l.entries, entry[T]{id: id, fn: fn})

	return func() {
		for i, e := range l.entries {
			if e.id == id {
				l.entries = append(l.entries[:i:i], l.entries[i+1:]...)
				return
			}
		}
	}
}

// Notify calls every registered listener with v.
// Listeners added or removed during Notify take effect on the next call.
func (l *Listeners[T]) Notify(v T) {
	snapshot := l.entries
	for _, e := range snapshot {
		e.fn(v)
	}
}

// Len returns the number of registered listeners.
func (l *Listeners[T]) Len() int {
	return len(l.entries)
}
