// Package event provides a minimal typed publish/subscribe primitive
// with synchronous, ordered delivery on the calling goroutine.
package event

// Stream fans one event type out to its subscribers. Delivery is
// synchronous and in subscription order; Publish returns after every
// subscriber has run. A Stream is not safe for concurrent use; the
// engine runs on a single owning goroutine.
type Stream[T any] struct {
	subs   []subscriber[T]
	nextID int
}

type subscriber[T any] struct {
	id int
	fn func(T)
}

// Subscribe registers fn and returns a function that removes it.
// Unsubscribing during delivery takes effect on the next Publish.
func (s *Stream[T]) Subscribe(fn func(T)) func() {
	id := s.nextID
	s.nextID++
	s.subs = append(s.subs, subscriber[T]{id: id, fn: fn})
	return func() {
		// Removal builds a fresh slice instead of compacting in place:
		// Publish may be mid-iteration over the old backing array, and an
		// in-place shift would skip or double-deliver to later subscribers.
		for i, sub := range s.subs {
			if sub.id == id {
				next := make([]subscriber[T], 0, len(s.subs)-1)
				next = append(next, s.subs[:i]...)
				next = append(next, s.subs[i+1:]...)
				s.subs = next
				return
			}
		}
	}
}

// Publish delivers ev to every subscriber in subscription order.
func (s *Stream[T]) Publish(ev T) {
	// Iterate over a snapshot so a subscriber adding another
	// subscriber does not receive the current event twice.
	subs := s.subs
	for _, sub := range subs {
		sub.fn(ev)
	}
}

// Len returns the number of active subscribers.
func (s *Stream[T]) Len() int {
	return len(s.subs)
}
