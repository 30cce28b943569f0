// Package testutil holds shared helpers for package tests.
package testutil

// Recorder collects events published to a callback-style subscription
// so tests can assert on count and order. Typical use:
//
//	rec := testutil.NewRecorder[store.Changed]()
//	s.OnChanged(rec.Record)
type Recorder[T any] struct {
	Events []T
}

// NewRecorder creates an empty recorder.
func NewRecorder[T any]() *Recorder[T] {
	return &Recorder[T]{}
}

// Record appends one event. Pass it as the subscription callback.
func (r *Recorder[T]) Record(ev T) {
	r.Events = append(r.Events, ev)
}

// Len returns the number of recorded events.
func (r *Recorder[T]) Len() int {
	return len(r.Events)
}

// Last returns the most recent event; zero value when none recorded.
func (r *Recorder[T]) Last() T {
	if len(r.Events) == 0 {
		var zero T
		return zero
	}
	return r.Events[len(r.Events)-1]
}

// Reset discards all recorded events.
func (r *Recorder[T]) Reset() {
	r.Events = nil
}
