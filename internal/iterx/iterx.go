// Package iterx contains small adapters between ordinary Go values and
// iter.Seq, shared by the chain constructors.
package iterx

import "iter"

// FromSlice returns a sequence over the elements of in.
func FromSlice[T any](in []T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range in {
			if !yield(v) {
				return
			}
		}
	}
}

// FromChan returns a sequence over the values received from in. The
// sequence ends when in is closed.
func FromChan[T any](in <-chan T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for v := range in {
			if !yield(v) {
				return
			}
		}
	}
}

// Empty returns a sequence that yields nothing.
func Empty[T any]() iter.Seq[T] {
	return func(yield func(T) bool) {}
}
