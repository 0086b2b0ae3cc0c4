package coreseq

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
)

// ChainError describes the failure of a single element inside a chain.
//
// The element that caused the failure is dropped from the value stream
// and the ChainError is forwarded on the chain's error channel instead,
// so one bad element never aborts the whole pipeline.
type ChainError struct {
	// ID is a UUIDv7 assigned when the error is created. Use it to
	// correlate an error with log lines emitted elsewhere.
	ID uuid.UUID

	// Item is the element that failed, when known.
	Item any

	// Reason is the underlying error reported by the stage.
	Reason error
}

func newChainError(item any, reason error) ChainError {
	return ChainError{
		ID:     uuid.Must(uuid.NewV7()),
		Item:   item,
		Reason: reason,
	}
}

// Error implements the error interface.
func (e ChainError) Error() string {
	return fmt.Sprintf("%v (item %v)", e.Reason, e.Item)
}

// Unwrap returns the underlying stage error.
func (e ChainError) Unwrap() error {
	return e.Reason
}

// errSink is the shared error channel behind a family of derived chains.
//
// Sends and lifecycle changes are serialized through the mutex so a
// stage still producing errors can never race with the close performed
// when a consumer finishes iterating. Finishing a consumption closes
// the current channel and arms a fresh one, so a chain over a
// re-iterable source forwards errors on every consumption, not just the
// first.
type errSink struct {
	mu sync.Mutex
	ch chan ChainError
}

func newErrSink() *errSink {
	return &errSink{ch: make(chan ChainError)}
}

func (s *errSink) send(e ChainError) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ch <- e
}

// channel returns the channel the next consumption delivers errors on.
func (s *errSink) channel() <-chan ChainError {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ch
}

// finish closes the current channel, releasing its receiver, and arms a
// fresh one for the next consumption. Stage sends complete synchronously
// inside the iteration being finished, so no send can be in flight here.
func (s *errSink) finish() {
	s.mu.Lock()
	defer s.mu.Unlock()
	close(s.ch)
	s.ch = make(chan ChainError)
}
