package coreseq

import (
	"fmt"
	"iter"

	"coreseq/internal/iterx"
)

// Chain represents a lazily-evaluated stream of values of type T.
//
// A Chain pairs an iter.Seq with an error channel. Building or composing
// chains performs no element processing; work happens only when the chain
// is consumed through Values, Results, Collect or one of the debugging
// taps. Every transformation returns a new Chain sharing the parent's
// error channel, so errors propagate automatically through a pipeline.
//
// A Chain is as re-iterable as its source: a chain over a slice may be
// consumed many times, a chain over a channel or an io.Reader only once.
type Chain[T any] struct {
	seq    iter.Seq[T]
	errors *errSink
}

// From wraps an existing iter.Seq into a Chain. A nil seq behaves as an
// empty sequence.
func From[T any](seq iter.Seq[T]) Chain[T] {
	if seq == nil {
		seq = iterx.Empty[T]()
	}
	return Chain[T]{seq: seq, errors: newErrSink()}
}

// FromSlice returns a Chain over the elements of in.
func FromSlice[T any](in []T) Chain[T] {
	return From(iterx.FromSlice(in))
}

// FromChan returns a Chain over the values received from in. The chain
// can be consumed once and ends when in is closed.
func FromChan[T any](in <-chan T) Chain[T] {
	return From(iterx.FromChan(in))
}

// FailFunc forwards a stage failure for one element onto the chain's
// error channel.
type FailFunc func(item any, reason error)

// Source adapts a fallible pull-based producer into a Chain.
//
// fn runs once per iteration of the chain. It pushes values through
// yield, stopping when yield returns false, and reports per-element or
// terminal failures through fail. This is the constructor behind the
// line and CSV sources.
func Source[T any](fn func(yield func(T) bool, fail FailFunc)) Chain[T] {
	errs := newErrSink()
	return Chain[T]{
		errors: errs,
		seq: func(yield func(T) bool) {
			fn(yield, func(item any, reason error) {
				errs.send(newChainError(item, reason))
			})
		},
	}
}

// Values returns the chain's raw value sequence.
//
// Use Values when no upstream stage can fail. A fallible stage blocks on
// the error channel until somebody receives, so chains containing TryMap,
// TryFilter or a fallible source should be consumed through Results or
// Collect instead.
func (c Chain[T]) Values() iter.Seq[T] {
	return c.seq
}

// Results returns the chain's values together with its error channel.
//
// The error channel is closed once the returned sequence has been fully
// iterated or the consumer stops early; each Results call hands out a
// fresh channel, so a chain over a re-iterable source forwards errors
// on every consumption. Errors must be consumed concurrently with the
// values or the pipeline will block:
//
//	vals, errs := c.Results()
//	go func() {
//		for err := range errs {
//			log.Println(err)
//		}
//	}()
//	for v := range vals {
//		...
//	}
func (c Chain[T]) Results() (iter.Seq[T], <-chan ChainError) {
	seq := func(yield func(T) bool) {
		defer c.errors.finish()
		for v := range c.seq {
			if !yield(v) {
				return
			}
		}
	}
	return seq, c.errors.channel()
}

// Collect fully consumes the chain, returning the materialized values
// and every error the pipeline forwarded. It performs the concurrent
// error draining that Results requires.
func Collect[T any](c Chain[T]) ([]T, []ChainError) {
	vals, errsCh := c.Results()

	var out []T
	var errs []ChainError

	done := make(chan struct{})
	go func() {
		defer close(done)
		for err := range errsCh {
			errs = append(errs, err)
		}
	}()

	for v := range vals {
		out = append(out, v)
	}
	<-done
	return out, errs
}

// Tap returns a Chain that invokes fn on every element as it flows
// through, without altering the stream. Taps registered on successive
// chains run in pipeline order.
//
// Tap panics if fn is nil.
func (c Chain[T]) Tap(fn func(T)) Chain[T] {
	if fn == nil {
		panic("coreseq.Tap: fn must not be nil")
	}
	return Chain[T]{
		errors: c.errors,
		seq: func(yield func(T) bool) {
			for v := range c.seq {
				fn(v)
				if !yield(v) {
					return
				}
			}
		},
	}
}

// PrintFunc is the sink used by the Show, Head and Count taps. The
// default prints to standard output like fmt.Println.
type PrintFunc func(args ...any)

func pickPrint(fns []PrintFunc) PrintFunc {
	if len(fns) > 0 && fns[0] != nil {
		return fns[0]
	}
	return func(args ...any) { fmt.Println(args...) }
}

// Show prints every element of the chain and returns the chain for
// further use. It consumes one full iteration of the source.
//
// Show is a no-op when verbose output is disabled via SetVerbose.
func (c Chain[T]) Show(print ...PrintFunc) Chain[T] {
	if !Verbose() {
		return c
	}
	pf := pickPrint(print)
	c.tapIterate(func() {
		for v := range c.seq {
			pf(v)
		}
	}, pf)
	return c
}

// ShowNumbered behaves like Show but prefixes each element with its
// 1-based position in the stream.
func (c Chain[T]) ShowNumbered(print ...PrintFunc) Chain[T] {
	if !Verbose() {
		return c
	}
	pf := pickPrint(print)
	c.tapIterate(func() {
		i := 0
		for v := range c.seq {
			i++
			pf(fmt.Sprintf("%d: %v", i, v))
		}
	}, pf)
	return c
}

// headCount is how many leading elements Head prints.
const headCount = 5

// Head prints the first few elements of the chain and returns the chain.
// It stops iterating the source as soon as it has seen enough.
//
// Head is a no-op when verbose output is disabled via SetVerbose.
func (c Chain[T]) Head(print ...PrintFunc) Chain[T] {
	if !Verbose() {
		return c
	}
	pf := pickPrint(print)
	c.tapIterate(func() {
		i := 0
		for v := range c.seq {
			pf(v)
			i++
			if i == headCount {
				return
			}
		}
	}, pf)
	return c
}

// Count prints the number of elements in the chain, prefixed by label
// (or "count" when label is empty), and returns the chain. It consumes
// one full iteration of the source.
//
// Count is a no-op when verbose output is disabled via SetVerbose.
func (c Chain[T]) Count(label string, print ...PrintFunc) Chain[T] {
	if !Verbose() {
		return c
	}
	if label == "" {
		label = "count"
	}
	pf := pickPrint(print)
	c.tapIterate(func() {
		n := 0
		for range c.seq {
			n++
		}
		pf(label, n)
	}, pf)
	return c
}

// tapIterate runs body while concurrently draining the chain's error
// channel, so a tap over a fallible pipeline cannot block. Drained
// errors are printed through pf once body returns; by then every
// in-flight send has been delivered because stage sends complete
// synchronously within the iteration that body drives.
func (c Chain[T]) tapIterate(body func(), pf PrintFunc) {
	done := make(chan struct{})
	drained := make(chan struct{})
	ch := c.errors.channel()
	var errs []ChainError
	go func() {
		defer close(drained)
		for {
			select {
			case e, ok := <-ch:
				if !ok {
					return
				}
				errs = append(errs, e)
			case <-done:
				return
			}
		}
	}()
	body()
	close(done)
	<-drained
	for _, e := range errs {
		pf(e)
	}
}
