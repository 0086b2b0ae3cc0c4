package coreseq

import (
	"iter"
	"regexp"
	"sync"

	"coreseq/internal/iterx"
)

type (
	// MapFunc is a pure mapping function used by Map that transforms a
	// value of type In into a value of type Out.
	MapFunc[In, Out any] func(in In) Out

	// TryMapFunc is a mapping function that may fail. Failures are
	// forwarded to the chain's error channel while successful values
	// continue through the pipeline.
	TryMapFunc[In, Out any] func(in In) (Out, error)

	// Predicate reports whether a value should be kept in the stream.
	Predicate[T any] func(item T) bool

	// TryPredicate is a Predicate whose evaluation may fail, for
	// example when it inspects a field that does not exist.
	TryPredicate[T any] func(item T) (bool, error)
)

// Map transforms each element using fn and returns a new Chain producing
// the mapped values.
func Map[In, Out any](c Chain[In], fn MapFunc[In, Out]) Chain[Out] {
	return Chain[Out]{
		errors: c.errors,
		seq: func(yield func(Out) bool) {
			for in := range c.seq {
				if !yield(fn(in)) {
					return
				}
			}
		},
	}
}

// TryMap transforms each element using fn. When fn fails the element is
// dropped and a ChainError is forwarded on the error channel; successful
// results continue downstream.
func TryMap[In, Out any](c Chain[In], fn TryMapFunc[In, Out]) Chain[Out] {
	return Chain[Out]{
		errors: c.errors,
		seq: func(yield func(Out) bool) {
			for in := range c.seq {
				out, err := fn(in)
				if err != nil {
					c.errors.send(newChainError(in, err))
					continue
				}
				if !yield(out) {
					return
				}
			}
		},
	}
}

// Filter returns a Chain that yields only the elements for which
// predicate returns true.
func Filter[T any](c Chain[T], predicate Predicate[T]) Chain[T] {
	return Chain[T]{
		errors: c.errors,
		seq: func(yield func(T) bool) {
			for in := range c.seq {
				if predicate(in) {
					if !yield(in) {
						return
					}
				}
			}
		},
	}
}

// TryFilter behaves like Filter for a predicate that may fail. Elements
// whose evaluation fails are dropped with a forwarded ChainError.
func TryFilter[T any](c Chain[T], predicate TryPredicate[T]) Chain[T] {
	return Chain[T]{
		errors: c.errors,
		seq: func(yield func(T) bool) {
			for in := range c.seq {
				keep, err := predicate(in)
				if err != nil {
					c.errors.send(newChainError(in, err))
					continue
				}
				if keep {
					if !yield(in) {
						return
					}
				}
			}
		},
	}
}

// Grep keeps the elements matching the given regular expression,
// searching anywhere in the element like the grep utility. Anchor with
// ^ and $ for whole-line matches.
//
// Grep panics if pattern does not compile.
func Grep[T ~string](c Chain[T], pattern string) Chain[T] {
	re, err := regexp.Compile(pattern)
	if err != nil {
		panic("coreseq.Grep: " + err.Error())
	}
	return GrepRegexp(c, re)
}

// GrepRegexp is Grep for a pre-compiled regular expression.
func GrepRegexp[T ~string](c Chain[T], re *regexp.Regexp) Chain[T] {
	return Filter(c, func(v T) bool {
		return re.MatchString(string(v))
	})
}

// Flatten converts a Chain of slices into a Chain of their elements,
// emitting the items of each slice in order.
func Flatten[T any](c Chain[[]T]) Chain[T] {
	return Chain[T]{
		errors: c.errors,
		seq: func(yield func(T) bool) {
			for slice := range c.seq {
				for _, item := range slice {
					if !yield(item) {
						return
					}
				}
			}
		},
	}
}

// FlatMap transforms each element into a slice using fn and flattens
// the results. It is equivalent to Flatten(Map(c, fn)).
func FlatMap[In, Out any](c Chain[In], fn MapFunc[In, []Out]) Chain[Out] {
	return Flatten(Map(c, fn))
}

// FlatTryMap transforms each element into a slice using fn, forwarding
// failures to the error channel, and flattens the results. It is
// equivalent to Flatten(TryMap(c, fn)).
func FlatTryMap[In, Out any](c Chain[In], fn TryMapFunc[In, []Out]) Chain[Out] {
	return Flatten(TryMap(c, fn))
}

// Limit returns a Chain yielding at most n leading elements, like the
// head utility. A non-positive n yields nothing.
func Limit[T any](c Chain[T], n int) Chain[T] {
	return Chain[T]{
		errors: c.errors,
		seq: func(yield func(T) bool) {
			if n <= 0 {
				return
			}
			i := 0
			for v := range c.seq {
				if !yield(v) {
					return
				}
				i++
				if i == n {
					return
				}
			}
		},
	}
}

// Chunk groups incoming elements into slices of the given size. The
// final chunk may be smaller. Each chunk has its own backing slice, so
// chunks may be retained by the caller.
//
// Chunk panics if size is not positive.
func Chunk[T any](c Chain[T], size int) Chain[[]T] {
	if size <= 0 {
		panic("coreseq.Chunk: size must be positive")
	}
	return Chain[[]T]{
		errors: c.errors,
		seq: func(yield func([]T) bool) {
			batch := make([]T, 0, size)
			for v := range c.seq {
				batch = append(batch, v)
				if len(batch) == size {
					if !yield(batch) {
						return
					}
					batch = make([]T, 0, size)
				}
			}
			if len(batch) > 0 {
				yield(batch)
			}
		},
	}
}

// Merge combines multiple chains into a single Chain yielding all their
// values. Values from different chains may interleave in any order;
// errors from every input are forwarded on the merged chain's error
// channel. The merged chain is as re-iterable as its inputs.
func Merge[T any](chains ...Chain[T]) Chain[T] {
	if len(chains) == 0 {
		return From(iterx.Empty[T]())
	}
	if len(chains) == 1 {
		return chains[0]
	}

	out := newErrSink()
	seqs := make([]iter.Seq[T], 0, len(chains))
	sinks := make([]*errSink, 0, len(chains))
	for _, c := range chains {
		seqs = append(seqs, c.seq)
		sinks = append(sinks, c.errors)
	}
	return Chain[T]{errors: out, seq: mergeSeqs(out, sinks, seqs)}
}

// mergeSeqs drives every input sequence in its own goroutine, funnelling
// values into one stream and relaying input errors into out. When the
// consumer stops early the producers are told to stop and the already
// buffered values are drained so no goroutine is left sending.
func mergeSeqs[T any](out *errSink, sinks []*errSink, seqs []iter.Seq[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		items := make(chan T)
		done := make(chan struct{})

		var producers sync.WaitGroup
		producers.Add(len(seqs))
		for _, seq := range seqs {
			go func(seq iter.Seq[T]) {
				defer producers.Done()
				for v := range seq {
					select {
					case items <- v:
					case <-done:
						return
					}
				}
			}(seq)
		}

		stop := make(chan struct{})
		var relays sync.WaitGroup
		relays.Add(len(sinks))
		for _, s := range sinks {
			go func(ch <-chan ChainError) {
				defer relays.Done()
				for {
					select {
					case e, ok := <-ch:
						if !ok {
							return
						}
						out.send(e)
					case <-stop:
						return
					}
				}
			}(s.channel())
		}

		go func() {
			producers.Wait()
			close(items)
		}()

		for v := range items {
			if !yield(v) {
				close(done)
				go func() {
					for range items {
					}
				}()
				break
			}
		}

		// All producers have stopped and stage sends complete
		// synchronously inside them, so no input error is still in
		// flight. Stopping the relays here leaves every input sink
		// armed for another consumption of its chain.
		producers.Wait()
		close(stop)
		relays.Wait()
	}
}
