package coreseq

import (
	"cmp"
	"slices"
)

// Sort returns a Chain yielding the elements in ascending order, like
// the sort utility. The parent is fully materialized the first time the
// result is iterated; the sort is stable.
func Sort[T cmp.Ordered](c Chain[T]) Chain[T] {
	return SortFunc(c, cmp.Compare[T])
}

// SortFunc behaves like Sort with a custom comparison function. compare
// follows the cmp.Compare convention: negative when a < b, zero when
// equal, positive when a > b. Reverse a sort by flipping the comparison.
func SortFunc[T any](c Chain[T], compare func(a, b T) int) Chain[T] {
	return Chain[T]{
		errors: c.errors,
		seq: func(yield func(T) bool) {
			all := slices.Collect(c.seq)
			slices.SortStableFunc(all, compare)
			for _, v := range all {
				if !yield(v) {
					return
				}
			}
		},
	}
}

// Group collects consecutive elements sharing the same key into slices,
// emitting each run as one slice. Elements are never reordered: sort by
// the key first when global grouping is wanted, exactly as uniq expects
// sorted input.
//
// For input A, A, B, B, A the groups are [A A], [B B], [A].
func Group[T any, K comparable](c Chain[T], key func(T) K) Chain[[]T] {
	return Chain[[]T]{
		errors: c.errors,
		seq: func(yield func([]T) bool) {
			var run []T
			var current K
			for v := range c.seq {
				k := key(v)
				if len(run) > 0 && k != current {
					if !yield(run) {
						return
					}
					run = nil
				}
				current = k
				run = append(run, v)
			}
			if len(run) > 0 {
				yield(run)
			}
		},
	}
}

// ReduceBy aggregates consecutive elements sharing the same key into a
// single output value per run, without buffering the run.
//
// init is called with the first element of a run and returns the run's
// starting accumulator. update is then called for every element of the
// run, including the first, and mutates the accumulator in place. When
// the key changes the accumulator is emitted and a new run starts.
//
// Like Group, ReduceBy never reorders elements; sort by the key first
// for global aggregation.
func ReduceBy[T any, K comparable, A any](
	c Chain[T],
	key func(T) K,
	init func(first T) A,
	update func(acc *A, item T),
) Chain[A] {
	return Chain[A]{
		errors: c.errors,
		seq: func(yield func(A) bool) {
			var acc *A
			var current K
			for v := range c.seq {
				k := key(v)
				if acc != nil && k != current {
					if !yield(*acc) {
						return
					}
					acc = nil
				}
				if acc == nil {
					a := init(v)
					acc = &a
				}
				current = k
				update(acc, v)
			}
			if acc != nil {
				yield(*acc)
			}
		},
	}
}

// Uniq collapses consecutive duplicate elements to a single occurrence,
// like the uniq utility. Sort first for global deduplication.
func Uniq[T comparable](c Chain[T]) Chain[T] {
	return ReduceBy(c,
		func(v T) T { return v },
		func(first T) T { return first },
		func(acc *T, item T) {})
}

// Counted pairs a value with the number of consecutive occurrences
// UniqCount observed.
type Counted[T comparable] struct {
	Value T
	Count int
}

// UniqCount collapses consecutive duplicates like Uniq while counting
// them, mirroring uniq -c. Sort first for global counts.
func UniqCount[T comparable](c Chain[T]) Chain[Counted[T]] {
	return ReduceBy(c,
		func(v T) T { return v },
		func(first T) Counted[T] { return Counted[T]{Value: first} },
		func(acc *Counted[T], item T) { acc.Count++ })
}
