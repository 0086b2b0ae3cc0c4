/*
Package coreseq provides chainable, lazily-evaluated transformations for
iter.Seq, modeled on the small Unix text utilities: cut, sort, grep, uniq
and friends.

This package is built around the Chain type. A Chain[T] wraps a
lazily-evaluated stream of values of type T together with an error
channel. Transformations (Map, Filter, Grep, Sort, Uniq, and more) are
provided as package-level functions; each returns a new Chain, so
pipelines compose through simple chaining. No element is processed until
the resulting sequence is iterated, making every pipeline demand-driven.

A Chain can wrap any iter.Seq via From, and Values hands back a plain
iter.Seq, so chains are usable anywhere the standard iterators are.

Errors produced by fallible stages (TryMap, TryFilter, the line and CSV
sources) flow through the chain's error channel as ChainError values.
The failing element is dropped and the pipeline continues. Errors must
be consumed concurrently with the values when using Results; Collect
does both for you.

Example of a simple pipeline:

	lines := coreseq.LinesFile("orders.txt")

	// Keep only the lines that look like EU orders.
	eu := coreseq.Grep(lines, `^EU-`)

	// Extract the country field, forwarding malformed lines to the
	// error channel. countryField is a func(string) (string, error).
	countries := coreseq.TryMap(eu, countryField)

	// Sort, then count duplicates the way `sort | uniq -c` would.
	counted := coreseq.UniqCount(coreseq.Sort(countries))

	vals, errs := counted.Results()

	go func() {
		for err := range errs {
			log.Println("pipeline error:", err)
		}
	}()

	for c := range vals {
		fmt.Println(c.Count, c.Value)
	}

The rec subpackage adds a delimited-record layer on top of Chain:
field extraction (Cut), typed sort keys (SortKey), field conditions
(Where) and a CSV source.

The Show, Head and Count methods are debugging taps that print through
an injectable PrintFunc and are silenced globally with SetVerbose.
*/
package coreseq
