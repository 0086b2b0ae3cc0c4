package coreseq

import "sync/atomic"

// verbose gates the Show, ShowNumbered, Head and Count taps. It starts
// enabled so ad-hoc pipelines print by default; disable it to silence
// every tap at once without editing the pipeline.
var verbose atomic.Bool

func init() {
	verbose.Store(true)
}

// SetVerbose enables or disables all debugging taps process-wide.
func SetVerbose(on bool) {
	verbose.Store(on)
}

// Verbose reports whether the debugging taps are enabled.
func Verbose() bool {
	return verbose.Load()
}
