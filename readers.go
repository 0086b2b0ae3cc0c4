package coreseq

import (
	"bufio"
	"io"
	"os"
)

// Lines returns a Chain over the lines of r, without their trailing
// newlines. Because an io.Reader cannot rewind, the chain is single-use.
// A read failure ends the stream and forwards a ChainError.
func Lines(r io.Reader) Chain[string] {
	return Source(func(yield func(string) bool, fail FailFunc) {
		scanLines(r, yield, fail)
	})
}

// LinesFile returns a Chain over the lines of the named file. The file
// is opened lazily when the chain is iterated and reopened on every
// iteration, so the chain is re-iterable. Open and read failures are
// forwarded on the error channel and end the stream.
func LinesFile(path string) Chain[string] {
	return Source(func(yield func(string) bool, fail FailFunc) {
		f, err := os.Open(path)
		if err != nil {
			fail(path, err)
			return
		}
		defer f.Close()
		scanLines(f, yield, fail)
	})
}

func scanLines(r io.Reader, yield func(string) bool, fail FailFunc) {
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		if !yield(sc.Text()) {
			return
		}
	}
	if err := sc.Err(); err != nil {
		fail(nil, err)
	}
}
