// internal/jsonlutil/jsonlutil.go
package jsonlutil

import (
	"bufio"
	"encoding/json"
	"io"
	"sync"
)

// Scan output can run to tens of thousands of lines; writers share 64 KiB
// buffers instead of allocating one each.
var bufs = sync.Pool{
	New: func() any { return bufio.NewWriterSize(io.Discard, 64<<10) },
}

// Start spins up a goroutine encoding each value of in as one JSON line on
// out, converted by toWire. Errors matched by isBroken (closed pipes) are
// reported as nil. After the first error the goroutine keeps draining in so
// senders never block.
func Start[T any](out io.Writer, bufSize int, toWire func(T) any, isBroken func(error) bool) (chan<- T, <-chan error) {
	if bufSize <= 0 {
		bufSize = 64
	}
	in := make(chan T, bufSize)
	done := make(chan error, 1)
	go func() { done <- encodeAll(out, in, toWire, isBroken) }()
	return in, done
}

func encodeAll[T any](out io.Writer, in <-chan T, toWire func(T) any, isBroken func(error) bool) error {
	bw := bufs.Get().(*bufio.Writer)
	bw.Reset(out)
	defer func() {
		bw.Reset(io.Discard)
		bufs.Put(bw)
	}()

	enc := json.NewEncoder(bw)
	var err error
	for v := range in {
		if err == nil {
			err = enc.Encode(toWire(v))
		}
	}
	if err == nil {
		err = bw.Flush()
	}
	if isBroken != nil && isBroken(err) {
		return nil
	}
	return err
}
