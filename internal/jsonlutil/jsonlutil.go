// internal/jsonlutil/jsonlutil.go
package jsonlutil

import (
	"bufio"
	"encoding/json"
	"io"
	"sync"
)

// Reuse a 64 KiB buffered writer across calls.
var bwPool = sync.Pool{
	New: func() any {
		return bufio.NewWriterSize(io.Discard, 64<<10)
	},
}

// WriteAll encodes each value as one compact JSON line on out. Errors
// recognised by isBroken (closed pipe) end the stream without failing it.
func WriteAll[T any](out io.Writer, vs []T, isBroken func(error) bool) error {
	bw := bwPool.Get().(*bufio.Writer)
	bw.Reset(out)
	defer func() {
		bw.Reset(io.Discard)
		bwPool.Put(bw)
	}()

	enc := json.NewEncoder(bw)
	enc.SetEscapeHTML(false)
	for _, v := range vs {
		if err := enc.Encode(v); err != nil {
			if isBroken != nil && isBroken(err) {
				return nil
			}
			return err
		}
	}
	if err := bw.Flush(); err != nil && (isBroken == nil || !isBroken(err)) {
		return err
	}
	return nil
}
