// internal/fileio/open.go
package fileio

import (
	"bufio"
	"io"
	"os"
	"strings"

	gzip "github.com/klauspost/pgzip"

	"liftprep/internal/diag"
)

// multiReadCloser closes multiple io.Closers when Close() is called.
type multiReadCloser struct {
	io.Reader
	closers []io.Closer
}

func (m *multiReadCloser) Close() error {
	var err error
	for _, c := range m.closers {
		if cerr := c.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	return err
}

// Open returns a reader for path. "-" reads stdin. Gzip input is detected by
// the 1F 8B magic number or a .gz suffix and decompressed transparently.
func Open(path string) (io.ReadCloser, error) {
	var src io.ReadCloser
	if path == "-" {
		src = io.NopCloser(os.Stdin)
	} else {
		fh, err := os.Open(path)
		if err != nil {
			return nil, diag.WrapIO(err)
		}
		src = fh
	}

	br := bufio.NewReaderSize(src, 64*1024)
	sig, _ := br.Peek(2)
	isGz := len(sig) == 2 && sig[0] == 0x1f && sig[1] == 0x8b
	if !isGz && !strings.HasSuffix(path, ".gz") {
		return &multiReadCloser{Reader: br, closers: []io.Closer{src}}, nil
	}
	gr, err := gzip.NewReader(br)
	if err != nil {
		_ = src.Close()
		return nil, diag.WrapIO(err)
	}
	return &multiReadCloser{Reader: gr, closers: []io.Closer{gr, src}}, nil
}
