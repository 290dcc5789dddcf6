package fasta

import (
	"os"
	"testing"

	gzip "github.com/klauspost/pgzip"
)

func writeGzFile(t *testing.T, path, data string) {
	t.Helper()
	fh, err := os.Create(path)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	gw := gzip.NewWriter(fh)
	if _, err := gw.Write([]byte(data)); err != nil {
		t.Fatalf("write gz: %v", err)
	}
	if err := gw.Close(); err != nil {
		t.Fatalf("close gz: %v", err)
	}
	if err := fh.Close(); err != nil {
		t.Fatalf("close file: %v", err)
	}
}
