// internal/fasta/chunk.go
package fasta

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"path/filepath"

	"github.com/biogo/biogo/io/seqio/fasta"
	"github.com/biogo/biogo/seq/linear"

	"liftprep/internal/diag"
	"liftprep/internal/fileio"
)

// ChunkExt is appended to the record ID to name each chunk.
const ChunkExt = ".fa"

// ChunkSequences writes every record of inputPath to {outputDir}/{id}.fa,
// truncating existing files. It returns the written paths in input order.
// Files written before a failure are left in place.
func ChunkSequences(ctx context.Context, inputPath, outputDir string) ([]string, error) {
	rc, err := fileio.Open(inputPath)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rc.Close() }()
	return ChunkReader(ctx, rc, inputPath, outputDir)
}

// ChunkReader is ChunkSequences over an open stream; name is used in errors.
func ChunkReader(ctx context.Context, r io.Reader, name, outputDir string) ([]string, error) {
	if err := fileio.RequireDir(outputDir); err != nil {
		return nil, err
	}
	sc := NewScanner(r)
	var written []string
	for sc.Next() {
		if err := ctx.Err(); err != nil {
			return written, err
		}
		s := sc.Seq()
		if s.ID == "" {
			return written, &diag.FormatError{Path: name, Msg: fmt.Sprintf("record %d has an empty identifier", len(written)+1)}
		}
		path := filepath.Join(outputDir, s.ID+ChunkExt)
		if err := writeRecord(path, s); err != nil {
			return written, err
		}
		written = append(written, path)
	}
	if err := sc.Err(); err != nil {
		return written, &diag.FormatError{Path: name, Msg: err.Error()}
	}
	return written, nil
}

func writeRecord(path string, s *linear.Seq) error {
	f, err := fileio.Create(path)
	if err != nil {
		return err
	}
	bw := bufio.NewWriter(f)
	if _, err := fasta.NewWriter(bw, LineWidth).Write(s); err != nil {
		_ = f.Close()
		return diag.WrapIO(err)
	}
	if err := bw.Flush(); err != nil {
		_ = f.Close()
		return diag.WrapIO(err)
	}
	return diag.WrapIO(f.Close())
}
