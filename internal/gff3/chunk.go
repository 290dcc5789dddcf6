// internal/gff3/chunk.go
package gff3

import (
	"bufio"
	"context"
	"io"
	"path/filepath"
	"strings"

	"liftprep/internal/diag"
	"liftprep/internal/fileio"
)

// ChunkExt is appended to the sequence-region key to name each chunk.
const ChunkExt = ".gff3"

// DefaultMaxOpen bounds the append handles held during a run.
const DefaultMaxOpen = 64

// Options tune ChunkAnnotations.
type Options struct {
	// MaxOpen caps open chunk handles. 0 reopens the chunk for every line.
	MaxOpen int
}

// Stats summarises a chunking run.
type Stats struct {
	Lines    int      // lines read, comments included
	Comments int      // '#' lines skipped
	Records  int      // lines written to a chunk
	Files    []string // chunk paths in first-seen order
}

// ChunkAnnotations appends every non-comment line of inputPath to
// {outputDir}/{key}.gff3, where key is the line's first column. Lines keep
// their original bytes (CRLF is normalised to LF). Chunks are opened in
// append mode, so re-running over a populated outputDir duplicates lines.
func ChunkAnnotations(ctx context.Context, inputPath, outputDir string, opt Options) (Stats, error) {
	rc, err := fileio.Open(inputPath)
	if err != nil {
		return Stats{}, err
	}
	defer func() { _ = rc.Close() }()
	return ChunkReader(ctx, rc, inputPath, outputDir, opt)
}

// ChunkReader is ChunkAnnotations over an open stream; name is used in errors.
func ChunkReader(ctx context.Context, r io.Reader, name, outputDir string, opt Options) (st Stats, err error) {
	if err := fileio.RequireDir(outputDir); err != nil {
		return st, err
	}
	cache := newAppendCache(opt.MaxOpen)
	defer func() {
		if cerr := cache.Close(); err == nil {
			err = cerr
		}
	}()

	seen := make(map[string]struct{})
	br := bufio.NewReaderSize(r, 64*1024)
	for {
		line, rerr := br.ReadString('\n')
		if rerr != nil && rerr != io.EOF {
			return st, diag.WrapIO(rerr)
		}
		if len(line) > 0 {
			if err := ctx.Err(); err != nil {
				return st, err
			}
			st.Lines++
			if strings.HasSuffix(line, "\r\n") {
				line = line[:len(line)-2] + "\n"
			}
			if strings.HasPrefix(line, "#") {
				st.Comments++
			} else {
				key, ok := regionKey(line)
				if !ok {
					return st, &diag.FormatError{Path: name, Line: st.Lines, Msg: "line has no columns"}
				}
				path := filepath.Join(outputDir, key+ChunkExt)
				if err := cache.Append(path, line); err != nil {
					return st, err
				}
				if _, dup := seen[path]; !dup {
					seen[path] = struct{}{}
					st.Files = append(st.Files, path)
				}
				st.Records++
			}
		}
		if rerr == io.EOF {
			return st, nil
		}
	}
}

// regionKey returns the first whitespace-delimited token of line.
func regionKey(line string) (string, bool) {
	f := strings.Fields(line)
	if len(f) == 0 {
		return "", false
	}
	return f[0], true
}

// ExistingChunks lists *.gff3 files already present in dir. Chunking into a
// directory that has any appends to them.
func ExistingChunks(dir string) ([]string, error) {
	m, err := filepath.Glob(filepath.Join(dir, "*"+ChunkExt))
	return m, diag.WrapIO(err)
}
