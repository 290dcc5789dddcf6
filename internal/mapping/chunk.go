// internal/mapping/chunk.go
package mapping

import (
	"context"
	"path/filepath"

	"liftprep/internal/fileio"
)

const (
	// SubDir holds the per-pair files under the output directory.
	SubDir = "mapping_files"
	// ChunkExt is appended to the source id to name each pair file.
	ChunkExt = ".mapping"
)

// Result describes a ChunkMapping run.
type Result struct {
	Dir     string  // {outputDir}/mapping_files
	Created bool    // Dir did not exist before the run
	Entries []Entry // pairs in table order
	Files   []string
}

// ChunkMapping writes each pair of mappingPath to
// {outputDir}/mapping_files/{source}.mapping as "source,target" with no
// trailing newline. Existing pair files are truncated.
func ChunkMapping(ctx context.Context, mappingPath, outputDir string) (Result, error) {
	t, err := ParseTable(mappingPath)
	if err != nil {
		return Result{}, err
	}
	return WriteChunks(ctx, t, outputDir)
}

// WriteChunks is ChunkMapping for an already parsed table.
func WriteChunks(ctx context.Context, t *Table, outputDir string) (Result, error) {
	res := Result{Dir: filepath.Join(outputDir, SubDir), Entries: t.Entries()}
	created, err := fileio.EnsureDir(res.Dir)
	if err != nil {
		return res, err
	}
	res.Created = created

	for _, e := range res.Entries {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		path := filepath.Join(res.Dir, e.Source+ChunkExt)
		if err := fileio.WriteFile(path, []byte(e.Source+","+e.Target), fileio.PermFile); err != nil {
			return res, err
		}
		res.Files = append(res.Files, path)
	}
	return res, nil
}
