// internal/writers/jsonl.go
package writers

import (
	"io"

	"liftprep/internal/jsonlutil"
	"liftprep/pkg/api"
)

const FormatJSONL = "jsonl"

func init() {
	// jsonl: one api.EntryV1 per artefact, for line-oriented consumers.
	RegisterManifest(FormatJSONL, func(w io.Writer, m api.ManifestV1) error {
		return jsonlutil.WriteAll(w, m.Entries(), IsBrokenPipe)
	})
}
