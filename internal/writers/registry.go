// internal/writers/registry.go
package writers

import (
	"fmt"
	"io"
	"sort"

	"liftprep/pkg/api"
)

// ManifestWriters maps an --output format to its renderer.
// Register in init() blocks from the format files.
var ManifestWriters = map[string]func(w io.Writer, m api.ManifestV1) error{}

// RegisterManifest adds or replaces (last wins) the writer for format.
func RegisterManifest(format string, fn func(io.Writer, api.ManifestV1) error) {
	ManifestWriters[format] = fn
}

// WriteManifest dispatches m to the writer registered for format.
func WriteManifest(format string, w io.Writer, m api.ManifestV1) error {
	fn, ok := ManifestWriters[format]
	if !ok {
		return fmt.Errorf("unknown output format %q (no writer registered)", format)
	}
	return fn(w, m)
}

// Formats lists the registered format names, sorted.
func Formats() []string {
	out := make([]string, 0, len(ManifestWriters))
	for k := range ManifestWriters {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
