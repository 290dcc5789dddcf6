// internal/writers/manifest.go
package writers

import (
	"bufio"
	"io"
	"strings"

	"liftprep/internal/jsonutil"
	"liftprep/pkg/api"
)

const (
	FormatText = "text"
	FormatJSON = "json"
)

func init() {
	// text: the shell command if any, then one path per line.
	RegisterManifest(FormatText, func(w io.Writer, m api.ManifestV1) error {
		bw := bufio.NewWriter(w)
		if m.ShellCommand != "" {
			_, _ = bw.WriteString(m.ShellCommand)
			if !strings.HasSuffix(m.ShellCommand, "\n") {
				_ = bw.WriteByte('\n')
			}
		}
		for _, f := range m.Files {
			_, _ = bw.WriteString(f)
			_ = bw.WriteByte('\n')
		}
		if m.Script != "" {
			_, _ = bw.WriteString(m.Script)
			_ = bw.WriteByte('\n')
		}
		return bw.Flush()
	})

	RegisterManifest(FormatJSON, func(w io.Writer, m api.ManifestV1) error {
		return jsonutil.EncodePretty(w, m)
	})
}
