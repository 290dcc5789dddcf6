// internal/cmdutil/log.go
package cmdutil

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

var warnTag = color.New(color.FgYellow, color.Bold)

// Warnf prints a WARN line to dst unless quiet.
func Warnf(dst io.Writer, quiet bool, format string, a ...any) {
	if quiet || dst == nil {
		return
	}
	_, _ = warnTag.Fprint(dst, "WARN:")
	_, _ = fmt.Fprintf(dst, " "+format+"\n", a...)
}
