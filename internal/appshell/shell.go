// internal/appshell/shell.go
package appshell

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"

	"liftprep/internal/diag"
)

// Main runs a RunContext-style entry point with SIGINT/SIGTERM wired to
// cancellation, then exits with its code.
func Main(run func(context.Context, []string, io.Writer, io.Writer) int) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	argv := os.Args[1:]
	if len(argv) == 0 {
		argv = []string{"--help"}
	}

	code := run(ctx, argv, os.Stdout, os.Stderr)
	if ctx.Err() != nil && code == diag.ExitOK {
		code = diag.ExitCancel
	}

	stop()
	os.Exit(code)
}
