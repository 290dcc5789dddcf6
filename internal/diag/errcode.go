// internal/diag/errcode.go
package diag

import (
	"context"
	"errors"
	"io/fs"
)

// Code is a coarse error class used for logs and exit codes.
type Code string

const (
	CodeUnknown Code = "unknown"
	CodeCancel  Code = "cancel"
	CodeConfig  Code = "config"
	CodeFormat  Code = "format"
	CodeIO      Code = "io"
)

// Exit codes. 2 and 3 follow the usage/runtime split of the other tools.
const (
	ExitOK      = 0
	ExitUsage   = 2
	ExitRuntime = 3
	ExitCancel  = 130
)

// Classify maps err to a Code using sentinels and std error types only.
func Classify(err error) Code {
	switch {
	case err == nil:
		return CodeUnknown
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return CodeCancel
	case errors.Is(err, ErrConfig):
		return CodeConfig
	case errors.Is(err, ErrFormat):
		return CodeFormat
	case errors.Is(err, ErrIO):
		return CodeIO
	}
	var perr *fs.PathError
	if errors.As(err, &perr) {
		return CodeIO
	}
	return CodeUnknown
}

// ExitCode returns the process exit status for err.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	switch Classify(err) {
	case CodeCancel:
		return ExitCancel
	case CodeConfig:
		return ExitUsage
	default:
		return ExitRuntime
	}
}
