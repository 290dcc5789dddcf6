// internal/diag/errors.go
package diag

import (
	"errors"
	"fmt"
)

// Error classes. Match with errors.Is.
var (
	ErrIO     = errors.New("i/o error")
	ErrFormat = errors.New("format error")
	ErrConfig = errors.New("config error")
)

// FormatError reports malformed input at path:line.
type FormatError struct {
	Path string
	Line int
	Msg  string
}

func (e *FormatError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s:%d %s", e.Path, e.Line, e.Msg)
	}
	return fmt.Sprintf("%s: %s", e.Path, e.Msg)
}

func (e *FormatError) Unwrap() error { return ErrFormat }

// IOError marks a filesystem failure. The message is the wrapped error's.
type IOError struct{ Err error }

func (e *IOError) Error() string   { return e.Err.Error() }
func (e *IOError) Unwrap() []error { return []error{ErrIO, e.Err} }

// WrapIO tags err as an I/O failure. nil stays nil.
func WrapIO(err error) error {
	if err == nil {
		return nil
	}
	var ie *IOError
	if errors.As(err, &ie) {
		return err
	}
	return &IOError{Err: err}
}

// ConfigError reports an invalid flag, argument or profile value.
type ConfigError struct{ Msg string }

func (e *ConfigError) Error() string { return e.Msg }
func (e *ConfigError) Unwrap() error { return ErrConfig }

// Configf builds a ConfigError.
func Configf(format string, a ...any) error {
	return &ConfigError{Msg: fmt.Sprintf(format, a...)}
}
