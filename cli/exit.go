package cli

import (
	"errors"
	"fmt"

	"github.com/jswork/pkgclip/core"
)

// Exit codes returned by pkgclip.
const (
	exitSuccess         = 0
	exitFailure         = 1
	exitUsage           = 2
	exitFileNotFound    = 3
	exitParse           = 4
	exitInvalidManifest = 5
	exitClipboard       = 6
	exitConfig          = 7
)

// ExitError is an error that carries a specific process exit code.
// Cobra's RunE returns this to signal the desired exit code to main.
type ExitError struct {
	Code    int
	Message string
	Err     error
}

func (e *ExitError) Error() string {
	return e.Message
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// exitError creates a new ExitError with the given code and formatted message.
func exitError(code int, format string, args ...any) *ExitError {
	return &ExitError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// classify wraps err in an ExitError whose code matches its kind.
func classify(err error) *ExitError {
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr
	}

	code := exitFailure
	var parseErr *core.ParseError
	switch {
	case errors.Is(err, core.ErrFileNotFound):
		code = exitFileNotFound
	case errors.As(err, &parseErr):
		code = exitParse
	case errors.Is(err, core.ErrInvalidManifest):
		code = exitInvalidManifest
	case errors.Is(err, core.ErrClipboardUnavailable):
		code = exitClipboard
	}
	return &ExitError{Code: code, Message: err.Error(), Err: err}
}

// ExitCode returns the process exit code for an error returned by Execute.
func ExitCode(err error) int {
	if err == nil {
		return exitSuccess
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return exitFailure
}
