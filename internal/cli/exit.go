package cli

import (
	"context"
	stderrors "errors"

	"github.com/combcap/idcgen/pkg/errors"
)

// Process exit codes.
const (
	ExitOK          = 0
	ExitFailure     = 1
	ExitUsage       = 2   // invalid parameters, presets or formats
	ExitInterrupted = 130 // SIGINT
)

// ExitCode maps a command error to the process exit status.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	if stderrors.Is(err, context.Canceled) {
		return ExitInterrupted
	}
	switch errors.GetCode(err) {
	case errors.ErrCodeInvalidInput,
		errors.ErrCodeInvalidParameter,
		errors.ErrCodeInvalidFormat,
		errors.ErrCodeInvalidPreset,
		errors.ErrCodePresetNotFound:
		return ExitUsage
	}
	return ExitFailure
}
