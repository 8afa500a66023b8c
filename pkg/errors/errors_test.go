package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeInvalidFormat, "unknown format: %s", "gerber")

	if err.Code != ErrCodeInvalidFormat {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeInvalidFormat)
	}

	if err.Message != "unknown format: gerber" {
		t.Errorf("Message = %v, want %v", err.Message, "unknown format: gerber")
	}

	expected := "INVALID_FORMAT: unknown format: gerber"
	if err.Error() != expected {
		t.Errorf("Error() = %v, want %v", err.Error(), expected)
	}
}

func TestWrap(t *testing.T) {
	cause := errors.New("underlying error")
	err := Wrap(ErrCodeInvalidPreset, cause, "failed to decode")

	if err.Code != ErrCodeInvalidPreset {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeInvalidPreset)
	}

	if err.Cause != cause {
		t.Errorf("Cause = %v, want %v", err.Cause, cause)
	}

	unwrapped := errors.Unwrap(err)
	if unwrapped != cause {
		t.Errorf("Unwrap() = %v, want %v", unwrapped, cause)
	}

	if !errors.Is(err, cause) {
		t.Error("errors.Is(err, cause) = false, want true")
	}
}

func TestIs(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		code     Code
		expected bool
	}{
		{
			name:     "matching code",
			err:      New(ErrCodeInvalidInput, "test"),
			code:     ErrCodeInvalidInput,
			expected: true,
		},
		{
			name:     "non-matching code",
			err:      New(ErrCodeInvalidInput, "test"),
			code:     ErrCodeInvalidLayout,
			expected: false,
		},
		{
			name:     "outer code wins",
			err:      Wrap(ErrCodeInvalidPreset, New(ErrCodeInvalidInput, "inner"), "outer"),
			code:     ErrCodeInvalidPreset,
			expected: true,
		},
		{
			name:     "invalid parameter",
			err:      InvalidParameter("gap", 0.0, "must be greater than 0"),
			code:     ErrCodeInvalidParameter,
			expected: true,
		},
		{
			name:     "invalid parameter wrapped with fmt",
			err:      fmt.Errorf("synthesize: %w", InvalidParameter("gap", 0.0, "must be greater than 0")),
			code:     ErrCodeInvalidParameter,
			expected: true,
		},
		{
			name:     "non-Error type",
			err:      errors.New("plain error"),
			code:     ErrCodeInvalidInput,
			expected: false,
		},
		{
			name:     "nil error",
			err:      nil,
			code:     ErrCodeInvalidInput,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Is(tt.err, tt.code); got != tt.expected {
				t.Errorf("Is() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestGetCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected Code
	}{
		{
			name:     "Error type",
			err:      New(ErrCodePresetNotFound, "test"),
			expected: ErrCodePresetNotFound,
		},
		{
			name:     "coded type",
			err:      InvalidParameter("num_fingers", 1, "must be at least 2"),
			expected: ErrCodeInvalidParameter,
		},
		{
			name:     "plain error",
			err:      errors.New("plain"),
			expected: "",
		},
		{
			name:     "nil",
			err:      nil,
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetCode(tt.err); got != tt.expected {
				t.Errorf("GetCode() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestUserMessage(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{
			name:     "Error type",
			err:      New(ErrCodeInvalidInput, "friendly message"),
			expected: "friendly message",
		},
		{
			name:     "invalid parameter",
			err:      InvalidParameter("gap", -1.0, "must be greater than 0"),
			expected: "gap = -1: must be greater than 0",
		},
		{
			name:     "plain error",
			err:      errors.New("plain error"),
			expected: "plain error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := UserMessage(tt.err); got != tt.expected {
				t.Errorf("UserMessage() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestInvalidParameterError(t *testing.T) {
	t.Run("with value", func(t *testing.T) {
		err := InvalidParameter("num_fingers", 1, "must be at least %d", 2)
		expected := "INVALID_PARAMETER: num_fingers = 1: must be at least 2"
		if err.Error() != expected {
			t.Errorf("Error() = %v, want %v", err.Error(), expected)
		}
	})

	t.Run("without value", func(t *testing.T) {
		err := InvalidParameter("total_width", nil, "total width or finger length is required")
		expected := "INVALID_PARAMETER: total_width: total width or finger length is required"
		if err.Error() != expected {
			t.Errorf("Error() = %v, want %v", err.Error(), expected)
		}
	})

	t.Run("errors.As", func(t *testing.T) {
		var err error = fmt.Errorf("wrapped: %w", InvalidParameter("gap", 0.0, "bad"))
		var target *InvalidParameterError
		if !errors.As(err, &target) {
			t.Fatal("errors.As() = false, want true")
		}
		if target.Param != "gap" {
			t.Errorf("Param = %q, want %q", target.Param, "gap")
		}
	})
}
