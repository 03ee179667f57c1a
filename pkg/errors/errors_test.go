package errors

import (
	"errors"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeInvalidFormat, "test message: %s", "value")

	if err.Code != ErrCodeInvalidFormat {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeInvalidFormat)
	}

	if err.Message != "test message: value" {
		t.Errorf("Message = %v, want %v", err.Message, "test message: value")
	}

	expected := "INVALID_FORMAT: test message: value"
	if err.Error() != expected {
		t.Errorf("Error() = %v, want %v", err.Error(), expected)
	}
}

func TestWrap(t *testing.T) {
	cause := errors.New("underlying error")
	err := Wrap(ErrCodeRenderBackend, cause, "failed to render")

	if err.Code != ErrCodeRenderBackend {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeRenderBackend)
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
			err:      New(ErrCodeLatitudeOutOfRange, "test"),
			code:     ErrCodeLatitudeOutOfRange,
			expected: true,
		},
		{
			name:     "non-matching code",
			err:      New(ErrCodeLatitudeOutOfRange, "test"),
			code:     ErrCodeRenderBackend,
			expected: false,
		},
		{
			name:     "wrapped error",
			err:      Wrap(ErrCodeRenderBackend, New(ErrCodeInternal, "inner"), "outer"),
			code:     ErrCodeRenderBackend,
			expected: true,
		},
		{
			name:     "non-Error type",
			err:      errors.New("plain error"),
			code:     ErrCodeLatitudeOutOfRange,
			expected: false,
		},
		{
			name:     "nil error",
			err:      nil,
			code:     ErrCodeLatitudeOutOfRange,
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
	if got := GetCode(New(ErrCodeDegenerateProjection, "x")); got != ErrCodeDegenerateProjection {
		t.Errorf("GetCode() = %v, want %v", got, ErrCodeDegenerateProjection)
	}
	if got := GetCode(errors.New("plain")); got != Code("") {
		t.Errorf("GetCode(plain) = %v, want empty", got)
	}
}

func TestUserMessage(t *testing.T) {
	if got := UserMessage(New(ErrCodeInvalidConfig, "bad value")); got != "bad value" {
		t.Errorf("UserMessage() = %q, want %q", got, "bad value")
	}
	if got := UserMessage(errors.New("plain error")); got != "plain error" {
		t.Errorf("UserMessage(plain) = %q, want %q", got, "plain error")
	}
}
