package errors

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"
)

func TestErrorClass_String(t *testing.T) {
	tests := []struct {
		class    ErrorClass
		expected string
	}{
		{ErrorTransient, "transient"},
		{ErrorInvalid, "invalid"},
		{ErrorFatal, "fatal"},
		{ErrorClass(999), "unknown"},
	}

	for _, test := range tests {
		t.Run(test.expected, func(t *testing.T) {
			result := test.class.String()
			if result != test.expected {
				t.Errorf("expected %s, got %s", test.expected, result)
			}
		})
	}
}

func TestIsTransient(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{"nil error", nil, false},
		{"buffer overrun", ErrBufferOverrun, true},
		{"context deadline exceeded", context.DeadlineExceeded, true},
		{"context canceled", context.Canceled, true},
		{"invalid data", ErrInvalidData, false},
		{"write timeout", ErrWriteTimeout, false},
		{"stream closing", ErrStreamClosing, false},
		{"overrun in message", fmt.Errorf("ring overrun while copying"), true},
		{"busy in message", fmt.Errorf("device busy"), true},
		{"classified transient", &ClassifiedError{Class: ErrorTransient, Err: fmt.Errorf("test")}, true},
		{"classified fatal", &ClassifiedError{Class: ErrorFatal, Err: fmt.Errorf("test")}, false},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			result := IsTransient(test.err)
			if result != test.expected {
				t.Errorf("expected %v, got %v for error: %v", test.expected, result, test.err)
			}
		})
	}
}

func TestIsFatal(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{"nil error", nil, false},
		{"stream closing", ErrStreamClosing, true},
		{"stream terminated", ErrStreamTerminated, true},
		{"write timeout", ErrWriteTimeout, true},
		{"buffer overrun", ErrBufferOverrun, false},
		{"nil value", ErrNilValue, false},
		{"corrupt in message", fmt.Errorf("index corrupt after restart"), true},
		{"classified fatal", &ClassifiedError{Class: ErrorFatal, Err: fmt.Errorf("test")}, true},
		{"classified invalid", &ClassifiedError{Class: ErrorInvalid, Err: fmt.Errorf("test")}, false},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			result := IsFatal(test.err)
			if result != test.expected {
				t.Errorf("expected %v, got %v for error: %v", test.expected, result, test.err)
			}
		})
	}
}

func TestIsInvalid(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{"nil error", nil, false},
		{"nil value", ErrNilValue, true},
		{"empty value", ErrEmptyValue, true},
		{"out of range", ErrValueOutOfRange, true},
		{"pattern mismatch", ErrPatternMismatch, true},
		{"invalid encoding", ErrInvalidEncoding, true},
		{"overflow", ErrOverflow, true},
		{"missing config", ErrMissingConfig, true},
		{"buffer overrun", ErrBufferOverrun, false},
		{"classified invalid", &ClassifiedError{Class: ErrorInvalid, Err: fmt.Errorf("test")}, true},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			result := IsInvalid(test.err)
			if result != test.expected {
				t.Errorf("expected %v, got %v for error: %v", test.expected, result, test.err)
			}
		})
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected ErrorClass
	}{
		{"nil error", nil, ErrorTransient},
		{"buffer overrun", ErrBufferOverrun, ErrorTransient},
		{"nil value", ErrNilValue, ErrorInvalid},
		{"stream closing", ErrStreamClosing, ErrorFatal},
		{"write timeout", ErrWriteTimeout, ErrorFatal},
		{"unknown error", fmt.Errorf("something odd"), ErrorTransient},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			result := Classify(test.err)
			if result != test.expected {
				t.Errorf("expected %v, got %v for error: %v", test.expected, result, test.err)
			}
		})
	}
}

func TestWrap(t *testing.T) {
	base := errors.New("boom")

	err := Wrap(base, "Stream", "Write", "append")
	if err == nil {
		t.Fatal("expected error")
	}
	expected := "Stream.Write: append failed: boom"
	if err.Error() != expected {
		t.Errorf("expected %q, got %q", expected, err.Error())
	}
	if !errors.Is(err, base) {
		t.Error("wrapped error should match base via errors.Is")
	}

	if Wrap(nil, "Stream", "Write", "append") != nil {
		t.Error("wrapping nil should return nil")
	}
}

func TestWrapClassified(t *testing.T) {
	base := errors.New("boom")

	tests := []struct {
		name  string
		wrap  func(error, string, string, string) error
		class ErrorClass
	}{
		{"transient", WrapTransient, ErrorTransient},
		{"invalid", WrapInvalid, ErrorInvalid},
		{"fatal", WrapFatal, ErrorFatal},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			err := test.wrap(base, "Stream", "Write", "append")

			var ce *ClassifiedError
			if !errors.As(err, &ce) {
				t.Fatal("expected ClassifiedError")
			}
			if ce.Class != test.class {
				t.Errorf("expected class %v, got %v", test.class, ce.Class)
			}
			if ce.Component != "Stream" {
				t.Errorf("expected component Stream, got %s", ce.Component)
			}
			if !errors.Is(err, base) {
				t.Error("classification should preserve the error chain")
			}
			if !strings.Contains(err.Error(), "append failed") {
				t.Errorf("unexpected message: %s", err.Error())
			}

			if test.wrap(nil, "Stream", "Write", "append") != nil {
				t.Error("wrapping nil should return nil")
			}
		})
	}
}

func TestClassificationPreservedThroughWrap(t *testing.T) {
	inner := WrapFatal(errors.New("dead"), "Stream", "Close", "terminate")
	outer := Wrap(inner, "Dispatcher", "Stop", "drain")

	if !IsFatal(outer) {
		t.Error("classification should survive an outer Wrap")
	}
}

func TestRetryConfig_ShouldRetry(t *testing.T) {
	cfg := DefaultRetryConfig()

	if cfg.ShouldRetry(nil, 0) {
		t.Error("nil error should not retry")
	}
	if !cfg.ShouldRetry(ErrBufferOverrun, 0) {
		t.Error("transient error should retry")
	}
	if cfg.ShouldRetry(ErrBufferOverrun, cfg.MaxRetries) {
		t.Error("should not retry past MaxRetries")
	}
	if cfg.ShouldRetry(ErrStreamClosing, 0) {
		t.Error("fatal error should not retry")
	}

	cfg.RetryableErrors = []error{ErrBufferOverrun}
	if !cfg.ShouldRetry(ErrBufferOverrun, 0) {
		t.Error("listed retryable error should retry")
	}
	if cfg.ShouldRetry(context.DeadlineExceeded, 0) {
		t.Error("unlisted error should not retry when list is set")
	}
}

func TestRetryConfig_BackoffDelay(t *testing.T) {
	cfg := RetryConfig{
		InitialDelay:  100 * time.Millisecond,
		MaxDelay:      time.Second,
		BackoffFactor: 2.0,
	}

	if d := cfg.BackoffDelay(0); d != 100*time.Millisecond {
		t.Errorf("attempt 0: expected 100ms, got %v", d)
	}
	if d := cfg.BackoffDelay(1); d != 200*time.Millisecond {
		t.Errorf("attempt 1: expected 200ms, got %v", d)
	}
	if d := cfg.BackoffDelay(10); d != time.Second {
		t.Errorf("attempt 10: expected cap at 1s, got %v", d)
	}
}

func TestRetryConfig_ToRetryConfig(t *testing.T) {
	cfg := DefaultRetryConfig()
	rc := cfg.ToRetryConfig()

	if rc.MaxAttempts != cfg.MaxRetries+1 {
		t.Errorf("expected %d total attempts, got %d", cfg.MaxRetries+1, rc.MaxAttempts)
	}
	if rc.InitialDelay != cfg.InitialDelay {
		t.Errorf("expected initial delay %v, got %v", cfg.InitialDelay, rc.InitialDelay)
	}
	if !rc.AddJitter {
		t.Error("expected jitter enabled")
	}
}
