package polyglot

import (
	"fmt"
	"time"
)

// LanguageNotFoundError indicates the requested language could not be
// mapped to a known code.
type LanguageNotFoundError struct {
	Input string
}

func (e *LanguageNotFoundError) Error() string {
	return fmt.Sprintf("language %q is not recognized", e.Input)
}

// ServiceError indicates the translation service failed for a reason other
// than a timeout (unavailable, malformed response, rate limit, etc.).
type ServiceError struct {
	Message   string
	Cause     error
	Retryable bool // Whether the operation can be retried
}

func (e *ServiceError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("translation service error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("translation service error: %s", e.Message)
}

func (e *ServiceError) Unwrap() error {
	return e.Cause
}

// TimeoutError indicates the outbound translation call exceeded its time
// bound. Kept distinct from ServiceError so callers can message users
// differently ("busy" vs "failed").
type TimeoutError struct {
	Timeout time.Duration
	Cause   error
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("translation timed out after %s", e.Timeout)
}

func (e *TimeoutError) Unwrap() error {
	return e.Cause
}
