package core

// StepStatus represents the execution status of an action or scenario
type StepStatus int

const (
	StatusPending StepStatus = iota // zero value; a result that was never filled in
	StatusPassed                    // Completed successfully
	StatusFailed                    // Driver reported the action did not succeed
	StatusErrored                   // Programming error, timeout or cancellation
	StatusSkipped                   // Not executed because an earlier action failed
)

// String returns the string representation of StepStatus
func (s StepStatus) String() string {
	switch s {
	case StatusPending:
		return "pending"
	case StatusPassed:
		return "passed"
	case StatusFailed:
		return "failed"
	case StatusErrored:
		return "errored"
	case StatusSkipped:
		return "skipped"
	default:
		return "unknown"
	}
}

// MarshalText encodes the status by name so reports stay readable.
func (s StepStatus) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText decodes a status written by MarshalText.
func (s *StepStatus) UnmarshalText(text []byte) error {
	for c := StatusPending; c <= StatusSkipped; c++ {
		if c.String() == string(text) {
			*s = c
			return nil
		}
	}
	return ErrInvalidConfig.WithMessage("unknown status " + string(text))
}

// IsSuccess returns true if the status indicates success
func (s StepStatus) IsSuccess() bool {
	return s == StatusPassed
}

// ErrorCategory classifies the type of error for better debugging and reporting
type ErrorCategory int

const (
	ErrCategoryNone      ErrorCategory = iota // No error
	ErrCategoryElement                        // Unknown element, wrong element kind
	ErrCategoryDriver                         // Driver rejected or failed the action
	ErrCategoryTimeout                        // Action did not complete in time
	ErrCategoryCancelled                      // Scenario context was cancelled
	ErrCategoryConfig                         // Invalid configuration, missing required field
)

// String returns the string representation of ErrorCategory
func (c ErrorCategory) String() string {
	switch c {
	case ErrCategoryNone:
		return "none"
	case ErrCategoryElement:
		return "element"
	case ErrCategoryDriver:
		return "driver"
	case ErrCategoryTimeout:
		return "timeout"
	case ErrCategoryCancelled:
		return "cancelled"
	case ErrCategoryConfig:
		return "config"
	default:
		return "unknown"
	}
}

// MarshalText encodes the category by name.
func (c ErrorCategory) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText decodes a category written by MarshalText.
func (c *ErrorCategory) UnmarshalText(text []byte) error {
	for v := ErrCategoryNone; v <= ErrCategoryConfig; v++ {
		if v.String() == string(text) {
			*c = v
			return nil
		}
	}
	return ErrInvalidConfig.WithMessage("unknown error category " + string(text))
}
