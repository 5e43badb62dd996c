package core

import "testing"

func TestStepStatus_String(t *testing.T) {
	tests := []struct {
		status   StepStatus
		expected string
	}{
		{StatusPending, "pending"},
		{StatusPassed, "passed"},
		{StatusFailed, "failed"},
		{StatusErrored, "errored"},
		{StatusSkipped, "skipped"},
		{StepStatus(99), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.status.String(); got != tt.expected {
			t.Errorf("StepStatus(%d).String() = %q, want %q", tt.status, got, tt.expected)
		}
	}
}

func TestStepStatus_IsSuccess(t *testing.T) {
	if !StatusPassed.IsSuccess() {
		t.Error("StatusPassed.IsSuccess() = false, want true")
	}
	for _, s := range []StepStatus{StatusPending, StatusFailed, StatusErrored, StatusSkipped} {
		if s.IsSuccess() {
			t.Errorf("StepStatus(%s).IsSuccess() = true, want false", s)
		}
	}
}

func TestStepStatus_TextRoundTrip(t *testing.T) {
	for s := StatusPending; s <= StatusSkipped; s++ {
		text, err := s.MarshalText()
		if err != nil {
			t.Fatalf("MarshalText(%s) error = %v", s, err)
		}
		var got StepStatus
		if err := got.UnmarshalText(text); err != nil {
			t.Fatalf("UnmarshalText(%q) error = %v", text, err)
		}
		if got != s {
			t.Errorf("round trip = %s, want %s", got, s)
		}
	}

	var s StepStatus
	if err := s.UnmarshalText([]byte("bogus")); err == nil {
		t.Error("UnmarshalText(bogus) should fail")
	}
}

func TestErrorCategory_String(t *testing.T) {
	tests := []struct {
		category ErrorCategory
		expected string
	}{
		{ErrCategoryNone, "none"},
		{ErrCategoryElement, "element"},
		{ErrCategoryDriver, "driver"},
		{ErrCategoryTimeout, "timeout"},
		{ErrCategoryCancelled, "cancelled"},
		{ErrCategoryConfig, "config"},
		{ErrorCategory(99), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.category.String(); got != tt.expected {
			t.Errorf("ErrorCategory(%d).String() = %q, want %q", tt.category, got, tt.expected)
		}
	}
}

func TestErrorCategory_UnmarshalText(t *testing.T) {
	var c ErrorCategory
	if err := c.UnmarshalText([]byte("timeout")); err != nil {
		t.Fatalf("UnmarshalText() error = %v", err)
	}
	if c != ErrCategoryTimeout {
		t.Errorf("category = %s, want timeout", c)
	}
	if err := c.UnmarshalText([]byte("nope")); err == nil {
		t.Error("UnmarshalText(nope) should fail")
	}
}
