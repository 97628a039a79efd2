package rfc6381

import (
	"errors"
	"testing"
)

// TestErrorMessages verifies every code has a distinct message.
func TestErrorMessages(t *testing.T) {
	expected := []string{
		"empty codec string",
		"four-character code must be exactly 4 ASCII characters",
		"wrong number of dot-separated fields",
		"invalid hexadecimal field",
		"invalid decimal field",
		"malformed MPEG-4 descriptor",
		"malformed AVC decoder configuration record",
	}

	for i, want := range expected {
		err := Error(i)
		if got := err.Error(); got != want {
			t.Errorf("Error(%d).Error() = %q, want %q", i, got, want)
		}
	}

	if got := Error(255).Error(); got != "unknown error" {
		t.Errorf("Error(255).Error() = %q, want %q", got, "unknown error")
	}
}

func TestFieldError(t *testing.T) {
	err := &FieldError{Code: ErrInvalidHexField, Field: "profile", Value: "zz"}

	want := `invalid hexadecimal field: profile "zz"`
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}

	if !errors.Is(err, ErrInvalidHexField) {
		t.Error("errors.Is(err, ErrInvalidHexField) = false, want true")
	}
	if errors.Is(err, ErrInvalidDecimalField) {
		t.Error("errors.Is(err, ErrInvalidDecimalField) = true, want false")
	}

	var ferr *FieldError
	if !errors.As(err, &ferr) {
		t.Fatal("errors.As failed for *FieldError")
	}
	if ferr.Field != "profile" || ferr.Value != "zz" {
		t.Errorf("FieldError = %+v, want Field=profile Value=zz", ferr)
	}
}
