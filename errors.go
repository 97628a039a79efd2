package rfc6381

import "fmt"

// Error is a codec-string parsing error code.
type Error int

// Error codes returned by Parse and the binary derivation functions.
const (
	// ErrEmptyInput is returned when the codec string is empty.
	ErrEmptyInput Error = iota

	// ErrInvalidFourCC is returned when the leading component is not
	// exactly four ASCII characters.
	ErrInvalidFourCC

	// ErrWrongFieldCount is returned when a recognized four-character code
	// is followed by the wrong number of dot-separated fields.
	ErrWrongFieldCount

	// ErrInvalidHexField is returned when a hexadecimal sub-field does not
	// parse as a byte. It is wrapped in a FieldError naming the sub-field.
	ErrInvalidHexField

	// ErrInvalidDecimalField is returned when a decimal sub-field does not
	// parse as a byte. It is wrapped in a FieldError naming the sub-field.
	ErrInvalidDecimalField

	// ErrInvalidDescriptor is returned by FromESDescriptor and
	// FromAudioSpecificConfig for a malformed MPEG-4 descriptor chain.
	ErrInvalidDescriptor

	// ErrInvalidConfigurationRecord is returned by
	// FromAVCDecoderConfigurationRecord for a malformed avcC payload.
	ErrInvalidConfigurationRecord
)

var errMessages = [...]string{
	"empty codec string",
	"four-character code must be exactly 4 ASCII characters",
	"wrong number of dot-separated fields",
	"invalid hexadecimal field",
	"invalid decimal field",
	"malformed MPEG-4 descriptor",
	"malformed AVC decoder configuration record",
}

// Error implements the error interface.
func (e Error) Error() string {
	if e >= 0 && int(e) < len(errMessages) {
		return errMessages[e]
	}
	return "unknown error"
}

// FieldError reports a sub-field that failed hexadecimal or decimal parsing.
// It wraps ErrInvalidHexField or ErrInvalidDecimalField, so
// errors.Is(err, rfc6381.ErrInvalidHexField) matches.
type FieldError struct {
	Code  Error  // ErrInvalidHexField or ErrInvalidDecimalField
	Field string // name of the offending sub-field, e.g. "profile"
	Value string // the offending text
}

// Error implements the error interface.
func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s %q", e.Code, e.Field, e.Value)
}

// Unwrap returns the underlying error code.
func (e *FieldError) Unwrap() error {
	return e.Code
}
