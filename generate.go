package rfc6381

import "fmt"

// The String methods render the canonical textual form of each variant.
// Generation is total: any constructed value produces a string that Parse
// accepts and that parses back to an equal value.

// String renders the canonical "avc1." form followed by the 6-hex-digit
// profile/constraints/level blob, lowercase and zero-padded. Input in the
// split-byte form normalizes to the blob form.
func (c AVC1) String() string {
	return fmt.Sprintf("avc1.%02x%02x%02x", c.Profile, c.ConstraintFlags, c.Level)
}

// String renders "mp4a." followed by the 2-hex-digit object type indication
// and, when present, the audio object type in minimal decimal digits.
// Insignificant leading zeros in the decimal field are not preserved.
func (c MP4A) String() string {
	if c.HasAudioObjectType {
		return fmt.Sprintf("mp4a.%02x.%d", uint8(c.ObjectTypeIndication), uint8(c.AudioObjectType))
	}
	return fmt.Sprintf("mp4a.%02x", uint8(c.ObjectTypeIndication))
}

// String renders the four-character code followed by the preserved remainder.
func (c Unrecognized) String() string {
	if c.Tail == "" {
		return string(c.FourCC[:])
	}
	return string(c.FourCC[:]) + "." + c.Tail
}
