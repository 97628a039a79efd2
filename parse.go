package rfc6381

import (
	"fmt"
	"strconv"
	"strings"
)

// Parse decomposes an RFC 6381 codec identifier into a Codec value.
//
// The string is split on "." and dispatched on the four-character code,
// which is case-sensitive. "avc1" accepts both historical parameter forms: a
// single 6-hex-digit profile/constraints/level blob ("avc1.4d401e") and
// three separate 1-2 hex digit byte fields ("avc1.4d.40.1e"). "mp4a" takes a
// 2-hex-digit object type indication and an optional decimal audio object
// type ("mp4a.40.2"). Any other four-character code parses into an
// Unrecognized value preserving the remainder verbatim.
//
// Hex digits are accepted in either case; the canonical form emitted by
// String is lowercase.
func Parse(s string) (Codec, error) {
	if s == "" {
		return nil, ErrEmptyInput
	}
	parts := strings.Split(s, ".")
	fourCC := parts[0]
	if !isFourCC(fourCC) {
		return nil, ErrInvalidFourCC
	}
	switch fourCC {
	case "avc1":
		return parseAVC1(parts[1:])
	case "mp4a":
		return parseMP4A(parts[1:])
	}
	var cc [4]byte
	copy(cc[:], fourCC)
	var tail string
	if len(s) > len(fourCC) {
		tail = s[len(fourCC)+1:]
	}
	return Unrecognized{FourCC: cc, Tail: tail}, nil
}

// ParseCodecs parses a comma-separated codec list as it appears in the
// CODECS attribute of HLS and DASH manifests, e.g. "mp4a.40.2,avc1.4d401e".
// Elements are trimmed of surrounding whitespace. The first failure aborts
// the parse; the returned error wraps the element's parse error with its
// position in the list.
func ParseCodecs(s string) ([]Codec, error) {
	elems := strings.Split(s, ",")
	codecs := make([]Codec, 0, len(elems))
	for i, elem := range elems {
		c, err := Parse(strings.TrimSpace(elem))
		if err != nil {
			return nil, fmt.Errorf("codec %d: %w", i, err)
		}
		codecs = append(codecs, c)
	}
	return codecs, nil
}

// isFourCC reports whether s is exactly four ASCII characters. Byte length
// is checked deliberately, so multi-byte UTF-8 sequences never pass.
func isFourCC(s string) bool {
	if len(s) != 4 {
		return false
	}
	for i := 0; i < 4; i++ {
		if s[i] > 0x7f {
			return false
		}
	}
	return true
}

// parseAVC1 parses the fields after "avc1.": either the single hex6 blob or
// the split-byte form with three fields.
func parseAVC1(fields []string) (Codec, error) {
	switch len(fields) {
	case 1:
		blob := fields[0]
		if len(blob) != 6 {
			return nil, &FieldError{Code: ErrInvalidHexField, Field: "profile_level_id", Value: blob}
		}
		fields = []string{blob[0:2], blob[2:4], blob[4:6]}
	case 3:
	default:
		return nil, ErrWrongFieldCount
	}

	profile, err := parseHexByte(fields[0], "profile")
	if err != nil {
		return nil, err
	}
	constraints, err := parseHexByte(fields[1], "constraint_flags")
	if err != nil {
		return nil, err
	}
	level, err := parseHexByte(fields[2], "level")
	if err != nil {
		return nil, err
	}
	return NewAVC1(profile, constraints, level), nil
}

// parseMP4A parses the fields after "mp4a.": a 2-hex-digit object type
// indication and an optional decimal audio object type.
func parseMP4A(fields []string) (Codec, error) {
	if len(fields) < 1 || len(fields) > 2 {
		return nil, ErrWrongFieldCount
	}
	if len(fields[0]) != 2 {
		return nil, &FieldError{Code: ErrInvalidHexField, Field: "object_type_indication", Value: fields[0]}
	}
	oti, err := parseHexByte(fields[0], "object_type_indication")
	if err != nil {
		return nil, err
	}
	if len(fields) == 1 {
		return NewMP4A(ObjectTypeIndication(oti)), nil
	}
	aot, err := parseDecimalByte(fields[1], "audio_object_type")
	if err != nil {
		return nil, err
	}
	return NewMP4AWithAudioObjectType(ObjectTypeIndication(oti), AudioObjectType(aot)), nil
}

// parseHexByte parses a 1-2 hex digit byte field (hex1-2 in the grammar).
func parseHexByte(s, field string) (uint8, error) {
	if len(s) == 0 || len(s) > 2 {
		return 0, &FieldError{Code: ErrInvalidHexField, Field: field, Value: s}
	}
	v, err := strconv.ParseUint(s, 16, 8)
	if err != nil {
		return 0, &FieldError{Code: ErrInvalidHexField, Field: field, Value: s}
	}
	return uint8(v), nil
}

// parseDecimalByte parses a 1-3 digit decimal byte field (decimal-byte in
// the grammar, value 0-255).
func parseDecimalByte(s, field string) (uint8, error) {
	if len(s) == 0 || len(s) > 3 {
		return 0, &FieldError{Code: ErrInvalidDecimalField, Field: field, Value: s}
	}
	v, err := strconv.ParseUint(s, 10, 8)
	if err != nil {
		return 0, &FieldError{Code: ErrInvalidDecimalField, Field: field, Value: s}
	}
	return uint8(v), nil
}
