package rfc6381

// Codec is a parsed RFC 6381 codec identifier.
//
// The variant set is closed: AVC1, MP4A and Unrecognized. Values are
// immutable; to change a field, construct a new value.
type Codec interface {
	// String returns the canonical textual form of the identifier.
	String() string

	isCodec()
}

// AVC1 describes an H.264/AVC stream (ISO/IEC 14496-10).
//
// The three fields are the raw bytes of the avc1 parameter: the profile_idc,
// the constraint_set flags byte and the level_idc, exactly as they appear in
// a sequence parameter set or an AVCDecoderConfigurationRecord.
type AVC1 struct {
	Profile         uint8
	ConstraintFlags uint8
	Level           uint8
}

func (AVC1) isCodec() {}

// MP4A describes an MPEG-4 audio stream.
//
// HasAudioObjectType reports whether the optional third component was
// supplied; AudioObjectType is meaningful only when it is true. The audio
// object type is interpretable only when the object type indication is
// MPEG-4 Audio (0x40); other indications are preserved but not interpreted.
type MP4A struct {
	ObjectTypeIndication ObjectTypeIndication
	AudioObjectType      AudioObjectType
	HasAudioObjectType   bool
}

func (MP4A) isCodec() {}

// Unrecognized preserves a codec identifier whose four-character code this
// package does not decode. Tail holds the dot-separated remainder after the
// four-character code, verbatim and without the leading dot; it is empty
// when the identifier had no further components.
type Unrecognized struct {
	FourCC [4]byte
	Tail   string
}

func (Unrecognized) isCodec() {}

// NewAVC1 builds an AVC1 codec from its three parameter bytes.
func NewAVC1(profile, constraintFlags, level uint8) AVC1 {
	return AVC1{
		Profile:         profile,
		ConstraintFlags: constraintFlags,
		Level:           level,
	}
}

// NewMP4A builds an MP4A codec without an audio object type.
func NewMP4A(oti ObjectTypeIndication) MP4A {
	return MP4A{ObjectTypeIndication: oti}
}

// NewMP4AWithAudioObjectType builds an MP4A codec carrying an audio object
// type, e.g. NewMP4AWithAudioObjectType(OTIAudioISO14496_3, AOTAACLC) for
// plain AAC-LC ("mp4a.40.2").
func NewMP4AWithAudioObjectType(oti ObjectTypeIndication, aot AudioObjectType) MP4A {
	return MP4A{
		ObjectTypeIndication: oti,
		AudioObjectType:      aot,
		HasAudioObjectType:   true,
	}
}

// IsMPEG4Audio reports whether the object type indication is MPEG-4 Audio
// (0x40), the only indication whose audio object type this package can
// interpret.
func (c MP4A) IsMPEG4Audio() bool {
	return c.ObjectTypeIndication == OTIAudioISO14496_3
}

// ProfileName returns the ISO/IEC 14496-10 name of the profile_idc, or the
// empty string when the value has no registered name. It is informational
// only; unnamed profiles are not rejected anywhere in this package.
func (c AVC1) ProfileName() string {
	switch c.Profile {
	case 0x42:
		return "Baseline"
	case 0x4d:
		return "Main"
	case 0x53:
		return "Scalable Baseline"
	case 0x56:
		return "Scalable High"
	case 0x58:
		return "Extended"
	case 0x64:
		return "High"
	case 0x6e:
		return "High 10"
	case 0x76:
		return "Multiview High"
	case 0x7a:
		return "High 4:2:2"
	case 0x80:
		return "Stereo High"
	case 0xf4:
		return "High 4:4:4 Predictive"
	}
	return ""
}
