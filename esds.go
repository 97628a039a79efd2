package rfc6381

import "github.com/llehouerou/go-rfc6381/internal/bits"

// Descriptor tags from ISO/IEC 14496-1 §7.2.2.1.
const (
	tagESDescriptor            = 0x03
	tagDecoderConfigDescriptor = 0x04
	tagDecoderSpecificInfo     = 0x05
)

// aotEscape is the escape value of the 5-bit audioObjectType field; object
// types >= 32 follow as 6 extra bits (ISO/IEC 14496-3 §1.6.2.1).
const aotEscape = 31

// FromAudioSpecificConfig derives the MP4A codec described by an ISO/IEC
// 14496-3 AudioSpecificConfig, as carried in an esds DecoderSpecificInfo or
// an SDP "config" attribute. Only the leading audioObjectType field is read;
// the object type indication is MPEG-4 Audio by definition.
func FromAudioSpecificConfig(data []byte) (MP4A, error) {
	r := bits.NewReader(data)
	aot := r.GetBits(5)
	if aot == aotEscape {
		aot = 32 + r.GetBits(6)
	}
	if r.Error() {
		return MP4A{}, ErrInvalidDescriptor
	}
	return NewMP4AWithAudioObjectType(OTIAudioISO14496_3, AudioObjectType(aot)), nil
}

// FromESDescriptor derives the MP4A codec described by an MPEG-4
// ES_Descriptor, the payload of an esds box. The object type indication
// comes from the DecoderConfigDescriptor; when it is MPEG-4 Audio and a
// DecoderSpecificInfo follows, the audio object type is read from the
// embedded AudioSpecificConfig. For other object type indications the audio
// object type is left absent, matching what Parse stores for such strings.
func FromESDescriptor(data []byte) (MP4A, error) {
	if len(data) < 1 || data[0] != tagESDescriptor {
		return MP4A{}, ErrInvalidDescriptor
	}
	pos, ok := skipDescriptorSize(data, 1)
	if !ok || pos+3 > len(data) {
		return MP4A{}, ErrInvalidDescriptor
	}

	// ES_ID (2 bytes), then the streamDependence/URL/OCRstream flag byte
	// that decides which optional fields follow.
	flags := data[pos+2]
	pos += 3
	if flags&0x80 != 0 { // streamDependenceFlag: dependsOn_ES_ID
		pos += 2
	}
	if flags&0x40 != 0 { // URL_Flag: URLlength + URLstring
		if pos >= len(data) {
			return MP4A{}, ErrInvalidDescriptor
		}
		pos += 1 + int(data[pos])
	}
	if flags&0x20 != 0 { // OCRstreamFlag: OCR_ES_Id
		pos += 2
	}

	if pos >= len(data) || data[pos] != tagDecoderConfigDescriptor {
		return MP4A{}, ErrInvalidDescriptor
	}
	pos, ok = skipDescriptorSize(data, pos+1)
	if !ok || pos+13 > len(data) {
		return MP4A{}, ErrInvalidDescriptor
	}
	codec := NewMP4A(ObjectTypeIndication(data[pos]))

	// objectTypeIndication, streamType/upStream, bufferSizeDB (3 bytes),
	// maxBitrate (4 bytes), avgBitrate (4 bytes)
	pos += 13

	if !codec.IsMPEG4Audio() {
		return codec, nil
	}
	if pos >= len(data) || data[pos] != tagDecoderSpecificInfo {
		// No DecoderSpecificInfo; the audio object type stays absent.
		return codec, nil
	}
	pos, ok = skipDescriptorSize(data, pos+1)
	if !ok {
		return MP4A{}, ErrInvalidDescriptor
	}
	return FromAudioSpecificConfig(data[pos:])
}

// skipDescriptorSize skips the variable-length size field that follows a
// descriptor tag: up to 4 bytes of 7 bits each, the high bit marking
// continuation. Returns the position after the size field.
func skipDescriptorSize(data []byte, pos int) (int, bool) {
	for i := 0; i < 4; i++ {
		if pos >= len(data) {
			return 0, false
		}
		b := data[pos]
		pos++
		if b&0x80 == 0 {
			return pos, true
		}
	}
	return 0, false
}
