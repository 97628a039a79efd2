package rfc6381

import "fmt"

// ObjectTypeIndication is the MPEG-4 systems byte identifying the general
// category of stream content, registered with the MP4 registration
// authority (https://mp4ra.org/registered-types/object-types).
type ObjectTypeIndication uint8

// Object type indications.
// Source: ISO/IEC 14496-1 Table 5 and the MP4RA object type registry.
const (
	OTIForbidden            ObjectTypeIndication = 0x00
	OTISystemsISO14496_1    ObjectTypeIndication = 0x01 // BIFS v1
	OTIVisualISO14496_2     ObjectTypeIndication = 0x20 // MPEG-4 Visual
	OTIAVC                  ObjectTypeIndication = 0x21 // H.264/AVC (ISO/IEC 14496-10)
	OTIAVCParameterSets     ObjectTypeIndication = 0x22
	OTIHEVC                 ObjectTypeIndication = 0x23 // H.265/HEVC (ISO/IEC 23008-2)
	OTIAudioISO14496_3      ObjectTypeIndication = 0x40 // MPEG-4 Audio (AAC)
	OTIVisualISO13818_2SP   ObjectTypeIndication = 0x60 // MPEG-2 Visual Simple
	OTIVisualISO13818_2MP   ObjectTypeIndication = 0x61 // MPEG-2 Visual Main
	OTIVisualISO13818_2SNR  ObjectTypeIndication = 0x62
	OTIVisualISO13818_2Spat ObjectTypeIndication = 0x63
	OTIVisualISO13818_2HP   ObjectTypeIndication = 0x64 // MPEG-2 Visual High
	OTIVisualISO13818_2_422 ObjectTypeIndication = 0x65
	OTIAudioISO13818_7Main  ObjectTypeIndication = 0x66 // MPEG-2 AAC Main
	OTIAudioISO13818_7LC    ObjectTypeIndication = 0x67 // MPEG-2 AAC Low Complexity
	OTIAudioISO13818_7SSR   ObjectTypeIndication = 0x68 // MPEG-2 AAC Scalable Sample Rate
	OTIAudioISO13818_3      ObjectTypeIndication = 0x69 // MPEG-2 audio
	OTIVisualISO11172_2     ObjectTypeIndication = 0x6a // MPEG-1 visual
	OTIAudioISO11172_3      ObjectTypeIndication = 0x6b // MPEG-1 audio (MP3)
	OTIJPEG                 ObjectTypeIndication = 0x6c
	OTIPNG                  ObjectTypeIndication = 0x6d
)

// String returns the registered name of the object type indication.
func (o ObjectTypeIndication) String() string {
	switch o {
	case OTIForbidden:
		return "Forbidden"
	case OTISystemsISO14496_1:
		return "Systems ISO/IEC 14496-1"
	case OTIVisualISO14496_2:
		return "Visual ISO/IEC 14496-2"
	case OTIAVC:
		return "Visual ISO/IEC 14496-10 (AVC)"
	case OTIAVCParameterSets:
		return "Parameter Sets for ISO/IEC 14496-10"
	case OTIHEVC:
		return "Visual ISO/IEC 23008-2 (HEVC)"
	case OTIAudioISO14496_3:
		return "Audio ISO/IEC 14496-3"
	case OTIVisualISO13818_2SP:
		return "Visual ISO/IEC 13818-2 Simple Profile"
	case OTIVisualISO13818_2MP:
		return "Visual ISO/IEC 13818-2 Main Profile"
	case OTIVisualISO13818_2SNR:
		return "Visual ISO/IEC 13818-2 SNR Profile"
	case OTIVisualISO13818_2Spat:
		return "Visual ISO/IEC 13818-2 Spatial Profile"
	case OTIVisualISO13818_2HP:
		return "Visual ISO/IEC 13818-2 High Profile"
	case OTIVisualISO13818_2_422:
		return "Visual ISO/IEC 13818-2 422 Profile"
	case OTIAudioISO13818_7Main:
		return "Audio ISO/IEC 13818-7 Main Profile"
	case OTIAudioISO13818_7LC:
		return "Audio ISO/IEC 13818-7 Low Complexity Profile"
	case OTIAudioISO13818_7SSR:
		return "Audio ISO/IEC 13818-7 Scalable Sample Rate Profile"
	case OTIAudioISO13818_3:
		return "Audio ISO/IEC 13818-3"
	case OTIVisualISO11172_2:
		return "Visual ISO/IEC 11172-2"
	case OTIAudioISO11172_3:
		return "Audio ISO/IEC 11172-3"
	case OTIJPEG:
		return "Visual ISO/IEC 10918-1 (JPEG)"
	case OTIPNG:
		return "Portable Network Graphics"
	}
	return fmt.Sprintf("ObjectTypeIndication(0x%02x)", uint8(o))
}
