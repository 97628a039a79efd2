package rfc6381

import "testing"

// TestObjectTypeIndicationValues verifies the constants match the MP4RA
// object type registry.
func TestObjectTypeIndicationValues(t *testing.T) {
	tests := []struct {
		name  string
		value ObjectTypeIndication
		want  ObjectTypeIndication
	}{
		{"VISUAL_14496_2", OTIVisualISO14496_2, 0x20},
		{"AVC", OTIAVC, 0x21},
		{"HEVC", OTIHEVC, 0x23},
		{"AUDIO_14496_3", OTIAudioISO14496_3, 0x40},
		{"MPEG2_AAC_MAIN", OTIAudioISO13818_7Main, 0x66},
		{"MPEG2_AAC_LC", OTIAudioISO13818_7LC, 0x67},
		{"MPEG2_AAC_SSR", OTIAudioISO13818_7SSR, 0x68},
		{"MPEG2_AUDIO", OTIAudioISO13818_3, 0x69},
		{"MPEG1_VISUAL", OTIVisualISO11172_2, 0x6a},
		{"MP3", OTIAudioISO11172_3, 0x6b},
		{"JPEG", OTIJPEG, 0x6c},
	}

	for _, tt := range tests {
		if tt.value != tt.want {
			t.Errorf("%s = 0x%02x, want 0x%02x", tt.name, uint8(tt.value), uint8(tt.want))
		}
	}
}

func TestObjectTypeIndicationString(t *testing.T) {
	tests := []struct {
		value ObjectTypeIndication
		want  string
	}{
		{OTIAudioISO14496_3, "Audio ISO/IEC 14496-3"},
		{OTIAVC, "Visual ISO/IEC 14496-10 (AVC)"},
		{OTIAudioISO11172_3, "Audio ISO/IEC 11172-3"},
		{ObjectTypeIndication(0x41), "ObjectTypeIndication(0x41)"},
	}

	for _, tt := range tests {
		if got := tt.value.String(); got != tt.want {
			t.Errorf("String(0x%02x) = %q, want %q", uint8(tt.value), got, tt.want)
		}
	}
}
