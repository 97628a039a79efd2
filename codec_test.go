package rfc6381

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewAVC1(t *testing.T) {
	c := NewAVC1(0x64, 0x00, 0x28)
	require.Equal(t, AVC1{Profile: 0x64, ConstraintFlags: 0x00, Level: 0x28}, c)
}

func TestNewMP4A(t *testing.T) {
	c := NewMP4A(OTIAudioISO14496_3)
	require.Equal(t, MP4A{ObjectTypeIndication: 0x40}, c)
	require.False(t, c.HasAudioObjectType)

	c = NewMP4AWithAudioObjectType(OTIAudioISO14496_3, AOTAACLC)
	require.Equal(t, MP4A{ObjectTypeIndication: 0x40, AudioObjectType: 2, HasAudioObjectType: true}, c)
}

func TestMP4A_IsMPEG4Audio(t *testing.T) {
	require.True(t, NewMP4A(OTIAudioISO14496_3).IsMPEG4Audio())
	require.False(t, NewMP4A(OTIAudioISO11172_3).IsMPEG4Audio())
	require.False(t, NewMP4A(OTIAudioISO13818_7LC).IsMPEG4Audio())
}

func TestAVC1_ProfileName(t *testing.T) {
	tests := []struct {
		profile uint8
		want    string
	}{
		{0x42, "Baseline"},
		{0x4d, "Main"},
		{0x58, "Extended"},
		{0x64, "High"},
		{0x6e, "High 10"},
		{0x7a, "High 4:2:2"},
		{0xf4, "High 4:4:4 Predictive"},
		{0x00, ""},
		{0xff, ""},
	}
	for _, tt := range tests {
		got := AVC1{Profile: tt.profile}.ProfileName()
		if got != tt.want {
			t.Errorf("ProfileName(0x%02x) = %q, want %q", tt.profile, got, tt.want)
		}
	}
}

// Codec values are plain comparable values; equality and map-key use work
// without any deep comparison.
func TestCodecValueSemantics(t *testing.T) {
	a := NewAVC1(0x64, 0x00, 0x28)
	b := NewAVC1(0x64, 0x00, 0x28)
	require.True(t, a == b)

	seen := map[Codec]bool{a: true}
	require.True(t, seen[b])
}

func TestCodecVariantDispatch(t *testing.T) {
	codecs := []Codec{
		NewAVC1(0x64, 0x00, 0x28),
		NewMP4A(OTIAudioISO14496_3),
		Unrecognized{FourCC: [4]byte{'a', 'v', '0', '1'}},
	}
	var avc, mp4a, other int
	for _, c := range codecs {
		switch c.(type) {
		case AVC1:
			avc++
		case MP4A:
			mp4a++
		case Unrecognized:
			other++
		}
	}
	require.Equal(t, []int{1, 1, 1}, []int{avc, mp4a, other})
}
