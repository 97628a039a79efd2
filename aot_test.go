package rfc6381

import "testing"

// TestAudioObjectTypeValues verifies the constants match ISO/IEC 14496-3
// Table 1.17.
func TestAudioObjectTypeValues(t *testing.T) {
	tests := []struct {
		name  string
		value AudioObjectType
		want  AudioObjectType
	}{
		{"AAC_MAIN", AOTAACMain, 1},
		{"AAC_LC", AOTAACLC, 2},
		{"AAC_SSR", AOTAACSSR, 3},
		{"AAC_LTP", AOTAACLTP, 4},
		{"SBR", AOTSBR, 5},
		{"ER_AAC_LC", AOTERAACLC, 17},
		{"ER_AAC_LTP", AOTERAACLTP, 19},
		{"ER_AAC_LD", AOTERAACLD, 23},
		{"PS", AOTPS, 29},
		{"LAYER_3", AOTLayer3, 34},
		{"ER_AAC_ELD", AOTERAACELD, 39},
		{"USAC", AOTUSAC, 42},
	}

	for _, tt := range tests {
		if tt.value != tt.want {
			t.Errorf("%s = %d, want %d", tt.name, tt.value, tt.want)
		}
	}
}

func TestAudioObjectTypeString(t *testing.T) {
	tests := []struct {
		value AudioObjectType
		want  string
	}{
		{AOTAACLC, "AAC LC"},
		{AOTSBR, "SBR"},
		{AOTPS, "PS"},
		{AudioObjectType(200), "AudioObjectType(200)"},
	}

	for _, tt := range tests {
		if got := tt.value.String(); got != tt.want {
			t.Errorf("String(%d) = %q, want %q", uint8(tt.value), got, tt.want)
		}
	}
}
