package rfc6381

import "fmt"

// AudioObjectType is the MPEG-4 audio object type, the small integer that
// names an audio coding tool set such as AAC-LC or SBR.
type AudioObjectType uint8

// Audio object types.
// Source: ISO/IEC 14496-3 Table 1.17.
const (
	AOTNull         AudioObjectType = 0
	AOTAACMain      AudioObjectType = 1
	AOTAACLC        AudioObjectType = 2 // Most common - Low Complexity
	AOTAACSSR       AudioObjectType = 3 // Scalable Sample Rate
	AOTAACLTP       AudioObjectType = 4 // Long Term Prediction
	AOTSBR          AudioObjectType = 5 // Spectral Band Replication (HE-AAC)
	AOTAACScalable  AudioObjectType = 6
	AOTTwinVQ       AudioObjectType = 7
	AOTCELP         AudioObjectType = 8
	AOTHVXC         AudioObjectType = 9
	AOTTTSI         AudioObjectType = 12
	AOTMainSynth    AudioObjectType = 13
	AOTWavetable    AudioObjectType = 14
	AOTGeneralMIDI  AudioObjectType = 15
	AOTAlgorithmic  AudioObjectType = 16
	AOTERAACLC      AudioObjectType = 17 // Error Resilient LC
	AOTERAACLTP     AudioObjectType = 19 // Error Resilient LTP
	AOTERAACScal    AudioObjectType = 20
	AOTERTwinVQ     AudioObjectType = 21
	AOTERBSAC       AudioObjectType = 22
	AOTERAACLD      AudioObjectType = 23 // Error Resilient Low Delay
	AOTERCELP       AudioObjectType = 24
	AOTERHVXC       AudioObjectType = 25
	AOTERHILN       AudioObjectType = 26
	AOTERParametric AudioObjectType = 27
	AOTSSC          AudioObjectType = 28
	AOTPS           AudioObjectType = 29 // Parametric Stereo (HE-AACv2)
	AOTMPEGSurround AudioObjectType = 30
	AOTLayer1       AudioObjectType = 32
	AOTLayer2       AudioObjectType = 33
	AOTLayer3       AudioObjectType = 34
	AOTDST          AudioObjectType = 35
	AOTALS          AudioObjectType = 36
	AOTSLS          AudioObjectType = 37
	AOTSLSNonCore   AudioObjectType = 38
	AOTERAACELD     AudioObjectType = 39 // Error Resilient Enhanced Low Delay
	AOTUSAC         AudioObjectType = 42
)

// aotNames maps defined audio object types to their ISO/IEC 14496-3 names.
var aotNames = map[AudioObjectType]string{
	AOTNull:         "Null",
	AOTAACMain:      "AAC Main",
	AOTAACLC:        "AAC LC",
	AOTAACSSR:       "AAC SSR",
	AOTAACLTP:       "AAC LTP",
	AOTSBR:          "SBR",
	AOTAACScalable:  "AAC Scalable",
	AOTTwinVQ:       "TwinVQ",
	AOTCELP:         "CELP",
	AOTHVXC:         "HVXC",
	AOTTTSI:         "TTSI",
	AOTMainSynth:    "Main Synthetic",
	AOTWavetable:    "Wavetable Synthesis",
	AOTGeneralMIDI:  "General MIDI",
	AOTAlgorithmic:  "Algorithmic Synthesis and Audio FX",
	AOTERAACLC:      "ER AAC LC",
	AOTERAACLTP:     "ER AAC LTP",
	AOTERAACScal:    "ER AAC Scalable",
	AOTERTwinVQ:     "ER TwinVQ",
	AOTERBSAC:       "ER BSAC",
	AOTERAACLD:      "ER AAC LD",
	AOTERCELP:       "ER CELP",
	AOTERHVXC:       "ER HVXC",
	AOTERHILN:       "ER HILN",
	AOTERParametric: "ER Parametric",
	AOTSSC:          "SSC",
	AOTPS:           "PS",
	AOTMPEGSurround: "MPEG Surround",
	AOTLayer1:       "Layer-1",
	AOTLayer2:       "Layer-2",
	AOTLayer3:       "Layer-3",
	AOTDST:          "DST",
	AOTALS:          "ALS",
	AOTSLS:          "SLS",
	AOTSLSNonCore:   "SLS non-core",
	AOTERAACELD:     "ER AAC ELD",
	AOTUSAC:         "USAC",
}

// String returns the ISO/IEC 14496-3 name of the audio object type.
func (a AudioObjectType) String() string {
	if name, ok := aotNames[a]; ok {
		return name
	}
	return fmt.Sprintf("AudioObjectType(%d)", uint8(a))
}
