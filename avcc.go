package rfc6381

// FromAVCDecoderConfigurationRecord derives the AVC1 codec described by an
// ISO/IEC 14496-15 AVCDecoderConfigurationRecord, the payload of an avcC
// box. The profile_idc, profile_compatibility (constraint flags) and
// level_idc bytes following the configurationVersion are exactly the three
// bytes the codec string encodes, so a muxer can build the CODECS attribute
// for a track straight from its sample entry.
func FromAVCDecoderConfigurationRecord(data []byte) (AVC1, error) {
	if len(data) < 4 || data[0] != 1 {
		return AVC1{}, ErrInvalidConfigurationRecord
	}
	return NewAVC1(data[1], data[2], data[3]), nil
}
