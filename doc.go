// Package rfc6381 parses and generates the codec identifiers defined by
// RFC 6381 §3, the short strings such as "avc1.640028" or "mp4a.40.2" that
// media containers and streaming manifests use to describe the encoding of a
// stream before any media is fetched.
//
// # Basic Usage
//
// Parse a codec string:
//
//	codec, err := rfc6381.Parse("avc1.4d401e")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if avc, ok := codec.(rfc6381.AVC1); ok {
//	    fmt.Printf("profile %#02x level %#02x\n", avc.Profile, avc.Level)
//	}
//
// Generate one:
//
//	codec := rfc6381.NewAVC1(0x4d, 0x40, 0x1e)
//	fmt.Println(codec) // avc1.4d401e
//
// # Supported Codecs
//
// The four-character codes "avc1" (H.264/AVC, ISO/IEC 14496-10) and "mp4a"
// (MPEG-4 audio, ISO/IEC 14496-3) are decoded into structured values. Every
// other four-character code parses into an Unrecognized value that preserves
// the original string verbatim, so unknown codecs survive a round trip.
//
// Validation is syntactic only: fields must match the RFC 6381 sub-grammars
// and fit in a byte, but the package does not judge whether a given
// profile/level combination is plausible.
//
// The extended "fancy" syntax of RFC 6381 (charset and percent-encoding,
// e.g. codecs*="...") is not supported.
//
// # Thread Safety
//
// Parse and the String methods are pure functions and Codec values are
// immutable, so values may be shared across goroutines without locking.
//
// # Reference
//
// RFC 6381: https://datatracker.ietf.org/doc/html/rfc6381
//
// MDN, the "codecs" parameter in common media types:
// https://developer.mozilla.org/en-US/docs/Web/Media/Formats/codecs_parameter
package rfc6381
