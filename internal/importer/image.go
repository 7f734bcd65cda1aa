package importer

import (
	"bytes"
	"encoding/hex"
	"image"
	"image/png"
	"log/slog"
	"strings"

	// Legacy payloads are mostly BMP exports; JPEG also appears. Register
	// both decoders so image.Decode can sniff either.
	_ "image/jpeg"

	_ "golang.org/x/image/bmp"
)

// Transcode converts a legacy image payload into PNG bytes.
//
// The source column is loosely typed: it may hold raw binary, a hex string
// (optionally prefixed with 0x), or nothing. Every failure mode - unexpected
// representation, malformed hex, undecodable image - degrades to a nil
// result with a logged warning. A row with an unconvertible image is still
// imported; this function must never abort the caller.
func Transcode(payload any) []byte {
	raw, ok := payloadBytes(payload)
	if !ok {
		slog.Warn("image transcode skipped: unsupported payload representation")
		return nil
	}
	if len(raw) == 0 {
		return nil
	}

	img, format, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		slog.Warn("image transcode failed: undecodable payload", "error", err)
		return nil
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		slog.Warn("image transcode failed: png encode", "format", format, "error", err)
		return nil
	}

	return buf.Bytes()
}

// payloadBytes normalizes the payload to raw bytes. Textual payloads are
// hex-decoded after stripping an optional 0x prefix.
func payloadBytes(payload any) ([]byte, bool) {
	switch v := payload.(type) {
	case nil:
		return nil, true
	case []byte:
		return v, true
	case string:
		s := strings.TrimSpace(v)
		if s == "" {
			return nil, true
		}
		if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
			s = s[2:]
		}
		raw, err := hex.DecodeString(s)
		if err != nil {
			slog.Warn("image transcode failed: malformed hex payload", "error", err)
			return nil, true
		}
		return raw, true
	default:
		return nil, false
	}
}
