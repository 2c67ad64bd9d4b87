package structure

import "golang.org/x/text/encoding/unicode"

// decodeText transcodes an externally-encoded attribute string to UTF-8.
// A UTF-16BE byte order mark selects UTF-16 decoding; anything else is
// passed through byte-for-byte.
func decodeText(data []byte) string {
	if len(data) >= 2 && data[0] == 0xFE && data[1] == 0xFF {
		dec := unicode.UTF16(unicode.BigEndian, unicode.ExpectBOM).NewDecoder()
		out, err := dec.Bytes(data)
		if err != nil {
			return string(data)
		}
		return string(out)
	}
	return string(data)
}
