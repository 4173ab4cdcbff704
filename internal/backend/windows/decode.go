package windows

import (
	"bytes"

	"golang.org/x/text/encoding/unicode"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// decodeOutput converts the output of wsl.exe to UTF-8. Depending on its
// version and on WSL_UTF8, wsl.exe writes either UTF-8 or UTF-16LE.
func decodeOutput(out []byte) []byte {
	if !isUTF16LE(out) {
		return bytes.TrimPrefix(out, utf8BOM)
	}

	decoded, err := unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewDecoder().Bytes(out)
	if err != nil {
		return out
	}
	return decoded
}

// isUTF16LE guesses the encoding from the first two bytes: either a
// UTF-16LE byte order mark, or an ASCII character followed by a NUL.
func isUTF16LE(b []byte) bool {
	if len(b) < 2 {
		return false
	}
	if b[0] == 0xFF && b[1] == 0xFE {
		return true
	}
	return b[0] != 0 && b[0] < 0x80 && b[1] == 0
}
