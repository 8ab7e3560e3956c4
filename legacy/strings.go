package legacy

import (
	"bytes"

	"golang.org/x/text/encoding/charmap"
)

// EncodeString writes s into dst as a NUL-terminated Windows-1252 string,
// truncating so the terminator always fits. Runes outside the code page
// become '?'.
func EncodeString(dst []byte, s string) {
	clear(dst)
	if len(dst) == 0 {
		return
	}
	n := 0
	for _, r := range s {
		if n == len(dst)-1 {
			break
		}
		b, ok := charmap.Windows1252.EncodeRune(r)
		if !ok {
			b = '?'
		}
		dst[n] = b
		n++
	}
}

// DecodeString reads a NUL-terminated Windows-1252 string.
func DecodeString(src []byte) string {
	if i := bytes.IndexByte(src, 0); i >= 0 {
		src = src[:i]
	}
	out, err := charmap.Windows1252.NewDecoder().Bytes(src)
	if err != nil {
		return string(src)
	}
	return string(out)
}
