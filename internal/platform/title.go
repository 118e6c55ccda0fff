package platform

import (
	"unicode/utf16"
)

// DecodeTitle converts a NUL-terminated UTF-16 buffer to a string.
// Unpaired surrogates are replaced with U+FFFD and reported as ErrTitleDecode,
// so callers always get a usable title.
func DecodeTitle(buf []uint16) (string, error) {
	for i, c := range buf {
		if c == 0 {
			buf = buf[:i]
			break
		}
	}

	var err error
	for i := 0; i < len(buf); i++ {
		c := rune(buf[i])
		switch {
		case utf16.IsSurrogate(c) && c < 0xDC00:
			if i+1 < len(buf) && isLowSurrogate(rune(buf[i+1])) {
				i++
				continue
			}
			err = ErrTitleDecode
		case isLowSurrogate(c):
			err = ErrTitleDecode
		}
	}

	return string(utf16.Decode(buf)), err
}

func isLowSurrogate(r rune) bool {
	return r >= 0xDC00 && r < 0xE000
}
