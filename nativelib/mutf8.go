package nativelib

import (
	"strings"
	"unicode/utf16"
	"unicode/utf8"
)

// EncodeModifiedUTF8 converts s to the JVM's modified UTF-8: NUL is written
// as two bytes and supplementary characters as a pair of three-byte
// surrogates. The result never contains a zero byte.
func EncodeModifiedUTF8(s string) []byte {
	buf := make([]byte, 0, len(s)+1)
	for _, r := range s {
		switch {
		case r == 0:
			buf = append(buf, 0xc0, 0x80)
		case r < 0x10000:
			buf = utf8.AppendRune(buf, r)
		default:
			r1, r2 := utf16.EncodeRune(r)
			buf = appendSurrogate(buf, r1)
			buf = appendSurrogate(buf, r2)
		}
	}
	return buf
}

func appendSurrogate(buf []byte, u rune) []byte {
	return append(buf, 0xe0|byte(u>>12), 0x80|byte(u>>6)&0x3f, 0x80|byte(u)&0x3f)
}

// DecodeModifiedUTF8 is the inverse of EncodeModifiedUTF8. Malformed bytes
// and unpaired surrogates decode to utf8.RuneError.
func DecodeModifiedUTF8(b []byte) string {
	var sb strings.Builder
	sb.Grow(len(b))
	for i := 0; i < len(b); {
		c := b[i]
		switch {
		case c < 0x80:
			sb.WriteByte(c)
			i++
		case c&0xe0 == 0xc0 && i+1 < len(b):
			sb.WriteRune(rune(c&0x1f)<<6 | rune(b[i+1]&0x3f))
			i += 2
		case c&0xf0 == 0xe0 && i+2 < len(b):
			r := decode3(b[i:])
			i += 3
			if r >= 0xd800 && r < 0xdc00 && i+2 < len(b) && b[i]&0xf0 == 0xe0 {
				if pair := utf16.DecodeRune(r, decode3(b[i:])); pair != utf8.RuneError {
					r = pair
					i += 3
				}
			}
			sb.WriteRune(r)
		default:
			sb.WriteRune(utf8.RuneError)
			i++
		}
	}
	return sb.String()
}

func decode3(b []byte) rune {
	return rune(b[0]&0x0f)<<12 | rune(b[1]&0x3f)<<6 | rune(b[2]&0x3f)
}
