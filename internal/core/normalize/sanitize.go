package normalize

import (
	"strings"
	"unicode/utf8"
)

// Sanitize drops runes that must never reach the store or the detector:
// NUL, ASCII controls other than '\n' '\r' '\t', DEL, C1 controls
// U+0080..U+009F, and invalid UTF-8 bytes.
// Returns s unchanged when nothing needs cleaning
func Sanitize(s string) string {
	if s == "" {
		return s
	}

	// Fast path: find the first offending byte, if any
	bad := -1
scan:
	for i := 0; i < len(s); {
		b := s[i]
		switch {
		case b < 0x80:
			if dropASCII(b) {
				bad = i
				break scan
			}
			i++
		default:
			r, size := utf8.DecodeRuneInString(s[i:])
			if (r == utf8.RuneError && size == 1) || isC1(r) {
				bad = i
				break scan
			}
			i += size
		}
	}
	if bad < 0 {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))
	b.WriteString(s[:bad])
	for i := bad; i < len(s); {
		c := s[i]
		if c < 0x80 {
			if !dropASCII(c) {
				b.WriteByte(c)
			}
			i++
			continue
		}
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size == 1 {
			i++
			continue
		}
		if !isC1(r) {
			b.WriteString(s[i : i+size])
		}
		i += size
	}
	return b.String()
}

func dropASCII(b byte) bool {
	if b >= 0x20 {
		return b == 0x7F
	}
	return b != '\n' && b != '\r' && b != '\t'
}

func isC1(r rune) bool { return r >= 0x80 && r <= 0x9F }
