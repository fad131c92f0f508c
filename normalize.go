package wordfilter

import (
	"strings"
	"unicode"
)

const strDefault = "default"

// UTF-16 constants.
const (
	surr1    = 0xd800
	surr2    = 0xdc00
	surr3    = 0xe000
	surrSelf = 0x10000
)

// normalize rewrites the code units of src into dst and returns the number
// of units written, always len(src).  The source and destination may be the
// same slice.  A destination shorter than the source is a programming error
// that trips the bounds checks.
func (mode NormalizeMode) normalize(src, dst []uint16) int {
	switch mode {
	case NormalizeLower:
		for i, u := range src {
			dst[i] = lowerUnit(u)
		}
	default:
		copy(dst, src)
	}
	return len(src)
}

// lowerUnit folds one code unit to lowercase.  Folding is simple and
// per-unit: surrogate halves pass through, and the rare mappings that leave
// the Basic Multilingual Plane are not applied.
func lowerUnit(u uint16) uint16 {
	if u < 0x80 {
		if u >= 'A' && u <= 'Z' {
			u += 'a' - 'A'
		}
		return u
	}
	if u >= surr1 && u < surr3 {
		return u
	}
	r := unicode.ToLower(rune(u))
	if r < 0 || r > 0xffff {
		return u
	}
	return uint16(r)
}

// utf16Length returns the number of UTF-16 code units needed to hold s.
func utf16Length(s string) int {
	n := 0
	for _, r := range s {
		if r >= surrSelf {
			n += 2
		} else {
			n++
		}
	}
	return n
}

// encodeUnits writes the UTF-16 code units of s into dst, which must have
// room for utf16Length(s) units, and returns the number written.  Invalid
// UTF-8 sequences become U+FFFD, matching the behavior of ranging over s.
func encodeUnits(s string, dst []uint16) int {
	i := 0
	for _, r := range s {
		switch {
		case r >= surrSelf:
			r -= surrSelf
			dst[i+0] = uint16(surr1 + (r >> 10))
			dst[i+1] = uint16(surr2 + (r & 0x3ff))
			i += 2
		case r >= surr1 && r < surr3:
			dst[i] = 0xfffd
			i++
		default:
			dst[i] = uint16(r)
			i++
		}
	}
	return i
}

// appendUnits decodes UTF-16 code units and appends them to sb.  Unpaired
// surrogate halves become U+FFFD.
func appendUnits(sb *strings.Builder, units []uint16) {
	for i := 0; i < len(units); i++ {
		u := units[i]
		switch {
		case u < surr1 || u >= surr3:
			sb.WriteRune(rune(u))
		case u < surr2 && i+1 < len(units) && units[i+1] >= surr2 && units[i+1] < surr3:
			r := (rune(u-surr1) << 10) | rune(units[i+1]-surr2)
			sb.WriteRune(r + surrSelf)
			i++
		default:
			sb.WriteRune(0xfffd)
		}
	}
}
