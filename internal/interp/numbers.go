package interp

import (
	"strings"

	"mathtext/internal/document"
	"mathtext/internal/util"
)

// thousandsGroupAt reports whether src[pos] begins a thousands separator:
// the separator itself, exactly three digits, and then something that is
// not a fourth digit.
func thousandsGroupAt(src string, pos int) bool {
	if pos+3 >= len(src) {
		return false
	}
	if !util.IsDigit(src[pos+1]) || !util.IsDigit(src[pos+2]) || !util.IsDigit(src[pos+3]) {
		return false
	}
	// A fourth digit means this was not a thousands separator after all:
	// 1,024,576 continues, 1,24837 does not.
	return pos+4 >= len(src) || !util.IsDigit(src[pos+4])
}

// interpretNumber recognizes a number or set of digits. Valid forms
// include: 1  1.1  .1  -1  -1.1  -.1  1,024  2,048,576  4 122 133.
func (in *Interpreter) interpretNumber(src string, i *int) (document.Vector, bool, error) {
	pos := *i
	negative := false
	curDigitGroupCount := 0

	if src[pos] == '-' {
		negative = true
		pos++
	}
	if pos >= len(src) {
		return nil, false, nil
	}

	// Case 1: .24 (decimal with no leading numbers). Numeric spaces are
	// allowed here if escaped (\ ) but not commas.
	if src[pos] == '.' {
		if pos+1 >= len(src) || !util.IsDigit(src[pos+1]) {
			return nil, false, nil
		}

		var rhs strings.Builder
		pos++
		for pos < len(src) {
			if util.IsDigit(src[pos]) {
				rhs.WriteByte(src[pos])
				pos++
			} else if strings.HasPrefix(src[pos:], "\\ ") {
				rhs.WriteByte(' ')
				pos += 2
			} else {
				break
			}
		}

		tracer().Debugf("adding decimal number w/o whole portion: (neg=%v) %s", negative, rhs.String())
		*i = pos
		return document.Vector{
			&document.Number{Negative: negative, Decimals: rhs.String()},
		}, true, nil
	}

	// Case 2: 121 (plain old number).
	if !util.IsDigit(src[pos]) {
		return nil, false, nil
	}

	var lhs, rhs strings.Builder

	// Whole portion: commas and spaces separate thousands.
	for pos < len(src) {
		c := src[pos]
		if util.IsDigit(c) {
			curDigitGroupCount++
			lhs.WriteByte(c)
			pos++
			continue
		}
		if c == ',' || c == ' ' {
			if curDigitGroupCount <= 3 && thousandsGroupAt(src, pos) {
				lhs.WriteString(src[pos : pos+4])
				pos += 4
				curDigitGroupCount = 0
				continue
			}
			break
		}
		if strings.HasPrefix(src[pos:], "\\ ") {
			// End the number here.
			pos++
			break
		}
		break
	}

	// Case 3: 121.25 (with a decimal portion). Only spaces separate
	// thousands on this side.
	if pos < len(src) && src[pos] == '.' {
		pos++
		curDigitGroupCount = 0

		for pos < len(src) {
			c := src[pos]
			if util.IsDigit(c) {
				curDigitGroupCount++
				rhs.WriteByte(c)
				pos++
				continue
			}
			if c == ' ' {
				if curDigitGroupCount <= 3 && thousandsGroupAt(src, pos) {
					rhs.WriteString(src[pos : pos+4])
					pos += 4
					curDigitGroupCount = 0
					continue
				}
				break
			}
			if strings.HasPrefix(src[pos:], "\\ ") {
				pos++
				break
			}
			break
		}
	}

	tracer().Debugf("adding decimal number: (neg=%v) %s.%s", negative, lhs.String(), rhs.String())
	*i = pos
	return document.Vector{
		&document.Number{Negative: negative, Whole: lhs.String(), Decimals: rhs.String()},
	}, true, nil
}
