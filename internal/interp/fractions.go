package interp

import (
	"fmt"
	"strings"

	"mathtext/internal/document"
)

// interpretFraction recognizes @numerator~denominator#. Nested fractions
// are tolerated while scanning but not interpreted until the outer
// fraction closes.
func (in *Interpreter) interpretFraction(src string, i *int) (document.Vector, bool, error) {
	if src[*i] == '#' || src[*i] == '~' {
		in.warning(SuspectFraction,
			fmt.Sprintf("found '%c' modifier outside of a fraction", src[*i]))
		return nil, false, nil
	}

	if src[*i] != '@' {
		return nil, false, nil
	}

	nested := 0
	foundTerminator := false
	foundDividingLine := false
	var numerator, denominator strings.Builder

	side := func() *strings.Builder {
		if foundDividingLine {
			return &denominator
		}
		return &numerator
	}

	pos := *i + 1
	for ; pos < len(src); pos++ {
		// Escaped characters and the ~= comparator are not fraction
		// delimiters; skip over them.
		if two := prefix2(src, pos); two == `\#` || two == `\@` || two == `\~` || two == "~=" {
			pos++
			continue
		}

		switch src[pos] {
		case '@':
			nested++
		case '#':
			if nested == 0 {
				foundTerminator = true
			} else {
				nested--
			}
		case '~':
			if !foundDividingLine && nested == 0 {
				foundDividingLine = true
				continue
			}
		}
		if foundTerminator {
			break
		}

		side().WriteByte(src[pos])
	}

	if !foundTerminator {
		plural := ""
		if nested >= 1 {
			plural = "s"
		}
		return nil, false, in.errorf(FractionNotTerminated,
			"end of line encountered while still inside %d fraction%s", nested+1, plural)
	}

	*i = pos + 1

	tracer().Debugf("found fraction: %s // %s", numerator.String(), denominator.String())

	numVec, err := in.interpretBuffer(numerator.String())
	if err != nil {
		return nil, false, err
	}
	denVec, err := in.interpretBuffer(denominator.String())
	if err != nil {
		return nil, false, err
	}

	return document.Vector{
		&document.Fraction{Numerator: numVec, Denominator: denVec},
	}, true, nil
}

// prefix2 returns the two characters starting at pos, or "" near the end.
func prefix2(src string, pos int) string {
	if pos+2 > len(src) {
		return ""
	}
	return src[pos : pos+2]
}
