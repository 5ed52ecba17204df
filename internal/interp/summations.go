package interp

import (
	"strings"

	"mathtext/internal/document"
	"mathtext/internal/util"
)

// interpretSummation recognizes `S(lower, upper). Either bound may be
// empty; paren-wrapped bounds may contain commas.
func (in *Interpreter) interpretSummation(src string, i *int) (document.Vector, bool, error) {
	pos := *i

	if !strings.HasPrefix(src[pos:], "`S") || len(src)-pos < 4 {
		return nil, false, nil
	}

	pos += 2
	for pos < len(src) && util.IsSpace(src[pos]) {
		pos++
	}
	if pos >= len(src) || src[pos] != '(' {
		return nil, false, nil
	}
	pos++

	lowerBound, ok := extractToDelimiter(src, &pos, ",")
	if !ok {
		return nil, false, in.errorf(SummationNotTerminated,
			"could not find ',' ending the lower bound")
	}

	for pos < len(src) && util.IsSpace(src[pos]) {
		pos++
	}

	upperBound, ok := extractToDelimiter(src, &pos, ")")
	if !ok {
		return nil, false, in.errorf(SummationNotTerminated,
			"could not find ')' ending the upper bound")
	}

	*i = pos

	tracer().Debugf("found summation: lower=%s, upper=%s", lowerBound, upperBound)

	lowerVec, err := in.interpretBuffer(lowerBound)
	if err != nil {
		return nil, false, err
	}
	upperVec, err := in.interpretBuffer(upperBound)
	if err != nil {
		return nil, false, err
	}

	return document.Vector{&document.Summation{Lower: lowerVec, Upper: upperVec}}, true, nil
}
