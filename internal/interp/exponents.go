package interp

import (
	"mathtext/internal/document"
)

// interpretExponent recognizes ^item, ^(item), or ^@fraction#.
func (in *Interpreter) interpretExponent(src string, i *int) (document.Vector, bool, error) {
	if src[*i] != '^' {
		return nil, false, nil
	}

	*i++
	var contents string
	var ok bool
	switch {
	case *i < len(src) && src[*i] == '(':
		contents, ok = extractGroup(src, i, "(", ")", false)
		if !ok {
			return nil, false, in.errorf(ExponentNotTerminated,
				"text in exponent: '%s'", contents)
		}
	case *i < len(src) && src[*i] == '@':
		contents, ok = extractGroup(src, i, "@", "#", true)
		if !ok {
			return nil, false, in.errorf(ExponentNotTerminated,
				"text in exponent: '%s'", contents)
		}
	default:
		contents, _ = extractItem(src, i, defaultItemTerminators)
	}

	tracer().Debugf("found exponent: %s", contents)

	vec, err := in.interpretBuffer(contents)
	if err != nil {
		return nil, false, err
	}

	return document.Vector{&document.Exponent{Contents: vec}}, true, nil
}
