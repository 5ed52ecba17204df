package interp

import (
	"mathtext/internal/document"
)

// interpretSubscript recognizes _item, _(item), or _@fraction#.
func (in *Interpreter) interpretSubscript(src string, i *int) (document.Vector, bool, error) {
	if src[*i] != '_' {
		return nil, false, nil
	}

	*i++
	var contents string
	var ok bool
	switch {
	case *i < len(src) && src[*i] == '(':
		contents, ok = extractGroup(src, i, "(", ")", false)
		if !ok {
			return nil, false, in.errorf(SubscriptNotTerminated,
				"text in subscript: '%s'", contents)
		}
	case *i < len(src) && src[*i] == '@':
		contents, ok = extractGroup(src, i, "@", "#", true)
		if !ok {
			return nil, false, in.errorf(SubscriptNotTerminated,
				"text in fractional subscript: '%s'", contents)
		}
	default:
		contents, _ = extractItem(src, i, defaultItemTerminators)
	}

	tracer().Debugf("found subscript: %s", contents)

	vec, err := in.interpretBuffer(contents)
	if err != nil {
		return nil, false, err
	}

	return document.Vector{&document.Subscript{Contents: vec}}, true, nil
}
