package interp

import (
	"mathtext/internal/document"
)

// interpretGroup recognizes a balanced ( ), [ ], or { } group and
// recursively interprets its contents.
func (in *Interpreter) interpretGroup(src string, i *int) (document.Vector, bool, error) {
	var kind document.GroupKind
	var open, close string

	switch src[*i] {
	case '(':
		kind, open, close = document.Parentheses, "(", ")"
	case '[':
		kind, open, close = document.Brackets, "[", "]"
	case '{':
		kind, open, close = document.Braces, "{", "}"
	default:
		return nil, false, nil
	}

	contents, ok := extractGroup(src, i, open, close, false)
	if !ok {
		return nil, false, in.errorf(GroupNotTerminated,
			"end of line was reached while looking for closing '%s' - saw %s", close, contents)
	}
	tracer().Debugf("found %s%s%s group", open, contents, close)

	vec, err := in.interpretBuffer(contents)
	if err != nil {
		return nil, false, err
	}

	return document.Vector{&document.Group{Kind: kind, Contents: vec}}, true, nil
}
