package interp

import (
	"regexp"

	"mathtext/internal/document"
)

// A root index may be a single word character directly before the opening
// paren of the argument: _/3(16).
var rootIndexPattern = regexp.MustCompile(`^(\w)\(`)

// interpretRoot recognizes roots: _/100, _/(n+1), _/3(16), and
// _/[n^2](x + 2y) for complex indexes.
func (in *Interpreter) interpretRoot(src string, i *int) (document.Vector, bool, error) {
	if prefix2(src, *i) != "_/" {
		return nil, false, nil
	}

	*i += 2

	var rootIndex string
	if m := rootIndexPattern.FindStringSubmatch(src[*i:]); m != nil {
		rootIndex = m[1]
		*i += len(rootIndex)
	} else if *i < len(src) && src[*i] == '[' {
		var ok bool
		rootIndex, ok = extractGroup(src, i, "[", "]", false)
		if !ok {
			return nil, false, in.errorf(RootIndexNotTerminated,
				"text in root index: '%s'", rootIndex)
		}
	}

	var indexVec document.Vector
	if rootIndex != "" {
		var err error
		indexVec, err = in.interpretBuffer(rootIndex)
		if err != nil {
			return nil, false, err
		}
	}

	var argument string
	var ok bool
	switch {
	case *i < len(src) && src[*i] == '@':
		argument, ok = extractGroup(src, i, "@", "#", true)
		if !ok {
			return nil, false, in.errorf(RootNotTerminated,
				"text in fractional root: '%s'", argument)
		}
	case *i < len(src) && src[*i] == '(':
		argument, ok = extractGroup(src, i, "(", ")", false)
		if !ok {
			return nil, false, in.errorf(RootNotTerminated,
				"text in root: '%s'", argument)
		}
	default:
		argument, _ = extractItem(src, i, defaultItemTerminators)
	}

	tracer().Debugf("found root: index='%s', argument='%s'", rootIndex, argument)

	argVec, err := in.interpretBuffer(argument)
	if err != nil {
		return nil, false, err
	}

	return document.Vector{&document.Root{Index: indexVec, Argument: argVec}}, true, nil
}
