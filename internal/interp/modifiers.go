package interp

import (
	"strings"

	"mathtext/internal/document"
	"mathtext/internal/util"
)

// Longer modifiers match before shorter ones.
var modifierTable = []struct {
	search string
	name   string
	mod    document.ModifierKind
}{
	{"`V", "vector", document.OverArrowRight},
	{"`BAR", "bar", document.OverBar},
	{"`CJ", "conjugate", document.OverBar},
	{"`HAT", "hat", document.OverHat},
	{"`H", "hat", document.OverHat},
}

// interpretModifier recognizes symbols that carry an argument: vectors,
// bars, hats. The argument is a parenthesized group, a whole fraction, or
// the next item.
func (in *Interpreter) interpretModifier(src string, i *int) (document.Vector, bool, error) {
	if src[*i] != '`' {
		return nil, false, nil
	}

	for _, entry := range modifierTable {
		if !strings.HasPrefix(src[*i:], entry.search) {
			continue
		}

		*i += len(entry.search)

		for *i < len(src) && util.IsSpace(src[*i]) {
			*i++
		}
		if *i == len(src) {
			return nil, false, in.errorf(ModifierMissingArgument, "%s symbol", entry.name)
		}

		var argument string
		var ok bool
		switch src[*i] {
		case '(':
			argument, ok = extractGroup(src, i, "(", ")", false)
			if !ok {
				return nil, false, in.errorf(ModifierNotTerminated,
					"text found inside %s symbol so far: '%s'", entry.name, argument)
			}
		case '@':
			argument, ok = extractGroup(src, i, "@", "#", true)
			if !ok {
				return nil, false, in.errorf(ModifierNotTerminated,
					"partial fraction inside %s symbol so far: '%s'", entry.name, argument)
			}
		default:
			argument, _ = extractItem(src, i, defaultItemTerminators)
		}

		tracer().Debugf("found item in %s symbol: %s", entry.name, argument)
		vec, err := in.interpretBuffer(argument)
		if err != nil {
			return nil, false, err
		}

		return document.Vector{&document.Modifier{Mod: entry.mod, Argument: vec}}, true, nil
	}

	return nil, false, nil
}
