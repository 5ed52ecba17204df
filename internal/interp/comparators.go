package interp

import (
	"strings"

	"mathtext/internal/document"
	"mathtext/internal/util"
)

// Longer comparators match before shorter ones.
var comparatorTable = []struct {
	search string
	comp   document.ComparatorKind
}{
	{"<=", document.LessThanEquals},
	{">=", document.GreaterThanEquals},
	{"!=", document.NotEquals},
	{"~=", document.ApproxEquals},
	{"<", document.LessThan},
	{">", document.GreaterThan},
	{"=", document.Equals},
}

// interpretComparator recognizes signs of comparison (< > = != ~= <= >=).
func (in *Interpreter) interpretComparator(src string, i *int) (document.Vector, bool, error) {
	for _, entry := range comparatorTable {
		if !strings.HasPrefix(src[*i:], entry.search) {
			continue
		}

		tracer().Debugf("added comparator sign (%s)", entry.search)
		*i += len(entry.search)

		// Skip whitespace after a sign of comparison.
		for *i < len(src) && util.IsSpace(src[*i]) {
			*i++
		}

		return document.Vector{&document.Comparator{Comp: entry.comp}}, true, nil
	}

	return nil, false, nil
}
