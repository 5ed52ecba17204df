// Package source loads MathText source files into a buffer of logical
// lines: trailing whitespace trimmed, continuation lines spliced, and
// #include directives expanded.
package source

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'mathtext.source'.
func tracer() tracing.Trace {
	return tracing.Select("mathtext.source")
}

// Line is one logical line of input, tagged with the file and the physical
// line span it was spliced from.
type Line struct {
	Filename string
	Line1    int
	Line2    int
	Content  string
}

func (l Line) String() string {
	if l.Line1 == l.Line2 {
		return fmt.Sprintf("[%s:%d] %s", l.Filename, l.Line1, l.Content)
	}
	return fmt.Sprintf("[%s:%d-%d] %s", l.Filename, l.Line1, l.Line2, l.Content)
}
