// Package interp converts a buffer of logical source lines into a typed
// document. The interpreter is a mode-sensitive scanner: math-mode material
// is tokenized production by production, text-mode material passes through
// untouched, and composite constructs (fractions, exponents, roots, ...)
// re-enter the interpreter recursively on their sub-buffers.
package interp

import (
	"fmt"
	"strings"

	"github.com/npillmayer/schuko/tracing"

	"mathtext/internal/document"
	"mathtext/internal/source"
	"mathtext/internal/util"
)

// tracer traces with key 'mathtext.interp'.
func tracer() tracing.Trace {
	return tracing.Select("mathtext.interp")
}

// maxRecursionDepth bounds interpretBuffer recursion so malformed input
// fails with a diagnostic instead of exhausting the stack.
const maxRecursionDepth = 100

// InterpretError signals that interpretation was aborted by an
// error-category diagnostic. The full diagnostic list remains available on
// the interpreter.
type InterpretError struct {
	Msg Msg
}

func (e *InterpretError) Error() string { return e.Msg.String() }

// Interpreter translates a source file into a document, accumulating
// diagnostics as it goes.
type Interpreter struct {
	src *source.File
	doc *document.Document

	msgs          []Msg
	knownCommands []string

	inTextMode     bool
	inTextBlock    bool
	blockBeganLine int
	isStartOfLine  bool
	depth          int

	curLine *source.Line
}

// New prepares an interpreter that reads from src and appends to doc.
func New(src *source.File, doc *document.Document) *Interpreter {
	return &Interpreter{src: src, doc: doc}
}

// RegisterCommand adds cmd to the set of $$commands the interpreter will
// accept. Renderers register their commands before interpretation.
func (in *Interpreter) RegisterCommand(cmd string) {
	tracer().Debugf("registering command %s", cmd)
	in.knownCommands = append(in.knownCommands, cmd)
}

// RegisterCommands registers each command in cmds.
func (in *Interpreter) RegisterCommands(cmds []string) {
	for _, cmd := range cmds {
		in.RegisterCommand(cmd)
	}
}

// IsCommand reports whether cmd has been registered.
func (in *Interpreter) IsCommand(cmd string) bool {
	for _, known := range in.knownCommands {
		if known == cmd {
			return true
		}
	}
	return false
}

// HaveMessages reports whether any diagnostics were produced.
func (in *Interpreter) HaveMessages() bool {
	return len(in.msgs) > 0
}

// Messages returns the accumulated diagnostics in production order.
func (in *Interpreter) Messages() []Msg {
	return in.msgs
}

// Interpret processes the whole source buffer. On an error-category
// diagnostic it stops and returns an *InterpretError; warnings and below
// accumulate without interrupting the run.
func (in *Interpreter) Interpret() error {
	tracer().Debugf("enter Interpret")

	in.inTextMode = false
	in.inTextBlock = false
	in.blockBeganLine = 1

	for i := range in.src.Lines() {
		line := in.src.Lines()[i]
		in.doc.Add(&document.SourceLine{
			Filename: line.Filename,
			Line1:    line.Line1,
			Line2:    line.Line2,
			Text:     line.Content,
		})
		if err := in.interpretLine(&line); err != nil {
			return err
		}
	}

	return nil
}

// interpretLine handles block-mode markers and otherwise scans the line's
// contents, terminating them with a LineBreak.
func (in *Interpreter) interpretLine(line *source.Line) error {
	tracer().Debugf("interpretLine(%s)", line)

	in.curLine = line
	buffer := line.Content

	in.inTextMode = in.inTextBlock
	in.isStartOfLine = true

	switch buffer {
	case "&&":
		if !in.inTextBlock {
			in.inTextBlock = true
			in.inTextMode = true
			in.blockBeganLine = line.Line1
			in.doc.Add(&document.TextModeMarker{Kind: document.BlockMarker})
		} else {
			in.warning(NestedTextMode, fmt.Sprintf("text block began at line %d", in.blockBeganLine))
		}
		return nil

	case "$$":
		if in.inTextBlock {
			in.inTextBlock = false
			in.inTextMode = false
			in.blockBeganLine = line.Line1
			in.doc.Add(&document.MathModeMarker{Kind: document.BlockMarker})
		} else {
			in.warning(NestedMathMode, fmt.Sprintf("math block began at line %d", in.blockBeganLine))
		}
		return nil
	}

	elements, err := in.interpretBuffer(buffer)
	if err != nil {
		return err
	}
	elements = append(elements, &document.LineBreak{})

	in.doc.AddAll(elements)
	return nil
}

// production is one attempt at recognizing a construct at src[*i]. On a
// match it returns the produced elements and advances *i past the consumed
// input.
type production func(src string, i *int) (document.Vector, bool, error)

// interpretBuffer scans a buffer left to right, trying productions in
// precedence order at each position. Unrecognized characters accumulate in
// a catch buffer that is flushed as a text/math block whenever a
// production matches (or at the end of the buffer).
func (in *Interpreter) interpretBuffer(buffer string) (document.Vector, error) {
	in.depth++
	defer func() { in.depth-- }()
	if in.depth > maxRecursionDepth {
		return nil, in.errorf(NestingTooDeep, "in '%s'", buffer)
	}

	tracer().Debugf("interpretBuffer lvl %d (%s)", in.depth, buffer)

	var elements document.Vector
	var catch strings.Builder

	flush := func() {
		if strings.TrimSpace(catch.String()) != "" {
			elements = append(elements, in.makeGeneric(catch.String()))
		}
		catch.Reset()
	}

	attempts := []production{
		in.interpretGroup,
		in.interpretOperator,
		in.interpretNumber,
		in.interpretComparator,
		in.interpretGreekLetter,
		in.interpretModifier, // before symbols so `CJ gets matched
		in.interpretSymbol,
		in.interpretFraction,
		in.interpretRoot, // before subscripts to avoid confusion
		in.interpretSummation,
		in.interpretExponent,
		in.interpretSubscript,
	}

	i := 0
scan:
	for i < len(buffer) {
		c := buffer[i]

		if in.isStartOfLine {
			produced, ok, err := in.interpretCommand(buffer, &i)
			if err != nil {
				return nil, err
			}
			if ok {
				flush()
				elements = append(elements, produced...)
				continue
			}
		}

		// Mode changes: dump what we have up to this point whenever
		// the mode flips.
		if c == '$' {
			// `$ is a dollar sign, not a mode change.
			if !in.inTextMode && i > 0 && buffer[i-1] == '`' {
				catch.WriteByte(c)
				i++
				continue
			}

			if in.inTextMode {
				flush()
				in.inTextMode = false
				elements = append(elements, &document.MathModeMarker{Kind: document.SegmentMarker})
			} else {
				in.warning(NestedMathMode, "")
			}
			i++
			continue
		}

		if c == '&' {
			if !in.inTextMode {
				flush()
				in.inTextMode = true
				elements = append(elements, &document.TextModeMarker{Kind: document.SegmentMarker})
			} else {
				in.warning(NestedTextMode, "")
			}
			i++
			continue
		}

		// The first blob on a line may be an 'item number' (as might
		// appear in homework).
		if in.isStartOfLine && !in.inTextMode {
			produced, ok, err := in.interpretItemNumber(buffer, &i)
			if err != nil {
				return nil, err
			}
			if ok {
				flush()
				elements = append(elements, produced...)
				continue
			}

			// The line has not started until a non-space shows up.
			if !util.IsSpace(c) {
				in.isStartOfLine = false
			}
		}

		if !in.inTextMode {
			for _, attempt := range attempts {
				produced, ok, err := attempt(buffer, &i)
				if err != nil {
					return nil, err
				}
				if ok {
					flush()
					elements = append(elements, produced...)
					continue scan
				}
			}
		}

		// Default: save the unknown character for a later generic
		// text/math block.
		catch.WriteByte(c)
		i++
	}

	flush()
	return elements, nil
}

// makeGeneric wraps catch-buffer contents as a text or math block
// according to the current mode.
func (in *Interpreter) makeGeneric(buffer string) document.Element {
	if in.inTextMode {
		in.sniffTextForMath(buffer)
		return &document.TextBlock{Text: buffer}
	}
	return &document.MathBlock{Text: strings.TrimRight(buffer, " \t")}
}

// sniffTextForMath warns when a text passage looks like it contains
// mathematical material that probably wanted math mode.
func (in *Interpreter) sniffTextForMath(buffer string) {
	var suspicious []string

	contains := func(s string) bool { return strings.Contains(buffer, s) }

	if contains("@") && contains("~") && contains("#") {
		suspicious = append(suspicious, "Fractions")
	}
	if contains("<") || contains(">") || contains("=") {
		suspicious = append(suspicious, "Signs of Comparison")
	}
	if contains("_/") {
		suspicious = append(suspicious, "Roots")
	} else if contains("/_") {
		suspicious = append(suspicious, "Angles")
	} else if contains("_") {
		suspicious = append(suspicious, "Subscripts")
	}
	if contains("^") {
		suspicious = append(suspicious, "Exponents")
	}
	if contains("|") {
		suspicious = append(suspicious, "Absolute Values")
	}

	if len(suspicious) > 0 {
		in.warning(SuspectMathInText,
			fmt.Sprintf("found %s in '%s'", strings.Join(suspicious, ", "), buffer))
	}
}

// warning records a warning-category diagnostic at the current line.
func (in *Interpreter) warning(code Code, detail string) {
	in.addMessage(Warning, code, detail)
}

// errorf records an error-category diagnostic at the current line and
// returns the InterpretError that aborts the run.
func (in *Interpreter) errorf(code Code, format string, args ...interface{}) error {
	in.addMessage(Error, code, fmt.Sprintf(format, args...))
	return &InterpretError{Msg: in.msgs[len(in.msgs)-1]}
}

func (in *Interpreter) addMessage(category Category, code Code, detail string) {
	msg := Msg{
		Category: category,
		Code:     code,
		Filename: in.curLine.Filename,
		Line1:    in.curLine.Line1,
		Line2:    in.curLine.Line2,
		Detail:   detail,
	}
	in.msgs = append(in.msgs, msg)
	tracer().Infof("MSG: %s", msg)
}
