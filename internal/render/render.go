// Package render defines the renderer contract shared by all output
// backends, plus the document walk that dispatches each element to its
// type-specific render method.
package render

import (
	"fmt"
	"strings"

	"mathtext/internal/document"
)

// Error reports a failure inside a rendering backend.
type Error struct {
	Msg string
}

func (e *Error) Error() string { return e.Msg }

// Renderer is implemented by every output backend: one method per element
// variant. Composite variants are expected to render their children via
// Vector.
type Renderer interface {
	RenderSourceLine(e *document.SourceLine) (string, error)
	RenderCommand(e *document.Command) (string, error)

	RenderMathModeMarker(e *document.MathModeMarker) (string, error)
	RenderTextModeMarker(e *document.TextModeMarker) (string, error)
	RenderLineBreak(e *document.LineBreak) (string, error)

	RenderItemNumber(e *document.ItemNumber) (string, error)
	RenderTextBlock(e *document.TextBlock) (string, error)
	RenderMathBlock(e *document.MathBlock) (string, error)
	RenderNumber(e *document.Number) (string, error)
	RenderGroup(e *document.Group) (string, error)

	RenderOperator(e *document.Operator) (string, error)
	RenderComparator(e *document.Comparator) (string, error)
	RenderGreekLetter(e *document.GreekLetter) (string, error)
	RenderSymbol(e *document.Symbol) (string, error)
	RenderModifier(e *document.Modifier) (string, error)

	RenderRoot(e *document.Root) (string, error)
	RenderSummation(e *document.Summation) (string, error)
	RenderFraction(e *document.Fraction) (string, error)

	RenderExponent(e *document.Exponent) (string, error)
	RenderSubscript(e *document.Subscript) (string, error)
}

// Document walks the whole document through r.
func Document(r Renderer, doc *document.Document) (string, error) {
	return Vector(r, doc.Elements())
}

// Vector renders a sequence of elements and concatenates the results.
func Vector(r Renderer, v document.Vector) (string, error) {
	var sb strings.Builder
	for _, e := range v {
		rendered, err := Element(r, e)
		if err != nil {
			return "", err
		}
		sb.WriteString(rendered)
	}
	return sb.String(), nil
}

// Element dispatches a single element to its render method.
func Element(r Renderer, e document.Element) (string, error) {
	switch el := e.(type) {
	case *document.SourceLine:
		return r.RenderSourceLine(el)
	case *document.Command:
		return r.RenderCommand(el)
	case *document.MathModeMarker:
		return r.RenderMathModeMarker(el)
	case *document.TextModeMarker:
		return r.RenderTextModeMarker(el)
	case *document.LineBreak:
		return r.RenderLineBreak(el)
	case *document.ItemNumber:
		return r.RenderItemNumber(el)
	case *document.TextBlock:
		return r.RenderTextBlock(el)
	case *document.MathBlock:
		return r.RenderMathBlock(el)
	case *document.Number:
		return r.RenderNumber(el)
	case *document.Group:
		return r.RenderGroup(el)
	case *document.Operator:
		return r.RenderOperator(el)
	case *document.Comparator:
		return r.RenderComparator(el)
	case *document.GreekLetter:
		return r.RenderGreekLetter(el)
	case *document.Symbol:
		return r.RenderSymbol(el)
	case *document.Modifier:
		return r.RenderModifier(el)
	case *document.Root:
		return r.RenderRoot(el)
	case *document.Summation:
		return r.RenderSummation(el)
	case *document.Fraction:
		return r.RenderFraction(el)
	case *document.Exponent:
		return r.RenderExponent(el)
	case *document.Subscript:
		return r.RenderSubscript(el)
	}

	return "", &Error{Msg: fmt.Sprintf("unsupported element type in render.Element: %T", e)}
}
