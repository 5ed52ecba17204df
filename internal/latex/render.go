package latex

import (
	"fmt"
	"strings"

	"github.com/npillmayer/schuko/tracing"

	"mathtext/internal/document"
	"mathtext/internal/render"
)

// tracer traces with key 'mathtext.latex'.
func tracer() tracing.Trace {
	return tracing.Select("mathtext.latex")
}

type mode int

const (
	unknownMode mode = iota
	mathMode
	textMode
)

// Renderer emits LaTeX. Each logical line settles into either a displayed
// math environment (\[ ... \]) or a text paragraph the first time it emits
// content; mid-line mode switches become \text{...} or $...$ segments.
type Renderer struct {
	currentBlockType   mode
	currentSegmentType mode

	writerLineMode    mode
	writerCurrentMode mode

	isStartOfLine          bool
	isBracketSizingEnabled bool

	internalRenderCount int
}

// New returns a LaTeX renderer with bracket sizing enabled.
func New() *Renderer {
	return &Renderer{
		currentBlockType:       mathMode,
		currentSegmentType:     mathMode,
		isStartOfLine:          true,
		isBracketSizingEnabled: true,
	}
}

// CommandList returns the interpreter commands this backend understands.
func CommandList() []string {
	return []string{"NoBracketSizing"}
}

// RenderDocument renders the whole document, including the LaTeX preamble
// and closing.
func (r *Renderer) RenderDocument(doc *document.Document) (string, error) {
	body, err := render.Document(r, doc)
	if err != nil {
		return "", err
	}
	return documentPreamble + body + documentClosing, nil
}

func (r *Renderer) beginInternalRender() {
	r.internalRenderCount++
}

func (r *Renderer) doingInternalRender() bool {
	return r.internalRenderCount > 0
}

func (r *Renderer) endInternalRender() {
	r.internalRenderCount--
}

// renderMathContent wraps math material with whatever LaTeX mode switches
// the current line state requires. Internal renders (fraction numerators
// and the like) never switch modes.
func (r *Renderer) renderMathContent(s string) string {
	var output strings.Builder

	if !r.doingInternalRender() && r.writerCurrentMode != mathMode {
		if r.writerCurrentMode == unknownMode {
			// First content on the line: the line will be in math
			// mode.
			tracer().Debugf("LaTeX line will be in math mode")
			r.writerLineMode = mathMode
			r.writerCurrentMode = mathMode
			output.WriteString(`\[ `)
		} else {
			// On a math line, end the \text{...} segment; on a
			// text line, begin an inline math segment.
			if r.writerLineMode == mathMode {
				output.WriteString("} ")
			} else {
				output.WriteString(" $")
			}
			r.writerCurrentMode = mathMode
		}
	}

	output.WriteString(s)
	if !r.doingInternalRender() {
		r.isStartOfLine = false
	}

	return output.String()
}

func (r *Renderer) renderTextContent(s string) string {
	var output strings.Builder

	if !r.doingInternalRender() && r.writerCurrentMode != textMode {
		if r.writerCurrentMode == unknownMode {
			tracer().Debugf("LaTeX line will be in text mode")
			r.writerLineMode = textMode
			r.writerCurrentMode = textMode
			output.WriteString(`\par `)
		} else {
			if r.writerLineMode == mathMode {
				output.WriteString(`\text{ `)
			} else {
				output.WriteString("$ ")
			}
			r.writerCurrentMode = textMode
		}
	}

	output.WriteString(escape(s))
	r.isStartOfLine = false

	return output.String()
}

// RenderSourceLine keeps the original source as a LaTeX comment.
func (r *Renderer) RenderSourceLine(e *document.SourceLine) (string, error) {
	return "%% " + e.String() + "\n", nil
}

// RenderCommand handles rendering directives; commands produce no visible
// output beyond a comment.
func (r *Renderer) RenderCommand(e *document.Command) (string, error) {
	// Automatic sizing of group enclosures produces nicely formatted
	// output but fails when a math line breaks across print lines, so it
	// can be turned off.
	if strings.EqualFold(e.Name, "NoBracketSizing") {
		switch {
		case strings.EqualFold(e.Parameters, "true"):
			r.isBracketSizingEnabled = false
		case strings.EqualFold(e.Parameters, "false"):
			r.isBracketSizingEnabled = true
		default:
			return "", &render.Error{Msg: fmt.Sprintf(
				"the 'NoBracketSizing' command expects to either be enabled or disabled -- invalid parameter provided: '%s'", e.Parameters)}
		}
	}

	return "%% COMMAND: " + e.String() + "\n", nil
}

func (r *Renderer) RenderMathModeMarker(e *document.MathModeMarker) (string, error) {
	if r.isStartOfLine {
		r.currentBlockType = mathMode
	}
	r.currentSegmentType = mathMode
	return "", nil
}

func (r *Renderer) RenderTextModeMarker(e *document.TextModeMarker) (string, error) {
	if r.isStartOfLine {
		r.currentBlockType = textMode
	}
	r.currentSegmentType = textMode
	return "", nil
}

// RenderLineBreak closes whatever environment the line opened. A line that
// emitted nothing becomes vertical space.
func (r *Renderer) RenderLineBreak(e *document.LineBreak) (string, error) {
	var output strings.Builder

	switch r.writerLineMode {
	case mathMode:
		if r.writerCurrentMode == textMode {
			output.WriteString("}")
			r.writerCurrentMode = mathMode
		}
		output.WriteString(` \]`)
	case textMode:
		if r.writerCurrentMode == mathMode {
			output.WriteString("$")
			r.writerCurrentMode = textMode
		}
	default:
		// A blank line.
		output.WriteString(`\vspace{10pt}`)
	}

	r.writerLineMode = unknownMode
	r.writerCurrentMode = unknownMode
	output.WriteString("\n")
	r.isStartOfLine = true

	return output.String(), nil
}

func (r *Renderer) RenderItemNumber(e *document.ItemNumber) (string, error) {
	return r.renderMathContent(fmt.Sprintf(`\text{%s}\thickspace `, e.Text)), nil
}

func (r *Renderer) RenderTextBlock(e *document.TextBlock) (string, error) {
	return r.renderTextContent(e.Text), nil
}

func (r *Renderer) RenderMathBlock(e *document.MathBlock) (string, error) {
	return r.renderMathContent(e.Text), nil
}

func (r *Renderer) RenderNumber(e *document.Number) (string, error) {
	return r.renderMathContent(e.StandardNotation()), nil
}

func (r *Renderer) RenderGroup(e *document.Group) (string, error) {
	r.beginInternalRender()
	renderedContents, err := render.Vector(r, e.Contents)
	r.endInternalRender()
	if err != nil {
		return "", err
	}

	var open, close string
	switch e.Kind {
	case document.Parentheses:
		open, close = "(", ")"
	case document.Brackets:
		open, close = "[", "]"
	case document.Braces:
		open, close = `\{`, `\}`
	}

	if r.isBracketSizingEnabled {
		return r.renderMathContent(`\left` + open + renderedContents + `\right` + close), nil
	}
	return r.renderMathContent(open + renderedContents + close), nil
}

func (r *Renderer) RenderOperator(e *document.Operator) (string, error) {
	switch e.Op {
	case document.Addition:
		return r.renderMathContent(" + "), nil
	case document.Subtraction:
		return r.renderMathContent(" - "), nil
	case document.Division:
		return r.renderMathContent(` \div `), nil
	case document.Multiplication:
		return r.renderMathContent(` \times `), nil
	}
	return "", &render.Error{Msg: fmt.Sprintf("unknown operator %v", e.Op)}
}

func (r *Renderer) RenderComparator(e *document.Comparator) (string, error) {
	switch e.Comp {
	case document.LessThan:
		return r.renderMathContent(" < "), nil
	case document.GreaterThan:
		return r.renderMathContent(" > "), nil
	case document.Equals:
		return r.renderMathContent(" = "), nil
	case document.ApproxEquals:
		return r.renderMathContent(` \approx `), nil
	case document.NotEquals:
		return r.renderMathContent(` \neq `), nil
	case document.GreaterThanEquals:
		return r.renderMathContent(` \geq `), nil
	case document.LessThanEquals:
		return r.renderMathContent(` \leq `), nil
	}
	return "", &render.Error{Msg: fmt.Sprintf("unknown comparator %v", e.Comp)}
}

// Uppercase Greek letters without a dedicated LaTeX macro fall back to the
// Roman capital of the same shape.
var latexGreek = map[document.GreekKind]string{
	document.SmallAlpha: `\alpha`, document.CapitalAlpha: "A",
	document.SmallBeta: `\beta`, document.CapitalBeta: "B",
	document.SmallGamma: `\gamma`, document.CapitalGamma: `\Gamma`,
	document.SmallDelta: `\delta`, document.CapitalDelta: `\Delta`,
	document.SmallEpsilon: `\epsilon`, document.CapitalEpsilon: `\varepsilon`,
	document.SmallZeta: `\zeta`, document.CapitalZeta: "Z",
	document.SmallEta: `\eta`, document.CapitalEta: "H",
	document.SmallTheta: `\theta`, document.CapitalTheta: `\Theta`,
	document.SmallIota: `\iota`, document.CapitalIota: "I",
	document.SmallKappa: `\kappa`, document.CapitalKappa: "K",
	document.SmallLambda: `\lambda`, document.CapitalLambda: `\Lambda`,
	document.SmallMu: `\mu`, document.CapitalMu: "M",
	document.SmallNu: `\nu`, document.CapitalNu: "N",
	document.SmallXi: `\xi`, document.CapitalXi: `\Xi`,
	document.SmallOmicron: "o", document.CapitalOmicron: "O",
	document.SmallPi: `\pi`, document.CapitalPi: `\Pi`,
	document.SmallRho: `\rho`, document.CapitalRho: "P",
	document.SmallSigma: `\sigma`, document.CapitalSigma: `\Sigma`,
	document.SmallTau: `\tau`, document.CapitalTau: "T",
	document.SmallUpsilon: `\upsilon`, document.CapitalUpsilon: `\Upsilon`,
	document.SmallPhi: `\phi`, document.CapitalPhi: `\Phi`,
	document.SmallChi: `\chi`, document.CapitalChi: "X",
	document.SmallPsi: `\psi`, document.CapitalPsi: `\Psi`,
	document.SmallOmega: `\omega`, document.CapitalOmega: `\Omega`,
}

func (r *Renderer) RenderGreekLetter(e *document.GreekLetter) (string, error) {
	mapped, ok := latexGreek[e.Letter]
	if !ok {
		return "", &render.Error{Msg: fmt.Sprintf("unknown greek letter %v", e.Letter)}
	}
	return r.renderMathContent(mapped), nil
}

var latexSymbols = map[document.SymbolKind]string{
	document.SymComma:          ",",
	document.SymCurrencyCents:  `\cent `,
	document.SymCurrencyEuro:   `\euro `,
	document.SymCurrencyFranc:  "F",
	document.SymCurrencyPound:  `\pounds `,
	document.SymCurrencyDollar: `\$`,
	document.SymCurrencyYen:    "Y ",
	document.SymFactorial:      "!",
	document.SymLeftBrace:      `\{`,
	document.SymLeftBracket:    "[",
	document.SymLeftParen:      "(",
	document.SymPercent:        `\%`,
	document.SymPeriod:         ".",
	document.SymRightBrace:     `\}`,
	document.SymRightBracket:   "]",
	document.SymRightParen:     ")",
	document.SymTherefore:      `\therefore `,
}

func (r *Renderer) RenderSymbol(e *document.Symbol) (string, error) {
	mapped, ok := latexSymbols[e.Sym]
	if !ok {
		return "", &render.Error{Msg: fmt.Sprintf("unknown symbol %v", e.Sym)}
	}
	return r.renderMathContent(mapped), nil
}

func (r *Renderer) RenderModifier(e *document.Modifier) (string, error) {
	r.beginInternalRender()
	renderedArgument, err := render.Vector(r, e.Argument)
	r.endInternalRender()
	if err != nil {
		return "", err
	}

	var output string
	switch e.Mod {
	case document.OverArrowRight:
		output = fmt.Sprintf(`\overrightarrow{%s}`, renderedArgument)
	case document.OverBar:
		output = fmt.Sprintf(`\overline{%s}`, renderedArgument)
	case document.OverHat:
		output = fmt.Sprintf(`\hat{%s}`, renderedArgument)
	}

	return r.renderMathContent(output), nil
}

func (r *Renderer) RenderRoot(e *document.Root) (string, error) {
	r.beginInternalRender()
	renderedIndex, err := render.Vector(r, e.Index)
	if err != nil {
		r.endInternalRender()
		return "", err
	}
	renderedArgument, err := render.Vector(r, e.Argument)
	r.endInternalRender()
	if err != nil {
		return "", err
	}

	if renderedIndex != "" {
		return r.renderMathContent(fmt.Sprintf(`\sqrt[%s]{%s}`, renderedIndex, renderedArgument)), nil
	}
	return r.renderMathContent(fmt.Sprintf(`\sqrt{%s}`, renderedArgument)), nil
}

func (r *Renderer) RenderSummation(e *document.Summation) (string, error) {
	r.beginInternalRender()
	renderedLower, err := render.Vector(r, e.Lower)
	if err != nil {
		r.endInternalRender()
		return "", err
	}
	renderedUpper, err := render.Vector(r, e.Upper)
	r.endInternalRender()
	if err != nil {
		return "", err
	}

	output := `\sum`
	if renderedLower != "" {
		output += fmt.Sprintf("_{%s}", renderedLower)
	}
	if renderedUpper != "" {
		output += fmt.Sprintf("^{%s}", renderedUpper)
	}
	output += " "

	return r.renderMathContent(output), nil
}

func (r *Renderer) RenderFraction(e *document.Fraction) (string, error) {
	r.beginInternalRender()
	renderedNumerator, err := render.Vector(r, e.Numerator)
	if err != nil {
		r.endInternalRender()
		return "", err
	}
	renderedDenominator, err := render.Vector(r, e.Denominator)
	r.endInternalRender()
	if err != nil {
		return "", err
	}

	return r.renderMathContent(fmt.Sprintf(`\frac{%s}{%s}`, renderedNumerator, renderedDenominator)), nil
}

func (r *Renderer) RenderExponent(e *document.Exponent) (string, error) {
	r.beginInternalRender()
	renderedExponent, err := render.Vector(r, e.Contents)
	r.endInternalRender()
	if err != nil {
		return "", err
	}

	return r.renderMathContent(fmt.Sprintf("^{%s}", renderedExponent)), nil
}

func (r *Renderer) RenderSubscript(e *document.Subscript) (string, error) {
	r.beginInternalRender()
	renderedSubscript, err := render.Vector(r, e.Contents)
	r.endInternalRender()
	if err != nil {
		return "", err
	}

	return r.renderMathContent(fmt.Sprintf("_{%s}", renderedSubscript)), nil
}
