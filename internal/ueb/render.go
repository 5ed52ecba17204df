// Package ueb renders an interpreted document into Unified English
// Braille, in North American ASCII braille notation.
//
// The tricky part is line breaking: suitable wrap points are marked in the
// interim output with sentinel strings, and the entire document is
// word-wrapped in one pass at the end of the render.
package ueb

import (
	"fmt"
	"strings"

	"github.com/npillmayer/schuko/tracing"

	"mathtext/internal/document"
	"mathtext/internal/louis"
	"mathtext/internal/render"
	"mathtext/internal/util"
)

// tracer traces with key 'mathtext.ueb'.
func tracer() tracing.Trace {
	return tracing.Select("mathtext.ueb")
}

// status carries the state that must be saved and restored around
// subexpression renders (numerators, exponents, bounds, ...).
type status struct {
	isInTextBlock           bool
	isNumericMode           bool
	isStart                 bool
	isUsingSpacedOperators  bool
	skipFollowingWhitespace bool
}

// Renderer emits UEB braille. A renderer instance is not safe for use from
// multiple goroutines: the status stack is per-render state.
type Renderer struct {
	maxLineLength int

	status              status
	statusStack         []status
	internalRenderCount int

	translator louis.Translator
}

// New returns a UEB renderer with line wrapping disabled. A nil translator
// selects louis.Default(): lou_translate when installed, otherwise the
// builtin table.
func New(tr louis.Translator) *Renderer {
	if tr == nil {
		tr = louis.Default()
	}
	return &Renderer{
		status:     status{isStart: true},
		translator: tr,
	}
}

// CommandList returns the interpreter commands this backend understands.
func CommandList() []string {
	return []string{"SpaceUEBOperators"}
}

// EnableLineWrapping makes the wrap pass break lines at the given width.
func (r *Renderer) EnableLineWrapping(length int) {
	if length <= 0 {
		panic("ueb: wrap width must be positive")
	}
	r.maxLineLength = length
}

// DisableLineWrapping turns the wrap pass off; each input line becomes one
// braille line.
func (r *Renderer) DisableLineWrapping() {
	r.maxLineLength = 0
}

// IsWrappingEnabled reports whether a wrap width is configured.
func (r *Renderer) IsWrappingEnabled() bool {
	return r.maxLineLength > 0
}

// RenderDocument renders the whole document and then word-wraps it.
func (r *Renderer) RenderDocument(doc *document.Document) (string, error) {
	tracer().Debugf("UEB renderDocument begin")

	rendered, err := render.Document(r, doc)
	if err != nil {
		return "", err
	}

	return r.wordwrap(rendered), nil
}

func (r *Renderer) beginInternalRender() {
	r.internalRenderCount++
	r.statusStack = append(r.statusStack, r.status)
}

func (r *Renderer) doingInternalRender() bool {
	return r.internalRenderCount > 0
}

func (r *Renderer) endInternalRender() {
	r.internalRenderCount--
	r.status = r.statusStack[len(r.statusStack)-1]
	r.statusStack = r.statusStack[:len(r.statusStack)-1]
}

// stripWrappingIndicators removes wrap markers from a rendered fragment.
func stripWrappingIndicators(input string) string {
	input = strings.ReplaceAll(input, wrapPri1, "")
	input = strings.ReplaceAll(input, wrapPri2, "")
	input = strings.ReplaceAll(input, wrapPri3, "")
	return input
}

// translateToBraille converts the raw characters of a math block into
// braille cells: punctuation first, then capital signs and numeric-mode
// bookkeeping.
func (r *Renderer) translateToBraille(s string) string {
	return translateBrailleLetterIndicators(translateBraillePunctuation(s))
}

func translateBraillePunctuation(s string) string {
	var out strings.Builder
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case ',':
			out.WriteString(uebComma)
		case '.':
			out.WriteString(uebPeriod)
		default:
			out.WriteByte(s[i])
		}
	}
	return out.String()
}

func translateBrailleLetterIndicators(s string) string {
	var out strings.Builder
	inNumericMode := false

	for i := 0; i < len(s); i++ {
		c := s[i]

		if c == '#' {
			inNumericMode = true
			out.WriteByte(c)
			continue
		}

		if inNumericMode {
			if !util.IsOneOf(c, uebNumericModeSymbols) {
				inNumericMode = false
			}
		} else if c >= 'A' && c <= 'Z' {
			out.WriteString(uebCapitalSign)
		}

		out.WriteByte(c)
	}

	return out.String()
}

// renderMathContent emits known-math material, inserting a grade 1
// indicator when numeric mode would otherwise swallow a letter a-j.
func (r *Renderer) renderMathContent(s string) string {
	var out strings.Builder

	if r.status.isNumericMode && s != "" && util.IsOneOf(s[0], "abcdefghij") {
		out.WriteString(uebG1)
		r.status.isNumericMode = false
	}

	if r.status.skipFollowingWhitespace {
		out.WriteString(strings.TrimLeft(s, " \t"))
		r.status.skipFollowingWhitespace = false
	} else {
		out.WriteString(s)
	}

	r.status.isStart = false
	return out.String()
}

// renderTextContent hands prose to the external braille translator.
func (r *Renderer) renderTextContent(s string) (string, error) {
	braille, err := louis.Translate(r.translator, s)
	if err != nil {
		return "", &render.Error{Msg: err.Error()}
	}

	if r.maxLineLength > 0 {
		// Break points after sentence punctuation and before opening
		// brackets are the most desirable, then after any space.
		braille = strings.ReplaceAll(braille, "4 ", "4 "+wrapPri1)
		braille = strings.ReplaceAll(braille, "6 ", "6 "+wrapPri1)
		braille = strings.ReplaceAll(braille, "8 ", "8 "+wrapPri1)
		braille = strings.ReplaceAll(braille, " ", " "+wrapPri2)
		braille = strings.ReplaceAll(braille, uebLeftParen, wrapPri1+uebLeftParen)
		braille = strings.ReplaceAll(braille, uebLeftBracket, wrapPri1+uebLeftBracket)
		braille = strings.ReplaceAll(braille, uebLeftBrace, wrapPri1+uebLeftBrace)
	}

	// The translator emits unnecessary letter indicators on single
	// letters; take those back out.
	for ch := byte('a'); ch <= 'z'; ch++ {
		braille = strings.ReplaceAll(braille, ";"+string(ch)+" ", string(ch)+" ")
		upper := string(ch - 'a' + 'A')
		braille = strings.ReplaceAll(braille, ";"+upper+" ", upper+" ")
	}

	r.status.isNumericMode = false
	r.status.isStart = false

	return braille, nil
}

// RenderSourceLine produces no braille; the breadcrumb is only traced.
func (r *Renderer) RenderSourceLine(e *document.SourceLine) (string, error) {
	tracer().Debugf("%%%% %s", e)
	return "", nil
}

// RenderCommand handles rendering directives; commands emit nothing.
func (r *Renderer) RenderCommand(e *document.Command) (string, error) {
	if strings.EqualFold(e.Name, "SpaceUEBOperators") {
		r.status.isUsingSpacedOperators = strings.HasPrefix(e.Parameters, "true")
		tracer().Debugf("extra operator spacing: %v", r.status.isUsingSpacedOperators)
	}
	return "", nil
}

func (r *Renderer) RenderMathModeMarker(e *document.MathModeMarker) (string, error) {
	if e.Kind != document.BlockMarker {
		return "", nil
	}
	// A math block can only commence at the start of a line; indenting
	// and word wrapping differ between block types.
	r.status.isInTextBlock = false
	return mathBlockBegin, nil
}

func (r *Renderer) RenderTextModeMarker(e *document.TextModeMarker) (string, error) {
	if e.Kind != document.BlockMarker {
		return "", nil
	}
	r.status.isInTextBlock = true
	return textBlockBegin, nil
}

func (r *Renderer) RenderLineBreak(e *document.LineBreak) (string, error) {
	r.status.isNumericMode = false
	r.status.isStart = true
	return "\n", nil
}

func (r *Renderer) RenderTextBlock(e *document.TextBlock) (string, error) {
	var out strings.Builder
	if !r.status.isStart {
		out.WriteString(" ")
	}

	braille, err := r.renderTextContent(e.Text)
	if err != nil {
		return "", err
	}
	out.WriteString(braille)
	r.status.isStart = false

	return out.String(), nil
}

func (r *Renderer) RenderMathBlock(e *document.MathBlock) (string, error) {
	return r.renderMathContent(r.translateToBraille(e.Text)), nil
}

// RenderItemNumber translates the question number as prose; a leading
// letter indicator makes no sense at the start of a line and is dropped.
func (r *Renderer) RenderItemNumber(e *document.ItemNumber) (string, error) {
	out, err := r.renderTextContent(e.Text + " ")
	if err != nil {
		return "", err
	}

	out = strings.TrimPrefix(out, uebG1)
	return out, nil
}

func (r *Renderer) RenderGroup(e *document.Group) (string, error) {
	var openChar, closeChar string
	switch e.Kind {
	case document.Parentheses:
		openChar, closeChar = uebLeftParen, uebRightParen
	case document.Brackets:
		openChar, closeChar = uebLeftBracket, uebRightBracket
	case document.Braces:
		openChar, closeChar = uebLeftBrace, uebRightBrace
	}

	r.beginInternalRender()
	r.status.isNumericMode = false
	renderedContents, err := render.Vector(r, e.Contents)
	r.endInternalRender()
	if err != nil {
		return "", err
	}

	var out strings.Builder
	if r.maxLineLength > 0 {
		out.WriteString(wrapPri2)
	}
	out.WriteString(openChar)
	out.WriteString(strings.TrimSpace(renderedContents))
	out.WriteString(closeChar)

	r.status.isNumericMode = false
	r.status.isStart = false

	return out.String(), nil
}

func (r *Renderer) RenderNumber(e *document.Number) (string, error) {
	var brailleNumber strings.Builder
	if r.maxLineLength > 0 {
		brailleNumber.WriteString(wrapPri3)
	}

	printNumber := e.StandardNotation()
	pos := 0
	if printNumber != "" && printNumber[0] == '-' {
		brailleNumber.WriteString("-")
		pos++
	}

	brailleNumber.WriteString(uebNumberSign)

	// Digits 1-9(0) become letters A-J.
	for ; pos < len(printNumber); pos++ {
		c := printNumber[pos]
		switch {
		case c == '0':
			brailleNumber.WriteString("J")
		case util.IsDigit(c):
			brailleNumber.WriteByte('A' + c - '1')
		case c == '.':
			brailleNumber.WriteString(uebPeriod)
		case c == ',':
			brailleNumber.WriteString(uebComma)
		case c == ' ':
			brailleNumber.WriteString(uebNumericSpace)
		}
	}

	out := r.renderMathContent(brailleNumber.String())
	r.status.isNumericMode = true
	return out, nil
}

func (r *Renderer) RenderOperator(e *document.Operator) (string, error) {
	var sign string
	switch e.Op {
	case document.Addition:
		sign = uebPlusSign
	case document.Subtraction:
		sign = uebMinusSign
	case document.Division:
		sign = uebDivSign
	case document.Multiplication:
		sign = uebTimesSign
	default:
		return "", &render.Error{Msg: fmt.Sprintf("unknown operator %v", e.Op)}
	}

	var out strings.Builder
	if r.status.isUsingSpacedOperators {
		out.WriteString(" ")
	}
	if r.maxLineLength > 0 {
		out.WriteString(wrapPri2)
	}
	out.WriteString(sign)
	if r.status.isUsingSpacedOperators {
		out.WriteString(" ")
	}

	r.status.isNumericMode = false
	r.status.skipFollowingWhitespace = true
	r.status.isStart = false

	return out.String(), nil
}

func (r *Renderer) RenderComparator(e *document.Comparator) (string, error) {
	var sign string
	switch e.Comp {
	case document.LessThan:
		sign = uebLessThan
	case document.GreaterThan:
		sign = uebGreaterThan
	case document.Equals:
		sign = uebEqualSign
	case document.ApproxEquals:
		sign = uebApproxEqual
	case document.NotEquals:
		sign = uebUnequalSign
	case document.GreaterThanEquals:
		sign = uebGreaterThanEq
	case document.LessThanEquals:
		sign = uebLessThanEq
	default:
		return "", &render.Error{Msg: fmt.Sprintf("unknown comparator %v", e.Comp)}
	}

	var out string
	if r.maxLineLength > 0 {
		out = " " + wrapPri1 + sign + " "
	} else {
		out = " " + sign + " "
	}

	r.status.isNumericMode = false
	r.status.isStart = false

	return out, nil
}

var uebGreek = map[document.GreekKind]string{
	document.SmallAlpha: "A", document.SmallBeta: "B",
	document.SmallGamma: "G", document.SmallDelta: "D",
	document.SmallEpsilon: "E", document.SmallZeta: "Z",
	document.SmallEta: ":", document.SmallTheta: "?",
	document.SmallIota: "I", document.SmallKappa: "K",
	document.SmallLambda: "L", document.SmallMu: "M",
	document.SmallNu: "N", document.SmallXi: "X",
	document.SmallOmicron: "O", document.SmallPi: "P",
	document.SmallRho: "R", document.SmallSigma: "S",
	document.SmallTau: "T", document.SmallUpsilon: "U",
	document.SmallPhi: "F", document.SmallChi: "&",
	document.SmallPsi: "Y", document.SmallOmega: "W",
}

// greekCell returns the braille cell sequence for a Greek letter: Greek
// sign plus base letter, with a capital sign in front for uppercase.
func greekCell(letter document.GreekKind) (string, bool) {
	if base, ok := uebGreek[letter]; ok {
		return uebGreekSign + base, true
	}
	// The uppercase constants directly follow their lowercase partner.
	if base, ok := uebGreek[letter-1]; ok {
		return uebCapitalSign + uebGreekSign + base, true
	}
	return "", false
}

func (r *Renderer) RenderGreekLetter(e *document.GreekLetter) (string, error) {
	cell, ok := greekCell(e.Letter)
	if !ok {
		return "", &render.Error{Msg: fmt.Sprintf("unknown greek letter %v", e.Letter)}
	}

	var out string
	if r.maxLineLength > 0 {
		out = wrapPri3
	}
	return out + r.renderMathContent(cell), nil
}

var uebSymbols = map[document.SymbolKind]string{
	document.SymComma:          uebComma,
	document.SymCurrencyCents:  uebCurrencyCents,
	document.SymCurrencyEuro:   uebCurrencyEuro,
	document.SymCurrencyFranc:  uebCurrencyFranc,
	document.SymCurrencyPound:  uebCurrencyPound,
	document.SymCurrencyDollar: uebCurrencyDollar,
	document.SymCurrencyYen:    uebCurrencyYen,
	document.SymFactorial:      uebFactorial,
	document.SymLeftBrace:      uebLeftBrace,
	document.SymLeftBracket:    uebLeftBracket,
	document.SymLeftParen:      uebLeftParen,
	document.SymPercent:        uebPercent,
	document.SymPeriod:         uebPeriod,
	document.SymRightBrace:     uebRightBrace,
	document.SymRightBracket:   uebRightBracket,
	document.SymRightParen:     uebRightParen,
	document.SymTherefore:      uebTherefore,
}

func (r *Renderer) RenderSymbol(e *document.Symbol) (string, error) {
	cell, ok := uebSymbols[e.Sym]
	if !ok {
		return "", &render.Error{Msg: fmt.Sprintf("unknown symbol %v", e.Sym)}
	}

	out := r.renderMathContent(cell)
	r.status.isNumericMode = false
	return out, nil
}

func (r *Renderer) RenderModifier(e *document.Modifier) (string, error) {
	r.beginInternalRender()
	r.status.isNumericMode = false
	renderedArgument, err := render.Vector(r, e.Argument)
	r.endInternalRender()
	if err != nil {
		return "", err
	}

	var out strings.Builder
	if r.maxLineLength > 0 {
		out.WriteString(wrapPri3)
	}

	// Grouping indicators only when the modified symbol is more than an
	// 'item'.
	if !IsBrailleItem(e.Argument) {
		out.WriteString(uebGroupBegin + renderedArgument + uebGroupEnd)
	} else {
		out.WriteString(renderedArgument)
	}

	switch e.Mod {
	case document.OverArrowRight:
		out.WriteString(uebOverArrowRight)
	case document.OverBar:
		out.WriteString(uebOverBar)
	case document.OverHat:
		out.WriteString(uebOverHat)
	}

	return r.renderMathContent(out.String()), nil
}

func (r *Renderer) RenderRoot(e *document.Root) (string, error) {
	var out strings.Builder
	if r.maxLineLength > 0 {
		out.WriteString(wrapPri3)
	}

	if len(e.Index) == 0 { // simple square root
		r.beginInternalRender()
		r.status.isNumericMode = false
		renderedArgument, err := render.Vector(r, e.Argument)
		r.endInternalRender()
		if err != nil {
			return "", err
		}

		out.WriteString(r.renderMathContent(uebRootBegin + renderedArgument + uebRootEnd))
		return out.String(), nil
	}

	// The index becomes an exponent at the start of the root argument:
	// _/3(8) is [open root] [level up] #c #h [close root].
	indexExponent := &document.Exponent{Contents: e.Index}

	r.beginInternalRender()
	r.status.isNumericMode = false
	renderedIndex, err := render.Element(r, indexExponent)
	if err != nil {
		r.endInternalRender()
		return "", err
	}
	r.status.isNumericMode = false
	renderedArgument, err := render.Vector(r, e.Argument)
	r.endInternalRender()
	if err != nil {
		return "", err
	}

	out.WriteString(r.renderMathContent(uebRootBegin + renderedIndex + renderedArgument + uebRootEnd))
	return out.String(), nil
}

// renderSummationBound renders one bound, restoring numeric mode for item
// bounds so a following letter can still pick up its indicator.
func (r *Renderer) renderSummationBound(bound document.Vector, levelSign string) (string, error) {
	r.beginInternalRender()
	r.status.isNumericMode = false
	renderedBound, err := render.Vector(r, bound)
	savedNumericMode := r.status.isNumericMode
	r.endInternalRender()
	if err != nil {
		return "", err
	}

	if IsBrailleItem(bound) {
		out := r.renderMathContent(levelSign + renderedBound)
		r.status.isNumericMode = savedNumericMode
		return out, nil
	}
	return r.renderMathContent(levelSign + uebGroupBegin + renderedBound + uebGroupEnd), nil
}

func (r *Renderer) RenderSummation(e *document.Summation) (string, error) {
	var out strings.Builder
	if r.maxLineLength > 0 {
		out.WriteString(wrapPri3)
	}

	out.WriteString(uebCapitalSign + uebGreekSign + uebGreek[document.SmallSigma])

	if len(e.Lower) > 0 {
		bound, err := r.renderSummationBound(e.Lower, uebDirectlyBelow)
		if err != nil {
			return "", err
		}
		out.WriteString(bound)
	}

	if len(e.Upper) > 0 {
		bound, err := r.renderSummationBound(e.Upper, uebDirectlyAbove)
		if err != nil {
			return "", err
		}
		out.WriteString(bound)
	}

	r.status.isStart = false
	return out.String(), nil
}

func (r *Renderer) RenderFraction(e *document.Fraction) (string, error) {
	simpleFraction := IsSimpleFraction(e)

	r.beginInternalRender()
	r.status.isNumericMode = false
	renderedNumerator, err := render.Vector(r, e.Numerator)
	if err != nil {
		r.endInternalRender()
		return "", err
	}
	r.status.isNumericMode = false
	renderedDenominator, err := render.Vector(r, e.Denominator)
	r.endInternalRender()
	if err != nil {
		return "", err
	}

	var out strings.Builder
	if r.maxLineLength > 0 {
		out.WriteString(wrapPri2)
	}

	if simpleFraction {
		// No word wrapping inside simple fractions.
		if r.maxLineLength > 0 {
			renderedNumerator = stripWrappingIndicators(renderedNumerator)
			renderedDenominator = stripWrappingIndicators(renderedDenominator)
		}

		// The dividing slash does not cancel numeric mode; drop the
		// extra number sign that would lead the denominator.
		renderedDenominator = renderedDenominator[1:]

		out.WriteString(r.renderMathContent(renderedNumerator + uebSimpleFracDivider + renderedDenominator))
	} else if r.maxLineLength > 0 {
		out.WriteString(r.renderMathContent(uebFracBegin + renderedNumerator + uebFracDivider + wrapPri3 + renderedDenominator + uebFracEnd))
	} else {
		out.WriteString(r.renderMathContent(uebFracBegin + renderedNumerator + uebFracDivider + renderedDenominator + uebFracEnd))
	}

	return out.String(), nil
}

func (r *Renderer) RenderExponent(e *document.Exponent) (string, error) {
	r.beginInternalRender()
	r.status.isNumericMode = false
	renderedExponent, err := render.Vector(r, e.Contents)
	endedInNumericMode := r.status.isNumericMode
	r.endInternalRender()
	if err != nil {
		return "", err
	}

	// Grouping indicators only when the exponent contents is more than
	// an 'item'.
	if IsBrailleItem(e.Contents) {
		out := r.renderMathContent(uebLevelUp + renderedExponent)
		r.status.isNumericMode = endedInNumericMode
		return out, nil
	}

	var out string
	if r.maxLineLength > 0 {
		out = r.renderMathContent(uebLevelUp + wrapPri3 + uebGroupBegin + renderedExponent + uebGroupEnd)
	} else {
		out = r.renderMathContent(uebLevelUp + uebGroupBegin + renderedExponent + uebGroupEnd)
	}
	r.status.isNumericMode = false
	return out, nil
}

func (r *Renderer) RenderSubscript(e *document.Subscript) (string, error) {
	r.beginInternalRender()
	r.status.isNumericMode = false
	renderedSubscript, err := render.Vector(r, e.Contents)
	endedInNumericMode := r.status.isNumericMode
	r.endInternalRender()
	if err != nil {
		return "", err
	}

	if IsBrailleItem(e.Contents) {
		out := r.renderMathContent(uebLevelDown + renderedSubscript)
		r.status.isNumericMode = endedInNumericMode
		return out, nil
	}

	var out string
	if r.maxLineLength > 0 {
		out = r.renderMathContent(uebLevelDown + wrapPri3 + uebGroupBegin + renderedSubscript + uebGroupEnd)
	} else {
		out = r.renderMathContent(uebLevelDown + uebGroupBegin + renderedSubscript + uebGroupEnd)
	}
	r.status.isNumericMode = false
	return out, nil
}
