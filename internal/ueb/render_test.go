package ueb

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mathtext/internal/document"
	"mathtext/internal/interp"
	"mathtext/internal/louis"
	"mathtext/internal/render"
	"mathtext/internal/source"
)

func newTestRenderer() *Renderer {
	return New(&louis.BuiltinTranslator{})
}

func num(whole, decimals string) *document.Number {
	return &document.Number{Whole: whole, Decimals: decimals}
}

func negnum(whole string) *document.Number {
	return &document.Number{Negative: true, Whole: whole}
}

func mb(text string) *document.MathBlock {
	return &document.MathBlock{Text: text}
}

func renderVec(t *testing.T, r *Renderer, v document.Vector) string {
	t.Helper()
	out, err := render.Vector(r, v)
	require.NoError(t, err)
	return out
}

func renderOne(t *testing.T, r *Renderer, e document.Element) string {
	t.Helper()
	out, err := render.Element(r, e)
	require.NoError(t, err)
	return out
}

// executeUEB interprets input and renders it as braille, wrap disabled.
func executeUEB(t *testing.T, input string) string {
	t.Helper()

	var src source.File
	require.NoError(t, src.LoadBuffer(input, ""))

	var doc document.Document
	interpreter := interp.New(&src, &doc)
	interpreter.RegisterCommands(CommandList())
	require.NoError(t, interpreter.Interpret())
	require.False(t, interpreter.HaveMessages(), "unexpected diagnostics for %q", input)

	out, err := newTestRenderer().RenderDocument(&doc)
	require.NoError(t, err)
	return out
}

// End-to-end expressions, many drawn from the UEB manual and technical
// guidelines.
func TestUEBExamples(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		// Technical Guidelines, Section 7.3 (Algebra)
		{"x^2", "x9#B"},
		{"x^2;y", "x9#By"},
		{"x^(2y)", "x9<#By>"},
		{"x^y;+1", `x9y"6#A`},
		{"x^(y+1)", `x9<y"6#A>`},
		{"x^(y+1)+3", `x9<y"6#A>"6#C`},
		{"x^@2~3#", "x9#B/C"},
		{"@x^2~3#", "(x9#B./#C)"},
		{"x^(@1~2#y)", "x9<#A/By>"},
		{"x^@1~2#y", "x9#A/By"},
		{"x^@a~b#y=x", `x9(a./b)y "7 x`},
		// Section 7.4 (Multiple levels)
		{"e^(x^2)", "e9<x9#B>"},
		{"P_(x_i)", ",P5<x5i>"},
		// Section 7.5 (Negative superscripts)
		{"0.0045 = 4.5*10^-3", `#J4JJDE "7 #D4E"8#AJ9<"-#C>`},
		{"v = 60ms^-1", `v "7 #FJms9<"-#A>`},
		{"a^(-2b)", `a9<"-#B;b>`},
		// Roots
		{"_/4", "%#D+"},
		// Fractions
		{"@1~2#", "#A/B"},
		// Contrived
		{"x^2 + 2x^@1~2# = z_2", `x9#B"6#Bx9#A/B "7 z5#B`},
	}

	for _, test := range tests {
		assert.Equal(t, test.expected+"\n", executeUEB(t, test.input), "input: %s", test.input)
	}
}

func TestUEBMultilineExample(t *testing.T) {
	input := "&If $@x^2+2x~1+x^2# = 1\n" +
		"x^2 + 2x = 1 + x^2\n" +
		"x = @1~2#"
	expected := `,if (x9#B"6#Bx./#A"6x9#B) "7 #A` + "\n" +
		`x9#B"6#Bx "7 #A"6x9#B` + "\n" +
		`x "7 #A/B` + "\n"

	assert.Equal(t, expected, executeUEB(t, input))
}

// Technical Guideline 6.1: simple fractions render as num/den with the
// denominator's number sign dropped.
func TestUEBFractions(t *testing.T) {
	r := newTestRenderer()

	tf := func(n, d document.Element, expected string) {
		t.Helper()
		frac := &document.Fraction{
			Numerator:   document.Vector{n},
			Denominator: document.Vector{d},
		}
		assert.Equal(t, expected, renderOne(t, r, frac))
	}

	// Simple numeric fractions (Technical Guideline 6.5 examples).
	tf(num("3", ""), num("4", ""), "#C/D")
	tf(num("73", ""), num("4", ""), "#GC/D")
	tf(num("3", ""), num("4", "2"), "#C/D4B")
	tf(num("5", "3"), num("4200", ""), "#E4C/DBJJ")
	tf(num("5", "3"), num("4,200", ""), "#E4C/D1BJJ")
	tf(num("5", "3"), num("4 200", ""), `#E4C/D"BJJ`)

	// Fractions requiring general fraction indicators (Guideline 6.4).
	tf(mb("x"), mb("y"), "(x./y)")
	tf(mb("x"), num("4", ""), "(x./#D)")
	tf(num("3", ""), mb("b"), "(#C./b)")

	// Exponent in the numerator term: @3^2~6#
	frac := &document.Fraction{
		Numerator: document.Vector{
			num("3", ""),
			&document.Exponent{Contents: document.Vector{num("2", "")}},
		},
		Denominator: document.Vector{num("6", "")},
	}
	assert.Equal(t, "(#C9#B./#F)", renderOne(t, r, frac))
}

func TestUEBExponents(t *testing.T) {
	r := newTestRenderer()

	// x^2;y and x^2;b: no grouping, letter indicator only for a-j.
	simple := document.Vector{
		mb("x"),
		&document.Exponent{Contents: document.Vector{num("2", "")}},
	}
	assert.Equal(t, "x9#By", renderVec(t, r, append(simple, mb("y"))))
	assert.Equal(t, "x9#B;b", renderVec(t, r, append(simple, mb("b"))))

	// x^(-1)y and x^(-1)b: grouping kills the need for an indicator.
	grouped := document.Vector{
		mb("x"),
		&document.Exponent{Contents: document.Vector{negnum("1")}},
	}
	assert.Equal(t, "x9<-#A>y", renderVec(t, r, append(grouped, mb("y"))))
	assert.Equal(t, "x9<-#A>b", renderVec(t, r, append(grouped, mb("b"))))
}

func TestUEBRoots(t *testing.T) {
	r := newTestRenderer()

	// Technical Guideline 8.1: _/4
	root := &document.Root{Argument: document.Vector{num("4", "")}}
	assert.Equal(t, "%#D+", renderOne(t, r, root))

	// Guideline 8.2: the index renders as an exponent inside the root.
	root = &document.Root{
		Index:    document.Vector{num("3", "")},
		Argument: document.Vector{num("27", "")},
	}
	assert.Equal(t, "%9#C#BG+", renderOne(t, r, root))

	// Complex indexes need grouping indicators: _/[mn](xy)
	root = &document.Root{
		Index:    document.Vector{mb("mn")},
		Argument: document.Vector{mb("xy")},
	}
	assert.Equal(t, "%9<mn>xy+", renderOne(t, r, root))
}

func TestUEBSummations(t *testing.T) {
	r := newTestRenderer()

	sum := func(lower, upper document.Vector) *document.Summation {
		return &document.Summation{Lower: lower, Upper: upper}
	}

	// Technical Guideline 7.9.
	assert.Equal(t, ",.S", renderOne(t, r, sum(nil, nil)))
	assert.Equal(t, ",.S.5#D", renderOne(t, r, sum(document.Vector{num("4", "")}, nil)))
	assert.Equal(t, ",.S.5n", renderOne(t, r, sum(document.Vector{mb("n")}, nil)))
	assert.Equal(t, ",.S.9#D", renderOne(t, r, sum(nil, document.Vector{num("4", "")})))
	assert.Equal(t, ",.S.9n", renderOne(t, r, sum(nil, document.Vector{mb("n")})))

	// Complex bounds are grouped.
	complexBound := document.Vector{num("4", ""), mb("a")}
	assert.Equal(t, ",.S.5<#D;a>", renderOne(t, r, sum(complexBound, nil)))
	assert.Equal(t, ",.S.9<#D;a>", renderOne(t, r, sum(nil, complexBound)))

	// Item bounds keep numeric mode alive for a following letter.
	vec := document.Vector{sum(document.Vector{num("4", "")}, nil), mb("a")}
	assert.Equal(t, ",.S.5#D;a", renderVec(t, r, vec))
	vec = document.Vector{sum(nil, document.Vector{num("4", "")}), mb("a")}
	assert.Equal(t, ",.S.9#D;a", renderVec(t, r, vec))

	// No stray indicator when an upper bound follows a numeric lower.
	assert.Equal(t, ",.S.5#D.9a",
		renderOne(t, r, sum(document.Vector{num("4", "")}, document.Vector{mb("a")})))

	assert.Equal(t, ",.S.5<#D;a>.9<-#Dx>",
		renderOne(t, r, sum(
			document.Vector{num("4", ""), mb("a")},
			document.Vector{negnum("4"), mb("x")})))
}

func TestUEBOperators(t *testing.T) {
	r := newTestRenderer()

	checks := map[document.OperatorKind]string{
		document.Addition:       `"6`,
		document.Subtraction:    `"-`,
		document.Multiplication: `"8`,
		document.Division:       `"/`,
	}
	for op, expected := range checks {
		assert.Equal(t, expected, renderOne(t, r, &document.Operator{Op: op}))
	}

	// SpaceUEBOperators adds spacing on both sides.
	_, err := r.RenderCommand(&document.Command{Name: "SpaceUEBOperators", Parameters: "true"})
	require.NoError(t, err)
	for op, expected := range checks {
		assert.Equal(t, " "+expected+" ", renderOne(t, r, &document.Operator{Op: op}))
	}
}

func TestUEBComparators(t *testing.T) {
	r := newTestRenderer()

	checks := map[document.ComparatorKind]string{
		document.LessThan:          " @< ",
		document.GreaterThan:       " @> ",
		document.Equals:            ` "7 `,
		document.ApproxEquals:      " _9 ",
		document.NotEquals:         ` "7@: `,
		document.GreaterThanEquals: " _@> ",
		document.LessThanEquals:    " _@< ",
	}
	for comp, expected := range checks {
		assert.Equal(t, expected, renderOne(t, r, &document.Comparator{Comp: comp}))
	}
}

func TestUEBGreekLetters(t *testing.T) {
	r := newTestRenderer()

	checks := []struct {
		letter   document.GreekKind
		expected string
	}{
		{document.SmallAlpha, ".A"},
		{document.CapitalAlpha, ",.A"},
		{document.SmallEta, ".:"},
		{document.CapitalEta, ",.:"},
		{document.SmallTheta, ".?"},
		{document.CapitalTheta, ",.?"},
		{document.SmallChi, ".&"},
		{document.CapitalChi, ",.&"},
		{document.SmallPsi, ".Y"},
		{document.SmallSigma, ".S"},
		{document.CapitalSigma, ",.S"},
		{document.SmallOmega, ".W"},
		{document.CapitalOmega, ",.W"},
	}
	for _, check := range checks {
		assert.Equal(t, check.expected,
			renderOne(t, r, &document.GreekLetter{Letter: check.letter}))
	}
}

func TestUEBSymbols(t *testing.T) {
	r := newTestRenderer()

	checks := map[document.SymbolKind]string{
		document.SymComma:        "1",
		document.SymFactorial:    "6",
		document.SymLeftBrace:    "_<",
		document.SymLeftBracket:  ".<",
		document.SymLeftParen:    `"<`,
		document.SymRightBrace:   "_>",
		document.SymRightBracket: ".>",
		document.SymRightParen:   `">`,
		document.SymPercent:      ".0",
		document.SymTherefore:    ",*",
		document.SymCurrencyCents:  "@C",
		document.SymCurrencyDollar: "@S",
		document.SymCurrencyPound:  "@L",
	}
	for sym, expected := range checks {
		assert.Equal(t, expected, renderOne(t, r, &document.Symbol{Sym: sym}))
	}
}

func TestUEBItemNumbers(t *testing.T) {
	r := newTestRenderer()

	checks := []struct {
		text     string
		expected string
	}{
		{"1.", "#a4 "},
		{"1)", `#a"> `},
		{"(1)", `"<#a"> `},
		{"a.", "a4 "},
		{"c)", `c"> `},
		{"(b)", `"<b"> `},
	}
	for _, check := range checks {
		assert.Equal(t, check.expected,
			renderOne(t, r, &document.ItemNumber{Text: check.text}), "item %s", check.text)
	}
}

func TestUEBModifiers(t *testing.T) {
	r := newTestRenderer()

	positive := document.Vector{num("2", "")}
	negative := document.Vector{negnum("2")}

	checks := []struct {
		mod       document.ModifierKind
		ungrouped string
		grouped   string
	}{
		{document.OverBar, "#B:", "<-#B>:"},
		{document.OverArrowRight, "#B^:", "<-#B>^:"},
		{document.OverHat, `#B":`, `<-#B>":`},
	}

	for _, check := range checks {
		assert.Equal(t, check.ungrouped,
			renderOne(t, r, &document.Modifier{Mod: check.mod, Argument: positive}))
		assert.Equal(t, check.grouped,
			renderOne(t, r, &document.Modifier{Mod: check.mod, Argument: negative}))
	}
}

// Item detection per Technical Guidelines ss. 7.1 and 12.1.
func TestUEBItemDetection(t *testing.T) {
	items := []document.Vector{
		{num("2", "")},
		{num("24", "")},
		{num("3", "14")},
		{num("2 048", "")},
		{num("1,048", "")},
		{&document.Fraction{
			Numerator:   document.Vector{num("1", "")},
			Denominator: document.Vector{num("2", "")},
		}},
		{&document.Fraction{
			Numerator:   document.Vector{mb("x")},
			Denominator: document.Vector{mb("y")},
		}},
		{&document.Root{Argument: document.Vector{num("4", "")}}},
		{&document.Operator{Op: document.Addition}},
		{mb("x")},
	}
	for _, v := range items {
		assert.True(t, IsBrailleItem(v), "expected item: %s", v)
	}

	nonItems := []document.Vector{
		{},
		{num("2", ""), mb("x")},
		{negnum("1")},
		{mb("xy")},
		{&document.GreekLetter{Letter: document.SmallAlpha}},
	}
	for _, v := range nonItems {
		assert.False(t, IsBrailleItem(v), "expected non-item: %s", v)
	}
}

func TestUEBNumbers(t *testing.T) {
	r := newTestRenderer()

	checks := []struct {
		n        *document.Number
		expected string
	}{
		{num("0", "0045"), "#J4JJDE"},
		{num("1,024", ""), "#A1JBD"},
		{num("4 122", ""), `#D"ABB`},
		{negnum("3"), "-#C"},
	}
	for _, check := range checks {
		assert.Equal(t, check.expected, renderOne(t, r, check.n))
	}
}

func TestUEBStartOfLineTracking(t *testing.T) {
	r := newTestRenderer()
	assert.True(t, r.status.isStart)

	out := renderOne(t, r, mb("x"))
	assert.Equal(t, "x", out)
	assert.False(t, r.status.isStart)

	out = renderOne(t, r, &document.LineBreak{})
	assert.Equal(t, "\n", out)
	assert.True(t, r.status.isStart)
}

func TestUEBTextBlocksSeparatedBySpace(t *testing.T) {
	r := newTestRenderer()

	out := renderVec(t, r, document.Vector{
		&document.TextBlock{Text: "see"},
		&document.TextBlock{Text: "below"},
	})
	assert.Equal(t, "see below", out)
}
