package interp

import (
	"strings"

	"mathtext/internal/document"
)

// Longer symbols match before shorter ones.
var symbolTable = []struct {
	search string
	sym    document.SymbolKind
}{
	{"%%", document.SymPercent},
	{`/\`, document.SymTherefore},
	{",", document.SymComma},
	{"`C", document.SymCurrencyCents},
	{"`E", document.SymCurrencyEuro},
	{"`F", document.SymCurrencyFranc},
	{"`P", document.SymCurrencyPound},
	{"`$", document.SymCurrencyDollar},
	{"`Y", document.SymCurrencyYen},
	{"{", document.SymLeftBrace},
	{"[", document.SymLeftBracket},
	{"(", document.SymLeftParen},
	{"!", document.SymFactorial},
	{".", document.SymPeriod},
	{"}", document.SymRightBrace},
	{"]", document.SymRightBracket},
	{")", document.SymRightParen},
}

// interpretSymbol recognizes standalone symbols: percent, therefore,
// punctuation, stray group delimiters, and currency escapes.
func (in *Interpreter) interpretSymbol(src string, i *int) (document.Vector, bool, error) {
	for _, entry := range symbolTable {
		if !strings.HasPrefix(src[*i:], entry.search) {
			continue
		}

		tracer().Debugf("added symbol (%s)", entry.search)
		*i += len(entry.search)
		return document.Vector{&document.Symbol{Sym: entry.sym}}, true, nil
	}

	return nil, false, nil
}
