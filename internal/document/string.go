package document

import "fmt"

// The String forms below are debug renderings used in traces and in
// interpreter tests; they are not part of any output format.

func (e *SourceLine) String() string {
	if e.Line1 == e.Line2 {
		return fmt.Sprintf("[%s:%d] %s", e.Filename, e.Line1, e.Text)
	}
	return fmt.Sprintf("[%s:%d-%d] %s", e.Filename, e.Line1, e.Line2, e.Text)
}

func (e *Command) String() string {
	return fmt.Sprintf("<COMMAND:%s (%s)>", e.Name, e.Parameters)
}

func (e *MathModeMarker) String() string {
	if e.Kind == BlockMarker {
		return "<M$>"
	}
	return "<m$>"
}

func (e *TextModeMarker) String() string {
	if e.Kind == BlockMarker {
		return "<T&>"
	}
	return "<t&>"
}

func (e *LineBreak) String() string { return "<br>\n" }

func (e *TextBlock) String() string { return fmt.Sprintf("<T>%s</T>", e.Text) }
func (e *MathBlock) String() string { return fmt.Sprintf("<M>%s</M>", e.Text) }

func (e *ItemNumber) String() string { return fmt.Sprintf("<#ITEM#>%s</#ITEM#>", e.Text) }

func (e *Number) String() string { return fmt.Sprintf("<#>%s</#>", e.StandardNotation()) }

func (e *Group) String() string {
	open, close := "(", ")"
	switch e.Kind {
	case Brackets:
		open, close = "[", "]"
	case Braces:
		open, close = "{", "}"
	}
	return fmt.Sprintf("<GROUP>%s%s%s</GROUP>", open, e.Contents.String(), close)
}

func (e *Operator) String() string {
	switch e.Op {
	case Addition:
		return "<plus>"
	case Subtraction:
		return "<minus>"
	case Multiplication:
		return "<times>"
	case Division:
		return "<divide>"
	}
	return "<op?>"
}

func (e *Comparator) String() string {
	switch e.Comp {
	case LessThan:
		return "<lt>"
	case GreaterThan:
		return "<gt>"
	case Equals:
		return "<eq>"
	case ApproxEquals:
		return "<approx>"
	case NotEquals:
		return "<neq>"
	case LessThanEquals:
		return "<lte>"
	case GreaterThanEquals:
		return "<gte>"
	}
	return "<cmp?>"
}

func (e *GreekLetter) String() string { return fmt.Sprintf("<greek:%s>", e.Name()) }

func (e *Symbol) String() string {
	names := map[SymbolKind]string{
		SymComma:          ",",
		SymCurrencyCents:  "cents",
		SymCurrencyEuro:   "euro",
		SymCurrencyFranc:  "franc",
		SymCurrencyPound:  "pound",
		SymCurrencyDollar: "dollar",
		SymCurrencyYen:    "yen",
		SymFactorial:      "!",
		SymLeftBrace:      "{",
		SymLeftBracket:    "[",
		SymLeftParen:      "(",
		SymPercent:        "%",
		SymPeriod:         ".",
		SymRightBrace:     "}",
		SymRightBracket:   "]",
		SymRightParen:     ")",
		SymTherefore:      "therefore",
	}
	return fmt.Sprintf("<sym:%s>", names[e.Sym])
}

func (e *Modifier) String() string {
	return fmt.Sprintf("<MOD:%s>%s</MOD>", ModifierName(e.Mod), e.Argument.String())
}

func (e *Root) String() string {
	return fmt.Sprintf("<ROOT idx=%s>%s</ROOT>", e.Index.String(), e.Argument.String())
}

func (e *Summation) String() string {
	return fmt.Sprintf("<SUM low=%s up=%s>", e.Lower.String(), e.Upper.String())
}

func (e *Fraction) String() string {
	return fmt.Sprintf("<FRAC>%s over %s</FRAC>", e.Numerator.String(), e.Denominator.String())
}

func (e *Exponent) String() string  { return fmt.Sprintf("<EXP>%s</EXP>", e.Contents.String()) }
func (e *Subscript) String() string { return fmt.Sprintf("<SUB>%s</SUB>", e.Contents.String()) }
