package interp

import "fmt"

// Category classifies a diagnostic by severity.
type Category int

const (
	Info Category = iota
	Notice
	Warning
	Error
)

// Code identifies the condition a diagnostic reports.
type Code int

const (
	NestedTextMode Code = iota
	NestedMathMode
	SuspectMathInText
	SuspectTextInMath
	SuspectFraction
	UnknownGreek
	UnknownCommand
	FractionNotTerminated
	ExponentNotTerminated
	SubscriptNotTerminated
	RootIndexNotTerminated
	RootNotTerminated
	SummationNotTerminated
	ModifierMissingArgument
	ModifierNotTerminated
	GroupNotTerminated
	NestingTooDeep
)

var codeText = map[Code]string{
	NestedTextMode:          "Text mode indicator (&&) found while already in text mode",
	NestedMathMode:          "Math mode indicator ($$) found while already in math mode",
	SuspectMathInText:       "Suspected math symbols in a text passage",
	SuspectTextInMath:       "Suspected text material in a math passage",
	SuspectFraction:         "Suspect missing open fraction symbol (@)",
	UnknownGreek:            "Unknown Greek character symbol",
	UnknownCommand:          "Unknown command",
	FractionNotTerminated:   "Fraction terminator symbol (#) appears to be missing",
	ExponentNotTerminated:   "Exponent begins with opening paren '(' but is never terminated with a closing paren ')'",
	SubscriptNotTerminated:  "Subscript begins with opening paren '(' but is never terminated with a closing paren ')'",
	RootIndexNotTerminated:  "Root includes a complex index with opening bracket '[' but is never terminated with a closing bracket ']'",
	RootNotTerminated:       "Root begins with opening paren '(' but is never terminated with a closing paren ')'",
	SummationNotTerminated:  "Summation bounds are never terminated with a closing paren ')'",
	ModifierMissingArgument: "Symbol expects an argument but none was found",
	ModifierNotTerminated:   "Text attached to a symbol begins with opening paren '(' but is never terminated with a closing paren ')'",
	GroupNotTerminated:      "Group is never terminated with a closing bracket",
	NestingTooDeep:          "Expression is nested too deeply",
}

// Msg is one diagnostic produced during interpretation, tagged with the
// source location of the offending construct.
type Msg struct {
	Category Category
	Code     Code
	Filename string
	Line1    int
	Line2    int
	Detail   string
}

// Message returns the diagnostic text including any detail.
func (m Msg) Message() string {
	text := codeText[m.Code]
	if m.Detail == "" {
		return text
	}
	return fmt.Sprintf("%s - %s", text, m.Detail)
}

func (m Msg) String() string {
	var categoryStr string
	switch m.Category {
	case Info:
		categoryStr = "FYI"
	case Notice:
		categoryStr = "NOTE"
	case Warning:
		categoryStr = "WARNING"
	case Error:
		categoryStr = "ERROR"
	}

	lineNum := fmt.Sprintf("%d", m.Line1)
	if m.Line1 != m.Line2 {
		lineNum = fmt.Sprintf("%d-%d", m.Line1, m.Line2)
	}

	return fmt.Sprintf("%s: %s (at line %s in %s)",
		categoryStr, m.Message(), lineNum, m.Filename)
}
