package interp

import (
	"mathtext/internal/document"
	"mathtext/internal/util"
)

// interpretOperator recognizes signs of operation: +, *, -, and the spaced
// division sign " / ".
func (in *Interpreter) interpretOperator(src string, i *int) (document.Vector, bool, error) {
	temp := src[*i:]
	if len(temp) > 3 {
		temp = temp[:3]
	}

	if temp != " / " && !util.IsOneOf(temp[0], "+*-") {
		return nil, false, nil
	}

	// +/- is a different symbol and ought not be handled here.
	if temp == "+/-" || temp == "-/+" {
		return nil, false, nil
	}

	var op document.OperatorKind
	switch {
	case temp[0] == '+':
		op = document.Addition
		*i++
	case temp[0] == '*':
		op = document.Multiplication
		*i++
	case temp[0] == '-':
		// A minus followed by a digit stays a subtraction sign: x^-1
		// carries a true minus sign, not a negative number.
		op = document.Subtraction
		*i++
	case temp == " / ":
		op = document.Division
		*i += 3
	}

	// Skip whitespace following an operator.
	for *i < len(src) && util.IsSpace(src[*i]) {
		*i++
	}

	return document.Vector{&document.Operator{Op: op}}, true, nil
}
