package ueb

import (
	"mathtext/internal/document"
	"mathtext/internal/util"
)

// IsBrailleItem reports whether v is a single braille "item" per the
// Technical Guidelines, ss. 7.1 and 12.1. Level indicators attach to items
// without grouping indicators; everything else gets grouped.
func IsBrailleItem(v document.Vector) bool {
	// A vector with several elements is, by definition, not an item.
	if len(v) != 1 {
		return false
	}

	switch e := v[0].(type) {
	case *document.Number:
		// Negative numbers can't be items because the minus sign is
		// itself an item.
		return !e.Negative

	case *document.Fraction, *document.Root, *document.Operator:
		// Always items in and of themselves (Technical Guidelines,
		// s. 7.6).
		return true

	case *document.MathBlock:
		// Single letters are items unto their own.
		return len(e.Text) == 1 && util.IsAlpha(e.Text[0])
	}

	return false
}

// IsSimpleFraction reports whether both the numerator and denominator of
// frac contain nothing but a number.
func IsSimpleFraction(frac *document.Fraction) bool {
	if len(frac.Numerator) != 1 || len(frac.Denominator) != 1 {
		return false
	}
	if _, ok := frac.Numerator[0].(*document.Number); !ok {
		return false
	}
	if _, ok := frac.Denominator[0].(*document.Number); !ok {
		return false
	}
	return true
}
