package ueb

// Braille cells in North American ASCII braille notation. Names follow the
// signs of the Unified English Braille code; the comments give the dot
// patterns.

// Math/text block indicators and word-wrap markers are fixed-length
// sentinel strings embedded in the interim output and consumed by the
// word-wrap pass.
const (
	mathBlockBegin = "<|@M@|>"
	textBlockBegin = "<|@T@|>"

	wrapIndicatorLen = 7
	wrapPri1         = "<|@1@|>"
	wrapPri2         = "<|@2@|>"
	wrapPri3         = "<|@3@|>"
)

// Technical braille signs.
const (
	uebCapitalSign   = ","  // dots 6
	uebDirectlyAbove = ".9" // dots 46, 35
	uebDirectlyBelow = ".5" // dots 46, 26
	uebG1            = ";"  // dots 56
	uebGroupBegin    = "<"  // dots 126
	uebGroupEnd      = ">"  // dots 345
	uebLevelDown     = "5"  // dots 26
	uebLevelUp       = "9"  // dots 35
	uebNumberSign    = "#"  // dots 3456
	uebNumericSpace  = `"`  // dot 5
)

// uebNumericModeSymbols are the cells that keep numeric mode alive.
const uebNumericModeSymbols = "ABCDEFGHIJ" + uebComma + uebPeriod + uebNumericSpace

// General punctuation.
const (
	uebComma        = "1"  // dot 2
	uebLeftBrace    = "_<" // dots 456, 126
	uebLeftBracket  = ".<" // dots 46, 126
	uebLeftParen    = `"<` // dots 5, 126
	uebPercent      = ".0" // dots 46, 356
	uebPeriod       = "4"  // dots 256
	uebRightBrace   = "_>" // dots 456, 345
	uebRightBracket = ".>" // dots 46, 345
	uebRightParen   = `">` // dots 5, 345
)

// Math signs.
const (
	uebApproxEqual       = "_9"   // dots 456, 35
	uebDivSign           = `"/`   // dots 5, 34
	uebEqualSign         = `"7`   // dots 5, 2356
	uebFactorial         = "6"    // dots 235
	uebFracBegin         = "("    // dots 12356
	uebFracDivider       = "./"   // dots 46, 34
	uebFracEnd           = ")"    // dots 23456
	uebGreaterThan       = "@>"   // dots 4, 345
	uebGreaterThanEq     = "_@>"  // dots 456, 4, 345
	uebLessThan          = "@<"   // dots 4, 126
	uebLessThanEq        = "_@<"  // dots 456, 4, 126
	uebMinusSign         = `"-`   // dots 5, 36
	uebPlusSign          = `"6`   // dots 5, 235
	uebRootBegin         = "%"    // dots 146
	uebRootEnd           = "+"    // dots 346
	uebSimpleFracDivider = "/"    // dots 34
	uebTherefore         = ",*"   // dots 6, 16
	uebTimesSign         = `"8`   // dots 5, 236
	uebUnequalSign       = `"7@:` // dots 5, 2356, 4, 156
)

// Over signs.
const (
	uebOverArrowRight = "^:" // dots 45, 156
	uebOverBar        = ":"  // dots 156
	uebOverHat        = `":` // dots 5, 156
)

// Greek alphabet: a Greek sign (dots 46) before the base letter, with a
// capital sign in front for the uppercase forms.
const uebGreekSign = "." // dots 46

// Currency signs.
const (
	uebCurrencyCents  = "@C" // dots 4, c
	uebCurrencyEuro   = "@E" // dots 4, e
	uebCurrencyFranc  = "@F" // dots 4, f
	uebCurrencyPound  = "@L" // dots 4, l
	uebCurrencyDollar = "@S" // dots 4, s
	uebCurrencyYen    = "@Y" // dots 4, y
)
