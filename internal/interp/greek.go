package interp

import (
	"mathtext/internal/document"
)

// Source letter to Greek letter. Note the historical oddity that q maps to
// tau (not theta); kept for compatibility with existing documents.
var greekTable = map[byte]document.GreekKind{
	'a': document.SmallAlpha, 'A': document.CapitalAlpha,
	'b': document.SmallBeta, 'B': document.CapitalBeta,
	'g': document.SmallGamma, 'G': document.CapitalGamma,
	'd': document.SmallDelta, 'D': document.CapitalDelta,
	'e': document.SmallEpsilon, 'E': document.CapitalEpsilon,
	'z': document.SmallZeta, 'Z': document.CapitalZeta,
	'h': document.SmallEta, 'H': document.CapitalEta,
	't': document.SmallTheta, 'T': document.CapitalTheta,
	'i': document.SmallIota, 'I': document.CapitalIota,
	'k': document.SmallKappa, 'K': document.CapitalKappa,
	'l': document.SmallLambda, 'L': document.CapitalLambda,
	'm': document.SmallMu, 'M': document.CapitalMu,
	'n': document.SmallNu, 'N': document.CapitalNu,
	'x': document.SmallXi, 'X': document.CapitalXi,
	'o': document.SmallOmicron, 'O': document.CapitalOmicron,
	'p': document.SmallPi, 'P': document.CapitalPi,
	'q': document.SmallTau, 'Q': document.CapitalTau,
	'r': document.SmallRho, 'R': document.CapitalRho,
	's': document.SmallSigma, 'S': document.CapitalSigma,
	'u': document.SmallUpsilon, 'U': document.CapitalUpsilon,
	'v': document.SmallPhi, 'V': document.CapitalPhi,
	'c': document.SmallChi, 'C': document.CapitalChi,
	'f': document.SmallPsi, 'F': document.CapitalPsi,
	'w': document.SmallOmega, 'W': document.CapitalOmega,
}

// interpretGreekLetter recognizes a Greek letter escape: %a, %b, etc.
func (in *Interpreter) interpretGreekLetter(src string, i *int) (document.Vector, bool, error) {
	if src[*i] != '%' || *i+1 >= len(src) {
		return nil, false, nil
	}

	c := src[*i+1]
	if c == '%' { // %% is the percent sign
		return nil, false, nil
	}

	letter, ok := greekTable[c]
	if !ok {
		in.warning(UnknownGreek, "'%"+string(c)+"' does not represent a greek letter")
		return nil, false, nil
	}

	tracer().Debugf("added greek letter for (%c)", c)
	*i += 2
	return document.Vector{&document.GreekLetter{Letter: letter}}, true, nil
}
