package document

// GreekKind identifies one of the 24 Greek letters in either case.
type GreekKind int

const (
	SmallAlpha GreekKind = iota
	CapitalAlpha
	SmallBeta
	CapitalBeta
	SmallGamma
	CapitalGamma
	SmallDelta
	CapitalDelta
	SmallEpsilon
	CapitalEpsilon
	SmallZeta
	CapitalZeta
	SmallEta
	CapitalEta
	SmallTheta
	CapitalTheta
	SmallIota
	CapitalIota
	SmallKappa
	CapitalKappa
	SmallLambda
	CapitalLambda
	SmallMu
	CapitalMu
	SmallNu
	CapitalNu
	SmallXi
	CapitalXi
	SmallOmicron
	CapitalOmicron
	SmallPi
	CapitalPi
	SmallRho
	CapitalRho
	SmallSigma
	CapitalSigma
	SmallTau
	CapitalTau
	SmallUpsilon
	CapitalUpsilon
	SmallPhi
	CapitalPhi
	SmallChi
	CapitalChi
	SmallPsi
	CapitalPsi
	SmallOmega
	CapitalOmega
)

// GreekLetter is a single Greek letter.
type GreekLetter struct {
	Letter GreekKind
}

var greekNames = map[GreekKind]string{
	SmallAlpha: "alpha", CapitalAlpha: "Alpha",
	SmallBeta: "beta", CapitalBeta: "Beta",
	SmallGamma: "gamma", CapitalGamma: "Gamma",
	SmallDelta: "delta", CapitalDelta: "Delta",
	SmallEpsilon: "epsilon", CapitalEpsilon: "Epsilon",
	SmallZeta: "zeta", CapitalZeta: "Zeta",
	SmallEta: "eta", CapitalEta: "Eta",
	SmallTheta: "theta", CapitalTheta: "Theta",
	SmallIota: "iota", CapitalIota: "Iota",
	SmallKappa: "kappa", CapitalKappa: "Kappa",
	SmallLambda: "lambda", CapitalLambda: "Lambda",
	SmallMu: "mu", CapitalMu: "Mu",
	SmallNu: "nu", CapitalNu: "Nu",
	SmallXi: "xi", CapitalXi: "Xi",
	SmallOmicron: "omicron", CapitalOmicron: "Omicron",
	SmallPi: "pi", CapitalPi: "Pi",
	SmallRho: "rho", CapitalRho: "Rho",
	SmallSigma: "sigma", CapitalSigma: "Sigma",
	SmallTau: "tau", CapitalTau: "Tau",
	SmallUpsilon: "upsilon", CapitalUpsilon: "Upsilon",
	SmallPhi: "phi", CapitalPhi: "Phi",
	SmallChi: "chi", CapitalChi: "Chi",
	SmallPsi: "psi", CapitalPsi: "Psi",
	SmallOmega: "omega", CapitalOmega: "Omega",
}

// Name returns the conventional letter name, capitalized for the uppercase
// variants.
func (g *GreekLetter) Name() string {
	return greekNames[g.Letter]
}

func (g *GreekLetter) element() {}
