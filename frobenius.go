package towerfield

import "math/big"

// precomputeFrobenius derives the Fp6 and Fp12 Frobenius constants from the
// configured prime and non-residue, rather than hard-coding them for one
// fixed curve: gamma1[i] = xi^((p^i-1)/3), gamma2[i] = xi^(2(p^i-1)/3) for
// Fp6 (i = 1..5), and gamma12[i] = xi^((p^i-1)/6) for Fp12 (i = 1..11). This
// keeps the tower generic across any configured prime satisfying p mod 8 in
// {3,5,7}, instead of binding to one curve's published constants.
func (c *Config) precomputeFrobenius() {
	var xi Fp2
	xi.SetOne()
	var one Fp2
	one.SetOne()
	switch c.nrCase {
	case caseP5Mod8:
		Fp2MulArt(&xi, &one)
	case caseP3Mod8:
		var rooted Fp2
		Fp2MulArt(&rooted, &one)
		Fp2Add(&xi, &one, &rooted)
	case caseP7Mod8:
		var scaled Fp2
		scaled.Copy(&one)
		for i := uint(0); i < c.curveK; i++ {
			Fp2Double(&scaled, &scaled)
		}
		var rooted Fp2
		Fp2MulArt(&rooted, &one)
		Fp2Add(&xi, &scaled, &rooted)
	}

	three := big.NewInt(3)
	six := big.NewInt(6)
	pPow := new(big.Int).Set(c.prime)
	for i := 1; i <= 5; i++ {
		if i > 1 {
			pPow.Mul(pPow, c.prime)
		}
		exp1 := new(big.Int).Sub(pPow, big.NewInt(1))
		exp1.Div(exp1, three)
		g1 := new(Fp2)
		Fp2Exp(g1, &xi, exp1)
		c.frobeniusGamma1[i-1] = g1

		exp2 := new(big.Int).Sub(pPow, big.NewInt(1))
		exp2.Mul(exp2, big.NewInt(2))
		exp2.Div(exp2, three)
		g2 := new(Fp2)
		Fp2Exp(g2, &xi, exp2)
		c.frobeniusGamma2[i-1] = g2
	}

	pPow12 := new(big.Int).Set(c.prime)
	for i := 1; i <= 11; i++ {
		if i > 1 {
			pPow12.Mul(pPow12, c.prime)
		}
		exp := new(big.Int).Sub(pPow12, big.NewInt(1))
		exp.Div(exp, six)
		g := new(Fp2)
		Fp2Exp(g, &xi, exp)
		c.frobeniusGamma12[i-1] = g
	}
}
