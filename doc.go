// Package towerfield implements the Fp2/Fp6/Fp12 tower-field arithmetic
// used by pairing-based cryptography: Fp2 = Fp[u]/(u^2+1), Fp6 = Fp2[v]/(v^3-xi),
// Fp12 = Fp6[w]/(w^2-v). It carries both an eager ("basic") and a
// lazy-reduction ("lazyr") multiplication/squaring strategy, Granger-Scott
// and Karabina cyclotomic squaring, and the Frobenius/exponentiation
// machinery pairing final exponentiations are built from.
//
// Call Init once with the desired prime before using any arithmetic; call
// Clean to tear the configuration down. The underlying Fp layer
// (basefield.Element/Wide) is a portable math/big facade rather than a
// hand-written limb implementation — see DESIGN.md for why.
package towerfield
