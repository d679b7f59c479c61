package towerfield

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFp12RingAxioms(t *testing.T) {
	setupActive(t, StrategyBasic)

	rng := randSrc(t)
	var a, b, cc Fp12
	a.Rand(rng)
	b.Rand(rng)
	cc.Rand(rng)

	var ab, ba Fp12
	require.NoError(t, Fp12Mul(&ab, &a, &b))
	require.NoError(t, Fp12Mul(&ba, &b, &a))
	require.True(t, ab.Equal(&ba))

	var abC, bc, aBc Fp12
	require.NoError(t, Fp12Mul(&abC, &ab, &cc))
	require.NoError(t, Fp12Mul(&bc, &b, &cc))
	require.NoError(t, Fp12Mul(&aBc, &a, &bc))
	require.True(t, abC.Equal(&aBc))
}

func TestFp12SquareMatchesMul(t *testing.T) {
	setupActive(t, StrategyBasic)
	var a, bySquare, byMul Fp12
	a.Rand(randSrc(t))
	require.NoError(t, Fp12Square(&bySquare, &a))
	require.NoError(t, Fp12Mul(&byMul, &a, &a))
	require.True(t, bySquare.Equal(&byMul))
}

func TestFp12Inverse(t *testing.T) {
	setupActive(t, StrategyBasic)
	var a, inv, prod, one Fp12
	a.Rand(randSrc(t))
	require.NoError(t, Fp12Inverse(&inv, &a))
	require.NoError(t, Fp12Mul(&prod, &a, &inv))
	one.SetOne()
	require.True(t, prod.Equal(&one))

	var zero Fp12
	zero.SetZero()
	require.ErrorIs(t, Fp12Inverse(&inv, &zero), ErrZeroInverse)
}

// TestFp12InvUnitaryMatchesInverseOnUnitaryElement checks inv_uni == inv
// when a has unit norm, constructed here via ConvCyc (whose image is exactly
// the cyclotomic/unitary subgroup).
func TestFp12InvUnitaryMatchesInverseOnUnitaryElement(t *testing.T) {
	setupActive(t, StrategyBasic)
	var raw, a Fp12
	raw.Rand(randSrc(t))
	require.NoError(t, ConvCyc(&a, &raw))

	var byInv, byUnitary Fp12
	require.NoError(t, Fp12Inverse(&byInv, &a))
	Fp12InvUnitary(&byUnitary, &a)
	require.True(t, byInv.Equal(&byUnitary))
}

func TestFp12ExpMatchesRepeatedMul(t *testing.T) {
	setupActive(t, StrategyBasic)
	var a, byExp, byMul Fp12
	a.Rand(randSrc(t))
	byMul.SetOne()
	for i := 0; i < 9; i++ {
		require.NoError(t, Fp12Mul(&byMul, &byMul, &a))
	}
	require.NoError(t, Fp12Exp(&byExp, &a, big.NewInt(9)))
	require.True(t, byExp.Equal(&byMul))
}

func TestFp12MulBySparse014MatchesFullMul(t *testing.T) {
	setupActive(t, StrategyBasic)
	rng := randSrc(t)
	var c0, c1, c4, zero2 Fp2
	c0.Rand(rng)
	c1.Rand(rng)
	c4.Rand(rng)
	zero2.SetZero()

	var sparseElem Fp12
	sparseElem.C0.B0.Copy(&c0)
	sparseElem.C0.B1.Copy(&c1)
	sparseElem.C0.B2.Copy(&zero2)
	sparseElem.C1.B0.Copy(&zero2)
	sparseElem.C1.B1.Copy(&c4)
	sparseElem.C1.B2.Copy(&zero2)

	var a, byFull Fp12
	a.Rand(rng)
	require.NoError(t, Fp12Mul(&byFull, &a, &sparseElem))

	bySparse := new(Fp12)
	bySparse.Copy(&a)
	require.NoError(t, Fp12MulBySparse014(bySparse, &c0, &c1, &c4))
	require.True(t, byFull.Equal(bySparse))
}

func TestFp12FrobeniusPower12IsIdentity(t *testing.T) {
	setupActive(t, StrategyBasic)
	var a, cur Fp12
	a.Rand(randSrc(t))
	cur.Copy(&a)
	for i := 0; i < 12; i++ {
		var next Fp12
		require.NoError(t, Fp12Frobenius(&next, &cur, 1))
		cur.Copy(&next)
	}
	require.True(t, cur.Equal(&a))
}
