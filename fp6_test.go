package towerfield

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFp6RingAxioms(t *testing.T) {
	setupActive(t, StrategyBasic)

	rng := randSrc(t)
	var a, b, cc Fp6
	a.Rand(rng)
	b.Rand(rng)
	cc.Rand(rng)

	var ab, ba Fp6
	require.NoError(t, Fp6Mul(&ab, &a, &b))
	require.NoError(t, Fp6Mul(&ba, &b, &a))
	require.True(t, ab.Equal(&ba))

	var abC, bc, aBc Fp6
	require.NoError(t, Fp6Mul(&abC, &ab, &cc))
	require.NoError(t, Fp6Mul(&bc, &b, &cc))
	require.NoError(t, Fp6Mul(&aBc, &a, &bc))
	require.True(t, abC.Equal(&aBc))

	var sum, lhs, acMul, rhs Fp6
	Fp6Add(&sum, &b, &cc)
	require.NoError(t, Fp6Mul(&lhs, &a, &sum))
	require.NoError(t, Fp6Mul(&acMul, &a, &cc))
	Fp6Add(&rhs, &ab, &acMul)
	require.True(t, lhs.Equal(&rhs))
}

func TestFp6SquareMatchesMul(t *testing.T) {
	setupActive(t, StrategyBasic)
	var a, bySquare, byMul Fp6
	a.Rand(randSrc(t))
	require.NoError(t, Fp6Square(&bySquare, &a))
	require.NoError(t, Fp6MulBasic(&byMul, &a, &a))
	require.True(t, bySquare.Equal(&byMul))
}

func TestFp6MulStrategiesAgree(t *testing.T) {
	setupActive(t, StrategyBasic)
	rng := randSrc(t)
	var a, b, byBasic, byLazyr Fp6
	a.Rand(rng)
	b.Rand(rng)
	require.NoError(t, Fp6MulBasic(&byBasic, &a, &b))
	require.NoError(t, Fp6MulLazyr(&byLazyr, &a, &b))
	require.True(t, byBasic.Equal(&byLazyr))
}

func TestFp6Inverse(t *testing.T) {
	setupActive(t, StrategyBasic)
	var a, inv, prod, one Fp6
	a.Rand(randSrc(t))
	require.NoError(t, Fp6Inverse(&inv, &a))
	require.NoError(t, Fp6Mul(&prod, &a, &inv))
	one.SetOne()
	require.True(t, prod.Equal(&one))

	var zero Fp6
	zero.SetZero()
	require.ErrorIs(t, Fp6Inverse(&inv, &zero), ErrZeroInverse)
}

func TestFp6MulBySparse01MatchesFullMul(t *testing.T) {
	setupActive(t, StrategyBasic)
	rng := randSrc(t)
	var b0, b1, zero Fp2
	a2, byMul, bySparse := new(Fp6), new(Fp6), new(Fp6)
	a2.Rand(rng)
	b0.Rand(rng)
	b1.Rand(rng)
	zero.SetZero()

	var sparse Fp6
	sparse.B0.Copy(&b0)
	sparse.B1.Copy(&b1)
	sparse.B2.Copy(&zero)

	require.NoError(t, Fp6MulBasic(byMul, a2, &sparse))
	require.NoError(t, Fp6MulBySparse01(bySparse, a2, &b0, &b1))
	require.True(t, byMul.Equal(bySparse))
}

func TestFp6FrobeniusMatchesExpByP(t *testing.T) {
	setupActive(t, StrategyBasic)
	var a, byFrob Fp6
	a.Rand(randSrc(t))
	require.NoError(t, Fp6Frobenius(&byFrob, &a, 1))

	var byExp Fp6
	require.NoError(t, Fp6Exp(&byExp, &a, active.prime))
	require.True(t, byFrob.Equal(&byExp))
}

func TestFp6ExpMatchesRepeatedMul(t *testing.T) {
	setupActive(t, StrategyBasic)
	var a, byExp, byMul Fp6
	a.Rand(randSrc(t))
	byMul.SetOne()
	for i := 0; i < 11; i++ {
		require.NoError(t, Fp6Mul(&byMul, &byMul, &a))
	}
	require.NoError(t, Fp6Exp(&byExp, &a, big.NewInt(11)))
	require.True(t, byExp.Equal(&byMul))
}
