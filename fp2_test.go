package towerfield

import (
	"math/big"
	"testing"

	"github.com/drand/towerfield/basefield"
	"github.com/stretchr/testify/require"
)

func TestFp2RingAxioms(t *testing.T) {
	for _, strategy := range []ExtensionStrategy{StrategyBasic, StrategyLazyr} {
		setupActive(t, strategy)

		rng := randSrc(t)
		var a, b, cc Fp2
		a.Rand(rng)
		b.Rand(rng)
		cc.Rand(rng)

		// commutativity
		var ab, ba Fp2
		Fp2Mul(&ab, &a, &b)
		Fp2Mul(&ba, &b, &a)
		require.True(t, ab.Equal(&ba))

		// associativity: (a*b)*c == a*(b*c)
		var abC, aBc, bc Fp2
		Fp2Mul(&abC, &ab, &cc)
		Fp2Mul(&bc, &b, &cc)
		Fp2Mul(&aBc, &a, &bc)
		require.True(t, abC.Equal(&aBc))

		// distributivity: a*(b+c) == a*b + a*c
		var sum, lhs, rhs, acc Fp2
		Fp2Add(&sum, &b, &cc)
		Fp2Mul(&lhs, &a, &sum)
		Fp2Mul(&acc, &a, &cc)
		Fp2Add(&rhs, &ab, &acc)
		require.True(t, lhs.Equal(&rhs))

		// additive inverse
		var negA, zero Fp2
		Fp2Neg(&negA, &a)
		Fp2Add(&zero, &a, &negA)
		require.True(t, zero.IsZero())
	}
}

func TestFp2SquareMatchesMul(t *testing.T) {
	setupActive(t, StrategyBasic)
	var a, bySquare, byMul Fp2
	a.Rand(randSrc(t))
	Fp2Square(&bySquare, &a)
	Fp2MulBasic(&byMul, &a, &a)
	require.True(t, bySquare.Equal(&byMul))
}

func TestFp2MulStrategiesAgree(t *testing.T) {
	setupActive(t, StrategyBasic)
	rng := randSrc(t)
	var a, b, byBasic, byLazyr Fp2
	a.Rand(rng)
	b.Rand(rng)
	Fp2MulBasic(&byBasic, &a, &b)
	Fp2MulLazyr(&byLazyr, &a, &b)
	require.True(t, byBasic.Equal(&byLazyr))
}

func TestFp2Inverse(t *testing.T) {
	setupActive(t, StrategyBasic)
	var a, inv, prod, one Fp2
	a.Rand(randSrc(t))
	require.NoError(t, Fp2Inverse(&inv, &a))
	Fp2Mul(&prod, &a, &inv)
	one.SetOne()
	require.True(t, prod.Equal(&one))

	var zero Fp2
	zero.SetZero()
	require.ErrorIs(t, Fp2Inverse(&inv, &zero), ErrZeroInverse)
}

func TestFp2InvSimMatchesIndividualInverse(t *testing.T) {
	setupActive(t, StrategyBasic)
	rng := randSrc(t)
	n := 5
	in := make([]*Fp2, n)
	want := make([]*Fp2, n)
	for i := range in {
		in[i] = new(Fp2)
		in[i].Rand(rng)
		want[i] = new(Fp2)
		require.NoError(t, Fp2Inverse(want[i], in[i]))
	}
	got := make([]*Fp2, n)
	require.NoError(t, Fp2InvSim(got, in))
	for i := range got {
		require.True(t, got[i].Equal(want[i]), "index %d", i)
	}
}

func TestFp2MulNorCrossChecksMulArt(t *testing.T) {
	// BLS12-381 is p mod 8 == 3, so xi == 1+u and MulNor(a) == a + MulArt(a).
	setupActive(t, StrategyBasic)
	var a, art, sum, nor Fp2
	a.Rand(randSrc(t))
	Fp2MulArt(&art, &a)
	Fp2Add(&sum, &a, &art)
	require.NoError(t, Fp2MulNor(&nor, &a))
	require.True(t, sum.Equal(&nor))
}

func TestFp2FrobeniusIsInvolution(t *testing.T) {
	setupActive(t, StrategyBasic)
	var a, once, twice Fp2
	a.Rand(randSrc(t))
	Fp2Frobenius(&once, &a, 1)
	Fp2Frobenius(&twice, &once, 1)
	require.True(t, twice.Equal(&a))
}

func TestFp2ExpMatchesRepeatedMul(t *testing.T) {
	setupActive(t, StrategyBasic)
	var a, byExp, byMul Fp2
	a.Rand(randSrc(t))
	byMul.SetOne()
	for i := 0; i < 13; i++ {
		Fp2Mul(&byMul, &byMul, &a)
	}
	Fp2Exp(&byExp, &a, big.NewInt(13))
	require.True(t, byExp.Equal(&byMul))
}

func TestFp2MulByFqMatchesScalarFp2(t *testing.T) {
	setupActive(t, StrategyBasic)
	var a, scalarAsFp2, want, got Fp2
	a.Rand(randSrc(t))
	s := basefield.NewElement()
	s.SetSmallInt(17)
	scalarAsFp2.A0.Copy(s)
	scalarAsFp2.A1.SetZero()

	Fp2Mul(&want, &a, &scalarAsFp2)
	Fp2MulByFq(&got, &a, s)
	require.True(t, want.Equal(&got))
}

func TestFp2SqrtRoundTrips(t *testing.T) {
	setupActive(t, StrategyBasic)
	var a, sq, root Fp2
	a.Rand(randSrc(t))
	Fp2Square(&sq, &a)
	ok := Fp2Sqrt(&root, &sq)
	require.True(t, ok)
	var check Fp2
	Fp2Square(&check, &root)
	require.True(t, check.Equal(&sq))
}
