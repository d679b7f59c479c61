package basefield

import (
	"math/big"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func setupModulus(t *testing.T) {
	t.Helper()
	p, ok := new(big.Int).SetString(
		"1a0111ea397fe69a4b1ba7b6434bacd764774b84f38512bf6730d2a0f6b0f6241eabfffeb153ffffb9feffffffffaaab", 16)
	require.True(t, ok)
	Modulus = p
	t.Cleanup(func() { Modulus = nil })
}

// randSrc returns a deterministic byte source for Rand() calls in tests, so
// failures reproduce instead of flaking. Callers must call it once per test
// and reuse the returned generator for every operand: calling it again mid-test
// would restart the same seeded stream and make "random" operands identical.
func randSrc(t *testing.T) *rand.Rand {
	t.Helper()
	return rand.New(rand.NewSource(1))
}

func randElem(t *testing.T, rng *rand.Rand) *Element {
	t.Helper()
	e := NewElement()
	_, err := e.Rand(rng)
	require.NoError(t, err)
	return e
}

func TestAddSubRoundTrip(t *testing.T) {
	setupModulus(t)
	rng := randSrc(t)
	a, b := randElem(t, rng), randElem(t, rng)
	var sum, back Element
	Add(&sum, a, b)
	Sub(&back, &sum, b)
	require.True(t, back.Equal(a))
}

func TestNegIsAdditiveInverse(t *testing.T) {
	setupModulus(t)
	a := randElem(t, randSrc(t))
	var neg, sum Element
	Neg(&neg, a)
	Add(&sum, a, &neg)
	require.True(t, sum.IsZero())
}

func TestDoubleEqualsSelfAdd(t *testing.T) {
	setupModulus(t)
	a := randElem(t, randSrc(t))
	var byDouble, byAdd Element
	Double(&byDouble, a)
	Add(&byAdd, a, a)
	require.True(t, byDouble.Equal(&byAdd))
}

func TestHalveInvertsDouble(t *testing.T) {
	setupModulus(t)
	a := randElem(t, randSrc(t))
	var invTwo, two Element
	two.SetSmallInt(2)
	require.True(t, Inverse(&invTwo, &two))

	var doubled, halved Element
	Double(&doubled, a)
	Halve(&halved, &doubled, &invTwo)
	require.True(t, halved.Equal(a))
}

func TestMulSquareConsistency(t *testing.T) {
	setupModulus(t)
	a := randElem(t, randSrc(t))
	var bySquare, byMul Element
	Square(&bySquare, a)
	Mul(&byMul, a, a)
	require.True(t, bySquare.Equal(&byMul))
}

func TestInverse(t *testing.T) {
	setupModulus(t)
	a := randElem(t, randSrc(t))
	var inv, prod, one Element
	require.True(t, Inverse(&inv, a))
	Mul(&prod, a, &inv)
	one.SetOne()
	require.True(t, prod.Equal(&one))

	var zero Element
	zero.SetZero()
	require.False(t, Inverse(&inv, &zero))
}

func TestMulnRdcnMatchesMul(t *testing.T) {
	setupModulus(t)
	rng := randSrc(t)
	a, b := randElem(t, rng), randElem(t, rng)
	var byMul Element
	Mul(&byMul, a, b)

	var w Wide
	Muln(&w, a, b)
	var byWide Element
	Rdcn(&byWide, &w)
	require.True(t, byMul.Equal(&byWide))
}

func TestSqrnRdcnMatchesSquare(t *testing.T) {
	setupModulus(t)
	a := randElem(t, randSrc(t))
	var bySquare Element
	Square(&bySquare, a)

	var w Wide
	Sqrn(&w, a)
	var byWide Element
	Rdcn(&byWide, &w)
	require.True(t, bySquare.Equal(&byWide))
}

func TestSetSmallIntReducesModP(t *testing.T) {
	setupModulus(t)
	var e Element
	e.SetSmallInt(7)
	require.Equal(t, big.NewInt(7), e.BigInt())
}
