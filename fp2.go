package towerfield

import (
	"io"
	"math/big"

	"github.com/drand/towerfield/basefield"
)

// fp2Elem is an internal alias kept distinct from the exported Fp2 so the
// Frobenius precomputation in config.go can hold a small private fixed array
// without exposing a second public element type.
type fp2Elem = Fp2

// Fp2 is an element a0 + a1*u of Fp[u]/(u^2 - beta), with beta = -1 fixed
// for the tower shape this module implements (quadratic-over-cubic-over-
// quadratic, degree 12 total).
type Fp2 struct {
	A0, A1 basefield.Element
}

func NewFp2() *Fp2 { return &Fp2{} }

func (a *Fp2) SetZero() *Fp2 {
	a.A0.SetZero()
	a.A1.SetZero()
	return a
}

func (a *Fp2) SetOne() *Fp2 {
	a.A0.SetOne()
	a.A1.SetZero()
	return a
}

func (a *Fp2) Copy(b *Fp2) *Fp2 {
	a.A0.Copy(&b.A0)
	a.A1.Copy(&b.A1)
	return a
}

func (a *Fp2) IsZero() bool { return a.A0.IsZero() && a.A1.IsZero() }

func (a *Fp2) Equal(b *Fp2) bool { return a.A0.Equal(&b.A0) && a.A1.Equal(&b.A1) }

func (a *Fp2) Rand(r io.Reader) (*Fp2, error) {
	if _, err := a.A0.Rand(r); err != nil {
		return nil, err
	}
	if _, err := a.A1.Rand(r); err != nil {
		return nil, err
	}
	return a, nil
}

func Fp2Add(c, a, b *Fp2) {
	basefield.Add(&c.A0, &a.A0, &b.A0)
	basefield.Add(&c.A1, &a.A1, &b.A1)
}

func Fp2Sub(c, a, b *Fp2) {
	basefield.Sub(&c.A0, &a.A0, &b.A0)
	basefield.Sub(&c.A1, &a.A1, &b.A1)
}

func Fp2Neg(c, a *Fp2) {
	basefield.Neg(&c.A0, &a.A0)
	basefield.Neg(&c.A1, &a.A1)
}

func Fp2Double(c, a *Fp2) {
	basefield.Double(&c.A0, &a.A0)
	basefield.Double(&c.A1, &a.A1)
}

// Fp2Halve writes c with c+c = a, using the active configuration's
// precomputed inverse of two.
func Fp2Halve(c, a *Fp2) error {
	if err := requireActive(); err != nil {
		return err
	}
	basefield.Halve(&c.A0, &a.A0, active.invTwo)
	basefield.Halve(&c.A1, &a.A1, active.invTwo)
	return nil
}

func Fp2Conjugate(c, a *Fp2) {
	c.A0.Copy(&a.A0)
	basefield.Neg(&c.A1, &a.A1)
}

// Fp2Mul dispatches to the configured default strategy.
func Fp2Mul(c, a, b *Fp2) {
	if active != nil && active.strategy == StrategyLazyr {
		Fp2MulLazyr(c, a, b)
		return
	}
	Fp2MulBasic(c, a, b)
}

// Fp2MulBasic computes c = a*b by Karatsuba with beta = -1, reducing after
// every Fp multiplication: t0 = a0*b0, t1 = a1*b1, t2 = (a0+a1)(b0+b1);
// c0 = t0 - t1, c1 = t2 - t0 - t1.
func Fp2MulBasic(c, a, b *Fp2) {
	var t0, t1, t2, s0, s1 basefield.Element
	basefield.Mul(&t0, &a.A0, &b.A0)
	basefield.Mul(&t1, &a.A1, &b.A1)
	basefield.Add(&s0, &a.A0, &a.A1)
	basefield.Add(&s1, &b.A0, &b.A1)
	basefield.Mul(&t2, &s0, &s1)
	basefield.Sub(&c.A0, &t0, &t1)
	basefield.Sub(&t2, &t2, &t0)
	basefield.Sub(&c.A1, &t2, &t1)
}

// Fp2MulLazyr computes the same product, accumulating each of the three
// cross products in double-width storage and reducing once per output limb.
func Fp2MulLazyr(c, a, b *Fp2) {
	var s0, s1 basefield.Element
	basefield.Add(&s0, &a.A0, &a.A1)
	basefield.Add(&s1, &b.A0, &b.A1)

	var w0, w1, w2 basefield.Wide
	basefield.Muln(&w0, &a.A0, &b.A0)
	basefield.Muln(&w1, &a.A1, &b.A1)
	basefield.Muln(&w2, &s0, &s1)

	var w0r basefield.Wide
	basefield.Subc(&w0r, &w0, &w1)

	var w2r basefield.Wide
	basefield.Subc(&w2r, &w2, &w0)
	basefield.Subc(&w2r, &w2r, &w1)
	basefield.Rdcn(&c.A1, &w2r)
	basefield.Rdcn(&c.A0, &w0r)
}

// Fp2Square computes c = a^2 via the complex-squaring identity with beta=-1:
// t0 = a0+a1, t1 = a0-a1, t2 = 2*a0*a1; c0 = t0*t1, c1 = t2.
func Fp2Square(c, a *Fp2) {
	var t0, t1, t2 basefield.Element
	basefield.Add(&t0, &a.A0, &a.A1)
	basefield.Sub(&t1, &a.A0, &a.A1)
	basefield.Mul(&t2, &a.A0, &a.A1)
	basefield.Double(&t2, &t2)
	basefield.Mul(&c.A0, &t0, &t1)
	c.A1.Copy(&t2)
}

// Fp2MulArt computes c = a*u: c0 = -a1, c1 = a0 (beta = -1). Must tolerate
// c aliasing a, so both outputs are staged in fresh Elements before either
// is written into c.
func Fp2MulArt(c, a *Fp2) {
	var t0, t1 basefield.Element
	basefield.Neg(&t0, &a.A1)
	t1.Copy(&a.A0)
	c.A0.Copy(&t0)
	c.A1.Copy(&t1)
}

// Fp2MulByFq multiplies an Fp2 element by a raw Fp scalar: c0 = a0*s, c1 =
// a1*s. The building block the p=7(mod 8) MulNor branch's 2^k doubling chain
// generalizes to (and, more broadly, what a curve's b-coefficient scaling in
// G2 doubling needs).
func Fp2MulByFq(c, a *Fp2, s *basefield.Element) {
	basefield.Mul(&c.A0, &a.A0, s)
	basefield.Mul(&c.A1, &a.A1, s)
}

// Fp2MulNor multiplies a by the cubic non-residue xi used to build Fp6,
// dispatching on the p mod 8 case fixed at Init.
func Fp2MulNor(c, a *Fp2) error {
	if err := requireActive(); err != nil {
		return err
	}
	switch active.nrCase {
	case caseP5Mod8:
		// xi = u
		Fp2MulArt(c, a)
	case caseP3Mod8:
		// xi = 1 + u: c = a + mul_art(a)
		var t Fp2
		Fp2MulArt(&t, a)
		Fp2Add(c, a, &t)
	case caseP7Mod8:
		// xi = 2^k + u: c = (2^k)*a + mul_art(a)
		var scaled Fp2
		scaled.Copy(a)
		for i := uint(0); i < active.curveK; i++ {
			Fp2Double(&scaled, &scaled)
		}
		var rooted Fp2
		Fp2MulArt(&rooted, a)
		Fp2Add(c, &scaled, &rooted)
	}
	return nil
}

// Fp2Inverse writes c = a^-1 using norm(a) = a0^2 + a1^2 (beta = -1):
// c0 = a0/norm, c1 = -a1/norm.
func Fp2Inverse(c, a *Fp2) error {
	if a.IsZero() {
		return ErrZeroInverse
	}
	var n0, n1, norm basefield.Element
	basefield.Square(&n0, &a.A0)
	basefield.Square(&n1, &a.A1)
	basefield.Add(&norm, &n0, &n1)
	var normInv basefield.Element
	basefield.Inverse(&normInv, &norm)
	basefield.Mul(&c.A0, &a.A0, &normInv)
	var negA1 basefield.Element
	basefield.Neg(&negA1, &a.A1)
	basefield.Mul(&c.A1, &negA1, &normInv)
	return nil
}

// Fp2InvSim inverts n elements using one Fp2 inversion and 3(n-1) Fp2 muls
// (Montgomery's simultaneous-inversion trick). All inputs must be non-zero.
func Fp2InvSim(out []*Fp2, in []*Fp2) error {
	n := len(in)
	if n == 0 {
		return nil
	}
	for _, v := range in {
		if v.IsZero() {
			return ErrZeroInverse
		}
	}
	prefix := make([]Fp2, n)
	prefix[0].Copy(in[0])
	for i := 1; i < n; i++ {
		Fp2Mul(&prefix[i], &prefix[i-1], in[i])
	}
	var inv Fp2
	if err := Fp2Inverse(&inv, &prefix[n-1]); err != nil {
		return err
	}
	for i := n - 1; i > 0; i-- {
		var outI Fp2
		Fp2Mul(&outI, &inv, &prefix[i-1])
		out[i] = new(Fp2).Copy(&outI)
		Fp2Mul(&inv, &inv, in[i])
	}
	out[0] = new(Fp2).Copy(&inv)
	return nil
}

// Fp2Frobenius writes c = frb(a, power): conjugation when power is odd,
// identity when power is even (Fp2's Frobenius automorphism has order 2).
func Fp2Frobenius(c, a *Fp2, power uint) {
	c.A0.Copy(&a.A0)
	if power%2 == 1 {
		basefield.Neg(&c.A1, &a.A1)
		return
	}
	c.A1.Copy(&a.A1)
}

// Fp2Exp computes c = a^e by square-and-multiply, MSB to LSB.
func Fp2Exp(c, a *Fp2, e *big.Int) {
	z := new(Fp2).SetOne()
	for i := e.BitLen() - 1; i >= 0; i-- {
		Fp2Square(z, z)
		if e.Bit(i) == 1 {
			Fp2Mul(z, z, a)
		}
	}
	c.Copy(z)
}

// Fp2Sqrt writes b with b^2 = a and returns true when a is a square in Fp2.
// Uses the Fp2 square root for p = 3 (mod 4), the class BLS12-381 falls in:
// a1 = a^((p-3)/4), alpha = a1^2 * a, x0 = a1 * a; if alpha = -1 the root is
// u*x0, otherwise it is (1+alpha)^((p-1)/2) * x0. The final check c^2 = a
// decides the returned flag.
func Fp2Sqrt(c, a *Fp2) bool {
	if err := requireActive(); err != nil {
		return false
	}
	p := active.prime

	pMinus3Over4 := new(big.Int).Sub(p, big.NewInt(3))
	pMinus3Over4.Rsh(pMinus3Over4, 2)
	pMinus1Over2 := new(big.Int).Sub(p, big.NewInt(1))
	pMinus1Over2.Rsh(pMinus1Over2, 1)

	var negOne Fp2
	negOne.SetOne()
	Fp2Neg(&negOne, &negOne)

	var a1, alpha, x0 Fp2
	Fp2Exp(&a1, a, pMinus3Over4)
	Fp2Square(&alpha, &a1)
	Fp2Mul(&alpha, &alpha, a)
	Fp2Mul(&x0, &a1, a)

	if alpha.Equal(&negOne) {
		// sqrt(-1) in Fp2 is u itself (beta = -1): multiply x0 by u.
		Fp2MulArt(c, &x0)
		return true
	}

	var one Fp2
	one.SetOne()
	Fp2Add(&alpha, &alpha, &one)
	Fp2Exp(&alpha, &alpha, pMinus1Over2)
	Fp2Mul(c, &alpha, &x0)

	var check Fp2
	Fp2Square(&check, c)
	return check.Equal(a)
}
