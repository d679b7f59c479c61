package towerfield

import (
	"io"
	"math/big"
)

// Fp6 is an element b0 + b1*v + b2*v^2 of Fp2[v]/(v^3 - xi), xi the
// configured cubic non-residue (see Fp2MulNor).
type Fp6 struct {
	B0, B1, B2 Fp2
}

func NewFp6() *Fp6 { return &Fp6{} }

func (a *Fp6) SetZero() *Fp6 {
	a.B0.SetZero()
	a.B1.SetZero()
	a.B2.SetZero()
	return a
}

func (a *Fp6) SetOne() *Fp6 {
	a.B0.SetOne()
	a.B1.SetZero()
	a.B2.SetZero()
	return a
}

func (a *Fp6) Copy(b *Fp6) *Fp6 {
	a.B0.Copy(&b.B0)
	a.B1.Copy(&b.B1)
	a.B2.Copy(&b.B2)
	return a
}

func (a *Fp6) IsZero() bool { return a.B0.IsZero() && a.B1.IsZero() && a.B2.IsZero() }

func (a *Fp6) Equal(b *Fp6) bool {
	return a.B0.Equal(&b.B0) && a.B1.Equal(&b.B1) && a.B2.Equal(&b.B2)
}

func (a *Fp6) Rand(r io.Reader) (*Fp6, error) {
	if _, err := a.B0.Rand(r); err != nil {
		return nil, err
	}
	if _, err := a.B1.Rand(r); err != nil {
		return nil, err
	}
	if _, err := a.B2.Rand(r); err != nil {
		return nil, err
	}
	return a, nil
}

func Fp6Add(c, a, b *Fp6) {
	Fp2Add(&c.B0, &a.B0, &b.B0)
	Fp2Add(&c.B1, &a.B1, &b.B1)
	Fp2Add(&c.B2, &a.B2, &b.B2)
}

func Fp6Sub(c, a, b *Fp6) {
	Fp2Sub(&c.B0, &a.B0, &b.B0)
	Fp2Sub(&c.B1, &a.B1, &b.B1)
	Fp2Sub(&c.B2, &a.B2, &b.B2)
}

func Fp6Neg(c, a *Fp6) {
	Fp2Neg(&c.B0, &a.B0)
	Fp2Neg(&c.B1, &a.B1)
	Fp2Neg(&c.B2, &a.B2)
}

func Fp6Double(c, a *Fp6) {
	Fp2Double(&c.B0, &a.B0)
	Fp2Double(&c.B1, &a.B1)
	Fp2Double(&c.B2, &a.B2)
}

// Fp6Conjugate negates the b1 component, the Fp2-Frobenius restricted to Fp6.
func Fp6Conjugate(c, a *Fp6) {
	c.B0.Copy(&a.B0)
	Fp2Neg(&c.B1, &a.B1)
	c.B2.Copy(&a.B2)
}

// Fp6MulArt computes c = a*v: c0 = xi*a2, c1 = a0, c2 = a1.
func Fp6MulArt(c, a *Fp6) error {
	var t0, t1, t2 Fp2
	t1.Copy(&a.B0)
	t2.Copy(&a.B1)
	if err := Fp2MulNor(&t0, &a.B2); err != nil {
		return err
	}
	c.B0.Copy(&t0)
	c.B1.Copy(&t1)
	c.B2.Copy(&t2)
	return nil
}

// Fp6Mul dispatches to the configured default strategy.
func Fp6Mul(c, a, b *Fp6) error {
	if active != nil && active.strategy == StrategyLazyr {
		return Fp6MulLazyr(c, a, b)
	}
	return Fp6MulBasic(c, a, b)
}

// Fp6MulBasic is the Karatsuba schedule (6 Fp2 muls), reducing after every
// Fp2 multiplication:
//
//	t0 = a0*b0; t1 = a1*b1; t2 = a2*b2
//	c0 = t0 + xi*((a1+a2)(b1+b2) - t1 - t2)
//	c1 = (a0+a1)(b0+b1) - t0 - t1 + xi*t2
//	c2 = (a0+a2)(b0+b2) - t0 - t2 + t1
func Fp6MulBasic(c, a, b *Fp6) error {
	var t0, t1, t2 Fp2
	Fp2Mul(&t0, &a.B0, &b.B0)
	Fp2Mul(&t1, &a.B1, &b.B1)
	Fp2Mul(&t2, &a.B2, &b.B2)

	var s0, s1, s2 Fp2
	Fp2Add(&s0, &a.B1, &a.B2)
	Fp2Add(&s1, &b.B1, &b.B2)
	Fp2Mul(&s2, &s0, &s1)
	Fp2Sub(&s2, &s2, &t1)
	Fp2Sub(&s2, &s2, &t2)
	var nrS2 Fp2
	if err := Fp2MulNor(&nrS2, &s2); err != nil {
		return err
	}
	var c0 Fp2
	Fp2Add(&c0, &t0, &nrS2)

	var u0, u1, u2 Fp2
	Fp2Add(&u0, &a.B0, &a.B1)
	Fp2Add(&u1, &b.B0, &b.B1)
	Fp2Mul(&u2, &u0, &u1)
	Fp2Sub(&u2, &u2, &t0)
	Fp2Sub(&u2, &u2, &t1)
	var nrT2 Fp2
	if err := Fp2MulNor(&nrT2, &t2); err != nil {
		return err
	}
	var c1 Fp2
	Fp2Add(&c1, &u2, &nrT2)

	var v0, v1, v2 Fp2
	Fp2Add(&v0, &a.B0, &a.B2)
	Fp2Add(&v1, &b.B0, &b.B2)
	Fp2Mul(&v2, &v0, &v1)
	Fp2Sub(&v2, &v2, &t0)
	Fp2Sub(&v2, &v2, &t2)
	var c2 Fp2
	Fp2Add(&c2, &t1, &v2)

	c.B0.Copy(&c0)
	c.B1.Copy(&c1)
	c.B2.Copy(&c2)
	return nil
}

// Fp6MulLazyr computes the same product with the same schedule, forming each
// of the six Fp2 products with Fp2MulLazyr (one reduction per Fp limb inside
// each product). Every Fp2 product is reduced before the additions and the
// xi multiplications; no double-width accumulator is carried across Fp2
// products.
func Fp6MulLazyr(c, a, b *Fp6) error {
	var t0, t1, t2 Fp2
	Fp2MulLazyr(&t0, &a.B0, &b.B0)
	Fp2MulLazyr(&t1, &a.B1, &b.B1)
	Fp2MulLazyr(&t2, &a.B2, &b.B2)

	var s0, s1, s2 Fp2
	Fp2Add(&s0, &a.B1, &a.B2)
	Fp2Add(&s1, &b.B1, &b.B2)
	Fp2MulLazyr(&s2, &s0, &s1)
	Fp2Sub(&s2, &s2, &t1)
	Fp2Sub(&s2, &s2, &t2)
	var nrS2 Fp2
	if err := Fp2MulNor(&nrS2, &s2); err != nil {
		return err
	}
	var c0 Fp2
	Fp2Add(&c0, &t0, &nrS2)

	var u0, u1, u2 Fp2
	Fp2Add(&u0, &a.B0, &a.B1)
	Fp2Add(&u1, &b.B0, &b.B1)
	Fp2MulLazyr(&u2, &u0, &u1)
	Fp2Sub(&u2, &u2, &t0)
	Fp2Sub(&u2, &u2, &t1)
	var nrT2 Fp2
	if err := Fp2MulNor(&nrT2, &t2); err != nil {
		return err
	}
	var c1 Fp2
	Fp2Add(&c1, &u2, &nrT2)

	var v0, v1, v2 Fp2
	Fp2Add(&v0, &a.B0, &a.B2)
	Fp2Add(&v1, &b.B0, &b.B2)
	Fp2MulLazyr(&v2, &v0, &v1)
	Fp2Sub(&v2, &v2, &t0)
	Fp2Sub(&v2, &v2, &t2)
	var c2 Fp2
	Fp2Add(&c2, &t1, &v2)

	c.B0.Copy(&c0)
	c.B1.Copy(&c1)
	c.B2.Copy(&c2)
	return nil
}

// Fp6Square is the Chung-Hasan SQR3 schedule (two muls, three squarings):
//
//	s0 = a0^2; s1 = 2*a0*a1; s2 = (a0-a1+a2)^2; s3 = 2*a1*a2; s4 = a2^2
//	c0 = s0 + xi*s3; c1 = s1 + xi*s4; c2 = s1 + s2 + s3 - s0 - s4
func Fp6Square(c, a *Fp6) error {
	var s0, s1, s2, s3, s4 Fp2
	Fp2Square(&s0, &a.B0)

	Fp2Mul(&s1, &a.B0, &a.B1)
	Fp2Double(&s1, &s1)

	var tmp Fp2
	Fp2Sub(&tmp, &a.B0, &a.B1)
	Fp2Add(&tmp, &tmp, &a.B2)
	Fp2Square(&s2, &tmp)

	Fp2Mul(&s3, &a.B1, &a.B2)
	Fp2Double(&s3, &s3)

	Fp2Square(&s4, &a.B2)

	var nrS3, nrS4 Fp2
	if err := Fp2MulNor(&nrS3, &s3); err != nil {
		return err
	}
	if err := Fp2MulNor(&nrS4, &s4); err != nil {
		return err
	}

	var c0, c1, c2 Fp2
	Fp2Add(&c0, &s0, &nrS3)
	Fp2Add(&c1, &s1, &nrS4)
	Fp2Add(&c2, &s1, &s2)
	Fp2Add(&c2, &c2, &s3)
	Fp2Sub(&c2, &c2, &s0)
	Fp2Sub(&c2, &c2, &s4)

	c.B0.Copy(&c0)
	c.B1.Copy(&c1)
	c.B2.Copy(&c2)
	return nil
}

// Fp6MulBySparse01 multiplies by a two-term sparse element (b0, b1, 0), the
// shape a Miller-loop line function produces.
func Fp6MulBySparse01(c, a *Fp6, b0, b1 *Fp2) error {
	var t0, t1 Fp2
	Fp2Mul(&t0, &a.B0, b0)
	Fp2Mul(&t1, &a.B1, b1)

	var s2 Fp2
	Fp2Add(&s2, &a.B1, &a.B2)
	Fp2Mul(&s2, &s2, b1)
	Fp2Sub(&s2, &s2, &t1)
	var nrS2 Fp2
	if err := Fp2MulNor(&nrS2, &s2); err != nil {
		return err
	}

	var s3 Fp2
	Fp2Add(&s3, &a.B0, &a.B2)
	Fp2Mul(&s3, &s3, b0)
	Fp2Sub(&s3, &s3, &t0)

	var s4 Fp2
	Fp2Add(&s4, b0, b1)
	var s5 Fp2
	Fp2Add(&s5, &a.B0, &a.B1)
	Fp2Mul(&s4, &s4, &s5)
	Fp2Sub(&s4, &s4, &t0)

	var c0, c1, c2 Fp2
	Fp2Add(&c0, &nrS2, &t0)
	Fp2Sub(&c1, &s4, &t1)
	Fp2Add(&c2, &s3, &t1)

	c.B0.Copy(&c0)
	c.B1.Copy(&c1)
	c.B2.Copy(&c2)
	return nil
}

// Fp6Frobenius writes c = frb(a, power), applying the Fp2-Frobenius
// component-wise and then scaling b1/b2 by the precomputed constants gamma1,
// gamma2 for the given power (mod 6).
func Fp6Frobenius(c, a *Fp6, power uint) error {
	if err := requireActive(); err != nil {
		return err
	}
	Fp2Frobenius(&c.B0, &a.B0, power)
	Fp2Frobenius(&c.B1, &a.B1, power)
	Fp2Frobenius(&c.B2, &a.B2, power)
	idx := power % 6
	if idx == 0 {
		return nil
	}
	Fp2Mul(&c.B1, &c.B1, active.frobeniusGamma1[idx-1])
	Fp2Mul(&c.B2, &c.B2, active.frobeniusGamma2[idx-1])
	return nil
}

// Fp6Exp computes c = a^e by square-and-multiply.
func Fp6Exp(c, a *Fp6, e *big.Int) error {
	z := new(Fp6).SetOne()
	for i := e.BitLen() - 1; i >= 0; i-- {
		if err := Fp6Square(z, z); err != nil {
			return err
		}
		if e.Bit(i) == 1 {
			if err := Fp6Mul(z, z, a); err != nil {
				return err
			}
		}
	}
	c.Copy(z)
	return nil
}

// Fp6Inverse writes c = a^-1 using the tower formula: one Fp2 inversion plus
// nine Fp2 multiplications.
func Fp6Inverse(c, a *Fp6) error {
	if a.IsZero() {
		return ErrZeroInverse
	}
	var t0, t1, t2, t3, t4 Fp2

	Fp2Square(&t0, &a.B0)
	Fp2Mul(&t1, &a.B1, &a.B2)
	var nrT1 Fp2
	if err := Fp2MulNor(&nrT1, &t1); err != nil {
		return err
	}
	Fp2Sub(&t0, &t0, &nrT1)

	Fp2Square(&t1, &a.B1)
	Fp2Mul(&t2, &a.B0, &a.B2)
	Fp2Sub(&t1, &t1, &t2)

	Fp2Square(&t2, &a.B2)
	var nrT2 Fp2
	if err := Fp2MulNor(&nrT2, &t2); err != nil {
		return err
	}
	t2 = nrT2
	Fp2Mul(&t3, &a.B0, &a.B1)
	Fp2Sub(&t2, &t2, &t3)

	Fp2Mul(&t3, &a.B2, &t2)
	Fp2Mul(&t4, &a.B1, &t1)
	Fp2Add(&t3, &t3, &t4)
	var nrT3 Fp2
	if err := Fp2MulNor(&nrT3, &t3); err != nil {
		return err
	}
	t3 = nrT3
	Fp2Mul(&t4, &a.B0, &t0)
	Fp2Add(&t3, &t3, &t4)

	if err := Fp2Inverse(&t3, &t3); err != nil {
		return err
	}

	Fp2Mul(&c.B0, &t0, &t3)
	Fp2Mul(&c.B1, &t2, &t3)
	Fp2Mul(&c.B2, &t1, &t3)
	return nil
}
