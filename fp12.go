package towerfield

import (
	"io"
	"math/big"
)

// Fp12 is an element c0 + c1*w of Fp6[w]/(w^2 - v), addressable either as
// two Fp6 components or, for the cyclotomic subsystem, as a 2x3 matrix of
// Fp2 components: [[c0[0],c0[1],c0[2]],[c1[0],c1[1],c1[2]]].
type Fp12 struct {
	C0, C1 Fp6
}

func NewFp12() *Fp12 { return &Fp12{} }

func (a *Fp12) SetZero() *Fp12 {
	a.C0.SetZero()
	a.C1.SetZero()
	return a
}

func (a *Fp12) SetOne() *Fp12 {
	a.C0.SetOne()
	a.C1.SetZero()
	return a
}

func (a *Fp12) Copy(b *Fp12) *Fp12 {
	a.C0.Copy(&b.C0)
	a.C1.Copy(&b.C1)
	return a
}

func (a *Fp12) IsZero() bool { return a.C0.IsZero() && a.C1.IsZero() }

func (a *Fp12) Equal(b *Fp12) bool { return a.C0.Equal(&b.C0) && a.C1.Equal(&b.C1) }

func (a *Fp12) Rand(r io.Reader) (*Fp12, error) {
	if _, err := a.C0.Rand(r); err != nil {
		return nil, err
	}
	if _, err := a.C1.Rand(r); err != nil {
		return nil, err
	}
	return a, nil
}

func Fp12Add(c, a, b *Fp12) {
	Fp6Add(&c.C0, &a.C0, &b.C0)
	Fp6Add(&c.C1, &a.C1, &b.C1)
}

func Fp12Sub(c, a, b *Fp12) {
	Fp6Sub(&c.C0, &a.C0, &b.C0)
	Fp6Sub(&c.C1, &a.C1, &b.C1)
}

func Fp12Neg(c, a *Fp12) {
	Fp6Neg(&c.C0, &a.C0)
	Fp6Neg(&c.C1, &a.C1)
}

// Fp12InvUnitary ("conj") writes c = (a0, -a1). Equals a^-1 exactly when a
// is unitary (cyclotomic subgroup or a coset of unit norm).
func Fp12InvUnitary(c, a *Fp12) {
	c.C0.Copy(&a.C0)
	Fp6Neg(&c.C1, &a.C1)
}

// Fp12Mul is the Karatsuba schedule over Fp6 (3 Fp6 muls):
//
//	t1 = a0*b0; t2 = a1*b1; t0 = t1+t2 (pre non-residue sum, kept for c1)
//	c0 = t1 + v*t2
//	c1 = (a0+a1)(b0+b1) - t0
func Fp12Mul(c, a, b *Fp12) error {
	var t1, t2 Fp6
	if err := Fp6Mul(&t1, &a.C0, &b.C0); err != nil {
		return err
	}
	if err := Fp6Mul(&t2, &a.C1, &b.C1); err != nil {
		return err
	}
	var t0 Fp6
	Fp6Add(&t0, &t1, &t2)

	var nrT2 Fp6
	if err := Fp6MulArt(&nrT2, &t2); err != nil {
		return err
	}
	var c0 Fp6
	Fp6Add(&c0, &t1, &nrT2)

	var s0, s1, s2 Fp6
	Fp6Add(&s0, &a.C0, &a.C1)
	Fp6Add(&s1, &b.C0, &b.C1)
	if err := Fp6Mul(&s2, &s0, &s1); err != nil {
		return err
	}
	var c1 Fp6
	Fp6Sub(&c1, &s2, &t0)

	c.C0.Copy(&c0)
	c.C1.Copy(&c1)
	return nil
}

// Fp12Square is the generic squaring (two Fp6 muls):
// t0=a0+a1; t1=a0+v*a1; t2=a0*a1; c0=t0*t1-t2-v*t2; c1=2*t2.
func Fp12Square(c, a *Fp12) error {
	var t0 Fp6
	Fp6Add(&t0, &a.C0, &a.C1)

	var nrA1 Fp6
	if err := Fp6MulArt(&nrA1, &a.C1); err != nil {
		return err
	}
	var t1 Fp6
	Fp6Add(&t1, &a.C0, &nrA1)

	var t2 Fp6
	if err := Fp6Mul(&t2, &a.C0, &a.C1); err != nil {
		return err
	}

	var nrT2 Fp6
	if err := Fp6MulArt(&nrT2, &t2); err != nil {
		return err
	}

	var t3 Fp6
	if err := Fp6Mul(&t3, &t0, &t1); err != nil {
		return err
	}
	Fp6Sub(&t3, &t3, &t2)
	var c0 Fp6
	Fp6Sub(&c0, &t3, &nrT2)

	var c1 Fp6
	Fp6Double(&c1, &t2)

	c.C0.Copy(&c0)
	c.C1.Copy(&c1)
	return nil
}

// fp4Square is the shared Fp4 (over Fp2, within a 2x3 Fp12 slot) squaring
// helper used three times by the Granger-Scott cyclotomic squaring in
// cyclotomic.go: (c0,c1) = (a0+s*a1)^2 decomposed back into two Fp2 limbs,
// where s^2 = xi, the Fp2 cubic non-residue (Fp2MulNor; mulByNonResidue in
// the teacher).
func fp4Square(c0, c1, a0, a1 *Fp2) error {
	var t0, t1, t2 Fp2
	Fp2Square(&t0, a0)
	Fp2Square(&t1, a1)
	if err := Fp2MulNor(&t2, &t1); err != nil {
		return err
	}
	Fp2Add(c0, &t2, &t0)

	Fp2Add(&t2, a0, a1)
	Fp2Square(&t2, &t2)
	Fp2Sub(&t2, &t2, &t0)
	Fp2Sub(c1, &t2, &t1)
	return nil
}

// Fp12Inverse writes c = a^-1 using the conjugation trick: one Fp6
// inversion plus a constant number of Fp6 squarings/muls.
func Fp12Inverse(c, a *Fp12) error {
	if a.IsZero() {
		return ErrZeroInverse
	}
	var t0, t1 Fp6
	if err := Fp6Square(&t0, &a.C0); err != nil {
		return err
	}
	if err := Fp6Square(&t1, &a.C1); err != nil {
		return err
	}
	var nrT1 Fp6
	if err := Fp6MulArt(&nrT1, &t1); err != nil {
		return err
	}
	Fp6Sub(&t1, &t0, &nrT1)
	if err := Fp6Inverse(&t0, &t1); err != nil {
		return err
	}
	if err := Fp6Mul(&c.C0, &a.C0, &t0); err != nil {
		return err
	}
	var t2 Fp6
	if err := Fp6Mul(&t2, &t0, &a.C1); err != nil {
		return err
	}
	Fp6Neg(&c.C1, &t2)
	return nil
}

// Fp12Exp computes c = a^e by square-and-multiply, MSB to LSB.
func Fp12Exp(c, a *Fp12, e *big.Int) error {
	z := new(Fp12).SetOne()
	for i := e.BitLen() - 1; i >= 0; i-- {
		if err := Fp12Square(z, z); err != nil {
			return err
		}
		if e.Bit(i) == 1 {
			if err := Fp12Mul(z, z, a); err != nil {
				return err
			}
		}
	}
	c.Copy(z)
	return nil
}

// Fp12MulBySparse014 multiplies by a sparse element whose only non-zero
// coordinates are c0[0], c0[1], c1[1] (the "014" shape line functions take
// in a Miller loop).
func Fp12MulBySparse014(a *Fp12, c0, c1, c4 *Fp2) error {
	var t0, t1 Fp6
	if err := Fp6MulBySparse01(&t0, &a.C0, c0, c1); err != nil {
		return err
	}
	var c4z Fp2
	c4z.SetZero()
	if err := Fp6MulBySparse01(&t1, &a.C1, &c4z, c4); err != nil {
		return err
	}

	var o Fp2
	Fp2Add(&o, c1, c4)

	var t2 Fp6
	Fp6Add(&t2, &a.C1, &a.C0)
	var t2Mul Fp6
	if err := Fp6MulBySparse01(&t2Mul, &t2, c0, &o); err != nil {
		return err
	}
	Fp6Sub(&t2Mul, &t2Mul, &t0)
	var newC1 Fp6
	Fp6Sub(&newC1, &t2Mul, &t1)

	var nrT1 Fp6
	if err := Fp6MulArt(&nrT1, &t1); err != nil {
		return err
	}
	var newC0 Fp6
	Fp6Add(&newC0, &nrT1, &t0)

	a.C0.Copy(&newC0)
	a.C1.Copy(&newC1)
	return nil
}

// Fp12Frobenius writes c = frb(a, power): Fp6-Frobenius on both limbs, then
// scale c1 by the precomputed Fp12 Frobenius constant for this power (mod
// 12), negating instead for power = 6 (mod 12) where the constant is exactly
// -1, and leaving c1 as is for power = 0 (mod 12).
func Fp12Frobenius(c, a *Fp12, power uint) error {
	if err := requireActive(); err != nil {
		return err
	}
	if err := Fp6Frobenius(&c.C0, &a.C0, power); err != nil {
		return err
	}
	if err := Fp6Frobenius(&c.C1, &a.C1, power); err != nil {
		return err
	}
	switch power % 12 {
	case 0:
		return nil
	case 6:
		Fp6Neg(&c.C1, &c.C1)
	default:
		gamma := active.frobeniusGamma12[(power%12)-1]
		var c10, c11, c12 Fp2
		Fp2Mul(&c10, &c.C1.B0, gamma)
		Fp2Mul(&c11, &c.C1.B1, gamma)
		Fp2Mul(&c12, &c.C1.B2, gamma)
		c.C1.B0.Copy(&c10)
		c.C1.B1.Copy(&c11)
		c.C1.B2.Copy(&c12)
	}
	return nil
}
