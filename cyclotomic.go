package towerfield

import (
	"math/big"
	"sort"
)

// CompressedCyc holds the four Karabina-compressed coordinates {g2,g3,g4,g5}
// of a cyclotomic Fp12 element; g0 and g1 are recoverable from these four
// (BackCyc) whenever the element being compressed arose from ConvCyc.
type CompressedCyc struct {
	G2, G3, G4, G5 Fp2
}

// split reads the six re-indexed coordinates (g0..g5) spec.md's cyclotomic
// subsystem uses: g0=c0[0], g1=c1[1], g2=c0[1], g3=c1[0], g4=c0[2], g5=c1[2].
func split(a *Fp12) (g0, g1, g2, g3, g4, g5 Fp2) {
	g0.Copy(&a.C0.B0)
	g1.Copy(&a.C1.B1)
	g2.Copy(&a.C0.B1)
	g3.Copy(&a.C1.B0)
	g4.Copy(&a.C0.B2)
	g5.Copy(&a.C1.B2)
	return
}

func assemble(c *Fp12, g0, g1, g2, g3, g4, g5 *Fp2) {
	c.C0.B0.Copy(g0)
	c.C1.B1.Copy(g1)
	c.C0.B1.Copy(g2)
	c.C1.B0.Copy(g3)
	c.C0.B2.Copy(g4)
	c.C1.B2.Copy(g5)
}

// CyclotomicSquare computes c = a^2 assuming a is cyclotomic (Granger-Scott
// squaring). Re-uses fp4Square three times on the re-indexed coordinates;
// this is the same schedule as the original relic_fp12_sqr.c's fp12_sqr2,
// generalized off builtin BLS12-381 constants. The two temporaries RELIC's
// fp4_mul_unr frees with mismatched fp2_free/dv2_free calls (spec.md's
// Design Notes open question) are here just Fp2 values of one declared
// kind throughout, since this facade carries no separate unreduced type
// at the Fp2 level.
func CyclotomicSquare(c, a *Fp12) error {
	g0, g1, g2, g3, g4, g5 := split(a)

	var t3, t4 Fp2
	if err := fp4Square(&t3, &t4, &g0, &g1); err != nil {
		return err
	}
	var t2, newG0, newG1 Fp2
	Fp2Sub(&t2, &t3, &g0)
	Fp2Double(&t2, &t2)
	Fp2Add(&newG0, &t2, &t3)
	Fp2Add(&t2, &t4, &g1)
	Fp2Double(&t2, &t2)
	Fp2Add(&newG1, &t2, &t4)

	newG2, newG3, newG4, newG5, err := squareCompressedCore(&g2, &g3, &g4, &g5)
	if err != nil {
		return err
	}

	assemble(c, &newG0, &newG1, newG2, newG3, newG4, newG5)
	return nil
}

// squareCompressedCore is the half of Granger-Scott squaring that only
// touches (g2,g3,g4,g5) — exactly the part Karabina's compressed squaring
// keeps, since the evolution of these four coordinates under cyclotomic
// squaring never depends on g0,g1.
func squareCompressedCore(g2, g3, g4, g5 *Fp2) (newG2, newG3, newG4, newG5 *Fp2, err error) {
	var t3, t4, t5, t6 Fp2
	if err := fp4Square(&t3, &t4, g3, g4); err != nil {
		return nil, nil, nil, nil, err
	}
	if err := fp4Square(&t5, &t6, g2, g5); err != nil {
		return nil, nil, nil, nil, err
	}

	var t2 Fp2
	newG2 = new(Fp2)
	Fp2Sub(&t2, &t3, g2)
	Fp2Double(&t2, &t2)
	Fp2Add(newG2, &t2, &t3)

	newG5 = new(Fp2)
	Fp2Add(&t2, &t4, g5)
	Fp2Double(&t2, &t2)
	Fp2Add(newG5, &t2, &t4)

	var nrT6 Fp2
	if err2 := Fp2MulNor(&nrT6, &t6); err2 != nil {
		return nil, nil, nil, nil, err2
	}
	newG3 = new(Fp2)
	Fp2Add(&t2, &nrT6, g3)
	Fp2Double(&t2, &t2)
	Fp2Add(newG3, &t2, &nrT6)

	newG4 = new(Fp2)
	Fp2Sub(&t2, &t5, g4)
	Fp2Double(&t2, &t2)
	Fp2Add(newG4, &t2, &t5)

	return newG2, newG3, newG4, newG5, nil
}

// CyclotomicSquareCompressed (sqr_pck) computes only the four compressed
// coordinates of a^2, skipping g0,g1 entirely.
func CyclotomicSquareCompressed(c *CompressedCyc, a *CompressedCyc) error {
	g2, g3, g4, g5, err := squareCompressedCore(&a.G2, &a.G3, &a.G4, &a.G5)
	if err != nil {
		return err
	}
	c.G2, c.G3, c.G4, c.G5 = *g2, *g3, *g4, *g5
	return nil
}

func compress(a *Fp12) *CompressedCyc {
	_, _, g2, g3, g4, g5 := split(a)
	return &CompressedCyc{G2: g2, G3: g3, G4: g4, G5: g5}
}

// BackCyc (back_cyc) reconstructs the full cyclotomic element from its four
// compressed coordinates, per spec.md's two-case closed form.
func BackCyc(c *Fp12, comp *CompressedCyc) error {
	// The closed form below names its inputs by Karabina's roles, which sit
	// in these slots of this tower's layout: role g2 = c1[0] (G3), role
	// g3 = c0[2] (G4), role g4 = c0[1] (G2), role g5 = c1[2] (G5).
	g2, g3, g4, g5 := &comp.G3, &comp.G4, &comp.G2, &comp.G5

	var g0, g1 Fp2
	if !g2.IsZero() {
		// g1 = (g5^2*xi + 3*g4^2 - 2*g3) / (4*g2)
		var g5sq, g4sq Fp2
		Fp2Square(&g5sq, g5)
		Fp2Square(&g4sq, g4)
		var nrG5sq Fp2
		if err := Fp2MulNor(&nrG5sq, &g5sq); err != nil {
			return err
		}
		var threeG4sq Fp2
		Fp2Double(&threeG4sq, &g4sq)
		Fp2Add(&threeG4sq, &threeG4sq, &g4sq)
		var twoG3 Fp2
		Fp2Double(&twoG3, g3)

		var num Fp2
		Fp2Add(&num, &nrG5sq, &threeG4sq)
		Fp2Sub(&num, &num, &twoG3)

		var fourG2 Fp2
		Fp2Double(&fourG2, g2)
		Fp2Double(&fourG2, &fourG2)
		var fourG2Inv Fp2
		if err := Fp2Inverse(&fourG2Inv, &fourG2); err != nil {
			return err
		}
		Fp2Mul(&g1, &num, &fourG2Inv)

		// g0 = (2*g1^2 + g2*g5 - 3*g3*g4)*xi + 1
		var g1sq Fp2
		Fp2Square(&g1sq, &g1)
		Fp2Double(&g1sq, &g1sq)
		var g2g5 Fp2
		Fp2Mul(&g2g5, g2, g5)
		var g3g4 Fp2
		Fp2Mul(&g3g4, g3, g4)
		var threeG3g4 Fp2
		Fp2Double(&threeG3g4, &g3g4)
		Fp2Add(&threeG3g4, &threeG3g4, &g3g4)

		var inner Fp2
		Fp2Add(&inner, &g1sq, &g2g5)
		Fp2Sub(&inner, &inner, &threeG3g4)
		var nrInner Fp2
		if err := Fp2MulNor(&nrInner, &inner); err != nil {
			return err
		}
		var one Fp2
		one.SetOne()
		Fp2Add(&g0, &nrInner, &one)
	} else {
		// g1 = 2*g4*g5 / g3
		var num Fp2
		Fp2Mul(&num, g4, g5)
		Fp2Double(&num, &num)
		var g3Inv Fp2
		if err := Fp2Inverse(&g3Inv, g3); err != nil {
			return err
		}
		Fp2Mul(&g1, &num, &g3Inv)

		var g1sq Fp2
		Fp2Square(&g1sq, &g1)
		Fp2Double(&g1sq, &g1sq)
		var g3g4 Fp2
		Fp2Mul(&g3g4, g3, g4)
		var threeG3g4 Fp2
		Fp2Double(&threeG3g4, &g3g4)
		Fp2Add(&threeG3g4, &threeG3g4, &g3g4)

		var inner Fp2
		Fp2Sub(&inner, &g1sq, &threeG3g4)
		var nrInner Fp2
		if err := Fp2MulNor(&nrInner, &inner); err != nil {
			return err
		}
		var one Fp2
		one.SetOne()
		Fp2Add(&g0, &nrInner, &one)
	}

	assemble(c, &g0, &g1, &comp.G2, &comp.G3, &comp.G4, &comp.G5)
	return nil
}

// BackCycSim decompresses n compressed elements using one batch Fp2
// inversion instead of n independent ones.
func BackCycSim(out []*Fp12, in []*CompressedCyc) error {
	n := len(in)
	if n == 0 {
		return nil
	}
	denoms := make([]*Fp2, n)
	for i, comp := range in {
		d := new(Fp2)
		if !comp.G3.IsZero() {
			Fp2Double(d, &comp.G3)
			Fp2Double(d, d)
		} else {
			d.Copy(&comp.G4)
		}
		denoms[i] = d
	}
	invs := make([]*Fp2, n)
	if err := Fp2InvSim(invs, denoms); err != nil {
		return err
	}
	for i, comp := range in {
		full, err := backCycWithInverse(comp, invs[i])
		if err != nil {
			return err
		}
		out[i] = full
	}
	return nil
}

func backCycWithInverse(comp *CompressedCyc, denomInv *Fp2) (*Fp12, error) {
	// Re-derive BackCyc's two branches, substituting the pre-inverted
	// denominator supplied by the batch (Montgomery) inversion. Same role
	// assignment as BackCyc.
	g2, g3, g4, g5 := &comp.G3, &comp.G4, &comp.G2, &comp.G5
	var g0, g1 Fp2
	if !g2.IsZero() {
		var g5sq, g4sq Fp2
		Fp2Square(&g5sq, g5)
		Fp2Square(&g4sq, g4)
		var nrG5sq Fp2
		if err := Fp2MulNor(&nrG5sq, &g5sq); err != nil {
			return nil, err
		}
		var threeG4sq Fp2
		Fp2Double(&threeG4sq, &g4sq)
		Fp2Add(&threeG4sq, &threeG4sq, &g4sq)
		var twoG3 Fp2
		Fp2Double(&twoG3, g3)
		var num Fp2
		Fp2Add(&num, &nrG5sq, &threeG4sq)
		Fp2Sub(&num, &num, &twoG3)
		Fp2Mul(&g1, &num, denomInv)
	} else {
		var num Fp2
		Fp2Mul(&num, g4, g5)
		Fp2Double(&num, &num)
		Fp2Mul(&g1, &num, denomInv)
	}

	var g1sq Fp2
	Fp2Square(&g1sq, &g1)
	Fp2Double(&g1sq, &g1sq)
	var g3g4 Fp2
	Fp2Mul(&g3g4, g3, g4)
	var threeG3g4 Fp2
	Fp2Double(&threeG3g4, &g3g4)
	Fp2Add(&threeG3g4, &threeG3g4, &g3g4)

	var inner Fp2
	if !g2.IsZero() {
		var g2g5 Fp2
		Fp2Mul(&g2g5, g2, g5)
		Fp2Add(&inner, &g1sq, &g2g5)
		Fp2Sub(&inner, &inner, &threeG3g4)
	} else {
		Fp2Sub(&inner, &g1sq, &threeG3g4)
	}
	var nrInner Fp2
	if err := Fp2MulNor(&nrInner, &inner); err != nil {
		return nil, err
	}
	var one Fp2
	one.SetOne()
	Fp2Add(&g0, &nrInner, &one)

	c := new(Fp12)
	assemble(c, &g0, &g1, &comp.G2, &comp.G3, &comp.G4, &comp.G5)
	return c, nil
}

// ConvCyc (conv_cyc) raises an arbitrary Fp12 element to (p^6-1)(p^2+1),
// landing it in the cyclotomic subgroup. This is exactly the "easy part" of
// a BLS final exponentiation (grounded on the teacher's pairing.go finalExp
// opening sequence): m = frb(a,6)*a^-1, result = frb(m,2)*m.
func ConvCyc(c, a *Fp12) error {
	var t0 Fp12
	if err := Fp12Frobenius(&t0, a, 6); err != nil {
		return err
	}
	var t1 Fp12
	if err := Fp12Inverse(&t1, a); err != nil {
		return err
	}
	var m Fp12
	if err := Fp12Mul(&m, &t0, &t1); err != nil {
		return err
	}
	var t2 Fp12
	if err := Fp12Frobenius(&t2, &m, 2); err != nil {
		return err
	}
	if err := Fp12Mul(c, &t2, &m); err != nil {
		return err
	}
	return nil
}

// TestCyc (test_cyc) reports whether a^(Phi12(p)) = 1, Phi12(x) = x^4-x^2+1.
func TestCyc(a *Fp12) (bool, error) {
	if err := requireActive(); err != nil {
		return false, err
	}
	p := active.prime
	p2 := new(big.Int).Mul(p, p)
	p4 := new(big.Int).Mul(p2, p2)
	e := new(big.Int).Sub(p4, p2)
	e.Add(e, big.NewInt(1))
	var r Fp12
	if err := Fp12Exp(&r, a, e); err != nil {
		return false, err
	}
	var one Fp12
	one.SetOne()
	return r.Equal(&one), nil
}

// ExpCyc (exp_cyc) computes a^e for a cyclotomic element using cyclotomic
// squaring in the square-and-multiply loop.
func ExpCyc(c, a *Fp12, e *big.Int) error {
	z := new(Fp12).SetOne()
	for i := e.BitLen() - 1; i >= 0; i-- {
		if err := CyclotomicSquare(z, z); err != nil {
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

// ExpCycSparse (exp_cyc_sps) computes a^e for a cyclotomic element, given e
// as its ascending sorted set-bit positions, using compressed squarings
// across the gap between consecutive set bits and decompressing only when a
// multiplication is due (spec.md's Compressed/Full state machine, 4.6).
func ExpCycSparse(c, a *Fp12, setBits []int) error {
	n := len(setBits)
	if n == 0 {
		c.SetOne()
		return nil
	}
	sorted := append([]int(nil), setBits...)
	sort.Ints(sorted)

	// Seed the accumulator at the top set bit directly from a's own
	// compressed form instead of squaring up from the identity: the
	// identity's compressed coordinates are all zero, and BackCyc's g2=0
	// branch divides by g3, which is also zero there. Starting from a
	// sidesteps that degenerate decompression entirely.
	comp := compress(a)
	prevPos := sorted[n-1]
	for i := n - 2; i >= 0; i-- {
		pos := sorted[i]
		for k := 0; k < prevPos-pos; k++ {
			if err := CyclotomicSquareCompressed(comp, comp); err != nil {
				return err
			}
		}
		full, err := BackCyc2(comp)
		if err != nil {
			return err
		}
		if err := Fp12Mul(full, full, a); err != nil {
			return err
		}
		comp = compress(full)
		prevPos = pos
	}
	for k := 0; k < prevPos; k++ {
		if err := CyclotomicSquareCompressed(comp, comp); err != nil {
			return err
		}
	}
	full, err := BackCyc2(comp)
	if err != nil {
		return err
	}
	c.Copy(full)
	return nil
}

// BackCyc2 is BackCyc returning a freshly allocated element, used internally
// by the sparse-exponent state machine where the compressed/full transition
// happens repeatedly within a single call.
func BackCyc2(comp *CompressedCyc) (*Fp12, error) {
	full := new(Fp12)
	if err := BackCyc(full, comp); err != nil {
		return nil, err
	}
	return full, nil
}
