// Package basefield is the Fp "external collaborator" this module's tower
// arithmetic is built on: add/sub/neg/double/halve, modular mul/sqr/inverse,
// and the double-width (Wide) accumulator plus its single reduction back to
// Fp. There is no assembly backend in this tree — the vendored teacher core
// this package is modeled on dispatches at runtime between BMI2 and non-BMI2
// assembly montgomery routines, none of which ship in source form, so this
// facade is a portable math/big rendition of the same contract instead.
package basefield

import (
	"crypto/rand"
	"io"
	"math/big"
)

// Modulus is the active prime p. Set once by the owning Config at Init and
// never mutated afterward; every Element operation reduces against it.
var Modulus *big.Int

// Element is a fully-reduced value in {0, ..., p-1}.
type Element struct {
	v big.Int
}

// Wide is an unreduced double-width accumulator produced by Muln/Sqrn and
// consumed only by Rdcn. It never appears fully composed in a call that
// crosses back out of this package.
type Wide struct {
	v big.Int
}

func NewElement() *Element { return &Element{} }

func (e *Element) SetZero() *Element { e.v.SetInt64(0); return e }

func (e *Element) SetOne() *Element { e.v.SetInt64(1); return e }

func (e *Element) SetSmallInt(n int64) *Element {
	e.v.SetInt64(n)
	e.v.Mod(&e.v, Modulus)
	return e
}

func (e *Element) SetBigInt(n *big.Int) *Element {
	e.v.Mod(n, Modulus)
	return e
}

func (e *Element) BigInt() *big.Int { return new(big.Int).Set(&e.v) }

func (e *Element) IsZero() bool { return e.v.Sign() == 0 }

func (e *Element) Copy(a *Element) *Element { e.v.Set(&a.v); return e }

func (e *Element) Equal(b *Element) bool { return e.v.Cmp(&b.v) == 0 }

// Cmp orders two elements by their canonical representative; used only for
// deterministic test fixtures, never to branch on secret data.
func (e *Element) Cmp(b *Element) int { return e.v.Cmp(&b.v) }

func (e *Element) Rand(r io.Reader) (*Element, error) {
	n, err := rand.Int(r, Modulus)
	if err != nil {
		return nil, err
	}
	e.v.Set(n)
	return e, nil
}

func Add(c, a, b *Element) {
	c.v.Add(&a.v, &b.v)
	if c.v.Cmp(Modulus) >= 0 {
		c.v.Sub(&c.v, Modulus)
	}
}

func Sub(c, a, b *Element) {
	c.v.Sub(&a.v, &b.v)
	if c.v.Sign() < 0 {
		c.v.Add(&c.v, Modulus)
	}
}

func Neg(c, a *Element) {
	if a.v.Sign() == 0 {
		c.v.SetInt64(0)
		return
	}
	c.v.Sub(Modulus, &a.v)
}

func Double(c, a *Element) { Add(c, a, a) }

// Halve writes c such that c+c = a (mod p), using the precomputed inverse of
// two rather than a division.
func Halve(c, a *Element, invTwo *Element) { Mul(c, a, invTwo) }

func Mul(c, a, b *Element) {
	c.v.Mul(&a.v, &b.v)
	c.v.Mod(&c.v, Modulus)
}

func Square(c, a *Element) { Mul(c, a, a) }

// Inverse writes c = a^-1 mod p. The caller (Fp2/Fp6/Fp12 inverse routines)
// is responsible for surfacing ErrZeroInverse when a is zero; this facade
// then writes the zero element into c and returns false, matching
// math/big.Int.ModInverse's nil-on-no-inverse contract translated to a zero
// sentinel. It returns true otherwise.
func Inverse(c, a *Element) bool {
	if a.v.Sign() == 0 {
		c.v.SetInt64(0)
		return false
	}
	c.v.ModInverse(&a.v, Modulus)
	return true
}

// Muln computes the unreduced product a*b into a Wide accumulator.
func Muln(c *Wide, a, b *Element) { c.v.Mul(&a.v, &b.v) }

// Sqrn computes the unreduced square of a into a Wide accumulator.
func Sqrn(c *Wide, a *Element) { c.v.Mul(&a.v, &a.v) }

// Addc adds two Wide accumulators (double-width add, no modular correction
// needed since Wide never wraps 2p^2 in this facade's unbounded representation).
func Addc(c, a, b *Wide) { c.v.Add(&a.v, &b.v) }

// Subc subtracts two Wide accumulators, allowing a negative intermediate;
// Rdcn reduces it back into {0,...,p-1}.
func Subc(c, a, b *Wide) { c.v.Sub(&a.v, &b.v) }

func (w *Wide) Copy(a *Wide) *Wide { w.v.Set(&a.v); return w }

// Rdcn reduces a Wide accumulator to a fully-reduced Element.
func Rdcn(c *Element, a *Wide) {
	c.v.Mod(&a.v, Modulus)
}

// WideFromElement lifts a reduced element into Wide storage, used where a
// lazy-reduction schedule mixes a reduced operand into an accumulator chain.
func WideFromElement(w *Wide, a *Element) *Wide { w.v.Set(&a.v); return w }
