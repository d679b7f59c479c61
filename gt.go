package towerfield

import (
	"crypto/cipher"
	"encoding/hex"
	"io"
	"math/big"

	"github.com/drand/kyber"
	"github.com/drand/kyber/group/mod"
	"github.com/drand/kyber/util/random"
	"golang.org/x/crypto/blake2b"
)

// GT wraps a cyclotomic Fp12 element as a kyber.Point. Unlike the teacher's
// KyberGT (whose Add/Sub/Neg/Mul all panic with "GT is not a full
// kyber.Point implementation"), this one is complete: group addition is
// Fp12 multiplication, negation is unitary inversion, and scalar
// multiplication is cyclotomic exponentiation — all real operations this
// module implements, not stubs.
type GT struct {
	f *Fp12
}

func newEmptyGT() *GT { return &GT{f: new(Fp12).SetZero()} }

func (k *GT) Equal(q kyber.Point) bool { return k.f.Equal(q.(*GT).f) }

func (k *GT) Null() kyber.Point {
	k.f = new(Fp12).SetOne()
	return k
}

// Base derives a canonical generator by expanding a fixed domain-separation
// string through blake2b's XOF, the same construction the teacher's
// KyberGT.Base used, then projects it into the cyclotomic subgroup with
// ConvCyc so the result is actually usable as a GT base point.
func (k *GT) Base() kyber.Point {
	baseReader, _ := blake2b.NewXOF(0, []byte("towerfield GT base point"))
	var raw Fp12
	if _, err := raw.Rand(baseReader); err != nil {
		panic(err)
	}
	if err := ConvCyc(k.f, &raw); err != nil {
		panic(err)
	}
	return k
}

func (k *GT) Pick(rand cipher.Stream) kyber.Point {
	var raw Fp12
	if _, err := raw.Rand(cipherReader{rand}); err != nil {
		panic(err)
	}
	if err := ConvCyc(k.f, &raw); err != nil {
		panic(err)
	}
	return k
}

type cipherReader struct{ s cipher.Stream }

func (r cipherReader) Read(p []byte) (int, error) {
	r.s.XORKeyStream(p, p)
	return len(p), nil
}

func (k *GT) Set(q kyber.Point) kyber.Point {
	k.f.Copy(q.(*GT).f)
	return k
}

func (k *GT) Clone() kyber.Point {
	kk := newEmptyGT()
	kk.Set(k)
	return kk
}

func (k *GT) Add(a, b kyber.Point) kyber.Point {
	if err := Fp12Mul(k.f, a.(*GT).f, b.(*GT).f); err != nil {
		panic(err)
	}
	return k
}

func (k *GT) Sub(a, b kyber.Point) kyber.Point {
	var bInv Fp12
	Fp12InvUnitary(&bInv, b.(*GT).f)
	if err := Fp12Mul(k.f, a.(*GT).f, &bInv); err != nil {
		panic(err)
	}
	return k
}

func (k *GT) Neg(q kyber.Point) kyber.Point {
	Fp12InvUnitary(k.f, q.(*GT).f)
	return k
}

func (k *GT) Mul(s kyber.Scalar, q kyber.Point) kyber.Point {
	if q == nil {
		q = newEmptyGT().Base()
	}
	e := new(big.Int).SetBytes(mustMarshal(s))
	if err := ExpCyc(k.f, q.(*GT).f, e); err != nil {
		panic(err)
	}
	return k
}

func mustMarshal(s kyber.Scalar) []byte {
	b, err := s.MarshalBinary()
	if err != nil {
		panic(err)
	}
	return b
}

func (k *GT) MarshalBinary() ([]byte, error) {
	return fp12ToBytes(k.f), nil
}

func (k *GT) MarshalTo(w io.Writer) (int, error) {
	buf, err := k.MarshalBinary()
	if err != nil {
		return 0, err
	}
	return w.Write(buf)
}

func (k *GT) UnmarshalBinary(buf []byte) error {
	f, err := fp12FromBytes(buf)
	if err != nil {
		return err
	}
	k.f = f
	return nil
}

func (k *GT) UnmarshalFrom(r io.Reader) (int, error) {
	buf := make([]byte, k.MarshalSize())
	n, err := io.ReadFull(r, buf)
	if err != nil {
		return n, err
	}
	return n, k.UnmarshalBinary(buf)
}

// MarshalSize reports the encoded width: twelve Fp components, each padded
// to the configured prime's byte width.
func (k *GT) MarshalSize() int {
	if active == nil {
		return 0
	}
	return 12 * ((active.bits + 7) / 8)
}

func (k *GT) String() string {
	b, _ := k.MarshalBinary()
	return "towerfield.GT: " + hex.EncodeToString(b)
}

func (k *GT) EmbedLen() int {
	panic("towerfield.GT.EmbedLen(): GT has no data-embedding map")
}

func (k *GT) Embed(data []byte, rand cipher.Stream) kyber.Point {
	panic("towerfield.GT.Embed(): GT has no data-embedding map")
}

func (k *GT) Data() ([]byte, error) {
	panic("towerfield.GT.Data(): GT has no data-embedding map")
}

func elemByteLen() int { return (active.bits + 7) / 8 }

func fp12ToBytes(a *Fp12) []byte {
	n := elemByteLen()
	out := make([]byte, 0, 12*n)
	limbs := []*big.Int{
		a.C1.B2.A1.BigInt(), a.C1.B2.A0.BigInt(),
		a.C1.B1.A1.BigInt(), a.C1.B1.A0.BigInt(),
		a.C1.B0.A1.BigInt(), a.C1.B0.A0.BigInt(),
		a.C0.B2.A1.BigInt(), a.C0.B2.A0.BigInt(),
		a.C0.B1.A1.BigInt(), a.C0.B1.A0.BigInt(),
		a.C0.B0.A1.BigInt(), a.C0.B0.A0.BigInt(),
	}
	for _, v := range limbs {
		b := v.Bytes()
		padded := make([]byte, n)
		copy(padded[n-len(b):], b)
		out = append(out, padded...)
	}
	return out
}

func fp12FromBytes(in []byte) (*Fp12, error) {
	n := elemByteLen()
	if len(in) != 12*n {
		return nil, ErrInvalidEncoding
	}
	for off := 0; off < len(in); off += n {
		if new(big.Int).SetBytes(in[off:off+n]).Cmp(active.prime) >= 0 {
			return nil, ErrInvalidEncoding
		}
	}
	f := new(Fp12)
	read := func(off int) *big.Int { return new(big.Int).SetBytes(in[off : off+n]) }
	f.C1.B2.A1.SetBigInt(read(0))
	f.C1.B2.A0.SetBigInt(read(n))
	f.C1.B1.A1.SetBigInt(read(2 * n))
	f.C1.B1.A0.SetBigInt(read(3 * n))
	f.C1.B0.A1.SetBigInt(read(4 * n))
	f.C1.B0.A0.SetBigInt(read(5 * n))
	f.C0.B2.A1.SetBigInt(read(6 * n))
	f.C0.B2.A0.SetBigInt(read(7 * n))
	f.C0.B1.A1.SetBigInt(read(8 * n))
	f.C0.B1.A0.SetBigInt(read(9 * n))
	f.C0.B0.A1.SetBigInt(read(10 * n))
	f.C0.B0.A0.SetBigInt(read(11 * n))
	return f, nil
}

// GTGroup implements kyber.Group for the cyclotomic subgroup of Fp12.
type GTGroup struct {
	order *big.Int
}

// NewGTGroup builds the GT group. order is the scalar field's prime order
// (external to this core's arithmetic — a curve-parameter choice per
// spec.md's out-of-scope list); Scalar() panics if it is nil.
func NewGTGroup(order *big.Int) *GTGroup { return &GTGroup{order: order} }

func (g *GTGroup) String() string { return "towerfield.GT" }

func (g *GTGroup) Scalar() kyber.Scalar {
	if g.order == nil {
		panic("towerfield.GTGroup: no group order configured")
	}
	return mod.NewInt64(0, g.order)
}

func (g *GTGroup) ScalarLen() int { return g.Scalar().MarshalSize() }

func (g *GTGroup) PointLen() int { return g.Point().MarshalSize() }

func (g *GTGroup) Point() kyber.Point { return newEmptyGT() }

func (g *GTGroup) IsPrimeOrder() bool { return false }

func (g *GTGroup) RandomStream() cipher.Stream { return random.New() }
