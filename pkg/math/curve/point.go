package curve

import (
	"encoding/hex"
	"io"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
)

// Point is an element of the secp256k1 group.
//
// The zero value is the identity. Methods which only read a Point never modify
// it, so a Point may be shared between goroutines as long as nobody writes to it.
type Point struct {
	p secp256k1.JacobianPoint
}

var (
	baseX secp256k1.FieldVal
	baseY secp256k1.FieldVal
)

// NewBasePoint returns a point initialized to the canonical generator G.
func NewBasePoint() *Point {
	var v Point
	v.p.X.Set(&baseX)
	v.p.Y.Set(&baseY)
	v.p.Z.SetInt(1)
	return &v
}

// NewIdentityPoint returns the identity point ∞.
func NewIdentityPoint() *Point {
	return &Point{}
}

// Set sets v = u, and returns v.
func (v *Point) Set(u *Point) *Point {
	v.p.Set(&u.p)
	return v
}

// Add sets v = p + q, and returns v.
func (v *Point) Add(p, q *Point) *Point {
	var r secp256k1.JacobianPoint
	secp256k1.AddNonConst(&p.p, &q.p, &r)
	v.p.Set(&r)
	return v
}

// Subtract sets v = p - q, and returns v.
func (v *Point) Subtract(p, q *Point) *Point {
	var qNeg Point
	qNeg.Negate(q)
	return v.Add(p, &qNeg)
}

// Negate sets v = -p, and returns v.
func (v *Point) Negate(p *Point) *Point {
	v.Set(p)
	v.p.Y.Normalize().Negate(1).Normalize()
	return v
}

// ScalarBaseMult sets v = x⋅G, and returns v.
func (v *Point) ScalarBaseMult(x *Scalar) *Point {
	if x.IsZero() {
		v.p = secp256k1.JacobianPoint{}
		return v
	}
	var r secp256k1.JacobianPoint
	secp256k1.ScalarBaseMultNonConst(&x.s, &r)
	v.p.Set(&r)
	return v
}

// ScalarMult sets v = x⋅q, and returns v.
func (v *Point) ScalarMult(x *Scalar, q *Point) *Point {
	if x.IsZero() || q.IsIdentity() {
		v.p = secp256k1.JacobianPoint{}
		return v
	}
	var r secp256k1.JacobianPoint
	secp256k1.ScalarMultNonConst(&x.s, &q.p, &r)
	v.p.Set(&r)
	return v
}

// Equal returns true if v and u are the same group element.
func (v *Point) Equal(u *Point) bool {
	vID, uID := v.IsIdentity(), u.IsIdentity()
	if vID || uID {
		return vID && uID
	}
	a, b := v.affine(), u.affine()
	return a.X.Equals(&b.X) && a.Y.Equals(&b.Y)
}

// IsIdentity returns true if the point is ∞.
func (v *Point) IsIdentity() bool {
	x, y, z := v.p.X, v.p.Y, v.p.Z
	x.Normalize()
	y.Normalize()
	z.Normalize()
	return (x.IsZero() && y.IsZero()) || z.IsZero()
}

// WriteTo implements io.WriterTo, and is what the challenge hash consumes.
//
// It writes the SEC1 uncompressed encoding 0x04 ∥ X ∥ Y (65 bytes),
// or the single byte 0x00 for the identity.
func (v *Point) WriteTo(w io.Writer) (int64, error) {
	var buf []byte
	if v.IsIdentity() {
		buf = []byte{0x00}
	} else {
		buf = v.uncompressed()
	}
	n, err := w.Write(buf)
	return int64(n), err
}

// affine returns a normalized affine copy of v, leaving v untouched.
func (v *Point) affine() secp256k1.JacobianPoint {
	var a secp256k1.JacobianPoint
	a.Set(&v.p)
	a.ToAffine()
	return a
}

func init() {
	Gx, _ := hex.DecodeString("79be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798")
	Gy, _ := hex.DecodeString("483ada7726a3c4655da4fbfc0e1108a8fd17b448a68554199c47d08ffb10d4b8")
	baseX.SetByteSlice(Gx)
	baseY.SetByteSlice(Gy)
}
