package curve

import (
	"encoding/hex"

	"github.com/cronokirby/saferith"
	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/taurusgroup/dlog-proof/internal/params"
)

// orderHex is n, the order of the secp256k1 group.
const orderHex = "fffffffffffffffffffffffffffffffebaaedce6af48a03bbfd25e8cd0364141"

var order *saferith.Modulus

func init() {
	orderBytes, _ := hex.DecodeString(orderHex)
	order = saferith.ModulusFromBytes(orderBytes)
}

// Order returns n, the order of the secp256k1 group.
func Order() *saferith.Modulus {
	return order
}

// Scalar is an integer mod n, always held in canonical form.
//
// The zero value is the scalar 0.
type Scalar struct {
	s secp256k1.ModNScalar
}

// NewScalar returns a new zero Scalar.
func NewScalar() *Scalar {
	return &Scalar{}
}

// NewScalarUInt32 returns a new Scalar set to x.
func NewScalarUInt32(x uint32) *Scalar {
	var s Scalar
	s.s.SetInt(x)
	return &s
}

// MultiplyAdd sets s = x * y + z mod n, and returns s.
func (s *Scalar) MultiplyAdd(x, y, z *Scalar) *Scalar {
	var r secp256k1.ModNScalar
	r.Mul2(&x.s, &y.s).Add(&z.s)
	s.s.Set(&r)
	return s
}

// Add sets s = x + y mod n, and returns s.
func (s *Scalar) Add(x, y *Scalar) *Scalar {
	s.s.Add2(&x.s, &y.s)
	return s
}

// Multiply sets s = x * y mod n, and returns s.
func (s *Scalar) Multiply(x, y *Scalar) *Scalar {
	s.s.Mul2(&x.s, &y.s)
	return s
}

// Negate sets s = -x mod n, and returns s.
func (s *Scalar) Negate(x *Scalar) *Scalar {
	s.s.NegateVal(&x.s)
	return s
}

// Set sets s = x, and returns s.
func (s *Scalar) Set(x *Scalar) *Scalar {
	s.s.Set(&x.s)
	return s
}

// SetNat sets s = x mod n, and returns s.
//
// x may be arbitrarily large, the reduction is always performed.
func (s *Scalar) SetNat(x *saferith.Nat) *Scalar {
	reduced := new(saferith.Nat).Mod(x, order)
	buf := make([]byte, params.BytesScalar)
	reduced.FillBytes(buf)
	s.s.SetByteSlice(buf)
	return s
}

// FromDigest interprets a hash digest as a big-endian integer and reduces it mod n.
//
// Digests of 32 bytes may be >= n, so this never fails where a canonical
// decoding would.
func FromDigest(digest []byte) *Scalar {
	return NewScalar().SetNat(new(saferith.Nat).SetBytes(digest))
}

// Equal returns true if s and x represent the same value mod n.
func (s *Scalar) Equal(x *Scalar) bool {
	return s.s.Equals(&x.s)
}

// IsZero returns true if s = 0.
func (s *Scalar) IsZero() bool {
	return s.s.IsZero()
}
