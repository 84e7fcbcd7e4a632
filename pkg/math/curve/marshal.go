package curve

import (
	"errors"
	"fmt"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/taurusgroup/dlog-proof/internal/params"
)

// MarshalBinary implements encoding.BinaryMarshaler.
//
// The output is the canonical 32-byte big-endian encoding of s.
func (s *Scalar) MarshalBinary() ([]byte, error) {
	data := make([]byte, params.BytesScalar)
	s.s.PutBytesUnchecked(data)
	return data, nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
//
// data must be exactly 32 bytes, encoding an integer strictly less than n.
func (s *Scalar) UnmarshalBinary(data []byte) error {
	if len(data) != params.BytesScalar {
		return fmt.Errorf("curve.Scalar.Unmarshal: expected %d bytes, got %d", params.BytesScalar, len(data))
	}
	var scalar secp256k1.ModNScalar
	if scalar.SetByteSlice(data) {
		return errors.New("curve.Scalar.Unmarshal: scalar was >= n")
	}
	s.s.Set(&scalar)
	return nil
}

// MarshalBinary implements encoding.BinaryMarshaler.
//
// The output is the 33-byte SEC1 compressed encoding 0x02/0x03 ∥ X.
// The identity is encoded as 33 zero bytes.
func (v *Point) MarshalBinary() ([]byte, error) {
	if v == nil {
		return nil, errors.New("curve.Point.MarshalBinary: point is nil")
	}
	data := make([]byte, params.BytesPoint)
	if v.IsIdentity() {
		return data, nil
	}
	a := v.affine()
	// Choose the format byte depending on the oddness of the Y coordinate.
	data[0] = secp256k1.PubKeyFormatCompressedEven
	if a.Y.IsOdd() {
		data[0] = secp256k1.PubKeyFormatCompressedOdd
	}
	a.X.PutBytesUnchecked(data[1:])
	return data, nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
//
// It is the inverse of MarshalBinary, and rejects any x coordinate which is
// not reduced, or which is not the abscissa of a curve point.
func (v *Point) UnmarshalBinary(data []byte) error {
	if len(data) != params.BytesPoint {
		return fmt.Errorf("curve.Point.Unmarshal: expected %d bytes, got %d", params.BytesPoint, len(data))
	}
	if isZeroBytes(data) {
		v.p = secp256k1.JacobianPoint{}
		return nil
	}
	format := data[0]
	if !(format == secp256k1.PubKeyFormatCompressedOdd || format == secp256k1.PubKeyFormatCompressedEven) {
		return fmt.Errorf("curve.Point.Unmarshal: incorrect format byte 0x%02x", format)
	}

	var x, y secp256k1.FieldVal
	if overflow := x.SetByteSlice(data[1:]); overflow {
		return errors.New("curve.Point.Unmarshal: invalid point: x >= field prime")
	}
	// Attempt to calculate the y coordinate for the given x coordinate such
	// that the result pair is a point on the secp256k1 curve and the
	// solution with desired oddness is chosen.
	wantOddY := format == secp256k1.PubKeyFormatCompressedOdd
	if !secp256k1.DecompressY(&x, wantOddY, &y) {
		return errors.New("curve.Point.Unmarshal: invalid point: x coordinate is not on the secp256k1 curve")
	}
	y.Normalize()
	v.p.X.Set(&x)
	v.p.Y.Set(&y)
	v.p.Z.SetInt(1)
	return nil
}

// MarshalUncompressed returns the 65-byte SEC1 uncompressed encoding 0x04 ∥ X ∥ Y.
// The identity is encoded as 65 zero bytes.
func (v *Point) MarshalUncompressed() ([]byte, error) {
	if v == nil {
		return nil, errors.New("curve.Point.MarshalUncompressed: point is nil")
	}
	if v.IsIdentity() {
		return make([]byte, params.BytesPointUncompressed), nil
	}
	return v.uncompressed(), nil
}

// UnmarshalUncompressed is the inverse of MarshalUncompressed.
//
// Both coordinates must be reduced and satisfy y² = x³ + 7.
func (v *Point) UnmarshalUncompressed(data []byte) error {
	if len(data) != params.BytesPointUncompressed {
		return fmt.Errorf("curve.Point.UnmarshalUncompressed: expected %d bytes, got %d", params.BytesPointUncompressed, len(data))
	}
	if isZeroBytes(data) {
		v.p = secp256k1.JacobianPoint{}
		return nil
	}
	if data[0] != secp256k1.PubKeyFormatUncompressed {
		return fmt.Errorf("curve.Point.UnmarshalUncompressed: incorrect format byte 0x%02x", data[0])
	}
	pk, err := secp256k1.ParsePubKey(data)
	if err != nil {
		return fmt.Errorf("curve.Point.UnmarshalUncompressed: %w", err)
	}
	pk.AsJacobian(&v.p)
	return nil
}

// uncompressed writes out 0x04 ∥ X ∥ Y for a point which is not the identity.
func (v *Point) uncompressed() []byte {
	a := v.affine()
	data := make([]byte, params.BytesPointUncompressed)
	data[0] = secp256k1.PubKeyFormatUncompressed
	a.X.PutBytesUnchecked(data[1 : 1+params.BytesField])
	a.Y.PutBytesUnchecked(data[1+params.BytesField:])
	return data
}

func isZeroBytes(data []byte) bool {
	for _, b := range data {
		if b != 0 {
			return false
		}
	}
	return true
}

// String implements fmt.Stringer.
func (v *Point) String() string {
	if v == nil {
		return "nil"
	}
	if v.IsIdentity() {
		return "Point{Identity}"
	}
	a := v.affine()
	return fmt.Sprintf("Point{X: %v, Y: %v}", &a.X, &a.Y)
}

// String implements fmt.Stringer.
func (s *Scalar) String() string {
	if s == nil {
		return "nil"
	}
	return s.s.String()
}
