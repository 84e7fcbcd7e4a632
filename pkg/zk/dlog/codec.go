package dlog

import (
	"fmt"

	"github.com/taurusgroup/dlog-proof/internal/params"
)

// PointFormat selects how the commitment T is written on the wire.
//
// Prover and verifier must agree on the format ahead of time, the encoding
// carries no tag or length prefix.
type PointFormat uint8

const (
	// Compressed writes T as 0x02/0x03 ∥ X (33 bytes).
	Compressed PointFormat = iota
	// Uncompressed writes T as 0x04 ∥ X ∥ Y (65 bytes).
	Uncompressed
)

// ParsePointFormat returns the format named "compressed" or "uncompressed".
func ParsePointFormat(name string) (PointFormat, error) {
	switch name {
	case "compressed", "":
		return Compressed, nil
	case "uncompressed":
		return Uncompressed, nil
	default:
		return 0, fmt.Errorf("dlog: unknown point format %q", name)
	}
}

func (f PointFormat) String() string {
	switch f {
	case Compressed:
		return "compressed"
	case Uncompressed:
		return "uncompressed"
	default:
		return fmt.Sprintf("PointFormat(%d)", uint8(f))
	}
}

// PointSize returns the length of an encoded point in this format.
func (f PointFormat) PointSize() int {
	if f == Uncompressed {
		return params.BytesPointUncompressed
	}
	return params.BytesPoint
}

// Codec encodes proofs as T ∥ S, where S is a 32-byte big-endian scalar.
type Codec struct {
	format PointFormat
}

// DefaultCodec uses compressed points, for 65-byte proofs.
var DefaultCodec = NewCodec(Compressed)

// NewCodec returns a codec writing the commitment in the given format.
func NewCodec(format PointFormat) *Codec {
	return &Codec{format: format}
}

// Format returns the point format of the codec.
func (c *Codec) Format() PointFormat {
	return c.format
}

// Size returns the length of an encoded proof.
func (c *Codec) Size() int {
	return c.format.PointSize() + params.BytesScalar
}

// Encode returns the wire encoding of p.
func (c *Codec) Encode(p *Proof) ([]byte, error) {
	if p == nil || p.T == nil || p.S == nil {
		return nil, fmt.Errorf("dlog.Codec.Encode: %w", ErrNilInput)
	}
	var (
		point []byte
		err   error
	)
	if c.format == Uncompressed {
		point, err = p.T.MarshalUncompressed()
	} else {
		point, err = p.T.MarshalBinary()
	}
	if err != nil {
		return nil, fmt.Errorf("dlog.Codec.Encode: %w", err)
	}
	scalar, err := p.S.MarshalBinary()
	if err != nil {
		return nil, fmt.Errorf("dlog.Codec.Encode: %w", err)
	}

	out := make([]byte, 0, c.Size())
	out = append(out, point...)
	out = append(out, scalar...)
	return out, nil
}

// Decode parses a proof produced by Encode with the same format.
//
// It fails with ErrInvalidPointEncoding if T is not a valid curve point, and with
// ErrInvalidScalarEncoding if S is not exactly 32 bytes encoding a value below n.
// Input is never truncated or reduced.
func (c *Codec) Decode(data []byte) (*Proof, error) {
	pointSize := c.format.PointSize()
	if len(data) < pointSize {
		return nil, fmt.Errorf("%w: need %d bytes for the commitment, got %d", ErrInvalidPointEncoding, pointSize, len(data))
	}

	p := EmptyProof()
	var err error
	if c.format == Uncompressed {
		err = p.T.UnmarshalUncompressed(data[:pointSize])
	} else {
		err = p.T.UnmarshalBinary(data[:pointSize])
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPointEncoding, err)
	}

	if err = p.S.UnmarshalBinary(data[pointSize:]); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidScalarEncoding, err)
	}
	return p, nil
}

// MarshalBinary implements encoding.BinaryMarshaler using DefaultCodec.
func (p *Proof) MarshalBinary() ([]byte, error) {
	return DefaultCodec.Encode(p)
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler using DefaultCodec.
func (p *Proof) UnmarshalBinary(data []byte) error {
	decoded, err := DefaultCodec.Decode(data)
	if err != nil {
		return err
	}
	p.T, p.S = decoded.T, decoded.S
	return nil
}

