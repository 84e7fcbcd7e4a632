package hash

import (
	"crypto/sha256"
	"encoding/binary"
	"errors"
	"fmt"
	stdhash "hash"
	"io"

	"github.com/taurusgroup/dlog-proof/internal/params"
	"github.com/taurusgroup/dlog-proof/pkg/math/curve"
)

// DigestLengthBytes is the size of a SHA-256 digest.
const DigestLengthBytes = sha256.Size // 32

// Hash is the transcript hash used for the Fiat-Shamir challenge.
//
// Data is written without framing or domain separation: the byte layout is
// part of the wire contract with other implementations, and each caller fixes
// the order and types of what it writes.
type Hash struct {
	h stdhash.Hash
}

// New creates an empty SHA-256 transcript.
func New() *Hash {
	return &Hash{h: sha256.New()}
}

// WriteAny takes many different data types and writes them to the hash state.
//
// Currently supported types:
//
//   - string, written as its UTF-8 bytes
//   - []byte
//   - uint32, written as 4 little-endian bytes
//   - *curve.Point and []*curve.Point, written as SEC1 uncompressed points
//   - io.WriterTo
func (hash *Hash) WriteAny(data ...interface{}) error {
	for _, d := range data {
		switch t := d.(type) {
		case string:
			_, _ = io.WriteString(hash.h, t)
		case []byte:
			_, _ = hash.h.Write(t)
		case uint32:
			var b [params.BytesPID]byte
			binary.LittleEndian.PutUint32(b[:], t)
			_, _ = hash.h.Write(b[:])
		case *curve.Point:
			if err := hash.writePoint(t); err != nil {
				return err
			}
		case []*curve.Point:
			for _, p := range t {
				if err := hash.writePoint(p); err != nil {
					return err
				}
			}
		case io.WriterTo:
			if _, err := t.WriteTo(hash.h); err != nil {
				return fmt.Errorf("hash.Hash: write io.WriterTo: %w", err)
			}
		default:
			return fmt.Errorf("hash.Hash: unsupported type %T", d)
		}
	}
	return nil
}

func (hash *Hash) writePoint(p *curve.Point) error {
	if p == nil {
		return errors.New("hash.Hash: write *curve.Point: nil")
	}
	if _, err := p.WriteTo(hash.h); err != nil {
		return fmt.Errorf("hash.Hash: write *curve.Point: %w", err)
	}
	return nil
}

// Sum returns the digest of everything written so far, without changing the state.
func (hash *Hash) Sum() []byte {
	return hash.h.Sum(nil)
}

// Scalar returns the current digest reduced mod n.
func (hash *Hash) Scalar() *curve.Scalar {
	return curve.FromDigest(hash.Sum())
}

// Challenge derives the Fiat-Shamir challenge
//
//	c = SHA-256(sid ∥ pid₃₂ₗₑ ∥ P₁ ∥ … ∥ Pₖ) mod n
//
// where each Pᵢ is the SEC1 uncompressed encoding of points[i].
// The order of points matters.
func Challenge(sid string, pid uint32, points ...*curve.Point) (*curve.Scalar, error) {
	h := New()
	if err := h.WriteAny(sid, pid, points); err != nil {
		return nil, err
	}
	return h.Scalar(), nil
}
