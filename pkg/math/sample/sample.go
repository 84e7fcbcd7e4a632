package sample

import (
	"errors"
	"fmt"
	"io"

	"github.com/taurusgroup/dlog-proof/internal/params"
	"github.com/taurusgroup/dlog-proof/pkg/math/curve"
	"github.com/zeebo/blake3"
)

// maxIterations bounds rejection sampling.
//
// A uniform 256-bit candidate is >= n with probability < 2⁻¹²⁷, so reaching
// this bound means the reader is broken rather than unlucky.
const maxIterations = 255

// ErrRandomness is returned when the random source cannot provide a scalar.
//
// There is no fallback to a weaker source, callers must abort.
var ErrRandomness = errors.New("sample: randomness failure")

// Scalar samples a uniform element of ℤₙ from rand, by rejection.
//
// Every call consumes fresh bytes from rand, so two calls never return the
// same nonce unless the reader repeats itself.
func Scalar(rand io.Reader) (*curve.Scalar, error) {
	if rand == nil {
		return nil, fmt.Errorf("%w: nil reader", ErrRandomness)
	}
	buf := make([]byte, params.BytesScalar)
	for i := 0; i < maxIterations; i++ {
		if _, err := io.ReadFull(rand, buf); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrRandomness, err)
		}
		var s curve.Scalar
		if err := s.UnmarshalBinary(buf); err == nil {
			return &s, nil
		}
	}
	return nil, fmt.Errorf("%w: no candidate below the group order after %d draws", ErrRandomness, maxIterations)
}

// ScalarPointPair samples x ∈ ℤₙ and returns (x, x⋅G).
func ScalarPointPair(rand io.Reader) (*curve.Scalar, *curve.Point, error) {
	x, err := Scalar(rand)
	if err != nil {
		return nil, nil, err
	}
	return x, curve.NewIdentityPoint().ScalarBaseMult(x), nil
}

// seededReaderContext separates seeded streams from any other BLAKE3 usage.
const seededReaderContext = "dlog-proof 2024 seeded reader"

// NewSeededReader returns a deterministic stream of bytes derived from seed.
//
// This is meant for reproducible tests. It must never be used to produce nonces
// for real proofs: two proofs of the same secret drawn from equal seeds reuse
// the nonce, which reveals the secret.
func NewSeededReader(seed []byte) io.Reader {
	h := blake3.NewDeriveKey(seededReaderContext)
	_, _ = h.Write(seed)
	return h.Digest()
}
