// Package dlog implements a non-interactive Schnorr proof of knowledge of a
// discrete logarithm over secp256k1.
//
// Given a base point B and Y = x⋅B, the prover shows it knows x:
//
//	r ← ℤₙ,  T = r⋅B,  c = H(sid, pid, B, Y, T),  s = r + c⋅x mod n
//
// and the verifier accepts iff s⋅B = T + c⋅Y.
package dlog

import (
	"fmt"
	"io"

	"github.com/taurusgroup/dlog-proof/pkg/hash"
	"github.com/taurusgroup/dlog-proof/pkg/math/curve"
	"github.com/taurusgroup/dlog-proof/pkg/math/sample"
)

// Context binds a proof to a session and a participant.
//
// Both values are chosen by the protocol using the proof, and must be agreed
// upon by prover and verifier beforehand.
type Context struct {
	SID string
	PID uint32
}

// Proof is a non-interactive proof of knowledge of a discrete logarithm.
type Proof struct {
	// T = r⋅B
	T *curve.Point
	// S = r + c⋅x mod n
	S *curve.Scalar
}

// EmptyProof returns a proof with allocated fields, ready for unmarshalling.
func EmptyProof() *Proof {
	return &Proof{
		T: curve.NewIdentityPoint(),
		S: curve.NewScalar(),
	}
}

func challenge(ctx Context, base, Y, T *curve.Point) (*curve.Scalar, error) {
	return hash.Challenge(ctx.SID, ctx.PID, base, Y, T)
}

// Prove creates a proof that the caller knows x such that Y = x⋅base.
//
// base may be nil, in which case the generator G is used. An identity base is
// rejected with ErrIdentityBase.
// The nonce is drawn from rand, which must be a cryptographically secure source
// producing fresh output on every call.
func Prove(rand io.Reader, ctx Context, x *curve.Scalar, Y, base *curve.Point) (*Proof, error) {
	if x == nil || Y == nil {
		return nil, fmt.Errorf("dlog.Prove: %w", ErrNilInput)
	}
	if base == nil {
		base = curve.NewBasePoint()
	}
	if base.IsIdentity() {
		return nil, fmt.Errorf("dlog.Prove: %w", ErrIdentityBase)
	}

	r, err := sample.Scalar(rand)
	if err != nil {
		return nil, fmt.Errorf("dlog.Prove: failed to sample nonce: %w", err)
	}
	T := curve.NewIdentityPoint().ScalarMult(r, base)

	c, err := challenge(ctx, base, Y, T)
	if err != nil {
		return nil, fmt.Errorf("dlog.Prove: %w", err)
	}

	s := curve.NewScalar().MultiplyAdd(c, x, r)
	return &Proof{T: T, S: s}, nil
}

// Verify returns true if p proves knowledge of the discrete logarithm of Y
// with respect to base, in the given context.
//
// base may be nil, in which case the generator G is used. Proofs against an
// identity base are always rejected.
func (p *Proof) Verify(ctx Context, Y, base *curve.Point) bool {
	if p == nil || p.T == nil || p.S == nil || Y == nil {
		return false
	}
	if base == nil {
		base = curve.NewBasePoint()
	}
	if base.IsIdentity() {
		return false
	}

	c, err := challenge(ctx, base, Y, p.T)
	if err != nil {
		return false
	}

	var lhs, rhs curve.Point
	lhs.ScalarMult(p.S, base)
	rhs.ScalarMult(c, Y)
	rhs.Add(&rhs, p.T)

	return lhs.Equal(&rhs)
}

// Equal returns true if both proofs have the same commitment and response.
func (p *Proof) Equal(q *Proof) bool {
	if p == nil || q == nil || p.T == nil || q.T == nil || p.S == nil || q.S == nil {
		return false
	}
	return p.T.Equal(q.T) && p.S.Equal(q.S)
}
