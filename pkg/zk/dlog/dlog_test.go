package dlog

import (
	"crypto/rand"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/taurusgroup/dlog-proof/pkg/math/curve"
	"github.com/taurusgroup/dlog-proof/pkg/math/sample"
)

func randomPair(t testing.TB) (*curve.Scalar, *curve.Point) {
	x, X, err := sample.ScalarPointPair(rand.Reader)
	require.NoError(t, err)
	return x, X
}

func TestDLogPass(t *testing.T) {
	ctx := Context{SID: "test_session_id", PID: 42}
	x, X := randomPair(t)

	proof, err := Prove(rand.Reader, ctx, x, X, nil)
	require.NoError(t, err)
	assert.True(t, proof.Verify(ctx, X, nil), "failed passing test")
	assert.True(t, proof.Verify(ctx, X, curve.NewBasePoint()), "nil base must mean G")
}

func TestDLogFixedSecret(t *testing.T) {
	ctx := Context{SID: "test_session_id", PID: 42}
	x := curve.NewScalarUInt32(0xC0FFEE)
	X := curve.NewIdentityPoint().ScalarBaseMult(x)

	proof, err := Prove(rand.Reader, ctx, x, X, nil)
	require.NoError(t, err)
	require.True(t, proof.Verify(ctx, X, nil))

	// Send it over the wire, then tamper with the response.
	data, err := DefaultCodec.Encode(proof)
	require.NoError(t, err)
	decoded, err := DefaultCodec.Decode(data)
	require.NoError(t, err)
	require.True(t, decoded.Verify(ctx, X, nil))

	decoded.S.Add(decoded.S, curve.NewScalarUInt32(1))
	assert.False(t, decoded.Verify(ctx, X, nil), "s+1 must not verify")
}

func TestDLogCustomBase(t *testing.T) {
	ctx := Context{SID: "custom base", PID: 7}
	_, B := randomPair(t)
	x, _ := randomPair(t)
	Y := curve.NewIdentityPoint().ScalarMult(x, B)

	proof, err := Prove(rand.Reader, ctx, x, Y, B)
	require.NoError(t, err)
	assert.True(t, proof.Verify(ctx, Y, B))
	assert.False(t, proof.Verify(ctx, Y, nil), "proof is bound to its base point")
}

func TestDLogIdentityBase(t *testing.T) {
	ctx := Context{SID: "identity base", PID: 1}
	id := curve.NewIdentityPoint()

	_, err := Prove(rand.Reader, ctx, curve.NewScalarUInt32(5), id, id)
	assert.ErrorIs(t, err, ErrIdentityBase)

	// Any response satisfies s⋅∞ = ∞ + c⋅∞, so these must be rejected outright.
	forged := &Proof{T: curve.NewIdentityPoint(), S: curve.NewScalarUInt32(5)}
	assert.False(t, forged.Verify(ctx, id, id))

	x, X := randomPair(t)
	proof, err := Prove(rand.Reader, ctx, x, X, nil)
	require.NoError(t, err)
	assert.False(t, proof.Verify(ctx, X, id))
}

func TestDLogContextBinding(t *testing.T) {
	ctx := Context{SID: "sid", PID: 1}
	x, X := randomPair(t)
	proof, err := Prove(rand.Reader, ctx, x, X, nil)
	require.NoError(t, err)

	assert.False(t, proof.Verify(Context{SID: "sid2", PID: 1}, X, nil), "changing sid must fail")
	assert.False(t, proof.Verify(Context{SID: "sid", PID: 2}, X, nil), "changing pid must fail")
	assert.False(t, proof.Verify(Context{}, X, nil))
}

func TestDLogWrongPublic(t *testing.T) {
	ctx := Context{SID: "test_session_id", PID: 42}
	x, X := randomPair(t)
	_, invalidX := randomPair(t)

	proof, err := Prove(rand.Reader, ctx, x, X, nil)
	require.NoError(t, err)
	assert.False(t, proof.Verify(ctx, invalidX, nil))
	assert.False(t, proof.Verify(ctx, curve.NewIdentityPoint(), nil))
}

func TestDLogZeroSecret(t *testing.T) {
	ctx := Context{SID: "edge_case_sid", PID: 1000}
	x := curve.NewScalar()
	X := curve.NewIdentityPoint().ScalarBaseMult(x)
	require.True(t, X.IsIdentity())

	proof, err := Prove(rand.Reader, ctx, x, X, nil)
	require.NoError(t, err)
	assert.True(t, proof.Verify(ctx, X, nil), "x = 0 must verify")
}

func TestDLogMaxSecret(t *testing.T) {
	ctx := Context{SID: "edge_case_sid", PID: 1000}
	x := curve.NewScalar().Negate(curve.NewScalarUInt32(1))
	X := curve.NewIdentityPoint().ScalarBaseMult(x)

	proof, err := Prove(rand.Reader, ctx, x, X, nil)
	require.NoError(t, err)
	assert.True(t, proof.Verify(ctx, X, nil), "x = n-1 must verify")
}

func TestDLogCrossVerify(t *testing.T) {
	ctx := Context{SID: "consistency_sid", PID: 2022}
	x1, X1 := randomPair(t)
	x2, X2 := randomPair(t)

	proof1, err := Prove(rand.Reader, ctx, x1, X1, nil)
	require.NoError(t, err)
	proof2, err := Prove(rand.Reader, ctx, x2, X2, nil)
	require.NoError(t, err)

	assert.True(t, proof1.Verify(ctx, X1, nil))
	assert.True(t, proof2.Verify(ctx, X2, nil))
	assert.False(t, proof1.Verify(ctx, X2, nil))
	assert.False(t, proof2.Verify(ctx, X1, nil))
}

func TestDLogWrongWitness(t *testing.T) {
	ctx := Context{SID: "sid", PID: 3}
	_, X := randomPair(t)
	wrongX, _ := randomPair(t)

	proof, err := Prove(rand.Reader, ctx, wrongX, X, nil)
	require.NoError(t, err)
	assert.False(t, proof.Verify(ctx, X, nil))
}

func TestDLogSeeded(t *testing.T) {
	ctx := Context{SID: "seeded", PID: 9}
	x := curve.NewScalarUInt32(1234567)
	X := curve.NewIdentityPoint().ScalarBaseMult(x)

	p1, err := Prove(sample.NewSeededReader([]byte("seed")), ctx, x, X, nil)
	require.NoError(t, err)
	p2, err := Prove(sample.NewSeededReader([]byte("seed")), ctx, x, X, nil)
	require.NoError(t, err)
	p3, err := Prove(sample.NewSeededReader([]byte("other")), ctx, x, X, nil)
	require.NoError(t, err)

	assert.True(t, p1.Equal(p2), "equal seeds give equal proofs")
	assert.False(t, p1.Equal(p3))
	assert.True(t, p3.Verify(ctx, X, nil))
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("no entropy")
}

func TestDLogRandomnessFailure(t *testing.T) {
	x, X := randomPair(t)
	_, err := Prove(failingReader{}, Context{}, x, X, nil)
	assert.True(t, errors.Is(err, sample.ErrRandomness))
}

func TestDLogNilInputs(t *testing.T) {
	ctx := Context{SID: "sid", PID: 1}
	x, X := randomPair(t)

	_, err := Prove(rand.Reader, ctx, nil, X, nil)
	assert.True(t, errors.Is(err, ErrNilInput))
	_, err = Prove(rand.Reader, ctx, x, nil, nil)
	assert.True(t, errors.Is(err, ErrNilInput))

	proof, err := Prove(rand.Reader, ctx, x, X, nil)
	require.NoError(t, err)

	var nilProof *Proof
	assert.NotPanics(t, func() {
		assert.False(t, nilProof.Verify(ctx, X, nil))
		assert.False(t, (&Proof{}).Verify(ctx, X, nil))
		assert.False(t, (&Proof{T: proof.T}).Verify(ctx, X, nil))
		assert.False(t, (&Proof{S: proof.S}).Verify(ctx, X, nil))
		assert.False(t, proof.Verify(ctx, nil, nil))
	})
}

func TestDLogVerifyDoesNotModifyInputs(t *testing.T) {
	ctx := Context{SID: "sid", PID: 1}
	x, X := randomPair(t)
	proof, err := Prove(rand.Reader, ctx, x, X, nil)
	require.NoError(t, err)

	before, err := DefaultCodec.Encode(proof)
	require.NoError(t, err)
	XBefore, err := X.MarshalBinary()
	require.NoError(t, err)

	require.True(t, proof.Verify(ctx, X, nil))
	after, err := DefaultCodec.Encode(proof)
	require.NoError(t, err)
	XAfter, err := X.MarshalBinary()
	require.NoError(t, err)

	assert.Equal(t, before, after)
	assert.Equal(t, XBefore, XAfter)
}

func BenchmarkProve(b *testing.B) {
	ctx := Context{SID: "bench", PID: 1}
	x, X := randomPair(b)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = Prove(rand.Reader, ctx, x, X, nil)
	}
}

func BenchmarkVerify(b *testing.B) {
	ctx := Context{SID: "bench", PID: 1}
	x, X := randomPair(b)
	proof, err := Prove(rand.Reader, ctx, x, X, nil)
	require.NoError(b, err)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		proof.Verify(ctx, X, nil)
	}
}
