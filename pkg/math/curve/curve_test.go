package curve

import (
	"testing"

	"github.com/fxamacker/cbor/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type marshalTester struct {
	S *Scalar
	P *Point
}

func TestMarshall(t *testing.T) {
	s := marshalTester{
		S: NewScalarUInt32(0xED),
		P: NewBasePoint(),
	}
	data, err := cbor.Marshal(s)
	require.NoError(t, err)
	s2 := marshalTester{
		S: NewScalar(),
		P: NewIdentityPoint(),
	}
	err = cbor.Unmarshal(data, &s2)
	require.NoError(t, err)
	assert.True(t, s.S.Equal(s2.S))
	assert.True(t, s.P.Equal(s2.P))
}
