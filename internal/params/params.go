package params

const (
	SecParam = 256
	SecBytes = SecParam / 8

	// BytesScalar is the length of a big-endian scalar mod the secp256k1 order.
	BytesScalar = 32
	// BytesField is the length of a big-endian secp256k1 field element.
	BytesField = 32

	// BytesPoint is the length of a SEC1 compressed point: 0x02/0x03 ∥ X.
	BytesPoint = 1 + BytesField // = 33
	// BytesPointUncompressed is the length of a SEC1 uncompressed point: 0x04 ∥ X ∥ Y.
	BytesPointUncompressed = 1 + 2*BytesField // = 65

	// BytesPID is the length of the little-endian participant id written to the challenge.
	BytesPID = 4
)
