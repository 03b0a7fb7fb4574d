package crypto

import (
	"crypto/sha256"
	"testing"

	"github.com/AlexZinkM/chain-wallet/internal/codec"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignVerify(t *testing.T) {
	sig, err := Sign([]byte("Hello, world"), testScalar)
	require.NoError(t, err)

	pub := mustHex(t, testPublicKey)
	digest := sha256.Sum256([]byte("Hello, world"))
	assert.True(t, Verify(pub, sig, digest[:]))

	other := sha256.Sum256([]byte("Hello, world1"))
	assert.False(t, Verify(pub, sig, other[:]))

	assert.False(t, Verify(pub, sig[:len(sig)-1], digest[:]))
	assert.False(t, Verify([]byte{0x02}, sig, digest[:]))
}

func TestSignRejectsBadKey(t *testing.T) {
	_, err := Sign([]byte("data"), "zz")
	assert.ErrorIs(t, err, ErrInvalidPrivateKey)

	_, err = Sign([]byte("data"), curveOrder)
	assert.ErrorIs(t, err, ErrInvalidPrivateKey)
}

func TestSharedSecret(t *testing.T) {
	// 1 * 2G: the x coordinate of 2G
	two, err := KeypairFromPrivateKeyHex("0000000000000000000000000000000000000000000000000000000000000002")
	require.NoError(t, err)

	secret, err := SharedSecret(mustHex(t, testScalar), two.PublicKey)
	require.NoError(t, err)
	assert.Equal(t, "c6047f9441ed7d6d3045406e95c07cd85c778e4b8cef3ca7abac09b95c709ee5", codec.BytesToHex(secret))

	reverse, err := SharedSecret(two.PrivateKey, mustHex(t, testPublicKey))
	require.NoError(t, err)
	assert.Equal(t, secret, reverse)

	_, err = SharedSecret(two.PrivateKey, []byte{0x12, 0x34})
	assert.ErrorIs(t, err, ErrInvalidPublicKey)
}
