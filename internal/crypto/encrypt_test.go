package crypto

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncryptDecrypt(t *testing.T) {
	key := []byte("some key material")

	ciphertext, err := Encrypt(key, "attack at dawn")
	require.NoError(t, err)

	plaintext, err := Decrypt(key, ciphertext)
	require.NoError(t, err)
	assert.Equal(t, "attack at dawn", plaintext)

	again, err := Encrypt(key, "attack at dawn")
	require.NoError(t, err)
	assert.NotEqual(t, ciphertext, again, "nonce must be random")

	empty, err := Encrypt(key, "")
	require.NoError(t, err)
	plaintext, err = Decrypt(key, empty)
	require.NoError(t, err)
	assert.Empty(t, plaintext)
}

func TestDecryptErrors(t *testing.T) {
	key := []byte("some key material")
	ciphertext, err := Encrypt(key, "attack at dawn")
	require.NoError(t, err)

	_, err = Decrypt([]byte("other key"), ciphertext)
	assert.ErrorIs(t, err, ErrDecrypt)

	_, err = Decrypt(key, "%%%")
	assert.ErrorIs(t, err, ErrDecrypt)

	_, err = Decrypt(key, base64.StdEncoding.EncodeToString([]byte("short")))
	assert.ErrorIs(t, err, ErrDecrypt)

	_, err = Encrypt(nil, "x")
	assert.ErrorIs(t, err, ErrEmptyKey)
	_, err = Decrypt(nil, ciphertext)
	assert.ErrorIs(t, err, ErrEmptyKey)
}
