package wallet

import (
	"testing"

	"github.com/AlexZinkM/chain-wallet/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncryptedKeyHelpers(t *testing.T) {
	f := newTestFactory()

	encrypted, err := f.NewEncryptedKey(testWIF, testPassword)
	require.NoError(t, err)

	wif, err := f.WIFFromEncryptedKey(encrypted, testPassword)
	require.NoError(t, err)
	assert.Equal(t, testWIF, wif)

	_, err = f.WIFFromEncryptedKey(encrypted, wrongPassword)
	assert.ErrorIs(t, err, ErrWrongPassword)
	_, err = f.WIFFromEncryptedKey("garbage", testPassword)
	assert.ErrorIs(t, err, ErrWrongPassword)

	_, err = f.NewEncryptedKey("", testPassword)
	assert.ErrorIs(t, err, ErrNoSecret)
}

func TestKeyDerivationHelpers(t *testing.T) {
	address, err := AddressFromWIF(testWIF)
	require.NoError(t, err)
	assert.Equal(t, testAddress, address)

	pub, err := PublicKeyFromWIF(testWIF)
	require.NoError(t, err)
	assert.Equal(t, testPublicKey, pub)

	for _, key := range []string{testScalar, testLegacyKey} {
		pub, err := PublicKeyFromPrivateKey(key)
		require.NoError(t, err)
		assert.Equal(t, testPublicKey, pub)
	}

	address, err = AddressFromPublicKeyHex(testPublicKey)
	require.NoError(t, err)
	assert.Equal(t, testAddress, address)

	_, err = AddressFromPublicKeyHex("1234")
	assert.ErrorIs(t, err, ErrInvalidPublicKey)
	_, err = AddressFromPublicKeyHex("xyz")
	assert.ErrorIs(t, err, ErrInvalidHexEncoding)
	_, err = AddressFromWIF("garbage")
	assert.ErrorIs(t, err, ErrInvalidEncoding)
	_, err = PublicKeyFromPrivateKey("00")
	assert.ErrorIs(t, err, ErrUnrecognizedKeyLength)
}

func TestIsValidAddress(t *testing.T) {
	w := newTestWallet(t)
	address := w.Address()

	assert.True(t, IsValidAddress(address))
	assert.True(t, newTestFactory().IsValidAddress(address))

	for _, in := range []string{
		"",
		address + "a",
		"a" + address,
		address[1:],
		"BA",
		"a12312B123123123Aa12312B123123123A",
		"DASDASDASDADA",
	} {
		assert.False(t, IsValidAddress(in), "input %q", in)
	}
}

func TestDetectKeyType(t *testing.T) {
	f := newTestFactory()
	encrypted, err := f.NewEncryptedKey(testWIF, testPassword)
	require.NoError(t, err)

	tests := []struct {
		in   string
		want model.KeyType
	}{
		{testAddress, model.KeyTypeAddress},
		{encrypted, model.KeyTypeNEP2},
		{testWIF, model.KeyTypeWIF},
		{testScalar, model.KeyTypePrimaryPrivateKey},
		{testLegacyKey, model.KeyTypePrivateKey},
		{testPublicKey, model.KeyTypePublicKey},
		{"", model.KeyTypeUnknown},
		{"hello", model.KeyTypeUnknown},
		{"1234", model.KeyTypeUnknown},
	}
	for _, tt := range tests {
		got := DetectKeyType(tt.in)
		assert.Equal(t, tt.want, got, "input %q", tt.in)
		if tt.want != model.KeyTypeUnknown {
			assert.NoError(t, got.Validate())
		}
	}
	assert.Error(t, model.KeyTypeUnknown.Validate())
}
