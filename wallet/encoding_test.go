package wallet

import (
	"encoding/json"
	"testing"

	"github.com/AlexZinkM/chain-wallet/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeUnlocked(t *testing.T) {
	f := newTestFactory()
	w := newTestWallet(t)

	data, err := w.ToData()
	require.NoError(t, err)

	decoded, err := f.Decode(data)
	require.NoError(t, err)
	assert.False(t, decoded.Locked())
	assert.Equal(t, w.Address(), decoded.Address())
	assert.Equal(t, w.PublicKey(), decoded.PublicKey())
	assert.Equal(t, w.WIF(), decoded.WIF())
	assert.Equal(t, w.PrivateKey(), decoded.PrivateKey())
	assert.Equal(t, w.PrivateKeyString(), decoded.PrivateKeyString())
	assert.Equal(t, w.PrimaryPrivateKey(), decoded.PrimaryPrivateKey())
	assert.True(t, Same(w, decoded))
}

func TestEncodeLocked(t *testing.T) {
	f := newTestFactory()
	w, err := f.NewLocked("cold", testPassword)
	require.NoError(t, err)

	data, err := json.Marshal(w)
	require.NoError(t, err)

	var rec model.WalletRecord
	require.NoError(t, json.Unmarshal(data, &rec))
	assert.True(t, rec.Locked())
	assert.Empty(t, rec.WIF)
	assert.Empty(t, rec.PrivateKeyString)

	decoded, err := f.Decode(data)
	require.NoError(t, err)
	assert.True(t, decoded.Locked())
	assert.Empty(t, decoded.WIF())
	assert.Equal(t, w.Address(), decoded.Address())
	assert.Equal(t, w.PublicKeyString(), decoded.PublicKeyString())
	assert.Equal(t, w.EncryptedKey(), decoded.EncryptedKey())
	assert.Equal(t, "cold", decoded.Label())

	require.NoError(t, decoded.Unlock(testPassword))
	assert.NotEmpty(t, decoded.WIF())
}

func TestUnmarshalJSON(t *testing.T) {
	w, err := FromWIF(testWIF)
	require.NoError(t, err)

	data, err := json.Marshal(w)
	require.NoError(t, err)

	var decoded Wallet
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, testAddress, decoded.Address())
	assert.Equal(t, testWIF, decoded.WIF())
}

func TestDecodeRejectsInconsistentRecord(t *testing.T) {
	f := newTestFactory()
	w, err := f.FromWIF(testWIF)
	require.NoError(t, err)
	other := newTestWallet(t)

	tests := []struct {
		name   string
		mutate func(*model.WalletRecord)
	}{
		{"address", func(r *model.WalletRecord) { r.Address = other.Address() }},
		{"public key", func(r *model.WalletRecord) { r.PublicKey = other.PublicKey() }},
		{"public key string", func(r *model.WalletRecord) { r.PublicKeyString = other.PublicKeyString() }},
		{"wif", func(r *model.WalletRecord) { r.WIF = other.WIF() }},
		{"private key string", func(r *model.WalletRecord) { r.PrivateKeyString = other.PrivateKeyString() }},
		{"private key without wif", func(r *model.WalletRecord) { r.WIF = "" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := w.Record()
			tt.mutate(rec)

			_, err := f.FromRecord(rec)
			assert.ErrorIs(t, err, ErrInconsistentRecord)
		})
	}

	_, err = f.Decode([]byte("{"))
	assert.Error(t, err)

	rec := w.Record()
	rec.WIF = "garbage"
	_, err = f.FromRecord(rec)
	assert.ErrorIs(t, err, ErrInvalidEncoding)
}

func TestSame(t *testing.T) {
	f := newTestFactory()
	a, err := f.FromWIF(testWIF)
	require.NoError(t, err)
	b, err := f.FromPrivateKeyHex(testLegacyKey)
	require.NoError(t, err)

	assert.True(t, Same(a, b))
	assert.False(t, Same(a, newTestWallet(t)))
	assert.False(t, Same(a, nil))
	assert.True(t, Same(nil, nil))

	require.NoError(t, b.Lock(testPassword))
	assert.False(t, Same(a, b))
}
