package wallet

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLockUnlock(t *testing.T) {
	w := newTestWallet(t)
	wif, key, keyString, primary := w.WIF(), w.PrivateKey(), w.PrivateKeyString(), w.PrimaryPrivateKey()

	require.NoError(t, w.Lock(testPassword))
	assert.True(t, w.Locked())
	assert.NotEmpty(t, w.EncryptedKey())
	assert.Empty(t, w.WIF())
	assert.Nil(t, w.PrivateKey())
	assert.Empty(t, w.PrivateKeyString())
	assert.Nil(t, w.PrimaryPrivateKey())

	encrypted := w.EncryptedKey()
	assert.ErrorIs(t, w.Lock(testPassword), ErrAlreadyLocked)
	assert.ErrorIs(t, w.Lock(wrongPassword), ErrAlreadyLocked)
	assert.Equal(t, encrypted, w.EncryptedKey())

	assert.ErrorIs(t, w.Unlock(wrongPassword), ErrWrongPassword)
	assert.True(t, w.Locked())
	assert.Equal(t, encrypted, w.EncryptedKey())
	assert.Empty(t, w.WIF())

	require.NoError(t, w.Unlock(testPassword))
	assert.False(t, w.Locked())
	assert.Equal(t, wif, w.WIF())
	assert.Equal(t, key, w.PrivateKey())
	assert.Equal(t, keyString, w.PrivateKeyString())
	assert.Equal(t, primary, w.PrimaryPrivateKey())

	assert.ErrorIs(t, w.Unlock(testPassword), ErrNotLocked)
	assert.Equal(t, encrypted, w.EncryptedKey())
}

func TestUnlockCorruptEncryptedKey(t *testing.T) {
	w := newTestWallet(t)
	require.NoError(t, w.Lock(testPassword))

	w.encryptedKey = "6PYcorrupt"
	assert.ErrorIs(t, w.Unlock(testPassword), ErrWrongPassword)
	assert.True(t, w.Locked())
	assert.Equal(t, "6PYcorrupt", w.EncryptedKey())
}

func TestUnlockForeignEncryptedKey(t *testing.T) {
	f := newTestFactory()
	w := newTestWallet(t)
	require.NoError(t, w.Lock(testPassword))

	// a valid encrypted key that opens to a different wallet
	foreign, err := f.NewEncryptedKey(testWIF, testPassword)
	require.NoError(t, err)
	w.encryptedKey = foreign

	assert.ErrorIs(t, w.Unlock(testPassword), ErrWrongPassword)
	assert.True(t, w.Locked())
}

func TestLockWithoutSecret(t *testing.T) {
	w := newTestWallet(t)
	w.secrets.wif = ""

	assert.ErrorIs(t, w.Lock(testPassword), ErrNoSecret)
	assert.False(t, w.Locked())
	assert.Empty(t, w.EncryptedKey())
}

func TestLockedOperationsFail(t *testing.T) {
	w := newTestWallet(t)
	peer := newTestWallet(t)

	sig, err := w.SignMessage("Hello, world")
	require.NoError(t, err)

	require.NoError(t, w.Lock(testPassword))

	_, err = w.SignMessage("Hello, world")
	assert.ErrorIs(t, err, ErrLocked)
	_, err = w.SignData([]byte("Hello, world"))
	assert.ErrorIs(t, err, ErrLocked)
	_, err = w.ComputeSharedSecret(peer.PublicKey())
	assert.ErrorIs(t, err, ErrLocked)
	_, err = w.ComputeSharedSecretHex(peer.PublicKeyString())
	assert.ErrorIs(t, err, ErrLocked)
	_, err = w.PrivateEncrypt("secret")
	assert.ErrorIs(t, err, ErrLocked)
	_, err = w.PrivateDecrypt("secret")
	assert.ErrorIs(t, err, ErrLocked)
	_, err = w.SharedEncrypt("secret", peer.PublicKey())
	assert.ErrorIs(t, err, ErrEncryptionUnavailable)
	_, err = w.SharedDecrypt("secret", peer.PublicKey())
	assert.ErrorIs(t, err, ErrEncryptionUnavailable)

	// verification needs only the public key
	assert.True(t, w.VerifySignature(sig, "Hello, world"))
}

func TestNewLocked(t *testing.T) {
	f := newTestFactory()

	w, err := f.NewLocked("savings", testPassword)
	require.NoError(t, err)
	assert.True(t, w.Locked())
	assert.Equal(t, "savings", w.Label())
	assert.Empty(t, w.WIF())

	require.NoError(t, w.Unlock(testPassword))
	address, err := f.AddressFromWIF(w.WIF())
	require.NoError(t, err)
	assert.Equal(t, w.Address(), address)
}

func TestZero(t *testing.T) {
	w := newTestWallet(t)
	w.Zero()
	assert.False(t, w.Locked())
	assert.Empty(t, w.WIF())
	_, err := w.SignMessage("x")
	assert.ErrorIs(t, err, ErrNoSecret)
	assert.ErrorIs(t, w.Lock(testPassword), ErrNoSecret)

	locked := newTestWallet(t)
	require.NoError(t, locked.Lock(testPassword))
	require.NoError(t, locked.Unlock(testPassword))
	locked.Zero()
	assert.True(t, locked.Locked())
	require.NoError(t, locked.Unlock(testPassword))
	assert.NotEmpty(t, locked.WIF())
}

func TestConcurrentUse(t *testing.T) {
	w := newTestWallet(t)

	var wg sync.WaitGroup
	for i := range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if i%2 == 0 {
				_ = w.Lock(testPassword)
			} else {
				_ = w.Unlock(testPassword)
			}
			_, _ = w.SignMessage("Hello, world")
			_ = w.Record()
		}()
	}
	wg.Wait()

	if w.Locked() {
		require.NoError(t, w.Unlock(testPassword))
	}
	assert.NotEmpty(t, w.WIF())
}
