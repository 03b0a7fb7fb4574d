package wallet

import (
	"bytes"
	"crypto/sha256"
	"errors"
	"fmt"
	"runtime"
	"sync"
)

// secrets holds every piece of private key material a wallet carries.
// It is either fully populated (unlocked) or fully empty (locked).
type secrets struct {
	wif              string
	privateKey       []byte // serialized legacy private key
	privateKeyString string
	primary          *Keypair
}

func (s *secrets) zero() {
	clear(s.privateKey)
	s.privateKey = nil
	s.privateKeyString = ""
	s.wif = ""
	s.primary.Zero()
	s.primary = nil
}

// replace moves the contents of other into s
func (s *secrets) replace(other *secrets) {
	s.zero()
	*s = *other
	*other = secrets{}
}

// Wallet holds an address, its public key and, while unlocked, the primary
// and legacy private keys. Once locked only the password encrypted WIF is kept.
//
// A Wallet is safe for concurrent use.
type Wallet struct {
	mu sync.RWMutex

	f               *Factory
	address         string
	publicKey       []byte
	publicKeyString string
	label           string
	encryptedKey    string
	locked          bool
	secrets         *secrets
}

// init populates w. The secrets pointer is allocated once per wallet and
// registered for zeroing when the wallet is garbage collected.
func (f *Factory) init(w *Wallet, address string, publicKey []byte, label, encryptedKey string, s *secrets) {
	w.f = f
	w.address = address
	w.publicKey = bytes.Clone(publicKey)
	w.publicKeyString = f.codec.BytesToHex(publicKey)
	w.label = label
	w.encryptedKey = encryptedKey

	if w.secrets == nil {
		w.secrets = &secrets{}
		runtime.AddCleanup(w, func(s *secrets) { s.zero() }, w.secrets)
	}
	if s != nil {
		w.secrets.replace(s)
	} else {
		w.secrets.zero()
	}
	w.locked = encryptedKey != "" && w.secrets.wif == ""
}

// Address returns the wallet address
func (w *Wallet) Address() string {
	return w.address
}

// PublicKey returns the compressed public key
func (w *Wallet) PublicKey() []byte {
	return bytes.Clone(w.publicKey)
}

// PublicKeyString returns the public key as hex
func (w *Wallet) PublicKeyString() string {
	return w.publicKeyString
}

// Label returns the user assigned label
func (w *Wallet) Label() string {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.label
}

// Locked reports whether the secret keys are cleared
func (w *Wallet) Locked() bool {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.locked
}

// EncryptedKey returns the password encrypted WIF, or "" if the wallet was
// never locked.
func (w *Wallet) EncryptedKey() string {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.encryptedKey
}

// WIF returns the legacy WIF, or "" while locked
func (w *Wallet) WIF() string {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.secrets.wif
}

// PrivateKey returns a copy of the serialized legacy private key, or nil while locked
func (w *Wallet) PrivateKey() []byte {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return bytes.Clone(w.secrets.privateKey)
}

// PrivateKeyString returns the serialized legacy private key as hex, or "" while locked
func (w *Wallet) PrivateKeyString() string {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.secrets.privateKeyString
}

// PrimaryPrivateKey returns a copy of the 32-byte primary private key, or nil while locked
func (w *Wallet) PrimaryPrivateKey() []byte {
	w.mu.RLock()
	defer w.mu.RUnlock()
	if w.secrets.primary == nil {
		return nil
	}
	return bytes.Clone(w.secrets.primary.PrivateKey)
}

// primaryKey returns the primary private key after checking the wallet can use it.
// The caller must hold w.mu.
func (w *Wallet) primaryKey() ([]byte, error) {
	if w.locked {
		return nil, ErrLocked
	}
	if w.secrets.primary == nil || len(w.secrets.primary.PrivateKey) == 0 {
		return nil, ErrNoSecret
	}
	return w.secrets.primary.PrivateKey, nil
}

// SignMessage signs the UTF-8 bytes of message and returns the signature as hex
func (w *Wallet) SignMessage(message string) (string, error) {
	sig, err := w.SignData([]byte(message))
	if err != nil {
		return "", err
	}
	return w.f.codec.BytesToHex(sig), nil
}

// SignData signs data with the wallet key
func (w *Wallet) SignData(data []byte) ([]byte, error) {
	w.mu.RLock()
	defer w.mu.RUnlock()

	key, err := w.primaryKey()
	if err != nil {
		return nil, err
	}

	sig, err := w.f.crypto.Sign(data, w.f.codec.BytesToHex(key))
	if err != nil {
		return nil, fmt.Errorf("failed to sign: %w", err)
	}
	return sig, nil
}

// VerifySignature checks a hex signature over message against the wallet
// public key. It works on locked wallets; malformed input verifies as false.
func (w *Wallet) VerifySignature(signature, message string) bool {
	sig, err := w.f.codec.HexToBytes(signature)
	if err != nil {
		return false
	}

	digest := sha256.Sum256([]byte(message))
	return w.f.crypto.Verify(w.publicKey, sig, digest[:])
}

// ComputeSharedSecret derives the ECDH secret shared with the owner of peerPublicKey
func (w *Wallet) ComputeSharedSecret(peerPublicKey []byte) ([]byte, error) {
	w.mu.RLock()
	defer w.mu.RUnlock()

	key, err := w.primaryKey()
	if err != nil {
		return nil, err
	}

	secret, err := w.f.crypto.SharedSecret(key, peerPublicKey)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPublicKey, err)
	}
	return secret, nil
}

// ComputeSharedSecretHex is ComputeSharedSecret for a hex encoded public key
func (w *Wallet) ComputeSharedSecretHex(peerPublicKey string) ([]byte, error) {
	if w.Locked() {
		return nil, ErrLocked
	}

	peer, err := w.f.codec.HexToBytes(peerPublicKey)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidHexEncoding, err)
	}
	return w.ComputeSharedSecret(peer)
}

// PrivateEncrypt encrypts message with a key only this wallet can derive
func (w *Wallet) PrivateEncrypt(message string) (string, error) {
	w.mu.RLock()
	defer w.mu.RUnlock()

	key, err := w.primaryKey()
	if err != nil {
		return "", err
	}
	return w.f.crypto.Encrypt(key, message)
}

// PrivateDecrypt reverses PrivateEncrypt
func (w *Wallet) PrivateDecrypt(ciphertext string) (string, error) {
	w.mu.RLock()
	defer w.mu.RUnlock()

	key, err := w.primaryKey()
	if err != nil {
		return "", err
	}
	return w.f.crypto.Decrypt(key, ciphertext)
}

// SharedEncrypt encrypts message under the secret shared with peerPublicKey
func (w *Wallet) SharedEncrypt(message string, peerPublicKey []byte) (string, error) {
	secret, err := w.sharedSecretForEncryption(peerPublicKey)
	if err != nil {
		return "", err
	}
	defer clear(secret)

	return w.f.crypto.Encrypt(secret, message)
}

// SharedDecrypt decrypts a SharedEncrypt ciphertext from the owner of peerPublicKey
func (w *Wallet) SharedDecrypt(ciphertext string, peerPublicKey []byte) (string, error) {
	secret, err := w.sharedSecretForEncryption(peerPublicKey)
	if err != nil {
		return "", err
	}
	defer clear(secret)

	return w.f.crypto.Decrypt(secret, ciphertext)
}

func (w *Wallet) sharedSecretForEncryption(peerPublicKey []byte) ([]byte, error) {
	secret, err := w.ComputeSharedSecret(peerPublicKey)
	if errors.Is(err, ErrLocked) {
		return nil, ErrEncryptionUnavailable
	}
	return secret, err
}

// Zero wipes all secret key material. A wallet holding an encrypted key
// becomes locked and can still be unlocked; any other wallet keeps only its
// public fields.
func (w *Wallet) Zero() {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.secrets.zero()
	w.locked = w.encryptedKey != ""
}
