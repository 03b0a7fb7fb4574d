// Package nep2 wraps a WIF under a password using scrypt and AES-256, in the
// NEP-2 layout: the address hash doubles as the scrypt salt and lets a
// decryptor detect a wrong password.
package nep2

import (
	"crypto/aes"
	"crypto/sha256"
	"errors"
	"fmt"

	"github.com/AlexZinkM/chain-wallet/internal/crypto"

	"github.com/btcsuite/btcd/btcutil/base58"
	"golang.org/x/crypto/scrypt"
)

const (
	version      byte = 0x01
	prefix       byte = 0x42
	flag         byte = 0xE0
	addrHashLen       = 4
	scalarLen         = crypto.PrivateKeyLength
	payloadLen        = 2 + addrHashLen + scalarLen
	scryptKeyLen      = 64
)

var (
	// ErrEmptySecret is returned when there is nothing to encrypt
	ErrEmptySecret = errors.New("empty secret")
	// ErrMalformed is returned for strings that are not an encrypted key
	ErrMalformed = errors.New("malformed encrypted key")
	// ErrWrongPassword is returned when the password does not open the key
	ErrWrongPassword = errors.New("wrong password")
)

// ScryptOptions is used to hold the scrypt parameters needed when deriving
// the key encryption key.
type ScryptOptions struct {
	N, R, P int
}

// DefaultScryptOptions are the standard NEP-2 parameters.
var DefaultScryptOptions = ScryptOptions{
	N: 16384,
	R: 8,
	P: 8,
}

// FastScryptOptions are the scrypt options that should be used for testing
// purposes only where speed is more important than security.
var FastScryptOptions = ScryptOptions{
	N: 16,
	R: 8,
	P: 1,
}

// Codec encrypts and decrypts WIF strings with fixed scrypt options
type Codec struct {
	Options ScryptOptions
}

// NewCodec returns a Codec using opts
func NewCodec(opts ScryptOptions) *Codec {
	return &Codec{Options: opts}
}

// Encrypt wraps wif under password
func (c *Codec) Encrypt(wif, password string) (string, error) {
	return Encrypt(wif, password, c.Options)
}

// Decrypt recovers the WIF wrapped in encrypted
func (c *Codec) Decrypt(encrypted, password string) (string, error) {
	return Decrypt(encrypted, password, c.Options)
}

// Encrypt wraps wif under password and returns the base58check encoded result
func Encrypt(wif, password string, opts ScryptOptions) (string, error) {
	if wif == "" {
		return "", ErrEmptySecret
	}

	kp, err := crypto.KeypairFromWIF(wif)
	if err != nil {
		return "", fmt.Errorf("failed to decode WIF: %w", err)
	}
	defer kp.Zero()

	addrHash := addressHash(kp.Address)

	derived, err := deriveKey(password, addrHash, opts)
	if err != nil {
		return "", err
	}
	defer clear(derived)

	block, err := aes.NewCipher(derived[scalarLen:])
	if err != nil {
		return "", fmt.Errorf("failed to create cipher: %w", err)
	}

	xored := make([]byte, scalarLen)
	defer clear(xored)
	for i := range xored {
		xored[i] = kp.PrivateKey[i] ^ derived[i]
	}

	payload := make([]byte, 0, payloadLen)
	payload = append(payload, prefix, flag)
	payload = append(payload, addrHash...)

	encrypted := make([]byte, scalarLen)
	for off := 0; off < scalarLen; off += aes.BlockSize {
		block.Encrypt(encrypted[off:off+aes.BlockSize], xored[off:off+aes.BlockSize])
	}
	payload = append(payload, encrypted...)

	return base58.CheckEncode(payload, version), nil
}

// Decrypt recovers the WIF wrapped in encrypted. A password that decrypts to
// a key whose address hash differs from the stored one is reported as
// ErrWrongPassword.
func Decrypt(encrypted, password string, opts ScryptOptions) (string, error) {
	payload, ver, err := base58.CheckDecode(encrypted)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if ver != version || len(payload) != payloadLen || payload[0] != prefix || payload[1] != flag {
		return "", ErrMalformed
	}

	addrHash := payload[2 : 2+addrHashLen]

	derived, err := deriveKey(password, addrHash, opts)
	if err != nil {
		return "", err
	}
	defer clear(derived)

	block, err := aes.NewCipher(derived[scalarLen:])
	if err != nil {
		return "", fmt.Errorf("failed to create cipher: %w", err)
	}

	scalar := make([]byte, scalarLen)
	defer clear(scalar)
	ciphertext := payload[2+addrHashLen:]
	for off := 0; off < scalarLen; off += aes.BlockSize {
		block.Decrypt(scalar[off:off+aes.BlockSize], ciphertext[off:off+aes.BlockSize])
	}
	for i := range scalar {
		scalar[i] ^= derived[i]
	}

	kp, err := crypto.KeypairFromPrivateKey(scalar)
	if err != nil {
		return "", ErrWrongPassword
	}
	defer kp.Zero()

	if string(addressHash(kp.Address)) != string(addrHash) {
		return "", ErrWrongPassword
	}

	return kp.WIF, nil
}

func deriveKey(password string, salt []byte, opts ScryptOptions) ([]byte, error) {
	key, err := scrypt.Key([]byte(password), salt, opts.N, opts.R, opts.P, scryptKeyLen)
	if err != nil {
		return nil, fmt.Errorf("failed to derive key: %w", err)
	}
	return key, nil
}

func addressHash(address string) []byte {
	first := sha256.Sum256([]byte(address))
	second := sha256.Sum256(first[:])
	return second[:addrHashLen]
}

// IsEncryptedKey reports whether s has the layout of an encrypted key.
// It does not check that any password opens it.
func IsEncryptedKey(s string) bool {
	payload, ver, err := base58.CheckDecode(s)
	if err != nil {
		return false
	}
	return ver == version && len(payload) == payloadLen && payload[0] == prefix && payload[1] == flag
}
