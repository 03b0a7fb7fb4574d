package wallet

import (
	"fmt"

	"github.com/AlexZinkM/chain-wallet/internal/codec"
	"github.com/AlexZinkM/chain-wallet/internal/crypto"
	"github.com/AlexZinkM/chain-wallet/internal/model"
	"github.com/AlexZinkM/chain-wallet/internal/nep2"
)

// NewEncryptedKey wraps wif under password
func (f *Factory) NewEncryptedKey(wif, password string) (string, error) {
	if wif == "" {
		return "", ErrNoSecret
	}

	encrypted, err := f.keys.Encrypt(wif, password)
	if err != nil {
		return "", fmt.Errorf("failed to encrypt key: %w", err)
	}
	return encrypted, nil
}

// WIFFromEncryptedKey unwraps an encrypted key
func (f *Factory) WIFFromEncryptedKey(encrypted, password string) (string, error) {
	wif, err := f.keys.Decrypt(encrypted, password)
	if err != nil || wif == "" {
		return "", ErrWrongPassword
	}
	return wif, nil
}

// AddressFromWIF returns the address of the key in wif
func (f *Factory) AddressFromWIF(wif string) (string, error) {
	account, err := f.crypto.AccountFromWIF(wif)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidEncoding, err)
	}
	defer account.Zero()

	return account.Address, nil
}

// PublicKeyFromWIF returns the hex public key of the key in wif
func (f *Factory) PublicKeyFromWIF(wif string) (string, error) {
	account, err := f.crypto.AccountFromWIF(wif)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidEncoding, err)
	}
	defer account.Zero()

	return f.codec.BytesToHex(account.PublicKey), nil
}

// PublicKeyFromPrivateKey returns the hex public key of a hex private key of
// either supported length.
func (f *Factory) PublicKeyFromPrivateKey(privateKeyHex string) (string, error) {
	w, err := f.FromPrivateKeyHex(privateKeyHex)
	if err != nil {
		return "", err
	}
	defer w.Zero()

	return w.PublicKeyString(), nil
}

// AddressFromPublicKey derives the address of a public key
func (f *Factory) AddressFromPublicKey(publicKey []byte) (string, error) {
	address, err := f.crypto.AddressFromPublicKey(publicKey)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidPublicKey, err)
	}
	return address, nil
}

// AddressFromPublicKeyHex derives the address of a hex public key
func (f *Factory) AddressFromPublicKeyHex(publicKey string) (string, error) {
	raw, err := f.codec.HexToBytes(publicKey)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidHexEncoding, err)
	}
	return f.AddressFromPublicKey(raw)
}

// IsValidAddress reports whether address is well formed
func (f *Factory) IsValidAddress(address string) bool {
	return f.codec.IsValidAddress(address)
}

// NewEncryptedKey wraps wif under password with the default factory
func NewEncryptedKey(wif, password string) (string, error) {
	return defaultFactory.NewEncryptedKey(wif, password)
}

// WIFFromEncryptedKey unwraps an encrypted key with the default factory
func WIFFromEncryptedKey(encrypted, password string) (string, error) {
	return defaultFactory.WIFFromEncryptedKey(encrypted, password)
}

// AddressFromWIF returns the address of the key in wif
func AddressFromWIF(wif string) (string, error) { return defaultFactory.AddressFromWIF(wif) }

// PublicKeyFromWIF returns the hex public key of the key in wif
func PublicKeyFromWIF(wif string) (string, error) { return defaultFactory.PublicKeyFromWIF(wif) }

// PublicKeyFromPrivateKey returns the hex public key of a hex private key
func PublicKeyFromPrivateKey(privateKeyHex string) (string, error) {
	return defaultFactory.PublicKeyFromPrivateKey(privateKeyHex)
}

// AddressFromPublicKey derives the address of a public key
func AddressFromPublicKey(publicKey []byte) (string, error) {
	return defaultFactory.AddressFromPublicKey(publicKey)
}

// AddressFromPublicKeyHex derives the address of a hex public key
func AddressFromPublicKeyHex(publicKey string) (string, error) {
	return defaultFactory.AddressFromPublicKeyHex(publicKey)
}

// IsValidAddress reports whether address is well formed
func IsValidAddress(address string) bool { return codec.IsValidAddress(address) }

// DetectKeyType classifies a string holding key material. Ambiguous input
// resolves in order: address, encrypted key, WIF, then hex by decoded length.
func DetectKeyType(s string) model.KeyType {
	switch {
	case s == "":
		return model.KeyTypeUnknown
	case codec.IsValidAddress(s):
		return model.KeyTypeAddress
	case nep2.IsEncryptedKey(s):
		return model.KeyTypeNEP2
	}

	if account, err := crypto.AccountFromWIF(s); err == nil {
		account.Zero()
		return model.KeyTypeWIF
	}

	raw, err := codec.HexToBytes(s)
	if err != nil {
		return model.KeyTypeUnknown
	}
	defer clear(raw)

	switch len(raw) {
	case PrimaryPrivateKeyLength:
		return model.KeyTypePrimaryPrivateKey
	case LegacyPrivateKeyLength:
		return model.KeyTypePrivateKey
	}
	if _, err := crypto.AddressFromPublicKey(raw); err == nil {
		return model.KeyTypePublicKey
	}
	return model.KeyTypeUnknown
}

