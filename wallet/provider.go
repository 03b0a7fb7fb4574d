package wallet

import (
	"github.com/AlexZinkM/chain-wallet/internal/crypto"
)

type (
	// Account is the legacy account: address, WIF and the serialized legacy private key
	Account = crypto.Account
	// Keypair is the primary keypair used for shared secrets and symmetric encryption
	Keypair = crypto.Keypair
)

// CryptoProvider supplies the curve operations the wallet relies on
type CryptoProvider interface {
	RandomAccount() (*Account, error)
	AccountFromWIF(wif string) (*Account, error)
	AccountFromPrivateKey(key []byte) (*Account, error)
	KeypairFromWIF(wif string) (*Keypair, error)
	KeypairFromPrivateKeyHex(privateKeyHex string) (*Keypair, error)
	AddressFromPublicKey(publicKey []byte) (string, error)

	Sign(data []byte, privateKeyHex string) ([]byte, error)
	Verify(publicKey, signature, digest []byte) bool
	SharedSecret(privateKey, peerPublicKey []byte) ([]byte, error)

	Encrypt(key []byte, plaintext string) (string, error)
	Decrypt(key []byte, ciphertext string) (string, error)
}

// KeyCodec wraps a WIF under a password and back
type KeyCodec interface {
	Encrypt(secret, password string) (string, error)
	Decrypt(encrypted, password string) (string, error)
}

// Codec converts between bytes and hex and validates addresses
type Codec interface {
	BytesToHex(b []byte) string
	HexToBytes(s string) ([]byte, error)
	IsValidAddress(s string) bool
}
