package crypto

import (
	"crypto/sha256"
	"errors"
	"fmt"

	"github.com/AlexZinkM/chain-wallet/internal/codec"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcec/v2/ecdsa"
)

var ErrInvalidSignature = errors.New("invalid signature")

// Sign signs the sha256 digest of data with the hex encoded scalar and
// returns a DER encoded signature.
func Sign(data []byte, privateKeyHex string) ([]byte, error) {
	raw, err := codec.HexToBytes(privateKeyHex)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPrivateKey, err)
	}
	defer clear(raw)

	priv, err := privateKeyFromScalar(raw)
	if err != nil {
		return nil, err
	}
	defer priv.Zero()

	digest := sha256.Sum256(data)
	return ecdsa.Sign(priv, digest[:]).Serialize(), nil
}

// Verify checks a DER signature over digest against publicKey.
// Unparseable keys or signatures verify as false.
func Verify(publicKey, signature, digest []byte) bool {
	pub, err := btcec.ParsePubKey(publicKey)
	if err != nil {
		return false
	}

	sig, err := ecdsa.ParseDERSignature(signature)
	if err != nil {
		return false
	}

	return sig.Verify(digest, pub)
}

// SharedSecret performs ECDH between a raw scalar and a peer public key.
// The result is the 32-byte x coordinate of the shared point, so both sides
// of an exchange compute the same value.
func SharedSecret(privateKey, peerPublicKey []byte) ([]byte, error) {
	priv, err := privateKeyFromScalar(privateKey)
	if err != nil {
		return nil, err
	}
	defer priv.Zero()

	pub, err := btcec.ParsePubKey(peerPublicKey)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPublicKey, err)
	}

	return btcec.GenerateSharedSecret(priv, pub), nil
}
