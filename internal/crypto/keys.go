package crypto

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/AlexZinkM/chain-wallet/internal/codec"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg"
)

const (
	// PrivateKeyLength is the length of a raw primary private key (a secp256k1 scalar)
	PrivateKeyLength = 32
	// LegacyPrivateKeyLength is the length of a serialized legacy private key:
	// algorithm tag, curve label, scalar and compressed public key.
	LegacyPrivateKeyLength = 2 + PrivateKeyLength + btcec.PubKeyBytesLenCompressed

	legacyAlgorithmECDSA byte = 0x12
	legacyCurveSecp256k1 byte = 0x02

	opPushBytes33 byte = 0x21
	opCheckSig    byte = 0xAC
)

var (
	ErrInvalidPrivateKey = errors.New("invalid private key")
	ErrInvalidPublicKey  = errors.New("invalid public key")
	ErrInvalidWIF        = errors.New("invalid WIF")
)

// wifNet is the network whose private key id is used for WIF strings
var wifNet = &chaincfg.MainNetParams

// Keypair is the primary identity keypair. It is used for shared secrets and
// symmetric encryption.
type Keypair struct {
	PrivateKey []byte // 32-byte scalar
	PublicKey  []byte // 33-byte compressed point
	WIF        string
	Address    string
}

// Zero wipes the private material held by the keypair
func (k *Keypair) Zero() {
	if k == nil {
		return
	}
	clear(k.PrivateKey)
	k.PrivateKey = nil
	k.WIF = ""
}

// Account is the legacy account. Its private key is kept in the serialized
// 67-byte form and its WIF is what gets password-wrapped.
type Account struct {
	Address    string
	WIF        string
	PrivateKey []byte // LegacyPrivateKeyLength bytes
	PublicKey  []byte
}

// Zero wipes the private material held by the account
func (a *Account) Zero() {
	if a == nil {
		return
	}
	clear(a.PrivateKey)
	a.PrivateKey = nil
	a.WIF = ""
}

// RandomAccount generates a legacy account from a fresh random scalar
func RandomAccount() (*Account, error) {
	priv, err := btcec.NewPrivateKey()
	if err != nil {
		return nil, fmt.Errorf("failed to generate private key: %w", err)
	}
	defer priv.Zero()

	return newAccount(priv)
}

// AccountFromWIF decodes a WIF string into a legacy account
func AccountFromWIF(wif string) (*Account, error) {
	priv, err := decodeWIF(wif)
	if err != nil {
		return nil, err
	}
	defer priv.Zero()

	return newAccount(priv)
}

// AccountFromPrivateKey parses a serialized legacy private key
func AccountFromPrivateKey(key []byte) (*Account, error) {
	priv, err := parseLegacyPrivateKey(key)
	if err != nil {
		return nil, err
	}
	defer priv.Zero()

	return newAccount(priv)
}

// KeypairFromWIF decodes a WIF string into a primary keypair
func KeypairFromWIF(wif string) (*Keypair, error) {
	priv, err := decodeWIF(wif)
	if err != nil {
		return nil, err
	}
	defer priv.Zero()

	return newKeypair(priv)
}

// KeypairFromPrivateKey builds a primary keypair from a raw 32-byte scalar
func KeypairFromPrivateKey(raw []byte) (*Keypair, error) {
	priv, err := privateKeyFromScalar(raw)
	if err != nil {
		return nil, err
	}
	defer priv.Zero()

	return newKeypair(priv)
}

// KeypairFromPrivateKeyHex builds a primary keypair from a hex encoded 32-byte scalar
func KeypairFromPrivateKeyHex(privateKeyHex string) (*Keypair, error) {
	raw, err := codec.HexToBytes(privateKeyHex)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPrivateKey, err)
	}
	defer clear(raw)

	return KeypairFromPrivateKey(raw)
}

// AddressFromPublicKey derives the address of a public key. Compressed and
// uncompressed encodings give the same address.
func AddressFromPublicKey(publicKey []byte) (string, error) {
	pub, err := btcec.ParsePubKey(publicKey)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidPublicKey, err)
	}
	return addressFromPubKey(pub), nil
}

func addressFromPubKey(pub *btcec.PublicKey) string {
	script := make([]byte, 0, btcec.PubKeyBytesLenCompressed+2)
	script = append(script, opPushBytes33)
	script = append(script, pub.SerializeCompressed()...)
	script = append(script, opCheckSig)

	return codec.EncodeAddress(btcutil.Hash160(script))
}

func newKeypair(priv *btcec.PrivateKey) (*Keypair, error) {
	wif, err := encodeWIF(priv)
	if err != nil {
		return nil, err
	}

	return &Keypair{
		PrivateKey: priv.Serialize(),
		PublicKey:  priv.PubKey().SerializeCompressed(),
		WIF:        wif,
		Address:    addressFromPubKey(priv.PubKey()),
	}, nil
}

func newAccount(priv *btcec.PrivateKey) (*Account, error) {
	wif, err := encodeWIF(priv)
	if err != nil {
		return nil, err
	}

	return &Account{
		Address:    addressFromPubKey(priv.PubKey()),
		WIF:        wif,
		PrivateKey: serializeLegacyPrivateKey(priv),
		PublicKey:  priv.PubKey().SerializeCompressed(),
	}, nil
}

// privateKeyFromScalar rejects scalars that are zero or not below the group order
func privateKeyFromScalar(raw []byte) (*btcec.PrivateKey, error) {
	if len(raw) != PrivateKeyLength {
		return nil, fmt.Errorf("%w: expected %d bytes, got %d", ErrInvalidPrivateKey, PrivateKeyLength, len(raw))
	}

	var scalar btcec.ModNScalar
	overflow := scalar.SetByteSlice(raw)
	isZero := scalar.IsZero()
	scalar.Zero()
	if overflow || isZero {
		return nil, fmt.Errorf("%w: scalar out of range", ErrInvalidPrivateKey)
	}

	priv, _ := btcec.PrivKeyFromBytes(raw)
	return priv, nil
}

func serializeLegacyPrivateKey(priv *btcec.PrivateKey) []byte {
	scalar := priv.Serialize()
	defer clear(scalar)

	out := make([]byte, 0, LegacyPrivateKeyLength)
	out = append(out, legacyAlgorithmECDSA, legacyCurveSecp256k1)
	out = append(out, scalar...)
	out = append(out, priv.PubKey().SerializeCompressed()...)
	return out
}

func parseLegacyPrivateKey(key []byte) (*btcec.PrivateKey, error) {
	if len(key) != LegacyPrivateKeyLength {
		return nil, fmt.Errorf("%w: expected %d bytes, got %d", ErrInvalidPrivateKey, LegacyPrivateKeyLength, len(key))
	}
	if key[0] != legacyAlgorithmECDSA {
		return nil, fmt.Errorf("%w: unknown algorithm 0x%02x", ErrInvalidPrivateKey, key[0])
	}
	if key[1] != legacyCurveSecp256k1 {
		return nil, fmt.Errorf("%w: unknown curve 0x%02x", ErrInvalidPrivateKey, key[1])
	}

	priv, err := privateKeyFromScalar(key[2 : 2+PrivateKeyLength])
	if err != nil {
		return nil, err
	}
	if !bytes.Equal(priv.PubKey().SerializeCompressed(), key[2+PrivateKeyLength:]) {
		priv.Zero()
		return nil, fmt.Errorf("%w: public key does not match", ErrInvalidPrivateKey)
	}

	return priv, nil
}

func encodeWIF(priv *btcec.PrivateKey) (string, error) {
	wif, err := btcutil.NewWIF(priv, wifNet, true)
	if err != nil {
		return "", fmt.Errorf("failed to encode WIF: %w", err)
	}
	return wif.String(), nil
}

func decodeWIF(s string) (*btcec.PrivateKey, error) {
	if s == "" {
		return nil, fmt.Errorf("%w: empty string", ErrInvalidWIF)
	}

	wif, err := btcutil.DecodeWIF(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidWIF, err)
	}
	if !wif.IsForNet(wifNet) {
		return nil, fmt.Errorf("%w: wrong network", ErrInvalidWIF)
	}

	scalar := wif.PrivKey.Serialize()
	defer clear(scalar)
	wif.PrivKey.Zero()

	priv, err := privateKeyFromScalar(scalar)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidWIF, err)
	}
	return priv, nil
}
