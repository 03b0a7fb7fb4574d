package codec

import (
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/btcsuite/btcd/btcutil/base58"
)

const (
	// AddressVersion is the version byte prepended to a script hash before
	// base58check encoding. Encoded addresses start with 'A'.
	AddressVersion byte = 0x17
	// ScriptHashLength is the length of the hash carried by an address
	ScriptHashLength = 20
)

var (
	// ErrInvalidHex is returned for strings that are not valid hex
	ErrInvalidHex = errors.New("invalid hex encoding")
	// ErrInvalidAddress is returned for strings that are not a valid address
	ErrInvalidAddress = errors.New("invalid address")
)

// Codec bundles the hex and address helpers behind a value that can be
// handed to the wallet factory.
type Codec struct{}

// BytesToHex encodes bytes as lowercase hex
func (Codec) BytesToHex(b []byte) string {
	return BytesToHex(b)
}

// HexToBytes decodes a hex string
func (Codec) HexToBytes(s string) ([]byte, error) {
	return HexToBytes(s)
}

// IsValidAddress reports whether s is a well formed address
func (Codec) IsValidAddress(s string) bool {
	return IsValidAddress(s)
}

// BytesToHex encodes bytes as lowercase hex
func BytesToHex(b []byte) string {
	return hex.EncodeToString(b)
}

// HexToBytes decodes a hex string. Both letter cases are accepted.
func HexToBytes(s string) ([]byte, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidHex, err)
	}
	return b, nil
}

// EncodeAddress encodes a script hash as a base58check address
func EncodeAddress(scriptHash []byte) string {
	return base58.CheckEncode(scriptHash, AddressVersion)
}

// DecodeAddress returns the script hash carried by an address.
// The checksum, version byte and payload length are all verified.
func DecodeAddress(address string) ([]byte, error) {
	if address == "" {
		return nil, ErrInvalidAddress
	}

	payload, version, err := base58.CheckDecode(address)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidAddress, err)
	}
	if version != AddressVersion {
		return nil, fmt.Errorf("%w: unexpected version 0x%02x", ErrInvalidAddress, version)
	}
	if len(payload) != ScriptHashLength {
		return nil, fmt.Errorf("%w: payload is %d bytes", ErrInvalidAddress, len(payload))
	}

	return payload, nil
}

// IsValidAddress reports whether s is a well formed address
func IsValidAddress(s string) bool {
	_, err := DecodeAddress(s)
	return err == nil
}

// HashFromAddress returns the hex script hash of an address, or "" when the
// address does not decode.
func HashFromAddress(address string) string {
	hash, err := DecodeAddress(address)
	if err != nil {
		return ""
	}
	return BytesToHex(hash)
}
