package model

import "fmt"

// KeyType names the kinds of key material a string can carry
type KeyType string

const (
	KeyTypeUnknown           KeyType = "UNKNOWN"
	KeyTypePrivateKey        KeyType = "PRIVATE_KEY"         // serialized legacy private key, hex
	KeyTypePrimaryPrivateKey KeyType = "PRIMARY_PRIVATE_KEY" // raw 32-byte scalar, hex
	KeyTypeNEP2              KeyType = "NEP2"
	KeyTypeWIF               KeyType = "WIF"
	KeyTypeAddress           KeyType = "ADDRESS"
	KeyTypePublicKey         KeyType = "PUBLIC_KEY"
)

// Validate checks that t is one of the known key types
func (t KeyType) Validate() error {
	switch t {
	case KeyTypePrivateKey, KeyTypePrimaryPrivateKey, KeyTypeNEP2, KeyTypeWIF, KeyTypeAddress, KeyTypePublicKey:
		return nil
	}
	return fmt.Errorf("unknown key type %q", string(t))
}
