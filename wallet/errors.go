package wallet

import "errors"

var (
	// ErrInvalidEncoding is returned for a WIF string with a bad checksum or format
	ErrInvalidEncoding = errors.New("invalid WIF encoding")
	// ErrUnrecognizedKeyLength is returned for raw private keys that are neither
	// a primary scalar nor a serialized legacy key
	ErrUnrecognizedKeyLength = errors.New("unrecognized private key length")
	// ErrInvalidHexEncoding is returned for malformed hex input
	ErrInvalidHexEncoding = errors.New("invalid hex encoding")
	// ErrInvalidPrivateKey is returned for a private key of a recognized length
	// whose contents are not a valid key
	ErrInvalidPrivateKey = errors.New("invalid private key")
	// ErrInvalidPublicKey is returned for bytes that are not a curve point
	ErrInvalidPublicKey = errors.New("invalid public key")

	// ErrWrongPassword is returned when an encrypted key cannot be opened.
	// A wrong password and a corrupt encrypted key are not told apart.
	ErrWrongPassword = errors.New("wrong password or corrupt encrypted key")
	// ErrLocked is returned by operations that need the private key while the wallet is locked
	ErrLocked = errors.New("wallet is locked")
	// ErrEncryptionUnavailable is returned by shared encryption while the wallet is locked
	ErrEncryptionUnavailable = errors.New("shared encryption unavailable: wallet is locked")
	// ErrAlreadyLocked is returned by Lock on a locked wallet
	ErrAlreadyLocked = errors.New("wallet is already locked")
	// ErrNotLocked is returned by Unlock on an unlocked wallet
	ErrNotLocked = errors.New("wallet is not locked")
	// ErrNoSecret is returned when the wallet holds no secret key material
	ErrNoSecret = errors.New("wallet has no secret key")

	// ErrInconsistentKeys is returned when the primary and legacy keys derive different addresses
	ErrInconsistentKeys = errors.New("primary and legacy keys do not match")
	// ErrInconsistentRecord is returned when a serialized record contradicts itself
	ErrInconsistentRecord = errors.New("inconsistent wallet record")
)
