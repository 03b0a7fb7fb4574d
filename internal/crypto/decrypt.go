package crypto

import (
	"encoding/base64"
	"errors"
	"fmt"
)

var ErrDecrypt = errors.New("decryption failed")

// Decrypt opens a ciphertext produced by Encrypt with the same key material
func Decrypt(key []byte, ciphertext string) (string, error) {
	sealed, err := base64.StdEncoding.DecodeString(ciphertext)
	if err != nil {
		return "", fmt.Errorf("%w: failed to decode ciphertext: %v", ErrDecrypt, err)
	}

	aesGCM, err := newGCM(key)
	if err != nil {
		return "", err
	}

	if len(sealed) < nonceLen+aesGCM.Overhead() {
		return "", fmt.Errorf("%w: ciphertext too short", ErrDecrypt)
	}

	// Decrypt
	plaintext, err := aesGCM.Open(nil, sealed[:nonceLen], sealed[nonceLen:], nil)
	if err != nil {
		return "", fmt.Errorf("%w: invalid key", ErrDecrypt)
	}
	defer clear(plaintext) // wipe decrypted bytes from memory

	return string(plaintext), nil
}
