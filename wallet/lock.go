package wallet

import (
	"fmt"

	"go.uber.org/zap"
)

// Lock encrypts the WIF under password, keeps the result as the encrypted
// key and wipes every secret field, primary and legacy alike.
//
// Lock fails with ErrAlreadyLocked or ErrNoSecret without touching the
// wallet, so a caller may retry.
func (w *Wallet) Lock(password string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.locked {
		return ErrAlreadyLocked
	}
	if w.secrets.wif == "" {
		return ErrNoSecret
	}

	encrypted, err := w.f.keys.Encrypt(w.secrets.wif, password)
	if err != nil {
		return fmt.Errorf("failed to encrypt key: %w", err)
	}

	w.encryptedKey = encrypted
	w.secrets.zero()
	w.locked = true

	w.f.logger.Info("wallet locked", zap.String("address", w.address))
	return nil
}

// Unlock decrypts the encrypted key with password and restores the secret
// fields through the same derivation used at construction.
//
// A wrong password and a corrupt encrypted key both give ErrWrongPassword and
// leave the wallet locked and unchanged.
func (w *Wallet) Unlock(password string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if !w.locked {
		return ErrNotLocked
	}

	wif, err := w.f.keys.Decrypt(w.encryptedKey, password)
	if err != nil || wif == "" {
		w.f.logger.Debug("wallet unlock failed", zap.String("address", w.address))
		return ErrWrongPassword
	}

	s, err := w.f.recoverSecrets(wif, w.address)
	if err != nil {
		w.f.logger.Debug("wallet unlock failed", zap.String("address", w.address))
		return err
	}

	w.secrets.replace(s)
	w.locked = false

	w.f.logger.Info("wallet unlocked", zap.String("address", w.address))
	return nil
}
