package wallet

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/AlexZinkM/chain-wallet/internal/model"
)

// Record returns the serialized form of the wallet. Secret fields are empty
// while the wallet is locked.
func (w *Wallet) Record() *model.WalletRecord {
	w.mu.RLock()
	defer w.mu.RUnlock()

	return &model.WalletRecord{
		Address:          w.address,
		PublicKey:        bytes.Clone(w.publicKey),
		PublicKeyString:  w.publicKeyString,
		WIF:              w.secrets.wif,
		PrivateKey:       bytes.Clone(w.secrets.privateKey),
		PrivateKeyString: w.secrets.privateKeyString,
		Label:            w.label,
		EncryptedKey:     w.encryptedKey,
	}
}

// MarshalJSON implements json.Marshaler
func (w *Wallet) MarshalJSON() ([]byte, error) {
	rec := w.Record()
	defer rec.Zero()

	return json.Marshal(rec)
}

// ToData returns the JSON encoded wallet record
func (w *Wallet) ToData() ([]byte, error) {
	data, err := json.Marshal(w)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal wallet: %w", err)
	}
	return data, nil
}

// UnmarshalJSON implements json.Unmarshaler using the default factory
func (w *Wallet) UnmarshalJSON(data []byte) error {
	return defaultFactory.decodeInto(w, data)
}

// Decode builds a wallet from a JSON encoded record. Secrets are re-derived
// from the WIF, and a record whose fields disagree with each other is
// rejected with ErrInconsistentRecord.
func (f *Factory) Decode(data []byte) (*Wallet, error) {
	w := &Wallet{}
	if err := f.decodeInto(w, data); err != nil {
		return nil, err
	}
	return w, nil
}

// FromRecord builds a wallet from a decoded record
func (f *Factory) FromRecord(rec *model.WalletRecord) (*Wallet, error) {
	w := &Wallet{}
	if err := f.fromRecord(w, rec); err != nil {
		return nil, err
	}
	return w, nil
}

// Decode builds a wallet from a JSON encoded record with the default factory
func Decode(data []byte) (*Wallet, error) { return defaultFactory.Decode(data) }

func (f *Factory) decodeInto(w *Wallet, data []byte) error {
	var rec model.WalletRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return fmt.Errorf("failed to unmarshal wallet record: %w", err)
	}
	defer rec.Zero()

	return f.fromRecord(w, &rec)
}

func (f *Factory) fromRecord(w *Wallet, rec *model.WalletRecord) error {
	address, err := f.crypto.AddressFromPublicKey(rec.PublicKey)
	if err != nil || address != rec.Address {
		return fmt.Errorf("%w: address does not match public key", ErrInconsistentRecord)
	}
	if rec.PublicKeyString != f.codec.BytesToHex(rec.PublicKey) {
		return fmt.Errorf("%w: public key string does not match public key", ErrInconsistentRecord)
	}

	var s *secrets
	if rec.WIF != "" {
		account, err := f.crypto.AccountFromWIF(rec.WIF)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidEncoding, err)
		}
		if s, err = f.deriveSecrets(account); err != nil {
			return err
		}
		if account.Address != rec.Address {
			s.zero()
			return fmt.Errorf("%w: WIF does not match address", ErrInconsistentRecord)
		}
		if rec.PrivateKeyString != "" && rec.PrivateKeyString != s.privateKeyString {
			s.zero()
			return fmt.Errorf("%w: private key does not match WIF", ErrInconsistentRecord)
		}
	} else if len(rec.PrivateKey) > 0 || rec.PrivateKeyString != "" {
		return fmt.Errorf("%w: private key without WIF", ErrInconsistentRecord)
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	f.init(w, rec.Address, rec.PublicKey, rec.Label, rec.EncryptedKey, s)
	return nil
}

type fingerprint struct {
	address          string
	publicKeyString  string
	wif              string
	privateKeyString string
	primaryKeyString string
}

func (w *Wallet) fingerprint() fingerprint {
	w.mu.RLock()
	defer w.mu.RUnlock()

	fp := fingerprint{
		address:          w.address,
		publicKeyString:  w.publicKeyString,
		wif:              w.secrets.wif,
		privateKeyString: w.secrets.privateKeyString,
	}
	if w.secrets.primary != nil {
		fp.primaryKeyString = w.f.codec.BytesToHex(w.secrets.primary.PrivateKey)
	}
	return fp
}

// Same reports whether a and b carry the same address, public key and
// currently loaded secrets. A locked wallet and its unlocked twin differ.
func Same(a, b *Wallet) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.fingerprint() == b.fingerprint()
}
