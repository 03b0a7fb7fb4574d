package wallet

import (
	"encoding/base64"
	"fmt"

	"github.com/AlexZinkM/chain-wallet/internal/store"

	"github.com/skip2/go-qrcode"
	"go.uber.org/zap"
)

// DefaultQRSize is the side in pixels of address QR codes
const DefaultQRSize = 256

// GenerateWallet creates a new wallet locked under password and saves its
// record to filePath. Returns the address on success.
func (f *Factory) GenerateWallet(filePath, label, password string) (address string, err error) {
	w, err := f.NewLocked(label, password)
	if err != nil {
		return "", err
	}

	if err := store.WriteRecord(filePath, w.Record(), false); err != nil {
		return "", err
	}

	f.logger.Info("wallet generated", zap.String("address", w.Address()), zap.String("path", filePath))
	return w.Address(), nil
}

// Save writes the wallet record to filePath, replacing any existing file.
// An unlocked wallet is written with its secrets in the clear.
func (w *Wallet) Save(filePath string) error {
	rec := w.Record()
	defer rec.Zero()

	return store.WriteRecord(filePath, rec, true)
}

// Load reads a wallet record file
func (f *Factory) Load(filePath string) (*Wallet, error) {
	rec, err := store.ReadRecord(filePath)
	if err != nil {
		return nil, err
	}
	defer rec.Zero()

	return f.FromRecord(rec)
}

// IsFileExistsError reports whether err came from refusing to overwrite a wallet file
func IsFileExistsError(err error) bool {
	return store.IsFileExistsError(err)
}

// AddressQRCode renders the address as a PNG QR code, base64 encoded
func (w *Wallet) AddressQRCode(size int) (string, error) {
	qr, err := qrcode.New(w.address, qrcode.Medium)
	if err != nil {
		return "", fmt.Errorf("failed to create QR code: %w", err)
	}

	// Get PNG image
	png, err := qr.PNG(size)
	if err != nil {
		return "", fmt.Errorf("failed to generate PNG: %w", err)
	}

	// Encode to base64
	return base64.StdEncoding.EncodeToString(png), nil
}
