// One-off: unlock a wallet record file with the old password and lock it again under a new one.
// Usage: WALLET_FILE_PATH=wallet.wlt go run ./cmd/rewrap_key
package main

import (
	"fmt"
	"os"

	"github.com/AlexZinkM/chain-wallet/internal/config"
	"github.com/AlexZinkM/chain-wallet/internal/nep2"
	"github.com/AlexZinkM/chain-wallet/wallet"

	"go.uber.org/zap"
)

func main() {
	if err := config.Init(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	cfg := config.Get()

	logger, err := config.NewLogger(cfg.LogLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer logger.Sync() //nolint:errcheck

	path := cfg.WalletFilePath
	if path == "" {
		logger.Fatal("WALLET_FILE_PATH is not set")
	}

	if err := run(path, cfg.ScryptOptions(), logger); err != nil {
		logger.Fatal("rewrap failed", zap.String("path", path), zap.Error(err))
	}
}

func run(path string, opts nep2.ScryptOptions, logger *zap.Logger) error {
	f := wallet.NewFactory(wallet.WithScryptOptions(opts), wallet.WithLogger(logger))

	w, err := f.Load(path)
	if err != nil {
		return err
	}
	defer w.Zero()

	if !w.Locked() {
		return fmt.Errorf("wallet %s is not locked", w.Address())
	}

	oldPassword, err := config.PromptForPassword("Enter current password: ")
	if err != nil {
		return err
	}
	defer clear(oldPassword)

	if err := w.Unlock(string(oldPassword)); err != nil {
		return err
	}

	newPassword, err := config.PromptForPassword("Enter new password: ")
	if err != nil {
		return err
	}
	defer clear(newPassword)

	if err := w.Lock(string(newPassword)); err != nil {
		return err
	}

	if err := w.Save(path); err != nil {
		return err
	}

	logger.Info("wallet key rewrapped", zap.String("address", w.Address()))
	return nil
}
