package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/AlexZinkM/chain-wallet/internal/nep2"

	"github.com/kelseyhightower/envconfig"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/term"
)

// Config contains all configuration parameters for the wallet tools.
// Passwords are never read from the environment; use PromptForPassword.
type Config struct {
	LogLevel       string `envconfig:"LOG_LEVEL" default:"info"`
	WalletFilePath string `envconfig:"WALLET_FILE_PATH"`
	ScryptN        int    `envconfig:"SCRYPT_N" default:"16384"`
	ScryptR        int    `envconfig:"SCRYPT_R" default:"8"`
	ScryptP        int    `envconfig:"SCRYPT_P" default:"8"`
}

// cfg is the global configuration instance
var cfg *Config

// Init loads configuration from environment variables.
func Init() error {
	c := &Config{}
	if err := envconfig.Process("", c); err != nil {
		return fmt.Errorf("failed to process config: %w", err)
	}
	if c.ScryptN < 2 || c.ScryptN&(c.ScryptN-1) != 0 {
		return fmt.Errorf("SCRYPT_N must be a power of two greater than 1, got %d", c.ScryptN)
	}
	if c.ScryptR < 1 || c.ScryptP < 1 {
		return errors.New("SCRYPT_R and SCRYPT_P must be positive")
	}
	cfg = c
	return nil
}

// Get returns the global configuration instance.
// Panics if Init() was not called.
func Get() *Config {
	if cfg == nil {
		panic("config not initialized, call Init() first")
	}
	return cfg
}

// GetWalletFilePath returns path to .wlt file from configuration
func GetWalletFilePath() string {
	return Get().WalletFilePath
}

// ScryptOptions returns the scrypt cost used for password wrapped keys
func (c *Config) ScryptOptions() nep2.ScryptOptions {
	return nep2.ScryptOptions{N: c.ScryptN, R: c.ScryptR, P: c.ScryptP}
}

// NewLogger builds a production zap logger at the given level
func NewLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	zcfg := zap.NewProductionConfig()
	zcfg.Level = zap.NewAtomicLevelAt(lvl)
	zcfg.OutputPaths = []string{"stderr"}

	logger, err := zcfg.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}
	return logger, nil
}

// PromptForPassword prompts for a password in the terminal without echoing it.
// Caller must zero the returned slice after use.
func PromptForPassword(prompt string) ([]byte, error) {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return nil, errors.New("stdin is not a terminal: run the app interactively to enter password")
	}
	fmt.Fprint(os.Stderr, prompt)
	defer fmt.Fprintln(os.Stderr)

	raw, err := term.ReadPassword(int(os.Stdin.Fd()))
	if err != nil {
		return nil, fmt.Errorf("failed to read password: %w", err)
	}
	if len(raw) == 0 {
		return nil, errors.New("password cannot be empty")
	}

	return raw, nil
}
