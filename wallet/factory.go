package wallet

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/AlexZinkM/chain-wallet/internal/codec"
	"github.com/AlexZinkM/chain-wallet/internal/crypto"
	"github.com/AlexZinkM/chain-wallet/internal/nep2"

	"go.uber.org/zap"
)

const (
	// PrimaryPrivateKeyLength is the length of a raw primary private key
	PrimaryPrivateKeyLength = crypto.PrivateKeyLength
	// LegacyPrivateKeyLength is the length of a serialized legacy private key
	LegacyPrivateKeyLength = crypto.LegacyPrivateKeyLength
)

// Factory builds wallets. Every constructor funnels through deriveSecrets, so a
// wallet never exists with primary and legacy keys that disagree.
type Factory struct {
	crypto CryptoProvider
	keys   KeyCodec
	codec  Codec
	logger *zap.Logger
}

// Option configures a Factory
type Option func(*Factory)

// WithCryptoProvider replaces the curve implementation
func WithCryptoProvider(p CryptoProvider) Option {
	return func(f *Factory) { f.crypto = p }
}

// WithKeyCodec replaces the password based key codec
func WithKeyCodec(c KeyCodec) Option {
	return func(f *Factory) { f.keys = c }
}

// WithCodec replaces the hex and address codec
func WithCodec(c Codec) Option {
	return func(f *Factory) { f.codec = c }
}

// WithLogger sets the logger used by the factory and the wallets it builds
func WithLogger(l *zap.Logger) Option {
	return func(f *Factory) {
		if l != nil {
			f.logger = l
		}
	}
}

// WithScryptOptions uses the built in key codec with the given scrypt cost
func WithScryptOptions(opts nep2.ScryptOptions) Option {
	return func(f *Factory) { f.keys = nep2.NewCodec(opts) }
}

// NewFactory returns a Factory with the built in collaborators unless
// overridden by opts.
func NewFactory(opts ...Option) *Factory {
	f := &Factory{
		crypto: crypto.Provider{},
		keys:   nep2.NewCodec(nep2.DefaultScryptOptions),
		codec:  codec.Codec{},
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

var defaultFactory = NewFactory()

// New creates a wallet from a fresh random legacy account
func (f *Factory) New() (*Wallet, error) {
	account, err := f.crypto.RandomAccount()
	if err != nil {
		return nil, fmt.Errorf("failed to generate account: %w", err)
	}
	return f.fromAccount(account)
}

// NewLocked creates a labelled wallet and locks it under password
func (f *Factory) NewLocked(label, password string) (*Wallet, error) {
	w, err := f.New()
	if err != nil {
		return nil, err
	}
	w.label = label

	if err := w.Lock(password); err != nil {
		w.Zero()
		return nil, fmt.Errorf("failed to lock new wallet: %w", err)
	}
	return w, nil
}

// FromWIF creates a wallet from a WIF string
func (f *Factory) FromWIF(wif string) (*Wallet, error) {
	account, err := f.crypto.AccountFromWIF(wif)
	if err != nil {
		f.logger.Debug("wif rejected", zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrInvalidEncoding, err)
	}
	return f.fromAccount(account)
}

// FromPrivateKey creates a wallet from raw private key bytes. The length
// alone decides how the bytes are read: 32 bytes is a primary scalar, 67
// bytes is a serialized legacy key. Anything else is rejected.
func (f *Factory) FromPrivateKey(key []byte) (*Wallet, error) {
	switch len(key) {
	case PrimaryPrivateKeyLength:
		return f.fromPrimaryPrivateKey(key)
	case LegacyPrivateKeyLength:
		return f.fromLegacyPrivateKey(key)
	default:
		f.logger.Debug("private key rejected", zap.Int("length", len(key)))
		return nil, fmt.Errorf("%w: %d bytes", ErrUnrecognizedKeyLength, len(key))
	}
}

// FromPrivateKeyHex hex-decodes a private key and calls FromPrivateKey
func (f *Factory) FromPrivateKeyHex(privateKeyHex string) (*Wallet, error) {
	raw, err := f.codec.HexToBytes(privateKeyHex)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidHexEncoding, err)
	}
	defer clear(raw)

	return f.FromPrivateKey(raw)
}

func (f *Factory) fromPrimaryPrivateKey(key []byte) (*Wallet, error) {
	kp, err := f.crypto.KeypairFromPrivateKeyHex(f.codec.BytesToHex(key))
	if err != nil {
		f.logger.Debug("primary private key rejected", zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrInvalidPrivateKey, err)
	}
	defer kp.Zero()

	account, err := f.crypto.AccountFromWIF(kp.WIF)
	if err != nil {
		return nil, fmt.Errorf("failed to derive legacy account: %w", err)
	}
	return f.fromAccount(account)
}

func (f *Factory) fromLegacyPrivateKey(key []byte) (*Wallet, error) {
	account, err := f.crypto.AccountFromPrivateKey(key)
	if err != nil {
		f.logger.Debug("legacy private key rejected", zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrInvalidPrivateKey, err)
	}
	return f.fromAccount(account)
}

// fromAccount assembles a wallet from a legacy account
func (f *Factory) fromAccount(account *Account) (*Wallet, error) {
	s, err := f.deriveSecrets(account)
	if err != nil {
		return nil, err
	}

	w := &Wallet{}
	f.init(w, account.Address, account.PublicKey, "", "", s)
	return w, nil
}

// deriveSecrets derives the primary keypair from the account WIF and checks
// that both resolve to the same address and public key. The returned secrets
// take ownership of the account's private key buffer.
func (f *Factory) deriveSecrets(account *Account) (*secrets, error) {
	kp, err := f.crypto.KeypairFromWIF(account.WIF)
	if err != nil {
		account.Zero()
		return nil, fmt.Errorf("%w: %v", ErrInvalidEncoding, err)
	}

	if kp.Address != account.Address || !bytes.Equal(kp.PublicKey, account.PublicKey) {
		kp.Zero()
		account.Zero()
		return nil, ErrInconsistentKeys
	}

	return &secrets{
		wif:              account.WIF,
		privateKey:       account.PrivateKey,
		privateKeyString: f.codec.BytesToHex(account.PrivateKey),
		primary:          kp,
	}, nil
}

// recoverSecrets rebuilds the secrets of the wallet at address from a WIF.
// Any failure is reported as ErrWrongPassword.
func (f *Factory) recoverSecrets(wif, address string) (*secrets, error) {
	account, err := f.crypto.AccountFromWIF(wif)
	if err != nil {
		return nil, ErrWrongPassword
	}

	s, err := f.deriveSecrets(account)
	if err != nil {
		return nil, ErrWrongPassword
	}
	if account.Address != address {
		s.zero()
		return nil, ErrWrongPassword
	}
	return s, nil
}

// New creates a wallet with the default factory
func New() (*Wallet, error) { return defaultFactory.New() }

// NewLocked creates a locked, labelled wallet with the default factory
func NewLocked(label, password string) (*Wallet, error) {
	return defaultFactory.NewLocked(label, password)
}

// FromWIF creates a wallet from a WIF string with the default factory
func FromWIF(wif string) (*Wallet, error) { return defaultFactory.FromWIF(wif) }

// FromPrivateKey creates a wallet from raw private key bytes with the default factory
func FromPrivateKey(key []byte) (*Wallet, error) { return defaultFactory.FromPrivateKey(key) }

// FromPrivateKeyHex creates a wallet from a hex private key with the default factory
func FromPrivateKeyHex(privateKeyHex string) (*Wallet, error) {
	return defaultFactory.FromPrivateKeyHex(privateKeyHex)
}

// IsKeyError reports whether err was caused by malformed key input rather
// than by an unexpected collaborator failure.
func IsKeyError(err error) bool {
	return errors.Is(err, ErrInvalidEncoding) ||
		errors.Is(err, ErrUnrecognizedKeyLength) ||
		errors.Is(err, ErrInvalidHexEncoding) ||
		errors.Is(err, ErrInvalidPrivateKey)
}
