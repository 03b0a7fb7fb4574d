package crypto

// Provider exposes the package functions as a value so the wallet factory can
// take it as a dependency.
type Provider struct{}

func (Provider) RandomAccount() (*Account, error) { return RandomAccount() }

func (Provider) AccountFromWIF(wif string) (*Account, error) { return AccountFromWIF(wif) }

func (Provider) AccountFromPrivateKey(key []byte) (*Account, error) {
	return AccountFromPrivateKey(key)
}

func (Provider) KeypairFromWIF(wif string) (*Keypair, error) { return KeypairFromWIF(wif) }

func (Provider) KeypairFromPrivateKeyHex(privateKeyHex string) (*Keypair, error) {
	return KeypairFromPrivateKeyHex(privateKeyHex)
}

func (Provider) AddressFromPublicKey(publicKey []byte) (string, error) {
	return AddressFromPublicKey(publicKey)
}

func (Provider) Sign(data []byte, privateKeyHex string) ([]byte, error) {
	return Sign(data, privateKeyHex)
}

func (Provider) Verify(publicKey, signature, digest []byte) bool {
	return Verify(publicKey, signature, digest)
}

func (Provider) SharedSecret(privateKey, peerPublicKey []byte) ([]byte, error) {
	return SharedSecret(privateKey, peerPublicKey)
}

func (Provider) Encrypt(key []byte, plaintext string) (string, error) {
	return Encrypt(key, plaintext)
}

func (Provider) Decrypt(key []byte, ciphertext string) (string, error) {
	return Decrypt(key, ciphertext)
}
