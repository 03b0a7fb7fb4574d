package model

// WalletRecord is the serialized form of a wallet.
// Secret fields are empty while the wallet is locked.
type WalletRecord struct {
	Address          string `json:"address"`
	PublicKey        []byte `json:"publicKey"` // base64 in JSON
	PublicKeyString  string `json:"publicKeyString"`
	WIF              string `json:"wif"`
	PrivateKey       []byte `json:"privateKey"`
	PrivateKeyString string `json:"privateKeyString"`
	Label            string `json:"label,omitempty"`
	EncryptedKey     string `json:"encryptedKey,omitempty"` // NEP-2 string, set once the wallet was locked
}

// Locked reports whether the record describes a locked wallet
func (r *WalletRecord) Locked() bool {
	return r.EncryptedKey != "" && r.WIF == "" && len(r.PrivateKey) == 0
}

// Zero wipes secret fields of the record
func (r *WalletRecord) Zero() {
	clear(r.PrivateKey)
	r.PrivateKey = nil
	r.PrivateKeyString = ""
	r.WIF = ""
}
