package model

// WalletFile represents the .swt file structure. Everything outside
// CipherText is public: the address book can be read without the password.
type WalletFile struct {
	Network    string        `json:"network"`
	Addresses  []RoleAddress `json:"addresses"`
	QR         string        `json:"QR"`
	Salt       string        `json:"salt"`
	Nonce      string        `json:"nonce"`
	CipherText string        `json:"cipherText"`
}

// RoleAddress is one role's public material: its address on the wallet's
// network plus both public keys as lowercase hex.
type RoleAddress struct {
	Role                string `json:"role"`
	Address             string `json:"address"`
	SigningPublicKey    string `json:"signingPublicKey"`
	EncryptionPublicKey string `json:"encryptionPublicKey"`
}

// WalletData represents decrypted wallet data.
type WalletData struct {
	Seed      []byte `json:"seed"` // 32 bytes (stored as base64 in JSON)
	Mnemonic  string `json:"mnemonic"`
	CreatedAt string `json:"createdAt"`
}
