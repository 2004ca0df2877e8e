package shield

import (
	"encoding/base64"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/nel349/midnight-mobile-connector/internal/crypto"
	"github.com/nel349/midnight-mobile-connector/internal/model"

	"github.com/skip2/go-qrcode"
	"github.com/tyler-smith/go-bip39"
)

// mnemonicEntropyBits yields a 24-word phrase whose entropy is the 32-byte
// wallet seed itself, so restore is exact.
const mnemonicEntropyBits = 256

// ErrInvalidMnemonic reports a recovery phrase that fails the BIP-39
// wordlist/checksum or does not carry 32 bytes of entropy.
var ErrInvalidMnemonic = errors.New("shield: invalid recovery phrase")

// FileExistsError is an error when the wallet file already exists and is
// not empty.
type FileExistsError struct {
	Message string
}

func (e *FileExistsError) Error() string {
	return e.Message
}

// IsFileExistsError checks if error is FileExistsError
func IsFileExistsError(err error) bool {
	var fe *FileExistsError
	return errors.As(err, &fe)
}

// WalletInfo is the public outcome of wallet construction: everything the
// caller may show or persist, nothing secret except the one-time mnemonic.
type WalletInfo struct {
	Network      Network
	Addresses    []model.RoleAddress
	SkippedRoles []Role
	Mnemonic     string
	QR           string
}

// GenerateWallet creates a brand new wallet: fresh 32-byte entropy, 24-word
// recovery phrase, one keypair set per requested role, an address book for
// the network, and the encrypted .swt file.
// password must be []byte for security (caller should zero it after use)
func GenerateWallet(filePath string, password []byte, network Network, roles []Role) (*WalletInfo, error) {
	if err := checkWalletPath(filePath); err != nil {
		return nil, err
	}

	entropy, err := bip39.NewEntropy(mnemonicEntropyBits)
	if err != nil {
		return nil, fmt.Errorf("failed to generate seed entropy: %w", err)
	}
	defer clear(entropy)

	mnemonic, err := bip39.NewMnemonic(entropy)
	if err != nil {
		return nil, fmt.Errorf("failed to build recovery phrase: %w", err)
	}

	return buildWallet(filePath, password, network, roles, entropy, mnemonic)
}

// RestoreWallet rebuilds the same wallet from a 24-word recovery phrase.
// The derived addresses are byte-identical to the original wallet's.
func RestoreWallet(filePath string, password []byte, network Network, roles []Role, mnemonic string) (*WalletInfo, error) {
	if err := checkWalletPath(filePath); err != nil {
		return nil, err
	}

	entropy, err := bip39.EntropyFromMnemonic(mnemonic)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidMnemonic, err)
	}
	defer clear(entropy)
	if len(entropy) != 32 {
		return nil, fmt.Errorf("%w: phrase must carry 32 bytes of entropy, got %d", ErrInvalidMnemonic, len(entropy))
	}

	return buildWallet(filePath, password, network, roles, entropy, mnemonic)
}

// checkWalletPath enforces the .swt extension and refuses to clobber an
// existing non-empty wallet file.
func checkWalletPath(filePath string) error {
	if filepath.Ext(filePath) != ".swt" {
		return fmt.Errorf("file must have .swt extension")
	}
	if fileInfo, err := os.Stat(filePath); err == nil && fileInfo.Size() > 0 {
		return &FileExistsError{Message: "file is not empty"}
	}
	return nil
}

// buildWallet runs the core pipeline: seed -> HD tree -> role keypairs ->
// addresses -> encrypted file. Roles whose derivation path is out of bounds
// are skipped and reported; an empty address book is an error.
func buildWallet(filePath string, password []byte, network Network, roles []Role, seed []byte, mnemonic string) (*WalletInfo, error) {
	keys, skipped, err := DeriveRoleKeyPairsAt(seed, roles, 0, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to derive role keys: %w", err)
	}
	defer func() {
		for i := range keys {
			keys[i].Wipe()
		}
	}()

	if len(keys) == 0 {
		return nil, fmt.Errorf("no role keys could be derived (skipped: %v)", skipped)
	}

	codec := NewCodec()
	addresses := make([]model.RoleAddress, 0, len(keys))
	for i := range keys {
		addr, err := codec.EncodeRole(&keys[i], network)
		if err != nil {
			return nil, fmt.Errorf("failed to encode %s address: %w", keys[i].Role, err)
		}
		addresses = append(addresses, model.RoleAddress{
			Role:                string(keys[i].Role),
			Address:             addr,
			SigningPublicKey:    keys[i].Signing.PublicHex(),
			EncryptionPublicKey: keys[i].Encryption.PublicHex(),
		})
	}

	// QR of the first derived address (external spend in the default set)
	qrCode, err := generateQRCode(addresses[0].Address)
	if err != nil {
		return nil, fmt.Errorf("failed to generate QR code: %w", err)
	}

	walletData := &model.WalletData{
		Seed:      seed,
		Mnemonic:  mnemonic,
		CreatedAt: time.Now().Format(time.RFC3339),
	}

	if err := crypto.EncryptWallet(filePath, string(network), addresses, qrCode, walletData, password); err != nil {
		return nil, fmt.Errorf("failed to encrypt wallet: %w", err)
	}

	return &WalletInfo{
		Network:      network,
		Addresses:    addresses,
		SkippedRoles: skipped,
		Mnemonic:     mnemonic,
		QR:           qrCode,
	}, nil
}

// generateQRCode generates QR code of address in base64
func generateQRCode(address string) (string, error) {
	qr, err := qrcode.New(address, qrcode.Medium)
	if err != nil {
		return "", fmt.Errorf("failed to create QR code: %w", err)
	}

	// Get PNG image
	png, err := qr.PNG(256)
	if err != nil {
		return "", fmt.Errorf("failed to generate PNG: %w", err)
	}

	// Encode to base64
	return base64.StdEncoding.EncodeToString(png), nil
}
