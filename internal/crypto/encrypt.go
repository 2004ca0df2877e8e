package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/nel349/midnight-mobile-connector/internal/model"

	"golang.org/x/crypto/scrypt"
)

const (
	// scrypt parameters for the local wallet file.
	// Security is prioritized over performance.
	//
	// N=2^18 (~256MB RAM, 0.5-2s) - optimal balance:
	//   - Maximum hardening that still fits the mobile runtime this wallet
	//     targets (Android caps an app around 256-512MB)
	//   - Works the same on phones and desktops
	//   - Brute-force attacks remain extremely expensive
	scryptN      = 1 << 18
	scryptR      = 8
	scryptP      = 1
	scryptKeyLen = 32
	saltLen      = 32
	nonceLen     = 12
)

// EncryptWallet encrypts wallet data and writes the .swt file.
// password must be []byte for security (caller should zero it after use)
func EncryptWallet(filePath, network string, addresses []model.RoleAddress, qrCode string, walletData *model.WalletData, password []byte) error {
	// Check file extension (should be .swt)
	if !strings.HasSuffix(filePath, ".swt") {
		return errors.New("file must have .swt extension")
	}

	// Refuse to overwrite an existing wallet
	if fileInfo, err := os.Stat(filePath); err == nil && fileInfo.Size() > 0 {
		return fmt.Errorf("file is not empty: %w", os.ErrExist)
	}

	// Generate salt and nonce
	salt := make([]byte, saltLen)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return fmt.Errorf("failed to generate salt: %w", err)
	}

	nonce := make([]byte, nonceLen)
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return fmt.Errorf("failed to generate nonce: %w", err)
	}

	// Derive key from password
	key, err := scrypt.Key(password, salt, scryptN, scryptR, scryptP, scryptKeyLen)
	if err != nil {
		return fmt.Errorf("failed to derive key: %w", err)
	}

	// Create AES cipher
	block, err := aes.NewCipher(key)
	if err != nil {
		return fmt.Errorf("failed to create cipher: %w", err)
	}

	// Create GCM
	aesGCM, err := cipher.NewGCM(block)
	if err != nil {
		return fmt.Errorf("failed to create GCM: %w", err)
	}

	// Serialize wallet data
	plaintext, err := json.Marshal(walletData)
	if err != nil {
		return fmt.Errorf("failed to marshal wallet data: %w", err)
	}
	defer clear(plaintext) // wipe plaintext bytes from memory

	// Encrypt
	ciphertext := aesGCM.Seal(nil, nonce, plaintext, nil)

	// Create file structure
	walletFile := model.WalletFile{
		Network:    network,
		Addresses:  addresses,
		QR:         qrCode,
		Salt:       base64.StdEncoding.EncodeToString(salt),
		Nonce:      base64.StdEncoding.EncodeToString(nonce),
		CipherText: base64.StdEncoding.EncodeToString(ciphertext),
	}

	// Serialize to JSON
	fileData, err := json.MarshalIndent(walletFile, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal swt file: %w", err)
	}

	// Add UTF-8 BOM for proper display in Windows
	utf8BOM := []byte{0xEF, 0xBB, 0xBF}
	fileDataWithBOM := append(utf8BOM, fileData...)

	// Write to file
	if err := os.WriteFile(filePath, fileDataWithBOM, 0600); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}

	return nil
}
