package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/nel349/midnight-mobile-connector/internal/model"

	"golang.org/x/crypto/scrypt"
)

// readWalletFile loads and parses the .swt envelope without decrypting.
func readWalletFile(filePath string) (*model.WalletFile, error) {
	fileInfo, err := os.Stat(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.New("file does not exist")
		}
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}

	if fileInfo.Size() == 0 {
		return nil, errors.New("file is empty")
	}

	fileData, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	// Skip UTF-8 BOM if present
	if len(fileData) >= 3 && fileData[0] == 0xEF && fileData[1] == 0xBB && fileData[2] == 0xBF {
		fileData = fileData[3:]
	}

	var walletFile model.WalletFile
	if err := json.Unmarshal(fileData, &walletFile); err != nil {
		return nil, fmt.Errorf("failed to unmarshal swt file: %w", err)
	}

	return &walletFile, nil
}

// DecryptWallet reads and decrypts the .swt file.
// password must be []byte for security (caller should zero it after use)
func DecryptWallet(filePath string, password []byte) (*model.WalletFile, *model.WalletData, error) {
	walletFile, err := readWalletFile(filePath)
	if err != nil {
		return nil, nil, err
	}

	// Decode salt, nonce and ciphertext
	salt, err := base64.StdEncoding.DecodeString(walletFile.Salt)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to decode salt: %w", err)
	}

	nonce, err := base64.StdEncoding.DecodeString(walletFile.Nonce)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to decode nonce: %w", err)
	}

	ciphertext, err := base64.StdEncoding.DecodeString(walletFile.CipherText)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to decode ciphertext: %w", err)
	}

	// Derive key from password
	key, err := scrypt.Key(password, salt, scryptN, scryptR, scryptP, scryptKeyLen)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to derive key: %w", err)
	}

	// Create AES cipher
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create cipher: %w", err)
	}

	// Create GCM
	aesGCM, err := cipher.NewGCM(block)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create GCM: %w", err)
	}

	// Decrypt
	plaintext, err := aesGCM.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, nil, errors.New("invalid password")
	}
	defer clear(plaintext) // wipe decrypted bytes from memory

	// Deserialize wallet data
	var walletData model.WalletData
	if err := json.Unmarshal(plaintext, &walletData); err != nil {
		return nil, nil, fmt.Errorf("failed to unmarshal wallet data: %w", err)
	}

	return walletFile, &walletData, nil
}

// ReadAddressBook reads only the public part of the .swt file (no password
// needed): network, per-role addresses and the QR code.
func ReadAddressBook(filePath string) (*model.WalletFile, error) {
	walletFile, err := readWalletFile(filePath)
	if err != nil {
		return nil, err
	}
	// Never hand the ciphertext to callers that didn't ask to decrypt.
	walletFile.CipherText = ""
	walletFile.Salt = ""
	walletFile.Nonce = ""
	return walletFile, nil
}
