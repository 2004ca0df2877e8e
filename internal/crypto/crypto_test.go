package crypto

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/nel349/midnight-mobile-connector/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testWalletData() *model.WalletData {
	return &model.WalletData{
		Seed:      []byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16, 17, 18, 19, 20, 21, 22, 23, 24, 25, 26, 27, 28, 29, 30, 31, 32},
		Mnemonic:  "abandon ability able",
		CreatedAt: "2026-08-25T10:00:00Z",
	}
}

func testAddresses() []model.RoleAddress {
	return []model.RoleAddress{
		{Role: "NightExternal", Address: "mn_shield-addr_test1qqqq", SigningPublicKey: "aa", EncryptionPublicKey: "bb"},
	}
}

func TestEncryptDecryptRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wallet.swt")
	password := []byte("hunter2")

	err := EncryptWallet(path, "test", testAddresses(), "qr-base64", testWalletData(), password)
	require.NoError(t, err)

	// file is private to the user
	fileInfo, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), fileInfo.Mode().Perm())

	walletFile, walletData, err := DecryptWallet(path, password)
	require.NoError(t, err)
	assert.Equal(t, "test", walletFile.Network)
	assert.Equal(t, testAddresses(), walletFile.Addresses)
	assert.Equal(t, "qr-base64", walletFile.QR)
	assert.Equal(t, testWalletData().Seed, walletData.Seed)
	assert.Equal(t, testWalletData().Mnemonic, walletData.Mnemonic)

	// wrong password fails without leaking details
	_, _, err = DecryptWallet(path, []byte("wrong"))
	assert.EqualError(t, err, "invalid password")
}

func TestEncryptWalletChecks(t *testing.T) {
	password := []byte("pw")

	err := EncryptWallet(filepath.Join(t.TempDir(), "wallet.json"), "test", nil, "", testWalletData(), password)
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "wallet.swt")
	require.NoError(t, os.WriteFile(path, []byte("occupied"), 0600))
	err = EncryptWallet(path, "test", nil, "", testWalletData(), password)
	assert.ErrorIs(t, err, os.ErrExist)
}

func TestReadAddressBookStripsSecrets(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wallet.swt")
	require.NoError(t, EncryptWallet(path, "dev", testAddresses(), "qr", testWalletData(), []byte("pw")))

	book, err := ReadAddressBook(path)
	require.NoError(t, err)
	assert.Equal(t, "dev", book.Network)
	assert.Equal(t, testAddresses(), book.Addresses)
	assert.Empty(t, book.CipherText)
	assert.Empty(t, book.Salt)
	assert.Empty(t, book.Nonce)
}

func TestReadAddressBookMissingFile(t *testing.T) {
	_, err := ReadAddressBook(filepath.Join(t.TempDir(), "missing.swt"))
	assert.EqualError(t, err, "file does not exist")

	path := filepath.Join(t.TempDir(), "empty.swt")
	require.NoError(t, os.WriteFile(path, nil, 0600))
	_, err = ReadAddressBook(path)
	assert.EqualError(t, err, "file is empty")
}
