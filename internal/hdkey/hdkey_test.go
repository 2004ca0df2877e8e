package hdkey

import (
	"bytes"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustHex(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	require.NoError(t, err)
	return b
}

// Published SLIP-0010 ed25519 test vector 1 (16-byte seed, so it exercises
// the raw derivation math below the 32-byte wallet-seed gate).
func TestDerivationVector(t *testing.T) {
	seed := mustHex(t, "000102030405060708090a0b0c0d0e0f")

	master := newMaster(seed)
	assert.Equal(t,
		mustHex(t, "2b4be7f19ee27bbf30c667b642d5f4aa69fd169872f8fc3059c08ebae2eb19e7"),
		master.key[:])
	assert.Equal(t,
		mustHex(t, "90046a93de5380a72b5e45010748567d5ea02bbf6522f979e05c0d8d8ca9fffb"),
		master.chainCode[:])

	child, err := master.child(0) // m/0'
	require.NoError(t, err)
	assert.Equal(t,
		mustHex(t, "68e0fe46dfb67e368c75379acec591dad19df3cde26e63b93a8e704f1dade7a3"),
		child.key[:])
	assert.Equal(t,
		mustHex(t, "8b59aa11380b624e81507a27fedda59fea6d0b779a778918a2fd3590e16e9c69"),
		child.chainCode[:])
}

func TestNewTreeSeedLength(t *testing.T) {
	for _, n := range []int{0, 16, 31, 33, 64} {
		_, err := NewTree(make([]byte, n))
		assert.ErrorIs(t, err, ErrInvalidSeed, "seed length %d", n)
	}

	tree, err := NewTree(make([]byte, SeedLen))
	require.NoError(t, err)
	require.NotNil(t, tree)
}

func TestDeriveLeafDeterminism(t *testing.T) {
	seed := bytes.Repeat([]byte{0xab}, SeedLen)
	tree, err := NewTree(seed)
	require.NoError(t, err)

	a, err := tree.DeriveLeaf(44, 2400, 0, 0, 0)
	require.NoError(t, err)
	b, err := tree.DeriveLeaf(44, 2400, 0, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, a, b)
	assert.Len(t, a, KeyLen)

	// same tree, sibling path, different leaf
	c, err := tree.DeriveLeaf(44, 2400, 0, 1, 0)
	require.NoError(t, err)
	assert.NotEqual(t, a, c)

	// different seed, same path, different leaf
	seed2 := bytes.Repeat([]byte{0xac}, SeedLen)
	tree2, err := NewTree(seed2)
	require.NoError(t, err)
	d, err := tree2.DeriveLeaf(44, 2400, 0, 0, 0)
	require.NoError(t, err)
	assert.NotEqual(t, a, d)
}

func TestDeriveLeafOutOfBounds(t *testing.T) {
	tree, err := NewTree(make([]byte, SeedLen))
	require.NoError(t, err)

	_, err = tree.DeriveLeaf(hardenedOffset)
	assert.ErrorIs(t, err, ErrKeyOutOfBounds)

	_, err = tree.DeriveLeaf(0, 0, 0xffffffff)
	assert.ErrorIs(t, err, ErrKeyOutOfBounds)

	// edge of the valid range still derives
	_, err = tree.DeriveLeaf(hardenedOffset - 1)
	assert.NoError(t, err)
}
