package shield

import (
	"crypto/ed25519"
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/nel349/midnight-mobile-connector/internal/hdkey"

	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/curve25519"
)

// HD path constants: m / purpose' / coinType' / account' / role' / index'.
// All indices are hardened by the tree itself.
const (
	hdPurpose  uint32 = 44
	hdCoinType uint32 = 2400 // shield derivation path coin type
)

// PublicKeyLen is the byte length of every public key in this package.
const PublicKeyLen = 32

var (
	// ErrInvalidSeed mirrors the HD tree's seed-length contract.
	ErrInvalidSeed = hdkey.ErrInvalidSeed

	// ErrKeyOutOfBounds mirrors the HD tree's index contract. Recoverable:
	// wallet construction skips the role and reports it.
	ErrKeyOutOfBounds = hdkey.ErrKeyOutOfBounds

	// ErrInvalidKeyMaterial reports a leaf key of the wrong length reaching
	// the synthesizer. Always an integration bug upstream.
	ErrInvalidKeyMaterial = errors.New("shield: key material must be exactly 32 bytes")

	// ErrUnknownRole reports a role outside the canonical set.
	ErrUnknownRole = errors.New("shield: unknown role")
)

// KeyPair is a derived (public, private) pair. Private is the 32-byte seed
// scalar of the scheme; Public is the matching curve point.
type KeyPair struct {
	Public  []byte
	Private []byte
}

// PublicHex returns the public key as lowercase hex, the external
// representation used throughout the API.
func (k KeyPair) PublicHex() string {
	return hex.EncodeToString(k.Public)
}

// Wipe zeroes the private half in place.
func (k *KeyPair) Wipe() {
	clear(k.Private)
}

// RoleKeys is the full key material for one role: an Ed25519 signing pair
// and an X25519 encryption pair, both deterministic in (leaf, role).
type RoleKeys struct {
	Role       Role
	Signing    KeyPair
	Encryption KeyPair
}

// Wipe zeroes both private keys in place.
func (r *RoleKeys) Wipe() {
	r.Signing.Wipe()
	r.Encryption.Wipe()
}

// roleSeed is the KDF step: keyed BLAKE2b-256 with the leaf as key over the
// domain string. Distinct domains keep the two keypairs independent even
// though they share a leaf.
func roleSeed(leaf []byte, role Role, purpose string) ([]byte, error) {
	h, err := blake2b.New256(leaf)
	if err != nil {
		return nil, fmt.Errorf("shield: kdf init: %w", err)
	}
	h.Write([]byte("role:" + string(role) + ":" + purpose))
	return h.Sum(nil), nil
}

// SynthesizeRoleKeys turns one 32-byte HD leaf into the role's signing and
// encryption keypairs. Identical (leaf, role) always yields byte-identical
// output.
func SynthesizeRoleKeys(leaf []byte, role Role) (*RoleKeys, error) {
	if len(leaf) != hdkey.KeyLen {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidKeyMaterial, len(leaf))
	}
	if !role.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrUnknownRole, role)
	}

	signingSeed, err := roleSeed(leaf, role, "signing")
	if err != nil {
		return nil, err
	}
	encryptionSeed, err := roleSeed(leaf, role, "encryption")
	if err != nil {
		return nil, err
	}

	// Real curve operations, not byte mixing: the Ed25519 key schedule
	// expands the seed and multiplies the base point, X25519 clamps the
	// scalar and multiplies its base point.
	edPriv := ed25519.NewKeyFromSeed(signingSeed)
	signingPub := make([]byte, PublicKeyLen)
	copy(signingPub, edPriv[32:])
	clear(edPriv)

	encryptionPub, err := curve25519.X25519(encryptionSeed, curve25519.Basepoint)
	if err != nil {
		clear(signingSeed)
		clear(encryptionSeed)
		return nil, fmt.Errorf("shield: encryption key derivation: %w", err)
	}

	return &RoleKeys{
		Role:       role,
		Signing:    KeyPair{Public: signingPub, Private: signingSeed},
		Encryption: KeyPair{Public: encryptionPub, Private: encryptionSeed},
	}, nil
}

// DeriveRoleKeyPairs derives keypairs for every canonical role from a
// 32-byte wallet seed, at account 0 / key index 0.
func DeriveRoleKeyPairs(seed []byte) ([]RoleKeys, []Role, error) {
	return DeriveRoleKeyPairsAt(seed, AllRoles, 0, 0)
}

// DeriveRoleKeyPairsAt derives keypairs for the given roles at an explicit
// account and key index. Roles whose path falls out of derivation bounds
// are skipped and reported in the second return value rather than failing
// the whole wallet.
func DeriveRoleKeyPairsAt(seed []byte, roles []Role, account, index uint32) ([]RoleKeys, []Role, error) {
	tree, err := hdkey.NewTree(seed)
	if err != nil {
		return nil, nil, err
	}

	keys := make([]RoleKeys, 0, len(roles))
	var skipped []Role
	for _, role := range roles {
		roleIndex, ok := role.Index()
		if !ok {
			return nil, nil, fmt.Errorf("%w: %q", ErrUnknownRole, role)
		}

		leaf, err := tree.DeriveLeaf(hdPurpose, hdCoinType, account, roleIndex, index)
		if err != nil {
			if errors.Is(err, ErrKeyOutOfBounds) {
				skipped = append(skipped, role)
				continue
			}
			return nil, nil, err
		}

		rk, err := SynthesizeRoleKeys(leaf, role)
		clear(leaf)
		if err != nil {
			return nil, nil, err
		}
		keys = append(keys, *rk)
	}
	return keys, skipped, nil
}
