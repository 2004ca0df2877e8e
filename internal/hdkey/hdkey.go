// Package hdkey derives hierarchical-deterministic ed25519-class key
// material from a wallet seed. The scheme is the hardened-only HMAC-SHA512
// tree (SLIP-0010 for ed25519): any leaf is recomputable from the seed plus
// its path, and child derivation never exposes sibling material.
package hdkey

import (
	"crypto/hmac"
	"crypto/sha512"
	"encoding/binary"
	"errors"
	"fmt"
)

const (
	// SeedLen is the exact wallet seed length accepted by NewTree.
	SeedLen = 32

	// KeyLen is the length of every derived leaf key.
	KeyLen = 32

	// hardenedOffset is added to every path index; indices at or above it
	// cannot be represented and fail with ErrKeyOutOfBounds.
	hardenedOffset uint32 = 0x80000000
)

// masterHMACKey is the fixed HMAC key for the tree root, per SLIP-0010.
var masterHMACKey = []byte("ed25519 seed")

var (
	// ErrInvalidSeed reports a wallet seed that is not exactly SeedLen bytes.
	ErrInvalidSeed = errors.New("hdkey: seed must be exactly 32 bytes")

	// ErrKeyOutOfBounds reports a path index beyond the hardened range.
	// Callers are expected to skip the offending path, not abort.
	ErrKeyOutOfBounds = errors.New("hdkey: derivation index out of bounds")
)

// node is one point in the tree: 32 bytes of key material plus the chain
// code that seeds its children.
type node struct {
	key       [KeyLen]byte
	chainCode [32]byte
}

// Tree is an HD key tree rooted at a wallet seed. Derivation is a pure
// function of the seed and path; a Tree is safe for concurrent use.
type Tree struct {
	root node
}

// NewTree builds the tree for a 32-byte wallet seed.
func NewTree(seed []byte) (*Tree, error) {
	if len(seed) != SeedLen {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidSeed, len(seed))
	}
	return &Tree{root: newMaster(seed)}, nil
}

// newMaster computes the root node. Split out without the length check so
// the derivation math can be verified against the published vectors, which
// use shorter seeds.
func newMaster(seed []byte) node {
	mac := hmac.New(sha512.New, masterHMACKey)
	mac.Write(seed)
	sum := mac.Sum(nil)

	var n node
	copy(n.key[:], sum[:32])
	copy(n.chainCode[:], sum[32:])
	clear(sum)
	return n
}

// child derives the hardened child at index i. i must be below the hardened
// offset; the offset is applied here.
func (n node) child(i uint32) (node, error) {
	if i >= hardenedOffset {
		return node{}, fmt.Errorf("%w: index %d", ErrKeyOutOfBounds, i)
	}

	var data [1 + KeyLen + 4]byte
	copy(data[1:], n.key[:])
	binary.BigEndian.PutUint32(data[1+KeyLen:], i+hardenedOffset)

	mac := hmac.New(sha512.New, n.chainCode[:])
	mac.Write(data[:])
	sum := mac.Sum(nil)

	var c node
	copy(c.key[:], sum[:32])
	copy(c.chainCode[:], sum[32:])
	clear(sum)
	clear(data[:])
	return c, nil
}

// DeriveLeaf walks the hardened path and returns the 32-byte leaf key.
// Same tree + same path always yields a byte-identical key.
func (t *Tree) DeriveLeaf(path ...uint32) ([]byte, error) {
	n := t.root
	for _, i := range path {
		next, err := n.child(i)
		if err != nil {
			return nil, err
		}
		n = next
	}
	leaf := make([]byte, KeyLen)
	copy(leaf, n.key[:])
	return leaf, nil
}
