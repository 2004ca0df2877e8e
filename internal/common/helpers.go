package common

import (
	"encoding/hex"
	"fmt"
	"strings"
)

// SeedHexLen is the length of a wallet seed in hex characters.
const SeedHexLen = 64

// ParseHexSeed decodes a 32-byte wallet seed from hex. Rejects anything
// that is not exactly 64 hex characters so seed length errors surface here
// instead of getting padded away downstream.
func ParseHexSeed(s string) ([]byte, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "0x")
	if len(s) != SeedHexLen {
		return nil, fmt.Errorf("seed must be %d hex characters, got %d", SeedHexLen, len(s))
	}
	seed, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("invalid hex seed: %w", err)
	}
	return seed, nil
}
