package shield

import (
	"errors"

	"github.com/nel349/midnight-mobile-connector/internal/bech32m"
)

// ValidationReason classifies why an address failed validation.
type ValidationReason string

const (
	ReasonOK             ValidationReason = "ok"
	ReasonBadFormat      ValidationReason = "bad_format"
	ReasonUnknownNetwork ValidationReason = "unknown_network"
	ReasonBadChecksum    ValidationReason = "checksum_mismatch"
	ReasonBadPayload     ValidationReason = "bad_payload_length"
)

// ValidationResult is the verdict on one address string.
type ValidationResult struct {
	Valid   bool
	Network Network
	Reason  ValidationReason
}

// Validate checks an address string's structure and checksum. It is a pure
// predicate over untrusted input: it never returns an error and never
// panics, whatever the input looks like.
func (c *Codec) Validate(addr string) ValidationResult {
	prefix, data, err := bech32m.Decode(addr)
	if err != nil {
		if errors.Is(err, bech32m.ErrChecksumMismatch) {
			return ValidationResult{Reason: ReasonBadChecksum}
		}
		return ValidationResult{Reason: ReasonBadFormat}
	}

	network, ok := c.byPrefix[prefix]
	if !ok {
		return ValidationResult{Reason: ReasonUnknownNetwork}
	}

	payload, err := bech32m.ConvertBits(data, 5, 8, false)
	if err != nil {
		return ValidationResult{Network: network, Reason: ReasonBadFormat}
	}
	if len(payload) != 2*PublicKeyLen+len(c.networks[network].versionBytes) {
		return ValidationResult{Network: network, Reason: ReasonBadPayload}
	}

	return ValidationResult{Valid: true, Network: network, Reason: ReasonOK}
}
