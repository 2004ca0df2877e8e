package shield

import (
	"errors"
	"fmt"

	"github.com/nel349/midnight-mobile-connector/internal/bech32m"
)

// ErrInvalidKeyLength reports a public key of the wrong length reaching the
// encoder. The encoder never pads or truncates.
var ErrInvalidKeyLength = errors.New("shield: public key must be exactly 32 bytes")

// Codec encodes and validates shield addresses. The network table is fixed
// at construction: which networks exist and which carry extra version
// bytes is a configuration decision, not package state.
type Codec struct {
	networks map[Network]networkParams
	byPrefix map[string]Network
}

// CodecOption adjusts the network table at construction time.
type CodecOption func(map[Network]networkParams)

// WithVersionBytes overrides the version bytes appended to the key payload
// for one network. Pass nil to strip them.
func WithVersionBytes(n Network, version []byte) CodecOption {
	return func(table map[Network]networkParams) {
		p, ok := table[n]
		if !ok {
			return
		}
		p.versionBytes = append([]byte(nil), version...)
		table[n] = p
	}
}

// NewCodec builds a codec over the built-in network table, with options
// applied on top.
func NewCodec(opts ...CodecOption) *Codec {
	table := defaultNetworks()
	for _, opt := range opts {
		opt(table)
	}
	byPrefix := make(map[string]Network, len(table))
	for n, p := range table {
		byPrefix[p.prefix] = n
	}
	return &Codec{networks: table, byPrefix: byPrefix}
}

// Encode packs a role's signing and encryption public keys into the
// network's address string:
//
//	<prefix>1<bech32m data><6-char checksum>
//
// The payload is signingPub || encryptionPub || version bytes (if the
// network defines any), regrouped from 8-bit to 5-bit groups and protected
// by the m-variant checksum. Deterministic in its inputs.
func (c *Codec) Encode(signingPub, encryptionPub []byte, network Network) (string, error) {
	if len(signingPub) != PublicKeyLen {
		return "", fmt.Errorf("%w: signing key is %d", ErrInvalidKeyLength, len(signingPub))
	}
	if len(encryptionPub) != PublicKeyLen {
		return "", fmt.Errorf("%w: encryption key is %d", ErrInvalidKeyLength, len(encryptionPub))
	}
	params, ok := c.networks[network]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownNetwork, network)
	}

	payload := make([]byte, 0, 2*PublicKeyLen+len(params.versionBytes))
	payload = append(payload, signingPub...)
	payload = append(payload, encryptionPub...)
	payload = append(payload, params.versionBytes...)

	data, err := bech32m.ConvertBits(payload, 8, 5, true)
	if err != nil {
		return "", fmt.Errorf("shield: regroup payload: %w", err)
	}
	addr, err := bech32m.Encode(params.prefix, data)
	if err != nil {
		return "", fmt.Errorf("shield: encode address: %w", err)
	}
	return addr, nil
}

// EncodeRole encodes one role's derived keys for the network.
func (c *Codec) EncodeRole(keys *RoleKeys, network Network) (string, error) {
	return c.Encode(keys.Signing.Public, keys.Encryption.Public, network)
}

// Decoded is the payload recovered from a valid address.
type Decoded struct {
	Network       Network
	SigningPub    []byte
	EncryptionPub []byte
}

// Decode is the strict inverse of Encode. Unlike Validate it returns errors,
// and is meant for callers that need the keys back, not for screening
// untrusted input.
func (c *Codec) Decode(addr string) (*Decoded, error) {
	prefix, data, err := bech32m.Decode(addr)
	if err != nil {
		return nil, err
	}
	network, ok := c.byPrefix[prefix]
	if !ok {
		return nil, fmt.Errorf("%w: prefix %q", ErrUnknownNetwork, prefix)
	}
	payload, err := bech32m.ConvertBits(data, 5, 8, false)
	if err != nil {
		return nil, err
	}
	params := c.networks[network]
	want := 2*PublicKeyLen + len(params.versionBytes)
	if len(payload) != want {
		return nil, fmt.Errorf("shield: payload is %d bytes, want %d", len(payload), want)
	}
	return &Decoded{
		Network:       network,
		SigningPub:    payload[:PublicKeyLen],
		EncryptionPub: payload[PublicKeyLen : 2*PublicKeyLen],
	}, nil
}
