package shield

import (
	"errors"
	"fmt"
)

// Network identifies a deployment of the chain. Addresses for the same keys
// differ across networks by construction, which blocks cross-network reuse.
type Network string

const (
	NetworkUndeployed Network = "undeployed"
	NetworkDev        Network = "dev"
	NetworkTest       Network = "test"
	NetworkMainNet    Network = "mainnet"
)

// AllNetworks is the closed network set.
var AllNetworks = []Network{NetworkUndeployed, NetworkDev, NetworkTest, NetworkMainNet}

// ErrUnknownNetwork reports a network outside the closed set.
var ErrUnknownNetwork = errors.New("shield: unknown network")

// networkParams is everything address construction needs to know about a
// network: its human-readable prefix, its numeric id, and any extra version
// bytes the network appends to the key payload before encoding.
type networkParams struct {
	prefix string
	id     byte

	// versionBytes are appended to the 64-byte key payload for networks
	// that need disambiguation beyond the prefix. TODO: confirm the meaning
	// of the observed test-network tag against the network documentation.
	versionBytes []byte
}

// defaultNetworks returns a fresh copy of the built-in network table, so a
// Codec can never share mutable state with another.
func defaultNetworks() map[Network]networkParams {
	return map[Network]networkParams{
		NetworkUndeployed: {prefix: "mn_shield-addr_undeployed", id: 0},
		NetworkDev:        {prefix: "mn_shield-addr_dev", id: 1},
		NetworkTest:       {prefix: "mn_shield-addr_test", id: 2, versionBytes: []byte{0xf2, 0x40}},
		NetworkMainNet:    {prefix: "mn_shield-addr_mainnet", id: 3},
	}
}

// ParseNetwork maps a configuration string onto the closed network set.
func ParseNetwork(s string) (Network, error) {
	for _, n := range AllNetworks {
		if string(n) == s {
			return n, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownNetwork, s)
}

// ID returns the network's small integer identifier.
func (n Network) ID() (byte, error) {
	p, ok := defaultNetworks()[n]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownNetwork, n)
	}
	return p.id, nil
}
