package shield

import (
	"strings"
	"testing"

	"github.com/nel349/midnight-mobile-connector/internal/bech32m"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testKeys(t *testing.T) *RoleKeys {
	t.Helper()
	keys, _, err := DeriveRoleKeyPairs(testSeed(0x11))
	require.NoError(t, err)
	return &keys[0]
}

func TestEncodeValidateRoundTrip(t *testing.T) {
	codec := NewCodec()
	rk := testKeys(t)

	for _, network := range AllNetworks {
		addr, err := codec.EncodeRole(rk, network)
		require.NoError(t, err, "network %s", network)

		result := codec.Validate(addr)
		assert.True(t, result.Valid, "network %s: %s", network, result.Reason)
		assert.Equal(t, network, result.Network)
		assert.Equal(t, ReasonOK, result.Reason)

		decoded, err := codec.Decode(addr)
		require.NoError(t, err)
		assert.Equal(t, network, decoded.Network)
		assert.Equal(t, rk.Signing.Public, decoded.SigningPub)
		assert.Equal(t, rk.Encryption.Public, decoded.EncryptionPub)
	}
}

func TestEncodeDeterministic(t *testing.T) {
	codec := NewCodec()
	rk := testKeys(t)

	a, err := codec.EncodeRole(rk, NetworkTest)
	require.NoError(t, err)
	b, err := codec.EncodeRole(rk, NetworkTest)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestNetworkDistinctness(t *testing.T) {
	codec := NewCodec()
	rk := testKeys(t)

	seen := map[string]Network{}
	for _, network := range AllNetworks {
		addr, err := codec.EncodeRole(rk, network)
		require.NoError(t, err)

		prev, dup := seen[addr]
		assert.False(t, dup, "networks %s and %s encode identically", prev, network)
		seen[addr] = network
	}
}

func TestEncodeKeyLengthChecks(t *testing.T) {
	codec := NewCodec()

	_, err := codec.Encode(make([]byte, 31), make([]byte, 32), NetworkTest)
	assert.ErrorIs(t, err, ErrInvalidKeyLength)

	_, err = codec.Encode(make([]byte, 32), make([]byte, 33), NetworkTest)
	assert.ErrorIs(t, err, ErrInvalidKeyLength)

	_, err = codec.Encode(make([]byte, 32), make([]byte, 32), Network("nonsense"))
	assert.ErrorIs(t, err, ErrUnknownNetwork)
}

func TestValidateCorruptionDetection(t *testing.T) {
	codec := NewCodec()
	rk := testKeys(t)

	for _, network := range []Network{NetworkTest, NetworkMainNet} {
		addr, err := codec.EncodeRole(rk, network)
		require.NoError(t, err)

		for i := 0; i < len(addr); i++ {
			replacement := byte('q')
			if addr[i] == 'q' {
				replacement = 'p'
			}
			corrupted := addr[:i] + string(replacement) + addr[i+1:]
			result := codec.Validate(corrupted)
			assert.Falsef(t, result.Valid, "network %s: corruption at %d accepted", network, i)
		}
	}
}

func TestValidateReasons(t *testing.T) {
	codec := NewCodec()
	rk := testKeys(t)

	addr, err := codec.EncodeRole(rk, NetworkMainNet)
	require.NoError(t, err)

	// broken checksum: swap the last character for another alphabet member
	last := addr[len(addr)-1]
	replacement := byte('q')
	if last == 'q' {
		replacement = 'p'
	}
	result := codec.Validate(addr[:len(addr)-1] + string(replacement))
	assert.Equal(t, ReasonBadChecksum, result.Reason)

	// structurally broken input
	assert.Equal(t, ReasonBadFormat, codec.Validate("").Reason)
	assert.Equal(t, ReasonBadFormat, codec.Validate("no separator here").Reason)

	// well-formed string with an unknown prefix
	data, err := bech32m.ConvertBits(make([]byte, 64), 8, 5, true)
	require.NoError(t, err)
	unknown, err := bech32m.Encode("mn_shield-addr_bogus", data)
	require.NoError(t, err)
	assert.Equal(t, ReasonUnknownNetwork, codec.Validate(unknown).Reason)

	// known prefix, wrong payload length
	shortData, err := bech32m.ConvertBits(make([]byte, 63), 8, 5, true)
	require.NoError(t, err)
	short, err := bech32m.Encode("mn_shield-addr_mainnet", shortData)
	require.NoError(t, err)
	assert.Equal(t, ReasonBadPayload, codec.Validate(short).Reason)
}

func TestAddressShape(t *testing.T) {
	codec := NewCodec()
	rk := testKeys(t)

	addr, err := codec.EncodeRole(rk, NetworkDev)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(addr, "mn_shield-addr_dev1"))
	// 64 payload bytes -> 103 data groups + 6 checksum groups
	assert.Len(t, addr, len("mn_shield-addr_dev")+1+103+6)
}

func TestVersionBytePolicy(t *testing.T) {
	rk := testKeys(t)

	// the test network carries its observed two-byte tag; payload grows
	defaultCodec := NewCodec()
	testAddr, err := defaultCodec.EncodeRole(rk, NetworkTest)
	require.NoError(t, err)
	decoded, err := defaultCodec.Decode(testAddr)
	require.NoError(t, err)
	assert.Equal(t, rk.Signing.Public, decoded.SigningPub)

	// stripping the tag changes the address but keeps it self-consistent
	stripped := NewCodec(WithVersionBytes(NetworkTest, nil))
	bareAddr, err := stripped.EncodeRole(rk, NetworkTest)
	require.NoError(t, err)
	assert.NotEqual(t, testAddr, bareAddr)
	assert.True(t, stripped.Validate(bareAddr).Valid)

	// each codec rejects the other's payload length
	assert.Equal(t, ReasonBadPayload, stripped.Validate(testAddr).Reason)
	assert.Equal(t, ReasonBadPayload, defaultCodec.Validate(bareAddr).Reason)
}

func TestParseNetwork(t *testing.T) {
	n, err := ParseNetwork("test")
	require.NoError(t, err)
	assert.Equal(t, NetworkTest, n)

	_, err = ParseNetwork("localnet")
	assert.ErrorIs(t, err, ErrUnknownNetwork)

	id, err := NetworkTest.ID()
	require.NoError(t, err)
	assert.Equal(t, byte(2), id)

	ids := map[byte]bool{}
	for _, network := range AllNetworks {
		id, err := network.ID()
		require.NoError(t, err)
		assert.False(t, ids[id], "duplicate network id %d", id)
		ids[id] = true
	}
}
