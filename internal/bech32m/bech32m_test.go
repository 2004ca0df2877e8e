package bech32m

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	payload := make([]byte, 64)
	for i := range payload {
		payload[i] = byte(i * 7)
	}

	data, err := ConvertBits(payload, 8, 5, true)
	require.NoError(t, err)

	encoded, err := Encode("mn_shield-addr_test", data)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(encoded, "mn_shield-addr_test1"))

	hrp, decoded, err := Decode(encoded)
	require.NoError(t, err)
	assert.Equal(t, "mn_shield-addr_test", hrp)

	back, err := ConvertBits(decoded, 5, 8, false)
	require.NoError(t, err)
	assert.Equal(t, payload, back)
}

func TestEncodeDeterministic(t *testing.T) {
	data := []byte{0, 1, 2, 3, 30, 31}
	a, err := Encode("prefix", data)
	require.NoError(t, err)
	b, err := Encode("prefix", data)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

// "a1lqfn3a" is the minimal published m-variant vector: empty data, valid
// checksum.
func TestKnownVector(t *testing.T) {
	hrp, data, err := Decode("a1lqfn3a")
	require.NoError(t, err)
	assert.Equal(t, "a", hrp)
	assert.Empty(t, data)

	// All-uppercase form is the same string
	hrp, _, err = Decode("A1LQFN3A")
	require.NoError(t, err)
	assert.Equal(t, "a", hrp)

	// Mixed case is rejected outright
	_, _, err = Decode("A1lqfn3a")
	assert.ErrorIs(t, err, ErrMixedCase)

	// Re-encoding the empty payload reproduces the vector
	encoded, err := Encode("a", nil)
	require.NoError(t, err)
	assert.Equal(t, "a1lqfn3a", encoded)
}

func TestDecodeErrors(t *testing.T) {
	// no separator
	_, _, err := Decode("qqqqqqqq")
	assert.ErrorIs(t, err, ErrInvalidSeparator)

	// separator present but no room for a checksum
	_, _, err = Decode("a1lqfn3")
	assert.ErrorIs(t, err, ErrInvalidSeparator)

	// 'b' is not in the data alphabet
	_, _, err = Decode("a1lqfn3b")
	assert.ErrorIs(t, err, ErrInvalidCharacter)

	// valid characters, broken checksum
	_, _, err = Decode("a1lqfn3p")
	assert.ErrorIs(t, err, ErrChecksumMismatch)
}

func TestEncodeRejectsBadInput(t *testing.T) {
	_, err := Encode("", []byte{0})
	assert.Error(t, err)

	_, err = Encode("PREFIX", []byte{0})
	assert.ErrorIs(t, err, ErrMixedCase)

	_, err = Encode("prefix", []byte{32})
	assert.ErrorIs(t, err, ErrInvalidCharacter)
}

func TestSingleCharacterCorruption(t *testing.T) {
	payload := make([]byte, 66)
	for i := range payload {
		payload[i] = byte(255 - i)
	}
	data, err := ConvertBits(payload, 8, 5, true)
	require.NoError(t, err)
	encoded, err := Encode("mn_shield-addr_test", data)
	require.NoError(t, err)

	for i := 0; i < len(encoded); i++ {
		replacement := byte('q')
		if encoded[i] == 'q' {
			replacement = 'p'
		}
		corrupted := encoded[:i] + string(replacement) + encoded[i+1:]
		_, _, err := Decode(corrupted)
		assert.Errorf(t, err, "corruption at position %d went undetected", i)
	}
}

func TestConvertBits(t *testing.T) {
	// 0xff regroups to 11111 111(00)
	out, err := ConvertBits([]byte{0xff}, 8, 5, true)
	require.NoError(t, err)
	assert.Equal(t, []byte{31, 28}, out)

	// zero padding strips cleanly on the way back
	back, err := ConvertBits(out, 5, 8, false)
	require.NoError(t, err)
	assert.Equal(t, []byte{0xff}, back)

	// non-zero padding is rejected without pad
	_, err = ConvertBits([]byte{31, 31}, 5, 8, false)
	assert.Error(t, err)

	// values wider than the source group size are rejected
	_, err = ConvertBits([]byte{64}, 5, 8, true)
	assert.Error(t, err)
}
