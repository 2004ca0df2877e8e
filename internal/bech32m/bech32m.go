// Package bech32m implements the "m-variant" polynomial checksum encoding
// used by shield addresses. It is the same BCH-style scheme as bech32 but
// with the 0x2bc830a3 final constant, and it does not enforce the 90
// character cap. Shield addresses carry two 32-byte public keys and run
// well past it.
package bech32m

import (
	"errors"
	"fmt"
	"strings"
)

// charset is the fixed 32-character data alphabet. Index == 5-bit value.
const charset = "qpzry9x8gf2tvdw0s3jn54khce6mua7l"

// checksumConst is the m-variant constant XORed into the polymod residue.
const checksumConst = 0x2bc830a3

// checksumLen is the number of 5-bit checksum groups appended to the data.
const checksumLen = 6

var (
	ErrMixedCase        = errors.New("bech32m: mixed-case string")
	ErrInvalidSeparator = errors.New("bech32m: missing or misplaced separator")
	ErrInvalidCharacter = errors.New("bech32m: invalid character")
	ErrChecksumMismatch = errors.New("bech32m: checksum mismatch")
)

// charsetRev maps an ASCII byte back to its 5-bit value, -1 if not in the
// alphabet.
var charsetRev [128]int8

func init() {
	for i := range charsetRev {
		charsetRev[i] = -1
	}
	for i := 0; i < len(charset); i++ {
		charsetRev[charset[i]] = int8(i)
	}
}

// polymod is the BCH checksum polynomial over 5-bit groups.
func polymod(values []byte) uint32 {
	gen := [5]uint32{0x3b6a57b2, 0x26508e6d, 0x1ea119fa, 0x3d4233dd, 0x2a1462b3}
	chk := uint32(1)
	for _, v := range values {
		top := chk >> 25
		chk = (chk&0x1ffffff)<<5 ^ uint32(v)
		for i := 0; i < 5; i++ {
			if (top>>uint(i))&1 == 1 {
				chk ^= gen[i]
			}
		}
	}
	return chk
}

// hrpExpand maps the human-readable prefix into the 5-bit groups covered by
// the checksum: high bits of each character, a zero, then the low bits.
func hrpExpand(hrp string) []byte {
	out := make([]byte, 0, len(hrp)*2+1)
	for i := 0; i < len(hrp); i++ {
		out = append(out, hrp[i]>>5)
	}
	out = append(out, 0)
	for i := 0; i < len(hrp); i++ {
		out = append(out, hrp[i]&0x1f)
	}
	return out
}

// Encode maps hrp plus 5-bit data groups into "<hrp>1<data><checksum>".
// data must already be regrouped to 5-bit values (see ConvertBits).
func Encode(hrp string, data []byte) (string, error) {
	if len(hrp) == 0 {
		return "", fmt.Errorf("%w: empty prefix", ErrInvalidSeparator)
	}
	for i := 0; i < len(hrp); i++ {
		c := hrp[i]
		if c < 33 || c > 126 {
			return "", fmt.Errorf("%w: prefix byte %#x", ErrInvalidCharacter, c)
		}
		if c >= 'A' && c <= 'Z' {
			return "", fmt.Errorf("%w: prefix must be lowercase", ErrMixedCase)
		}
	}
	for i, v := range data {
		if v > 31 {
			return "", fmt.Errorf("%w: data value %d at group %d exceeds 5 bits", ErrInvalidCharacter, v, i)
		}
	}

	// Residue chosen so that polymod over {hrp, data, checksum} equals the
	// m-variant constant.
	values := make([]byte, 0, len(hrp)*2+1+len(data)+checksumLen)
	values = append(values, hrpExpand(hrp)...)
	values = append(values, data...)
	values = append(values, make([]byte, checksumLen)...)
	mod := polymod(values) ^ checksumConst

	var sb strings.Builder
	sb.Grow(len(hrp) + 1 + len(data) + checksumLen)
	sb.WriteString(hrp)
	sb.WriteByte('1')
	for _, v := range data {
		sb.WriteByte(charset[v])
	}
	for i := 0; i < checksumLen; i++ {
		sb.WriteByte(charset[(mod>>uint(5*(5-i)))&31])
	}
	return sb.String(), nil
}

// Decode splits an encoded string at the last separator, maps the data part
// back through the alphabet and verifies the m-variant checksum. The
// returned data excludes the 6 checksum groups and is still in 5-bit form.
func Decode(s string) (string, []byte, error) {
	lower := strings.ToLower(s)
	if s != lower && s != strings.ToUpper(s) {
		return "", nil, ErrMixedCase
	}
	s = lower

	sep := strings.LastIndexByte(s, '1')
	if sep < 1 || sep+checksumLen+1 > len(s) {
		return "", nil, ErrInvalidSeparator
	}
	hrp := s[:sep]
	for i := 0; i < len(hrp); i++ {
		if hrp[i] < 33 || hrp[i] > 126 {
			return "", nil, fmt.Errorf("%w: prefix byte %#x", ErrInvalidCharacter, hrp[i])
		}
	}

	data := make([]byte, 0, len(s)-sep-1)
	for i := sep + 1; i < len(s); i++ {
		c := s[i]
		if c >= 128 || charsetRev[c] < 0 {
			return "", nil, fmt.Errorf("%w: %q at position %d", ErrInvalidCharacter, c, i)
		}
		data = append(data, byte(charsetRev[c]))
	}

	values := append(hrpExpand(hrp), data...)
	if polymod(values) != checksumConst {
		return "", nil, ErrChecksumMismatch
	}
	return hrp, data[:len(data)-checksumLen], nil
}

// ConvertBits regroups data from fromBits-wide groups to toBits-wide groups,
// left to right. With pad set the final partial group is zero-padded; without
// it, leftover bits must be zero padding from a previous regroup or the
// input is rejected.
func ConvertBits(data []byte, fromBits, toBits uint8, pad bool) ([]byte, error) {
	if fromBits < 1 || fromBits > 8 || toBits < 1 || toBits > 8 {
		return nil, fmt.Errorf("bech32m: invalid bit group size %d->%d", fromBits, toBits)
	}
	out := make([]byte, 0, (len(data)*int(fromBits)+int(toBits)-1)/int(toBits))
	var acc uint32
	var bits uint8
	maxVal := byte(1<<toBits - 1)
	for i, b := range data {
		if b>>fromBits != 0 {
			return nil, fmt.Errorf("bech32m: input value %d at index %d exceeds %d bits", b, i, fromBits)
		}
		acc = acc<<fromBits | uint32(b)
		bits += fromBits
		for bits >= toBits {
			bits -= toBits
			out = append(out, byte(acc>>bits)&maxVal)
		}
	}
	if pad {
		if bits > 0 {
			out = append(out, byte(acc<<(toBits-bits))&maxVal)
		}
	} else if bits >= fromBits || byte(acc<<(toBits-bits))&maxVal != 0 {
		return nil, errors.New("bech32m: invalid incomplete group")
	}
	return out, nil
}
