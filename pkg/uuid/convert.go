// Copyright 2026 José Luis Salvador Rufo <salvador.joseluis@gmail.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package uuid

import (
	"encoding/hex"
	"fmt"
	"math/big"
	"regexp"
	"strings"

	"github.com/jlsalvador/simple-uuid/pkg/bitfield"
)

// URNPrefix precedes the canonical form in the URN form of a UUID.
const URNPrefix = "urn:uuid:"

// Hex digits are case-insensitive on input.
var (
	canonicalPattern = regexp.MustCompile(`^[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}$`)
	hexPattern       = regexp.MustCompile(`^[0-9a-fA-F]{32}$`)
	urnPattern       = regexp.MustCompile(`^(?i:urn:uuid:)[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}$`)
)

var maxWord = new(big.Int).SetUint64(^uint64(0))

// fromArray splits 16 big-endian bytes into the two words.
func fromArray(b [Size]byte) UUID {
	return UUID{
		msb: bitfield.AssembleBytes(b[:8]),
		lsb: bitfield.AssembleBytes(b[8:]),
	}
}

// Bytes returns the 16 bytes of u, big-endian: time-low (0-3), time-mid
// (4-5), time-high-and-version (6-7), clock-seq-and-reserved (8),
// clock-seq-low (9) and node (10-15).
func (u UUID) Bytes() [Size]byte {
	var b [Size]byte
	copy(b[:8], bitfield.DisassembleBytes(u.msb, 8))
	copy(b[8:], bitfield.DisassembleBytes(u.lsb, 8))
	return b
}

// FromBytes returns the UUID of 16 big-endian bytes.
func FromBytes(b []byte) (UUID, error) {
	if len(b) != Size {
		return Nil, fmt.Errorf("%w: invalid length: %d bytes", ErrInvalidFormat, len(b))
	}
	return fromArray([Size]byte(b)), nil
}

// BigInt returns u as the unsigned integer msb<<64 | lsb.
func (u UUID) BigInt() *big.Int {
	i := new(big.Int).SetUint64(u.msb)
	i.Lsh(i, 64)
	return i.Or(i, new(big.Int).SetUint64(u.lsb))
}

// FromBigInt returns the UUID of an unsigned integer of at most 128 bits.
func FromBigInt(i *big.Int) (UUID, error) {
	if i == nil || i.Sign() < 0 || i.BitLen() > 128 {
		return Nil, fmt.Errorf("%w: integer out of range: %v", ErrInvalidFormat, i)
	}
	lsb := new(big.Int).And(i, maxWord)
	msb := new(big.Int).Rsh(i, 64)
	return UUID{msb: msb.Uint64(), lsb: lsb.Uint64()}, nil
}

// Bits returns the 128 bits of u, most significant first.
func (u UUID) Bits() []bool {
	bits := make([]bool, 128)
	for i := range 64 {
		bits[i] = u.msb&(1<<(63-i)) != 0
		bits[64+i] = u.lsb&(1<<(63-i)) != 0
	}
	return bits
}

// FromBits returns the UUID of 128 bits, most significant first.
func FromBits(bits []bool) (UUID, error) {
	if len(bits) != 128 {
		return Nil, fmt.Errorf("%w: invalid length: %d bits", ErrInvalidFormat, len(bits))
	}

	var u UUID
	for i := range 64 {
		if bits[i] {
			u.msb |= 1 << (63 - i)
		}
		if bits[64+i] {
			u.lsb |= 1 << (63 - i)
		}
	}
	return u, nil
}

// String returns the canonical form xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx,
// always in lower case.
func (u UUID) String() string {
	var buf [36]byte
	encodeHex(buf[:], u.Bytes())
	return string(buf[:])
}

// URN returns the form urn:uuid:xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx.
func (u UUID) URN() string {
	return URNPrefix + u.String()
}

// Hex returns the 32 lower-case hex digits of u without hyphens.
func (u UUID) Hex() string {
	b := u.Bytes()
	return hex.EncodeToString(b[:])
}

func encodeHex(dst []byte, b [Size]byte) {
	hex.Encode(dst[0:8], b[0:4])
	dst[8] = '-'
	hex.Encode(dst[9:13], b[4:6])
	dst[13] = '-'
	hex.Encode(dst[14:18], b[6:8])
	dst[18] = '-'
	hex.Encode(dst[19:23], b[8:10])
	dst[23] = '-'
	hex.Encode(dst[24:36], b[10:16])
}

// Parse decodes s in any of the forms:
//
//	xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx
//	xxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxx
//	urn:uuid:xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx
//
// Hex digits may be upper or lower case.
func Parse(s string) (UUID, error) {
	switch textShape(s) {
	case ShapeURN:
		return decodeHex(strings.ReplaceAll(s[len(URNPrefix):], "-", ""))
	case ShapeCanonical:
		return decodeHex(strings.ReplaceAll(s, "-", ""))
	case ShapeHex:
		return decodeHex(s)
	default:
		return Nil, fmt.Errorf("%w: %q", ErrInvalidFormat, s)
	}
}

// MustParse is like [Parse] but panics on error.
// It simplifies the initialization of global variables.
func MustParse(s string) UUID {
	u, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return u
}

func decodeHex(s string) (UUID, error) {
	var b [Size]byte
	if _, err := hex.Decode(b[:], []byte(s)); err != nil {
		return Nil, fmt.Errorf("%w: %w", ErrInvalidFormat, err)
	}
	return fromArray(b), nil
}

// textShape classifies a string. The URN pattern is checked first since
// it is the only one with a prefix.
func textShape(s string) Shape {
	switch {
	case urnPattern.MatchString(s):
		return ShapeURN
	case canonicalPattern.MatchString(s):
		return ShapeCanonical
	case hexPattern.MatchString(s):
		return ShapeHex
	default:
		return ShapeUnknown
	}
}

// Octet is any integer type able to carry a byte, signed or unsigned.
type Octet interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// isOctet reports whether v is in -128..255.
func isOctet[T Octet](v T) bool {
	if v < 0 {
		return int64(v) >= -128
	}
	return uint64(v) <= 255
}

// FromOctets returns the UUID of 16 octet-like integers. Each element may
// be a signed (-128..127) or an unsigned (0..255) byte; negative values
// are read as two's complement. The result is always emitted unsigned by
// [UUID.Bytes].
func FromOctets[T Octet](v []T) (UUID, error) {
	if len(v) != Size {
		return Nil, fmt.Errorf("%w: invalid length: %d octets", ErrInvalidFormat, len(v))
	}

	var b [Size]byte
	for i, o := range v {
		if !isOctet(o) {
			return Nil, fmt.Errorf("%w: octet %d out of range: %d", ErrInvalidFormat, i, o)
		}
		b[i] = byte(o)
	}
	return fromArray(b), nil
}
