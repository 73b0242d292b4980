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

// Package uuid provides functions to generate, convert and inspect
// RFC 4122 Universally Unique Identifiers (UUIDs).
//
// A [UUID] is a comparable 128-bit value. It can be minted as the nil UUID
// (version 0), time-based (version 1), name-based (versions 3 and 5) or
// random (version 4), and converted losslessly to and from its canonical
// string, URN, bytes, bits and integer forms.
//
// Example:
//
//	id := uuid.NewV5(uuid.NamespaceDNS, "www.example.com")
//	fmt.Println(id.URN(), id.Version())
package uuid

import (
	"crypto/rand"

	"github.com/jlsalvador/simple-uuid/pkg/bitfield"
)

// RandRead is the function used to read random bytes.
// It can be replaced for testing purposes.
var RandRead = rand.Read

// Size of a UUID in bytes.
const Size = 16

// UUID is a 128-bit identifier stored as two big-endian words.
//
//	msb: time-low (32) | time-mid (16) | version (4) | time-high (12)
//	lsb: variant (2) | clock-seq (14) | node (48)
//
// The zero value is [Nil]. Two UUIDs are equal, with ==, when their bits
// are identical.
type UUID struct {
	msb uint64
	lsb uint64
}

// Masks over msb.
var (
	timeLowMask      = bitfield.New(32, 32)
	timeMidMask      = bitfield.New(16, 16)
	timeHiVerMask    = bitfield.New(16, 0)
	versionMask      = bitfield.New(4, 12)
	timeHighMask     = bitfield.New(12, 0)
	timestampLowMask = bitfield.New(32, 0)
	timestampMidMask = bitfield.New(16, 32)
	timestampHiMask  = bitfield.New(12, 48)
)

// Masks over lsb.
var (
	clockSeqHiMask  = bitfield.New(8, 56)
	clockSeqLowMask = bitfield.New(8, 48)
	clockSeqMask    = bitfield.New(14, 48)
	variantMask     = bitfield.New(2, 62)
	nodeMask        = bitfield.New(48, 0)
)

// rfc4122Variant is the value of the two variant bits of every UUID minted
// by this package.
const rfc4122Variant = 0b10

// Nil is the UUID with all 128 bits set to zero.
var Nil = UUID{}

// Well known namespaces, RFC 4122 Appendix C.
var (
	NamespaceDNS  = UUID{0x6ba7b8109dad11d1, 0x80b400c04fd430c8}
	NamespaceURL  = UUID{0x6ba7b8119dad11d1, 0x80b400c04fd430c8}
	NamespaceOID  = UUID{0x6ba7b8129dad11d1, 0x80b400c04fd430c8}
	NamespaceX500 = UUID{0x6ba7b8149dad11d1, 0x80b400c04fd430c8}
)

// FromWords returns the UUID made of the most significant word msb and the
// least significant word lsb. No version or variant is enforced.
func FromWords(msb, lsb uint64) UUID {
	return UUID{msb: msb, lsb: lsb}
}

// MSB returns the most significant 64 bits.
func (u UUID) MSB() uint64 { return u.msb }

// LSB returns the least significant 64 bits.
func (u UUID) LSB() uint64 { return u.lsb }

// IsNil reports whether u is the [Nil] UUID.
func (u UUID) IsNil() bool { return u == Nil }

// Compare returns -1, 0 or +1 depending on whether a is lower, equal or
// greater than b, both read as unsigned 128-bit integers.
func Compare(a, b UUID) int {
	switch {
	case a.msb < b.msb:
		return -1
	case a.msb > b.msb:
		return 1
	case a.lsb < b.lsb:
		return -1
	case a.lsb > b.lsb:
		return 1
	}
	return 0
}
