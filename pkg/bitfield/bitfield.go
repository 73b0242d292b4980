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

// Package bitfield extracts and deposits ranges of bits inside unsigned
// 64-bit words, and converts between words and big-endian byte sequences.
//
// Example:
//
//	version := bitfield.New(4, 12)
//	msb = bitfield.Dpb(version, msb, 0x4)
//	bitfield.Ldb(version, msb) == 0x4
package bitfield

import "fmt"

// WordSize is the number of bits of the words handled by this package.
const WordSize = 64

// Mask selects Width bits starting at bit Offset (bit 0 is the least
// significant one).
type Mask struct {
	Width  uint
	Offset uint
}

// New returns the mask of width bits at offset. It panics when the range
// does not fit in a 64-bit word.
func New(width, offset uint) Mask {
	if width > WordSize || offset > WordSize || width+offset > WordSize {
		panic(fmt.Sprintf("bitfield: mask out of range: width=%d offset=%d", width, offset))
	}
	return Mask{Width: width, Offset: offset}
}

// bits returns the right-justified mask of Width ones.
func (m Mask) bits() uint64 {
	if m.Width >= WordSize {
		return ^uint64(0)
	}
	return uint64(1)<<m.Width - 1
}

// Ldb loads the bits selected by m from v, right-justified.
func Ldb(m Mask, v uint64) uint64 {
	if m.Width == 0 {
		return 0
	}
	return (v >> m.Offset) & m.bits()
}

// Dpb deposits the low Width bits of newbits into v at the range selected
// by m. Bits of v outside the range are left unchanged.
func Dpb(m Mask, v, newbits uint64) uint64 {
	if m.Width == 0 {
		return v
	}
	field := m.bits() << m.Offset
	return (v &^ field) | ((newbits << m.Offset) & field)
}

// AssembleBytes concatenates b big-endian into one word.
// It panics when b has more than 8 elements.
func AssembleBytes(b []byte) uint64 {
	if len(b) > WordSize/8 {
		panic(fmt.Sprintf("bitfield: cannot assemble %d bytes into a word", len(b)))
	}

	var v uint64
	for _, octet := range b {
		v = v<<8 | uint64(octet)
	}
	return v
}

// DisassembleBytes returns the n low bytes of v, big-endian.
// It panics when n is not in the range [0, 8].
func DisassembleBytes(v uint64, n int) []byte {
	if n < 0 || n > WordSize/8 {
		panic(fmt.Sprintf("bitfield: cannot disassemble a word into %d bytes", n))
	}

	b := make([]byte, n)
	for i := n - 1; i >= 0; i-- {
		b[i] = byte(v)
		v >>= 8
	}
	return b
}
