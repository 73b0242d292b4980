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

package bitfield_test

import (
	"bytes"
	"testing"

	"github.com/jlsalvador/simple-uuid/pkg/bitfield"
)

func TestLdb(t *testing.T) {
	tcs := []struct {
		name  string
		mask  bitfield.Mask
		value uint64
		want  uint64
	}{
		{"empty width", bitfield.New(0, 12), 0xffff, 0},
		{"low nibble", bitfield.New(4, 0), 0xabcd, 0xd},
		{"version nibble", bitfield.New(4, 12), 0x11d1, 0x1},
		{"variant bits", bitfield.New(2, 62), 0x80b400c04fd430c8, 0x2},
		{"whole word", bitfield.New(64, 0), 0x6ba7b8109dad11d1, 0x6ba7b8109dad11d1},
		{"top byte", bitfield.New(8, 56), 0x6ba7b8109dad11d1, 0x6b},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got := bitfield.Ldb(tc.mask, tc.value)
			if got != tc.want {
				t.Errorf("Ldb() = %#x, want %#x", got, tc.want)
			}
		})
	}
}

func TestDpb(t *testing.T) {
	tcs := []struct {
		name    string
		mask    bitfield.Mask
		value   uint64
		newbits uint64
		want    uint64
	}{
		{"empty width", bitfield.New(0, 3), 0xff, 0x0, 0xff},
		{"version 4", bitfield.New(4, 12), 0xffff, 0x4, 0x4fff},
		{"version 5 over zero", bitfield.New(4, 12), 0x0, 0x5, 0x5000},
		{"only low bits of newbits", bitfield.New(4, 0), 0x00, 0xfa, 0x0a},
		{"variant", bitfield.New(2, 62), 0xffffffffffffffff, 0x2, 0xbfffffffffffffff},
		{"whole word", bitfield.New(64, 0), 0x1234, 0xdeadbeef, 0xdeadbeef},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got := bitfield.Dpb(tc.mask, tc.value, tc.newbits)
			if got != tc.want {
				t.Errorf("Dpb() = %#x, want %#x", got, tc.want)
			}

			if back := bitfield.Ldb(tc.mask, got); back != tc.newbits&bitfield.Ldb(tc.mask, ^uint64(0)) {
				t.Errorf("Ldb(Dpb()) = %#x", back)
			}
		})
	}
}

func TestNew_Panic(t *testing.T) {
	tcs := []struct {
		name          string
		width, offset uint
	}{
		{"width too large", 65, 0},
		{"offset too large", 0, 65},
		{"range overflows", 8, 60},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			defer func() {
				if r := recover(); r == nil {
					t.Errorf("New(%d, %d) should panic", tc.width, tc.offset)
				}
			}()
			bitfield.New(tc.width, tc.offset)
		})
	}
}

func TestAssembleBytes(t *testing.T) {
	if got := bitfield.AssembleBytes(nil); got != 0 {
		t.Errorf("AssembleBytes(nil) = %#x, want 0", got)
	}

	got := bitfield.AssembleBytes([]byte{0x6b, 0xa7, 0xb8, 0x10, 0x9d, 0xad, 0x11, 0xd1})
	if got != 0x6ba7b8109dad11d1 {
		t.Errorf("AssembleBytes() = %#x", got)
	}

	got = bitfield.AssembleBytes([]byte{0x01, 0x02})
	if got != 0x0102 {
		t.Errorf("AssembleBytes() = %#x, want 0x0102", got)
	}

	defer func() {
		if r := recover(); r == nil {
			t.Error("AssembleBytes() with 9 bytes should panic")
		}
	}()
	bitfield.AssembleBytes(make([]byte, 9))
}

func TestDisassembleBytes(t *testing.T) {
	want := []byte{0x00, 0xc0, 0x4f, 0xd4, 0x30, 0xc8}
	got := bitfield.DisassembleBytes(0x80b400c04fd430c8, 6)
	if !bytes.Equal(got, want) {
		t.Errorf("DisassembleBytes() = %x, want %x", got, want)
	}

	v := uint64(0x6ba7b8109dad11d1)
	if back := bitfield.AssembleBytes(bitfield.DisassembleBytes(v, 8)); back != v {
		t.Errorf("round trip = %#x, want %#x", back, v)
	}

	defer func() {
		if r := recover(); r == nil {
			t.Error("DisassembleBytes() with n=9 should panic")
		}
	}()
	bitfield.DisassembleBytes(v, 9)
}

func BenchmarkDpb(b *testing.B) {
	m := bitfield.New(4, 12)
	for b.Loop() {
		_ = bitfield.Dpb(m, 0x6ba7b8109dad11d1, 0x5)
	}
}
