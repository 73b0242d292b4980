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

package uuid_test

import (
	"errors"
	"net/url"
	"testing"

	guuid "github.com/google/uuid"

	u "github.com/jlsalvador/simple-uuid/pkg/uuid"
)

var dnsOctets = []int{
	0x6b, 0xa7, 0xb8, 0x10, 0x9d, 0xad, 0x11, 0xd1,
	0x80, 0xb4, 0x00, 0xc0, 0x4f, 0xd4, 0x30, 0xc8,
}

func signedOctets() []int8 {
	signed := make([]int8, len(dnsOctets))
	for i, o := range dnsOctets {
		signed[i] = int8(byte(o))
	}
	return signed
}

type stringer struct{ s string }

func (s stringer) String() string { return s.s }

func intArray() [16]int {
	var a [16]int
	copy(a[:], dnsOctets)
	return a
}

func int8Array() [16]int8 {
	var a [16]int8
	copy(a[:], signedOctets())
	return a
}

func TestShapeOf(t *testing.T) {
	dns := u.NamespaceDNS
	urn, _ := url.Parse("urn:uuid:6ba7b810-9dad-11d1-80b4-00c04fd430c8")

	tcs := []struct {
		name  string
		input any
		want  u.Shape
	}{
		{"uuid", dns, u.ShapeUUID},
		{"uuid pointer", &dns, u.ShapeUUID},
		{"nil uuid pointer", (*u.UUID)(nil), u.ShapeUnknown},
		{"google uuid", guuid.UUID(dns.Bytes()), u.ShapeUUID},
		{"canonical", "6ba7b810-9dad-11d1-80b4-00c04fd430c8", u.ShapeCanonical},
		{"canonical upper", "6BA7B810-9DAD-11D1-80B4-00C04FD430C8", u.ShapeCanonical},
		{"hex", "6ba7b8109dad11d180b400c04fd430c8", u.ShapeHex},
		{"urn", "urn:uuid:6ba7b810-9dad-11d1-80b4-00c04fd430c8", u.ShapeURN},
		{"url pointer", urn, u.ShapeURN},
		{"url", *urn, u.ShapeURN},
		{"nil url", (*url.URL)(nil), u.ShapeUnknown},
		{"stringer", stringer{"6ba7b810-9dad-11d1-80b4-00c04fd430c8"}, u.ShapeCanonical},
		{"stringer urn", stringer{"urn:uuid:6ba7b810-9dad-11d1-80b4-00c04fd430c8"}, u.ShapeURN},
		{"invalid stringer", stringer{"nope"}, u.ShapeUnknown},
		{"bytes", make([]byte, 16), u.ShapeBytes},
		{"array", dns.Bytes(), u.ShapeBytes},
		{"unsigned ints", dnsOctets, u.ShapeBytes},
		{"signed int8", signedOctets(), u.ShapeBytes},
		{"uint16", make([]uint16, 16), u.ShapeBytes},
		{"int8 array", [16]int8{}, u.ShapeBytes},
		{"int array", intArray(), u.ShapeBytes},
		{"uint64 array", [16]uint64{}, u.ShapeBytes},
		{"out of range int array", [16]int{0: 256}, u.ShapeUnknown},
		{"short bytes", make([]byte, 15), u.ShapeUnknown},
		{"out of range ints", append(make([]int, 15), 300), u.ShapeUnknown},
		{"invalid string", "6ba7b810", u.ShapeUnknown},
		{"http url", "https://example.com", u.ShapeUnknown},
		{"integer", 42, u.ShapeUnknown},
		{"nil", nil, u.ShapeUnknown},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			if got := u.ShapeOf(tc.input); got != tc.want {
				t.Errorf("ShapeOf() = %s, want %s", got, tc.want)
			}
			if got := u.IsUUID(tc.input); got != (tc.want != u.ShapeUnknown) {
				t.Errorf("IsUUID() = %v", got)
			}
		})
	}
}

func TestThe(t *testing.T) {
	dns := u.NamespaceDNS
	urn, _ := url.Parse("urn:uuid:6ba7b810-9dad-11d1-80b4-00c04fd430c8")

	inputs := map[string]any{
		"uuid":        dns,
		"pointer":     &dns,
		"google":      dns.Google(),
		"canonical":   "6ba7b810-9dad-11d1-80b4-00c04fd430c8",
		"upper":       "6BA7B810-9DAD-11D1-80B4-00C04FD430C8",
		"hex":         "6ba7b8109dad11d180b400c04fd430c8",
		"urn":         "urn:uuid:6ba7b810-9dad-11d1-80b4-00c04fd430c8",
		"url":         urn,
		"array":       dns.Bytes(),
		"unsigned":    dnsOctets,
		"signed int8": signedOctets(),
		"stringer":    stringer{"6ba7b810-9dad-11d1-80b4-00c04fd430c8"},
		"int array":   intArray(),
		"int8 array":  int8Array(),
	}

	for name, input := range inputs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			got, err := u.The(input)
			if err != nil {
				t.Fatalf("The() error = %v", err)
			}
			if got != u.NamespaceDNS {
				t.Errorf("The() = %s, want %s", got, u.NamespaceDNS)
			}
		})
	}
}

func TestThe_URNEqualsCanonical(t *testing.T) {
	a := u.MustThe("urn:uuid:6ba7b810-9dad-11d1-80b4-00c04fd430c8")
	b := u.MustThe("6ba7b810-9dad-11d1-80b4-00c04fd430c8")
	if a != b {
		t.Errorf("%s != %s", a, b)
	}
}

func TestThe_Errors(t *testing.T) {
	for name, input := range map[string]any{
		"empty string":  "",
		"bad string":    "urn:uuid:nope",
		"integer":       42,
		"short slice":   []int{1, 2, 3},
		"nil interface": nil,
		"bad stringer":  stringer{"nope"},
	} {
		t.Run(name, func(t *testing.T) {
			got, err := u.The(input)
			if !errors.Is(err, u.ErrInvalidFormat) {
				t.Errorf("The() error = %v, want %v", err, u.ErrInvalidFormat)
			}
			if got != u.Nil {
				t.Errorf("The() = %s, want Nil on error", got)
			}
		})
	}

	defer func() {
		if r := recover(); r == nil {
			t.Error("MustThe() should panic on invalid input")
		}
	}()
	u.MustThe("nope")
}
