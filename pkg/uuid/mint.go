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
	"fmt"

	"github.com/jlsalvador/simple-uuid/pkg/bitfield"
	"github.com/jlsalvador/simple-uuid/pkg/digest"
	"github.com/jlsalvador/simple-uuid/pkg/hasher"
)

// stamp forces the version and the RFC 4122 variant on u.
func stamp(u UUID, v Version) UUID {
	return UUID{
		msb: bitfield.Dpb(versionMask, u.msb, uint64(v)),
		lsb: bitfield.Dpb(variantMask, u.lsb, rfc4122Variant),
	}
}

// NewV0 returns the [Nil] UUID.
func NewV0() UUID {
	return Nil
}

// NewV1 generates a time-based UUID from the [DefaultClock].
func NewV1() UUID {
	return DefaultClock().NewV1()
}

// NewV1 generates a time-based UUID from the timestamp, the clock sequence
// and the node id of c.
func (c *Clock) NewV1() UUID {
	ts, seq := c.Next()

	msb := bitfield.Ldb(timestampLowMask, ts)<<32 |
		bitfield.Ldb(timestampMidMask, ts)<<16 |
		bitfield.Ldb(timestampHiMask, ts)

	node := c.NodeID()
	clk := bitfield.DisassembleBytes(uint64(seq), 2)
	lsb := bitfield.AssembleBytes(append(clk, node[:]...))

	return stamp(UUID{msb: msb, lsb: lsb}, VersionTime)
}

// NewNameBased generates a name-based UUID of version v from the digest
// of namespace and name computed by h. It panics when v is not 3 or 5.
func NewNameBased(h hasher.Hasher, namespace UUID, name string, v Version) UUID {
	if v != VersionMD5 && v != VersionSHA1 {
		panic(fmt.Errorf("%w: name-based version %d", ErrUnsupportedVersion, v))
	}

	ns := namespace.Bytes()
	return stamp(fromArray(digest.UUIDBytes(h, ns[:], name)), v)
}

// NewV3 generates a name-based UUID using MD5.
func NewV3(namespace UUID, name string) UUID {
	return NewNameBased(hasher.NewMd5(), namespace, name, VersionMD5)
}

// NewV5 generates a name-based UUID using SHA-1.
func NewV5(namespace UUID, name string) UUID {
	return NewNameBased(hasher.NewSha1(), namespace, name, VersionSHA1)
}

// NewV4 generates a random UUID.
func NewV4() (UUID, error) {
	var b [Size]byte

	// Read random bytes
	if _, err := RandRead(b[:]); err != nil {
		return Nil, err
	}

	return stamp(fromArray(b), VersionRandom), nil
}

// MustNewV4 generates a random UUID and panics on error.
func MustNewV4() UUID {
	u, err := NewV4()
	if err != nil {
		panic(err)
	}
	return u
}

// New generates a random UUID and panics on error.
func New() UUID {
	return MustNewV4()
}
