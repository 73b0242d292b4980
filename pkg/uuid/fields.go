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
	"time"

	"github.com/jlsalvador/simple-uuid/pkg/bitfield"
)

// Version is the 4-bit version field of a UUID.
type Version byte

const (
	VersionNil    Version = 0 // Nil UUID.
	VersionTime   Version = 1 // Time-based.
	VersionDCE    Version = 2 // DCE security, never minted here.
	VersionMD5    Version = 3 // Name-based, MD5.
	VersionRandom Version = 4 // Random.
	VersionSHA1   Version = 5 // Name-based, SHA-1.
)

func (v Version) String() string {
	switch v {
	case VersionNil:
		return "nil"
	case VersionTime:
		return "time"
	case VersionDCE:
		return "dce"
	case VersionMD5:
		return "md5"
	case VersionRandom:
		return "random"
	case VersionSHA1:
		return "sha1"
	default:
		return fmt.Sprintf("Version(%d)", byte(v))
	}
}

// Variant is the layout family of a UUID.
type Variant byte

const (
	VariantNCS       Variant = iota // Reserved, NCS backward compatibility.
	VariantRFC4122                  // The variant specified in RFC 4122.
	VariantMicrosoft                // Reserved, Microsoft backward compatibility.
	VariantFuture                   // Reserved for future definition.
)

func (v Variant) String() string {
	switch v {
	case VariantNCS:
		return "ncs"
	case VariantRFC4122:
		return "rfc4122"
	case VariantMicrosoft:
		return "microsoft"
	default:
		return "future"
	}
}

// TimeLow returns the low 32 bits of the timestamp.
func (u UUID) TimeLow() uint32 { return uint32(bitfield.Ldb(timeLowMask, u.msb)) }

// TimeMid returns the middle 16 bits of the timestamp.
func (u UUID) TimeMid() uint16 { return uint16(bitfield.Ldb(timeMidMask, u.msb)) }

// TimeHigh returns the high 12 bits of the timestamp, without the version.
func (u UUID) TimeHigh() uint16 { return uint16(bitfield.Ldb(timeHighMask, u.msb)) }

// TimeHighAndVersion returns the time-high-and-version field.
func (u UUID) TimeHighAndVersion() uint16 { return uint16(bitfield.Ldb(timeHiVerMask, u.msb)) }

// ClockSeqHigh returns the clock-seq-and-reserved octet, variant included.
func (u UUID) ClockSeqHigh() uint8 { return uint8(bitfield.Ldb(clockSeqHiMask, u.lsb)) }

// ClockSeqLow returns the clock-seq-low octet.
func (u UUID) ClockSeqLow() uint8 { return uint8(bitfield.Ldb(clockSeqLowMask, u.lsb)) }

// ClockSeq returns the 14-bit clock sequence.
func (u UUID) ClockSeq() uint16 { return uint16(bitfield.Ldb(clockSeqMask, u.lsb)) }

// Node returns the 48-bit node.
func (u UUID) Node() uint64 { return bitfield.Ldb(nodeMask, u.lsb) }

// NodeID returns the node as 6 bytes.
func (u UUID) NodeID() [6]byte {
	return [6]byte(bitfield.DisassembleBytes(u.Node(), 6))
}

// Version returns the version nibble.
func (u UUID) Version() Version {
	return Version(bitfield.Ldb(versionMask, u.msb))
}

// Variant decodes the variant from the most significant bits of the
// clock-seq-and-reserved octet: 0xx, 10x, 110 or 111.
func (u UUID) Variant() Variant {
	switch octet := u.ClockSeqHigh(); {
	case octet&0x80 == 0x00:
		return VariantNCS
	case octet&0xc0 == 0x80:
		return VariantRFC4122
	case octet&0xe0 == 0xc0:
		return VariantMicrosoft
	default:
		return VariantFuture
	}
}

// Timestamp returns the 60-bit count of 100-nanosecond intervals since
// 1582-10-15 carried by a version 1 UUID. ok is false for any other
// version.
func (u UUID) Timestamp() (ts uint64, ok bool) {
	if u.Version() != VersionTime {
		return 0, false
	}
	ts = uint64(u.TimeHigh())<<48 | uint64(u.TimeMid())<<32 | uint64(u.TimeLow())
	return ts, true
}

// Time returns the creation time of a version 1 UUID. ok is false for any
// other version.
func (u UUID) Time() (t time.Time, ok bool) {
	ts, ok := u.Timestamp()
	if !ok {
		return time.Time{}, false
	}
	return TimeFromTimestamp(ts), true
}
