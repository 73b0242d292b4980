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
	"bytes"
	"fmt"
	"net"
	"sync"
	"time"

	"github.com/jlsalvador/simple-uuid/pkg/bitfield"
)

// gregorianOffset is the number of 100-nanosecond intervals between the
// UUID epoch (1582-10-15) and the Unix epoch (1970-01-01).
const gregorianOffset = 122192928000000000

const (
	timestampBits = 60
	clockSeqBits  = 14
)

var (
	timestampMask = bitfield.New(timestampBits, 0)
	sequenceMask  = bitfield.New(clockSeqBits, 0)
)

// For testing mockups.
var (
	netInterfaces = net.Interfaces
)

// Timestamp returns t as 100-nanosecond intervals since 1582-10-15,
// truncated to 60 bits.
func Timestamp(t time.Time) uint64 {
	intervals := t.Unix()*10_000_000 + int64(t.Nanosecond()/100) + gregorianOffset
	return bitfield.Ldb(timestampMask, uint64(intervals))
}

// TimeFromTimestamp is the inverse of [Timestamp], in UTC.
func TimeFromTimestamp(ts uint64) time.Time {
	intervals := int64(ts) - gregorianOffset
	return time.Unix(intervals/10_000_000, (intervals%10_000_000)*100).UTC()
}

// Clock is the state shared by every version 1 UUID minted from it: the
// last timestamp seen, the 14-bit clock sequence and the node id.
//
// A Clock is safe for concurrent use.
type Clock struct {
	mu            sync.Mutex
	now           func() time.Time
	node          [6]byte
	lastTimestamp uint64
	sequence      uint16
}

type clockConfig struct {
	now      func() time.Time
	node     *[6]byte
	sequence *uint16
}

// ClockOption configures a [Clock].
type ClockOption func(*clockConfig)

// WithNow sets the time source. Defaults to [time.Now].
func WithNow(now func() time.Time) ClockOption {
	return func(c *clockConfig) { c.now = now }
}

// WithNode sets a fixed node id. Defaults to 48 random bits with the
// multicast bit set.
func WithNode(node [6]byte) ClockOption {
	return func(c *clockConfig) { c.node = &node }
}

// WithSequence sets the initial clock sequence; only its low 14 bits are
// used. Defaults to a random value.
func WithSequence(seq uint16) ClockOption {
	return func(c *clockConfig) { c.sequence = &seq }
}

// NewClock returns a Clock. It fails only when the random source does.
func NewClock(opts ...ClockOption) (*Clock, error) {
	cfg := clockConfig{now: time.Now}
	for _, opt := range opts {
		opt(&cfg)
	}

	c := &Clock{now: cfg.now}

	if cfg.node != nil {
		c.node = *cfg.node
	} else {
		node, err := RandomNode()
		if err != nil {
			return nil, err
		}
		c.node = node
	}

	if cfg.sequence != nil {
		c.sequence = uint16(bitfield.Ldb(sequenceMask, uint64(*cfg.sequence)))
	} else {
		var b [2]byte
		if _, err := RandRead(b[:]); err != nil {
			return nil, fmt.Errorf("failed to seed clock sequence: %w", err)
		}
		c.sequence = uint16(bitfield.Ldb(sequenceMask, bitfield.AssembleBytes(b[:])))
	}

	return c, nil
}

// MustNewClock is like [NewClock] but panics on error.
func MustNewClock(opts ...ClockOption) *Clock {
	c, err := NewClock(opts...)
	if err != nil {
		panic(err)
	}
	return c
}

var defaultClock = sync.OnceValue(func() *Clock {
	return MustNewClock()
})

// DefaultClock returns the process-wide Clock used by [NewV1].
func DefaultClock() *Clock {
	return defaultClock()
}

// Next reads the time source and returns the timestamp with the clock
// sequence to use. The sequence is incremented, modulo 2^14, whenever the
// timestamp did not advance past the previous one.
func (c *Clock) Next() (timestamp uint64, seq uint16) {
	c.mu.Lock()
	defer c.mu.Unlock()

	timestamp = Timestamp(c.now())
	if timestamp <= c.lastTimestamp {
		c.sequence = uint16(bitfield.Ldb(sequenceMask, uint64(c.sequence)+1))
	}
	c.lastTimestamp = timestamp

	return timestamp, c.sequence
}

// NodeID returns the node id of c.
func (c *Clock) NodeID() [6]byte {
	return c.node
}

// RandomNode returns 48 random bits with the multicast bit set, so it can
// never collide with a real IEEE 802 address.
func RandomNode() ([6]byte, error) {
	var node [6]byte
	if _, err := RandRead(node[:]); err != nil {
		return node, fmt.Errorf("failed to generate node id: %w", err)
	}
	node[0] |= 0x01
	return node, nil
}

// NodeFromInterfaces returns the first non-zero hardware address of the
// network interfaces of the host.
func NodeFromInterfaces() ([6]byte, error) {
	var node [6]byte

	ifaces, err := netInterfaces()
	if err != nil {
		return node, fmt.Errorf("%w: %w", ErrNoHardwareAddr, err)
	}

	for _, iface := range ifaces {
		addr := iface.HardwareAddr
		if len(addr) < len(node) || bytes.Equal(addr[:len(node)], node[:]) {
			continue
		}
		copy(node[:], addr)
		return node, nil
	}

	return node, ErrNoHardwareAddr
}
