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

// Package digest derives the 16 bytes of a name-based UUID from a
// namespace and a name.
package digest

import (
	"errors"
	"strings"

	"github.com/jlsalvador/simple-uuid/pkg/hasher"
)

// Size of the digest prefix kept for a UUID.
const Size = 16

var (
	ErrUnsupportedAlgorithm = errors.New("unsupported algorithm")
)

// NewHasher returns a new Hasher for the given algorithm.
//
// Supported algorithms:
//   - md5 (version 3 UUIDs)
//   - sha1 (version 5 UUIDs).
func NewHasher(algo string) (hasher.Hasher, error) {
	switch strings.ToLower(algo) {
	case "md5":
		return hasher.NewMd5(), nil
	case "sha1", "sha-1":
		return hasher.NewSha1(), nil
	default:
		return nil, ErrUnsupportedAlgorithm
	}
}

// UUIDBytes hashes namespace followed by the UTF-8 bytes of name and
// returns the first 16 bytes of the digest.
//
// h must be a fresh hasher. Digests shorter than 16 bytes are zero padded.
//
// Example:
//
//	UUIDBytes(hasher.NewSha1(), dns[:], "bubba") // eea1105e36815117...
func UUIDBytes(h hasher.Hasher, namespace []byte, name string) [Size]byte {
	_, _ = h.Write(namespace)
	_, _ = h.Write([]byte(name))

	var b [Size]byte
	copy(b[:], h.GetHash())
	return b
}
