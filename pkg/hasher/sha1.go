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

package hasher

import (
	"crypto/sha1"
	"encoding/hex"
	"hash"
)

type Sha1 struct {
	h hash.Hash
}

// NewSha1 creates a [Hasher] instance that uses the SHA-1 hashing algorithm,
// as required by version 5 UUIDs.
func NewSha1() *Sha1 {
	return &Sha1{h: sha1.New()}
}

// Write writes data to the hash.
func (s *Sha1) Write(p []byte) (n int, err error) {
	if s.h == nil {
		s.h = sha1.New()
	}
	return s.h.Write(p)
}

// GetHash returns the hash value as a byte slice.
// Without any written data it is the digest of the empty input.
func (s *Sha1) GetHash() []byte {
	if s.h == nil {
		s.h = sha1.New()
	}
	return s.h.Sum(nil)
}

// GetHashAsString returns the hash value as a hexadecimal string.
func (s *Sha1) GetHashAsString() string {
	return hex.EncodeToString(s.GetHash())
}
