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
	"crypto/md5"
	"encoding/hex"
	"hash"
)

type Md5 struct {
	h hash.Hash
}

// NewMd5 creates a [Hasher] instance that uses the MD5 hashing algorithm,
// as required by version 3 UUIDs.
func NewMd5() *Md5 {
	return &Md5{h: md5.New()}
}

// Write writes data to the hash.
func (m *Md5) Write(p []byte) (n int, err error) {
	if m.h == nil {
		m.h = md5.New()
	}
	return m.h.Write(p)
}

// GetHash returns the hash value as a byte slice.
// Without any written data it is the digest of the empty input.
func (m *Md5) GetHash() []byte {
	if m.h == nil {
		m.h = md5.New()
	}
	return m.h.Sum(nil)
}

// GetHashAsString returns the hash value as a hexadecimal string.
func (m *Md5) GetHashAsString() string {
	return hex.EncodeToString(m.GetHash())
}
