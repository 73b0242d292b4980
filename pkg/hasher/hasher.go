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

// Package hasher wraps the hash functions used to mint name-based UUIDs
// behind a single writer interface.
package hasher

import "io"

// Hasher accumulates written data and returns its digest.
type Hasher interface {
	io.Writer

	// GetHash returns the digest of the data written so far.
	GetHash() []byte

	// GetHashAsString returns GetHash as a lower-case hexadecimal string.
	GetHashAsString() string
}
