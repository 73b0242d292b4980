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
	"github.com/goccy/go-yaml"
)

// Mock.
var (
	yamlMarshal   = yaml.Marshal
	yamlUnmarshal = yaml.Unmarshal
)

// MarshalText implements [encoding.TextMarshaler] with the canonical form.
// It is also used by encoding/json.
func (u UUID) MarshalText() ([]byte, error) {
	return []byte(u.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler]. Any form accepted
// by [Parse] is decoded.
func (u *UUID) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*u = parsed
	return nil
}

// MarshalBinary implements [encoding.BinaryMarshaler] with the 16
// big-endian bytes.
func (u UUID) MarshalBinary() ([]byte, error) {
	b := u.Bytes()
	return b[:], nil
}

// UnmarshalBinary implements [encoding.BinaryUnmarshaler].
func (u *UUID) UnmarshalBinary(data []byte) error {
	parsed, err := FromBytes(data)
	if err != nil {
		return err
	}
	*u = parsed
	return nil
}

// MarshalYAML implements [yaml.BytesMarshaler] with the canonical form.
func (u UUID) MarshalYAML() ([]byte, error) {
	return yamlMarshal(u.String())
}

// UnmarshalYAML implements [yaml.BytesUnmarshaler]. The node must be a
// string scalar in any form accepted by [Parse].
func (u *UUID) UnmarshalYAML(data []byte) error {
	var s string
	if err := yamlUnmarshal(data, &s); err != nil {
		return err
	}
	return u.UnmarshalText([]byte(s))
}
