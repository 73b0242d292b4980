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
	"net/url"

	guuid "github.com/google/uuid"
)

// Shape is the kind of input recognized as a UUID.
type Shape int

const (
	ShapeUnknown   Shape = iota
	ShapeUUID            // Already a UUID value.
	ShapeCanonical       // xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx
	ShapeHex             // 32 hex digits, no hyphens.
	ShapeURN             // urn:uuid: followed by the canonical form.
	ShapeBytes           // 16 octet-like integers.
)

func (s Shape) String() string {
	switch s {
	case ShapeUUID:
		return "uuid"
	case ShapeCanonical:
		return "canonical"
	case ShapeHex:
		return "hex"
	case ShapeURN:
		return "urn"
	case ShapeBytes:
		return "bytes"
	default:
		return "unknown"
	}
}

// ShapeOf classifies v. Recognized inputs are:
//   - UUID, *UUID and github.com/google/uuid.UUID values;
//   - strings, url.URL, *url.URL and any other fmt.Stringer in
//     canonical, hex or URN form;
//   - 16-element slices or arrays of integers in -128..255.
func ShapeOf(v any) Shape {
	if _, ok := asUUID(v); ok {
		return ShapeUUID
	}
	if s, ok := asText(v); ok {
		return textShape(s)
	}
	if _, ok := asOctets(v); ok {
		return ShapeBytes
	}
	return ShapeUnknown
}

// IsUUID reports whether v can be coerced by [The].
func IsUUID(v any) bool {
	return ShapeOf(v) != ShapeUnknown
}

// The coerces v into a UUID. See [ShapeOf] for the accepted inputs.
func The(v any) (UUID, error) {
	switch shape := ShapeOf(v); shape {
	case ShapeUUID:
		u, _ := asUUID(v)
		return u, nil
	case ShapeCanonical, ShapeHex, ShapeURN:
		s, _ := asText(v)
		return Parse(s)
	case ShapeBytes:
		b, _ := asOctets(v)
		return fromArray(b), nil
	case ShapeUnknown:
		if s, ok := asText(v); ok {
			return Nil, fmt.Errorf("%w: %q", ErrInvalidFormat, s)
		}
		return Nil, fmt.Errorf("%w: unsupported input %T", ErrInvalidFormat, v)
	default:
		panic(fmt.Sprintf("uuid: unhandled shape %d", shape))
	}
}

// MustThe is like [The] but panics on error.
func MustThe(v any) UUID {
	u, err := The(v)
	if err != nil {
		panic(err)
	}
	return u
}

func asUUID(v any) (UUID, bool) {
	switch x := v.(type) {
	case UUID:
		return x, true
	case *UUID:
		if x != nil {
			return *x, true
		}
	case guuid.UUID:
		return FromGoogle(x), true
	}
	return Nil, false
}

func asText(v any) (string, bool) {
	switch x := v.(type) {
	case string:
		return x, true
	case url.URL:
		return x.String(), true
	case *url.URL:
		if x != nil {
			return x.String(), true
		}
	case fmt.Stringer:
		return x.String(), true
	}
	return "", false
}

func asOctets(v any) ([Size]byte, bool) {
	switch x := v.(type) {
	case [Size]byte:
		return x, true
	case [Size]int8:
		return octets(x[:])
	case [Size]int:
		return octets(x[:])
	case [Size]int16:
		return octets(x[:])
	case [Size]int32:
		return octets(x[:])
	case [Size]int64:
		return octets(x[:])
	case [Size]uint:
		return octets(x[:])
	case [Size]uint16:
		return octets(x[:])
	case [Size]uint32:
		return octets(x[:])
	case [Size]uint64:
		return octets(x[:])
	case []byte:
		return octets(x)
	case []int8:
		return octets(x)
	case []int:
		return octets(x)
	case []int16:
		return octets(x)
	case []int32:
		return octets(x)
	case []int64:
		return octets(x)
	case []uint:
		return octets(x)
	case []uint16:
		return octets(x)
	case []uint32:
		return octets(x)
	case []uint64:
		return octets(x)
	}
	return [Size]byte{}, false
}

func octets[T Octet](v []T) ([Size]byte, bool) {
	u, err := FromOctets(v)
	if err != nil {
		return [Size]byte{}, false
	}
	return u.Bytes(), true
}
