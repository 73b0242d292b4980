// Copyright 2025 José Luis Salvador Rufo <salvador.joseluis@gmail.com>
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

package config

import (
	"encoding/hex"
	"fmt"
	stditer "iter"
	"maps"
	"slices"
	"strings"

	"github.com/jlsalvador/simple-uuid/pkg/iter"
	"github.com/jlsalvador/simple-uuid/pkg/mapset"
	"github.com/jlsalvador/simple-uuid/pkg/uuid"
)

// Builtin namespaces, always resolvable by name.
var builtins = []struct {
	name string
	uuid uuid.UUID
}{
	{"dns", uuid.NamespaceDNS},
	{"url", uuid.NamespaceURL},
	{"oid", uuid.NamespaceOID},
	{"x500", uuid.NamespaceX500},
}

type Config struct {
	Namespaces map[string]uuid.UUID // Configured namespaces by lower-case name.
	Node       *[6]byte             // Fixed node id for v1, nil for the default.
}

// New returns a configuration with the builtin namespaces only.
func New() *Config {
	return &Config{
		Namespaces: map[string]uuid.UUID{},
	}
}

func normalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

func builtinNames() mapset.MapSet[string] {
	s := mapset.NewMapSet[string]()
	for _, b := range builtins {
		s.Add(b.name)
	}
	return s
}

func builtinSeq() stditer.Seq2[string, uuid.UUID] {
	return func(yield func(string, uuid.UUID) bool) {
		for _, b := range builtins {
			if !yield(b.name, b.uuid) {
				return
			}
		}
	}
}

func (c *Config) configuredNames() []string {
	return slices.Sorted(maps.Keys(c.Namespaces))
}

// Names yields the builtin namespace names followed by the configured
// ones in ascending order.
func (c *Config) Names() stditer.Seq[string] {
	names := make([]string, 0, len(builtins))
	for _, b := range builtins {
		names = append(names, b.name)
	}
	return iter.Concat(slices.Values(names), slices.Values(c.configuredNames()))
}

// All yields every resolvable namespace in the same order as [Config.Names].
func (c *Config) All() stditer.Seq2[string, uuid.UUID] {
	return iter.Concat2(
		builtinSeq(),
		func(yield func(string, uuid.UUID) bool) {
			for _, name := range c.configuredNames() {
				if !yield(name, c.Namespaces[name]) {
					return
				}
			}
		},
	)
}

// Namespace resolves a builtin name, a configured name or a UUID in any
// textual form.
func (c *Config) Namespace(nameOrUUID string) (uuid.UUID, error) {
	name := normalizeName(nameOrUUID)

	for n, u := range c.All() {
		if n == name {
			return u, nil
		}
	}

	u, err := uuid.Parse(strings.TrimSpace(nameOrUUID))
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %q", ErrUnknownNamespace, nameOrUUID)
	}
	return u, nil
}

// ParseNode parses a 48-bit node id written as 12 hex digits, optionally
// separated by ":" or "-".
func ParseNode(s string) ([6]byte, error) {
	var node [6]byte

	clean := strings.NewReplacer(":", "", "-", "").Replace(strings.TrimSpace(s))
	if len(clean) != 2*len(node) {
		return node, fmt.Errorf("%w: %q", ErrInvalidNode, s)
	}
	if _, err := hex.Decode(node[:], []byte(clean)); err != nil {
		return node, fmt.Errorf("%w: %q", ErrInvalidNode, s)
	}

	return node, nil
}
