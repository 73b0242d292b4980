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
	"fmt"

	"github.com/jlsalvador/simple-uuid/pkg/uuid"
	"github.com/jlsalvador/simple-uuid/pkg/yamlscheme"
)

const ApiVersion = "simple-uuid.jlsalvador.online/v1"

type NamespaceManifest struct {
	yamlscheme.CommonManifest

	Metadata struct {
		Name string `json:"name" yaml:"name"`
	} `json:"metadata" yaml:"metadata"`
	Spec struct {
		UUID *uuid.UUID `json:"uuid" yaml:"uuid"` // Canonical, hex or URN form. Required.
	} `json:"spec" yaml:"spec"`
}

type NodeManifest struct {
	yamlscheme.CommonManifest

	Metadata struct {
		Name string `json:"name" yaml:"name"`
	} `json:"metadata" yaml:"metadata"`
	Spec struct {
		Address string `json:"address" yaml:"address"` // 12 hex digits, ":" or "-" separators allowed.
	} `json:"spec" yaml:"spec"`
}

var scheme = yamlscheme.NewScheme()

func init() {
	yamlscheme.Register[NamespaceManifest](scheme, ApiVersion, "Namespace")
	yamlscheme.Register[NodeManifest](scheme, ApiVersion, "Node")
}

// GetNamespacesNodeFromManifests splits decoded manifests into configured
// namespaces and the optional node id. Unknown manifest types are ignored.
func GetNamespacesNodeFromManifests(manifests []any) (
	namespaces map[string]uuid.UUID,
	node *[6]byte,
	err error,
) {
	namespaces = map[string]uuid.UUID{}
	seen := builtinNames()

	for _, manifest := range manifests {
		switch m := manifest.(type) {

		case *NamespaceManifest:
			name := normalizeName(m.Metadata.Name)
			if name == "" {
				return nil, nil, ErrMissingName
			}
			if !seen.Insert(name) {
				return nil, nil, fmt.Errorf("%w: %s (already defined: %s)", ErrDuplicateNamespace, name, seen)
			}
			if m.Spec.UUID == nil {
				return nil, nil, fmt.Errorf("%w: %s", ErrMissingUUID, name)
			}
			namespaces[name] = *m.Spec.UUID

		case *NodeManifest:
			if node != nil {
				return nil, nil, fmt.Errorf("%w: %s", ErrDuplicateNode, m.Metadata.Name)
			}
			n, err := ParseNode(m.Spec.Address)
			if err != nil {
				return nil, nil, err
			}
			node = &n
		}
	}

	return namespaces, node, nil
}
