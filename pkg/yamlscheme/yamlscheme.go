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

// Package yamlscheme provides a way to decode multiples YAML manifests
// (requires the fields "apiVersion" and "kind") at once.
//
// Example:
//
//	s := yamlscheme.NewScheme()
//	yamlscheme.Register[NamespaceManifest](s, "simple-uuid.jlsalvador.online/v1", "Namespace")
//	manifests, err := s.DecodeAll(f)
package yamlscheme

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/goccy/go-yaml"
)

var (
	ErrMissingKind      = errors.New("missing apiVersion or kind")
	ErrUnregisteredType = errors.New("unregistered type")
)

// Mock.
var (
	yamlMarshal   = yaml.Marshal
	yamlUnmarshal = yaml.Unmarshal
)

// CommonManifest represents a YAML manifest with the required fields.
type CommonManifest struct {
	ApiVersion string `yaml:"apiVersion"`
	Kind       string `yaml:"kind"`
}

// Scheme maps apiVersion/kind pairs to the Go types they decode into.
type Scheme struct {
	types map[CommonManifest]func() any
}

func NewScheme() *Scheme {
	return &Scheme{types: map[CommonManifest]func() any{}}
}

// Register registers a manifest type to be used when decoding YAML
// manifests. It panics when the pair is already registered.
func Register[T any](s *Scheme, apiVersion, kind string) {
	k := CommonManifest{apiVersion, kind}
	if _, exists := s.types[k]; exists {
		panic(fmt.Sprintf("type already registered: %s/%s", apiVersion, kind))
	}

	s.types[k] = func() any {
		var zero T
		return &zero
	}
}

func (s *Scheme) newObject(apiVersion, kind string) (any, bool) {
	f, ok := s.types[CommonManifest{apiVersion, kind}]
	if !ok {
		return nil, false
	}
	return f(), true
}

// DecodeAll decodes all registered YAML manifests from the given reader.
// Each element of the result is a pointer to the registered type. Empty
// documents are skipped.
func (s *Scheme) DecodeAll(r io.Reader) ([]any, error) {
	dec := yaml.NewDecoder(r)

	var result []any

	for {
		var raw any
		err := dec.Decode(&raw)
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if raw == nil {
			continue
		}

		data, err := yamlMarshal(raw)
		if err != nil {
			return nil, err
		}

		var m CommonManifest
		if err := yamlUnmarshal(data, &m); err != nil {
			return nil, err
		}

		if m.ApiVersion == "" || m.Kind == "" {
			return nil, ErrMissingKind
		}

		obj, ok := s.newObject(m.ApiVersion, m.Kind)
		if !ok {
			return nil, fmt.Errorf("%w %s/%s", ErrUnregisteredType, m.ApiVersion, m.Kind)
		}

		if err := yaml.NewDecoder(bytes.NewReader(data)).Decode(obj); err != nil {
			return nil, err
		}

		result = append(result, obj)
	}

	return result, nil
}
