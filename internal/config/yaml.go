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
	"os"
	"path/filepath"
	"strings"

	"github.com/jlsalvador/simple-uuid/pkg/log"
)

func parseYamlFile(filename string) ([]any, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return scheme.DecodeAll(f)
}

func parseYamlDir(dirName string) (manifests []any, err error) {
	entries, err := os.ReadDir(dirName)
	if err != nil {
		log.Warn(
			"message", "skipping configuration directory",
			"config.dir", dirName,
		).Err(err).Print()
		return nil, nil
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		name := entry.Name()
		ext := strings.ToLower(filepath.Ext(name))
		if ext != ".yaml" && ext != ".yml" {
			continue
		}

		filename := filepath.Join(dirName, name)
		m, err := parseYamlFile(filename)
		if err != nil {
			log.Error(
				"config.file", filename,
			).Err(err).Print()
			return nil, err
		}

		manifests = append(manifests, m...)
	}

	return manifests, nil
}

// NewFromYamlDir builds a configuration from every "*.yaml" and "*.yml"
// manifest found in dirsName. Missing directories are skipped.
func NewFromYamlDir(dirsName []string) (*Config, error) {
	manifests := []any{}
	for _, dirName := range dirsName {
		ms, err := parseYamlDir(dirName)
		if err != nil {
			return nil, err
		}
		manifests = append(manifests, ms...)
	}

	namespaces, node, err := GetNamespacesNodeFromManifests(manifests)
	if err != nil {
		return nil, err
	}

	return &Config{
		Namespaces: namespaces,
		Node:       node,
	}, nil
}
