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

// Package mapset provides a set data structure implemented using Go's map.
package mapset

import (
	"fmt"
	"slices"
	"strings"
)

type MapSet[T comparable] map[T]struct{}

func NewMapSet[T comparable]() MapSet[T] {
	return MapSet[T]{}
}

func (s MapSet[T]) Add(elements ...T) MapSet[T] {
	for _, e := range elements {
		s[e] = struct{}{}
	}
	return s
}

// Insert adds e and reports whether it was not already present.
func (s MapSet[T]) Insert(e T) bool {
	if s.Contains(e) {
		return false
	}
	s[e] = struct{}{}
	return true
}

func (s MapSet[T]) Contains(d T) bool {
	_, ok := s[d]
	return ok
}

func (s MapSet[T]) String() string {
	items := make([]string, 0, len(s))
	for k := range s {
		items = append(items, fmt.Sprint(k))
	}

	slices.Sort(items)

	return "{" + strings.Join(items, ", ") + "}"
}
