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

// Package flag extends the functionality of the standard flag package by adding
// support for a custom string slice type.
//
// Usage:
//
//	// simple-uuid mint -version 5 -name a.example.com -name b.example.com
//	var names flag.StringSlice
//	flagSet.Var(&names, "name", "Could be specified multiple times")
//	flagSet.Parse(args)
//	fmt.Println(names.String())
//	// Output: a.example.com, b.example.com
package flag

import (
	"strings"
)

type StringSlice []string

func (s *StringSlice) String() string {
	return strings.Join(*s, ", ")
}

// Set appends value. It implements the standard flag.Value interface.
func (s *StringSlice) Set(value string) error {
	*s = append(*s, value)
	return nil
}
