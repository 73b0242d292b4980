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

// Package common reads flag defaults from the environment.
package common

import (
	"os"
	"strconv"
	"strings"
)

func GetEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

// GetBool parses a string value as a boolean.
// If the parsing fails, it returns false.
func GetBool(val string) bool {
	val = strings.TrimSpace(val)
	val = strings.ToLower(val)
	if val, err := strconv.ParseBool(val); err != nil {
		return false
	} else {
		return val
	}
}

// GetInt parses a string value as an integer.
// If the parsing fails, it returns fallback.
func GetInt(val string, fallback int) int {
	i, err := strconv.Atoi(strings.TrimSpace(val))
	if err != nil {
		return fallback
	}
	return i
}

// GetList splits a comma separated environment variable, trimming spaces
// and skipping empty items. It returns nil when key is unset.
func GetList(key string) []string {
	value, ok := os.LookupEnv(key)
	if !ok {
		return nil
	}

	var list []string
	for item := range strings.SplitSeq(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			list = append(list, item)
		}
	}
	return list
}
