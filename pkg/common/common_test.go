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

package common_test

import (
	"os"
	"slices"
	"testing"

	"github.com/jlsalvador/simple-uuid/pkg/common"
)

func TestGetEnv(t *testing.T) {
	var got string
	var want string

	// Fallback
	os.Unsetenv("TESTING")
	got = common.GetEnv("TESTING", "empty")
	want = "empty"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}

	// Value
	t.Setenv("TESTING", "something")
	got = common.GetEnv("TESTING", "anotherthing")
	want = "something"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestGetBool(t *testing.T) {
	tcs := map[string]bool{
		"true":    true,
		" TRUE ":  true,
		"1":       true,
		"false":   false,
		"0":       false,
		"":        false,
		"garbage": false,
	}

	for in, want := range tcs {
		if got := common.GetBool(in); got != want {
			t.Errorf("GetBool(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestGetInt(t *testing.T) {
	tcs := []struct {
		in       string
		fallback int
		want     int
	}{
		{"10", 1, 10},
		{" 42 ", 1, 42},
		{"-3", 1, -3},
		{"", 7, 7},
		{"ten", 7, 7},
	}

	for _, tc := range tcs {
		if got := common.GetInt(tc.in, tc.fallback); got != tc.want {
			t.Errorf("GetInt(%q, %d) = %d, want %d", tc.in, tc.fallback, got, tc.want)
		}
	}
}

func TestGetList(t *testing.T) {
	os.Unsetenv("TESTING_LIST")
	if got := common.GetList("TESTING_LIST"); got != nil {
		t.Errorf("expected nil for unset variable, got %v", got)
	}

	t.Setenv("TESTING_LIST", " a, b ,,c ")
	got := common.GetList("TESTING_LIST")
	if want := []string{"a", "b", "c"}; !slices.Equal(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}
