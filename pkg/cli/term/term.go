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

// Package term detects whether an output is attached to a terminal.
package term

import (
	"io"
	"sync"

	xterm "golang.org/x/term"
)

var (
	isTerminalCache   = map[uintptr]bool{}
	isTerminalCacheMu sync.RWMutex
)

// For testing mockups.
var (
	isTerminalFd = func(fd uintptr) bool { return xterm.IsTerminal(int(fd)) }
)

// fder is implemented by *os.File.
type fder interface {
	Fd() uintptr
}

// IsTerminal checks whether the given writer is connected to a terminal.
//
// This function is thread-safe and efficient for repeated calls.
func IsTerminal(w io.Writer) bool {
	// The writer must be a file descriptor.
	f, ok := w.(fder)
	if !ok {
		return false
	}
	fd := f.Fd()

	// Already cached.
	isTerminalCacheMu.RLock()
	v, exists := isTerminalCache[fd]
	isTerminalCacheMu.RUnlock()
	if exists {
		return v
	}

	isTTY := isTerminalFd(fd)

	// Cache the result.
	isTerminalCacheMu.Lock()
	isTerminalCache[fd] = isTTY
	isTerminalCacheMu.Unlock()

	return isTTY
}
