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

import "errors"

var (
	// ErrInvalidFormat is returned when a value does not have any of the
	// recognized UUID shapes.
	ErrInvalidFormat = errors.New("invalid UUID format")

	// ErrUnsupportedVersion is the panic value of a name-based mint
	// requested with a version other than 3 or 5.
	ErrUnsupportedVersion = errors.New("unsupported UUID version")

	// ErrNoHardwareAddr is returned when no network interface provides a
	// usable node id.
	ErrNoHardwareAddr = errors.New("no hardware address found")
)
