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

import "errors"

var (
	ErrDuplicateNamespace = errors.New("duplicate namespace")
	ErrUnknownNamespace   = errors.New("unknown namespace")
	ErrInvalidNode        = errors.New("invalid node address")
	ErrMissingName        = errors.New("namespace manifest without metadata.name")
	ErrMissingUUID        = errors.New("namespace manifest without spec.uuid")
	ErrDuplicateNode      = errors.New("more than one node manifest")
)
