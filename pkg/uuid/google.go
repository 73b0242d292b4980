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

import guuid "github.com/google/uuid"

// FromGoogle converts a github.com/google/uuid UUID.
func FromGoogle(g guuid.UUID) UUID {
	return fromArray(g)
}

// Google converts u into a github.com/google/uuid UUID.
func (u UUID) Google() guuid.UUID {
	return guuid.UUID(u.Bytes())
}
