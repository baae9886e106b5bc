/*
   Copyright 2025 The DIRPX Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package apis

import "reflect"

// Registry is the process-wide table of enum types and their constants.
// Implementations must be safe for concurrent use.
type Registry interface {
	// Register associates an enum type with a fixed, human-chosen name.
	// Implementations should be idempotent; conflicting re-registrations fail.
	Register(t reflect.Type, name string) error
	// Lookup returns the explicit name of an enum type if present.
	Lookup(t reflect.Type) (name string, ok bool)
	// Values returns the constants of t in declaration order.
	Values(t reflect.Type) ([]Constant, error)
	// Get returns the constant of t with the given name.
	Get(t reflect.Type, name string) (Constant, error)
	// TryGet is like Get but reports absence instead of failing.
	TryGet(t reflect.Type, name string) (Constant, bool)
	// Entries returns a snapshot for diagnostics/docs ordered by type string.
	Entries() []Entry
	// Count returns the number of known enum types.
	Count() int
}

// Entry is a single enum type in a Registry snapshot.
type Entry struct {
	// Type is the normalized enum type.
	Type reflect.Type
	// Name is the explicitly registered name, or "" if none.
	Name string
	// State is the initialization state of the type.
	State State
	// Len is the number of constants created so far.
	Len int
}
