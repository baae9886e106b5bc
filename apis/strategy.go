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

// Strategy is one step of enum type naming. A Resolver asks its strategies
// in order and keeps the first name produced.
//
// Both methods report ok=false when the strategy has no opinion, in which
// case the next strategy is consulted.
type Strategy interface {
	// ForValue names the enum type of the constant (or handle) v.
	ForValue(v any, cfg Config) (name string, ok bool)
	// ForType names the enum type t. Pointer, slice and map wrappers are
	// unwrapped according to cfg.
	ForType(t reflect.Type, cfg Config) (name string, ok bool)
}
