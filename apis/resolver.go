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

// Resolver produces the display name of an enum type, used by Type.Name,
// the free-standing TypeName/TypeByName functions, metrics labels and the
// CLI. The default chain is Namer, then explicit registry names, then the
// reflected "pkg.Type" form.
type Resolver interface {
	// TypeNameOf names the enum type of v, or returns "".
	TypeNameOf(v any, cfg Config) string
	// TypeName names the enum type t, or returns "".
	TypeName(t reflect.Type, cfg Config) string
}
