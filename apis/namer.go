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

// Namer lets an enum type choose its own display name.
//
// The method is called on a zero value of the type, so it must not depend
// on instance state. Returning a string literal is the expected pattern:
//
//	func (*Planet) EnumTypeName() string { return "solar.planet" }
type Namer interface {
	EnumTypeName() string
}
