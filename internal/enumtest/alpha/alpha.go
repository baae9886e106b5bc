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

// Package alpha declares a two-constant enum type for tests.
package alpha

import "dirpx.dev/enum"

// Letter is the enum type of package alpha.
type Letter struct {
	enum.Constant
}

// Letters is the enum type handle.
var Letters = enum.For[*Letter]()

var (
	TEST0 = Letters.NewConstant("TEST0").MustCreate()
	TEST1 = Letters.NewConstant("TEST1").MustCreate()
)
