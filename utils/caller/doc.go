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

// Package caller inspects the calling goroutine's stack to recover the
// declaration context of a constant: which package the call comes from and
// whether it runs as a package variable initializer, inside an init
// function, or from ordinary code.
//
// Function names are parsed the way the Go linker emits them:
//
//	example.com/pkg.init              package variable initializers
//	example.com/pkg.init.func1        closures inside those initializers
//	example.com/pkg.init.0            the first func init() of the package
//	example.com/pkg.(*T[...]).Method  methods, including generic ones
//
// Dots in the last import path element are escaped as "%2e" by the linker
// and are unescaped in the returned package path.
package caller
