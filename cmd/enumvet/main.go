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

// Command enumvet reports enum constant declarations that would be rejected
// at program start.
//
//	go vet -vettool=$(which enumvet) ./...
package main

import (
	"golang.org/x/tools/go/analysis/singlechecker"

	"dirpx.dev/enum/analysis/enumcheck"
)

func main() { singlechecker.Main(enumcheck.Analyzer) }
