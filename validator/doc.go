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

// Package validator checks that a declaration site is eligible to hold an
// enum constant.
//
// A declaration site is the package-level variable a constant is assigned
// to. It must be exported, declared at package scope with an initializer,
// and never assigned again. Validate reports the first violated rule as a
// typed error so that a broken declaration can be diagnosed precisely:
//
//	MissingDeclarationError                no variable matches the constant name
//	InvalidModifiersError{Private}         the variable is unexported
//	InvalidModifiersError{InstanceMember}  the constant is not bound at package scope
//	InvalidModifiersError{Mutable}         the variable is (re)assigned by a statement
//
// The facts in a Site come either from the go/analysis pass in
// dirpx.dev/enum/analysis/enumcheck (at vet time, where every rule is
// decidable) or from the runtime call-site capture of dirpx.dev/enum (where
// only the declaration context is observable).
package validator
