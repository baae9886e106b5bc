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

package validator

import "strings"

// Site describes a candidate declaration site.
type Site struct {
	// Type is the display form of the enum type (e.g. "planet.Planet").
	Type string
	// Name is the constant name stated at the creation call.
	Name string
	// Package is the import path of the package making the creation call.
	Package string
	// Found reports whether a declaration matching Name exists.
	Found bool
	// Exported reports whether the declaration is visible outside its package.
	Exported bool
	// Static reports whether the declaration is bound at package scope.
	Static bool
	// WriteOnce reports whether the declaration is assigned exactly once,
	// by its own initializer.
	WriteOnce bool
}

// Validate checks s and returns the first violated rule, in the order
// missing declaration, Private, InstanceMember, Mutable. It has no side effects.
func Validate(s Site) error {
	switch {
	case !s.Found:
		return &MissingDeclarationError{Type: s.Type, Name: s.Name}
	case !s.Exported:
		return &InvalidModifiersError{Type: s.Type, Name: s.Name, Kind: Private}
	case !s.Static:
		return &InvalidModifiersError{Type: s.Type, Name: s.Name, Kind: InstanceMember}
	case !s.WriteOnce:
		return &InvalidModifiersError{Type: s.Type, Name: s.Name, Kind: Mutable}
	}
	return nil
}

// CheckOwner returns a *TypeMismatchError when the calling package differs
// from owner, the package that declares the enum type typ.
func CheckOwner(typ, owner, caller string) error {
	if owner == caller {
		return nil
	}
	return &TypeMismatchError{Type: typ, Expected: owner, Actual: caller}
}

// NameMatches reports whether ident can hold the constant called name:
// either the two are equal, or they are equal ignoring case and
// underscores, so that "NOT_FOUND" is held by NotFound.
func NameMatches(ident, name string) bool {
	if ident == name {
		return true
	}
	return fold(ident) == fold(name)
}

func fold(s string) string {
	return strings.ToLower(strings.ReplaceAll(s, "_", ""))
}
