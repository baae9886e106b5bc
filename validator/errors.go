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

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingDeclaration is matched by *MissingDeclarationError.
	ErrMissingDeclaration = errors.New("enum(validator): missing declaration")
	// ErrInvalidModifiers is matched by *InvalidModifiersError.
	ErrInvalidModifiers = errors.New("enum(validator): invalid modifiers")
	// ErrTypeMismatch is matched by *TypeMismatchError.
	ErrTypeMismatch = errors.New("enum(validator): type mismatch")
)

// ModifierKind names the structural rule a declaration site violates.
type ModifierKind int

const (
	// Private means the declaration is not exported.
	Private ModifierKind = iota + 1
	// InstanceMember means the constant is bound to a function scope or a
	// value instead of to the package.
	InstanceMember
	// Mutable means the declaration is assigned after (or instead of) its initializer.
	Mutable
)

// String returns the stable upper-case name of the kind.
func (k ModifierKind) String() string {
	switch k {
	case Private:
		return "PRIVATE"
	case InstanceMember:
		return "INSTANCE_MEMBER"
	case Mutable:
		return "MUTABLE"
	default:
		return fmt.Sprintf("UNKNOWN(%d)", int(k))
	}
}

// MissingDeclarationError reports that no declaration matches the constant name.
type MissingDeclarationError struct {
	Type string
	Name string
}

func (e *MissingDeclarationError) Error() string {
	return fmt.Sprintf("enum(validator): no declaration named %q holds a constant of %s", e.Name, e.Type)
}

// Unwrap returns ErrMissingDeclaration.
func (e *MissingDeclarationError) Unwrap() error { return ErrMissingDeclaration }

// InvalidModifiersError reports the first structural rule a declaration violates.
type InvalidModifiersError struct {
	Type string
	Name string
	Kind ModifierKind
}

func (e *InvalidModifiersError) Error() string {
	var why string
	switch e.Kind {
	case Private:
		why = "declaration is not exported"
	case InstanceMember:
		why = "constant is not declared by a package-level variable"
	case Mutable:
		why = "declaration is assigned by a statement"
	default:
		why = "invalid declaration"
	}
	return fmt.Sprintf("enum(validator): %s constant %q: %s (%s); enum constants must be exported, package-level, write-once variables",
		e.Type, e.Name, why, e.Kind)
}

// Unwrap returns ErrInvalidModifiers.
func (e *InvalidModifiersError) Unwrap() error { return ErrInvalidModifiers }

// TypeMismatchError reports a constant created from a package other than
// the one that declares its enum type.
type TypeMismatchError struct {
	// Type is the enum type.
	Type string
	// Expected is the package that declares Type.
	Expected string
	// Actual is the package the creation call came from.
	Actual string
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("enum(validator): constants of %s must be declared in package %q, not %q",
		e.Type, e.Expected, e.Actual)
}

// Unwrap returns ErrTypeMismatch.
func (e *TypeMismatchError) Unwrap() error { return ErrTypeMismatch }
