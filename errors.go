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

package enum

import (
	"dirpx.dev/enum/dispatcher"
	"dirpx.dev/enum/registry"
	"dirpx.dev/enum/validator"
)

// Declaration errors.
var (
	ErrMissingDeclaration = validator.ErrMissingDeclaration
	ErrInvalidModifiers   = validator.ErrInvalidModifiers
	ErrTypeMismatch       = validator.ErrTypeMismatch
)

// Construction errors.
var (
	ErrInvalidConstructor    = dispatcher.ErrInvalidConstructor
	ErrNoMatchingConstructor = dispatcher.ErrNoMatchingConstructor
	ErrAmbiguousConstructor  = dispatcher.ErrAmbiguousConstructor
	ErrNilInstance           = dispatcher.ErrNilInstance
)

// Registry errors.
var (
	ErrSealed              = registry.ErrSealed
	ErrAlreadyRegistered   = registry.ErrAlreadyRegistered
	ErrUnknownConstantName = registry.ErrUnknownConstantName
	ErrDuplicateName       = registry.ErrDuplicateName
	ErrTypeFailed          = registry.ErrTypeFailed
)

type (
	MissingDeclarationError    = validator.MissingDeclarationError
	InvalidModifiersError      = validator.InvalidModifiersError
	TypeMismatchError          = validator.TypeMismatchError
	NoMatchingConstructorError = dispatcher.NoMatchingConstructorError
	AmbiguousConstructorError  = dispatcher.AmbiguousConstructorError
	UnknownConstantNameError   = registry.UnknownConstantNameError
	DuplicateNameError         = registry.DuplicateNameError
	TypeFailedError            = registry.TypeFailedError
	ModifierKind               = validator.ModifierKind
)

// Modifier kinds reported by InvalidModifiersError.
const (
	Private        = validator.Private
	InstanceMember = validator.InstanceMember
	Mutable        = validator.Mutable
)
