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

package registry

import (
	"errors"
	"fmt"
	"reflect"
)

var (
	// ErrNilType is returned when a nil reflect.Type is provided.
	ErrNilType = errors.New("enum(registry): nil reflect.Type provided")
	// ErrEmptyName is returned when an empty name is provided.
	ErrEmptyName = errors.New("enum(registry): empty name provided")
	// ErrConflictingRegistration indicates an attempt to re-register
	// a type with a different name.
	ErrConflictingRegistration = errors.New("enum(registry): conflicting type registration")
	// ErrSealed is returned when a constant is created for a Ready type.
	ErrSealed = errors.New("enum(registry): enum type is sealed")
	// ErrAlreadyRegistered is returned when the same instance is registered twice.
	ErrAlreadyRegistered = errors.New("enum(registry): constant instance already registered")
	// ErrUnknownConstantName is matched by *UnknownConstantNameError.
	ErrUnknownConstantName = errors.New("enum(registry): unknown constant name")
	// ErrDuplicateName is matched by *DuplicateNameError.
	ErrDuplicateName = errors.New("enum(registry): duplicate constant name")
	// ErrTypeFailed is matched by *TypeFailedError.
	ErrTypeFailed = errors.New("enum(registry): enum type failed to initialize")
)

// UnknownConstantNameError reports a lookup for a name the type does not declare.
type UnknownConstantNameError struct {
	Type reflect.Type
	Name string
}

func (e *UnknownConstantNameError) Error() string {
	return fmt.Sprintf("enum(registry): %v has no constant named %q", e.Type, e.Name)
}

// Unwrap returns ErrUnknownConstantName.
func (e *UnknownConstantNameError) Unwrap() error { return ErrUnknownConstantName }

// DuplicateNameError reports a second constant with an existing name.
type DuplicateNameError struct {
	Type reflect.Type
	Name string
}

func (e *DuplicateNameError) Error() string {
	return fmt.Sprintf("enum(registry): %v already has a constant named %q", e.Type, e.Name)
}

// Unwrap returns ErrDuplicateName.
func (e *DuplicateNameError) Unwrap() error { return ErrDuplicateName }

// TypeFailedError is returned by every operation on a type whose
// initialization failed. Cause is the error of the rejected declaration.
type TypeFailedError struct {
	Type  reflect.Type
	Cause error
}

func (e *TypeFailedError) Error() string {
	return fmt.Sprintf("enum(registry): %v is unusable: %v", e.Type, e.Cause)
}

// Unwrap returns both ErrTypeFailed and the cause.
func (e *TypeFailedError) Unwrap() []error { return []error{ErrTypeFailed, e.Cause} }
