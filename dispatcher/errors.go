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

package dispatcher

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
)

var (
	// ErrNilTarget is returned when a Set is created for a nil type.
	ErrNilTarget = errors.New("enum(dispatcher): nil target type")
	// ErrInvalidConstructor is returned when a registered value is not a
	// usable constructor for the target type.
	ErrInvalidConstructor = errors.New("enum(dispatcher): invalid constructor")
	// ErrNoMatchingConstructor is matched by *NoMatchingConstructorError.
	ErrNoMatchingConstructor = errors.New("enum(dispatcher): no matching constructor")
	// ErrAmbiguousConstructor is matched by *AmbiguousConstructorError.
	ErrAmbiguousConstructor = errors.New("enum(dispatcher): ambiguous constructor")
	// ErrNilInstance is returned when a constructor produces a nil value.
	ErrNilInstance = errors.New("enum(dispatcher): constructor returned nil")
)

// NoMatchingConstructorError reports that no constructor accepts the argument types.
type NoMatchingConstructorError struct {
	Type reflect.Type
	// Args holds the runtime argument types; nil entries stand for nil arguments.
	Args []reflect.Type
}

func (e *NoMatchingConstructorError) Error() string {
	return fmt.Sprintf("enum(dispatcher): %v does not have a constructor that takes (%s)", e.Type, typeList(e.Args))
}

// Unwrap returns ErrNoMatchingConstructor.
func (e *NoMatchingConstructorError) Unwrap() error { return ErrNoMatchingConstructor }

// AmbiguousConstructorError reports that several constructors match equally well.
type AmbiguousConstructorError struct {
	Type reflect.Type
	Args []reflect.Type
	// Candidates are the func types of the matching constructors, in registration order.
	Candidates []reflect.Type
}

func (e *AmbiguousConstructorError) Error() string {
	return fmt.Sprintf("enum(dispatcher): %v has %d constructors that take (%s): %s",
		e.Type, len(e.Candidates), typeList(e.Args), typeList(e.Candidates))
}

// Unwrap returns ErrAmbiguousConstructor.
func (e *AmbiguousConstructorError) Unwrap() error { return ErrAmbiguousConstructor }

func typeList(ts []reflect.Type) string {
	parts := make([]string, len(ts))
	for i, t := range ts {
		if t == nil {
			parts[i] = "nil"
			continue
		}
		parts[i] = t.String()
	}
	return strings.Join(parts, ", ")
}
