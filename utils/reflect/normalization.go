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

package reflect

import (
	"errors"
	"reflect"

	"dirpx.dev/enum/apis"
	"dirpx.dev/enum/config"
)

var (
	// ErrReflectNilType is returned when a nil reflect.Type is provided.
	ErrReflectNilType = errors.New("reflect: nil reflect.Type provided")
	// ErrReflectTypeNotNamed indicates that the provided type (after unwrapping containers)
	// does not contain a named type (e.g., anonymous struct, func, interface{}).
	ErrReflectTypeNotNamed = errors.New("reflect: type has no nearest named type")
)

// Normalize unwraps containers according to cfg (MaxUnwrap/MapPreferElem)
// and returns the nearest named inner type, or an error if none is found.
//
// Enum types are keyed by the result: *Planet, []Planet and
// map[string]*Planet all normalize to Planet.
//
// Unwrapping policy:
//   - ptr/slice/array/chan  -> Elem()
//   - map[K]V: the preferred side wins if named, then the other side;
//     otherwise unwrapping continues with Elem().
//   - default: a named type is returned as-is; anything else is ErrReflectTypeNotNamed.
//
// If MaxUnwrap <= 0, DefaultMaxUnwrap is used.
func Normalize(t reflect.Type, cfg apis.Config) (reflect.Type, error) {
	if t == nil {
		return nil, ErrReflectNilType
	}
	depth := cfg.MaxUnwrap
	if depth <= 0 {
		depth = config.DefaultMaxUnwrap
	}

	for ; t != nil && depth > 0; depth-- {
		switch t.Kind() {
		case reflect.Ptr, reflect.Slice, reflect.Array, reflect.Chan:
			t = t.Elem()
		case reflect.Map:
			first, second := t.Key(), t.Elem()
			if cfg.MapPreferElem {
				first, second = second, first
			}
			if named(first) {
				return first, nil
			}
			if named(second) {
				return second, nil
			}
			t = t.Elem()
		default:
			if named(t) {
				return t, nil
			}
			return nil, ErrReflectTypeNotNamed
		}
	}

	if named(t) {
		return t, nil
	}
	return nil, ErrReflectTypeNotNamed
}

// DeclaringPackage returns the import path of the package that declares the
// nearest named type of t, or "" for builtin and unnamed types.
func DeclaringPackage(t reflect.Type, cfg apis.Config) string {
	n, err := Normalize(t, cfg)
	if err != nil {
		return ""
	}
	return n.PkgPath()
}

// Nillable reports whether a nil value may be assigned to a value of type t.
func Nillable(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.UnsafePointer:
		return true
	default:
		return false
	}
}

func named(t reflect.Type) bool {
	return t != nil && t.Name() != ""
}
