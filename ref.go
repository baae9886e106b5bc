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
	"gopkg.in/yaml.v3"
)

// Ref holds a constant of T and encodes it by name. It is meant for
// configuration and wire structs; decoding looks the name up in the
// global registry.
//
//	type Trip struct {
//		Destination enum.Ref[*planet.Planet] `yaml:"destination" json:"destination"`
//	}
//
// A zero Ref encodes as the empty string, and the empty string decodes to
// a zero Ref.
type Ref[T Enum] struct {
	Value T
}

// RefOf wraps v.
func RefOf[T Enum](v T) Ref[T] {
	return Ref[T]{Value: v}
}

// IsZero reports whether r holds no constant.
func (r Ref[T]) IsZero() bool {
	return isNil(r.Value)
}

// String returns the constant name, or "" for a zero Ref.
func (r Ref[T]) String() string {
	if r.IsZero() {
		return ""
	}
	return r.Value.Name()
}

// MarshalText implements encoding.TextMarshaler.
func (r Ref[T]) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (r *Ref[T]) UnmarshalText(b []byte) error {
	return r.set(string(b))
}

// MarshalYAML implements yaml.Marshaler.
func (r Ref[T]) MarshalYAML() (any, error) {
	return r.String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (r *Ref[T]) UnmarshalYAML(node *yaml.Node) error {
	var name string
	if err := node.Decode(&name); err != nil {
		return err
	}
	return r.set(name)
}

func (r *Ref[T]) set(name string) error {
	if name == "" {
		var zero T
		r.Value = zero
		return nil
	}
	v, err := For[T]().Get(name)
	if err != nil {
		return err
	}
	r.Value = v
	return nil
}
