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

// Package resolver turns an ordered list of naming strategies into an
// apis.Resolver.
package resolver

import (
	"reflect"

	"dirpx.dev/enum/apis"
)

// New returns a resolver consulting strategies in the given order. Nil
// entries are dropped. The list is copied, so later changes by the caller
// have no effect.
func New(strategies ...apis.Strategy) apis.Resolver {
	c := make(chain, 0, len(strategies))
	for _, s := range strategies {
		if s != nil {
			c = append(c, s)
		}
	}
	return c
}

// chain is immutable once built and safe for concurrent use when its
// strategies are.
type chain []apis.Strategy

// TypeNameOf returns the first non-empty name any strategy gives v.
func (c chain) TypeNameOf(v any, cfg apis.Config) string {
	for _, s := range c {
		if name, ok := s.ForValue(v, cfg); ok && name != "" {
			return name
		}
	}
	return ""
}

// TypeName returns the first non-empty name any strategy gives t.
func (c chain) TypeName(t reflect.Type, cfg apis.Config) string {
	for _, s := range c {
		if name, ok := s.ForType(t, cfg); ok && name != "" {
			return name
		}
	}
	return ""
}
