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

package strategy

import (
	"reflect"

	"dirpx.dev/enum/apis"
)

// NewRegistryStrategy returns a strategy answering with the names recorded
// through WithTypeName or RegisterTypeName. Types without an explicit name
// fall through.
func NewRegistryStrategy(reg apis.Registry) apis.Strategy {
	return registryStrategy{reg: reg}
}

type registryStrategy struct {
	reg apis.Registry
}

var _ apis.Strategy = registryStrategy{}

// ForValue names the enum type of constant v.
func (s registryStrategy) ForValue(v any, cfg apis.Config) (string, bool) {
	if v == nil {
		return "", false
	}
	return s.ForType(reflect.TypeOf(v), cfg)
}

// ForType names t. The registry normalizes t, so *Planet and Planet
// share one entry.
func (s registryStrategy) ForType(t reflect.Type, _ apis.Config) (string, bool) {
	if t == nil || s.reg == nil {
		return "", false
	}
	return s.reg.Lookup(t)
}
