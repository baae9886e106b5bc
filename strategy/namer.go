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
	uref "dirpx.dev/enum/utils/reflect"
)

// NewNamerStrategy creates an apis.Strategy that uses apis.Namer.
func NewNamerStrategy() apis.Strategy {
	return &namerStrategy{}
}

// namerStrategy asks the enum type for its own name. A non-empty
// EnumTypeName() stops the chain.
type namerStrategy struct{}

// Ensure namerStrategy implements apis.Strategy.
var _ apis.Strategy = (*namerStrategy)(nil)

var namerType = reflect.TypeOf((*apis.Namer)(nil)).Elem()

// ForValue checks if v implements apis.Namer and returns its EnumTypeName().
func (*namerStrategy) ForValue(v any, _ apis.Config) (string, bool) {
	if v == nil {
		return "", false
	}
	if n, ok := v.(apis.Namer); ok {
		return nonEmpty(n.EnumTypeName())
	}
	return "", false
}

// ForType normalizes t and calls EnumTypeName() on a zero value of
// the enum type. Interface types have no usable zero value and fall through.
func (*namerStrategy) ForType(t reflect.Type, cfg apis.Config) (string, bool) {
	if t == nil {
		return "", false
	}
	n, err := uref.Normalize(t, cfg)
	if err != nil || n.Kind() == reflect.Interface {
		return "", false
	}
	switch {
	case n.Implements(namerType):
		return nonEmpty(reflect.Zero(n).Interface().(apis.Namer).EnumTypeName())
	case reflect.PointerTo(n).Implements(namerType):
		return nonEmpty(reflect.New(n).Interface().(apis.Namer).EnumTypeName())
	}
	return "", false
}

func nonEmpty(name string) (string, bool) {
	return name, name != ""
}
