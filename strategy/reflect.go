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
	"path"
	"reflect"
	"strings"
	"sync"

	"dirpx.dev/enum/apis"
	uref "dirpx.dev/enum/utils/reflect"
)

// NewReflectStrategy creates an apis.Strategy that derives "pkg.Type" names
// via utils/reflect.Normalize, with memoization.
func NewReflectStrategy() apis.Strategy {
	return reflectStrategy{}
}

// reflectStrategy is the universal fallback. It unwraps containers via
// Normalize and strips generic instantiation parameters.
type reflectStrategy struct{}

// Ensure reflectStrategy implements apis.Strategy.
var _ apis.Strategy = (*reflectStrategy)(nil)

// cacheKey ensures memoization respects all config knobs that affect resolution.
type cacheKey struct {
	t             reflect.Type
	maxUnwrap     int16
	mapPreferElem bool
}

// typeNameCache caches resolved type names by (type, config knobs).
var typeNameCache sync.Map // key: cacheKey, val: string

// ForValue computes the name for v's type.
func (reflectStrategy) ForValue(v any, cfg apis.Config) (string, bool) {
	if v == nil {
		return "", false
	}
	return byType(reflect.TypeOf(v), cfg)
}

// ForType computes the name for t.
func (reflectStrategy) ForType(t reflect.Type, cfg apis.Config) (string, bool) {
	if t == nil {
		return "", false
	}
	return byType(t, cfg)
}

// byType resolves the name for t with memoization. Types without a
// nearest named type are not handled.
func byType(t reflect.Type, cfg apis.Config) (string, bool) {
	key := cacheKey{
		t:             t,
		maxUnwrap:     int16(cfg.MaxUnwrap),
		mapPreferElem: cfg.MapPreferElem,
	}
	if v, ok := typeNameCache.Load(key); ok {
		return nonEmpty(v.(string))
	}

	name := ""
	if base, err := uref.Normalize(t, cfg); err == nil {
		name = stripTypeParams(base.Name())
		if p := base.PkgPath(); p != "" {
			name = path.Base(p) + "." + name
		}
	}

	typeNameCache.Store(key, name)
	return nonEmpty(name)
}

// stripTypeParams removes generic type instantiation suffix: "T[int,string]" -> "T".
func stripTypeParams(s string) string {
	if i := strings.IndexByte(s, '['); i >= 0 {
		return s[:i]
	}
	return s
}
