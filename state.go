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
	"errors"
	"reflect"
	"sync"
	"sync/atomic"

	"dirpx.dev/enum/apis"
	"dirpx.dev/enum/builder"
	"dirpx.dev/enum/config"
	"dirpx.dev/enum/registry"
)

// init initializes the global state.
func init() {
	s := &state{cfg: config.DefaultConfig()}
	s.bld = builder.New()
	s.reg = registry.New(s.cfg)
	s.res = s.bld.BuildResolver(s.cfg, s.reg, nil)
	st.Store(s)
}

var (
	// ErrNilRegistry is returned when a nil registry is provided.
	ErrNilRegistry = errors.New("enum: nil registry")
	// ErrNilResolver is returned when a builder returns a nil resolver.
	ErrNilResolver = errors.New("enum: builder returned nil resolver")
)

// Values returns the constants of t's enum type from the global registry.
func Values(t reflect.Type) ([]apis.Constant, error) {
	return st.Load().reg.Values(t)
}

// Get returns the constant of t's enum type called name.
func Get(t reflect.Type, name string) (apis.Constant, error) {
	return st.Load().reg.Get(t, name)
}

// TryGet is like Get but reports absence as false.
func TryGet(t reflect.Type, name string) (apis.Constant, bool) {
	return st.Load().reg.TryGet(t, name)
}

// TypeName resolves the display name of t's enum type using the global resolver.
func TypeName(t reflect.Type) string {
	s := st.Load()
	return s.res.TypeName(t, s.cfg)
}

// TypeByName returns the enum type in the global registry whose display
// name is name.
func TypeByName(name string) (reflect.Type, bool) {
	if name == "" {
		return nil, false
	}
	s := st.Load()
	for _, e := range s.reg.Entries() {
		if s.res.TypeName(e.Type, s.cfg) == name {
			return e.Type, true
		}
	}
	return nil, false
}

// RegisterTypeName records an explicit display name for t's enum type.
func RegisterTypeName(t reflect.Type, name string) error {
	return st.Load().reg.Register(t, name)
}

// Config returns the global configuration.
func Config() apis.Config {
	return st.Load().cfg
}

// SetConfig replaces the global configuration. The global registry keeps
// its types and observes cfg from its next operation; the resolver is
// rebuilt unless one was set explicitly.
func SetConfig(cfg apis.Config) {
	buildMu.Lock()
	defer buildMu.Unlock()

	old := st.Load()
	old.reg.Configure(cfg)

	nres := old.res
	if !old.pres {
		nres = old.bld.BuildResolver(cfg, old.reg, old.res)
	}
	if nres == nil {
		panic(ErrNilResolver)
	}

	st.Store(
		&state{
			cfg:  cfg,
			reg:  old.reg,
			res:  nres,
			bld:  old.bld,
			pres: old.pres,
		},
	)
}

// Registry returns the global registry.
func Registry() *registry.Registry {
	return st.Load().reg
}

// Resolver returns the global resolver.
func Resolver() apis.Resolver {
	return st.Load().res
}

// SetResolver sets the global resolver. It is kept across SetConfig and
// SetBuilder until ResetResolver is called.
func SetResolver(res apis.Resolver) {
	if res == nil {
		return
	}

	buildMu.Lock()
	defer buildMu.Unlock()

	old := st.Load()
	st.Store(
		&state{
			cfg:  old.cfg,
			reg:  old.reg,
			res:  res,
			bld:  old.bld,
			pres: true,
		},
	)
}

// ResetResolver drops an explicitly set resolver and rebuilds the default one.
func ResetResolver() {
	buildMu.Lock()
	defer buildMu.Unlock()

	old := st.Load()
	nres := old.bld.BuildResolver(old.cfg, old.reg, old.res)
	if nres == nil {
		panic(ErrNilResolver)
	}
	st.Store(
		&state{
			cfg: old.cfg,
			reg: old.reg,
			res: nres,
			bld: old.bld,
		},
	)
}

// Builder returns the global builder.
func Builder() apis.Builder {
	return st.Load().bld
}

// SetBuilder sets the global builder and rebuilds the resolver unless one
// was set explicitly.
func SetBuilder(b apis.Builder) {
	if b == nil {
		return
	}

	buildMu.Lock()
	defer buildMu.Unlock()

	old := st.Load()
	nres := old.res
	if !old.pres {
		nres = b.BuildResolver(old.cfg, old.reg, old.res)
	}
	if nres == nil {
		panic(ErrNilResolver)
	}

	st.Store(
		&state{
			cfg:  old.cfg,
			reg:  old.reg,
			res:  nres,
			bld:  b,
			pres: old.pres,
		},
	)
}

// buildMu serializes writers (reconfigurations/swaps) so we never publish
// partially-built snapshots.
var buildMu sync.Mutex

// st is the global state.
var st atomic.Pointer[state]

// state is the global state snapshot.
// Immutable snapshot published atomically via st.Store; never mutate fields
// of a published state. Writers create a new state and swap it atomically.
type state struct {
	// cfg is the global configuration.
	cfg apis.Config
	// reg is the global registry. It lives for the whole process.
	reg *registry.Registry
	// res is the global resolver.
	res apis.Resolver
	// bld is the global builder.
	bld apis.Builder
	// pres indicates whether res was set explicitly.
	pres bool
}
