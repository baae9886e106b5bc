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
	"reflect"
	"sync/atomic"

	"dirpx.dev/enum/apis"
	"dirpx.dev/enum/dispatcher"
	"dirpx.dev/enum/registry"
	"dirpx.dev/enum/utils/caller"
	"dirpx.dev/enum/validator"
)

// selfPackage is skipped when the declaring call site is captured.
const selfPackage = "dirpx.dev/enum"

// Constant is embedded by value in every enum constant type.
//
// Its fields are stamped once, when the constant is registered, and are
// read-only afterwards.
type Constant struct {
	name    string
	ordinal int
	stamped bool
}

// Name returns the declaration name of the constant.
func (c *Constant) Name() string { return c.name }

// Ordinal returns the zero-based declaration position within the enum type.
func (c *Constant) Ordinal() int { return c.ordinal }

// String returns the name.
func (c *Constant) String() string { return c.name }

// MarshalText encodes the constant as its name.
func (c *Constant) MarshalText() ([]byte, error) { return []byte(c.name), nil }

// MarshalYAML encodes the constant as its name.
func (c *Constant) MarshalYAML() (any, error) { return c.name, nil }

func (c *Constant) base() *Constant { return c }

// Enum is satisfied by pointers to structs embedding Constant, and by
// interfaces embedding Enum. Only this package can stamp a Constant.
type Enum interface {
	apis.Constant
	base() *Constant
}

// Option configures a Type handle.
type Option func(*options)

type options struct {
	ctors []any
	name  string
}

// WithConstructors registers constructor functions used by Creator.Create.
// A constructor is a non-variadic func returning T, optionally followed by
// an error. Unexported functions are fine.
func WithConstructors(fns ...any) Option {
	return func(o *options) { o.ctors = append(o.ctors, fns...) }
}

// WithTypeName records an explicit display name for the enum type.
func WithTypeName(name string) Option {
	return func(o *options) { o.name = name }
}

// Type is the typed handle of one enum type in one registry.
type Type[T Enum] struct {
	reg   *registry.Registry
	table *registry.Table
	ctors *dispatcher.Set
	res   apis.Resolver
	view  atomic.Pointer[[]T]
}

// For returns the handle of T in the global registry. It panics if an
// option is invalid, which aborts program start when used in a package
// variable initializer.
func For[T Enum](opts ...Option) *Type[T] {
	t, err := declare[T](st.Load().reg, nil, opts)
	if err != nil {
		panic(err)
	}
	return t
}

// In returns the handle of T in reg. Names are resolved with a resolver
// built for reg by the global builder.
func In[T Enum](reg *registry.Registry, opts ...Option) (*Type[T], error) {
	if reg == nil {
		return nil, ErrNilRegistry
	}
	res := Builder().BuildResolver(reg.Config(), reg, nil)
	if res == nil {
		return nil, ErrNilResolver
	}
	return declare[T](reg, res, opts)
}

func declare[T Enum](reg *registry.Registry, res apis.Resolver, opts []Option) (*Type[T], error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	rt := reflect.TypeFor[T]()
	table, err := reg.Table(rt)
	if err != nil {
		return nil, err
	}
	ctors, err := dispatcher.New(rt)
	if err != nil {
		return nil, err
	}
	t := table.Attach(rt, &Type[T]{reg: reg, table: table, ctors: ctors, res: res}).(*Type[T])

	if err := t.ctors.Add(o.ctors...); err != nil {
		return nil, err
	}
	if o.name != "" {
		if err := reg.Register(rt, o.name); err != nil {
			return nil, err
		}
	}
	return t, nil
}

// NewConstant starts the declaration of the constant called name. The
// result must be completed with Create or New in the initializer of an
// exported package variable of the package declaring T.
//
// At run time the declaring package and, in strict registries, the
// declaration context are checked. Export status and the holder name are
// only visible to the enumvet pass, so a constant held by an unexported
// variable is reported by enumvet, not here.
func (t *Type[T]) NewConstant(name string) *Creator[T] {
	return &Creator[T]{typ: t, name: name}
}

// Values returns the constants in declaration order. Once the type is
// Ready every call returns the same slice, which must not be modified.
func (t *Type[T]) Values() ([]T, error) {
	cs, err := t.table.Values()
	if err != nil {
		return nil, err
	}
	return t.typed(cs), nil
}

// typed converts cs, reusing the cached view while the length is unchanged.
func (t *Type[T]) typed(cs []apis.Constant) []T {
	for {
		old := t.view.Load()
		if old != nil && len(*old) == len(cs) {
			return *old
		}
		out := make([]T, len(cs))
		for i, c := range cs {
			out[i] = c.(T)
		}
		if t.view.CompareAndSwap(old, &out) {
			return out
		}
	}
}

// Get returns the constant called name.
func (t *Type[T]) Get(name string) (T, error) {
	c, err := t.table.Get(name)
	if err != nil {
		var zero T
		return zero, err
	}
	return c.(T), nil
}

// TryGet is like Get but reports absence as false.
func (t *Type[T]) TryGet(name string) (T, bool) {
	c, ok := t.table.TryGet(name)
	if !ok {
		var zero T
		return zero, false
	}
	return c.(T), true
}

// ByOrdinal returns the constant declared at position i.
func (t *Type[T]) ByOrdinal(i int) (T, bool) {
	c, ok := t.table.ByOrdinal(i)
	if !ok {
		var zero T
		return zero, false
	}
	return c.(T), true
}

// Len returns the number of constants created so far.
func (t *Type[T]) Len() int { return t.table.Len() }

// State returns the lifecycle state of the type.
func (t *Type[T]) State() apis.State { return t.table.State() }

// Err returns the sticky initialization failure, if any.
func (t *Type[T]) Err() error { return t.table.Err() }

// Seal completes the type. Later creations fail with ErrSealed.
func (t *Type[T]) Seal() bool { return t.table.Seal() }

// Name returns the display name of the enum type.
func (t *Type[T]) Name() string {
	if t.res != nil {
		return t.res.TypeName(t.table.Type(), t.reg.Config())
	}
	s := st.Load()
	return s.res.TypeName(t.table.Type(), s.cfg)
}

// Reflect returns the reflect.Type of T.
func (t *Type[T]) Reflect() reflect.Type { return reflect.TypeFor[T]() }

// Creator completes the declaration of one constant.
type Creator[T Enum] struct {
	typ  *Type[T]
	name string
}

// Create builds the constant with the registered constructor matching
// args, registers it and returns it.
func (c *Creator[T]) Create(args ...any) (T, error) {
	return c.typ.create(c.name, func() (T, error) {
		v, err := c.typ.ctors.Construct(args...)
		if err != nil {
			var zero T
			return zero, err
		}
		return v.Interface().(T), nil
	})
}

// MustCreate is like Create but panics on error.
func (c *Creator[T]) MustCreate(args ...any) T {
	v, err := c.Create(args...)
	if err != nil {
		panic(err)
	}
	return v
}

// New registers the constant returned by fn. No constructor lookup is
// involved.
func (c *Creator[T]) New(fn func() T) (T, error) {
	if fn == nil {
		var zero T
		return zero, dispatcher.ErrInvalidConstructor
	}
	return c.typ.create(c.name, func() (T, error) { return fn(), nil })
}

// MustNew is like New but panics on error.
func (c *Creator[T]) MustNew(fn func() T) T {
	v, err := c.New(fn)
	if err != nil {
		panic(err)
	}
	return v
}

func (t *Type[T]) create(name string, build func() (T, error)) (T, error) {
	site := t.site(name)
	c, err := t.table.Create(site, func() (apis.Constant, error) {
		v, err := build()
		if err != nil {
			return nil, err
		}
		if isNil(v) || v.base() == nil {
			return nil, dispatcher.ErrNilInstance
		}
		if v.base().stamped {
			return nil, registry.ErrAlreadyRegistered
		}
		return v, nil
	}, stamp[T])
	if err != nil {
		var zero T
		return zero, err
	}
	return c.(T), nil
}

// site describes the current call site. Without strict mode only the
// declaring package is checked.
func (t *Type[T]) site(name string) validator.Site {
	s := validator.Site{
		Type:      t.table.Type().String(),
		Name:      name,
		Package:   t.table.Package(),
		Found:     name != "",
		Exported:  true,
		Static:    true,
		WriteOnce: true,
	}
	f, ok := caller.Capture(selfPackage)
	if !ok {
		return s
	}
	s.Package = f.Package
	if !t.reg.Config().Strict {
		return s
	}
	ctx := f.Context
	if ctx != caller.Function && !caller.InPackageInit() {
		// package-scope closures keep their glob. frame names when called later
		ctx = caller.Function
	}
	switch ctx {
	case caller.Function:
		s.Static = false
	case caller.InitFunc:
		s.WriteOnce = false
	}
	return s
}

func stamp[T Enum](c apis.Constant, name string, ordinal int) {
	b := c.(T).base()
	b.name, b.ordinal, b.stamped = name, ordinal, true
}

func isNil[T Enum](v T) bool {
	rv := reflect.ValueOf(v)
	if !rv.IsValid() {
		return true
	}
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface:
		return rv.IsNil()
	}
	return false
}
