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

// Package dispatcher selects and invokes the constructor of an enum type
// that matches a list of runtime arguments.
//
// Go has no constructor overloading, so an enum type registers its
// constructors as plain funcs:
//
//	func newPlanet(mass, radius float64) *Planet
//	func newMoon(parent *Planet, radius float64) (*Planet, error)
//
// Construct then picks the single func whose parameters match the
// arguments positionally. Matching has two tiers: identical types first,
// then assignable types (a nil argument matches any nillable parameter and
// always counts as assignable). The first non-empty tier must hold exactly
// one candidate.
package dispatcher

import (
	"fmt"
	"reflect"
	"sync"

	uref "dirpx.dev/enum/utils/reflect"
)

var errorType = reflect.TypeOf((*error)(nil)).Elem()

// Set is the constructor set of one target type. It is safe for concurrent use.
type Set struct {
	target reflect.Type
	mu     sync.RWMutex
	ctors  []ctor
}

// ctor is a validated constructor func.
type ctor struct {
	fn      reflect.Value
	in      []reflect.Type
	withErr bool
}

type match int

const (
	noMatch match = iota
	looseMatch
	exactMatch
)

// New creates a Set for target with the given constructors.
func New(target reflect.Type, fns ...any) (*Set, error) {
	if target == nil {
		return nil, ErrNilTarget
	}
	s := &Set{target: target}
	if err := s.Add(fns...); err != nil {
		return nil, err
	}
	return s, nil
}

// Target returns the type the set constructs.
func (s *Set) Target() reflect.Type { return s.target }

// Len returns the number of registered constructors.
func (s *Set) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.ctors)
}

// Add registers more constructors. Either all of fns are added or none.
// A func already in the set is ignored, so repeated declarations of a type
// with the same options leave the set unchanged.
func (s *Set) Add(fns ...any) error {
	parsed := make([]ctor, 0, len(fns))
	for _, fn := range fns {
		c, err := s.parse(fn)
		if err != nil {
			return err
		}
		parsed = append(parsed, c)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range parsed {
		if !s.hasLocked(c) {
			s.ctors = append(s.ctors, c)
		}
	}
	return nil
}

// hasLocked reports whether the code and signature of c are already
// registered. Closures of one literal share their code and count as one.
func (s *Set) hasLocked(c ctor) bool {
	for _, have := range s.ctors {
		if have.fn.Pointer() == c.fn.Pointer() && have.fn.Type() == c.fn.Type() {
			return true
		}
	}
	return false
}

// parse validates fn as a constructor of s.target.
func (s *Set) parse(fn any) (ctor, error) {
	v := reflect.ValueOf(fn)
	if !v.IsValid() || v.Kind() != reflect.Func || v.IsNil() {
		return ctor{}, fmt.Errorf("%w: %T is not a func", ErrInvalidConstructor, fn)
	}
	ft := v.Type()
	if ft.IsVariadic() {
		return ctor{}, fmt.Errorf("%w: %v is variadic", ErrInvalidConstructor, ft)
	}
	switch {
	case ft.NumOut() == 1:
	case ft.NumOut() == 2 && ft.Out(1) == errorType:
	default:
		return ctor{}, fmt.Errorf("%w: %v must return %v or (%v, error)", ErrInvalidConstructor, ft, s.target, s.target)
	}
	if !ft.Out(0).AssignableTo(s.target) {
		return ctor{}, fmt.Errorf("%w: %v returns %v, not assignable to %v", ErrInvalidConstructor, ft, ft.Out(0), s.target)
	}
	in := make([]reflect.Type, ft.NumIn())
	for i := range in {
		in[i] = ft.In(i)
	}
	return ctor{fn: v, in: in, withErr: ft.NumOut() == 2}, nil
}

// ArgTypes returns the runtime type of each argument; nil arguments yield nil.
func ArgTypes(args []any) []reflect.Type {
	types := make([]reflect.Type, len(args))
	for i, a := range args {
		types[i] = reflect.TypeOf(a)
	}
	return types
}

// accepts reports how well c matches the argument types.
func (c *ctor) accepts(types []reflect.Type) match {
	if len(types) != len(c.in) {
		return noMatch
	}
	m := exactMatch
	for i, at := range types {
		pt := c.in[i]
		switch {
		case at == nil:
			if !uref.Nillable(pt) {
				return noMatch
			}
			m = looseMatch
		case at == pt:
		case at.AssignableTo(pt):
			m = looseMatch
		default:
			return noMatch
		}
	}
	return m
}

// resolve selects the constructor for types. It returns nil without error
// when the implicit default constructor applies.
func (s *Set) resolve(types []reflect.Type) (*ctor, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var exact, loose []*ctor
	for i := range s.ctors {
		c := &s.ctors[i]
		switch c.accepts(types) {
		case exactMatch:
			exact = append(exact, c)
		case looseMatch:
			loose = append(loose, c)
		}
	}
	for _, tier := range [][]*ctor{exact, loose} {
		switch len(tier) {
		case 0:
			continue
		case 1:
			return tier[0], nil
		default:
			cands := make([]reflect.Type, len(tier))
			for i, c := range tier {
				cands[i] = c.fn.Type()
			}
			return nil, &AmbiguousConstructorError{Type: s.target, Args: types, Candidates: cands}
		}
	}
	if len(s.ctors) == 0 && len(types) == 0 &&
		s.target.Kind() == reflect.Ptr && s.target.Elem().Kind() == reflect.Struct {
		return nil, nil
	}
	return nil, &NoMatchingConstructorError{Type: s.target, Args: types}
}

// Construct invokes the constructor matching args and returns the new
// instance as a value of the target type.
//
// When no constructor is registered, the target is a pointer to a struct
// and args is empty, a zero value is allocated instead.
func (s *Set) Construct(args ...any) (reflect.Value, error) {
	types := ArgTypes(args)
	c, err := s.resolve(types)
	if err != nil {
		return reflect.Value{}, err
	}
	if c == nil {
		return reflect.New(s.target.Elem()), nil
	}

	in := make([]reflect.Value, len(args))
	for i, a := range args {
		if a == nil {
			in[i] = reflect.Zero(c.in[i])
			continue
		}
		in[i] = reflect.ValueOf(a)
	}
	out := c.fn.Call(in)
	if c.withErr && !out[1].IsNil() {
		return reflect.Value{}, fmt.Errorf("enum(dispatcher): constructing %v: %w", s.target, out[1].Interface().(error))
	}

	v := out[0]
	if uref.Nillable(v.Type()) && v.IsNil() {
		return reflect.Value{}, fmt.Errorf("%w: %v", ErrNilInstance, c.fn.Type())
	}
	if v.Type() != s.target {
		r := reflect.New(s.target).Elem()
		r.Set(v)
		v = r
	}
	return v, nil
}
