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

// Package enum provides named, ordered, immutable enumeration constants
// whose values are full objects: they carry fields, behavior and
// per-constant method overrides.
//
// An enum type is declared once, in the package that owns it:
//
//	type Planet struct {
//		enum.Constant
//		mass   float64 // in kilograms
//		radius float64 // in meters
//	}
//
//	func newPlanet(mass, radius float64) *Planet {
//		return &Planet{mass: mass, radius: radius}
//	}
//
//	var Planets = enum.For[*Planet](enum.WithConstructors(newPlanet))
//
//	var (
//		MERCURY = Planets.NewConstant("MERCURY").MustCreate(3.303e+23, 2.4397e6)
//		VENUS   = Planets.NewConstant("VENUS").MustCreate(4.869e+24, 6.0518e6)
//	)
//
// Each constant receives the next ordinal of its type, starting at zero,
// in the order the package variables are initialized. Values returns the
// constants in that order and Get finds one by name.
//
// # Declaration sites
//
// A constant must be held by an exported package variable of the package
// that declares its type, and that variable must never be reassigned.
// Two layers enforce this:
//
//   - The enumcheck analyzer (dirpx.dev/enum/analysis/enumcheck, runnable
//     with cmd/enumvet) checks every NewConstant call at vet time: the
//     name must match the enclosing variable, which must be exported,
//     declared at package scope and written only by its initializer.
//
//   - At run time the creator inspects its call site. Constants created
//     by another package fail with a TypeMismatchError. With strict mode
//     (the default) constants created inside a function fail with
//     InstanceMember, and inside func init() with Mutable.
//
// A rejected declaration makes its enum type unusable: every later
// operation on it returns a TypeFailedError wrapping the first cause.
// Must helpers panic instead, which aborts program start.
//
// # Lifecycle
//
// Package initialization is the only synchronization constants need: Go
// runs it exactly once, on one goroutine, before any dependent code. In
// strict mode the first query issued outside package initialization seals
// the type (State becomes Ready) and no further constant can be added.
// Queries made by initializers, including constructors of the type
// itself, observe only the constants created so far.
//
// # Global state
//
// The package keeps a process-wide snapshot holding the configuration,
// the registry, the naming resolver and the builder that produces it.
// Readers load the snapshot atomically and never lock. Writers (SetConfig,
// SetResolver, SetBuilder) build a new snapshot under a mutex and publish
// it with an atomic swap. The registry itself is never replaced, since
// the constants it holds are created exactly once.
//
// Type names are resolved by a chain of strategies: the type's own
// EnumTypeName() method, then a name recorded with RegisterTypeName or
// WithTypeName, then the reflected "pkg.Type".
//
// Isolated registries for tests or tools are created with registry.New
// and used through In.
package enum
