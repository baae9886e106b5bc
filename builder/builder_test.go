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

package builder_test

import (
	"reflect"
	"runtime"
	"strings"
	"sync"
	"testing"

	"dirpx.dev/enum/apis"
	"dirpx.dev/enum/builder"
	"dirpx.dev/enum/config"
	"dirpx.dev/enum/registry"
)

// userType is a plain named type with no special behavior.
// It is used to test fallback via reflection.
type userType struct{}

// hotType implements apis.Namer and is used to verify that the
// Namer-based strategy takes priority over other strategies.
type hotType struct{}

func (*hotType) EnumTypeName() string { return "hot-name" }

// TestBuildResolver_Order_NamerThenRegistryThenReflect verifies resolution priority:
// 1. If the enum type implements apis.Namer, use EnumTypeName().
// 2. Otherwise, if the type is explicitly registered in the Registry, use that.
// 3. Otherwise, fall back to the reflect-based strategy ("pkg.Type").
func TestBuildResolver_Order_NamerThenRegistryThenReflect(t *testing.T) {
	cfg := config.DefaultConfig()
	reg := registry.New(cfg)

	// Register a type so the registry strategy can pick it up.
	type fromRegistry struct{}
	ttReg := reflect.TypeOf(fromRegistry{})
	if err := reg.Register(ttReg, "reg-name"); err != nil {
		t.Fatalf("Register(fromRegistry) failed: %v", err)
	}
	// A registered name does not override the type's own name.
	if err := reg.Register(reflect.TypeOf(hotType{}), "ignored"); err != nil {
		t.Fatalf("Register(hotType) failed: %v", err)
	}

	res := builder.New().BuildResolver(cfg, reg, nil)
	if res == nil {
		t.Fatal("BuildResolver returned nil")
	}

	// (1) Namer should win, by value and by type.
	if got := res.TypeNameOf(&hotType{}, cfg); got != "hot-name" {
		t.Fatalf("Namer priority broken: got %q want %q", got, "hot-name")
	}
	if got := res.TypeName(reflect.TypeOf(&hotType{}), cfg); got != "hot-name" {
		t.Fatalf("Namer priority broken by type: got %q want %q", got, "hot-name")
	}

	// (2) Registry should be next.
	if got := res.TypeName(ttReg, cfg); got != "reg-name" {
		t.Fatalf("Registry strategy broken: got %q want %q", got, "reg-name")
	}

	// (3) Reflect strategy is the fallback.
	got := res.TypeName(reflect.TypeOf(userType{}), cfg)
	if got != "builder_test.userType" {
		t.Fatalf("Reflect strategy: got %q want %q", got, "builder_test.userType")
	}
}

// TestBuildResolver_NilRegistry asserts that a resolver built without a
// registry still names types.
func TestBuildResolver_NilRegistry(t *testing.T) {
	cfg := config.DefaultConfig()
	res := builder.New().BuildResolver(cfg, nil, nil)

	got := res.TypeName(reflect.TypeOf(&userType{}), cfg)
	if strings.TrimSpace(got) == "" || !strings.Contains(got, ".") {
		t.Fatalf("expected a package-qualified name, got %q", got)
	}
}

// TestBuildResolver_Concurrency_Smoke hammers the resolver in parallel to ensure
// it is safe to call TypeNameOf/TypeName concurrently after being built.
func TestBuildResolver_Concurrency_Smoke(t *testing.T) {
	cfg := config.DefaultConfig()
	reg := registry.New(cfg)
	_ = reg.Register(reflect.TypeOf(userType{}), "userType")

	res := builder.New().BuildResolver(cfg, reg, nil)

	types := []reflect.Type{
		reflect.TypeOf(userType{}),
		reflect.TypeOf(hotType{}),
		reflect.TypeOf(&userType{}),
		reflect.TypeOf([]userType{}),
	}

	workers := runtime.GOMAXPROCS(0) * 4
	var wg sync.WaitGroup
	wg.Add(workers)

	for w := 0; w < workers; w++ {
		go func(id int) {
			defer wg.Done()
			for i := 0; i < 2000; i++ {
				tt := types[(i+id)%len(types)]
				_ = res.TypeName(tt, cfg)
				_ = res.TypeNameOf(&hotType{}, cfg)
			}
		}(w)
	}

	wg.Wait()
}

// Compile-time check: builder.New() must satisfy apis.Builder.
var _ apis.Builder = builder.New()
