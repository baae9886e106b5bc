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

package registry

import (
	"fmt"
	"reflect"
	"sync"
	"sync/atomic"

	"dirpx.dev/enum/apis"
	"dirpx.dev/enum/utils/caller"
	"dirpx.dev/enum/validator"
)

// Builder produces the next constant instance of a type.
type Builder func() (apis.Constant, error)

// Commit stamps name and ordinal onto a freshly built constant.
type Commit func(c apis.Constant, name string, ordinal int)

// snapshot is an immutable view of a table's constants.
type snapshot struct {
	values []apis.Constant
	byName map[string]apis.Constant
}

var emptySnapshot = &snapshot{byName: map[string]apis.Constant{}}

// Table is the per-type state of one enum type.
type Table struct {
	reg *Registry
	typ reflect.Type
	pkg string

	// mu serializes Create and Seal; next and cause are guarded by it.
	mu    sync.Mutex
	next  int
	cause error

	state atomic.Int32
	snap  atomic.Pointer[snapshot]

	// handles caches typed views keyed by their static type.
	handles sync.Map
}

func newTable(r *Registry, t reflect.Type) *Table {
	tb := &Table{reg: r, typ: t, pkg: t.PkgPath()}
	tb.snap.Store(emptySnapshot)
	return tb
}

// Type returns the normalized enum type.
func (tb *Table) Type() reflect.Type { return tb.typ }

// Package returns the import path of the package declaring the type.
func (tb *Table) Package() string { return tb.pkg }

// State returns the current lifecycle state.
func (tb *Table) State() apis.State { return apis.State(tb.state.Load()) }

// Err returns a *TypeFailedError if the type failed to initialize.
func (tb *Table) Err() error {
	if tb.State() != apis.Failed {
		return nil
	}
	return tb.failure()
}

// Len returns the number of constants created so far.
func (tb *Table) Len() int { return len(tb.snap.Load().values) }

// Attach stores v as the handle for key unless one is present, and
// returns the stored handle.
func (tb *Table) Attach(key, v any) any {
	actual, _ := tb.handles.LoadOrStore(key, v)
	return actual
}

// Create validates site, builds the constant and appends it with the
// next ordinal. Any error other than ErrSealed leaves the table Failed.
func (tb *Table) Create(site validator.Site, build Builder, commit Commit) (apis.Constant, error) {
	tb.mu.Lock()
	defer tb.mu.Unlock()

	switch tb.State() {
	case apis.Failed:
		return nil, tb.failure()
	case apis.Ready:
		return nil, fmt.Errorf("%w: %v: cannot create %q", ErrSealed, tb.typ, site.Name)
	}

	if err := validator.Validate(site); err != nil {
		return nil, tb.fail(site.Name, err)
	}
	if err := validator.CheckOwner(site.Type, tb.pkg, site.Package); err != nil {
		return nil, tb.fail(site.Name, err)
	}

	c, err := build()
	if err != nil {
		return nil, tb.fail(site.Name, err)
	}

	old := tb.snap.Load()
	if _, dup := old.byName[site.Name]; dup {
		return nil, tb.fail(site.Name, &DuplicateNameError{Type: tb.typ, Name: site.Name})
	}

	ordinal := tb.next
	tb.next++
	commit(c, site.Name, ordinal)

	values := make([]apis.Constant, len(old.values), len(old.values)+1)
	copy(values, old.values)
	values = append(values, c)
	byName := make(map[string]apis.Constant, len(values))
	for k, v := range old.byName {
		byName[k] = v
	}
	byName[site.Name] = c
	tb.snap.Store(&snapshot{values: values, byName: byName})
	tb.state.CompareAndSwap(int32(apis.Uninitialized), int32(apis.Initializing))

	tb.reg.log().Debug("enum constant created",
		"type", tb.typ.String(), "name", site.Name, "ordinal", ordinal)
	return c, nil
}

// fail records cause and moves the table to Failed. Callers hold mu.
func (tb *Table) fail(name string, cause error) error {
	tb.cause = cause
	tb.state.Store(int32(apis.Failed))
	tb.reg.log().Error("enum type failed",
		"type", tb.typ.String(), "name", name, "error", cause)
	return cause
}

func (tb *Table) failure() error {
	return &TypeFailedError{Type: tb.typ, Cause: tb.cause}
}

// Seal moves the table to Ready. It reports whether the state changed.
// It must not be called from a constructor of the same type.
func (tb *Table) Seal() bool {
	tb.mu.Lock()
	defer tb.mu.Unlock()
	return tb.sealLocked()
}

func (tb *Table) sealLocked() bool {
	switch tb.State() {
	case apis.Ready, apis.Failed:
		return false
	}
	tb.state.Store(int32(apis.Ready))
	tb.reg.log().Info("enum type sealed", "type", tb.typ.String(), "constants", tb.Len())
	return true
}

// observe is called by every query. In strict mode the first query made
// after package initialization seals the table. A query that runs while a
// constant is being created sees the prefix and leaves sealing to a later
// query, so constructors may query their own type.
func (tb *Table) observe() error {
	switch tb.State() {
	case apis.Ready:
		return nil
	case apis.Failed:
		return tb.failure()
	}
	if tb.reg.Config().Strict && !caller.InPackageInit() && tb.mu.TryLock() {
		tb.sealLocked()
		tb.mu.Unlock()
		if tb.State() == apis.Failed {
			return tb.failure()
		}
	}
	return nil
}

// Values returns the constants in declaration order. The slice is shared
// and must not be modified.
func (tb *Table) Values() ([]apis.Constant, error) {
	if err := tb.observe(); err != nil {
		return nil, err
	}
	return tb.snap.Load().values, nil
}

// Get returns the constant with the given name.
func (tb *Table) Get(name string) (apis.Constant, error) {
	if err := tb.observe(); err != nil {
		return nil, err
	}
	if c, ok := tb.snap.Load().byName[name]; ok {
		return c, nil
	}
	return nil, &UnknownConstantNameError{Type: tb.typ, Name: name}
}

// TryGet is like Get but reports absence as false.
func (tb *Table) TryGet(name string) (apis.Constant, bool) {
	if tb.observe() != nil {
		return nil, false
	}
	c, ok := tb.snap.Load().byName[name]
	return c, ok
}

// ByOrdinal returns the constant with ordinal i.
func (tb *Table) ByOrdinal(i int) (apis.Constant, bool) {
	if tb.observe() != nil {
		return nil, false
	}
	values := tb.snap.Load().values
	if i < 0 || i >= len(values) {
		return nil, false
	}
	return values[i], true
}
