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

// Package registry holds the process-wide table of enum types.
//
// Each enum type owns a Table: an ordinal counter, the ordered list of its
// constants and a name index. Tables are created lazily, on the first
// constant creation or the first query, and are never removed.
//
// Writers (constant creation) are serialized per table by a mutex. Readers
// load an immutable snapshot through an atomic pointer and never lock, so
// Values returns the same backing slice for as long as the table does not
// change.
package registry

import (
	"log/slog"
	"reflect"
	"sort"
	"sync"
	"sync/atomic"

	"dirpx.dev/enum/apis"
	"dirpx.dev/enum/config"
	uref "dirpx.dev/enum/utils/reflect"
)

// New constructs a Registry configured by cfg.
func New(cfg apis.Config) *Registry {
	r := &Registry{}
	r.Configure(cfg)
	return r
}

// Registry is the apis.Registry implementation backed by sync.Map.
type Registry struct {
	// cfg is the current configuration.
	cfg atomic.Pointer[apis.Config]
	// mu guards table creation, name registration and count.
	mu sync.Mutex
	// tables maps a normalized reflect.Type to its *Table.
	tables sync.Map
	// names maps a normalized reflect.Type to its registered name.
	names sync.Map
	// count tracks the number of tables.
	count int
}

// Ensure Registry implements apis.Registry.
var _ apis.Registry = (*Registry)(nil)

// Config returns the current configuration.
func (r *Registry) Config() apis.Config {
	return *r.cfg.Load()
}

// Configure replaces the configuration. Existing tables observe it on
// their next operation.
func (r *Registry) Configure(cfg apis.Config) {
	if cfg.MaxUnwrap <= 0 {
		cfg.MaxUnwrap = config.DefaultMaxUnwrap
	}
	r.cfg.Store(&cfg)
}

func (r *Registry) log() *slog.Logger {
	return r.Config().Log()
}

// key normalizes t to the type tables are keyed by.
func (r *Registry) key(t reflect.Type) (reflect.Type, error) {
	if t == nil {
		return nil, ErrNilType
	}
	return uref.Normalize(t, r.Config())
}

// Table returns the table of t's enum type, creating it on first access.
func (r *Registry) Table(t reflect.Type) (*Table, error) {
	k, err := r.key(t)
	if err != nil {
		return nil, err
	}
	if tb, ok := r.tables.Load(k); ok {
		return tb.(*Table), nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	return r.tableLocked(k), nil
}

// tableLocked returns or creates the table for k. Callers hold r.mu.
func (r *Registry) tableLocked(k reflect.Type) *Table {
	// Re-check under lock in case another goroutine stored meanwhile.
	if tb, ok := r.tables.Load(k); ok {
		return tb.(*Table)
	}
	tb := newTable(r, k)
	r.tables.Store(k, tb)
	r.count++
	r.log().Debug("enum type tracked", "type", k.String(), "package", tb.pkg)
	return tb
}

// Register associates the enum type of t with the given name and starts
// tracking the type. It is idempotent for the same (type,name) pair.
func (r *Registry) Register(t reflect.Type, name string) error {
	if t == nil {
		return ErrNilType
	}
	if name == "" {
		return ErrEmptyName
	}
	k, err := r.key(t)
	if err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if old, ok := r.names.Load(k); ok {
		if old.(string) == name {
			return nil
		}
		return ErrConflictingRegistration
	}
	r.names.Store(k, name)
	r.tableLocked(k)
	return nil
}

// Lookup returns the registered name of t's enum type if present.
func (r *Registry) Lookup(t reflect.Type) (string, bool) {
	k, err := r.key(t)
	if err != nil {
		return "", false
	}
	if v, ok := r.names.Load(k); ok {
		return v.(string), true
	}
	return "", false
}

// lookup returns the table of t's enum type without tracking the type.
// tb is nil when no table exists.
func (r *Registry) lookup(t reflect.Type) (tb *Table, k reflect.Type, err error) {
	k, err = r.key(t)
	if err != nil {
		return nil, nil, err
	}
	if v, ok := r.tables.Load(k); ok {
		return v.(*Table), k, nil
	}
	return nil, k, nil
}

// Values returns the constants of t's enum type in declaration order.
// An untracked type has no constants.
func (r *Registry) Values(t reflect.Type) ([]apis.Constant, error) {
	tb, _, err := r.lookup(t)
	if err != nil || tb == nil {
		return nil, err
	}
	return tb.Values()
}

// Get returns the constant of t's enum type with the given name.
func (r *Registry) Get(t reflect.Type, name string) (apis.Constant, error) {
	tb, k, err := r.lookup(t)
	if err != nil {
		return nil, err
	}
	if tb == nil {
		return nil, &UnknownConstantNameError{Type: k, Name: name}
	}
	return tb.Get(name)
}

// TryGet is like Get but reports absence (or an unusable type) as false.
func (r *Registry) TryGet(t reflect.Type, name string) (apis.Constant, bool) {
	tb, _, err := r.lookup(t)
	if err != nil || tb == nil {
		return nil, false
	}
	return tb.TryGet(name)
}

// Entries returns a snapshot of all known enum types ordered by type string.
func (r *Registry) Entries() []apis.Entry {
	entries := make([]apis.Entry, 0, r.Count())
	r.tables.Range(func(key, value any) bool {
		tb := value.(*Table)
		e := apis.Entry{Type: tb.typ, State: tb.State(), Len: tb.Len()}
		if n, ok := r.names.Load(key); ok {
			e.Name = n.(string)
		}
		entries = append(entries, e)
		return true
	})
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Type.String() < entries[j].Type.String()
	})
	return entries
}

// Count returns the number of known enum types.
func (r *Registry) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.count
}
