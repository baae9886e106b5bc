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

package config

import (
	"log/slog"

	"dirpx.dev/enum/apis"
)

// Defaults applied by DefaultConfig.
const (
	// DefaultStrict enforces declaration sites: constants come from package
	// variable initializers, and types seal on first use after init.
	DefaultStrict = true
	// DefaultMaxUnwrap bounds how many container layers are peeled off a
	// reflect.Type before giving up on finding the enum type.
	DefaultMaxUnwrap = 8
	// DefaultMapPreferElem selects V over K when normalizing map[K]V.
	DefaultMapPreferElem = true
)

// Option mutates an apis.Config under construction.
type Option func(*apis.Config)

// DefaultConfig returns the configuration of the global registry.
func DefaultConfig() apis.Config {
	return apis.Config{
		Strict:        DefaultStrict,
		MaxUnwrap:     DefaultMaxUnwrap,
		MapPreferElem: DefaultMapPreferElem,
	}
}

// NewConfig applies opts on top of DefaultConfig.
func NewConfig(opts ...Option) apis.Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.MaxUnwrap < 0 {
		cfg.MaxUnwrap = DefaultMaxUnwrap
	}
	return cfg
}

// Relaxed is NewConfig with declaration-site checks off. Constants may then
// be created from any function of the declaring package, which is what
// tests and code generators need. Ownership is still enforced.
func Relaxed(opts ...Option) apis.Config {
	return NewConfig(append([]Option{WithStrict(false)}, opts...)...)
}

// WithStrict toggles declaration-site checks and auto-sealing.
func WithStrict(strict bool) Option {
	return func(c *apis.Config) { c.Strict = strict }
}

// WithMaxUnwrap sets the normalization depth. Negative values restore
// the default; zero means the default at normalization time.
func WithMaxUnwrap(depth int) Option {
	return func(c *apis.Config) {
		if depth < 0 {
			depth = DefaultMaxUnwrap
		}
		c.MaxUnwrap = depth
	}
}

// WithMapPreferElem chooses which side of a map type is tried first.
func WithMapPreferElem(prefer bool) Option {
	return func(c *apis.Config) { c.MapPreferElem = prefer }
}

// WithLogger routes registration events to l.
func WithLogger(l *slog.Logger) Option {
	return func(c *apis.Config) { c.Logger = l }
}
