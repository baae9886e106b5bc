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

package config_test

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"dirpx.dev/enum/apis"
	"dirpx.dev/enum/config"
)

func TestDefaultConfig(t *testing.T) {
	want := apis.Config{
		Strict:        config.DefaultStrict,
		MaxUnwrap:     config.DefaultMaxUnwrap,
		MapPreferElem: config.DefaultMapPreferElem,
	}
	assert.Equal(t, want, config.DefaultConfig())
	assert.Equal(t, want, config.NewConfig())
	assert.Same(t, slog.Default(), config.DefaultConfig().Log())
}

func TestOptions(t *testing.T) {
	l := slog.New(slog.DiscardHandler)

	cases := []struct {
		name  string
		got   apis.Config
		check func(t *testing.T, c apis.Config)
	}{
		{"strict off", config.NewConfig(config.WithStrict(false)), func(t *testing.T, c apis.Config) {
			assert.False(t, c.Strict)
		}},
		{"relaxed", config.Relaxed(), func(t *testing.T, c apis.Config) {
			assert.False(t, c.Strict)
			assert.Equal(t, config.DefaultMaxUnwrap, c.MaxUnwrap)
		}},
		{"relaxed keeps options", config.Relaxed(config.WithMaxUnwrap(2)), func(t *testing.T, c apis.Config) {
			assert.False(t, c.Strict)
			assert.Equal(t, 2, c.MaxUnwrap)
		}},
		{"relaxed can be overridden", config.Relaxed(config.WithStrict(true)), func(t *testing.T, c apis.Config) {
			assert.True(t, c.Strict)
		}},
		{"map prefers key", config.NewConfig(config.WithMapPreferElem(false)), func(t *testing.T, c apis.Config) {
			assert.False(t, c.MapPreferElem)
		}},
		{"max unwrap", config.NewConfig(config.WithMaxUnwrap(3)), func(t *testing.T, c apis.Config) {
			assert.Equal(t, 3, c.MaxUnwrap)
		}},
		{"max unwrap zero kept", config.NewConfig(config.WithMaxUnwrap(0)), func(t *testing.T, c apis.Config) {
			assert.Zero(t, c.MaxUnwrap)
		}},
		{"max unwrap negative", config.NewConfig(config.WithMaxUnwrap(-1)), func(t *testing.T, c apis.Config) {
			assert.Equal(t, config.DefaultMaxUnwrap, c.MaxUnwrap)
		}},
		{"logger", config.NewConfig(config.WithLogger(l)), func(t *testing.T, c apis.Config) {
			assert.Same(t, l, c.Logger)
			assert.Same(t, l, c.Log())
		}},
		{"last option wins", config.NewConfig(
			config.WithStrict(false), config.WithStrict(true),
			config.WithMaxUnwrap(2), config.WithMaxUnwrap(5),
		), func(t *testing.T, c apis.Config) {
			assert.True(t, c.Strict)
			assert.Equal(t, 5, c.MaxUnwrap)
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) { tc.check(t, tc.got) })
	}
}
