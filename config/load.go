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
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"dirpx.dev/enum/apis"
)

// ErrUnknownLogFormat is returned when log_format is neither "text" nor "json".
var ErrUnknownLogFormat = errors.New("enum(config): unknown log format")

// File is the on-disk shape of a configuration document.
// Absent keys keep their defaults.
type File struct {
	Strict        *bool  `yaml:"strict"`
	MaxUnwrap     *int   `yaml:"max_unwrap"`
	MapPreferElem *bool  `yaml:"map_prefer_elem"`
	LogLevel      string `yaml:"log_level"`
	LogFormat     string `yaml:"log_format"`
}

// Options converts the document into functional options.
// Logs are written to w; a nil w means os.Stderr.
func (f File) Options(w io.Writer) ([]Option, error) {
	var opts []Option
	if f.Strict != nil {
		opts = append(opts, WithStrict(*f.Strict))
	}
	if f.MaxUnwrap != nil {
		opts = append(opts, WithMaxUnwrap(*f.MaxUnwrap))
	}
	if f.MapPreferElem != nil {
		opts = append(opts, WithMapPreferElem(*f.MapPreferElem))
	}
	if f.LogLevel == "" && f.LogFormat == "" {
		return opts, nil
	}

	var level slog.Level
	if f.LogLevel != "" {
		if err := level.UnmarshalText([]byte(f.LogLevel)); err != nil {
			return nil, fmt.Errorf("enum(config): log_level: %w", err)
		}
	}
	if w == nil {
		w = os.Stderr
	}
	hopts := &slog.HandlerOptions{Level: level}
	var h slog.Handler
	switch strings.ToLower(f.LogFormat) {
	case "", "text":
		h = slog.NewTextHandler(w, hopts)
	case "json":
		h = slog.NewJSONHandler(w, hopts)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownLogFormat, f.LogFormat)
	}
	return append(opts, WithLogger(slog.New(h))), nil
}

// Load decodes a YAML document from r and applies it on top of DefaultConfig.
// Unknown keys are rejected. An empty document yields the defaults.
func Load(r io.Reader) (apis.Config, error) {
	var f File
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return apis.Config{}, fmt.Errorf("enum(config): decode: %w", err)
	}
	opts, err := f.Options(nil)
	if err != nil {
		return apis.Config{}, err
	}
	return NewConfig(opts...), nil
}

// LoadFile reads and decodes the YAML file at path.
func LoadFile(path string) (apis.Config, error) {
	fh, err := os.Open(path)
	if err != nil {
		return apis.Config{}, fmt.Errorf("enum(config): %w", err)
	}
	defer fh.Close()
	return Load(fh)
}
