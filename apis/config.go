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

package apis

import "log/slog"

// Config carries read-only knobs that influence registration and naming.
// It is passed by value and should be treated as immutable by implementations.
type Config struct {
	// Strict enables declaration-context checks at constant creation time.
	// When true, constants may only be created from package variable
	// initializers of the package that declares the enum type, and the
	// first query issued after package initialization seals the type.
	Strict bool

	// MaxUnwrap limits container unwrapping depth (ptr/slice/array/chan/map)
	// when a reflect.Type is normalized to its enum type.
	MaxUnwrap int

	// MapPreferElem controls which side of map[K]V is considered "primary"
	// when searching for a nearest named inner type. If true, prefer V; otherwise K.
	MapPreferElem bool

	// Logger receives registration events. Nil means slog.Default().
	Logger *slog.Logger
}

// Log returns the configured logger or slog.Default().
func (c Config) Log() *slog.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return slog.Default()
}
