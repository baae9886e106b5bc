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

import "fmt"

// Constant is the read-only view of a registered enum constant.
type Constant interface {
	// Name returns the declaration name of the constant.
	Name() string
	// Ordinal returns the zero-based declaration position within its enum type.
	Ordinal() int
}

// State describes where an enum type is in its one-time initialization.
//
// The normal path is Uninitialized -> Initializing -> Ready. Failed is
// terminal: a type whose declaration was rejected never becomes usable.
type State int32

const (
	// Uninitialized means the type is known to the registry but holds no constants.
	Uninitialized State = iota
	// Initializing means constants are being created in declaration order.
	// Queries in this state observe the prefix created so far.
	Initializing
	// Ready means the constant set is complete and immutable.
	Ready
	// Failed means a constant declaration was rejected. The failure is sticky.
	Failed
)

// String returns a short, stable identifier suitable for logs and metric labels.
func (s State) String() string {
	switch s {
	case Uninitialized:
		return "uninitialized"
	case Initializing:
		return "initializing"
	case Ready:
		return "ready"
	case Failed:
		return "failed"
	default:
		return fmt.Sprintf("unknown(%d)", int32(s))
	}
}
