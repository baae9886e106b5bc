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

package caller

import (
	"fmt"
	"runtime"
	"strings"
)

// Context classifies where a call was made from.
type Context int

const (
	// Function is ordinary code: a function, a method or a closure in one.
	Function Context = iota
	// PackageInit is a package variable initializer.
	PackageInit
	// InitFunc is the body of a func init().
	InitFunc
)

// String returns a short, stable identifier for the context.
func (c Context) String() string {
	switch c {
	case Function:
		return "function"
	case PackageInit:
		return "package-init"
	case InitFunc:
		return "init-func"
	default:
		return fmt.Sprintf("unknown(%d)", int(c))
	}
}

// Frame is a resolved call site.
type Frame struct {
	// Function is the fully-qualified function name as reported by the runtime.
	Function string
	// Package is the import path of the package that declares Function.
	Package string
	// File and Line locate the call.
	File string
	Line int
	// Context is the declaration context of the call.
	Context Context
}

// maxDepth bounds the number of frames Capture walks.
const maxDepth = 64

// Capture returns the innermost frame of the calling goroutine whose package
// is not listed in skip. The frames of Capture itself are never returned.
// It reports false if every inspected frame was skipped.
func Capture(skip ...string) (Frame, bool) {
	var pcs [maxDepth]uintptr
	n := runtime.Callers(2, pcs[:])
	frames := runtime.CallersFrames(pcs[:n])
	for {
		f, more := frames.Next()
		if f.Function != "" {
			pkg := PackageOf(f.Function)
			if !contains(skip, pkg) {
				return Frame{
					Function: f.Function,
					Package:  pkg,
					File:     f.File,
					Line:     f.Line,
					Context:  ContextOf(f.Function),
				}, true
			}
		}
		if !more {
			return Frame{}, false
		}
	}
}

// InPackageInit reports whether the calling goroutine is running package
// initialization. The whole stack is walked, in batches of maxDepth frames.
// Goroutines started from an initializer are not detected.
func InPackageInit() bool {
	var pcs [maxDepth]uintptr
	for skip := 2; ; skip += maxDepth {
		n := runtime.Callers(skip, pcs[:])
		frames := runtime.CallersFrames(pcs[:n])
		for {
			f, more := frames.Next()
			if strings.HasPrefix(f.Function, "runtime.doInit") {
				return true
			}
			if !more {
				break
			}
		}
		if n < maxDepth {
			return false
		}
	}
}

// PackageOf returns the import path of the package that declares the
// fully-qualified function fn.
func PackageOf(fn string) string {
	pkg, _ := split(fn)
	return strings.ReplaceAll(pkg, "%2e", ".")
}

// ContextOf classifies the fully-qualified function fn.
func ContextOf(fn string) Context {
	_, rest := split(fn)
	switch {
	case rest == "init", strings.HasPrefix(rest, "init.func"), strings.HasPrefix(rest, "glob."):
		return PackageInit
	case strings.HasPrefix(rest, "init.") && len(rest) > 5 && isDigit(rest[5]):
		return InitFunc
	default:
		return Function
	}
}

// split separates fn into its (still escaped) package path and the
// remainder after the package qualifier dot.
func split(fn string) (pkg, rest string) {
	// Type arguments may contain slashes and dots; the path never contains '['.
	head := fn
	if i := strings.IndexByte(head, '['); i >= 0 {
		head = head[:i]
	}
	start := strings.LastIndexByte(head, '/') + 1
	dot := strings.IndexByte(head[start:], '.')
	if dot < 0 {
		return fn, ""
	}
	return fn[:start+dot], fn[start+dot+1:]
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
