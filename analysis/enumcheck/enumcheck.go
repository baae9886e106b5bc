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

// Package enumcheck defines an Analyzer that checks the declaration sites
// of enum constants.
//
// Every call of (*enum.Type[T]).NewConstant(name) must appear in the
// initializer of an exported package-level variable whose identifier
// matches name, in the package that declares T, and that variable must
// never be assigned or have its address taken elsewhere. The name must be
// a string constant.
package enumcheck

import (
	"go/ast"
	"go/constant"
	"go/token"
	"go/types"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"
	"golang.org/x/tools/go/types/typeutil"

	"dirpx.dev/enum/validator"
)

const doc = `check declaration sites of enum constants

Reports NewConstant calls that are not held by an exported, package-level,
write-once variable of the package declaring the enum type, whose name does
not match the variable, or whose name is not a constant.`

// Analyzer is the enumcheck pass.
var Analyzer = &analysis.Analyzer{
	Name:     "enumcheck",
	Doc:      doc,
	URL:      "https://pkg.go.dev/dirpx.dev/enum/analysis/enumcheck",
	Requires: []*analysis.Analyzer{inspect.Analyzer},
	Run:      run,
}

// enumPath is the import path of the package declaring Type.
const enumPath = "dirpx.dev/enum"

func run(pass *analysis.Pass) (any, error) {
	insp := pass.ResultOf[inspect.Analyzer].(*inspector.Inspector)
	written := writtenVars(pass, insp)

	filter := []ast.Node{(*ast.CallExpr)(nil)}
	insp.WithStack(filter, func(n ast.Node, push bool, stack []ast.Node) bool {
		if !push {
			return true
		}
		call := n.(*ast.CallExpr)
		typ, ok := newConstantType(pass, call)
		if !ok {
			return true
		}
		check(pass, call, typ, stack, written)
		return true
	})
	return nil, nil
}

// newConstantType reports whether call invokes (*enum.Type[T]).NewConstant
// and returns T.
func newConstantType(pass *analysis.Pass, call *ast.CallExpr) (types.Type, bool) {
	fn, ok := typeutil.Callee(pass.TypesInfo, call).(*types.Func)
	if !ok || fn.Name() != "NewConstant" || fn.Pkg() == nil || fn.Pkg().Path() != enumPath {
		return nil, false
	}
	sel, ok := call.Fun.(*ast.SelectorExpr)
	if !ok {
		return nil, false
	}
	s, ok := pass.TypesInfo.Selections[sel]
	if !ok || s.Kind() != types.MethodVal {
		return nil, false
	}
	recv := s.Recv()
	if p, ok := recv.(*types.Pointer); ok {
		recv = p.Elem()
	}
	named, ok := recv.(*types.Named)
	if !ok || named.Obj().Name() != "Type" || named.TypeArgs().Len() != 1 {
		return nil, false
	}
	return named.TypeArgs().At(0), true
}

func check(pass *analysis.Pass, call *ast.CallExpr, typ types.Type, stack []ast.Node, written map[*types.Var]bool) {
	if len(call.Args) != 1 {
		return
	}
	tv, ok := pass.TypesInfo.Types[call.Args[0]]
	if !ok || tv.Value == nil || tv.Value.Kind() != constant.String {
		pass.Reportf(call.Args[0].Pos(), "enum constant name must be a string constant")
		return
	}
	name := constant.StringVal(tv.Value)
	typeName := types.TypeString(typ, types.RelativeTo(pass.Pkg))

	site := validator.Site{Type: typeName, Name: name, Package: pass.Pkg.Path()}
	if ident, obj, ctx := holder(pass, stack); ident != nil && validator.NameMatches(ident.Name, name) {
		site.Found = true
		site.Exported = ident.IsExported()
		switch ctx {
		case packageScope:
			site.Static = isPackageVar(pass, obj)
			site.WriteOnce = !written[obj]
		case initFunc:
			site.Static = isPackageVar(pass, obj)
		}
	}

	if err := validator.Validate(site); err != nil {
		pass.Reportf(call.Pos(), "%v", err)
		return
	}
	if err := validator.CheckOwner(typeName, owner(typ), pass.Pkg.Path()); err != nil {
		pass.Reportf(call.Pos(), "%v", err)
	}
}

type context int

const (
	packageScope context = iota
	initFunc
	function
)

// holder finds the identifier the call's result is bound to, its variable
// and the context of the binding statement.
func holder(pass *analysis.Pass, stack []ast.Node) (*ast.Ident, *types.Var, context) {
	ctx := packageScope
scope:
	for i := len(stack) - 1; i >= 0; i-- {
		switch n := stack[i].(type) {
		case *ast.FuncLit:
			ctx = function
			break scope
		case *ast.FuncDecl:
			ctx = function
			if n.Recv == nil && n.Name.Name == "init" {
				ctx = initFunc
			}
			break scope
		}
	}

	for i := len(stack) - 2; i >= 0; i-- {
		child := stack[i+1]
		switch n := stack[i].(type) {
		case *ast.ValueSpec:
			if id := pick(n.Names, n.Values, child); id != nil {
				v, _ := pass.TypesInfo.Defs[id].(*types.Var)
				if ctx == packageScope {
					return id, v, ctx
				}
				return id, v, function
			}
			return nil, nil, ctx
		case *ast.AssignStmt:
			lhs := pickExpr(n.Lhs, n.Rhs, child)
			id, v := target(pass, lhs)
			if ctx == initFunc && v != nil && isPackageVar(pass, v) {
				return id, v, initFunc
			}
			return id, v, function
		case ast.Stmt, ast.Decl:
			return nil, nil, ctx
		}
	}
	return nil, nil, ctx
}

// pick returns the name bound to the value expression child. With a
// single multi-valued expression the first name is used.
func pick(names []*ast.Ident, values []ast.Expr, child ast.Node) *ast.Ident {
	for i, v := range values {
		if v == child && i < len(names) {
			return names[i]
		}
	}
	return nil
}

func pickExpr(lhs, rhs []ast.Expr, child ast.Node) ast.Expr {
	for i, v := range rhs {
		if v == child && i < len(lhs) {
			return lhs[i]
		}
	}
	return nil
}

// target resolves an assignment destination to its identifier and variable.
// A field selector yields the field.
func target(pass *analysis.Pass, e ast.Expr) (*ast.Ident, *types.Var) {
	var id *ast.Ident
	switch x := e.(type) {
	case *ast.Ident:
		id = x
	case *ast.SelectorExpr:
		id = x.Sel
	default:
		return nil, nil
	}
	obj := pass.TypesInfo.ObjectOf(id)
	v, _ := obj.(*types.Var)
	return id, v
}

func isPackageVar(pass *analysis.Pass, v *types.Var) bool {
	return v != nil && !v.IsField() && v.Parent() == pass.Pkg.Scope()
}

// writtenVars collects package-level variables that are assigned by a
// statement, incremented or decremented, or have their address taken.
func writtenVars(pass *analysis.Pass, insp *inspector.Inspector) map[*types.Var]bool {
	written := make(map[*types.Var]bool)
	mark := func(e ast.Expr) {
		e = ast.Unparen(e)
		id, ok := e.(*ast.Ident)
		if !ok {
			return
		}
		if v, ok := pass.TypesInfo.Uses[id].(*types.Var); ok && isPackageVar(pass, v) {
			written[v] = true
		}
	}

	filter := []ast.Node{
		(*ast.AssignStmt)(nil),
		(*ast.IncDecStmt)(nil),
		(*ast.UnaryExpr)(nil),
		(*ast.RangeStmt)(nil),
	}
	insp.Preorder(filter, func(n ast.Node) {
		switch n := n.(type) {
		case *ast.AssignStmt:
			for _, lhs := range n.Lhs {
				mark(lhs)
			}
		case *ast.IncDecStmt:
			mark(n.X)
		case *ast.UnaryExpr:
			if n.Op == token.AND {
				mark(n.X)
			}
		case *ast.RangeStmt:
			if n.Tok == token.ASSIGN {
				if n.Key != nil {
					mark(n.Key)
				}
				if n.Value != nil {
					mark(n.Value)
				}
			}
		}
	})
	return written
}

// owner returns the import path of the package declaring the enum type.
func owner(t types.Type) string {
	if p, ok := t.(*types.Pointer); ok {
		t = p.Elem()
	}
	if n, ok := t.(*types.Named); ok && n.Obj().Pkg() != nil {
		return n.Obj().Pkg().Path()
	}
	return ""
}
