// Package source recovers the source text of the arguments of a function
// call from the caller's file, so that assertion failures can show the
// expressions as written.
package source

import (
	"errors"
	"fmt"
	"go/ast"
	"go/parser"
	"go/printer"
	"go/token"
	"runtime"
	"strings"
)

var (
	errNoCaller  = errors.New("caller not found")
	errNoCall    = errors.New("call expression not found")
	errAmbiguous = errors.New("more than one matching call on the line")
)

// CallArgs returns the source text of the arguments of the call to a
// function named name that is in progress skip frames above the caller of
// CallArgs. The function name is matched against the last selector, so
// "IsClose" matches both IsClose(...) and assert.IsClose(...).
func CallArgs(skip int, name string) ([]string, error) {
	_, file, line, ok := runtime.Caller(skip + 1)
	if !ok {
		return nil, errNoCaller
	}

	fset := token.NewFileSet()

	astFile, err := parser.ParseFile(fset, file, nil, 0)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", file, err)
	}

	call, err := findCall(fset, astFile, line, name)
	if err != nil {
		return nil, fmt.Errorf("%w: %s at %s:%d", err, name, file, line)
	}

	args := make([]string, len(call.Args))

	for i, arg := range call.Args {
		var buf strings.Builder

		if err := printer.Fprint(&buf, fset, arg); err != nil {
			return nil, fmt.Errorf("printing argument %d: %w", i, err)
		}

		args[i] = buf.String()
	}

	return args, nil
}

// findCall returns the narrowest call to name whose span contains line.
// When several calls share that span the frame cannot tell them apart, so
// none is returned.
func findCall(fset *token.FileSet, file *ast.File, line int, name string) (*ast.CallExpr, error) {
	var (
		found *ast.CallExpr
		span  int
		ties  int
	)

	ast.Inspect(file, func(node ast.Node) bool {
		call, ok := node.(*ast.CallExpr)
		if !ok {
			return true
		}

		start, end := fset.Position(call.Pos()).Line, fset.Position(call.End()).Line
		if line < start || line > end {
			return false
		}

		if funcName(call.Fun) != name {
			return true
		}

		switch {
		case found == nil || end-start < span:
			found, span, ties = call, end-start, 1
		case end-start == span:
			ties++
		}

		return true
	})

	switch {
	case found == nil:
		return nil, errNoCall
	case ties > 1:
		return nil, errAmbiguous
	default:
		return found, nil
	}
}

func funcName(expr ast.Expr) string {
	switch fun := expr.(type) {
	case *ast.Ident:
		return fun.Name
	case *ast.SelectorExpr:
		return fun.Sel.Name
	case *ast.IndexExpr:
		return funcName(fun.X)
	case *ast.IndexListExpr:
		return funcName(fun.X)
	default:
		return ""
	}
}
