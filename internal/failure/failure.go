// Package failure formats the diagnostic shared by the approximate-equality
// assertion helpers.
package failure

import (
	"fmt"
	"strings"
)

// Operators used in the first line of a report.
const (
	OpClose    = "~="
	OpNotClose = "!~="
)

// Report describes a failed approximate-equality assertion.
type Report struct {
	Op        string
	LeftExpr  string
	RightExpr string
	Left      any
	Right     any
	RelTol    any
	AbsTol    any
	Message   string
}

// String renders the report as
//
//	assertion `left ~= right` failed: message
//	 left expr: a + b
//	right expr: c
//	      left: 0.30000000000000004
//	     right: 0.3
//	   rel tol: 1e-09
//	   abs tol: 1e-09
//
// The expression lines are omitted when the expressions are unknown, and
// the message suffix when there is no message.
func (r Report) String() string {
	var b strings.Builder

	b.WriteString("assertion `left " + r.Op + " right` failed")

	if r.Message != "" {
		b.WriteString(": " + r.Message)
	}

	if r.LeftExpr != "" || r.RightExpr != "" {
		writeLine(&b, "left expr", r.LeftExpr)
		writeLine(&b, "right expr", r.RightExpr)
	}

	writeLine(&b, "left", r.Left)
	writeLine(&b, "right", r.Right)
	writeLine(&b, "rel tol", r.RelTol)
	writeLine(&b, "abs tol", r.AbsTol)

	return b.String()
}

func writeLine(b *strings.Builder, label string, value any) {
	fmt.Fprintf(b, "\n%10s: %v", label, value)
}

// Message formats optional assertion arguments. A leading string is used
// as a format string for the remaining args; otherwise all args are
// printed with %v. No args gives an empty message.
func Message(args ...any) string {
	if len(args) == 0 {
		return ""
	}

	if format, ok := args[0].(string); ok {
		return fmt.Sprintf(format, args[1:]...)
	}

	return fmt.Sprintf("%v", args)
}

// Exprs returns the first two entries of args, or empty strings when they
// are not available.
func Exprs(args []string) (string, string) {
	if len(args) < 2 { //nolint:mnd
		return "", ""
	}

	return args[0], args[1]
}
