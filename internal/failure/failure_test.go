package failure

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReport_String(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		report   Report
		expected string
	}{
		{
			name: "with expressions and message",
			report: Report{
				Op:        OpClose,
				LeftExpr:  "a + b",
				RightExpr: "c",
				Left:      0.30000000000000004,
				Right:     0.3,
				RelTol:    1e-9,
				AbsTol:    1e-9,
				Message:   "sum",
			},
			expected: "assertion `left ~= right` failed: sum\n" +
				" left expr: a + b\n" +
				"right expr: c\n" +
				"      left: 0.30000000000000004\n" +
				"     right: 0.3\n" +
				"   rel tol: 1e-09\n" +
				"   abs tol: 1e-09",
		},
		{
			name: "without expressions",
			report: Report{
				Op:     OpNotClose,
				Left:   float32(2),
				Right:  float32(2),
				RelTol: float32(0),
				AbsTol: float32(0.1),
			},
			expected: "assertion `left !~= right` failed\n" +
				"      left: 2\n" +
				"     right: 2\n" +
				"   rel tol: 0\n" +
				"   abs tol: 0.1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, tt.report.String())
		})
	}
}

func TestMessage(t *testing.T) {
	t.Parallel()

	assert.Empty(t, Message())
	assert.Equal(t, "plain", Message("plain"))
	assert.Equal(t, "expected 42 but got 0", Message("expected %d but got %d", 42, 0))
	assert.Equal(t, "[42 test]", Message(42, "test"))
}

func TestExprs(t *testing.T) {
	t.Parallel()

	left, right := Exprs([]string{"x", "y", "1e-3"})
	assert.Equal(t, "x", left)
	assert.Equal(t, "y", right)

	left, right = Exprs(nil)
	assert.Empty(t, left)
	assert.Empty(t, right)
}
