// Package numdiff compares text files that hold numbers, treating numbers
// as equal when they are approximately equal.
//
// Both inputs are split into tokens on whitespace, commas and semicolons.
// Token pairs that both parse as numbers are compared with the configured
// tolerances; any other pair must match exactly.
package numdiff

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"

	"github.com/amp-labs/amp-approx/approx"
	"github.com/zeebo/xxh3"
)

// Options control a comparison.
type Options struct {
	// Tolerance applied to numeric tokens.
	Tolerance approx.Tolerance[float64]

	// MaxMismatches caps the mismatches recorded per comparison. Zero or
	// less records all of them. Counting continues past the cap.
	MaxMismatches int
}

// DefaultOptions compares with the float64 default tolerances and records
// every mismatch.
func DefaultOptions() Options {
	return Options{Tolerance: approx.DefaultTolerance[float64]()}
}

// Mismatch is a pair of tokens that differ. A token missing on one side,
// because the inputs have different token counts, is empty with line 0.
type Mismatch struct {
	Index     int
	LeftLine  int
	RightLine int
	Left      string
	Right     string
}

func (m Mismatch) String() string {
	return fmt.Sprintf("token %d (line %d/%d): %s != %s",
		m.Index+1, m.LeftLine, m.RightLine, quoteMissing(m.Left), quoteMissing(m.Right))
}

func quoteMissing(tok string) string {
	if tok == "" {
		return "<missing>"
	}

	return tok
}

// Result is the outcome of comparing two inputs.
type Result struct {
	// Identical is set when both inputs have the same bytes. No tokens are
	// compared in that case.
	Identical bool

	LeftDigest  uint64
	RightDigest uint64

	// Tokens is the number of token pairs examined.
	Tokens int

	// Count is the total number of mismatches; Mismatches holds at most
	// Options.MaxMismatches of them.
	Count      int
	Mismatches []Mismatch
}

// Close reports whether the inputs matched.
func (r Result) Close() bool {
	return r.Count == 0
}

type token struct {
	text string
	line int
}

// Compare reads both inputs to the end and compares them.
func Compare(left, right io.Reader, opts Options) (Result, error) {
	leftData, err := io.ReadAll(left)
	if err != nil {
		return Result{}, fmt.Errorf("reading left input: %w", err)
	}

	rightData, err := io.ReadAll(right)
	if err != nil {
		return Result{}, fmt.Errorf("reading right input: %w", err)
	}

	result := Result{
		LeftDigest:  xxh3.Hash(leftData),
		RightDigest: xxh3.Hash(rightData),
	}

	if result.LeftDigest == result.RightDigest && len(leftData) == len(rightData) {
		result.Identical = true

		return result, nil
	}

	leftTokens, err := tokenize(leftData)
	if err != nil {
		return Result{}, fmt.Errorf("tokenizing left input: %w", err)
	}

	rightTokens, err := tokenize(rightData)
	if err != nil {
		return Result{}, fmt.Errorf("tokenizing right input: %w", err)
	}

	result.Tokens = max(len(leftTokens), len(rightTokens))

	for i := range result.Tokens {
		var l, r token

		if i < len(leftTokens) {
			l = leftTokens[i]
		}

		if i < len(rightTokens) {
			r = rightTokens[i]
		}

		if tokensMatch(l.text, r.text, opts.Tolerance) {
			continue
		}

		result.Count++

		if opts.MaxMismatches <= 0 || len(result.Mismatches) < opts.MaxMismatches {
			result.Mismatches = append(result.Mismatches, Mismatch{
				Index:     i,
				LeftLine:  l.line,
				RightLine: r.line,
				Left:      l.text,
				Right:     r.text,
			})
		}
	}

	return result, nil
}

func isSeparator(r rune) bool {
	return unicode.IsSpace(r) || r == ',' || r == ';'
}

func tokenize(data []byte) ([]token, error) {
	var tokens []token

	scanner := bufio.NewScanner(bytes.NewReader(data))
	scanner.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), len(data)+1)

	line := 0
	for scanner.Scan() {
		line++

		for _, field := range strings.FieldsFunc(scanner.Text(), isSeparator) {
			tokens = append(tokens, token{text: field, line: line})
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return tokens, nil
}

func tokensMatch(left, right string, tol approx.Tolerance[float64]) bool {
	if left == right {
		return true
	}

	l, lerr := strconv.ParseFloat(left, 64)
	r, rerr := strconv.ParseFloat(right, 64)

	if lerr != nil || rerr != nil {
		return false
	}

	return approx.Float64(l).IsCloseTol(approx.Float64(r), tol.Rel, tol.Abs)
}
