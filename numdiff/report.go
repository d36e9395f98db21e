package numdiff

import (
	"fmt"
	"io"
	"slices"

	"facette.io/natsort"
)

// WriteReport writes one line per pair, sorted naturally by name, followed
// by the recorded mismatches of each pair.
//
//	ok     run2.txt  identical
//	ok     run10.txt 120 tokens
//	FAIL   run11.txt 2 mismatches in 120 tokens
//	       token 7 (line 2/2): 1.5 != 1.6
//	ERROR  run12.txt open run12.txt: no such file or directory
func WriteReport(w io.Writer, results []FileResult) error {
	names := make([]string, 0, len(results))
	for _, res := range results {
		names = append(names, res.name())
	}

	natsort.Sort(names)

	rank := make(map[string]int, len(names))
	for i, name := range names {
		if _, ok := rank[name]; !ok {
			rank[name] = i
		}
	}

	sorted := slices.Clone(results)
	slices.SortStableFunc(sorted, func(a, b FileResult) int {
		return rank[a.name()] - rank[b.name()]
	})

	for _, res := range sorted {
		if err := writeResult(w, res); err != nil {
			return err
		}
	}

	return nil
}

func writeResult(w io.Writer, res FileResult) error {
	var err error

	switch {
	case res.Err != nil:
		_, err = fmt.Fprintf(w, "ERROR  %s %v\n", res.name(), res.Err)
	case res.Identical:
		_, err = fmt.Fprintf(w, "ok     %s identical\n", res.name())
	case res.Close():
		_, err = fmt.Fprintf(w, "ok     %s %d tokens\n", res.name(), res.Tokens)
	default:
		_, err = fmt.Fprintf(w, "FAIL   %s %d mismatches in %d tokens\n", res.name(), res.Count, res.Tokens)
	}

	if err != nil {
		return err
	}

	for _, m := range res.Mismatches {
		if _, err := fmt.Fprintf(w, "       %s\n", m); err != nil {
			return err
		}
	}

	return nil
}
