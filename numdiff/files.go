package numdiff

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/alitto/pond/v2"
	"github.com/amp-labs/amp-approx/errors"
	"github.com/amp-labs/amp-approx/logger"
	"github.com/amp-labs/amp-approx/should"
	"go.uber.org/atomic"
)

// DefaultWorkers is the pool size used by CompareFiles when workers is not
// positive.
const DefaultWorkers = 4

// Pair names two files to compare. Name defaults to Left.
type Pair struct {
	Name  string
	Left  string
	Right string
}

func (p Pair) name() string {
	if p.Name != "" {
		return p.Name
	}

	return p.Left
}

// Pairs builds pairs from a flat list of paths, left then right.
func Pairs(paths ...string) ([]Pair, error) {
	if len(paths)%2 != 0 {
		return nil, fmt.Errorf("%w: %d paths", errors.ErrOddArguments, len(paths))
	}

	pairs := make([]Pair, 0, len(paths)/2) //nolint:mnd

	for i := 0; i < len(paths); i += 2 {
		pairs = append(pairs, Pair{Left: paths[i], Right: paths[i+1]})
	}

	return pairs, nil
}

// FileResult is the outcome of comparing one pair. Err is set when either
// file could not be read.
type FileResult struct {
	Pair
	Result

	Err error
}

// Summary collects the results of CompareFiles in input order.
type Summary struct {
	Results    []FileResult
	Mismatches int64
	Failed     int64
}

// Close reports whether every pair was read and matched.
func (s Summary) Close() bool {
	return s.Mismatches == 0 && s.Failed == 0
}

// CompareFiles compares every pair on a pool of workers.
func CompareFiles(ctx context.Context, pairs []Pair, opts Options, workers int) (Summary, error) {
	if workers <= 0 {
		workers = DefaultWorkers
	}

	var (
		mismatches = atomic.NewInt64(0)
		failed     = atomic.NewInt64(0)
	)

	pool := pond.NewResultPool[FileResult](workers, pond.WithContext(ctx))
	defer pool.StopAndWait()

	group := pool.NewGroup()

	for _, pair := range pairs {
		group.Submit(func() FileResult {
			res := compareFile(ctx, pair, opts)

			if res.Err != nil {
				failed.Inc()
			} else {
				mismatches.Add(int64(res.Count))
			}

			return res
		})
	}

	results, err := group.Wait()
	if err != nil {
		return Summary{}, err
	}

	return Summary{
		Results:    results,
		Mismatches: mismatches.Load(),
		Failed:     failed.Load(),
	}, nil
}

func compareFile(ctx context.Context, pair Pair, opts Options) FileResult {
	ctx = logger.With(ctx, "pair", pair.name())
	out := FileResult{Pair: pair}

	left, err := Open(pair.Left)
	if err != nil {
		out.Err = err

		return out
	}

	defer should.Close(ctx, left, "closing left input")

	right, err := Open(pair.Right)
	if err != nil {
		out.Err = err

		return out
	}

	defer should.Close(ctx, right, "closing right input")

	out.Result, out.Err = Compare(left, right, opts)

	logger.Get(ctx).LogAttrs(ctx, slog.LevelDebug, "compared",
		slog.Bool("identical", out.Identical),
		slog.Int("tokens", out.Tokens),
		slog.Int("mismatches", out.Count))

	return out
}
