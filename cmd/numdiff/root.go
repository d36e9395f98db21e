package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/amp-labs/amp-approx/approx"
	"github.com/amp-labs/amp-approx/build"
	"github.com/amp-labs/amp-approx/logger"
	"github.com/amp-labs/amp-approx/numdiff"
	"github.com/amp-labs/amp-approx/profile"
	"github.com/spf13/cobra"
)

// Exit codes.
const (
	exitClose    = 0
	exitMismatch = 1
	exitError    = 2
)

// envPrefix names the environment variables that override the selected
// profile: NUMDIFF_REL_TOL and NUMDIFF_ABS_TOL.
const envPrefix = "NUMDIFF"

var (
	errMismatch    = errors.New("inputs differ")
	errInvalidFlag = errors.New("invalid flag")
)

// buildInfo is injected at release time with
// -ldflags "-X main.buildInfo=<json>".
var buildInfo string //nolint:gochecknoglobals

type options struct {
	rel      float64
	abs      float64
	profile  string
	profiles string
	max      int
	workers  int
	jsonLog  bool
	quiet    bool
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "numdiff LEFT RIGHT [LEFT RIGHT ...]",
		Short: "Compare numeric text files within a tolerance",
		Long: `numdiff compares pairs of text files token by token. Tokens that are
numbers on both sides match when they are approximately equal; all other
tokens must match exactly.

Tolerances come from a profile (float64 unless --profile says otherwise),
then NUMDIFF_REL_TOL and NUMDIFF_ABS_TOL, then --rel and --abs.

Example:
  numdiff --profile float32 want.txt got.txt.gz
  numdiff --profiles tolerances.yaml --profile sensor a1.csv b1.csv a2.csv b2.csv`,
		Args: cobra.MatchAll(cobra.MinimumNArgs(2), func(_ *cobra.Command, args []string) error { //nolint:mnd
			_, err := numdiff.Pairs(args...)

			return err
		}),
		Version:       build.Current(buildInfo).String(),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompare(cmd, opts, args)
		},
	}

	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	flags := cmd.Flags()
	flags.Float64Var(&opts.rel, "rel", 0, "relative tolerance (overrides the profile)")
	flags.Float64Var(&opts.abs, "abs", 0, "absolute tolerance (overrides the profile)")
	flags.StringVarP(&opts.profile, "profile", "p", profile.Float64, "tolerance profile")
	flags.StringVar(&opts.profiles, "profiles", "", "YAML file with additional profiles")
	flags.IntVar(&opts.max, "max", 10, "mismatches to report per pair (0 reports all)") //nolint:mnd
	flags.IntVarP(&opts.workers, "workers", "w", numdiff.DefaultWorkers, "pairs compared concurrently")
	flags.BoolVar(&opts.jsonLog, "json-log", false, "log as JSON (LOG_JSON and LOG_LEVEL also apply)")
	flags.BoolVarP(&opts.quiet, "quiet", "q", false, "only set the exit code")

	return cmd
}

func tolerance(cmd *cobra.Command, opts *options) (profile.Tolerance, error) {
	set := profile.Builtin()

	if opts.profiles != "" {
		loaded, err := profile.Load(opts.profiles)
		if err != nil {
			return profile.Tolerance{}, err
		}

		set = set.Merge(loaded)
	}

	base, err := set.Get(opts.profile)
	if err != nil {
		return profile.Tolerance{}, err
	}

	tol, err := profile.FromEnv(envPrefix, base)
	if err != nil {
		return profile.Tolerance{}, err
	}

	if cmd.Flags().Changed("rel") {
		tol.Rel = opts.rel
	}

	if cmd.Flags().Changed("abs") {
		tol.Abs = opts.abs
	}

	if err := approx.ValidateTolerance(tol); err != nil {
		return profile.Tolerance{}, err
	}

	return tol, nil
}

func runCompare(cmd *cobra.Command, opts *options, args []string) error {
	logOpts := []logger.Option{logger.WithOutput(cmd.ErrOrStderr())}
	if opts.jsonLog {
		logOpts = append(logOpts, logger.WithJSON(true))
	}

	log, err := logger.ConfigureLogging("numdiff", logOpts...)
	if err != nil {
		return err
	}

	if opts.max < 0 {
		return fmt.Errorf("%w: --max must not be negative, got %d", errInvalidFlag, opts.max)
	}

	ctx := logger.WithLogger(cmd.Context(), log)

	tol, err := tolerance(cmd, opts)
	if err != nil {
		return err
	}

	pairs, err := numdiff.Pairs(args...)
	if err != nil {
		return err
	}

	logger.Get(ctx).Debug("comparing", "pairs", len(pairs), "tolerance", tol.String())

	summary, err := numdiff.CompareFiles(ctx, pairs, numdiff.Options{
		Tolerance:     tol,
		MaxMismatches: opts.max,
	}, opts.workers)
	if err != nil {
		return err
	}

	if !opts.quiet {
		if err := numdiff.WriteReport(cmd.OutOrStdout(), summary.Results); err != nil {
			return err
		}
	}

	if summary.Failed > 0 {
		return fmt.Errorf("%d of %d pairs could not be compared", summary.Failed, len(pairs))
	}

	if summary.Mismatches > 0 {
		return fmt.Errorf("%w: %d mismatches", errMismatch, summary.Mismatches)
	}

	return nil
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	if args == nil {
		// A nil slice makes cobra fall back to os.Args.
		args = []string{}
	}

	cmd := newRootCmd(stdout, stderr)
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(ctx)

	switch {
	case err == nil:
		return exitClose
	case errors.Is(err, errMismatch):
		return exitMismatch
	default:
		if !errors.Is(err, context.Canceled) {
			fmt.Fprintln(stderr, "numdiff:", err)
		}

		return exitError
	}
}
