// SPDX-License-Identifier: MIT

// Command matbench generates random int32 and float64 matrices, multiplies
// them with a naive triple loop and prints how long each multiplication took.
//
// Usage:
//
//	matbench                      # 1500×1300×1000, order jk, fresh seed
//	matbench --order kj           # cache-friendly i→k→j nesting
//	matbench --seed 42 --verify   # reproducible operands, cross-checked products
//	matbench --format yaml        # structured report on stdout
//
// Timing lines go to stdout; logs go to stderr. Exit status is 0 on success
// and 1 on any failure.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/matbench/matbench/bench"
	"github.com/matbench/matbench/matrix"
	"github.com/matbench/matbench/timing"
)

// flags holds the parsed command-line values.
type flags struct {
	dims     matrix.Dims
	order    matrix.LoopOrder
	seed     int64
	verify   bool
	format   string
	logLevel string
}

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "matbench: %v\n", err)
		os.Exit(1)
	}
}

// newRootCmd wires flags to a bench run; stdout and stderr are injected for tests.
func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	f := flags{dims: matrix.DefaultDims(), order: matrix.OrderJK}

	cmd := &cobra.Command{
		Use:           "matbench",
		Short:         "Time naive dense matrix multiplication in i-j-k or i-k-j loop order",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.Context(), f, cmd.Flags().Changed("seed"), stdout, stderr)
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	fs := cmd.Flags()
	fs.IntVar(&f.dims.RowsA, "rows-a", matrix.DefaultRowsA, "rows of A")
	fs.IntVar(&f.dims.ColsA, "cols-a", matrix.DefaultColsA, "columns of A (= rows of B)")
	fs.IntVar(&f.dims.ColsB, "cols-b", matrix.DefaultColsB, "columns of B")
	fs.Var(&f.order, "order", "loop order: jk (i-j-k) or kj (i-k-j)")
	fs.Int64Var(&f.seed, "seed", 0, "RNG seed for reproducible operands (default: clock)")
	fs.BoolVar(&f.verify, "verify", false, "cross-check products after timing")
	fs.StringVar(&f.format, "format", string(timing.FormatText), "report format: text or yaml")
	fs.StringVar(&f.logLevel, "log-level", zerolog.WarnLevel.String(), "log level for stderr diagnostics")

	return cmd
}

// run builds the config, executes both pipelines and writes the report.
func run(ctx context.Context, f flags, seeded bool, stdout, stderr io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}
	level, err := zerolog.ParseLevel(f.logLevel)
	if err != nil {
		return fmt.Errorf("--log-level: %w", err)
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: stderr, TimeFormat: time.TimeOnly}).
		Level(level).
		With().Timestamp().Logger()

	format, err := timing.ParseFormat(f.format)
	if err != nil {
		return err
	}
	reporter, err := timing.NewReporter(stdout, format)
	if err != nil {
		return err
	}

	opts := []bench.Option{
		bench.WithDims(f.dims),
		bench.WithOrder(f.order),
		bench.WithVerify(f.verify),
	}
	if seeded {
		opts = append(opts, bench.WithSeed(f.seed))
	}
	cfg := bench.NewConfig(opts...)

	logger.Debug().Object("host", bench.HostInfo()).Msg("host")

	res, err := bench.Run(ctx, cfg, bench.Deps{Logger: &logger})

	return writeReport(reporter, cfg, res, err)
}

// writeReport prints whatever samples were taken, even when runErr is set, and
// returns runErr in preference to a write failure.
func writeReport(reporter *timing.Reporter, cfg bench.Config, res bench.Result, runErr error) error {
	if len(res.Samples) == 0 {
		return runErr
	}
	meta := timing.Meta{Dims: cfg.Dims.String(), Order: cfg.Order.String(), Verify: cfg.Verify}
	if cfg.Seeded {
		meta.Seed = &cfg.Seed
	}
	if err := reporter.Write(meta, res.Samples); err != nil && runErr == nil {
		return err
	}

	return runErr
}
