// SPDX-License-Identifier: MIT
// Package: matbench/bench
//
// run.go - the two sequential pipelines (integer, then double).
//
// Each pipeline: generate A and B → time exactly one Mul → optional verification.
// Verification runs outside the timed region. The context is consulted only
// between stages; a multiplication, once started, always runs to completion.

package bench

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/rs/zerolog"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/matbench/matbench/matrix"
	"github.com/matbench/matbench/timing"
)

// Deps are the injectable collaborators of Run. Zero values are replaced by
// SystemClock, a clock-seeded RNG and a no-op logger.
type Deps struct {
	Clock  timing.Clock
	Rand   *rand.Rand // ignored when Config.Seeded
	Logger *zerolog.Logger
}

// Check is the outcome of one post-run verification.
type Check struct {
	Kind   timing.Kind
	Method string // "order:<other>" or "gonum"
	OK     bool
}

// Result collects the samples (integer first) and any verification checks.
type Result struct {
	Samples []timing.Sample
	Checks  []Check
}

// numberPrinter formats counts with thousands separators for log fields.
var numberPrinter = message.NewPrinter(language.English)

// DescribeDims renders grouped dimensions, e.g. "1,500×1,300 · 1,300×1,000".
func DescribeDims(d matrix.Dims) string {
	return numberPrinter.Sprintf("%d×%d · %d×%d", d.RowsA, d.ColsA, d.ColsA, d.ColsB)
}

// Run executes the integer pipeline and then the double pipeline.
// On a verification failure the full Result is returned together with ErrVerification.
func Run(ctx context.Context, cfg Config, deps Deps) (Result, error) {
	if err := cfg.Validate(); err != nil {
		return Result{}, err
	}
	deps = deps.withDefaults(cfg)
	log := deps.Logger.With().Str("order", cfg.Order.String()).Logger()

	log.Debug().
		Str("dims", DescribeDims(cfg.Dims)).
		Str("mul_adds", numberPrinter.Sprintf("%d", cfg.Dims.MulAdds())).
		Bool("seeded", cfg.Seeded).
		Msg("starting run")

	var res Result

	intSample, intCheck, err := runPipeline(ctx, cfg, deps, log, timing.KindInteger,
		matrix.RandomInt32,
		func(a, b, got *matrix.Dense[int32]) (Check, error) { return verifyInt32(a, b, got, cfg.Order) },
	)
	if err != nil {
		return res, err
	}
	res.Samples = append(res.Samples, intSample)
	if intCheck != nil {
		res.Checks = append(res.Checks, *intCheck)
	}

	floatSample, floatCheck, err := runPipeline(ctx, cfg, deps, log, timing.KindDouble,
		matrix.RandomFloat64,
		func(a, b, got *matrix.Dense[float64]) (Check, error) { return verifyFloat64(a, b, got, cfg.RelTol) },
	)
	if err != nil {
		return res, err
	}
	res.Samples = append(res.Samples, floatSample)
	if floatCheck != nil {
		res.Checks = append(res.Checks, *floatCheck)
	}

	for _, c := range res.Checks {
		if !c.OK {
			return res, fmt.Errorf("%s via %s: %w", c.Kind, c.Method, ErrVerification)
		}
	}

	return res, nil
}

// withDefaults fills nil collaborators; a seeded config always gets its own source.
func (d Deps) withDefaults(cfg Config) Deps {
	if d.Clock == nil {
		d.Clock = timing.SystemClock{}
	}
	switch {
	case cfg.Seeded:
		d.Rand = matrix.NewRand(cfg.Seed)
	case d.Rand == nil:
		d.Rand = matrix.NewRandFromClock()
	}
	if d.Logger == nil {
		nop := zerolog.Nop()
		d.Logger = &nop
	}

	return d
}

// runPipeline generates A and B with gen, times exactly one Mul and, when
// enabled, cross-checks the product with verify outside the timed region.
func runPipeline[T matrix.Element](
	ctx context.Context,
	cfg Config,
	deps Deps,
	log zerolog.Logger,
	kind timing.Kind,
	gen func(rng *rand.Rand, rows, cols int) (*matrix.Dense[T], error),
	verify func(a, b, got *matrix.Dense[T]) (Check, error),
) (timing.Sample, *Check, error) {
	d := cfg.Dims
	if err := ctx.Err(); err != nil {
		return timing.Sample{}, nil, err
	}
	a, err := gen(deps.Rand, d.RowsA, d.ColsA)
	if err != nil {
		return timing.Sample{}, nil, fmt.Errorf("%s pipeline: %w", kind, err)
	}
	b, err := gen(deps.Rand, d.ColsA, d.ColsB)
	if err != nil {
		return timing.Sample{}, nil, fmt.Errorf("%s pipeline: %w", kind, err)
	}
	if err = ctx.Err(); err != nil {
		return timing.Sample{}, nil, err
	}

	var product *matrix.Dense[T]
	sample, err := timing.Measure(deps.Clock, kind, cfg.Order.String(), func() error {
		var mulErr error
		product, mulErr = matrix.Mul(a, b, cfg.Order)
		return mulErr
	})
	if err != nil {
		return timing.Sample{}, nil, fmt.Errorf("%s pipeline: %w", kind, err)
	}
	log.Info().Str("kind", string(kind)).Dur("elapsed", sample.Elapsed).Msg("multiplication timed")

	if !cfg.Verify {
		return sample, nil, nil
	}
	if err = ctx.Err(); err != nil {
		return sample, nil, err
	}
	check, err := verify(a, b, product)
	if err != nil {
		return sample, nil, fmt.Errorf("%s pipeline: %w", kind, err)
	}
	log.Debug().Str("kind", string(kind)).Str("method", check.Method).Bool("ok", check.OK).Msg("verified")

	return sample, &check, nil
}
