// SPDX-License-Identifier: MIT
// Package: matbench/bench
//
// config.go - run configuration and deterministic defaults.
//
// Design:
//   • Config is the single source of truth for one benchmark run.
//   • Defaults reproduce the reference run: 1500×1300×1000, order jk, clock-seeded RNG.
//   • Options apply in order (later overrides earlier), mirroring functional options elsewhere.

package bench

import (
	"errors"
	"fmt"

	"github.com/matbench/matbench/matrix"
)

// DefaultRelTol is the per-cell relative tolerance used by float64 verification.
const DefaultRelTol = 1e-9

// ErrVerification is returned when a post-run cross-check disagrees.
var ErrVerification = errors.New("bench: verification failed")

// Config describes one run of both pipelines.
type Config struct {
	Dims   matrix.Dims      // operand dimensions
	Order  matrix.LoopOrder // loop order used by both pipelines
	Seed   int64            // RNG seed, meaningful only when Seeded
	Seeded bool             // false ⇒ seed from the clock (non-reproducible)
	Verify bool             // cross-check products after timing
	RelTol float64          // float64 verification tolerance (>0)
}

// Option mutates a Config during NewConfig.
type Option func(*Config)

// DefaultConfig returns the reference configuration.
func DefaultConfig() Config {
	return Config{
		Dims:   matrix.DefaultDims(),
		Order:  matrix.OrderJK,
		RelTol: DefaultRelTol,
	}
}

// NewConfig starts from DefaultConfig and applies opts in order.
func NewConfig(opts ...Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithDims overrides the operand dimensions.
func WithDims(d matrix.Dims) Option {
	return func(c *Config) { c.Dims = d }
}

// WithOrder selects the loop order.
func WithOrder(o matrix.LoopOrder) Option {
	return func(c *Config) { c.Order = o }
}

// WithSeed freezes the RNG for reproducible operands.
func WithSeed(seed int64) Option {
	return func(c *Config) {
		c.Seed = seed
		c.Seeded = true
	}
}

// WithVerify enables post-run verification.
func WithVerify(v bool) Option {
	return func(c *Config) { c.Verify = v }
}

// WithRelTol overrides the float64 verification tolerance.
func WithRelTol(tol float64) Option {
	return func(c *Config) { c.RelTol = tol }
}

// Validate checks dimensions, loop order and tolerance.
func (c Config) Validate() error {
	if err := c.Dims.Validate(); err != nil {
		return fmt.Errorf("Config: %w", err)
	}
	if !c.Order.Valid() {
		return fmt.Errorf("Config: %v: %w", c.Order, matrix.ErrUnknownLoopOrder)
	}
	if !(c.RelTol > 0) {
		return fmt.Errorf("Config: RelTol %v must be > 0", c.RelTol)
	}

	return nil
}
