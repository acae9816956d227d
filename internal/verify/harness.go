// Package verify implements the reproducibility harness: it drives N
// independent plan-generation trials against a generator, canonicalizes
// every result, and counts how many distinct plans came back. A
// deterministic generator collapses to one distinct form; a drifting
// baseline does not.
package verify

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"plandrift/internal/plan"
)

// Generator is the single contract the harness needs from a planning
// path. The deterministic planner, the drift baseline, and the remote
// placeholder all satisfy it.
type Generator interface {
	Generate(ctx context.Context, request string) (plan.Plan, error)
}

// GeneratorFunc adapts a plain function to the Generator interface.
type GeneratorFunc func(ctx context.Context, request string) (plan.Plan, error)

// Generate calls f.
func (f GeneratorFunc) Generate(ctx context.Context, request string) (plan.Plan, error) {
	return f(ctx, request)
}

// TrialSet holds every draw from one generator in trial order: the plan
// itself for inspection, and its canonical form for comparison.
type TrialSet struct {
	Plans     []plan.Plan
	Canonical []string
}

// Distinct counts unique canonical forms across the set.
func (ts TrialSet) Distinct() int {
	seen := make(map[string]struct{}, len(ts.Canonical))
	for _, c := range ts.Canonical {
		seen[c] = struct{}{}
	}
	return len(seen)
}

// Harness runs repeated generation trials against a generator.
type Harness struct {
	trials      int
	parallelism int
	logger      *zap.Logger
}

// New returns a harness that runs the given number of trials per Run
// call. parallelism is the number of trials in flight at once; 1 runs
// them sequentially.
func New(trials, parallelism int, logger *zap.Logger) (*Harness, error) {
	if trials < 1 {
		return nil, fmt.Errorf("trials must be at least 1, got %d", trials)
	}
	if parallelism < 1 {
		return nil, fmt.Errorf("parallelism must be at least 1, got %d", parallelism)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Harness{trials: trials, parallelism: parallelism, logger: logger}, nil
}

// Run draws the configured number of trials from gen for request. Each
// result lands at its trial index, so trial order is stable regardless
// of parallelism. A failed trial fails the whole run with that trial's
// error; there are no retries.
func (h *Harness) Run(ctx context.Context, gen Generator, request string) (TrialSet, error) {
	plans := make([]plan.Plan, h.trials)
	canonical := make([]string, h.trials)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(h.parallelism)
	for i := 0; i < h.trials; i++ {
		g.Go(func() error {
			p, err := gen.Generate(gctx, request)
			if err != nil {
				return fmt.Errorf("trial %d: %w", i, err)
			}
			c, err := plan.Canonical(p)
			if err != nil {
				return fmt.Errorf("trial %d: %w", i, err)
			}
			plans[i] = p
			canonical[i] = c
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return TrialSet{}, err
	}

	ts := TrialSet{Plans: plans, Canonical: canonical}
	h.logger.Debug("Trial run complete",
		zap.Int("trials", h.trials),
		zap.Int("distinct", ts.Distinct()))
	return ts, nil
}

// Compare runs the same trial count against both generators for one
// request and folds the two trial sets into a Report. The deterministic
// path runs first; a failure on either path fails the comparison.
func (h *Harness) Compare(ctx context.Context, deterministic, baseline Generator, request string) (Report, error) {
	det, err := h.Run(ctx, deterministic, request)
	if err != nil {
		return Report{}, fmt.Errorf("deterministic trials: %w", err)
	}
	base, err := h.Run(ctx, baseline, request)
	if err != nil {
		return Report{}, fmt.Errorf("baseline trials: %w", err)
	}
	return NewReport(request, h.trials, det, base), nil
}
