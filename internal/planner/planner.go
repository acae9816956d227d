// Package planner implements the deterministic request-to-plan pipeline:
// an ordered rule table classifies the request into a goal, the goal
// expands into a fixed step template, and the assembled plan is stamped
// with the reproducible constraint set. The pipeline is total (every
// request yields a plan) and pure (same request, same plan, always).
package planner

import (
	"context"

	"go.uber.org/zap"

	"plandrift/internal/plan"
)

// Planner holds the rule table. It has no mutable state and is safe for
// concurrent use.
type Planner struct {
	rules  []Rule
	logger *zap.Logger
}

// New returns a planner over the default rule table.
func New(logger *zap.Logger) *Planner {
	return NewWithRules(DefaultRules(), logger)
}

// NewWithRules returns a planner over a caller-supplied rule table,
// evaluated in slice order.
func NewWithRules(rules []Rule, logger *zap.Logger) *Planner {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Planner{rules: rules, logger: logger}
}

// Rules returns the planner's table in evaluation order.
func (p *Planner) Rules() []Rule {
	return p.rules
}

// Generate classifies the request, expands its step template, and stamps
// the deterministic constraints. The error is always nil; it exists so
// Planner satisfies the same generator contract as non-deterministic
// baselines, which can fail.
func (p *Planner) Generate(ctx context.Context, request string) (plan.Plan, error) {
	goal := Classify(p.rules, request)
	steps := BuildSteps(goal, request)

	p.logger.Debug("Assembled plan",
		zap.String("goal", string(goal)),
		zap.Int("steps", len(steps)))

	return plan.Plan{
		Goal:            goal,
		OriginalRequest: request,
		Steps:           steps,
		Constraints:     plan.Reproducible(),
	}, nil
}
