// Package drift provides the non-deterministic baseline generator the
// verification harness is measured against. It simulates a dynamic
// planner: same request in, randomly reordered steps and perturbed
// parameters out. It never calls an external service.
package drift

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"plandrift/internal/plan"
)

// actionReflect is outside the deterministic planner's vocabulary; only
// the baseline emits it.
const actionReflect plan.Action = "reflect"

var (
	topKChoices     = []int{3, 4, 5}
	maxWordsChoices = []int{150, 200, 250}
)

// Simulator is a drop-in generator whose output drifts between calls.
// The mutex serializes draws so one simulator can serve concurrent
// trials; *rand.Rand is not safe for unguarded shared use.
type Simulator struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// Option configures a Simulator.
type Option func(*Simulator)

// WithSeed fixes the randomness source. Two simulators built from the
// same seed produce the same draw sequence, which is what tests rely on.
func WithSeed(seed int64) Option {
	return func(s *Simulator) {
		s.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand supplies the randomness source directly. The simulator takes
// ownership; the caller must not keep drawing from it.
func WithRand(rng *rand.Rand) Option {
	return func(s *Simulator) {
		s.rng = rng
	}
}

// New returns a simulator, time-seeded unless an option says otherwise.
func New(opts ...Option) *Simulator {
	s := &Simulator{rng: rand.New(rand.NewSource(time.Now().UnixNano()))}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// baseSteps is the fixed pre-shuffle template. IDs are assigned here,
// before shuffling, so a reordered plan keeps each step's original
// number and generally fails contiguity validation.
func baseSteps(request string) []plan.Step {
	return []plan.Step{
		{ID: 1, Action: plan.ActionSearch, Params: map[string]any{
			"source": "web",
			"query":  request,
			"top_k":  3,
		}},
		{ID: 2, Action: plan.ActionSummarize, Params: map[string]any{
			"style":     "short",
			"max_words": 200,
		}},
		{ID: 3, Action: actionReflect, Params: map[string]any{
			"check_consistency": true,
		}},
	}
}

// Generate produces one independent draw: steps are always shuffled, and
// half the time the search top_k and summarize max_words are re-drawn
// from their choice sets. The error is always nil.
func (s *Simulator) Generate(ctx context.Context, request string) (plan.Plan, error) {
	steps := baseSteps(request)

	s.mu.Lock()
	s.rng.Shuffle(len(steps), func(i, j int) {
		steps[i], steps[j] = steps[j], steps[i]
	})
	if s.rng.Float64() < 0.5 {
		for i := range steps {
			switch steps[i].Action {
			case plan.ActionSearch:
				steps[i].Params["top_k"] = topKChoices[s.rng.Intn(len(topKChoices))]
			case plan.ActionSummarize:
				steps[i].Params["max_words"] = maxWordsChoices[s.rng.Intn(len(maxWordsChoices))]
			}
		}
	}
	s.mu.Unlock()

	return plan.Plan{
		Goal:            plan.GoalMockDynamic,
		OriginalRequest: request,
		Steps:           steps,
		Constraints:     plan.Constraints{},
	}, nil
}
