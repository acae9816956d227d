package plan

import "fmt"

// Goal names the task family a request was classified into. The goal
// selects the step template; it carries no free text.
type Goal string

const (
	GoalFindPapersAndSummarize Goal = "find_papers_and_summarize"
	GoalFindPapers             Goal = "find_papers"
	GoalCompareSources         Goal = "compare_sources"
	GoalGenerateReport         Goal = "generate_report"
	GoalFetchNews              Goal = "fetch_news"

	// GoalGeneric is the fallback when no classification rule matches.
	GoalGeneric Goal = "generic_information_task"

	// GoalMockDynamic marks plans produced by the drift baseline rather
	// than the deterministic planner.
	GoalMockDynamic Goal = "mock_dynamic_plan"
)

// Action identifies what a step does. The deterministic planner only emits
// the constants below; the field stays an open string so baseline
// generators can emit actions outside this vocabulary.
type Action string

const (
	ActionSearch           Action = "search"
	ActionExtract          Action = "extract"
	ActionSummarize        Action = "summarize"
	ActionIdentifyEntities Action = "identify_entities"
	ActionFetchFacts       Action = "fetch_facts"
	ActionCompare          Action = "compare"
	ActionGatherContext    Action = "gather_context"
	ActionOutline          Action = "outline"
	ActionWrite            Action = "write"
)

// DefaultMaxLatencyMS is the latency budget stamped on every
// deterministic plan.
const DefaultMaxLatencyMS = 8000

// Step is a single action within a plan. IDs are assigned at assembly
// time and are contiguous from 1 in deterministic output.
type Step struct {
	ID     int            `json:"id"`
	Action Action         `json:"action"`
	Params map[string]any `json:"params"`
}

// Constraints records the execution envelope a plan was built for.
// MaxLatencyMS is nil when the generator declared no budget.
type Constraints struct {
	MaxLatencyMS       *int `json:"max_latency_ms"`
	MustBeReproducible bool `json:"must_be_reproducible"`
}

// Reproducible returns the constraint set attached to deterministic
// plans: the fixed latency budget and the reproducibility marker.
func Reproducible() Constraints {
	budget := DefaultMaxLatencyMS
	return Constraints{MaxLatencyMS: &budget, MustBeReproducible: true}
}

// Plan is the assembled result of planning one request.
type Plan struct {
	Goal            Goal        `json:"goal"`
	OriginalRequest string      `json:"original_request"`
	Steps           []Step      `json:"steps"`
	Constraints     Constraints `json:"constraints"`
}

// ValidateSteps checks that step IDs run contiguously from 1 in slice
// order. Deterministic plans always satisfy this; baseline plans shuffle
// steps after numbering and generally do not.
func (p Plan) ValidateSteps() error {
	for i, s := range p.Steps {
		if want := i + 1; s.ID != want {
			return fmt.Errorf("step at position %d has id %d, want %d", i, s.ID, want)
		}
	}
	return nil
}

// Clone returns a deep copy. Step params are copied so the caller can
// perturb the copy without touching the original.
func (p Plan) Clone() Plan {
	out := p
	if p.Constraints.MaxLatencyMS != nil {
		budget := *p.Constraints.MaxLatencyMS
		out.Constraints.MaxLatencyMS = &budget
	}
	out.Steps = CloneSteps(p.Steps)
	return out
}

// CloneSteps deep-copies a step slice, including each step's params map.
func CloneSteps(steps []Step) []Step {
	if steps == nil {
		return nil
	}
	out := make([]Step, len(steps))
	for i, s := range steps {
		out[i] = s
		out[i].Params = cloneParams(s.Params)
	}
	return out
}

func cloneParams(params map[string]any) map[string]any {
	if params == nil {
		return nil
	}
	out := make(map[string]any, len(params))
	for k, v := range params {
		switch vv := v.(type) {
		case []string:
			out[k] = append([]string(nil), vv...)
		case []any:
			out[k] = append([]any(nil), vv...)
		default:
			out[k] = v
		}
	}
	return out
}
