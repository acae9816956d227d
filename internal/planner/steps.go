package planner

import "plandrift/internal/plan"

// BuildSteps expands a goal into its fixed step template. The request
// text flows verbatim into query params; every other value is a
// constant, so the same goal and request always yield identical steps.
func BuildSteps(goal plan.Goal, request string) []plan.Step {
	switch goal {
	case plan.GoalFindPapersAndSummarize:
		return []plan.Step{
			{ID: 1, Action: plan.ActionSearch, Params: map[string]any{
				"source": "scholar_like",
				"query":  request,
				"top_k":  3,
			}},
			{ID: 2, Action: plan.ActionExtract, Params: map[string]any{
				"fields": []string{"title", "year", "abstract"},
			}},
			{ID: 3, Action: plan.ActionSummarize, Params: map[string]any{
				"style":     "concise",
				"max_words": 300,
			}},
		}
	case plan.GoalFindPapers:
		return []plan.Step{
			{ID: 1, Action: plan.ActionSearch, Params: map[string]any{
				"source": "scholar_like",
				"query":  request,
				"top_k":  5,
			}},
		}
	case plan.GoalCompareSources:
		return []plan.Step{
			{ID: 1, Action: plan.ActionIdentifyEntities, Params: map[string]any{
				"from_request": true,
				"max_entities": 4,
			}},
			{ID: 2, Action: plan.ActionFetchFacts, Params: map[string]any{
				"per_entity_top_k": 3,
			}},
			{ID: 3, Action: plan.ActionCompare, Params: map[string]any{
				"dimensions": []string{"pros", "cons", "risks"},
			}},
		}
	case plan.GoalGenerateReport:
		return []plan.Step{
			{ID: 1, Action: plan.ActionGatherContext, Params: map[string]any{
				"source": "mixed",
				"query":  request,
			}},
			{ID: 2, Action: plan.ActionOutline, Params: map[string]any{
				"sections": []string{"introduction", "body", "conclusion"},
			}},
			{ID: 3, Action: plan.ActionWrite, Params: map[string]any{
				"format":          "markdown",
				"target_audience": "general",
			}},
		}
	case plan.GoalFetchNews:
		return []plan.Step{
			{ID: 1, Action: plan.ActionSearch, Params: map[string]any{
				"source": "news_api",
				"query":  request,
				"top_k":  5,
			}},
			{ID: 2, Action: plan.ActionSummarize, Params: map[string]any{
				"style":     "bullet_points",
				"max_items": 5,
			}},
		}
	default:
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
		}
	}
}
