package planner

import (
	"strings"

	"plandrift/internal/plan"
)

// Rule is one entry in the ordered classification table. A rule matches
// when the folded request contains at least one AnyOf needle (skipped if
// empty) and every AllOf needle. Evaluation is first match wins.
type Rule struct {
	Name  string    `json:"name"`
	Goal  plan.Goal `json:"goal"`
	AnyOf []string  `json:"any_of,omitempty"`
	AllOf []string  `json:"all_of,omitempty"`
}

// Matches reports whether the rule fires for folded, which must already
// be lower-cased by the caller.
func (r Rule) Matches(folded string) bool {
	if len(r.AnyOf) > 0 {
		hit := false
		for _, needle := range r.AnyOf {
			if strings.Contains(folded, needle) {
				hit = true
				break
			}
		}
		if !hit {
			return false
		}
	}
	for _, needle := range r.AllOf {
		if !strings.Contains(folded, needle) {
			return false
		}
	}
	return true
}

// DefaultRules returns the classification table in evaluation order. The
// paper/journal/research family is checked before everything else, so a
// request like "research report, please generate" classifies as
// find_papers even though it also names a report.
func DefaultRules() []Rule {
	return []Rule{
		{
			Name:  "papers_and_summary",
			Goal:  plan.GoalFindPapersAndSummarize,
			AnyOf: []string{"paper", "journal", "research"},
			AllOf: []string{"summar"},
		},
		{
			Name:  "papers",
			Goal:  plan.GoalFindPapers,
			AnyOf: []string{"paper", "journal", "research"},
		},
		{
			Name:  "comparison",
			Goal:  plan.GoalCompareSources,
			AnyOf: []string{"compare", "vs"},
		},
		{
			Name:  "report",
			Goal:  plan.GoalGenerateReport,
			AllOf: []string{"report", "generate"},
		},
		{
			Name:  "news",
			Goal:  plan.GoalFetchNews,
			AnyOf: []string{"news"},
		},
	}
}

// Classify folds the request to lower case and walks the rules in order,
// returning the goal of the first rule that fires. Requests matching no
// rule classify as plan.GoalGeneric. The request text itself is never
// modified.
func Classify(rules []Rule, request string) plan.Goal {
	folded := strings.ToLower(request)
	for _, r := range rules {
		if r.Matches(folded) {
			return r.Goal
		}
	}
	return plan.GoalGeneric
}
