package verify

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
)

var (
	reportTitleStyle = lipgloss.NewStyle().Bold(true)
	reportLabelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	reportPassStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	reportWarnStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
)

// Report compares the deterministic and baseline paths over the same
// request and trial count. It is informational output for humans, not a
// machine-parseable document.
type Report struct {
	RunID         string
	Request       string
	Trials        int
	Deterministic TrialSet
	Baseline      TrialSet
}

// NewReport stamps a fresh run ID onto the two trial sets.
func NewReport(request string, trials int, deterministic, baseline TrialSet) Report {
	return Report{
		RunID:         uuid.NewString(),
		Request:       request,
		Trials:        trials,
		Deterministic: deterministic,
		Baseline:      baseline,
	}
}

// DeterministicReproducible reports whether the deterministic path
// collapsed to exactly one plan.
func (r Report) DeterministicReproducible() bool {
	return r.Deterministic.Distinct() == 1
}

// BaselineDrifted reports whether the baseline produced more than one
// plan. This is the expected outcome of a random generator, not an
// invariant; a small sample can collapse by luck.
func (r Report) BaselineDrifted() bool {
	return r.Baseline.Distinct() > 1
}

// Render formats the report for the terminal.
func (r Report) Render() string {
	var b strings.Builder

	b.WriteString(reportTitleStyle.Render(fmt.Sprintf("Reproducibility run %s", r.RunID)))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("%s %s\n", reportLabelStyle.Render("Request:"), r.Request))
	b.WriteString(fmt.Sprintf("%s  %d\n\n", reportLabelStyle.Render("Trials:"), r.Trials))

	b.WriteString(fmt.Sprintf("%-22s %d unique plan(s) over %d runs\n",
		"Deterministic planner:", r.Deterministic.Distinct(), r.Trials))
	b.WriteString(fmt.Sprintf("%-22s %d unique plan(s) over %d runs\n\n",
		"Dynamic baseline:", r.Baseline.Distinct(), r.Trials))

	if r.DeterministicReproducible() {
		b.WriteString(reportPassStyle.Render("✓ Deterministic planner is fully reproducible for this input."))
	} else {
		b.WriteString(reportWarnStyle.Render("⚠ Deterministic planner produced more than one unique plan."))
	}
	b.WriteString("\n")

	if r.BaselineDrifted() {
		b.WriteString(reportPassStyle.Render("✓ Dynamic baseline drifts across runs (as expected)."))
	} else {
		b.WriteString(reportWarnStyle.Render("⚠ Dynamic baseline appears deterministic in this sample (could be luck)."))
	}
	b.WriteString("\n")

	return b.String()
}
