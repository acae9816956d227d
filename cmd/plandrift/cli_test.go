package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"plandrift/internal/config"
	"plandrift/internal/plan"
	"plandrift/internal/planner"
	"plandrift/internal/remote"
)

// TestRootRequiresGoal runs first: it needs the root command's flag set
// in its pristine state.
func TestRootRequiresGoal(t *testing.T) {
	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs([]string{})

	err := rootCmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "goal")
	assert.Empty(t, out.String(), "no plan may be produced without --goal")
}

func TestRootExecuteWritesOneJSONDocument(t *testing.T) {
	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs([]string{"--goal", "Today's news"})

	require.NoError(t, rootCmd.Execute())

	dec := json.NewDecoder(strings.NewReader(out.String()))
	var doc map[string]any
	require.NoError(t, dec.Decode(&doc))
	assert.Equal(t, "fetch_news", doc["goal"])
	assert.Equal(t, "Today's news", doc["original_request"])

	var extra map[string]any
	assert.Equal(t, io.EOF, dec.Decode(&extra), "stdout must hold exactly one JSON document")
}

func newCaptureCmd() (*cobra.Command, *bytes.Buffer) {
	cmd := &cobra.Command{}
	cmd.SetContext(context.Background())
	buf := &bytes.Buffer{}
	cmd.SetOut(buf)
	return cmd, buf
}

func TestRunPlanCompact(t *testing.T) {
	logger = zap.NewNop()
	cfg = config.DefaultConfig()
	goal = "Hello there"
	pretty = false
	defer func() { goal = ""; pretty = false }()

	cmd, buf := newCaptureCmd()
	require.NoError(t, runPlan(cmd, nil))

	out := buf.String()
	assert.Equal(t, 1, strings.Count(out, "\n"), "compact output is a single line")
	assert.True(t, strings.HasPrefix(out, `{"goal":"generic_information_task","original_request":"Hello there"`),
		"schema field order starts with goal then original_request, got: %s", out)
	assert.Contains(t, out, `"max_latency_ms":8000`)
	assert.Contains(t, out, `"must_be_reproducible":true`)
}

func TestRunPlanPretty(t *testing.T) {
	logger = zap.NewNop()
	cfg = config.DefaultConfig()
	goal = "Hello there"
	pretty = true
	defer func() { goal = ""; pretty = false }()

	cmd, buf := newCaptureCmd()
	require.NoError(t, runPlan(cmd, nil))

	lines := strings.Split(buf.String(), "\n")
	assert.Equal(t, "{", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], `  "goal"`), "two-space indent, got: %q", lines[1])
}

func TestRunPlanKeepsUnicode(t *testing.T) {
	logger = zap.NewNop()
	cfg = config.DefaultConfig()
	goal = "résumé the 東京 talks"
	pretty = false
	defer func() { goal = "" }()

	cmd, buf := newCaptureCmd()
	require.NoError(t, runPlan(cmd, nil))

	assert.Contains(t, buf.String(), "résumé the 東京 talks")
	assert.NotContains(t, buf.String(), `\u`)
}

func TestRunPlanIsByteStable(t *testing.T) {
	logger = zap.NewNop()
	cfg = config.DefaultConfig()
	goal = "Compare vs baseline methods"
	pretty = false
	defer func() { goal = "" }()

	cmd1, buf1 := newCaptureCmd()
	require.NoError(t, runPlan(cmd1, nil))
	cmd2, buf2 := newCaptureCmd()
	require.NoError(t, runPlan(cmd2, nil))

	assert.Equal(t, buf1.String(), buf2.String())
}

func TestRunVerify(t *testing.T) {
	logger = zap.NewNop()
	cfg = config.DefaultConfig()
	verifyGoal = "Find 3 recent papers on deterministic AI agents and summarize the key patterns."
	defer func() { verifyGoal = "" }()

	cmd, buf := newCaptureCmd()
	require.NoError(t, runVerify(cmd, nil))

	out := buf.String()
	assert.Contains(t, out, "Reproducibility run")
	assert.Contains(t, out, verifyGoal)
	assert.Contains(t, out, "1 unique plan(s) over 10 runs")
	assert.Contains(t, out, "✓ Deterministic planner is fully reproducible")
	assert.Contains(t, out, "Dynamic baseline")
}

func TestRunRulesText(t *testing.T) {
	logger = zap.NewNop()
	cfg = config.DefaultConfig()
	rulesOutput = "text"

	cmd, buf := newCaptureCmd()
	require.NoError(t, runRules(cmd, nil))

	out := buf.String()
	assert.Contains(t, out, "Classification rules (first match wins):")
	assert.Contains(t, out, "papers_and_summary")
	assert.Contains(t, out, "any of: paper, journal, research")
	assert.Contains(t, out, "Fallback: generic_information_task")
}

func TestRunRulesJSON(t *testing.T) {
	logger = zap.NewNop()
	cfg = config.DefaultConfig()
	rulesOutput = "json"
	defer func() { rulesOutput = "text" }()

	cmd, buf := newCaptureCmd()
	require.NoError(t, runRules(cmd, nil))

	var doc struct {
		Rules    []planner.Rule `json:"rules"`
		Fallback plan.Goal      `json:"fallback"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))
	assert.Len(t, doc.Rules, 5)
	assert.Equal(t, plan.GoalGeneric, doc.Fallback)
	assert.Equal(t, plan.GoalFindPapersAndSummarize, doc.Rules[0].Goal)
}

func TestRunRulesRejectsUnknownFormat(t *testing.T) {
	logger = zap.NewNop()
	cfg = config.DefaultConfig()
	rulesOutput = "xml"
	defer func() { rulesOutput = "text" }()

	cmd, _ := newCaptureCmd()
	assert.ErrorContains(t, runRules(cmd, nil), "unknown output format")
}

func TestRunRemoteFailsNotImplemented(t *testing.T) {
	logger = zap.NewNop()
	cfg = config.DefaultConfig()
	remoteGoal = "Today's news"
	defer func() { remoteGoal = "" }()

	cmd, buf := newCaptureCmd()
	err := runRemote(cmd, nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, remote.ErrNotImplemented))
	assert.Contains(t, err.Error(), "NOT_IMPLEMENTED")
	assert.Contains(t, err.Error(), "bedrock-agent")

	out := buf.String()
	assert.Contains(t, out, "[SYSTEM]")
	assert.Contains(t, out, "[HUMAN]\nToday's news")
}
