// Package remote is the documented extension point for planning against
// a hosted model service. It is intentionally unimplemented: Generate
// fails with a typed NOT_IMPLEMENTED error before any network call, so
// the repo stays model-agnostic and credential-free. BuildMessages shows
// exactly what a finished integration would send.
package remote

import (
	"context"
	"fmt"
	"strings"

	"github.com/tmc/langchaingo/llms"
	"go.uber.org/zap"

	"plandrift/internal/plan"
)

// systemPrompt frames the request for a hosted planner. A finished
// integration sends these messages through llms.Model.GenerateContent
// and parses the response into a plan.Plan.
const systemPrompt = `You are a planning service. Decompose the user's request into an ordered list of steps. ` +
	`Respond with a single JSON object holding goal, original_request, steps (each with id, action, params) ` +
	`and constraints (max_latency_ms, must_be_reproducible). Do not execute any step.`

// Planner satisfies the same generator contract as the deterministic
// planner and the drift baseline, so a finished integration can be
// measured by the reproducibility harness unchanged.
type Planner struct {
	model  llms.Model
	name   string
	region string
	logger *zap.Logger
}

// New returns the placeholder planner. model may be nil; it is never
// called.
func New(model llms.Model, name, region string, logger *zap.Logger) *Planner {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Planner{model: model, name: name, region: region, logger: logger}
}

// Generate always fails with NOT_IMPLEMENTED. It never touches the
// network and never fabricates a plan.
func (p *Planner) Generate(ctx context.Context, request string) (plan.Plan, error) {
	p.logger.Debug("Remote planning requested",
		zap.String("model", p.name),
		zap.String("region", p.region))

	return plan.Plan{}, NewError(NOT_IMPLEMENTED,
		fmt.Sprintf("remote planner %q (region %q) is a placeholder; wire an llms.Model integration to enable it", p.name, p.region))
}

// BuildMessages assembles the conversation a finished integration would
// send for a request.
func BuildMessages(request string) []llms.MessageContent {
	return []llms.MessageContent{
		{
			Role:  llms.ChatMessageTypeSystem,
			Parts: []llms.ContentPart{llms.TextPart(systemPrompt)},
		},
		{
			Role:  llms.ChatMessageTypeHuman,
			Parts: []llms.ContentPart{llms.TextPart(request)},
		},
	}
}

// RenderMessages formats a conversation for the terminal, one
// role-tagged block per message. Non-text parts are skipped.
func RenderMessages(messages []llms.MessageContent) string {
	var b strings.Builder
	for i, m := range messages {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(fmt.Sprintf("[%s]\n", strings.ToUpper(string(m.Role))))
		for _, part := range m.Parts {
			if text, ok := part.(llms.TextContent); ok {
				b.WriteString(text.Text)
				b.WriteString("\n")
			}
		}
	}
	return b.String()
}
