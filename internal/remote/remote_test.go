package remote

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tmc/langchaingo/llms"
	"go.uber.org/zap"

	"plandrift/internal/plan"
)

func TestGenerateFailsWithNotImplemented(t *testing.T) {
	p := New(nil, "bedrock-agent", "us-east-1", zap.NewNop())

	got, err := p.Generate(context.Background(), "plan something")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotImplemented)
	assert.Contains(t, err.Error(), "bedrock-agent")
	assert.Contains(t, err.Error(), "us-east-1")
	assert.Equal(t, plan.Plan{}, got)
}

func TestGenerateFailsEvenWithNilLogger(t *testing.T) {
	p := New(nil, "m", "r", nil)

	_, err := p.Generate(context.Background(), "x")
	assert.ErrorIs(t, err, ErrNotImplemented)
}

func TestBuildMessages(t *testing.T) {
	msgs := BuildMessages("Find papers on X")

	require.Len(t, msgs, 2)
	assert.Equal(t, llms.ChatMessageTypeSystem, msgs[0].Role)
	assert.Equal(t, llms.ChatMessageTypeHuman, msgs[1].Role)

	require.Len(t, msgs[1].Parts, 1)
	human, ok := msgs[1].Parts[0].(llms.TextContent)
	require.True(t, ok)
	assert.Equal(t, "Find papers on X", human.Text)
}

func TestRenderMessages(t *testing.T) {
	out := RenderMessages(BuildMessages("Find papers on X"))

	sys := strings.Index(out, "[SYSTEM]")
	human := strings.Index(out, "[HUMAN]")
	require.GreaterOrEqual(t, sys, 0)
	require.Greater(t, human, sys)
	assert.Contains(t, out, "planning service")
	assert.Contains(t, out, "[HUMAN]\nFind papers on X")
}

func TestErrorFormatting(t *testing.T) {
	e := NewError(NOT_IMPLEMENTED, "nope")
	assert.Equal(t, "[NOT_IMPLEMENTED] nope", e.Error())

	wrapped := WrapError(NOT_IMPLEMENTED, "nope", errors.New("inner"))
	assert.Equal(t, "[NOT_IMPLEMENTED] nope: inner", wrapped.Error())
	assert.Equal(t, "inner", errors.Unwrap(wrapped).Error())
}

func TestErrorIsMatchesByCode(t *testing.T) {
	e := NewError(NOT_IMPLEMENTED, "custom message")
	assert.ErrorIs(t, e, ErrNotImplemented)

	other := NewError(ErrorCode("OTHER"), "custom message")
	assert.False(t, errors.Is(other, ErrNotImplemented))
}
