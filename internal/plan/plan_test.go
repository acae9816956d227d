package plan

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReproducibleConstraints(t *testing.T) {
	c := Reproducible()

	require.NotNil(t, c.MaxLatencyMS)
	assert.Equal(t, DefaultMaxLatencyMS, *c.MaxLatencyMS)
	assert.True(t, c.MustBeReproducible)
}

func TestZeroConstraintsAreUnbudgeted(t *testing.T) {
	var c Constraints

	assert.Nil(t, c.MaxLatencyMS)
	assert.False(t, c.MustBeReproducible)
}

func TestValidateSteps(t *testing.T) {
	t.Run("contiguous ids pass", func(t *testing.T) {
		p := Plan{Steps: []Step{
			{ID: 1, Action: ActionSearch},
			{ID: 2, Action: ActionSummarize},
			{ID: 3, Action: ActionWrite},
		}}
		assert.NoError(t, p.ValidateSteps())
	})

	t.Run("empty plan passes", func(t *testing.T) {
		assert.NoError(t, Plan{}.ValidateSteps())
	})

	t.Run("shuffled ids fail", func(t *testing.T) {
		p := Plan{Steps: []Step{
			{ID: 2, Action: ActionSearch},
			{ID: 1, Action: ActionSummarize},
		}}
		err := p.ValidateSteps()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "position 0")
	})

	t.Run("gap in ids fails", func(t *testing.T) {
		p := Plan{Steps: []Step{
			{ID: 1, Action: ActionSearch},
			{ID: 3, Action: ActionSummarize},
		}}
		assert.Error(t, p.ValidateSteps())
	})
}

func TestCloneIsDeep(t *testing.T) {
	orig := Plan{
		Goal:            GoalFetchNews,
		OriginalRequest: "latest news",
		Steps: []Step{
			{ID: 1, Action: ActionSearch, Params: map[string]any{
				"source": "news",
				"query":  "latest news",
				"fields": []string{"name", "role"},
			}},
		},
		Constraints: Reproducible(),
	}

	cp := orig.Clone()
	cp.Steps[0].Params["query"] = "changed"
	cp.Steps[0].Params["fields"].([]string)[0] = "changed"
	*cp.Constraints.MaxLatencyMS = 1

	assert.Equal(t, "latest news", orig.Steps[0].Params["query"])
	assert.Equal(t, "name", orig.Steps[0].Params["fields"].([]string)[0])
	assert.Equal(t, DefaultMaxLatencyMS, *orig.Constraints.MaxLatencyMS)
}

func TestCloneStepsPreservesNil(t *testing.T) {
	assert.Nil(t, CloneSteps(nil))
	assert.Nil(t, cloneParams(nil))
}
