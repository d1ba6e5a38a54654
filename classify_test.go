package agentskills_test

import (
	"testing"

	agentskills "github.com/IAFahim/agent-skills"
	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		label string
		want  agentskills.Polarity
	}{
		{name: "incorrect is negative", label: "Incorrect", want: agentskills.PolarityNegative},
		{name: "incorrect with reason is negative", label: "Incorrect (sequential execution, 3 round trips)", want: agentskills.PolarityNegative},
		{name: "wrong is negative", label: "Wrong way", want: agentskills.PolarityNegative},
		{name: "bad is negative", label: "Bad", want: agentskills.PolarityNegative},
		{name: "correct is positive", label: "Correct", want: agentskills.PolarityPositive},
		{name: "good is positive", label: "Good example", want: agentskills.PolarityPositive},
		{name: "case insensitive", label: "CORRECT (parallel)", want: agentskills.PolarityPositive},
		{name: "negative wins over good", label: "Good, but incorrect usage", want: agentskills.PolarityNegative},
		{name: "negative wins over correct", label: "Correct-looking but wrong", want: agentskills.PolarityNegative},
		{name: "substring match inside word", label: "Badly named", want: agentskills.PolarityNegative},
		{name: "best is excluded", label: "Best", want: agentskills.PolarityExcluded},
		{name: "alternative is excluded", label: "Alternative", want: agentskills.PolarityExcluded},
		{name: "empty label is excluded", label: "", want: agentskills.PolarityExcluded},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, agentskills.Classify(tt.label))
		})
	}
}

func TestPolarity_CaseType(t *testing.T) {
	t.Parallel()

	t.Run("negative maps to bad", func(t *testing.T) {
		t.Parallel()

		typ, ok := agentskills.PolarityNegative.CaseType()

		assert.True(t, ok)
		assert.Equal(t, agentskills.CaseBad, typ)
	})

	t.Run("positive maps to good", func(t *testing.T) {
		t.Parallel()

		typ, ok := agentskills.PolarityPositive.CaseType()

		assert.True(t, ok)
		assert.Equal(t, agentskills.CaseGood, typ)
	})

	t.Run("excluded has no case type", func(t *testing.T) {
		t.Parallel()

		_, ok := agentskills.PolarityExcluded.CaseType()

		assert.False(t, ok)
	})
}

func TestPolarity_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "positive", agentskills.PolarityPositive.String())
	assert.Equal(t, "negative", agentskills.PolarityNegative.String())
	assert.Equal(t, "excluded", agentskills.PolarityExcluded.String())
}
