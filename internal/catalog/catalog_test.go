package catalog

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tradingagents/internal/types"
)

func TestDefaultValidates(t *testing.T) {
	require.NoError(t, Default().Validate())
}

func TestEveryProviderHasModels(t *testing.T) {
	c := Default()
	for _, p := range c.Providers() {
		shallow, err := c.ShallowModels(p.Value.ID)
		require.NoError(t, err, p.Value.ID)
		assert.NotEmpty(t, shallow, p.Value.ID)

		deep, err := c.DeepModels(p.Value.ID)
		require.NoError(t, err, p.Value.ID)
		assert.NotEmpty(t, deep, p.Value.ID)

		tr, err := c.TranslationModels(p.Value.ID)
		require.NoError(t, err, p.Value.ID)
		assert.NotEmpty(t, tr, p.Value.ID)
	}
}

func TestProviderLookupIgnoresCase(t *testing.T) {
	c := Default()

	upper, err := c.ShallowModels("OpenAI")
	require.NoError(t, err)
	lower, err := c.ShallowModels("openai")
	require.NoError(t, err)
	assert.Equal(t, lower, upper)

	p, err := c.Provider("  Openrouter ")
	require.NoError(t, err)
	assert.Equal(t, "https://openrouter.ai/api/v1", p.URL)
}

func TestUnknownProviderFailsFast(t *testing.T) {
	c := Default()

	_, err := c.DeepModels("mistral")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownProvider))
	assert.Contains(t, err.Error(), "deep models")

	_, err = c.Provider("mistral")
	assert.True(t, errors.Is(err, ErrUnknownProvider))
}

func TestValidateReportsMissingEntry(t *testing.T) {
	c := Default()
	delete(c.translationModels, ProviderOllama)

	err := c.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), `translation models: no entry for provider "ollama"`)
}

func TestOrderingPreserved(t *testing.T) {
	c := Default()

	depths := c.Depths()
	require.Len(t, depths, 3)
	assert.Equal(t, []int{1, 3, 5}, []int{depths[0].Value, depths[1].Value, depths[2].Value})

	analysts := c.Analysts()
	assert.Equal(t, types.AnalystMarket, analysts[0].Value)
	assert.Equal(t, types.AnalystFundamentals, analysts[3].Value)

	tr, err := c.TranslationModels("openai")
	require.NoError(t, err)
	assert.Equal(t, "gpt-5-mini", tr[0].Value)

	formats := c.Formats()
	assert.Equal(t, FormatChoice{types.FormatMarkdown}, formats[0].Value)
	assert.Equal(t, FormatChoice{types.FormatMarkdown, types.FormatHTML}, formats[2].Value)
}

func TestAccessorsReturnCopies(t *testing.T) {
	c := Default()

	models, err := c.ShallowModels("openai")
	require.NoError(t, err)
	models[0].Value = "tampered"

	again, err := c.ShallowModels("openai")
	require.NoError(t, err)
	assert.Equal(t, "gpt-5", again[0].Value)

	formats := c.Formats()
	formats[2].Value[0] = types.FormatHTML
	assert.Equal(t, types.FormatMarkdown, c.Formats()[2].Value[0])
}

func TestLabels(t *testing.T) {
	assert.Equal(t, []string{"language_english", "language_chinese"}, Labels(Default().Languages()))
}
