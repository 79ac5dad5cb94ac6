package gemini_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/utrumsit/dlm"
	"github.com/utrumsit/dlm/gemini"
)

func TestAsker_Ask_ReturnsErrorWhenQuestionEmpty(t *testing.T) {
	t.Parallel()

	asker := gemini.NewAsker(nil) // nil client ok for this test

	_, err := asker.Ask(context.Background(), "some page text", "")

	require.Error(t, err)
	assert.Equal(t, dlm.EINVALID, dlm.ErrorCode(err))
	assert.Contains(t, dlm.ErrorMessage(err), "question required")
}

func TestBuildUserPrompt_WithContext(t *testing.T) {
	t.Parallel()

	prompt := gemini.BuildUserPrompt("The sonata form has three sections.", "What is a recapitulation?")

	assert.Contains(t, prompt, "<page>\nThe sonata form has three sections.\n</page>")
	assert.Contains(t, prompt, "Question: What is a recapitulation?")
}

func TestBuildUserPrompt_WithoutContext(t *testing.T) {
	t.Parallel()

	prompt := gemini.BuildUserPrompt("", "What is a fugue?")

	assert.NotContains(t, prompt, "<page>")
	assert.Equal(t, "Question: What is a fugue?", prompt)
}

func TestBuildConfig(t *testing.T) {
	t.Parallel()

	config := gemini.BuildConfig()

	require.NotNil(t, config.Temperature)
	assert.InDelta(t, 0.4, float64(*config.Temperature), 0.001)
	require.NotNil(t, config.SystemInstruction)
	assert.Contains(t, config.SystemInstruction.Parts[0].Text, "reading assistant")
}

func TestNewClient_RequiresAPIKey(t *testing.T) {
	t.Parallel()

	cfg := dlm.DefaultConfig()

	_, err := gemini.NewClient(context.Background(), &cfg)

	require.Error(t, err)
	assert.Equal(t, dlm.EUNAVAILABLE, dlm.ErrorCode(err))
	assert.Contains(t, dlm.ErrorMessage(err), "GOOGLE_API_KEY")
}
