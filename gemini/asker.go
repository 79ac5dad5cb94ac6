// Package gemini provides the reading assistant backed by Google Gemini.
package gemini

import (
	"context"
	"fmt"
	"strings"

	"github.com/utrumsit/dlm"
	"google.golang.org/genai"
)

const model = "gemini-2.5-flash"

// Ensure Asker implements dlm.Asker at compile time.
var _ dlm.Asker = (*Asker)(nil)

// Asker implements dlm.Asker using Google Gemini.
type Asker struct {
	client *genai.Client
}

// NewAsker creates a new Asker.
func NewAsker(client *genai.Client) *Asker {
	return &Asker{client: client}
}

// NewClient creates a genai client from the configured API key.
func NewClient(ctx context.Context, cfg *dlm.Config) (*genai.Client, error) {
	if cfg.GoogleAPIKey == "" {
		return nil, dlm.Errorf(dlm.EUNAVAILABLE,
			"no Google API key configured. Set google_api_key in the dlm config file or GOOGLE_API_KEY in the environment")
	}
	return genai.NewClient(ctx, &genai.ClientConfig{APIKey: cfg.GoogleAPIKey})
}

// Ask answers a reading question about the supplied page context.
func (a *Asker) Ask(ctx context.Context, contextText, question string) (string, error) {
	if question == "" {
		return "", dlm.Errorf(dlm.EINVALID, "question required")
	}

	prompt := BuildUserPrompt(contextText, question)
	config := BuildConfig()

	result, err := a.client.Models.GenerateContent(ctx, model,
		[]*genai.Content{{
			Parts: []*genai.Part{{Text: prompt}},
		}},
		config,
	)
	if err != nil {
		return "", err
	}
	if result == nil {
		return "", dlm.Errorf(dlm.EINTERNAL, "gemini returned nil result")
	}

	return result.Text(), nil
}

// BuildConfig returns the GenerateContentConfig for Gemini API calls.
func BuildConfig() *genai.GenerateContentConfig {
	temp := float32(0.4)
	return &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{
				Text: "You are an expert reading assistant and tutor. The user is reading a book and has a question about the current page. Answer clearly and concisely based on the context provided. If the context contains complex math or technical terms, explain them simply when asked. If no context is provided, say so and answer from general knowledge.",
			}},
		},
		Temperature: &temp,
	}
}

// BuildUserPrompt builds the user prompt containing the page context and
// the question.
func BuildUserPrompt(contextText, question string) string {
	var sb strings.Builder
	if contextText != "" {
		sb.WriteString("<page>\n")
		sb.WriteString(contextText)
		if !strings.HasSuffix(contextText, "\n") {
			sb.WriteString("\n")
		}
		sb.WriteString("</page>\n\n")
	}
	fmt.Fprintf(&sb, "Question: %s", question)
	return sb.String()
}
