package assistant

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"github.com/wagneradl/mission-control/internal/config"
	"github.com/wagneradl/mission-control/internal/domain"
	"google.golang.org/api/option"
)

const systemPrompt = "You are the assistant behind a personal mission control dashboard. " +
	"Answer the operator's latest message concisely, using the conversation so far for context."

// GeminiResponder generates assistant replies with the Gemini API.
type GeminiResponder struct {
	apiKey string
	model  string
}

// NewGeminiResponder creates a new Gemini responder
func NewGeminiResponder(cfg config.AssistantConfig) *GeminiResponder {
	return &GeminiResponder{
		apiKey: cfg.APIKey,
		model:  cfg.Model,
	}
}

func (r *GeminiResponder) IsConfigured() bool {
	return r.apiKey != ""
}

// Reply generates a response to the latest user message in history.
func (r *GeminiResponder) Reply(ctx context.Context, history []domain.ChatMessage) (string, error) {
	if !r.IsConfigured() {
		return "", fmt.Errorf("gemini responder is not configured (missing API key)")
	}

	model := r.model
	if model == "" {
		model = "gemini-2.5-flash"
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(r.apiKey))
	if err != nil {
		return "", fmt.Errorf("failed to create gemini client: %w", err)
	}
	defer client.Close()

	generativeModel := client.GenerativeModel(model)

	resp, err := generativeModel.GenerateContent(ctx, genai.Text(buildPrompt(history)))
	if err != nil {
		return "", fmt.Errorf("gemini generation error: %w", err)
	}

	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("empty response from gemini")
	}

	var output string
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			output += string(text)
		}
	}

	output = strings.TrimSpace(output)
	if output == "" {
		return "", fmt.Errorf("empty response from gemini")
	}
	return output, nil
}

// buildPrompt flattens the conversation into a single transcript prompt.
func buildPrompt(history []domain.ChatMessage) string {
	var b strings.Builder
	b.WriteString(systemPrompt)
	b.WriteString("\n\n")
	for _, msg := range history {
		b.WriteString(msg.Role)
		b.WriteString(": ")
		b.WriteString(msg.Content)
		b.WriteString("\n")
	}
	b.WriteString("assistant:")
	return b.String()
}
