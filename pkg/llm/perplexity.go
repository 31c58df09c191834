package llm

import (
	"context"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
)

const perplexityBaseURL = "https://api.perplexity.ai"

// PerplexityClient talks to the Perplexity chat API, which is
// OpenAI-compatible, through the go-openai client with a custom base URL.
type PerplexityClient struct {
	client *openai.Client
	model  string
}

func NewPerplexityClient(apiKey, model string) *PerplexityClient {
	if model == "" {
		model = "sonar"
	}
	cfg := openai.DefaultConfig(apiKey)
	cfg.BaseURL = perplexityBaseURL
	return &PerplexityClient{
		client: openai.NewClientWithConfig(cfg),
		model:  model,
	}
}

func (p *PerplexityClient) Complete(ctx context.Context, system, user string) (string, error) {
	resp, err := p.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: p.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: system},
			{Role: openai.ChatMessageRoleUser, Content: user},
		},
		Temperature: 0.7,
	})
	if err != nil {
		return "", fmt.Errorf("perplexity: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("perplexity: no choices in reply")
	}
	return resp.Choices[0].Message.Content, nil
}
