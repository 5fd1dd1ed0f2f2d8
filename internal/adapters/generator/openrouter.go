package generator

import (
	"context"
	"errors"
	"fmt"

	"github.com/revrost/go-openrouter"
)

// openRouterClient is the slice of the OpenRouter SDK the refiner needs.
type openRouterClient interface {
	CreateChatCompletion(ctx context.Context,
		request openrouter.ChatCompletionRequest) (openrouter.ChatCompletionResponse, error)
}

// OpenRouter is an alternate prompt refiner backed by the OpenRouter API.
type OpenRouter struct {
	client       openRouterClient
	systemPrompt string
}

func NewOpenRouter(apiKey, systemPrompt string) *OpenRouter {
	return &OpenRouter{
		systemPrompt: systemPrompt,
		client: openrouter.NewClient(
			apiKey,
			openrouter.WithXTitle("pixgen"),
		),
	}
}

func (g *OpenRouter) RefinePrompt(ctx context.Context, model string, prompt string) (string, error) {
	ccr := openrouter.ChatCompletionRequest{
		Model: model,
		Messages: []openrouter.ChatCompletionMessage{
			{
				Role: openrouter.ChatMessageRoleSystem,
				Content: openrouter.Content{
					Text: g.systemPrompt,
				},
			},
			{
				Role: openrouter.ChatMessageRoleUser,
				Content: openrouter.Content{
					Text: prompt,
				},
			},
		},
	}

	resp, err := g.client.CreateChatCompletion(ctx, ccr)
	if err != nil {
		return "", fmt.Errorf("openrouter API error: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", errors.New("no choices returned from chat completion")
	}

	return resp.Choices[0].Message.Content.Text, nil
}
