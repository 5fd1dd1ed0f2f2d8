package generator

import (
	"context"
	"errors"
	"testing"

	"github.com/revrost/go-openrouter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockClient is a test double for the openRouterClient interface.
type mockClient struct {
	createChatCompletionFunc func(ctx context.Context,
		ccr openrouter.ChatCompletionRequest) (openrouter.ChatCompletionResponse, error)
}

func (m *mockClient) CreateChatCompletion(ctx context.Context,
	ccr openrouter.ChatCompletionRequest) (openrouter.ChatCompletionResponse, error) {
	return m.createChatCompletionFunc(ctx, ccr)
}

func TestOpenRouter_RefinePrompt(t *testing.T) {
	testCases := []struct {
		name         string
		systemPrompt string
		prompt       string
		mockResp     openrouter.ChatCompletionResponse
		mockErr      error
		want         string
		expectErr    bool
	}{
		{
			name:         "success",
			systemPrompt: "system",
			prompt:       "a red fox",
			mockResp: openrouter.ChatCompletionResponse{
				Choices: []openrouter.ChatCompletionChoice{{
					Message: openrouter.ChatCompletionMessage{
						Content: openrouter.Content{Text: "a red fox in a snowy forest"},
					},
				}},
				Model: "openai/gpt-4.1",
			},
			want:      "a red fox in a snowy forest",
			expectErr: false,
		},
		{
			name:         "API error returned",
			systemPrompt: "system",
			prompt:       "fail",
			mockErr:      errors.New("api failure"),
			expectErr:    true,
		},
		{
			name:         "no choices returned",
			systemPrompt: "system",
			prompt:       "empty",
			mockResp:     openrouter.ChatCompletionResponse{},
			expectErr:    true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var gotRequest openrouter.ChatCompletionRequest
			mock := &mockClient{
				createChatCompletionFunc: func(_ context.Context,
					ccr openrouter.ChatCompletionRequest) (openrouter.ChatCompletionResponse, error) {
					gotRequest = ccr
					return tc.mockResp, tc.mockErr
				},
			}
			gen := &OpenRouter{
				client:       mock,
				systemPrompt: tc.systemPrompt,
			}

			got, err := gen.RefinePrompt(t.Context(), "openai/gpt-4.1", tc.prompt)
			if tc.expectErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.want, got)

			assert.Equal(t, "openai/gpt-4.1", gotRequest.Model)
			require.Len(t, gotRequest.Messages, 2)
			assert.Equal(t, openrouter.ChatMessageRoleSystem, gotRequest.Messages[0].Role)
			assert.Equal(t, tc.systemPrompt, gotRequest.Messages[0].Content.Text)
			assert.Equal(t, openrouter.ChatMessageRoleUser, gotRequest.Messages[1].Role)
			assert.Equal(t, tc.prompt, gotRequest.Messages[1].Content.Text)
		})
	}
}
