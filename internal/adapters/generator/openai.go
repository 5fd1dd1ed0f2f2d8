package generator

import (
	"context"
	"errors"
	"fmt"
	"io"

	"pixgen/internal/core/domain"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
	"github.com/rs/zerolog/log"
)

// OpenAI provides a wrapper for the OpenAI API. It covers all three remote
// capabilities of the pipeline: chat completions for prompt refinement, image
// generation, and whisper audio transcription.
type OpenAI struct {
	client       openai.Client
	systemPrompt string
}

func NewOpenAI(apiKey, systemPrompt string, opts ...option.RequestOption) *OpenAI {
	opts = append([]option.RequestOption{option.WithAPIKey(apiKey)}, opts...)

	return &OpenAI{
		systemPrompt: systemPrompt,
		client:       openai.NewClient(opts...),
	}
}

// RefinePrompt sends the prompt through the chat model together with the
// configured system prompt. The message list is built fresh on every call.
func (g *OpenAI) RefinePrompt(ctx context.Context, model string, prompt string) (string, error) {
	resp, err := g.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(g.systemPrompt),
			openai.UserMessage(prompt),
		},
	})
	if err != nil {
		return "", fmt.Errorf("openai API error: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", errors.New("no choices returned from chat completion")
	}

	log.Debug().Str("model", resp.Model).Msg("chat completion received")

	return resp.Choices[0].Message.Content, nil
}

// GenerateImages renders count images of the given size and returns them in
// the order the API produced them.
func (g *OpenAI) GenerateImages(ctx context.Context, model string, prompt string,
	count int, size string) ([]domain.Image, error) {
	resp, err := g.client.Images.Generate(ctx, openai.ImageGenerateParams{
		Model:          openai.ImageModel(model),
		Prompt:         prompt,
		N:              openai.Int(int64(count)),
		Size:           openai.ImageGenerateParamsSize(size),
		ResponseFormat: openai.ImageGenerateParamsResponseFormatURL,
	})
	if err != nil {
		return nil, fmt.Errorf("openai API error: %w", err)
	}

	if len(resp.Data) == 0 {
		return nil, errors.New("no images returned from image generation")
	}

	images := make([]domain.Image, len(resp.Data))
	for i, image := range resp.Data {
		images[i] = domain.Image{
			URL:           image.URL,
			RevisedPrompt: image.RevisedPrompt,
		}
	}

	log.Debug().Int("images", len(images)).Msg("image generation received")

	return images, nil
}

// Transcribe converts spoken audio into text using the whisper-1 model.
func (g *OpenAI) Transcribe(ctx context.Context, audio io.Reader, filename string) (string, error) {
	resp, err := g.client.Audio.Transcriptions.New(ctx, openai.AudioTranscriptionNewParams{
		File:  openai.File(audio, filename, "application/octet-stream"),
		Model: openai.AudioModelWhisper1,
	})
	if err != nil {
		return "", fmt.Errorf("openai API error: %w", err)
	}

	log.Debug().Str("filename", filename).Msg("transcription received")

	return resp.Text, nil
}
