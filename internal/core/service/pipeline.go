package service

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"pixgen/internal/core/domain"
	"pixgen/internal/core/port"

	"github.com/rs/zerolog/log"
)

const maxDallE2Images = 10

// Pipeline runs prompts through refinement and image generation. Model
// identifiers are guarded by a mutex and snapshotted once per run, so a
// setter never splits an in-flight generation across two models.
type Pipeline struct {
	refiner     port.PromptRefiner
	images      port.ImageGenerator
	transcriber port.Transcriber

	mutex      sync.RWMutex
	chatModel  string
	imageModel string
}

func NewPipeline(refiner port.PromptRefiner, images port.ImageGenerator, transcriber port.Transcriber,
	chatModel, imageModel string) *Pipeline {
	return &Pipeline{
		refiner:     refiner,
		images:      images,
		transcriber: transcriber,
		chatModel:   chatModel,
		imageModel:  imageModel,
	}
}

func (p *Pipeline) SetChatModel(id string) {
	p.mutex.Lock()
	p.chatModel = id
	p.mutex.Unlock()
}

func (p *Pipeline) SetImageModel(id string) {
	p.mutex.Lock()
	p.imageModel = id
	p.mutex.Unlock()
}

// Models returns the current chat and image model identifiers.
func (p *Pipeline) Models() (string, string) {
	p.mutex.RLock()
	defer p.mutex.RUnlock()
	return p.chatModel, p.imageModel
}

// GenerateFromText upgrades the prompt through the chat model, renders count
// images of the given size from the upgraded prompt, and returns the image
// URLs in the order the image service produced them. Validation failures
// surface as domain.ErrInvalidArgument before any remote call; remote
// failures propagate as-is. There are no partial results.
func (p *Pipeline) GenerateFromText(ctx context.Context, prompt string, count int, size string) ([]string, error) {
	chatModel, imageModel := p.Models()

	l := log.With().
		Str("chatModel", chatModel).
		Str("imageModel", imageModel).
		Int("count", count).
		Str("size", size).
		Logger()

	if err := validateImageCount(imageModel, count); err != nil {
		return nil, err
	}

	l.Info().Msg("refining prompt")

	refined, err := p.refiner.RefinePrompt(ctx, chatModel, domain.RefinementRequest(prompt))
	if err != nil {
		return nil, fmt.Errorf("failed to refine prompt: %w", err)
	}

	l.Debug().Str("refined", refined).Msg("prompt refined")

	images, err := p.images.GenerateImages(ctx, imageModel, refined, count, size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate images: %w", err)
	}

	urls := make([]string, len(images))
	for i, image := range images {
		urls[i] = image.URL
	}

	l.Info().Int("images", len(urls)).Msg("generation finished")

	return urls, nil
}

// GenerateFromVoice transcribes the audio file at audioPath and feeds the
// transcript into GenerateFromText.
func (p *Pipeline) GenerateFromVoice(ctx context.Context, audioPath string, count int, size string) ([]string, error) {
	transcript, err := p.transcribeFile(ctx, audioPath)
	if err != nil {
		return nil, err
	}

	log.Debug().Str("transcript", transcript).Msg("audio transcribed")

	return p.GenerateFromText(ctx, transcript, count, size)
}

func (p *Pipeline) transcribeFile(ctx context.Context, audioPath string) (string, error) {
	if !domain.ValidAudioFile(audioPath) {
		return "", fmt.Errorf("%w: not a valid audio file: %s", domain.ErrInvalidArgument, audioPath)
	}

	f, err := os.Open(audioPath)
	if err != nil {
		return "", fmt.Errorf("failed to open audio file: %w", err)
	}
	defer f.Close()

	transcript, err := p.transcriber.Transcribe(ctx, f, filepath.Base(audioPath))
	if err != nil {
		return "", fmt.Errorf("failed to transcribe audio: %w", err)
	}

	return transcript, nil
}

// validateImageCount enforces the per-model request limits. Models other than
// dall-e-2 and dall-e-3 get no count restriction beyond count >= 1.
func validateImageCount(imageModel string, count int) error {
	if count < 1 {
		return fmt.Errorf("%w: image count must be at least 1, got %d", domain.ErrInvalidArgument, count)
	}

	switch imageModel {
	case domain.ImageModelDallE3:
		if count != 1 {
			return fmt.Errorf("%w: %s generates exactly one image per request, got %d",
				domain.ErrInvalidArgument, imageModel, count)
		}
	case domain.ImageModelDallE2:
		if count > maxDallE2Images {
			return fmt.Errorf("%w: %s generates at most %d images per request, got %d",
				domain.ErrInvalidArgument, imageModel, maxDallE2Images, count)
		}
	}

	return nil
}
