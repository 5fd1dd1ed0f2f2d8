package port

import (
	"context"
	"io"

	"pixgen/internal/core/domain"
)

type PromptRefiner interface {
	// RefinePrompt sends a prompt through the given chat model and returns the
	// upgraded wording from the first completion choice.
	RefinePrompt(ctx context.Context, model string, prompt string) (string, error)
}

type ImageGenerator interface {
	// GenerateImages renders count images of the given size from a prompt and
	// returns them in the order the image service produced them.
	GenerateImages(ctx context.Context, model string, prompt string, count int, size string) ([]domain.Image, error)
}

type Transcriber interface {
	// Transcribe converts spoken audio into text. The filename communicates the
	// container format to the transcription service.
	Transcribe(ctx context.Context, audio io.Reader, filename string) (string, error)
}
