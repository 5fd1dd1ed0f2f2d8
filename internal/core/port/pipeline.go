package port

import "context"

type ImagePipeline interface {
	// GenerateFromText renders images from a text prompt and returns their URLs.
	GenerateFromText(ctx context.Context, prompt string, count int, size string) ([]string, error)
	// GenerateFromVoice transcribes the audio file at audioPath and renders
	// images from the transcript.
	GenerateFromVoice(ctx context.Context, audioPath string, count int, size string) ([]string, error)
}
