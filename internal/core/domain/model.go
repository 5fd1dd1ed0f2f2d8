package domain

import "fmt"

const (
	ImageModelDallE2 = "dall-e-2"
	ImageModelDallE3 = "dall-e-3"
)

const (
	Size256  = "256x256"
	Size512  = "512x512"
	Size1024 = "1024x1024"
)

// Image is a single generated image as returned by the image service.
type Image struct {
	URL           string
	RevisedPrompt string
}

// SizeFromScale maps a size scale (0, 1, 2) to the square pixel dimensions
// the image service expects: 256x256, 512x512, 1024x1024.
func SizeFromScale(scale int) string {
	px := 256 << scale
	return fmt.Sprintf("%dx%d", px, px)
}
