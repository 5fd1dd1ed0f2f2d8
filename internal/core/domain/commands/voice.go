package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"path/filepath"
	"strings"

	"pixgen/internal/adapters/file"
	"pixgen/internal/core/port"

	"github.com/rs/zerolog/log"
)

type VoiceCommand struct {
	pipeline port.ImagePipeline
	out      io.Writer
	command  string
	count    int
	size     string
}

func NewVoiceCommand(pipeline port.ImagePipeline, out io.Writer, command string,
	count int, size string) *VoiceCommand {
	return &VoiceCommand{pipeline: pipeline, out: out, command: command, count: count, size: size}
}

func (c *VoiceCommand) GetCommand() string {
	return c.command
}

// Run renders images from a spoken prompt. The argument is either a local
// audio file or an http(s) URL, which gets stashed as a temp file first.
func (c *VoiceCommand) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return errors.New("missing audio file path")
	}

	audioPath := args[0]

	l := log.With().
		Str("command", c.GetCommand()).
		Str("audio", audioPath).
		Logger()

	l.Info().Msg("handling request")

	if strings.HasPrefix(audioPath, "http://") || strings.HasPrefix(audioPath, "https://") {
		localPath, err := fetchRemoteAudio(ctx, audioPath)
		if err != nil {
			l.Error().Err(err).Msg("failed to fetch remote audio")
			return err
		}
		defer file.RemoveTempFile(localPath)
		audioPath = localPath
	}

	urls, err := c.pipeline.GenerateFromVoice(ctx, audioPath, c.count, c.size)
	if err != nil {
		l.Error().Err(err).Msg("failed to generate images")
		return err
	}

	for _, u := range urls {
		fmt.Fprintln(c.out, u)
	}

	return nil
}

func fetchRemoteAudio(ctx context.Context, rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("invalid audio URL: %w", err)
	}

	data, err := file.DownloadFile(ctx, rawURL)
	if err != nil {
		return "", err
	}

	return file.SaveTempFile(data, filepath.Ext(u.Path))
}
