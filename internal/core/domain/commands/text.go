package commands

import (
	"context"
	"fmt"
	"io"
	"strings"

	"pixgen/internal/core/domain"
	"pixgen/internal/core/port"

	"github.com/rs/zerolog/log"
)

type TextCommand struct {
	pipeline port.ImagePipeline
	out      io.Writer
	command  string
	count    int
	size     string
}

func NewTextCommand(pipeline port.ImagePipeline, out io.Writer, command string,
	count int, size string) *TextCommand {
	return &TextCommand{pipeline: pipeline, out: out, command: command, count: count, size: size}
}

func (c *TextCommand) GetCommand() string {
	return c.command
}

func (c *TextCommand) Run(ctx context.Context, args []string) error {
	prompt := strings.TrimSpace(strings.Join(args, " "))
	if prompt == "" {
		return domain.ErrEmptyPrompt
	}

	l := log.With().
		Str("command", c.GetCommand()).
		Str("prompt", prompt).
		Logger()

	l.Info().Msg("handling request")

	urls, err := c.pipeline.GenerateFromText(ctx, prompt, c.count, c.size)
	if err != nil {
		l.Error().Err(err).Msg("failed to generate images")
		return err
	}

	for _, url := range urls {
		fmt.Fprintln(c.out, url)
	}

	return nil
}
