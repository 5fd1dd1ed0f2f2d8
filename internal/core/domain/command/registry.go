package command

import (
	"errors"
	"strings"

	"pixgen/internal/core/port"

	"github.com/rs/zerolog/log"
)

type Registry struct {
	commands map[string]port.Command
}

func (r *Registry) Register(command port.Command) {
	if r.commands == nil {
		r.commands = make(map[string]port.Command)
	}

	log.Info().Str("command", command.GetCommand()).Msg("adding command to registry")
	r.commands[command.GetCommand()] = command
}

func (r *Registry) Get(name string) (port.Command, error) {
	log.Debug().Str("command", name).Msg("fetching command from registry")

	if r.commands == nil {
		return nil, errors.New("can't fetch command, registry not initialized")
	}

	command, ok := r.commands[strings.ToLower(name)]
	if !ok {
		return nil, errors.New("command not found")
	}

	return command, nil
}

func (r *Registry) ListCommands() []string {
	keys := make([]string, len(r.commands))

	i := 0
	for k := range r.commands {
		keys[i] = k
		i++
	}

	return keys
}
