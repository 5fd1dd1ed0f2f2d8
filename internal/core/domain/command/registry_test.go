package command

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type MockCommand struct {
	command string
}

func (m *MockCommand) Run(_ context.Context, _ []string) error {
	return nil
}

func (m *MockCommand) GetCommand() string {
	return m.command
}

func TestRegister(t *testing.T) {
	r := &Registry{}
	mc := &MockCommand{command: "text"}

	r.Register(mc)
	assert.Len(t, r.commands, 1)
}

func TestGetNotRegistered(t *testing.T) {
	r := &Registry{}

	_, err := r.Get("text")
	require.Errorf(t, err, "can't fetch command, registry not initialized")
}

func TestGetCommandNotFound(t *testing.T) {
	r := &Registry{}
	mc := &MockCommand{command: "text"}

	r.Register(mc)

	_, err := r.Get("draw")
	require.Errorf(t, err, "command not found")
}

func TestGetCommandFound(t *testing.T) {
	r := &Registry{}
	mc := &MockCommand{command: "text"}

	r.Register(mc)

	cmd, err := r.Get("text")
	require.NoError(t, err)
	assert.Equal(t, "text", cmd.GetCommand())
}

func TestGetCommandCaseInsensitive(t *testing.T) {
	r := &Registry{}
	mc := &MockCommand{command: "voice"}

	r.Register(mc)

	cmd, err := r.Get("VOICE")
	require.NoError(t, err)
	assert.Equal(t, "voice", cmd.GetCommand())
}

func TestListCommands(t *testing.T) {
	r := &Registry{}

	r.Register(&MockCommand{command: "text"})
	r.Register(&MockCommand{command: "voice"})

	list := r.ListCommands()

	assert.Len(t, list, 2)
	assert.Contains(t, list, "text")
	assert.Contains(t, list, "voice")
}
