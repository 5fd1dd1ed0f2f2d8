package port

import "context"

type Command interface {
	// Run executes the command with the raw arguments following its name.
	Run(ctx context.Context, args []string) error
	// GetCommand retrieves the name this command is invoked by.
	GetCommand() string
}

type CommandRegistry interface {
	// Register adds a new command to the registry.
	Register(command Command)
	// Get retrieves a registered Command by name or returns an error if not found.
	Get(name string) (Command, error)
	// ListCommands returns the names of all registered commands.
	ListCommands() []string
}
