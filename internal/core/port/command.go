package port

import (
	"context"
	"foldingbot/internal/core/domain"
)

type Command interface {
	// Respond builds the reply text for an invocation of the command.
	Respond(ctx context.Context, invocation *domain.Invocation) (string, error)
	// Describe returns the static descriptor of the command.
	Describe() domain.Command
}

type CommandRegistry interface {
	// Register adds a new command handler to the command registry.
	Register(handler Command)
	// Get retrieves a registered Command by name or alias or returns an error if not found.
	Get(command string) (Command, error)
	// Match resolves the command addressed by text and returns it with the remaining argument text.
	Match(text string) (Command, string, error)
	// ListCommands returns the descriptors of all registered commands sorted by name.
	ListCommands() []domain.Command
}

type CommandToggler interface {
	// Disable adds a command name to the disabled set and reports whether it was accepted.
	Disable(name string) bool
	// Enable removes a command name from the disabled set.
	Enable(name string)
	// IsDisabled reports whether a command name is in the disabled set.
	IsDisabled(name string) bool
	// List returns the disabled command names.
	List() []string
}

type Guard interface {
	// TryAcquire takes the single long-running slot and reports whether it did.
	TryAcquire() bool
	// Release frees the slot.
	Release()
}
