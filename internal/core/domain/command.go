package domain

import (
	"fmt"
	"strings"
)

// Command describes a user-invocable action. Name is matched case-insensitively.
type Command struct {
	Name        string
	Summary     string
	Usage       string
	Aliases     []string
	AdminOnly   bool
	Hidden      bool
	LongRunning bool
	Development bool
}

// Names returns the lower-cased name followed by the lower-cased aliases.
func (c Command) Names() []string {
	names := make([]string, 0, len(c.Aliases)+1)
	names = append(names, NormalizeCommand(c.Name))
	for _, alias := range c.Aliases {
		names = append(names, NormalizeCommand(alias))
	}

	return names
}

// UsageReply is the reply sent when a command is invoked without its required arguments.
func (c Command) UsageReply() string {
	if c.Usage == "" {
		return fmt.Sprintf("Usage: %s", c.Name)
	}

	return fmt.Sprintf("Usage: %s %s", c.Name, c.Usage)
}

// NormalizeCommand lower-cases a command name and collapses runs of whitespace.
func NormalizeCommand(name string) string {
	return strings.ToLower(strings.Join(strings.Fields(name), " "))
}

// FirstArg returns the first whitespace separated word of args.
func FirstArg(args string) string {
	fields := strings.Fields(args)
	if len(fields) == 0 {
		return ""
	}

	return fields[0]
}
