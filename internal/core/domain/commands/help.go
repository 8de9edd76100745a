package commands

import (
	"context"
	"fmt"
	"foldingbot/internal/core/domain"
	"foldingbot/internal/core/port"
	"strings"
)

const (
	mentionHelpHeader = "Are you trying to use me? Tag me, tell me a command, and provide additional " +
		"information when needed."
	slashHelpHeader = "Are you trying to use me? Send me a command starting with /, and provide " +
		"additional information when needed."
)

type HelpHandler struct {
	registry port.CommandRegistry
	botName  string
}

func NewHelpHandler(registry port.CommandRegistry, botName string) *HelpHandler {
	return &HelpHandler{registry: registry, botName: botName}
}

func (h *HelpHandler) Describe() domain.Command {
	return domain.Command{
		Name:    "help",
		Summary: "Show the list of available commands",
	}
}

func (h *HelpHandler) Respond(_ context.Context, invocation *domain.Invocation) (string, error) {
	if invocation != nil && invocation.Message != nil && invocation.Message.CommandPrefix != "" {
		return FormatSlashHelp(invocation.Message.CommandPrefix, h.registry.ListCommands()), nil
	}

	return FormatHelp(h.botName, h.registry.ListCommands()), nil
}

// FormatHelp lists the given commands in the order they are passed in, for platforms where the
// bot is addressed by mentioning it.
func FormatHelp(botName string, commands []domain.Command) string {
	return formatHelp(mentionHelpHeader, "@"+botName+" ", commands)
}

// FormatSlashHelp is FormatHelp for platforms where commands start with prefix.
func FormatSlashHelp(prefix string, commands []domain.Command) string {
	return formatHelp(slashHelpHeader, prefix, commands)
}

func formatHelp(header, prefix string, commands []domain.Command) string {
	sb := &strings.Builder{}

	sb.WriteString(header + "\n\n")
	fmt.Fprintf(sb, "Usage: %s{command} {data}\n\n", prefix)
	sb.WriteString("Commands -")

	for _, cmd := range commands {
		if cmd.Usage == "" {
			fmt.Fprintf(sb, "\n\t%s - %s", cmd.Name, cmd.Summary)
			continue
		}

		fmt.Fprintf(sb, "\n\t%s %s - %s", cmd.Name, cmd.Usage, cmd.Summary)
	}

	return sb.String()
}
