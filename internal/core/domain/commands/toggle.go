package commands

import (
	"context"
	"foldingbot/internal/core/domain"
	"foldingbot/internal/core/port"
	"strings"

	"github.com/rs/zerolog/log"
)

type DisableHandler struct {
	toggler port.CommandToggler
}

func NewDisableHandler(toggler port.CommandToggler) *DisableHandler {
	return &DisableHandler{toggler: toggler}
}

func (h *DisableHandler) Describe() domain.Command {
	return domain.Command{
		Name:      domain.DisableCommandName,
		Aliases:   []string{"dc"},
		Usage:     "{command name}",
		Summary:   "Disables a specified command",
		AdminOnly: true,
		Hidden:    true,
	}
}

// Respond sends no reply when the toggle commands themselves are named.
func (h *DisableHandler) Respond(_ context.Context, invocation *domain.Invocation) (string, error) {
	name := strings.TrimSpace(invocation.Args)
	if name == "" {
		return invocation.Command.UsageReply(), nil
	}

	if !h.toggler.Disable(name) {
		return "", nil
	}

	log.Info().Str("command", name).Str("user", invocation.Message.Username).Msg("command disabled")

	return domain.ReplyCompleted, nil
}

type EnableHandler struct {
	toggler port.CommandToggler
}

func NewEnableHandler(toggler port.CommandToggler) *EnableHandler {
	return &EnableHandler{toggler: toggler}
}

func (h *EnableHandler) Describe() domain.Command {
	return domain.Command{
		Name:      domain.EnableCommandName,
		Aliases:   []string{"ec"},
		Usage:     "{command name}",
		Summary:   "Enables a specified command",
		AdminOnly: true,
		Hidden:    true,
	}
}

func (h *EnableHandler) Respond(_ context.Context, invocation *domain.Invocation) (string, error) {
	name := strings.TrimSpace(invocation.Args)
	if name == "" {
		return invocation.Command.UsageReply(), nil
	}

	h.toggler.Enable(name)

	log.Info().Str("command", name).Str("user", invocation.Message.Username).Msg("command enabled")

	return domain.ReplyCompleted, nil
}

type DisabledListHandler struct {
	toggler port.CommandToggler
}

func NewDisabledListHandler(toggler port.CommandToggler) *DisabledListHandler {
	return &DisabledListHandler{toggler: toggler}
}

func (h *DisabledListHandler) Describe() domain.Command {
	return domain.Command{
		Name:      "disabled commands",
		Summary:   "Lists the disabled commands",
		AdminOnly: true,
		Hidden:    true,
	}
}

func (h *DisabledListHandler) Respond(_ context.Context, _ *domain.Invocation) (string, error) {
	names := h.toggler.List()
	if len(names) == 0 {
		return domain.ReplyNoDisabled, nil
	}

	return Truncate("Disabled commands:\n\t"+strings.Join(names, ",\n\t"), domain.MaxReplyLength), nil
}
