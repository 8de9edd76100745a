package handler

import (
	"context"
	"fmt"
	"foldingbot/internal/core/domain"
	"foldingbot/internal/core/port"
	"runtime/debug"
	"strings"

	"github.com/gofrs/uuid/v5"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const (
	OutcomeOK        = "ok"
	OutcomeUnknown   = "unknown"
	OutcomeDisabled  = "disabled"
	OutcomeForbidden = "forbidden"
	OutcomeBusy      = "busy"
	OutcomeError     = "error"
)

const helpCommand = "help"

// Recorder receives the outcome of every handled invocation.
type Recorder interface {
	ObserveCommand(command, outcome string)
}

type Command struct {
	commandRegistry port.CommandRegistry
	disabled        port.CommandToggler
	guard           port.Guard
	authorizer      port.Authorizer
	recorder        Recorder
}

func NewCommand(commandRegistry port.CommandRegistry,
	disabled port.CommandToggler,
	guard port.Guard,
	authorizer port.Authorizer,
	recorder Recorder) *Command {
	return &Command{
		commandRegistry: commandRegistry,
		disabled:        disabled,
		guard:           guard,
		authorizer:      authorizer,
		recorder:        recorder,
	}
}

// Handle runs the command addressed by message.Text and sends its reply through sender. Handler
// errors and panics are logged and produce no reply.
func (c *Command) Handle(ctx context.Context, sender port.TextSender, message *domain.Message) {
	l := log.With().
		Str("messageId", message.ID).
		Str("chatId", message.ChatID).
		Str("invocationId", newInvocationID()).
		Logger()

	l.Debug().Str("text", message.Text).Msg("received command")

	handler, args, err := c.resolve(message.Text)
	if err != nil {
		l.Debug().Err(err).Msg("no handler for command")
		c.record("", OutcomeUnknown)
		return
	}

	descriptor := handler.Describe()
	l = l.With().Str("command", descriptor.Name).Logger()

	if c.disabled.IsDisabled(descriptor.Name) {
		l.Debug().Msg("command is disabled, ignoring")
		c.record(descriptor.Name, OutcomeDisabled)
		return
	}

	if descriptor.AdminOnly && !c.authorizer.IsAdmin(message.UserID) {
		l.Warn().Str("userId", message.UserID).Msg("non admin invoked admin command")
		c.record(descriptor.Name, OutcomeForbidden)
		c.send(ctx, sender, message, domain.ReplyForbidden, l)
		return
	}

	if descriptor.LongRunning {
		if !c.guard.TryAcquire() {
			l.Info().Msg("another long running command is in flight")
			c.record(descriptor.Name, OutcomeBusy)
			c.send(ctx, sender, message, domain.ReplyGuardContention, l)
			return
		}
		defer c.guard.Release()

		actionCtx, cancel := context.WithCancel(ctx)
		defer cancel()
		go sender.SendChatAction(actionCtx, message)
	}

	l.Info().Msg("method invoked")

	reply, err := c.run(ctx, handler, &domain.Invocation{Command: descriptor, Args: args, Message: message}, l)
	if err != nil {
		l.Error().Err(err).Msg("there was an unhandled error")
		c.record(descriptor.Name, OutcomeError)
		return
	}

	c.record(descriptor.Name, OutcomeOK)

	if reply == "" {
		l.Debug().Msg("handler produced no reply")
		return
	}

	c.send(ctx, sender, message, reply, l)

	l.Info().Msg("method finished")
}

// resolve maps an empty invocation to help.
func (c *Command) resolve(text string) (port.Command, string, error) {
	if strings.TrimSpace(text) == "" {
		handler, err := c.commandRegistry.Get(helpCommand)
		return handler, "", err
	}

	return c.commandRegistry.Match(text)
}

func (c *Command) run(ctx context.Context,
	handler port.Command,
	invocation *domain.Invocation,
	l zerolog.Logger) (reply string, err error) {
	defer func() {
		if r := recover(); r != nil {
			l.Error().Bytes("stack", debug.Stack()).Msg("command handler panicked")
			err = fmt.Errorf("command handler panicked: %v", r)
		}
	}()

	return handler.Respond(ctx, invocation)
}

func (c *Command) send(ctx context.Context, sender port.TextSender, message *domain.Message, text string,
	l zerolog.Logger) {
	if err := sender.SendMessageReply(ctx, message, text); err != nil {
		l.Error().Err(err).Msg(domain.ErrSendingReplyFailed.Error())
	}
}

func (c *Command) record(command, outcome string) {
	if c.recorder == nil {
		return
	}

	c.recorder.ObserveCommand(command, outcome)
}

func newInvocationID() string {
	id, err := uuid.NewV4()
	if err != nil {
		return ""
	}

	return id.String()
}
