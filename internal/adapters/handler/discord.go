package handler

import (
	"context"
	"foldingbot/internal/core/domain"
	"foldingbot/internal/core/port"
	"strings"

	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog/log"
)

type Discord struct {
	command *Command
	sender  port.TextSender
}

func NewDiscord(command *Command, sender port.TextSender) *Discord {
	return &Discord{command: command, sender: sender}
}

// HandleMessageCreate is registered with the discordgo session. Only messages that start by
// mentioning the bot are treated as commands.
func (d *Discord) HandleMessageCreate(s *discordgo.Session, m *discordgo.MessageCreate) {
	if s == nil || s.State == nil || s.State.User == nil {
		log.Warn().Msg("discord session not ready, dropping message")
		return
	}

	message, ok := convertDiscordMessage(s.State.User.ID, m)
	if !ok {
		return
	}

	go d.command.Handle(context.Background(), d.sender, message)
}

func convertDiscordMessage(botID string, m *discordgo.MessageCreate) (*domain.Message, bool) {
	if m == nil || m.Message == nil || m.Author == nil || m.Author.Bot {
		return nil, false
	}

	text, ok := stripMention(m.Content, botID)
	if !ok {
		return nil, false
	}

	return &domain.Message{
		ID:       m.ID,
		ChatID:   m.ChannelID,
		UserID:   m.Author.ID,
		Username: m.Author.Username,
		Text:     text,
	}, true
}

func stripMention(content, botID string) (string, bool) {
	if botID == "" {
		return "", false
	}

	content = strings.TrimSpace(content)

	for _, mention := range []string{"<@" + botID + ">", "<@!" + botID + ">"} {
		if rest, ok := strings.CutPrefix(content, mention); ok {
			return strings.TrimSpace(rest), true
		}
	}

	return "", false
}
