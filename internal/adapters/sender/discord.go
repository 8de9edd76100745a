package sender

import (
	"context"
	"fmt"
	"foldingbot/internal/core/domain"

	"github.com/bwmarrin/discordgo"
)

type DiscordSession interface {
	ChannelMessageSendReply(channelID string, content string, reference *discordgo.MessageReference,
		options ...discordgo.RequestOption) (*discordgo.Message, error)
	ChannelTyping(channelID string, options ...discordgo.RequestOption) error
}

type Discord struct {
	session DiscordSession
}

func NewDiscord(session DiscordSession) *Discord {
	return &Discord{session: session}
}

func (s *Discord) SendMessageReply(ctx context.Context, message *domain.Message, text string) error {
	reference := &discordgo.MessageReference{
		MessageID: message.ID,
		ChannelID: message.ChatID,
	}

	_, err := s.session.ChannelMessageSendReply(message.ChatID,
		limitLength(text),
		reference,
		discordgo.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("%w: %w", domain.ErrSendingReplyFailed, err)
	}

	return nil
}

func (s *Discord) SendChatAction(ctx context.Context, message *domain.Message) {
	repeatAction(ctx, message.ChatID, func() error {
		return s.session.ChannelTyping(message.ChatID, discordgo.WithContext(ctx))
	})
}

// limitLength keeps replies within the discord message limit.
func limitLength(text string) string {
	runes := []rune(text)
	if len(runes) <= domain.MaxReplyLength {
		return text
	}

	return string(runes[:domain.MaxReplyLength-3]) + "..."
}
