package sender

import (
	"context"
	"fmt"
	"foldingbot/internal/core/domain"
	"strconv"
	"time"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/rs/zerolog/log"
)

type TelegramBot interface {
	SendMessage(ctx context.Context, params *bot.SendMessageParams) (*models.Message, error)
	SendChatAction(ctx context.Context, params *bot.SendChatActionParams) (bool, error)
}

const TelegramMessageLimit = 4096

type Telegram struct {
	bot TelegramBot
}

func NewTelegram(bot TelegramBot) *Telegram {
	return &Telegram{bot: bot}
}

func (s *Telegram) SendMessageReply(ctx context.Context, message *domain.Message, text string) error {
	chatID, err := strconv.ParseInt(message.ChatID, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid telegram chat id %q: %w", message.ChatID, err)
	}

	var reply *models.ReplyParameters
	if messageID, err := strconv.Atoi(message.ID); err == nil {
		reply = &models.ReplyParameters{
			MessageID: messageID,
			ChatID:    chatID,
		}
	}

	for _, chunk := range chunkText(text, TelegramMessageLimit) {
		_, err := s.bot.SendMessage(ctx, &bot.SendMessageParams{
			ChatID:          chatID,
			Text:            chunk,
			ReplyParameters: reply,
		})
		if err != nil {
			return fmt.Errorf("%w: %w", domain.ErrSendingReplyFailed, err)
		}
	}

	return nil
}

func (s *Telegram) SendChatAction(ctx context.Context, message *domain.Message) {
	chatID, err := strconv.ParseInt(message.ChatID, 10, 64)
	if err != nil {
		log.Warn().Err(err).Str("chatId", message.ChatID).Msg("invalid telegram chat id for chat action")
		return
	}

	repeatAction(ctx, message.ChatID, func() error {
		_, err := s.bot.SendChatAction(ctx, &bot.SendChatActionParams{
			ChatID: chatID,
			Action: models.ChatActionTyping,
		})
		return err
	})
}

const ChatActionRepeatSeconds = 5

// repeatAction sends an activity indicator until ctx is done or sending fails.
func repeatAction(ctx context.Context, chatID string, send func() error) {
	log.Debug().Str("chatId", chatID).Msg("starting action routine")
	for {
		select {
		case <-ctx.Done():
			log.Debug().Str("chatId", chatID).Msg("done, stopping action routine")
			return
		default:
		}

		log.Debug().Str("chatId", chatID).Msg("transmitting action")
		if err := send(); err != nil {
			log.Err(err).Msg("error sending chat action")
			return
		}

		select {
		case <-ctx.Done():
			log.Debug().Str("chatId", chatID).Msg("done, stopping action routine")
			return
		case <-time.After(ChatActionRepeatSeconds * time.Second):
		}
	}
}

func chunkText(text string, limit int) []string {
	runes := []rune(text)
	if len(runes) <= limit {
		return []string{text}
	}

	var chunks []string
	for len(runes) > 0 {
		n := min(limit, len(runes))
		chunks = append(chunks, string(runes[:n]))
		runes = runes[n:]
	}

	return chunks
}
