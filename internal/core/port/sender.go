package port

import (
	"context"
	"foldingbot/internal/core/domain"
)

type TextSender interface {
	// SendMessageReply sends text as a reply to the specified message.
	SendMessageReply(ctx context.Context, message *domain.Message, text string) error
	// SendChatAction shows a typing indicator in the message's chat until ctx is done.
	SendChatAction(ctx context.Context, message *domain.Message)
}
