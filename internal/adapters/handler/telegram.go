package handler

import (
	"context"
	"foldingbot/internal/core/domain"
	"foldingbot/internal/core/port"
	"strconv"
	"strings"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

type Telegram struct {
	command     *Command
	sender      port.TextSender
	botUsername string
}

func NewTelegram(command *Command, sender port.TextSender, botUsername string) *Telegram {
	return &Telegram{command: command, sender: sender, botUsername: botUsername}
}

// Handle is registered for text messages starting with a slash.
func (t *Telegram) Handle(_ context.Context, _ *bot.Bot, update *models.Update) {
	message, ok := convertTelegramMessage(t.botUsername, update)
	if !ok {
		return
	}

	go t.command.Handle(context.Background(), t.sender, message)
}

func convertTelegramMessage(botUsername string, update *models.Update) (*domain.Message, bool) {
	if update == nil || update.Message == nil || update.Message.From == nil {
		return nil, false
	}

	text, ok := parseTelegramCommand(update.Message.Text, botUsername)
	if !ok {
		return nil, false
	}

	return &domain.Message{
		ID:       strconv.Itoa(update.Message.ID),
		ChatID:   strconv.FormatInt(update.Message.Chat.ID, 10),
		UserID:   strconv.FormatInt(update.Message.From.ID, 10),
		Username: getUserNameOrFirstName(update.Message.From),
		Text:     text,

		CommandPrefix: "/",
	}, true
}

// parseTelegramCommand turns "/disable_command@bot lookup" into "disable command lookup". Commands
// addressed to another bot are rejected.
func parseTelegramCommand(text, botUsername string) (string, bool) {
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, "/") {
		return "", false
	}

	head, rest, _ := strings.Cut(text[1:], " ")

	if name, target, found := strings.Cut(head, "@"); found {
		if !strings.EqualFold(target, botUsername) {
			return "", false
		}
		head = name
	}

	head = strings.ReplaceAll(head, "_", " ")

	return strings.TrimSpace(head + " " + strings.TrimSpace(rest)), true
}

func getUserNameOrFirstName(user *models.User) string {
	if user.Username == "" {
		return user.FirstName
	}

	return "@" + user.Username
}
