package commands

import (
	"context"
	"fmt"
	"foldingbot/internal/core/domain"
)

// StaticHandler replies with fixed text.
type StaticHandler struct {
	descriptor domain.Command
	reply      string
}

func NewStaticHandler(descriptor domain.Command, reply string) *StaticHandler {
	return &StaticHandler{descriptor: descriptor, reply: reply}
}

func (h *StaticHandler) Describe() domain.Command {
	return h.descriptor
}

func (h *StaticHandler) Respond(_ context.Context, _ *domain.Invocation) (string, error) {
	return h.reply, nil
}

func NewFAHHandler(downloadURL string) *StaticHandler {
	return NewStaticHandler(domain.Command{
		Name:    "fah",
		Summary: "Start folding today or update to the latest software",
	}, fmt.Sprintf("Visit %s to download folding@home", downloadURL))
}

func NewWebsiteHandler(homeURL string) *StaticHandler {
	return NewStaticHandler(domain.Command{
		Name:    "website",
		Summary: "Learn more about this project",
	}, fmt.Sprintf("Learn more about this project at %s", homeURL))
}

func NewGoodBotHandler() *StaticHandler {
	return NewStaticHandler(domain.Command{
		Name:    "good bot",
		Summary: "Tell the bot it's being good",
		Hidden:  true,
	}, ":D")
}

func NewBadBotHandler() *StaticHandler {
	return NewStaticHandler(domain.Command{
		Name:    "bad bot",
		Summary: "Tell the bot it's being bad",
		Hidden:  true,
	}, "D:")
}
