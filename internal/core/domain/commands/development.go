package commands

import (
	"context"
	"foldingbot/internal/core/domain"
	"math"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"
)

func NewTestAdminHandler() *StaticHandler {
	return NewStaticHandler(domain.Command{
		Name:        "test admin",
		Summary:     "Tests an admin only call",
		AdminOnly:   true,
		Development: true,
	}, "ACK")
}

const defaultTestAsyncSeconds = 60

// TestAsyncHandler holds the long-running slot for a while to exercise the guard.
type TestAsyncHandler struct {
	unit time.Duration
}

func NewTestAsyncHandler() *TestAsyncHandler {
	return &TestAsyncHandler{unit: time.Second}
}

func (h *TestAsyncHandler) Describe() domain.Command {
	return domain.Command{
		Name:        "test async",
		Usage:       "{timeout in seconds defaults to 60 secs}",
		Summary:     "Test long running async methods",
		LongRunning: true,
		Development: true,
	}
}

func (h *TestAsyncHandler) Respond(ctx context.Context, invocation *domain.Invocation) (string, error) {
	timeout := defaultTestAsyncSeconds

	if arg := domain.FirstArg(invocation.Args); arg != "" {
		parsed, err := strconv.Atoi(arg)
		if err != nil || parsed < 0 || int64(parsed) > math.MaxInt64/int64(h.unit) {
			return invocation.Command.UsageReply(), nil
		}
		timeout = parsed
	}

	log.Debug().Int("timeout", timeout).Msg("testing async")

	select {
	case <-time.After(time.Duration(timeout) * h.unit):
	case <-ctx.Done():
		return "", ctx.Err()
	}

	return "Async test finished", nil
}
