package commands

import (
	"context"
	"fmt"
	"foldingbot/internal/core/domain"
	"time"
)

type DistributionHandler struct {
	now func() time.Time
}

// NewDistributionHandler uses time.Now when now is nil.
func NewDistributionHandler(now func() time.Time) *DistributionHandler {
	if now == nil {
		now = time.Now
	}

	return &DistributionHandler{now: now}
}

func (h *DistributionHandler) Describe() domain.Command {
	return domain.Command{
		Name:    "distribution",
		Summary: "Get the date of our next distribution",
	}
}

func (h *DistributionHandler) Respond(_ context.Context, _ *domain.Invocation) (string, error) {
	return FormatNextDistribution(h.now()), nil
}

func FormatNextDistribution(now time.Time) string {
	date, today := domain.NextDistribution(now)
	if today {
		return domain.ReplyDistroToday
	}

	return fmt.Sprintf(domain.ReplyDistributionNext, date.Format("1/2/2006"))
}
