package port

import (
	"context"
	"foldingbot/internal/core/domain"
)

type StatsProvider interface {
	// NextDistro fetches the entries of the upcoming distribution.
	NextDistro(ctx context.Context) (*domain.DistroResponse, error)
	// Members fetches the team member list.
	Members(ctx context.Context) (*domain.MembersResponse, error)
}
