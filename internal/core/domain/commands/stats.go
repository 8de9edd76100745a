package commands

import (
	"context"
	"fmt"
	"foldingbot/internal/core/domain"
	"foldingbot/internal/core/port"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
	"golang.org/x/text/cases"
)

type UserStatsHandler struct {
	stats port.StatsProvider
}

func NewUserStatsHandler(stats port.StatsProvider) *UserStatsHandler {
	return &UserStatsHandler{stats: stats}
}

func (h *UserStatsHandler) Describe() domain.Command {
	return domain.Command{
		Name:        "user",
		Usage:       "{address}",
		Summary:     "Get your stats for the next distribution based on your address",
		LongRunning: true,
	}
}

func (h *UserStatsHandler) Respond(ctx context.Context, invocation *domain.Invocation) (string, error) {
	address := domain.FirstArg(invocation.Args)
	if address == "" {
		return invocation.Command.UsageReply(), nil
	}

	distro, err := h.stats.NextDistro(ctx)
	if err != nil {
		return apiFailure(err)
	}

	for _, user := range distro.Distro {
		if user.BitcoinAddress == address {
			return FormatUserStats(user), nil
		}
	}

	log.Debug().Str("address", address).Msg("address not found in distro")

	return domain.ReplyAddressNotFound, nil
}

func FormatUserStats(user domain.DistroUser) string {
	sb := &strings.Builder{}

	fmt.Fprintf(sb, "Results for: %s\n", user.BitcoinAddress)
	fmt.Fprintf(sb, "\tPoints gained: %s\n", formatNumber(user.PointsGained))
	fmt.Fprintf(sb, "\tWork units gained: %s\n", formatNumber(user.WorkUnitsGained))
	fmt.Fprintf(sb, "\tReceiving amount: %s", formatNumber(user.Amount))

	return sb.String()
}

type LookupHandler struct {
	stats port.StatsProvider
}

func NewLookupHandler(stats port.StatsProvider) *LookupHandler {
	return &LookupHandler{stats: stats}
}

func (h *LookupHandler) Describe() domain.Command {
	return domain.Command{
		Name:        "lookup",
		Usage:       "{search criteria}",
		Summary:     "Helps to find yourself, not case sensitive and searches the start and end for a match",
		LongRunning: true,
	}
}

func (h *LookupHandler) Respond(ctx context.Context, invocation *domain.Invocation) (string, error) {
	search := strings.TrimSpace(invocation.Args)
	if search == "" {
		return invocation.Command.UsageReply(), nil
	}

	members, err := h.stats.Members(ctx)
	if err != nil {
		return apiFailure(err)
	}

	matches := MatchMembers(members.Members, search)
	if len(matches) == 0 {
		return domain.ReplyNoMatches, nil
	}

	return FormatMatches(matches), nil
}

// MatchMembers returns the distinct user names that start or end with search, compared after case
// folding, in first-seen order.
func MatchMembers(members []domain.Member, search string) []string {
	folder := cases.Fold()
	needle := folder.String(search)

	seen := make(map[string]struct{})
	var matches []string

	for _, member := range members {
		name := folder.String(member.UserName)
		if !strings.HasPrefix(name, needle) && !strings.HasSuffix(name, needle) {
			continue
		}

		if _, ok := seen[member.UserName]; ok {
			continue
		}

		seen[member.UserName] = struct{}{}
		matches = append(matches, member.UserName)
	}

	return matches
}

func FormatMatches(names []string) string {
	return Truncate(domain.ReplyMatchesHeader+"\n\t"+strings.Join(names, ",\n\t"), domain.MaxReplyLength)
}

// Truncate cuts text to at most limit characters, replacing the tail with "..." when it is cut.
func Truncate(text string, limit int) string {
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}

	return string(runes[:limit-3]) + "..."
}

// apiFailure maps every provider error to the same reply, the caller can't act on the cause.
func apiFailure(err error) (string, error) {
	log.Warn().Err(err).Msg("stats api unavailable")

	return domain.ReplyAPIUnavailable, nil
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
