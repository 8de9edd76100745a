package service

import (
	"errors"
	"slices"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

type AdminAuthorizer struct {
	allowlist []string
}

func NewAdminAuthorizer() (*AdminAuthorizer, error) {
	var list []string

	err := viper.UnmarshalKey("bot.admin_ids", &list)
	if err != nil {
		return nil, errors.New("failed to load admin IDs")
	}

	if len(list) == 0 {
		log.Warn().Msg("no admin IDs configured, admin commands are unavailable")
	}

	return &AdminAuthorizer{
		allowlist: list,
	}, nil
}

func (a *AdminAuthorizer) IsAdmin(userID string) bool {
	if userID == "" {
		return false
	}

	return slices.Contains(a.allowlist, userID)
}
