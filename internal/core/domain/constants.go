package domain

import "errors"

var (
	ErrSendingReplyFailed = errors.New("failed to send reply")
	ErrAPIUnavailable     = errors.New("stats api unavailable")
	ErrCommandNotFound    = errors.New("command not found")
)

// Names of the commands that toggle other commands. Neither may be disabled.
const (
	DisableCommandName = "disable command"
	EnableCommandName  = "enable command"
)

// MaxReplyLength is the longest reply the bot sends in one message.
const MaxReplyLength = 2000

const (
	ReplyAPIUnavailable   = "The api is down :( try again later"
	ReplyAddressNotFound  = "We were unable to find your bitcoin address. Ensure the address is correct and try again."
	ReplyNoMatches        = "No matches found. Ensure you are searching the start or ending of your username and try again."
	ReplyGuardContention  = "Wait until the bot has finished responding to another user's long running request."
	ReplyForbidden        = "You are not allowed to use this command."
	ReplyCompleted        = "Completed"
	ReplyDistroToday      = "The distribution is today!"
	ReplyNoDisabled       = "No commands are disabled."
	ReplyMatchesHeader    = "Found the following matches:"
	ReplyDistributionNext = "The next distribution is %s"
)
