package sender

import (
	"context"
	"errors"
	"foldingbot/internal/core/domain"
	"strings"
	"sync/atomic"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockDiscordSession struct {
	sendFn      func(channelID, content string, reference *discordgo.MessageReference) (*discordgo.Message, error)
	typingCalls atomic.Int32
	typingErr   error
}

func (m *mockDiscordSession) ChannelMessageSendReply(channelID string, content string,
	reference *discordgo.MessageReference, _ ...discordgo.RequestOption) (*discordgo.Message, error) {
	return m.sendFn(channelID, content, reference)
}

func (m *mockDiscordSession) ChannelTyping(_ string, _ ...discordgo.RequestOption) error {
	m.typingCalls.Add(1)
	return m.typingErr
}

func TestDiscordSender_SendMessageReply(t *testing.T) {
	var (
		gotChannel   string
		gotContent   string
		gotReference *discordgo.MessageReference
	)

	session := &mockDiscordSession{
		sendFn: func(channelID, content string, reference *discordgo.MessageReference) (*discordgo.Message, error) {
			gotChannel, gotContent, gotReference = channelID, content, reference
			return &discordgo.Message{ID: "reply"}, nil
		},
	}

	err := NewDiscord(session).SendMessageReply(t.Context(), &domain.Message{ID: "m1", ChatID: "c1"}, "hello")
	require.NoError(t, err)

	assert.Equal(t, "c1", gotChannel)
	assert.Equal(t, "hello", gotContent)
	assert.Equal(t, "m1", gotReference.MessageID)
	assert.Equal(t, "c1", gotReference.ChannelID)
}

func TestDiscordSender_SendMessageReplyLimitsLength(t *testing.T) {
	var gotContent string
	session := &mockDiscordSession{
		sendFn: func(_, content string, _ *discordgo.MessageReference) (*discordgo.Message, error) {
			gotContent = content
			return &discordgo.Message{}, nil
		},
	}

	err := NewDiscord(session).SendMessageReply(t.Context(), &domain.Message{ID: "m1", ChatID: "c1"},
		strings.Repeat("y", domain.MaxReplyLength+1))
	require.NoError(t, err)

	assert.Equal(t, domain.MaxReplyLength, utf8.RuneCountInString(gotContent))
	assert.True(t, strings.HasSuffix(gotContent, "..."))
}

func TestDiscordSender_SendMessageReplyError(t *testing.T) {
	session := &mockDiscordSession{
		sendFn: func(_, _ string, _ *discordgo.MessageReference) (*discordgo.Message, error) {
			return nil, errors.New("HTTP 403 Forbidden")
		},
	}

	err := NewDiscord(session).SendMessageReply(t.Context(), &domain.Message{ID: "m1", ChatID: "c1"}, "hello")
	require.ErrorIs(t, err, domain.ErrSendingReplyFailed)
}

func TestDiscordSender_SendChatAction(t *testing.T) {
	session := &mockDiscordSession{}
	ctx, cancel := context.WithCancel(t.Context())
	done := make(chan struct{})

	go func() {
		NewDiscord(session).SendChatAction(ctx, &domain.Message{ChatID: "c1"})
		close(done)
	}()

	assert.Eventually(t, func() bool { return session.typingCalls.Load() >= 1 }, time.Second, 5*time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("typing routine did not stop")
	}
}
