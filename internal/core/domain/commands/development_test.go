package commands

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTestAdminHandler(t *testing.T) {
	h := NewTestAdminHandler()

	got, err := h.Respond(context.Background(), invoke(h, ""))
	require.NoError(t, err)
	assert.Equal(t, "ACK", got)
	assert.True(t, h.Describe().AdminOnly)
	assert.True(t, h.Describe().Development)
}

func TestTestAsyncRespond(t *testing.T) {
	tests := []struct {
		name string
		args string
		want string
	}{
		{name: "explicit timeout", args: "2", want: "Async test finished"},
		{name: "zero timeout", args: "0", want: "Async test finished"},
		{name: "invalid timeout", args: "soon", want: "Usage: test async {timeout in seconds defaults to 60 secs}"},
		{name: "negative timeout", args: "-1", want: "Usage: test async {timeout in seconds defaults to 60 secs}"},
		{name: "timeout overflowing a duration", args: "9223372036854775807", want: "Usage: test async {timeout in seconds defaults to 60 secs}"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			h := &TestAsyncHandler{unit: time.Millisecond}

			got, err := h.Respond(context.Background(), invoke(h, tc.args))
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestTestAsyncDefaultTimeoutStopsOnCancel(t *testing.T) {
	h := NewTestAsyncHandler()
	assert.True(t, h.Describe().LongRunning)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := h.Respond(ctx, invoke(h, ""))
	require.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestTestAsyncRejectsTimeoutBeyondDuration(t *testing.T) {
	h := NewTestAsyncHandler()

	got, err := h.Respond(context.Background(), invoke(h, "10000000000"))
	require.NoError(t, err)
	assert.Equal(t, h.Describe().UsageReply(), got)
}
