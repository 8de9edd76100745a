package command

import (
	"context"
	"foldingbot/internal/core/domain"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type MockResponder struct {
	descriptor domain.Command
}

func (m *MockResponder) Respond(_ context.Context, _ *domain.Invocation) (string, error) {
	return "", nil
}

func (m *MockResponder) Describe() domain.Command {
	return m.descriptor
}

func newMock(name string, aliases ...string) *MockResponder {
	return &MockResponder{descriptor: domain.Command{Name: name, Aliases: aliases}}
}

func TestRegister(t *testing.T) {
	cr := &Registry{}
	mr := newMock("disable command", "dc")

	cr.Register(mr)
	assert.Len(t, cr.commands, 2)
	assert.Len(t, cr.ordered, 1)
}

func TestGetNotRegistered(t *testing.T) {
	cr := &Registry{}

	_, err := cr.Get("test")
	require.EqualError(t, err, "can't fetch command, registry not initialized")
}

func TestGetCommandNotFound(t *testing.T) {
	cr := &Registry{}
	cr.Register(newMock("test"))

	_, err := cr.Get("foo")
	require.ErrorIs(t, err, domain.ErrCommandNotFound)
}

func TestGetCommandFound(t *testing.T) {
	cr := &Registry{}
	cr.Register(newMock("test", "t"))

	cmd, err := cr.Get("TEST")
	require.NoError(t, err)
	assert.Equal(t, "test", cmd.Describe().Name)

	cmd, err = cr.Get("t")
	require.NoError(t, err)
	assert.Equal(t, "test", cmd.Describe().Name)
}

func TestMatch(t *testing.T) {
	cr := &Registry{}
	cr.Register(newMock("user"))
	cr.Register(newMock("lookup"))
	cr.Register(newMock("disable command", "dc"))
	cr.Register(newMock("disabled commands"))
	cr.Register(newMock("test async"))

	type TestCase struct {
		description string
		text        string
		wantName    string
		wantArgs    string
		wantErr     error
	}

	testCases := []TestCase{
		{
			description: "single word command with argument",
			text:        "user addr1",
			wantName:    "user",
			wantArgs:    "addr1",
		},
		{
			description: "case insensitive command keeps argument case",
			text:        "LookUp BoB Smith",
			wantName:    "lookup",
			wantArgs:    "BoB Smith",
		},
		{
			description: "multi word command",
			text:        "disable   command user",
			wantName:    "disable command",
			wantArgs:    "user",
		},
		{
			description: "multi word argument is kept whole",
			text:        "disable command test async",
			wantName:    "disable command",
			wantArgs:    "test async",
		},
		{
			description: "alias",
			text:        "dc lookup",
			wantName:    "disable command",
			wantArgs:    "lookup",
		},
		{
			description: "longest name wins",
			text:        "disabled commands",
			wantName:    "disabled commands",
		},
		{
			description: "no arguments",
			text:        "test async",
			wantName:    "test async",
		},
		{
			description: "prefix of a word does not match",
			text:        "users addr1",
			wantErr:     domain.ErrCommandNotFound,
		},
		{
			description: "unknown command",
			text:        "foo bar",
			wantErr:     domain.ErrCommandNotFound,
		},
		{
			description: "empty text",
			text:        "",
			wantErr:     domain.ErrCommandNotFound,
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.description, func(t *testing.T) {
			cmd, args, err := cr.Match(testCase.text)
			if testCase.wantErr != nil {
				require.ErrorIs(t, err, testCase.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, testCase.wantName, cmd.Describe().Name)
			assert.Equal(t, testCase.wantArgs, args)
		})
	}
}

func TestListCommands(t *testing.T) {
	cr := &Registry{}
	cr.Register(newMock("website"))
	cr.Register(newMock("help"))
	cr.Register(newMock("fah"))
	cr.Register(newMock("distribution"))
	cr.Register(newMock("user"))

	list := cr.ListCommands()

	names := make([]string, 0, len(list))
	for _, cmd := range list {
		names = append(names, cmd.Name)
	}

	assert.Equal(t, []string{"distribution", "fah", "help", "user", "website"}, names)
}
