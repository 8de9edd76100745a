package commands

import (
	"context"
	"foldingbot/internal/core/domain"
	"foldingbot/internal/core/port"
)

type MockStatsProvider struct {
	distro  *domain.DistroResponse
	members *domain.MembersResponse
	err     error
	calls   int
}

func (m *MockStatsProvider) NextDistro(_ context.Context) (*domain.DistroResponse, error) {
	m.calls++
	return m.distro, m.err
}

func (m *MockStatsProvider) Members(_ context.Context) (*domain.MembersResponse, error) {
	m.calls++
	return m.members, m.err
}

type MockRegistry struct {
	commands []domain.Command
}

func (m *MockRegistry) Register(_ port.Command) {}

func (m *MockRegistry) Get(_ string) (port.Command, error) {
	return nil, domain.ErrCommandNotFound
}

func (m *MockRegistry) Match(_ string) (port.Command, string, error) {
	return nil, "", domain.ErrCommandNotFound
}

func (m *MockRegistry) ListCommands() []domain.Command {
	return m.commands
}

type MockToggler struct {
	refuse   bool
	disabled []string
	enabled  []string
	list     []string
}

func (m *MockToggler) Disable(name string) bool {
	if m.refuse {
		return false
	}
	m.disabled = append(m.disabled, name)
	return true
}

func (m *MockToggler) Enable(name string) {
	m.enabled = append(m.enabled, name)
}

func (m *MockToggler) IsDisabled(_ string) bool {
	return false
}

func (m *MockToggler) List() []string {
	return m.list
}

func invoke(cmd port.Command, args string) *domain.Invocation {
	return &domain.Invocation{
		Command: cmd.Describe(),
		Args:    args,
		Message: &domain.Message{ID: "1", ChatID: "2", UserID: "3", Username: "bob"},
	}
}
