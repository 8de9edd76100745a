package service

import (
	"foldingbot/internal/core/domain"
	"slices"
	"sync"

	"github.com/rs/zerolog/log"
)

// DisabledCommands is the process-wide set of command names that the dispatcher drops. Names are not
// validated against the registry.
type DisabledCommands struct {
	names map[string]struct{}
	mutex sync.RWMutex
}

func NewDisabledCommands() *DisabledCommands {
	return &DisabledCommands{names: make(map[string]struct{})}
}

// Disable adds name to the set. The disable and enable commands themselves are refused so an admin
// can't lock out the only way back.
func (d *DisabledCommands) Disable(name string) bool {
	name = domain.NormalizeCommand(name)

	if name == domain.DisableCommandName || name == domain.EnableCommandName {
		log.Warn().Str("command", name).Msg("disabling this command is not allowed")
		return false
	}

	log.Debug().Str("command", name).Msg("disabling command")

	d.mutex.Lock()
	d.names[name] = struct{}{}
	d.mutex.Unlock()

	return true
}

func (d *DisabledCommands) Enable(name string) {
	name = domain.NormalizeCommand(name)

	log.Debug().Str("command", name).Msg("enabling command")

	d.mutex.Lock()
	delete(d.names, name)
	d.mutex.Unlock()
}

func (d *DisabledCommands) IsDisabled(name string) bool {
	d.mutex.RLock()
	defer d.mutex.RUnlock()

	_, ok := d.names[domain.NormalizeCommand(name)]

	return ok
}

// List returns the disabled names sorted.
func (d *DisabledCommands) List() []string {
	d.mutex.RLock()
	list := make([]string, 0, len(d.names))
	for name := range d.names {
		list = append(list, name)
	}
	d.mutex.RUnlock()

	slices.Sort(list)

	return list
}
