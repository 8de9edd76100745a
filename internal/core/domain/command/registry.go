package command

import (
	"errors"
	"foldingbot/internal/core/domain"
	"foldingbot/internal/core/port"
	"slices"
	"strings"
	"unicode"

	"github.com/rs/zerolog/log"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

type Registry struct {
	commands map[string]port.Command
	ordered  []port.Command
}

func (r *Registry) Register(handler port.Command) {
	if r.commands == nil {
		r.commands = make(map[string]port.Command)
	}

	descriptor := handler.Describe()
	log.Info().Str("handler", descriptor.Name).Msg("adding command handler to registry")

	for _, name := range descriptor.Names() {
		if _, ok := r.commands[name]; ok {
			log.Warn().Str("name", name).Msg("command name already registered, overriding")
		}
		r.commands[name] = handler
	}

	r.ordered = append(r.ordered, handler)
}

func (r *Registry) Get(command string) (port.Command, error) {
	log.Debug().Str("command", command).Msg("fetching command handler from registry")

	if r.commands == nil {
		err := errors.New("can't fetch command, registry not initialized")
		return nil, err
	}

	handler, ok := r.commands[domain.NormalizeCommand(command)]
	if !ok {
		return nil, domain.ErrCommandNotFound
	}

	return handler, nil
}

// Match resolves the longest registered name or alias that text starts with on a word boundary and
// returns the handler with the argument text that follows it.
func (r *Registry) Match(text string) (port.Command, string, error) {
	if r.commands == nil {
		err := errors.New("can't match command, registry not initialized")
		return nil, "", err
	}

	words := strings.Fields(strings.ToLower(text))
	for n := len(words); n > 0; n-- {
		handler, ok := r.commands[strings.Join(words[:n], " ")]
		if !ok {
			continue
		}

		return handler, skipWords(text, n), nil
	}

	return nil, "", domain.ErrCommandNotFound
}

// ListCommands returns every registered command, hidden ones included, sorted by name.
func (r *Registry) ListCommands() []domain.Command {
	list := make([]domain.Command, 0, len(r.ordered))
	for _, handler := range r.ordered {
		list = append(list, handler.Describe())
	}

	collator := collate.New(language.English)
	slices.SortStableFunc(list, func(a, b domain.Command) int {
		return collator.CompareString(a.Name, b.Name)
	})

	return list
}

func skipWords(text string, n int) string {
	rest := text
	for range n {
		rest = strings.TrimLeftFunc(rest, unicode.IsSpace)
		end := strings.IndexFunc(rest, unicode.IsSpace)
		if end < 0 {
			return ""
		}
		rest = rest[end:]
	}

	return strings.TrimSpace(rest)
}
