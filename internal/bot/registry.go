package bot

import (
	"context"

	"github.com/bwmarrin/discordgo"
	"github.com/sirupsen/logrus"
)

// Command is one slash command. Execute owns the full reply lifecycle of the
// interaction and returns the underlying error, if any, for observability.
type Command interface {
	Name() string
	Execute(ctx context.Context, responder Responder, data discordgo.ApplicationCommandInteractionData, log *logrus.Entry) error
}

// Registry maps command names to handlers. It is built once at startup and
// passed in explicitly; there is no process-wide command table.
type Registry struct {
	commands map[string]Command
}

func NewRegistry(commands ...Command) *Registry {
	byName := make(map[string]Command, len(commands))

	for _, command := range commands {
		byName[command.Name()] = command
	}

	return &Registry{commands: byName}
}

func (r *Registry) Lookup(name string) (Command, bool) {
	command, ok := r.commands[name]

	return command, ok
}
