package bot

import (
	"context"
	"fmt"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Bot owns the gateway session and dispatches interactions to the registry.
type Bot struct {
	session  *discordgo.Session
	registry *Registry
	log      *logrus.Entry
	metrics  *metrics
}

func New(token string, registry *Registry, log *logrus.Logger) (*Bot, error) {
	session, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, fmt.Errorf("discordgo.New: %w", err)
	}

	session.Identify.Intents = discordgo.IntentsGuilds

	b := &Bot{
		session:  session,
		registry: registry,
		log:      log.WithField("module", "bot"),
		metrics:  newMetrics(),
	}

	session.AddHandler(b.ready)
	session.AddHandler(b.dispatch)

	return b, nil
}

func (b *Bot) Run(ctx context.Context) error {
	err := b.session.Open()
	if err != nil {
		return fmt.Errorf("session.Open: %w", err)
	}

	defer b.log.Info("Bot is stopped")

	<-ctx.Done()

	err = b.session.Close()
	if err != nil {
		return fmt.Errorf("session.Close: %w", err)
	}

	return nil
}

func (b *Bot) ready(_ *discordgo.Session, r *discordgo.Ready) {
	b.log.Infof("Bot is ready as %s", r.User.String())
}

func (b *Bot) dispatch(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionApplicationCommand {
		return
	}

	data := i.ApplicationCommandData()

	command, ok := b.registry.Lookup(data.Name)
	if !ok {
		return
	}

	log := b.log.WithFields(logrus.Fields{
		"command":    data.Name,
		"request_id": uuid.NewString(),
	})

	responder := &interactionResponder{session: s, interaction: i.Interaction}
	started := time.Now()

	// One failing invocation must not take the session down with it.
	defer func() {
		if r := recover(); r != nil {
			log.Errorf("command panicked: %v", r)
			edit(responder, log, "Error executing command.")
			b.metrics.observe(data.Name, "panic", started)
		}
	}()

	err := command.Execute(context.Background(), responder, data, log)

	status := "ok"
	if err != nil {
		status = "error"
	}

	b.metrics.observe(data.Name, status, started)
}
