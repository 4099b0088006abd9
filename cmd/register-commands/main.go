package main

import (
	"github.com/bwmarrin/discordgo"
	"github.com/sirupsen/logrus"

	"solana-wallet-bot/internal/bot"
	"solana-wallet-bot/internal/config"
)

// Pushes the slash-command definitions to Discord. Run once after deploying
// or whenever a command signature changes; an empty DISCORD_GUILD_ID
// registers the commands globally.
func main() {
	logger := logrus.StandardLogger()

	cfg, err := config.Load()
	if err != nil {
		logger.Panicf("config.Load: %s", err)
	}

	session, err := discordgo.New("Bot " + cfg.DiscordToken)
	if err != nil {
		logger.Panicf("discordgo.New: %s", err)
	}

	definitions := bot.Definitions()

	logger.Infof("Registering %d slash commands", len(definitions))

	registered, err := session.ApplicationCommandBulkOverwrite(cfg.AppID, cfg.GuildID, definitions)
	if err != nil {
		logger.Panicf("session.ApplicationCommandBulkOverwrite: %s", err)
	}

	logger.Infof("Successfully registered %d commands", len(registered))
}
