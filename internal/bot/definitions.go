package bot

import "github.com/bwmarrin/discordgo"

const (
	walletInfoName = "walletinfo"
	sendName       = "send"
)

// Definitions returns the slash-command definitions the bot serves. The
// register-commands binary pushes the same set, so registration and dispatch
// cannot drift apart.
func Definitions() []*discordgo.ApplicationCommand {
	return []*discordgo.ApplicationCommand{
		{
			Name:        walletInfoName,
			Description: "Get complete Solana wallet info (SOL + all token balances)",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "address",
					Description: "Public key of the wallet",
					Required:    true,
				},
			},
		},
		{
			Name:        sendName,
			Description: "Generate a transaction for sending tokens (sign in your wallet)",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "from",
					Description: "Your wallet's public address",
					Required:    true,
				},
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "to",
					Description: "Recipient's public key",
					Required:    true,
				},
				{
					Type:        discordgo.ApplicationCommandOptionNumber,
					Name:        "amount",
					Description: "Amount of token to send",
					Required:    true,
				},
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "token",
					Description: "Token mint address (leave empty for first available)",
					Required:    false,
				},
			},
		},
	}
}
