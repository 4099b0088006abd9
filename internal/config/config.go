package config

import (
	"errors"

	"github.com/gagliardetto/solana-go/rpc"
	"github.com/spf13/viper"
)

var ErrMissingCredentials = errors.New("DISCORD_TOKEN and DISCORD_APP_ID must be set")

// Config is the environment configuration of both binaries, read once at
// process start.
type Config struct {
	DiscordToken   string
	AppID          string
	GuildID        string
	RPCEndpoint    string
	MonitoringAddr string
}

func Load() (Config, error) {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("solana_rpc", rpc.MainNetBeta_RPC)
	v.SetDefault("monitoring_addr", ":8080")

	cfg := Config{
		DiscordToken:   v.GetString("discord_token"),
		AppID:          v.GetString("discord_app_id"),
		GuildID:        v.GetString("discord_guild_id"),
		RPCEndpoint:    v.GetString("solana_rpc"),
		MonitoringAddr: v.GetString("monitoring_addr"),
	}

	if cfg.DiscordToken == "" || cfg.AppID == "" {
		return Config{}, ErrMissingCredentials
	}

	return cfg, nil
}
