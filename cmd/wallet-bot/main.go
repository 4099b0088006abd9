package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"solana-wallet-bot/internal/assets"
	"solana-wallet-bot/internal/bot"
	"solana-wallet-bot/internal/chain"
	"solana-wallet-bot/internal/config"
	"solana-wallet-bot/internal/monitoring"
	"solana-wallet-bot/internal/send"
	"solana-wallet-bot/internal/walletinfo"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	defer cancel()

	logger := logrus.StandardLogger()

	cfg, err := config.Load()
	if err != nil {
		logger.Panicf("config.Load: %s", err)
	}

	chainClient := chain.New(cfg.RPCEndpoint, logger)
	registry := assets.NewRegistry()

	walletInfoService := walletinfo.New(chainClient, registry, logger)
	sendService := send.New(chainClient, registry, logger)

	commands := bot.NewRegistry(
		bot.NewWalletInfoCommand(walletInfoService),
		bot.NewSendCommand(sendService, send.NetworkFromEndpoint(cfg.RPCEndpoint)),
	)

	discordBot, err := bot.New(cfg.DiscordToken, commands, logger)
	if err != nil {
		logger.Panicf("bot.New: %s", err)
	}

	monitoringServer := monitoring.New(cfg.MonitoringAddr, logger)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return discordBot.Run(gctx)
	})

	g.Go(func() error {
		return monitoringServer.Run(gctx)
	})

	err = g.Wait()
	if err != nil {
		logger.Panicf("g.Wait: %s", err)
	}
}
