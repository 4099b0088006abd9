package bot

import (
	"context"
	"errors"

	"github.com/bwmarrin/discordgo"
	"github.com/sirupsen/logrus"

	"solana-wallet-bot/internal/models"
	"solana-wallet-bot/internal/walletinfo"
)

type WalletInfoService interface {
	Report(ctx context.Context, address string) (models.WalletReport, error)
}

type WalletInfoCommand struct {
	service WalletInfoService
}

func NewWalletInfoCommand(service WalletInfoService) *WalletInfoCommand {
	return &WalletInfoCommand{service: service}
}

func (c *WalletInfoCommand) Name() string {
	return walletInfoName
}

func (c *WalletInfoCommand) Execute(ctx context.Context, responder Responder,
	data discordgo.ApplicationCommandInteractionData, log *logrus.Entry,
) error {
	err := responder.Defer(false)
	if err != nil {
		log.Warningf("responder.Defer: %s", err)

		return err
	}

	report, err := c.service.Report(ctx, optionsByName(data).str("address"))
	if err != nil {
		log.Warningf("service.Report: %s", err)
		edit(responder, log, walletInfoMessage(err))

		return err
	}

	edit(responder, log, walletinfo.Render(report))

	return nil
}

func walletInfoMessage(err error) string {
	switch {
	case errors.Is(err, walletinfo.ErrInvalidAddress):
		return "Invalid public key."
	case errors.Is(err, walletinfo.ErrDataFetch):
		return "Unable to fetch wallet data, try again later."
	default:
		return "Error executing command."
	}
}

func edit(responder Responder, log *logrus.Entry, content string) {
	err := responder.Edit(content)
	if err != nil {
		log.Warningf("responder.Edit: %s", err)
	}
}
