package bot

import (
	"context"
	"errors"

	"github.com/bwmarrin/discordgo"
	"github.com/sirupsen/logrus"

	"solana-wallet-bot/internal/models"
	"solana-wallet-bot/internal/send"
)

type SendService interface {
	BuildTransfer(ctx context.Context, req models.TransferRequest) (models.UnsignedTransfer, error)
}

type SendCommand struct {
	service SendService
	network send.Network
}

func NewSendCommand(service SendService, network send.Network) *SendCommand {
	return &SendCommand{service: service, network: network}
}

func (c *SendCommand) Name() string {
	return sendName
}

func (c *SendCommand) Execute(ctx context.Context, responder Responder,
	data discordgo.ApplicationCommandInteractionData, log *logrus.Entry,
) error {
	err := responder.Defer(true)
	if err != nil {
		log.Warningf("responder.Defer: %s", err)

		return err
	}

	opts := optionsByName(data)

	transfer, err := c.service.BuildTransfer(ctx, models.TransferRequest{
		From:   opts.str("from"),
		To:     opts.str("to"),
		Token:  opts.str("token"),
		Amount: opts.number("amount"),
	})
	if err != nil {
		log.Warningf("service.BuildTransfer: %s", err)
		edit(responder, log, sendMessage(err))

		return err
	}

	edit(responder, log, send.Render(transfer, c.network))

	return nil
}

func sendMessage(err error) string {
	switch {
	case errors.Is(err, send.ErrInvalidAddress):
		return "Invalid public key."
	case errors.Is(err, send.ErrInvalidAmount):
		return "Amount must be a positive number."
	case errors.Is(err, send.ErrAssetNotFound):
		return "Specified token not found or has zero balance."
	case errors.Is(err, send.ErrNoAssetsAvailable):
		return "No tokens or SOL balance found in your account."
	case errors.Is(err, send.ErrDataFetch):
		return "Unable to fetch your balances, try again later."
	default:
		return "Error occurred while building the transaction."
	}
}
