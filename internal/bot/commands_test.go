package bot

import (
	"context"
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"solana-wallet-bot/internal/models"
	"solana-wallet-bot/internal/send"
	"solana-wallet-bot/internal/walletinfo"
)

type stubResponder struct {
	deferred  int
	ephemeral bool
	edits     []string
}

func (r *stubResponder) Defer(ephemeral bool) error {
	r.deferred++
	r.ephemeral = ephemeral

	return nil
}

func (r *stubResponder) Edit(content string) error {
	r.edits = append(r.edits, content)

	return nil
}

type stubWalletInfoService struct {
	report  models.WalletReport
	err     error
	address string
}

func (s *stubWalletInfoService) Report(_ context.Context, address string) (models.WalletReport, error) {
	s.address = address

	return s.report, s.err
}

type stubSendService struct {
	transfer models.UnsignedTransfer
	err      error
	req      models.TransferRequest
}

func (s *stubSendService) BuildTransfer(_ context.Context, req models.TransferRequest) (models.UnsignedTransfer, error) {
	s.req = req

	return s.transfer, s.err
}

func testLog() *logrus.Entry {
	return logrus.New().WithField("module", "test")
}

func stringOption(name, value string) *discordgo.ApplicationCommandInteractionDataOption {
	return &discordgo.ApplicationCommandInteractionDataOption{
		Name:  name,
		Type:  discordgo.ApplicationCommandOptionString,
		Value: value,
	}
}

func numberOption(name string, value float64) *discordgo.ApplicationCommandInteractionDataOption {
	return &discordgo.ApplicationCommandInteractionDataOption{
		Name:  name,
		Type:  discordgo.ApplicationCommandOptionNumber,
		Value: value,
	}
}

func TestWalletInfoCommand(t *testing.T) {
	t.Run("success replies with the report", func(t *testing.T) {
		service := &stubWalletInfoService{report: models.WalletReport{Address: "addr", Lamports: 1_000_000_000}}
		responder := &stubResponder{}
		command := NewWalletInfoCommand(service)

		data := discordgo.ApplicationCommandInteractionData{
			Name:    walletInfoName,
			Options: []*discordgo.ApplicationCommandInteractionDataOption{stringOption("address", "addr")},
		}

		err := command.Execute(context.Background(), responder, data, testLog())
		require.NoError(t, err)

		assert.Equal(t, "addr", service.address)
		assert.Equal(t, 1, responder.deferred)
		assert.False(t, responder.ephemeral)
		require.Len(t, responder.edits, 1)
		assert.Contains(t, responder.edits[0], "**Wallet:** `addr`")
	})

	t.Run("invalid address maps to a concise message", func(t *testing.T) {
		service := &stubWalletInfoService{err: walletinfo.ErrInvalidAddress}
		responder := &stubResponder{}
		command := NewWalletInfoCommand(service)

		err := command.Execute(context.Background(), responder, discordgo.ApplicationCommandInteractionData{}, testLog())
		require.Error(t, err)

		require.Len(t, responder.edits, 1)
		assert.Equal(t, "Invalid public key.", responder.edits[0])
	})

	t.Run("fetch failure maps to a concise message", func(t *testing.T) {
		service := &stubWalletInfoService{err: walletinfo.ErrDataFetch}
		responder := &stubResponder{}
		command := NewWalletInfoCommand(service)

		err := command.Execute(context.Background(), responder, discordgo.ApplicationCommandInteractionData{}, testLog())
		require.Error(t, err)

		require.Len(t, responder.edits, 1)
		assert.Equal(t, "Unable to fetch wallet data, try again later.", responder.edits[0])
	})
}

func TestSendCommand(t *testing.T) {
	network := send.Network{Label: "Devnet", Cluster: "devnet"}

	data := discordgo.ApplicationCommandInteractionData{
		Name: sendName,
		Options: []*discordgo.ApplicationCommandInteractionDataOption{
			stringOption("from", "sender"),
			stringOption("to", "recipient"),
			stringOption("token", "sol"),
			numberOption("amount", 1.5),
		},
	}

	t.Run("success replies with the blob ephemerally", func(t *testing.T) {
		service := &stubSendService{transfer: models.UnsignedTransfer{
			Blob: "AQID", Symbol: "SOL", Amount: 1.5, Recipient: "recipient", Native: true,
		}}
		responder := &stubResponder{}
		command := NewSendCommand(service, network)

		err := command.Execute(context.Background(), responder, data, testLog())
		require.NoError(t, err)

		assert.Equal(t, models.TransferRequest{From: "sender", To: "recipient", Token: "sol", Amount: 1.5}, service.req)
		assert.Equal(t, 1, responder.deferred)
		assert.True(t, responder.ephemeral)
		require.Len(t, responder.edits, 1)
		assert.Contains(t, responder.edits[0], "AQID")
	})

	t.Run("missing token option defaults to empty selector", func(t *testing.T) {
		service := &stubSendService{}
		responder := &stubResponder{}
		command := NewSendCommand(service, network)

		partial := discordgo.ApplicationCommandInteractionData{
			Name: sendName,
			Options: []*discordgo.ApplicationCommandInteractionDataOption{
				stringOption("from", "sender"),
				stringOption("to", "recipient"),
				numberOption("amount", 1),
			},
		}

		err := command.Execute(context.Background(), responder, partial, testLog())
		require.NoError(t, err)

		assert.Empty(t, service.req.Token)
	})

	t.Run("error maps to a concise message", func(t *testing.T) {
		tests := []struct {
			err  error
			want string
		}{
			{err: send.ErrInvalidAddress, want: "Invalid public key."},
			{err: send.ErrInvalidAmount, want: "Amount must be a positive number."},
			{err: send.ErrAssetNotFound, want: "Specified token not found or has zero balance."},
			{err: send.ErrNoAssetsAvailable, want: "No tokens or SOL balance found in your account."},
			{err: send.ErrDataFetch, want: "Unable to fetch your balances, try again later."},
			{err: assert.AnError, want: "Error occurred while building the transaction."},
		}

		for _, tt := range tests {
			service := &stubSendService{err: tt.err}
			responder := &stubResponder{}
			command := NewSendCommand(service, network)

			err := command.Execute(context.Background(), responder, data, testLog())
			require.Error(t, err)

			require.Len(t, responder.edits, 1)
			assert.Equal(t, tt.want, responder.edits[0])
		}
	})
}

func TestRegistry(t *testing.T) {
	service := &stubWalletInfoService{}
	registry := NewRegistry(NewWalletInfoCommand(service), NewSendCommand(&stubSendService{}, send.Network{}))

	command, ok := registry.Lookup(walletInfoName)
	require.True(t, ok)
	assert.Equal(t, walletInfoName, command.Name())

	command, ok = registry.Lookup(sendName)
	require.True(t, ok)
	assert.Equal(t, sendName, command.Name())

	_, ok = registry.Lookup("unknown")
	assert.False(t, ok)
}

func TestDefinitionsMatchRegisteredCommands(t *testing.T) {
	definitions := Definitions()

	require.Len(t, definitions, 2)
	assert.Equal(t, walletInfoName, definitions[0].Name)
	assert.Equal(t, sendName, definitions[1].Name)

	for _, definition := range definitions {
		assert.NotEmpty(t, definition.Description)
		assert.NotEmpty(t, definition.Options)
	}
}
