package send

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/programs/system"
	"github.com/gagliardetto/solana-go/programs/token"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"solana-wallet-bot/internal/assets"
	"solana-wallet-bot/internal/chain"
	"solana-wallet-bot/internal/models"
)

const (
	nativeSelector = "sol"
	nativeDecimals = 9
)

var (
	ErrInvalidAddress    = errors.New("address is not a valid public key")
	ErrInvalidAmount     = errors.New("amount must be a positive number")
	ErrAssetNotFound     = errors.New("specified token not found or has zero balance")
	ErrNoAssetsAvailable = errors.New("no tokens or SOL balance found")
	ErrDataFetch         = errors.New("unable to fetch sender balances")
	ErrConstruction      = errors.New("unable to build transaction")
)

type ChainClient interface {
	Balance(ctx context.Context, owner solana.PublicKey) (uint64, error)
	TokenAccounts(ctx context.Context, owner solana.PublicKey) ([]chain.TokenAccount, error)
	LatestBlockhash(ctx context.Context) (solana.Hash, error)
}

type Service struct {
	chain    ChainClient
	registry *assets.Registry
	log      *logrus.Entry
	metrics  *metrics
}

func New(chainClient ChainClient, registry *assets.Registry, log *logrus.Logger) *Service {
	return &Service{
		chain:    chainClient,
		registry: registry,
		log:      log.WithField("module", "send"),
		metrics:  serviceMetrics,
	}
}

// candidate is one transferable asset of the sender. The candidate list is
// ordered native first, then token accounts in the order the endpoint
// returned them; the no-selector default picks the head of that list.
type candidate struct {
	native   bool
	mint     string
	raw      uint64
	decimals uint8
}

// BuildTransfer validates the request, resolves the asset to move and returns
// an unsigned, base64-encoded transfer transaction. It never signs and never
// submits anything.
func (s *Service) BuildTransfer(ctx context.Context, req models.TransferRequest) (models.UnsignedTransfer, error) {
	if req.Amount <= 0 || math.IsNaN(req.Amount) || math.IsInf(req.Amount, 0) {
		return models.UnsignedTransfer{}, ErrInvalidAmount
	}

	sender, err := solana.PublicKeyFromBase58(req.From)
	if err != nil {
		return models.UnsignedTransfer{}, ErrInvalidAddress
	}

	recipient, err := solana.PublicKeyFromBase58(req.To)
	if err != nil {
		return models.UnsignedTransfer{}, ErrInvalidAddress
	}

	var (
		lamports uint64
		accounts []chain.TokenAccount
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error

		lamports, err = s.chain.Balance(gctx, sender)
		if err != nil {
			return fmt.Errorf("chain.Balance: %w", err)
		}

		return nil
	})

	g.Go(func() error {
		var err error

		accounts, err = s.chain.TokenAccounts(gctx, sender)
		if err != nil {
			return fmt.Errorf("chain.TokenAccounts: %w", err)
		}

		return nil
	})

	err = g.Wait()
	if err != nil {
		s.log.Warningf("balances for %s: %s", req.From, err)

		return models.UnsignedTransfer{}, errors.Join(ErrDataFetch, err)
	}

	candidates := buildCandidates(lamports, accounts)
	if len(candidates) == 0 {
		return models.UnsignedTransfer{}, ErrNoAssetsAvailable
	}

	chosen, err := resolveAsset(candidates, req.Token)
	if err != nil {
		return models.UnsignedTransfer{}, err
	}

	units, err := baseUnits(req.Amount, chosen.decimals)
	if err != nil {
		return models.UnsignedTransfer{}, err
	}

	instruction, err := transferInstruction(chosen, sender, recipient, units)
	if err != nil {
		s.log.Warningf("transfer instruction for %s: %s", req.From, err)

		return models.UnsignedTransfer{}, errors.Join(ErrConstruction, err)
	}

	blockhash, err := s.chain.LatestBlockhash(ctx)
	if err != nil {
		s.log.Warningf("latest blockhash: %s", err)

		return models.UnsignedTransfer{}, errors.Join(ErrDataFetch, err)
	}

	blob, err := serializeUnsigned(instruction, blockhash, sender)
	if err != nil {
		s.log.Warningf("serialize transfer for %s: %s", req.From, err)

		return models.UnsignedTransfer{}, errors.Join(ErrConstruction, err)
	}

	s.metrics.built.Inc()

	symbol := assets.NativeSymbol
	if !chosen.native {
		symbol = s.registry.Symbol(chosen.mint)
	}

	return models.UnsignedTransfer{
		Blob:      blob,
		Symbol:    symbol,
		Amount:    req.Amount,
		Recipient: req.To,
		Native:    chosen.native,
	}, nil
}

func buildCandidates(lamports uint64, accounts []chain.TokenAccount) []candidate {
	candidates := make([]candidate, 0, len(accounts)+1)

	if lamports > 0 {
		candidates = append(candidates, candidate{native: true, raw: lamports, decimals: nativeDecimals})
	}

	for _, account := range accounts {
		if account.RawAmount == 0 {
			continue
		}

		candidates = append(candidates, candidate{
			mint:     account.Mint,
			raw:      account.RawAmount,
			decimals: account.Decimals,
		})
	}

	return candidates
}

func resolveAsset(candidates []candidate, selector string) (candidate, error) {
	if selector == "" {
		return candidates[0], nil
	}

	if strings.EqualFold(selector, nativeSelector) {
		for _, c := range candidates {
			if c.native {
				return c, nil
			}
		}

		return candidate{}, ErrAssetNotFound
	}

	for _, c := range candidates {
		if c.mint == selector {
			return c, nil
		}
	}

	return candidate{}, ErrAssetNotFound
}

// baseUnits converts a human-readable amount to the asset's smallest unit,
// rounding to the nearest integer.
func baseUnits(amount float64, decimals uint8) (uint64, error) {
	units := decimal.NewFromFloat(amount).Shift(int32(decimals)).Round(0)
	if !units.IsPositive() {
		return 0, ErrInvalidAmount
	}

	value := units.BigInt()
	if !value.IsUint64() {
		return 0, ErrInvalidAmount
	}

	return value.Uint64(), nil
}

func transferInstruction(chosen candidate, sender, recipient solana.PublicKey, units uint64) (solana.Instruction, error) {
	if chosen.native {
		return system.NewTransferInstruction(units, sender, recipient).Build(), nil
	}

	mint, err := solana.PublicKeyFromBase58(chosen.mint)
	if err != nil {
		return nil, fmt.Errorf("solana.PublicKeyFromBase58: %w", err)
	}

	source, _, err := solana.FindAssociatedTokenAddress(sender, mint)
	if err != nil {
		return nil, fmt.Errorf("solana.FindAssociatedTokenAddress sender: %w", err)
	}

	destination, _, err := solana.FindAssociatedTokenAddress(recipient, mint)
	if err != nil {
		return nil, fmt.Errorf("solana.FindAssociatedTokenAddress recipient: %w", err)
	}

	return token.NewTransferInstruction(units, source, destination, sender, nil).Build(), nil
}

func serializeUnsigned(instruction solana.Instruction, blockhash solana.Hash, payer solana.PublicKey) (string, error) {
	tx, err := solana.NewTransaction([]solana.Instruction{instruction}, blockhash, solana.TransactionPayer(payer))
	if err != nil {
		return "", fmt.Errorf("solana.NewTransaction: %w", err)
	}

	// Zero-valued slots for every required signer, so the blob decodes as a
	// transaction with no signatures attached.
	tx.Signatures = make([]solana.Signature, int(tx.Message.Header.NumRequiredSignatures))

	raw, err := tx.MarshalBinary()
	if err != nil {
		return "", fmt.Errorf("tx.MarshalBinary: %w", err)
	}

	return base64.StdEncoding.EncodeToString(raw), nil
}
