package walletinfo

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/gagliardetto/solana-go"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"solana-wallet-bot/internal/assets"
	"solana-wallet-bot/internal/chain"
	"solana-wallet-bot/internal/models"
)

// historyLimit is the number of recent signatures fetched per report.
const historyLimit = 5

var (
	ErrInvalidAddress = errors.New("address is not a valid public key")
	ErrDataFetch      = errors.New("unable to fetch wallet data")
)

type ChainReader interface {
	Balance(ctx context.Context, owner solana.PublicKey) (uint64, error)
	TokenAccounts(ctx context.Context, owner solana.PublicKey) ([]chain.TokenAccount, error)
	RecentSignatures(ctx context.Context, owner solana.PublicKey, limit int) ([]chain.SignatureInfo, error)
}

type Service struct {
	chain    ChainReader
	registry *assets.Registry
	log      *logrus.Entry
	metrics  *metrics
}

func New(chainReader ChainReader, registry *assets.Registry, log *logrus.Logger) *Service {
	return &Service{
		chain:    chainReader,
		registry: registry,
		log:      log.WithField("module", "walletinfo"),
		metrics:  serviceMetrics,
	}
}

// Report aggregates the native balance, token balances and recent history of
// one address. The three reads are issued concurrently; if any of them fails
// the whole report fails and nothing partial is returned.
func (s *Service) Report(ctx context.Context, address string) (models.WalletReport, error) {
	owner, err := solana.PublicKeyFromBase58(address)
	if err != nil {
		return models.WalletReport{}, ErrInvalidAddress
	}

	var (
		lamports uint64
		accounts []chain.TokenAccount
		history  []chain.SignatureInfo
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error

		lamports, err = s.chain.Balance(gctx, owner)
		if err != nil {
			return fmt.Errorf("chain.Balance: %w", err)
		}

		return nil
	})

	g.Go(func() error {
		var err error

		accounts, err = s.chain.TokenAccounts(gctx, owner)
		if err != nil {
			return fmt.Errorf("chain.TokenAccounts: %w", err)
		}

		return nil
	})

	g.Go(func() error {
		var err error

		history, err = s.chain.RecentSignatures(gctx, owner, historyLimit)
		if err != nil {
			return fmt.Errorf("chain.RecentSignatures: %w", err)
		}

		return nil
	})

	err = g.Wait()
	if err != nil {
		s.log.Warningf("wallet report for %s: %s", address, err)
		s.metrics.fetchErrors.Inc()

		return models.WalletReport{}, errors.Join(ErrDataFetch, err)
	}

	return models.WalletReport{
		Address:      address,
		Lamports:     lamports,
		Assets:       s.rankAssets(accounts),
		Transactions: toSummaries(history),
	}, nil
}

// rankAssets drops zero balances and orders the rest descending by their
// human-readable amount. The sort is stable so equal balances keep the order
// the endpoint returned them in.
func (s *Service) rankAssets(accounts []chain.TokenAccount) []models.AssetBalance {
	ranked := make([]models.AssetBalance, 0, len(accounts))

	for _, account := range accounts {
		if account.UIAmount <= 0 {
			continue
		}

		ranked = append(ranked, models.AssetBalance{
			Mint:      account.Mint,
			Symbol:    s.registry.Symbol(account.Mint),
			Amount:    account.UIAmount,
			RawAmount: account.RawAmount,
			Decimals:  account.Decimals,
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Amount > ranked[j].Amount
	})

	return ranked
}

func toSummaries(history []chain.SignatureInfo) []models.TxSummary {
	summaries := make([]models.TxSummary, 0, len(history))

	for _, sig := range history {
		summaries = append(summaries, models.TxSummary{
			Signature: sig.Signature,
			Time:      sig.Time,
			Failed:    sig.Failed,
		})
	}

	return summaries
}
