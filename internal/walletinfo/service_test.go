package walletinfo

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/gagliardetto/solana-go"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"solana-wallet-bot/internal/assets"
	"solana-wallet-bot/internal/chain"
)

const (
	testAddress = "TokenkegQfeZyiNwAJbNbGKPFXCWuBvf9Ss623VQ5DA"
	usdcMint    = "EPjFWdd5AufqSSqeM2qN1xzybapC8G4wEGGkZwyTDt1v"
	usdtMint    = "Es9vMFrzaCERmJfrF4H2FYD4KCoNkY11McCe8BenwNYB"
)

type fakeChain struct {
	lamports    uint64
	accounts    []chain.TokenAccount
	history     []chain.SignatureInfo
	balanceErr  error
	accountsErr error
	historyErr  error
	calls       atomic.Int32
}

func (f *fakeChain) Balance(_ context.Context, _ solana.PublicKey) (uint64, error) {
	f.calls.Add(1)

	return f.lamports, f.balanceErr
}

func (f *fakeChain) TokenAccounts(_ context.Context, _ solana.PublicKey) ([]chain.TokenAccount, error) {
	f.calls.Add(1)

	return f.accounts, f.accountsErr
}

func (f *fakeChain) RecentSignatures(_ context.Context, _ solana.PublicKey, _ int) ([]chain.SignatureInfo, error) {
	f.calls.Add(1)

	return f.history, f.historyErr
}

func newTestService(chainReader ChainReader) *Service {
	return New(chainReader, assets.NewRegistry(), logrus.New())
}

func TestReportInvalidAddress(t *testing.T) {
	fake := &fakeChain{}
	service := newTestService(fake)

	for _, address := range []string{"", "abc", "not-base58-0OIl", "tooshort", testAddress + testAddress} {
		_, err := service.Report(context.Background(), address)

		require.ErrorIs(t, err, ErrInvalidAddress, "address %q", address)
	}

	assert.Zero(t, fake.calls.Load(), "no RPC call may be issued for invalid input")
}

func TestReportNativeOnly(t *testing.T) {
	fake := &fakeChain{lamports: 2_500_000_000}
	service := newTestService(fake)

	report, err := service.Report(context.Background(), testAddress)
	require.NoError(t, err)

	assert.Equal(t, testAddress, report.Address)
	assert.Equal(t, uint64(2_500_000_000), report.Lamports)
	assert.Empty(t, report.Assets)
	assert.Empty(t, report.Transactions)
	assert.Equal(t, int32(3), fake.calls.Load())
}

func TestReportAssetRanking(t *testing.T) {
	fake := &fakeChain{
		lamports: 1,
		accounts: []chain.TokenAccount{
			{Mint: usdcMint, RawAmount: 5_000_000, UIAmount: 5, Decimals: 6},
			{Mint: "zero11111111111111111111111111111111111111", RawAmount: 0, UIAmount: 0, Decimals: 6},
			{Mint: usdtMint, RawAmount: 25_000_000, UIAmount: 25, Decimals: 6},
			{Mint: "tied11111111111111111111111111111111111111", RawAmount: 5_000_000_000, UIAmount: 5, Decimals: 9},
		},
	}
	service := newTestService(fake)

	report, err := service.Report(context.Background(), testAddress)
	require.NoError(t, err)

	require.Len(t, report.Assets, 3)
	assert.Equal(t, "USDT", report.Assets[0].Symbol)

	// Equal amounts keep the order the endpoint returned them in.
	assert.Equal(t, usdcMint, report.Assets[1].Mint)
	assert.Equal(t, "tied11111111111111111111111111111111111111", report.Assets[2].Mint)

	for _, asset := range report.Assets {
		assert.Positive(t, asset.Amount)
	}
}

func TestReportUnknownMintSymbol(t *testing.T) {
	fake := &fakeChain{
		accounts: []chain.TokenAccount{
			{Mint: "BanxbTpxUCdVu1Da77M3CtLJ82Y82KqbXBUb2cb3tPx2", RawAmount: 10, UIAmount: 10, Decimals: 0},
		},
	}
	service := newTestService(fake)

	report, err := service.Report(context.Background(), testAddress)
	require.NoError(t, err)

	require.Len(t, report.Assets, 1)
	assert.Equal(t, "Banx...", report.Assets[0].Symbol)
}

func TestReportFailFast(t *testing.T) {
	readErr := errors.New("rpc: connection refused")

	tests := []struct {
		name string
		fake *fakeChain
	}{
		{name: "balance read fails", fake: &fakeChain{balanceErr: readErr}},
		{name: "token accounts read fails", fake: &fakeChain{accountsErr: readErr}},
		{name: "signatures read fails", fake: &fakeChain{historyErr: readErr}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := newTestService(tt.fake)

			report, err := service.Report(context.Background(), testAddress)

			require.ErrorIs(t, err, ErrDataFetch)
			assert.ErrorIs(t, err, readErr)
			assert.Empty(t, report.Address, "no partial report on failure")
		})
	}
}
