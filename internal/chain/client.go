package chain

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
	"github.com/sirupsen/logrus"
)

// Client wraps the Solana JSON-RPC client behind the few read calls the bot
// needs. It holds no state besides the connection and is safe for concurrent
// use.
type Client struct {
	rpc     *rpc.Client
	log     *logrus.Entry
	metrics *metrics
}

func New(endpoint string, log *logrus.Logger) *Client {
	return &Client{
		rpc:     rpc.New(endpoint),
		log:     log.WithField("module", "chain"),
		metrics: newMetrics(),
	}
}

func (c *Client) Balance(ctx context.Context, owner solana.PublicKey) (uint64, error) {
	defer c.observe("getBalance", time.Now())

	out, err := c.rpc.GetBalance(ctx, owner, rpc.CommitmentFinalized)
	if err != nil {
		return 0, fmt.Errorf("rpc.GetBalance: %w", err)
	}

	return out.Value, nil
}

func (c *Client) TokenAccounts(ctx context.Context, owner solana.PublicKey) ([]TokenAccount, error) {
	defer c.observe("getTokenAccountsByOwner", time.Now())

	programID := solana.TokenProgramID

	out, err := c.rpc.GetTokenAccountsByOwner(ctx, owner,
		&rpc.GetTokenAccountsConfig{ProgramId: &programID},
		&rpc.GetTokenAccountsOpts{Encoding: solana.EncodingJSONParsed},
	)
	if err != nil {
		return nil, fmt.Errorf("rpc.GetTokenAccountsByOwner: %w", err)
	}

	accounts := make([]TokenAccount, 0, len(out.Value))

	for _, keyed := range out.Value {
		if keyed.Account.Data == nil {
			c.log.Warningf("token account %s has no data, skipping", keyed.Pubkey)

			continue
		}

		account, err := parseTokenAccount(keyed.Account.Data.GetRawJSON())
		if err != nil {
			return nil, fmt.Errorf("parseTokenAccount: %w", err)
		}

		accounts = append(accounts, account)
	}

	return accounts, nil
}

func (c *Client) RecentSignatures(ctx context.Context, owner solana.PublicKey, limit int) ([]SignatureInfo, error) {
	defer c.observe("getSignaturesForAddress", time.Now())

	out, err := c.rpc.GetSignaturesForAddressWithOpts(ctx, owner, &rpc.GetSignaturesForAddressOpts{
		Limit:      &limit,
		Commitment: rpc.CommitmentFinalized,
	})
	if err != nil {
		return nil, fmt.Errorf("rpc.GetSignaturesForAddressWithOpts: %w", err)
	}

	signatures := make([]SignatureInfo, 0, len(out))

	for _, sig := range out {
		info := SignatureInfo{
			Signature: sig.Signature.String(),
			Failed:    sig.Err != nil,
		}

		if sig.BlockTime != nil {
			blockTime := sig.BlockTime.Time()
			info.Time = &blockTime
		}

		signatures = append(signatures, info)
	}

	return signatures, nil
}

func (c *Client) LatestBlockhash(ctx context.Context) (solana.Hash, error) {
	defer c.observe("getLatestBlockhash", time.Now())

	out, err := c.rpc.GetLatestBlockhash(ctx, rpc.CommitmentFinalized)
	if err != nil {
		return solana.Hash{}, fmt.Errorf("rpc.GetLatestBlockhash: %w", err)
	}

	return out.Value.Blockhash, nil
}

func (c *Client) observe(method string, started time.Time) {
	c.metrics.duration.WithLabelValues(method).Observe(time.Since(started).Seconds())
}

type parsedTokenAccount struct {
	Parsed struct {
		Info struct {
			Mint        string `json:"mint"`
			TokenAmount struct {
				Amount   string   `json:"amount"`
				Decimals uint8    `json:"decimals"`
				UIAmount *float64 `json:"uiAmount"`
			} `json:"tokenAmount"`
		} `json:"info"`
	} `json:"parsed"`
}

func parseTokenAccount(raw []byte) (TokenAccount, error) {
	var parsed parsedTokenAccount

	err := json.Unmarshal(raw, &parsed)
	if err != nil {
		return TokenAccount{}, fmt.Errorf("json.Unmarshal: %w", err)
	}

	rawAmount, err := strconv.ParseUint(parsed.Parsed.Info.TokenAmount.Amount, 10, 64)
	if err != nil {
		return TokenAccount{}, fmt.Errorf("strconv.ParseUint: %w", err)
	}

	var uiAmount float64
	if parsed.Parsed.Info.TokenAmount.UIAmount != nil {
		uiAmount = *parsed.Parsed.Info.TokenAmount.UIAmount
	}

	return TokenAccount{
		Mint:      parsed.Parsed.Info.Mint,
		RawAmount: rawAmount,
		UIAmount:  uiAmount,
		Decimals:  parsed.Parsed.Info.TokenAmount.Decimals,
	}, nil
}
