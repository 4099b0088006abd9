package walletinfo

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"

	"solana-wallet-bot/internal/models"
)

const (
	lamportsPerSol = 1e9
	maxAssetLines  = 10
	txExplorerURL  = "https://solscan.io/tx/"
)

// Render formats a report as the Discord-markdown reply of the walletinfo
// command.
func Render(report models.WalletReport) string {
	var b strings.Builder

	fmt.Fprintf(&b, "**Wallet:** `%s`\n\n", report.Address)
	fmt.Fprintf(&b, "**SOL Balance:** `%.4f SOL`\n\n", float64(report.Lamports)/lamportsPerSol)

	if len(report.Assets) > 0 {
		b.WriteString("**Token Balances:**\n")

		shown := report.Assets
		if len(shown) > maxAssetLines {
			shown = shown[:maxAssetLines]
		}

		for _, asset := range shown {
			fmt.Fprintf(&b, "• **%s:** `%s`\n", asset.Symbol, humanize.Commaf(asset.Amount))
		}

		if rest := len(report.Assets) - maxAssetLines; rest > 0 {
			fmt.Fprintf(&b, "\n*...and %d more tokens*\n", rest)
		}
	} else {
		b.WriteString("**Token Balances:** *No token accounts found*\n")
	}

	if len(report.Transactions) > 0 {
		b.WriteString("\n**Recent Transactions:**\n")

		for _, tx := range report.Transactions {
			when := "Unknown time"
			if tx.Time != nil {
				when = humanize.Time(*tx.Time)
			}

			status := "Success"
			if tx.Failed {
				status = "Failed"
			}

			fmt.Fprintf(&b, "• [%s...](<%s>) - %s @ %s\n",
				abbreviateSignature(tx.Signature), txExplorerURL+tx.Signature, status, when)
		}
	} else {
		b.WriteString("\n**Recent Transactions:** *None found*\n")
	}

	return b.String()
}

func abbreviateSignature(signature string) string {
	if len(signature) <= 6 {
		return signature
	}

	return signature[:6]
}
