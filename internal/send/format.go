package send

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/dustin/go-humanize"

	"solana-wallet-bot/internal/models"
)

// Network labels the cluster a transfer was built against, for the reply text
// and the explorer inspector link.
type Network struct {
	Label   string
	Cluster string
}

func NetworkFromEndpoint(endpoint string) Network {
	if strings.Contains(endpoint, "devnet") {
		return Network{Label: "Devnet", Cluster: "devnet"}
	}

	return Network{Label: "Mainnet", Cluster: "mainnet-beta"}
}

// Render formats an unsigned transfer as the Discord-markdown reply of the
// send command, including the signing instructions.
func Render(transfer models.UnsignedTransfer, network Network) string {
	unit := "tokens"
	if transfer.Native {
		unit = "SOL"
	}

	amount := humanize.Ftoa(transfer.Amount)

	var b strings.Builder

	b.WriteString("**Transaction Created Successfully!**\n\n")
	fmt.Fprintf(&b, "**Token:** %s\n", transfer.Symbol)
	fmt.Fprintf(&b, "**Amount:** %s\n", amount)
	fmt.Fprintf(&b, "**To:** %s\n\n", transfer.Recipient)

	b.WriteString("**How to sign this transaction:**\n\n")

	b.WriteString("**Option 1: Direct Phantom Link (if Phantom is installed)**\n")
	fmt.Fprintf(&b, "[Open in Phantom](phantom://sign?transaction=%s)\n\n", url.QueryEscape(transfer.Blob))

	b.WriteString("**Option 2: Copy & Paste Method**\n")
	b.WriteString("1. Open your Phantom or Solflare wallet app\n")
	b.WriteString("2. Look for \"Import Transaction\" or \"Sign Transaction\"\n")
	b.WriteString("3. Paste this base64 transaction:\n")
	fmt.Fprintf(&b, "```\n%s\n```\n\n", transfer.Blob)

	b.WriteString("**Option 3: Solana Explorer**\n")
	fmt.Fprintf(&b, "1. Go to: https://explorer.solana.com/tx/inspector?cluster=%s\n", network.Cluster)
	b.WriteString("2. Paste the base64 transaction above\n")
	b.WriteString("3. Connect your wallet to review and sign\n\n")

	b.WriteString("**Transaction Details:**\n")
	fmt.Fprintf(&b, "• Network: %s\n", network.Label)
	fmt.Fprintf(&b, "• Amount: %s %s\n\n", amount, unit)

	b.WriteString("This transaction is not submitted by the bot; sign and broadcast it from your own wallet.")

	return b.String()
}
