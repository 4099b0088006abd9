package assets

// NativeSymbol is the display symbol of the chain's base currency.
const NativeSymbol = "SOL"

// Mint addresses of commonly traded SPL tokens.
var knownMints = map[string]string{
	"EPjFWdd5AufqSSqeM2qN1xzybapC8G4wEGGkZwyTDt1v": "USDC",
	"Es9vMFrzaCERmJfrF4H2FYD4KCoNkY11McCe8BenwNYB": "USDT",
	"So11111111111111111111111111111111111111112":  "wSOL",
	"DezXAZ8z7PnrnRJjz3wXBoRgixCa6xjnB7YaB1pPB263": "BONK",
	"5z3EqYQo9HiCEs3R84RCDMu2n7anpDMxRhdK8PSWmrRC": "WIF",
	"JUPyiwrYJFskUPiHa7hkeR8VUtAeFoSYbKedZNsDvCN":  "JUP",
	"mSoLzYCxHdYgdzU16g5QSh3i5K3z3KZK7ytfqcJm7So":  "mSOL",
	"bSo13r4TkiE4KumL71LsHTPpL2euBYLFx6h9HP3piy1":  "bSOL",
}

// Registry maps mint addresses to display symbols. It is immutable after
// construction and safe for concurrent readers.
type Registry struct {
	symbols map[string]string
}

func NewRegistry() *Registry {
	symbols := make(map[string]string, len(knownMints))
	for mint, symbol := range knownMints {
		symbols[mint] = symbol
	}

	return &Registry{symbols: symbols}
}

// Symbol returns the display symbol for a mint, falling back to an
// abbreviated form of the address for mints we do not recognize.
func (r *Registry) Symbol(mint string) string {
	if symbol, ok := r.symbols[mint]; ok {
		return symbol
	}

	return Abbreviate(mint)
}

func Abbreviate(mint string) string {
	if len(mint) <= 4 {
		return mint
	}

	return mint[:4] + "..."
}
