package chain

import "time"

// TokenAccount is one SPL token holding of an owner, as reported by the
// jsonParsed token-account encoding.
type TokenAccount struct {
	Mint      string
	RawAmount uint64
	UIAmount  float64
	Decimals  uint8
}

// SignatureInfo is one confirmed signature of an address. Time is nil when
// the endpoint omits the block time.
type SignatureInfo struct {
	Signature string
	Time      *time.Time
	Failed    bool
}
