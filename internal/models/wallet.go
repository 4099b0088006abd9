package models

import "time"

type AssetBalance struct {
	Mint      string
	Symbol    string
	Amount    float64
	RawAmount uint64
	Decimals  uint8
}

type TxSummary struct {
	Signature string
	Time      *time.Time
	Failed    bool
}

type WalletReport struct {
	Address      string
	Lamports     uint64
	Assets       []AssetBalance
	Transactions []TxSummary
}

type TransferRequest struct {
	From   string
	To     string
	Token  string
	Amount float64
}

type UnsignedTransfer struct {
	Blob      string
	Symbol    string
	Amount    float64
	Recipient string
	Native    bool
}
