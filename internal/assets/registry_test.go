package assets

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSymbol(t *testing.T) {
	registry := NewRegistry()

	t.Run("known mint", func(t *testing.T) {
		assert.Equal(t, "USDC", registry.Symbol("EPjFWdd5AufqSSqeM2qN1xzybapC8G4wEGGkZwyTDt1v"))
		assert.Equal(t, "BONK", registry.Symbol("DezXAZ8z7PnrnRJjz3wXBoRgixCa6xjnB7YaB1pPB263"))
	})

	t.Run("unknown mint is abbreviated", func(t *testing.T) {
		assert.Equal(t, "Banx...", registry.Symbol("BanxbTpxUCdVu1Da77M3CtLJ82Y82KqbXBUb2cb3tPx2"))
	})
}

func TestAbbreviate(t *testing.T) {
	assert.Equal(t, "abcd...", Abbreviate("abcdefgh"))
	assert.Equal(t, "abcd", Abbreviate("abcd"))
	assert.Equal(t, "", Abbreviate(""))
}
