package minter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alwaysliquid_posts/contract/shared"
	"alwaysliquid_posts/sdk"
)

func TestSplitPaymentExample(t *testing.T) {
	fees := FeeConfig{DaoBps: 2000, DevBps: 1000, ReferrerBps: 1000}
	s, err := SplitPayment(1000, fees, true)
	require.NoError(t, err)
	assert.Equal(t, Split{Dao: 200, Dev: 100, Referrer: 100, Author: 600}, s)

	s, err = SplitPayment(3000, fees, true)
	require.NoError(t, err)
	assert.Equal(t, Split{Dao: 600, Dev: 300, Referrer: 300, Author: 1800}, s)

	s, err = SplitPayment(1000, fees, false)
	require.NoError(t, err)
	assert.Equal(t, Split{Dao: 200, Dev: 100, Author: 700}, s)
}

func TestSplitPaymentConserves(t *testing.T) {
	configs := []FeeConfig{
		{},
		{DaoBps: 2000, DevBps: 1000, ReferrerBps: 1000},
		{DaoBps: 3333, DevBps: 3333, ReferrerBps: 3334},
		{DaoBps: 10000},
		{DaoBps: 1, DevBps: 7, ReferrerBps: 9999 - 8},
		{DaoBps: 250, DevBps: 125, ReferrerBps: 0},
	}
	totals := []shared.Amount{0, 1, 2, 3, 7, 999, 1000, 1001, 123457, 9_223_372_036_854_775_807}
	for _, fees := range configs {
		for _, total := range totals {
			for _, ref := range []bool{true, false} {
				s, err := SplitPayment(total, fees, ref)
				require.NoError(t, err)
				assert.Equal(t, total, s.Sum(), "fees %+v total %d", fees, total)
				assert.GreaterOrEqual(t, int64(s.Author), int64(0))
				if !ref {
					assert.Equal(t, shared.Amount(0), s.Referrer)
				}
			}
		}
	}
}

func TestFeeConfigValidate(t *testing.T) {
	assert.NoError(t, FeeConfig{DaoBps: 5000, DevBps: 5000}.Validate())
	assert.ErrorIs(t, FeeConfig{DaoBps: 5000, DevBps: 5000, ReferrerBps: 1}.Validate(), shared.ErrInvalidArgument)
	assert.ErrorIs(t, FeeConfig{DaoBps: 20000}.Validate(), shared.ErrInvalidArgument)
	assert.Equal(t, uint64(6000), FeeConfig{DaoBps: 2000, DevBps: 1000, ReferrerBps: 1000}.AuthorBps())

	_, err := SplitPayment(1000, FeeConfig{DaoBps: 9000, DevBps: 2000}, true)
	assert.ErrorIs(t, err, shared.ErrInvalidArgument)
	_, err = SplitPayment(-1, FeeConfig{}, true)
	assert.ErrorIs(t, err, shared.ErrInvalidArgument)
}

func TestConfigCodecRoundTrip(t *testing.T) {
	cfg := &Config{
		Owner:        "hive:owner",
		Dao:          "hive:dao",
		Dev:          "did:pkh:eip155:1:0x52908400098527886E0F7030069857D2E4169EE7",
		Ledger:       "posts",
		Fees:         FeeConfig{DaoBps: 2000, DevBps: 1000, ReferrerBps: 1000},
		Asset:        sdk.AssetHbd,
		Paused:       true,
		Stats:        "stats",
		StatsEnabled: true,
	}
	got, err := decodeConfig(encodeConfig(cfg))
	require.NoError(t, err)
	assert.Equal(t, cfg, got)

	_, err = decodeConfig("a|b")
	assert.Error(t, err)
}
