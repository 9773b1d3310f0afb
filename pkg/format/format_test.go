package format

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestCurrency(t *testing.T) {
	cases := map[string]string{
		"182.52":      "$182.52",
		"0":           "$0.00",
		"-2.11":       "-$2.11",
		"45234567":    "$45,234,567.00",
		"1234.5":      "$1,234.50",
		"790200000.9": "$790,200,000.90",
	}
	for in, want := range cases {
		assert.Equal(t, want, Currency(decimal.RequireFromString(in)), "input %s", in)
	}
}

func TestPercent(t *testing.T) {
	assert.Equal(t, "+1.36%", Percent(1.36))
	assert.Equal(t, "+0.00%", Percent(0))
	assert.Equal(t, "-0.85%", Percent(-0.85))
}

func TestCompact(t *testing.T) {
	assert.Equal(t, "45.2M", Compact(45234567))
	assert.Equal(t, "2.2B", Compact(2_160_000_000))
	assert.Equal(t, "1.5K", Compact(1500))
	assert.Equal(t, "999", Compact(999))
}

func TestMarketCap(t *testing.T) {
	assert.Equal(t, "$2.85T", MarketCap("2.85T"))
	assert.Equal(t, "$790.20B", MarketCap("790.2B"))
	assert.Equal(t, "n/a", MarketCap("n/a"))
	assert.Equal(t, "", MarketCap(""))
}

func TestRelativeTime(t *testing.T) {
	now := time.Date(2024, time.March, 15, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, "Just now", RelativeTime(now.Add(-30*time.Second), now))
	assert.Equal(t, "5m ago", RelativeTime(now.Add(-5*time.Minute), now))
	assert.Equal(t, "3h ago", RelativeTime(now.Add(-3*time.Hour), now))
	assert.Equal(t, "2d ago", RelativeTime(now.Add(-48*time.Hour), now))
	assert.Equal(t, "2023-12-01", RelativeTime(time.Date(2023, time.December, 1, 0, 0, 0, 0, time.UTC), now))
}

func TestValidSymbol(t *testing.T) {
	assert.True(t, ValidSymbol("AAPL"))
	assert.True(t, ValidSymbol("aapl"))
	assert.True(t, ValidSymbol(" googl "))
	assert.False(t, ValidSymbol(""))
	assert.False(t, ValidSymbol("TOOLONG"))
	assert.False(t, ValidSymbol("BRK.B"))
	assert.False(t, ValidSymbol("123"))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", Truncate("short", 10))
	assert.Equal(t, "abcde...", Truncate("abcdefghij", 5))
}
