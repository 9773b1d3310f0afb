package backtest

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSummaryOutperformance(t *testing.T) {
	r := Report{
		Symbol:          "AAPL",
		TotalReturn:     15.4,
		TotalTrades:     64,
		MaxDrawdown:     12.0,
		SharpeRatio:     1.42,
		BenchmarkReturn: 12.2,
	}

	s := r.Summary()
	assert.Contains(t, s, "Backtest completed for AAPL")
	assert.Contains(t, s, "+15.40%")
	assert.Contains(t, s, "64 trades")
	assert.Contains(t, s, "12.00% max drawdown")
	assert.Contains(t, s, "Sharpe ratio: 1.42")
	assert.Contains(t, s, "Outperformed the benchmark by 3.20 points")
}

func TestSummaryUnderperformance(t *testing.T) {
	r := Report{
		Symbol:          "TSLA",
		TotalReturn:     -4.5,
		TotalTrades:     31,
		MaxDrawdown:     8.25,
		SharpeRatio:     0.77,
		BenchmarkReturn: 6.5,
	}

	s := r.Summary()
	assert.Contains(t, s, "-4.50%")
	assert.Contains(t, s, "Underperformed the benchmark by 11.00 points")
	assert.False(t, r.Outperformed())
}

func TestSampleStrategiesMentionSymbol(t *testing.T) {
	samples := SampleStrategies("NVDA")
	assert.Len(t, samples, 4)
	for _, s := range samples {
		assert.True(t, strings.Contains(s, "NVDA"), "sample %q", s)
	}
}
