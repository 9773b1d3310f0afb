// Package backtest fabricates strategy-performance reports. Nothing here
// touches historical data: every figure is drawn from a randomness source and
// the derived fields are computed from the draws. The point is a plausible,
// internally consistent report, not a simulation.
package backtest

import (
	"fmt"
	"math"
	"time"

	"github.com/shopspring/decimal"
)

// Report is one fabricated performance result, immutable once created.
type Report struct {
	ID               string          `json:"id"`
	Strategy         string          `json:"strategy"`
	Symbol           string          `json:"symbol"`
	TotalReturn      float64         `json:"totalReturn"`
	AnnualizedReturn float64         `json:"annualizedReturn"`
	MaxDrawdown      float64         `json:"maxDrawdown"`
	SharpeRatio      float64         `json:"sharpeRatio"`
	WinRate          float64         `json:"winRate"`
	TotalTrades      int             `json:"totalTrades"`
	StartDate        time.Time       `json:"startDate"`
	EndDate          time.Time       `json:"endDate"`
	InitialCapital   decimal.Decimal `json:"initialCapital"`
	FinalValue       decimal.Decimal `json:"finalValue"`
	BenchmarkReturn  float64         `json:"benchmarkReturn"`
	CreatedAt        time.Time       `json:"createdAt"`
}

// Outperformed reports whether the strategy beat the synthetic benchmark.
func (r Report) Outperformed() bool {
	return r.TotalReturn > r.BenchmarkReturn
}

// Summary renders the human-readable result sentence. It is a pure function
// of the report fields.
func (r Report) Summary() string {
	verdict := "Underperformed"
	if r.Outperformed() {
		verdict = "Outperformed"
	}
	gap := math.Abs(r.TotalReturn - r.BenchmarkReturn)
	return fmt.Sprintf(
		"Backtest completed for %s: strategy returned %s over 1 year across %d trades with a %.2f%% max drawdown. Sharpe ratio: %.2f. %s the benchmark by %.2f points.",
		r.Symbol, signedPercent(r.TotalReturn), r.TotalTrades, r.MaxDrawdown, r.SharpeRatio, verdict, gap,
	)
}

func signedPercent(v float64) string {
	if v >= 0 {
		return fmt.Sprintf("+%.2f%%", v)
	}
	return fmt.Sprintf("%.2f%%", v)
}
