package backtest

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/sandeep-jaiswar/stockscope/pkg/catalog"
)

// Report constants. The annualization factor and the fixed starting capital
// are demo values carried over for behavioral fidelity.
const (
	InitialCapital      = 10_000
	AnnualizationFactor = 365.0 / 252.0
	ReportWindow        = 365 * 24 * time.Hour
)

// Draw ranges, all half-open [lo, hi).
const (
	minTotalReturn, maxTotalReturn = -10.0, 30.0
	minDrawdown, maxDrawdown       = 0.0, 25.0
	minSharpe, maxSharpe           = 0.5, 2.5
	minWinRate, maxWinRate         = 40.0, 80.0
	minTrades, maxTrades           = 20, 120
	minBenchmark, maxBenchmark     = -5.0, 15.0
)

// Simulated external-computation latency: 2.0s plus up to 1.0s of jitter.
const (
	defaultMinLatency    = 2 * time.Second
	defaultLatencyJitter = time.Second
)

// ErrEmptyStrategy rejects blank strategy descriptions.
var ErrEmptyStrategy = errors.New("backtest: strategy description is empty")

// Generator turns a free-text strategy description plus a target security
// into a fabricated Report. One generation is in flight per user action;
// cancellation aborts before anything is recorded.
type Generator struct {
	src     Source
	history *History
	logger  *zap.Logger

	now        func() time.Time
	minWait    time.Duration
	waitJitter time.Duration
}

// NewGenerator wires a generator to its randomness source and history ledger.
// history may be nil when no record should be kept.
func NewGenerator(src Source, history *History, logger *zap.Logger) *Generator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Generator{
		src:        src,
		history:    history,
		logger:     logger,
		now:        time.Now,
		minWait:    defaultMinLatency,
		waitJitter: defaultLatencyJitter,
	}
}

// SetLatency overrides the simulated computation delay; (0, 0) disables it.
func (g *Generator) SetLatency(min, jitter time.Duration) {
	g.minWait = min
	g.waitJitter = jitter
}

// Run produces a report for the given strategy and security. It suspends for
// the simulated latency first; if ctx is cancelled during the wait no report
// is produced and the history is untouched.
func (g *Generator) Run(ctx context.Context, strategy string, sec catalog.Security) (Report, error) {
	if strings.TrimSpace(strategy) == "" {
		return Report{}, ErrEmptyStrategy
	}

	if wait := g.drawLatency(); wait > 0 {
		timer := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			timer.Stop()
			g.logger.Warn("backtest aborted",
				zap.String("symbol", sec.Symbol),
				zap.Duration("wait", wait),
				zap.Error(ctx.Err()))
			return Report{}, fmt.Errorf("backtest for %s did not complete: %w", sec.Symbol, ctx.Err())
		case <-timer.C:
		}
	}

	now := g.now()
	totalReturn := uniform(g.src, minTotalReturn, maxTotalReturn)

	capital := decimal.NewFromInt(InitialCapital)
	finalValue := capital.Mul(decimal.NewFromFloat(1 + totalReturn/100))

	r := Report{
		ID:               uuid.NewString(),
		Strategy:         strategy,
		Symbol:           sec.Symbol,
		TotalReturn:      totalReturn,
		AnnualizedReturn: totalReturn * AnnualizationFactor,
		MaxDrawdown:      uniform(g.src, minDrawdown, maxDrawdown),
		SharpeRatio:      uniform(g.src, minSharpe, maxSharpe),
		WinRate:          uniform(g.src, minWinRate, maxWinRate),
		TotalTrades:      minTrades + g.src.Intn(maxTrades-minTrades),
		StartDate:        now.Add(-ReportWindow),
		EndDate:          now,
		InitialCapital:   capital,
		FinalValue:       finalValue,
		BenchmarkReturn:  uniform(g.src, minBenchmark, maxBenchmark),
		CreatedAt:        now,
	}

	if g.history != nil {
		if err := g.history.Record(r); err != nil {
			// The report is still valid for display; only the ledger missed it.
			g.logger.Warn("backtest not recorded", zap.String("id", r.ID), zap.Error(err))
		}
	}

	g.logger.Info("backtest generated",
		zap.String("id", r.ID),
		zap.String("symbol", r.Symbol),
		zap.Float64("total_return", r.TotalReturn),
		zap.Int("trades", r.TotalTrades))
	return r, nil
}

func (g *Generator) drawLatency() time.Duration {
	if g.minWait <= 0 && g.waitJitter <= 0 {
		return 0
	}
	return g.minWait + time.Duration(g.src.Float64()*float64(g.waitJitter))
}
