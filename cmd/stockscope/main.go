// stockscope is a terminal demo for stock lookup and natural-language
// strategy backtesting. All market data is a fixed in-memory catalog and all
// backtest results are synthesized; the only durable state is the pair of
// JSON ledgers under the data directory.
package main

import (
	"log"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/sandeep-jaiswar/stockscope/pkg/backtest"
	"github.com/sandeep-jaiswar/stockscope/pkg/config"
	"github.com/sandeep-jaiswar/stockscope/pkg/recents"
	"github.com/sandeep-jaiswar/stockscope/pkg/store"
)

func main() {
	cfg := config.Load()

	logger, err := newLogger(cfg.LogFile)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	st, err := store.NewFile(cfg.DataDir, logger)
	if err != nil {
		logger.Fatal("opening data dir", zap.String("dir", cfg.DataDir), zap.Error(err))
	}

	history := backtest.NewHistory(st, logger)
	generator := backtest.NewGenerator(backtest.NewSource(), history, logger)
	if cfg.FastBacktests {
		generator.SetLatency(0, 0)
	}
	recentLedger := recents.New(st, logger)

	logger.Info("starting",
		zap.String("data_dir", cfg.DataDir),
		zap.Bool("fast_backtests", cfg.FastBacktests))

	p := tea.NewProgram(newModel(generator, history, recentLedger, logger), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		logger.Fatal("terminal ui exited", zap.Error(err))
	}
}

// newLogger builds a production zap logger writing to path. Stdout belongs to
// the terminal UI, so logs never go there.
func newLogger(path string) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{path}
	cfg.ErrorOutputPaths = []string{path}
	return cfg.Build()
}
