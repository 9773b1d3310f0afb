package main

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/sandeep-jaiswar/stockscope/pkg/backtest"
	"github.com/sandeep-jaiswar/stockscope/pkg/catalog"
	"github.com/sandeep-jaiswar/stockscope/pkg/recents"
)

// searchDelay simulates the lookup round-trip before suggestions appear.
const searchDelay = 100 * time.Millisecond

// backtestTimeout bounds one generation; the simulated latency is 2-3s.
const backtestTimeout = 15 * time.Second

// Status copy shown on the status line.
const (
	msgStockNotFound    = "Stock not found. Please check the symbol and try again."
	msgInvalidInput     = "Invalid input. Please check your data and try again."
	msgBacktestFailed   = "Backtest failed. Please try again with different parameters."
	msgBacktestComplete = "Backtest completed successfully!"
	msgRecentsCleared   = "Recent searches cleared"
)

// Views.
type view int

const (
	viewSearch view = iota
	viewDetail
	viewHistory
)

// Messages.
type suggestionsMsg struct {
	query   string
	results []catalog.Security
}

type backtestDoneMsg struct {
	report backtest.Report
	err    error
}

// Model.
type model struct {
	generator *backtest.Generator
	history   *backtest.History
	recents   *recents.Ledger
	logger    *zap.Logger

	view          view
	width, height int
	status        string

	// Search view.
	input       textinput.Model
	suggestions []catalog.Security
	cursor      int
	recentSyms  []string

	// Detail view.
	sec     catalog.Security
	form    textarea.Model
	samples []string
	running bool
	spin    spinner.Model
	result  *backtest.Report

	// History view.
	reports []backtest.Report
}

func newModel(g *backtest.Generator, h *backtest.History, r *recents.Ledger, logger *zap.Logger) model {
	input := textinput.New()
	input.Placeholder = "Search for stocks (e.g., AAPL, Apple, Tesla...)"
	input.CharLimit = 64
	input.Focus()

	form := textarea.New()
	form.Placeholder = "Describe your trading strategy in plain English"
	form.CharLimit = 500
	form.SetHeight(4)

	spin := spinner.New()
	spin.Spinner = spinner.Dot
	spin.Style = spinnerStyle

	return model{
		generator:  g,
		history:    h,
		recents:    r,
		logger:     logger,
		view:       viewSearch,
		input:      input,
		form:       form,
		spin:       spin,
		recentSyms: r.List(),
	}
}

func (m model) Init() tea.Cmd {
	return textinput.Blink
}

// searchCmd delivers suggestions for query after the simulated lookup delay.
// Overlapping queries are last-write-wins: whichever result lands last is
// what the user sees.
func searchCmd(query string) tea.Cmd {
	return tea.Tick(searchDelay, func(time.Time) tea.Msg {
		return suggestionsMsg{query: query, results: catalog.Search(query)}
	})
}

func (m model) runBacktestCmd(strategy string, sec catalog.Security) tea.Cmd {
	g := m.generator
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), backtestTimeout)
		defer cancel()
		report, err := g.Run(ctx, strategy, sec)
		return backtestDoneMsg{report: report, err: err}
	}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.input.Width = min(msg.Width-6, 60)
		m.form.SetWidth(min(msg.Width-6, 76))
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		switch m.view {
		case viewSearch:
			return m.updateSearch(msg)
		case viewDetail:
			return m.updateDetail(msg)
		case viewHistory:
			return m.updateHistory(msg)
		}

	case suggestionsMsg:
		// Applied unconditionally: the host event loop orders deliveries and
		// the newest arrival wins.
		m.suggestions = msg.results
		if m.cursor >= len(m.suggestions) {
			m.cursor = 0
		}
		return m, nil

	case backtestDoneMsg:
		m.running = false
		if msg.err != nil {
			m.result = nil
			if errors.Is(msg.err, backtest.ErrEmptyStrategy) {
				m.status = msgInvalidInput
			} else {
				m.status = msgBacktestFailed
			}
			return m, nil
		}
		report := msg.report
		m.result = &report
		m.status = msgBacktestComplete
		return m, nil

	case spinner.TickMsg:
		if !m.running {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m model) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		if m.input.Value() == "" {
			return m, tea.Quit
		}
		m.input.SetValue("")
		m.suggestions = nil
		m.cursor = 0
		return m, nil

	case "up":
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case "down":
		if m.cursor < len(m.suggestions)-1 {
			m.cursor++
		}
		return m, nil

	case "enter":
		if len(m.suggestions) > 0 && m.cursor < len(m.suggestions) {
			return m.selectSecurity(m.suggestions[m.cursor].Symbol)
		}
		if q := m.input.Value(); q != "" {
			return m.selectSecurity(q)
		}
		return m, nil

	case "ctrl+x":
		m.recents.Clear()
		m.recentSyms = nil
		m.status = msgRecentsCleared
		return m, nil
	}

	// Digit shortcuts jump to a recent-search chip while the query is blank.
	if m.input.Value() == "" {
		if n, err := strconv.Atoi(msg.String()); err == nil && n >= 1 && n <= len(m.recentSyms) {
			return m.selectSecurity(m.recentSyms[n-1])
		}
	}

	var cmd tea.Cmd
	before := m.input.Value()
	m.input, cmd = m.input.Update(msg)
	after := m.input.Value()
	if after == before {
		return m, cmd
	}

	m.status = ""
	if after == "" {
		m.suggestions = nil
		m.cursor = 0
		return m, cmd
	}
	return m, tea.Batch(cmd, searchCmd(after))
}

// selectSecurity resolves a symbol, records it and navigates to the detail
// view. Unknown symbols surface as a status-line message and the search view
// stays usable.
func (m model) selectSecurity(symbol string) (tea.Model, tea.Cmd) {
	sec, err := catalog.GetBySymbol(symbol)
	if err != nil {
		m.status = msgStockNotFound
		return m, nil
	}

	m.logger.Info("security selected", zap.String("symbol", sec.Symbol))
	m.recents.Record(sec.Symbol)
	m.recentSyms = m.recents.List()

	m.sec = sec
	m.samples = backtest.SampleStrategies(sec.Symbol)
	m.form.SetValue("")
	m.result = nil
	m.status = ""
	m.input.SetValue("")
	m.suggestions = nil
	m.cursor = 0
	m.view = viewDetail
	m.form.Focus()
	return m, textarea.Blink
}

func (m model) updateDetail(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		if m.running {
			return m, nil // single in-flight run; let it land
		}
		m.view = viewSearch
		m.form.Blur()
		m.status = ""
		m.input.Focus()
		return m, textinput.Blink

	case "ctrl+r":
		if m.running {
			return m, nil
		}
		strategy := m.form.Value()
		if isBlank(strategy) {
			m.status = msgInvalidInput
			return m, nil
		}
		m.running = true
		m.result = nil
		m.status = ""
		return m, tea.Batch(m.spin.Tick, m.runBacktestCmd(strategy, m.sec))

	case "ctrl+e":
		if len(m.samples) == 0 {
			return m, nil
		}
		// Cycle the sample strategies through the form.
		next := 0
		for i, s := range m.samples {
			if m.form.Value() == s {
				next = (i + 1) % len(m.samples)
				break
			}
		}
		m.form.SetValue(m.samples[next])
		return m, nil

	case "ctrl+h":
		m.reports = m.history.List()
		m.view = viewHistory
		return m, nil
	}

	if m.running {
		return m, nil
	}
	var cmd tea.Cmd
	m.form, cmd = m.form.Update(msg)
	return m, cmd
}

func (m model) updateHistory(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "q":
		m.view = viewDetail
		return m, nil
	case "ctrl+x":
		m.history.Clear()
		m.reports = nil
		return m, nil
	}
	return m, nil
}

func isBlank(s string) bool {
	for _, r := range s {
		if r != ' ' && r != '\t' && r != '\n' && r != '\r' {
			return false
		}
	}
	return true
}
