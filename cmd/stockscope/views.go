package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"github.com/sandeep-jaiswar/stockscope/pkg/backtest"
	"github.com/sandeep-jaiswar/stockscope/pkg/catalog"
	"github.com/sandeep-jaiswar/stockscope/pkg/format"
)

// Styles.
var (
	headerStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15")).Background(lipgloss.Color("4"))
	footerStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Background(lipgloss.Color("8"))
	symbolStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	selectedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("75")).Background(lipgloss.Color("236"))
	gainStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	lossStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	dimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	labelStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	sectionStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14"))
	statusOkStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	statusErr     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	spinnerStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	chipStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("6")).Padding(0, 1)
)

func (m model) View() string {
	var body string
	var footer string

	switch m.view {
	case viewSearch:
		body = m.viewSearchScreen()
		footer = " enter select  up/dn move  1-5 recents  ctrl+x clear recents  esc clear/quit  ctrl+c quit"
	case viewDetail:
		body = m.viewDetailScreen()
		footer = " ctrl+r run backtest  ctrl+e sample strategy  ctrl+h history  esc back  ctrl+c quit"
	case viewHistory:
		body = m.viewHistoryScreen()
		footer = " esc back  ctrl+x clear history  ctrl+c quit"
	}

	header := headerStyle.Render(padOrTrunc(" stockscope - stock analysis & strategy backtesting", m.width))
	footerBar := footerStyle.Render(padOrTrunc(footer, m.width))

	status := ""
	if m.status != "" {
		style := statusOkStyle
		if m.status == msgStockNotFound || m.status == msgBacktestFailed || m.status == msgInvalidInput {
			style = statusErr
		}
		status = "\n " + style.Render(m.status)
	}

	return header + "\n\n" + body + status + "\n\n" + footerBar
}

func (m model) viewSearchScreen() string {
	var b strings.Builder

	b.WriteString(" " + m.input.View() + "\n\n")

	if len(m.suggestions) > 0 {
		for i, sec := range m.suggestions {
			line := fmt.Sprintf("  %-6s %-26s %10s  %s",
				sec.Symbol,
				format.Truncate(sec.Name, 26),
				format.Currency(sec.Price),
				changeLabel(sec))
			if i == m.cursor {
				b.WriteString(selectedStyle.Render(">"+line[1:]) + "\n")
			} else {
				b.WriteString(line + "\n")
			}
		}
		return b.String()
	}

	if m.input.Value() != "" {
		b.WriteString(dimStyle.Render("  No matches.") + "\n")
		return b.String()
	}

	if len(m.recentSyms) > 0 {
		b.WriteString(sectionStyle.Render(" Recent searches") + "\n  ")
		for i, sym := range m.recentSyms {
			b.WriteString(chipStyle.Render(fmt.Sprintf("%d %s", i+1, sym)))
			b.WriteString(" ")
		}
		b.WriteString("\n")
	} else {
		b.WriteString(dimStyle.Render("  Type to search the catalog: symbol, company, sector or industry.") + "\n")
	}
	return b.String()
}

func (m model) viewDetailScreen() string {
	var b strings.Builder
	sec := m.sec

	b.WriteString(" " + symbolStyle.Render(sec.Symbol) + "  " + sec.Name + "\n")
	b.WriteString(" " + dimStyle.Render(sec.Sector+" / "+sec.Industry) + "\n\n")

	b.WriteString(fmt.Sprintf(" %s  %s\n",
		format.Currency(sec.Price),
		changeLabel(sec)))
	b.WriteString(" " + dimStyle.Render("Updated "+format.RelativeTime(sec.LastUpdated, time.Now())) + "\n\n")

	b.WriteString(row("Market Cap", format.MarketCap(sec.MarketCap), "Volume", format.Compact(sec.Volume)))
	b.WriteString(row("P/E Ratio", fmt.Sprintf("%.1f", sec.PE), "EPS", fmt.Sprintf("%.2f", sec.EPS)))
	b.WriteString(row("52W High", format.Currency(sec.High52W), "52W Low", format.Currency(sec.Low52W)))
	b.WriteString(row("Dividend", format.Currency(sec.Dividend), "Beta", fmt.Sprintf("%.2f", sec.Beta)))
	b.WriteString("\n " + dimStyle.Render(format.Truncate(sec.Description, 110)) + "\n\n")

	b.WriteString(sectionStyle.Render(" Backtest Strategy") + "\n")
	b.WriteString(" " + dimStyle.Render("Describe your trading strategy in plain English; ctrl+e inserts a sample.") + "\n")
	b.WriteString(indent(m.form.View(), " ") + "\n")

	if m.running {
		b.WriteString("\n " + m.spin.View() + "Running backtest...\n")
		return b.String()
	}

	if m.result != nil {
		b.WriteString("\n" + renderReport(*m.result))
	}
	return b.String()
}

func (m model) viewHistoryScreen() string {
	var b strings.Builder
	b.WriteString(sectionStyle.Render(" Backtest History") + "\n\n")

	if len(m.reports) == 0 {
		b.WriteString(dimStyle.Render("  No backtests yet. Run one from a stock page.") + "\n")
		return b.String()
	}

	now := time.Now()
	for i, r := range m.reports {
		ret := gainStyle
		if r.TotalReturn < 0 {
			ret = lossStyle
		}
		b.WriteString(fmt.Sprintf("  %2d. %-6s %s  %3d trades  final %s  %s\n",
			i+1,
			r.Symbol,
			ret.Render(fmt.Sprintf("%8s", format.Percent(r.TotalReturn))),
			r.TotalTrades,
			format.Currency(r.FinalValue),
			dimStyle.Render(format.RelativeTime(r.CreatedAt, now))))
		b.WriteString("      " + dimStyle.Render(format.Truncate(r.Strategy, 70)) + "\n")
	}
	return b.String()
}

func renderReport(r backtest.Report) string {
	var b strings.Builder
	b.WriteString(sectionStyle.Render(" Backtest Results") + "\n")
	b.WriteString(" " + r.Summary() + "\n\n")

	b.WriteString(row("Total Return", format.Percent(r.TotalReturn), "Annualized", format.Percent(r.AnnualizedReturn)))
	b.WriteString(row("Max Drawdown", fmt.Sprintf("%.2f%%", r.MaxDrawdown), "Sharpe Ratio", fmt.Sprintf("%.2f", r.SharpeRatio)))
	b.WriteString(row("Win Rate", fmt.Sprintf("%.1f%%", r.WinRate), "Trades", fmt.Sprintf("%d", r.TotalTrades)))
	b.WriteString(row("Initial Capital", format.Currency(r.InitialCapital), "Final Value", format.Currency(r.FinalValue)))
	b.WriteString(row("Benchmark", format.Percent(r.BenchmarkReturn), "Window",
		r.StartDate.Format("2006-01-02")+" to "+r.EndDate.Format("2006-01-02")))
	return b.String()
}

func changeLabel(sec catalog.Security) string {
	style := gainStyle
	if sec.Change.LessThan(decimal.Zero) {
		style = lossStyle
	}
	sign := "+"
	if sec.Change.IsNegative() {
		sign = ""
	}
	return style.Render(fmt.Sprintf("%s%s (%s)", sign, sec.Change.StringFixed(2), format.Percent(sec.ChangePercent)))
}

func row(l1, v1, l2, v2 string) string {
	return fmt.Sprintf(" %s %-14s %s %s\n",
		labelStyle.Render(fmt.Sprintf("%-16s", l1)), v1,
		labelStyle.Render(fmt.Sprintf("%-16s", l2)), v2)
}

func indent(s, prefix string) string {
	lines := strings.Split(s, "\n")
	for i := range lines {
		lines[i] = prefix + lines[i]
	}
	return strings.Join(lines, "\n")
}

func padOrTrunc(s string, width int) string {
	if width <= 0 {
		return s
	}
	if len(s) > width {
		return s[:width]
	}
	return s + strings.Repeat(" ", width-len(s))
}
