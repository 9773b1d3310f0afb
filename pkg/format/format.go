// Package format renders market numbers for display: currency with grouping,
// signed percentages, compact volume figures and relative timestamps.
package format

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

var symbolRe = regexp.MustCompile(`^[A-Z]{1,5}$`)

// ValidSymbol reports whether s looks like a stock ticker: one to five
// letters, case-insensitive.
func ValidSymbol(s string) bool {
	return symbolRe.MatchString(strings.ToUpper(strings.TrimSpace(s)))
}

// Currency renders d as a dollar amount with two decimals and thousands
// grouping, e.g. "$45,234,567.00". Negative amounts keep the sign before
// the currency symbol: "-$2.11".
func Currency(d decimal.Decimal) string {
	sign := ""
	if d.IsNegative() {
		sign = "-"
		d = d.Neg()
	}
	return sign + "$" + group(d.StringFixed(2))
}

// Percent renders a signed percentage with two decimals; non-negative values
// carry an explicit plus, e.g. "+1.36%" / "-0.85%".
func Percent(v float64) string {
	if v >= 0 {
		return fmt.Sprintf("+%.2f%%", v)
	}
	return fmt.Sprintf("%.2f%%", v)
}

// Compact renders n with a K/M/B suffix, e.g. 45234567 -> "45.2M".
func Compact(n int64) string {
	switch {
	case n >= 1_000_000_000:
		return fmt.Sprintf("%.1fB", float64(n)/1e9)
	case n >= 1_000_000:
		return fmt.Sprintf("%.1fM", float64(n)/1e6)
	case n >= 1_000:
		return fmt.Sprintf("%.1fK", float64(n)/1e3)
	default:
		return fmt.Sprintf("%d", n)
	}
}

// MarketCap normalizes a market-cap string like "2.85T" or "790.2B" to a
// dollar figure with two decimals ("$2.85T"). Unrecognized suffixes pass
// through unchanged.
func MarketCap(s string) string {
	if s == "" {
		return s
	}
	suffix := strings.ToUpper(s[len(s)-1:])
	if suffix != "T" && suffix != "B" && suffix != "M" {
		return s
	}
	num, err := decimal.NewFromString(s[:len(s)-1])
	if err != nil {
		return s
	}
	return "$" + num.StringFixed(2) + suffix
}

// RelativeTime renders how long ago t was relative to now: "Just now",
// "5m ago", "3h ago", "2d ago", then the plain date.
func RelativeTime(t, now time.Time) string {
	d := now.Sub(t)
	switch {
	case d < time.Minute:
		return "Just now"
	case d < time.Hour:
		return fmt.Sprintf("%dm ago", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(d.Hours()))
	case d < 30*24*time.Hour:
		return fmt.Sprintf("%dd ago", int(d.Hours()/24))
	default:
		return t.Format("2006-01-02")
	}
}

// Truncate shortens s to max runes, appending an ellipsis when it cuts.
func Truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max]) + "..."
}

// group inserts thousands separators into a fixed-point decimal string.
func group(s string) string {
	intPart, frac, _ := strings.Cut(s, ".")
	n := len(intPart)
	if n <= 3 {
		if frac != "" {
			return intPart + "." + frac
		}
		return intPart
	}
	var b strings.Builder
	head := n % 3
	if head > 0 {
		b.WriteString(intPart[:head])
	}
	for i := head; i < n; i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(intPart[i : i+3])
	}
	if frac != "" {
		b.WriteByte('.')
		b.WriteString(frac)
	}
	return b.String()
}
