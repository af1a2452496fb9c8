package util

import (
	"fmt"
	"strings"
)

// FormatPair converts a pair code to display form: "USD_JPY" -> "USD/JPY".
func FormatPair(pair string) string {
	return strings.ReplaceAll(pair, "_", "/")
}

// FormatPips renders a signed pip count: "+25 pips", "-8 pips".
func FormatPips(pips int) string {
	if pips >= 0 {
		return fmt.Sprintf("+%d pips", pips)
	}
	return fmt.Sprintf("%d pips", pips)
}

// FormatProjectedPips renders the one-week pip projection: "+50 pips (1W)".
func FormatProjectedPips(pips int) string {
	return fmt.Sprintf("+%d pips (1W)", pips)
}

// FormatSpread renders a spread in pips: "0.8 pips".
func FormatSpread(spread float64) string {
	return fmt.Sprintf("%g pips", spread)
}

// FormatSuccessRate renders a backtest win rate with one decimal:
// "62.5% success rate in backtests".
func FormatSuccessRate(rate float64) string {
	return fmt.Sprintf("%.1f%% success rate in backtests", rate*100)
}
