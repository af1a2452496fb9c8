package analysis

import (
	"math"
	"strings"
)

// PipSize returns the standardized pip increment for a pair code like
// "USD_JPY": 0.01 for yen-quoted pairs, 0.0001 otherwise.
func PipSize(pair string) float64 {
	if strings.Contains(strings.ToUpper(pair), "JPY") {
		return 0.01
	}
	return 0.0001
}

// PipMovement converts a rate change into signed whole pips.
func PipMovement(oldRate, newRate float64, pair string) int {
	return int(math.Round((newRate - oldRate) / PipSize(pair)))
}

// SpreadFor returns the assumed spread in pips for a liquidity tier.
func SpreadFor(liquidity ForexLiquidity) float64 {
	switch liquidity {
	case LiquidityMajor:
		return 0.8
	case LiquidityMinor:
		return 1.5
	default:
		return 3.0
	}
}
