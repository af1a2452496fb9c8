package analysis

import "math"

// Drawdown returns the maximum peak-to-trough decline over the close series,
// as a percent <= 0.
func Drawdown(closes []float64) float64 {
	if len(closes) == 0 {
		return 0
	}
	peak := closes[0]
	worst := 0.0
	for _, c := range closes {
		if c > peak {
			peak = c
		}
		if peak > 0 {
			if dd := (c - peak) / peak * 100; dd < worst {
				worst = dd
			}
		}
	}
	return math.Round(worst*100) / 100
}

// ProjectedReturn estimates a percent return for an equity over the user's
// horizon: a horizon-scaled base drift, a mean-reversion tilt away from RSI
// extremes, and a drag for elevated volatility.
func ProjectedReturn(volatility, rsi float64, horizon string) float64 {
	base := 5.0
	switch horizon {
	case "short":
		base = 2.0
	case "long":
		base = 10.0
	}

	tilt := (50 - rsi) * 0.08
	drag := math.Max(volatility-25, 0) * 0.05

	return math.Round(clamp(base+tilt-drag, -20, 30)*100) / 100
}

// ProjectedPips estimates the one-week pip potential from trend strength.
// A flat trend falls back to a nominal 5, matching the display convention.
func ProjectedPips(trendStrength float64) int {
	t := math.Abs(trendStrength)
	if t == 0 {
		t = 5
	}
	return int(math.Round(t * 10))
}
