package finnhub

import "math"

// AnnualizedVolatility computes the annualized standard deviation of daily
// log returns, in percent. Returns 0 when the series is too short.
func AnnualizedVolatility(closes []float64) float64 {
	if len(closes) < 3 {
		return 0
	}
	rets := make([]float64, 0, len(closes)-1)
	for i := 1; i < len(closes); i++ {
		if closes[i-1] <= 0 || closes[i] <= 0 {
			continue
		}
		rets = append(rets, math.Log(closes[i]/closes[i-1]))
	}
	if len(rets) < 2 {
		return 0
	}
	var mean float64
	for _, r := range rets {
		mean += r
	}
	mean /= float64(len(rets))
	var variance float64
	for _, r := range rets {
		d := r - mean
		variance += d * d
	}
	variance /= float64(len(rets) - 1)
	return math.Sqrt(variance) * math.Sqrt(252) * 100
}

// ATR computes a simple average true range over the trailing period.
// Falls back to close-to-close ranges when highs/lows are missing.
func ATR(highs, lows, closes []float64, period int) float64 {
	n := len(closes)
	if n < 2 {
		return 0
	}
	trs := make([]float64, 0, n-1)
	for i := 1; i < n; i++ {
		var tr float64
		if i < len(highs) && i < len(lows) {
			tr = highs[i] - lows[i]
			if hc := math.Abs(highs[i] - closes[i-1]); hc > tr {
				tr = hc
			}
			if lc := math.Abs(lows[i] - closes[i-1]); lc > tr {
				tr = lc
			}
		} else {
			tr = math.Abs(closes[i] - closes[i-1])
		}
		trs = append(trs, tr)
	}
	if len(trs) > period {
		trs = trs[len(trs)-period:]
	}
	var sum float64
	for _, tr := range trs {
		sum += tr
	}
	return sum / float64(len(trs))
}

// TrendStrength measures directional bias as the gap between the short and
// long moving averages, normalized by ATR. Near zero means no clear trend.
func TrendStrength(closes []float64, atr float64) float64 {
	if atr <= 0 || len(closes) < 20 {
		return 0
	}
	return (sma(closes, 5) - sma(closes, 20)) / atr
}

func sma(closes []float64, period int) float64 {
	if period > len(closes) {
		period = len(closes)
	}
	var sum float64
	for _, c := range closes[len(closes)-period:] {
		sum += c
	}
	return sum / float64(period)
}
