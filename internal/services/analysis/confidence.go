package analysis

import "math"

// shrinkagePrior is the pseudo-sample weight pulling small backtest samples
// toward a neutral 0.5 win rate.
const shrinkagePrior = 20.0

// ConfidenceInput combines signal quality with backtest history.
type ConfidenceInput struct {
	RSI               float64
	Volatility        float64
	Sentiment         float64 // [-1, 1]
	HistoricalWinRate float64 // [0, 1]
	SampleSize        int
}

// Confidence scores how much weight to put on a recommendation, 0-100.
// Moderate RSI and low volatility raise the base; sentiment magnitude adds
// conviction in either direction. The historical win rate is shrunk toward
// 0.5 as the sample shrinks, and only above-prior evidence contributes, so
// confidence never decreases as the sample size grows for a fixed win rate.
func Confidence(in ConfidenceInput) int {
	base := clamp(50-math.Abs(in.RSI-50)*0.6-math.Max(in.Volatility-25, 0)*0.4, 5, 50)

	conviction := clamp(math.Abs(in.Sentiment), 0, 1) * 15

	history := 0.0
	if in.SampleSize > 0 {
		n := float64(in.SampleSize)
		shrunk := (in.HistoricalWinRate*n + 0.5*shrinkagePrior) / (n + shrinkagePrior)
		history = math.Max(shrunk-0.5, 0) * 100
	}

	return int(math.Round(clamp(base+conviction+history, 0, 100)))
}
