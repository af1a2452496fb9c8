package analysis

import (
	"fmt"
	"math"

	"FinAdvisor/internal/domain/models"
)

// Level thresholds shared by both rule sets.
const (
	mediumRiskFloor = 33
	highRiskFloor   = 66
)

// StockRiskInput are the technical and sentiment inputs for equity scoring.
type StockRiskInput struct {
	Volatility float64 // annualized, percent
	Beta       float64
	RSI        float64 // 0..100
	Drawdown   float64 // percent, <= 0
	Sentiment  float64 // [-1, 1]
}

// StockRisk computes a 0-100 risk score for an equity. Volatility and beta
// scale risk upward, RSI adds risk proportional to its distance from the
// neutral 50 midpoint, deeper drawdowns add risk, and sentiment shifts risk
// down when positive and up when negative.
func StockRisk(in StockRiskInput) models.RiskAssessment {
	components := []riskComponent{
		{"volatility", 0.35, clamp(in.Volatility, 0, 100)},
		{"beta", 0.20, clamp(in.Beta/2*100, 0, 100)},
		{"momentum", 0.20, clamp(math.Abs(in.RSI-50)*2, 0, 100)},
		{"drawdown", 0.15, clamp(-in.Drawdown*2.5, 0, 100)},
		{"sentiment", 0.10, clamp((1-in.Sentiment)*50, 0, 100)},
	}
	return assess(components, stockAdvice)
}

// ForexLiquidity is the pair's liquidity tier.
type ForexLiquidity string

const (
	LiquidityMajor  ForexLiquidity = "major"
	LiquidityMinor  ForexLiquidity = "minor"
	LiquidityExotic ForexLiquidity = "exotic"
)

// ForexRiskInput are the inputs for currency pair scoring. Leverage is
// derived from the user's risk tolerance by the caller, not here.
type ForexRiskInput struct {
	ATRVolatility float64 // price units
	Leverage      float64
	Liquidity     ForexLiquidity
	TrendStrength float64 // signed; near zero = erratic
	SpreadPips    float64
}

// ForexRisk computes a 0-100 risk score for a currency pair. Base risk
// scales with ATR and leverage; thin liquidity tiers apply a multiplier; a
// wide spread and a weak trend raise risk while a strong directional trend
// reduces it.
func ForexRisk(in ForexRiskInput) models.RiskAssessment {
	components := []riskComponent{
		{"volatility", 0.35, clamp(in.ATRVolatility*10000, 0, 100)},
		{"leverage", 0.35, clamp(in.Leverage, 0, 100)},
		{"trend", 0.15, 100 - clamp(math.Abs(in.TrendStrength)*40, 0, 100)},
		{"spread", 0.15, clamp(in.SpreadPips*20, 0, 100)},
	}
	mult := 1.0
	switch in.Liquidity {
	case LiquidityMinor:
		mult = 1.15
	case LiquidityExotic:
		mult = 1.35
	}
	for i := range components {
		components[i].value *= mult
	}
	return assess(components, forexAdvice)
}

// LevelFor maps a clamped score to its discrete band.
func LevelFor(score int) models.RiskLevel {
	switch {
	case score < mediumRiskFloor:
		return models.RiskLow
	case score < highRiskFloor:
		return models.RiskMedium
	default:
		return models.RiskHigh
	}
}

type riskComponent struct {
	factor string
	weight float64
	value  float64
}

func assess(components []riskComponent, advice map[models.RiskLevel]map[string]string) models.RiskAssessment {
	var total, top float64
	dominant := components[0].factor
	for _, c := range components {
		contribution := c.weight * c.value
		total += contribution
		if contribution > top {
			top = contribution
			dominant = c.factor
		}
	}

	score := int(math.Round(clamp(total, 0, 100)))
	level := LevelFor(score)

	text, ok := advice[level][dominant]
	if !ok {
		text = fmt.Sprintf("%s risk driven by %s", level, dominant)
	}
	return models.RiskAssessment{Score: score, Level: level, Recommendation: text}
}

var stockAdvice = map[models.RiskLevel]map[string]string{
	models.RiskLow: {
		"volatility": "Stable price action with contained volatility; suits conservative entries",
		"beta":       "Moves roughly with the market; limited standalone risk",
		"momentum":   "RSI near neutral; no overbought or oversold pressure",
		"drawdown":   "Shallow recent drawdown; downside has been limited",
		"sentiment":  "News tone is supportive; low headline risk",
	},
	models.RiskMedium: {
		"volatility": "Elevated volatility; size positions accordingly",
		"beta":       "Amplifies market swings; expect above-index moves",
		"momentum":   "RSI drifting from neutral; watch for a momentum reversal",
		"drawdown":   "Notable recent drawdown; recovery not yet confirmed",
		"sentiment":  "Mixed news flow adds uncertainty to the setup",
	},
	models.RiskHigh: {
		"volatility": "High volatility regime; only for aggressive allocations",
		"beta":       "Strongly leveraged to market direction; sharp swings likely",
		"momentum":   "RSI at an extreme; stretched momentum raises reversal risk",
		"drawdown":   "Deep drawdown from recent peak; treat as speculative",
		"sentiment":  "Negative news pressure; headline-driven downside risk",
	},
}

var forexAdvice = map[models.RiskLevel]map[string]string{
	models.RiskLow: {
		"volatility": "Calm daily ranges; movement is orderly",
		"leverage":   "Conservative leverage keeps exposure manageable",
		"trend":      "Clear directional trend supports trend-following entries",
		"spread":     "Tight spread; execution cost is negligible",
	},
	models.RiskMedium: {
		"volatility": "Daily ranges are widening; use protective stops",
		"leverage":   "Moderate leverage magnifies swings in this pair",
		"trend":      "Trend is inconsistent; signals may whipsaw",
		"spread":     "Spread meaningfully eats into short-term trades",
	},
	models.RiskHigh: {
		"volatility": "Wide, erratic ranges; this pair moves violently",
		"leverage":   "High leverage on this pair risks rapid drawdown",
		"trend":      "No discernible trend; direction is effectively noise",
		"spread":     "Wide spread typical of thin books; slippage likely",
	},
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
