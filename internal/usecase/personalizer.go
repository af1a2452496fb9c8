package usecase

import (
	"math"
	"sort"

	"FinAdvisor/internal/domain/models"
)

// Personalization weights. Risk alignment dominates, then horizon fit, then
// conviction from confidence and backtest history, then an amount-driven
// tilt toward lower-risk candidates for larger portfolios.
const (
	riskAlignMax    = 40.0
	horizonAlignMax = 20.0
	amountTiltMax   = 10.0
)

// PersonalizeStocks assigns match scores against the profile and returns the
// candidates sorted by descending score, stable on the original order.
// Returns nil when the profile excludes equities.
func PersonalizeStocks(candidates []models.StockCandidate, profile *models.UserProfile) []models.StockCandidate {
	if profile.PreferredAssets == "forex" {
		return nil
	}

	ranked := append([]models.StockCandidate(nil), candidates...)
	for i := range ranked {
		c := &ranked[i]
		score := riskAlignment(c.RiskLevel, profile.RiskTolerance)
		score += horizonAlignment(c.Timeframe, profile.InvestmentHorizon)
		score += float64(c.ConfidenceScore) * 0.20
		score += math.Max(c.WinRate-0.5, 0) * 40
		score += amountTilt(profile.InvestmentAmount, c.RiskScore)
		c.MatchScore = round2(score)
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].MatchScore > ranked[j].MatchScore
	})
	return ranked
}

// PersonalizeForex is the currency-pair counterpart of PersonalizeStocks.
// Forex candidates carry no confidence score; conviction comes from the
// inverse risk score, and tight spreads stand in for liquidity quality.
func PersonalizeForex(candidates []models.ForexCandidate, profile *models.UserProfile) []models.ForexCandidate {
	if profile.PreferredAssets == "stocks" {
		return nil
	}

	ranked := append([]models.ForexCandidate(nil), candidates...)
	for i := range ranked {
		c := &ranked[i]
		score := riskAlignment(c.RiskLevel, profile.RiskTolerance)
		// pair projections are one-week; shorter horizons fit better
		switch profile.InvestmentHorizon {
		case "short":
			score += horizonAlignMax
		case "medium":
			score += horizonAlignMax * 0.6
		default:
			score += horizonAlignMax * 0.3
		}
		score += float64(100-c.RiskScore) * 0.20
		score += math.Max(3.2-c.SpreadPips, 0) * 5
		score += amountTilt(profile.InvestmentAmount, c.RiskScore)
		c.MatchScore = round2(score)
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].MatchScore > ranked[j].MatchScore
	})
	return ranked
}

var levelRank = map[models.RiskLevel]int{
	models.RiskLow:    0,
	models.RiskMedium: 1,
	models.RiskHigh:   2,
}

var toleranceRank = map[string]int{"low": 0, "medium": 1, "high": 2}

func riskAlignment(level models.RiskLevel, tolerance string) float64 {
	dist := math.Abs(float64(levelRank[level] - toleranceRank[tolerance]))
	return riskAlignMax - dist*17.5
}

var timeframeRank = map[string]int{"1W": 0, "1M": 1, "3M": 2}

var horizonRank = map[string]int{"short": 0, "medium": 1, "long": 2}

func horizonAlignment(timeframe, horizon string) float64 {
	dist := math.Abs(float64(timeframeRank[timeframe] - horizonRank[horizon]))
	return horizonAlignMax - dist*8
}

// amountTilt favors lower-risk candidates as the invested amount grows.
func amountTilt(amount float64, riskScore int) float64 {
	factor := math.Min(amount/100000, 1)
	return factor * float64(100-riskScore) / 100 * amountTiltMax
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
