package usecase

import (
	"testing"

	"FinAdvisor/internal/domain/models"
)

func mediumProfile() *models.UserProfile {
	return &models.UserProfile{
		RiskTolerance:     "medium",
		InvestmentHorizon: "medium",
		InvestmentAmount:  10000,
		PreferredAssets:   "both",
	}
}

func TestPersonalizeStocksRiskAlignmentDominates(t *testing.T) {
	candidates := []models.StockCandidate{
		{Symbol: "HOT", RiskScore: 80, RiskLevel: models.RiskHigh, Timeframe: "1M", ConfidenceScore: 50, WinRate: 0.6},
		{Symbol: "FIT", RiskScore: 50, RiskLevel: models.RiskMedium, Timeframe: "1M", ConfidenceScore: 50, WinRate: 0.6},
	}

	ranked := PersonalizeStocks(candidates, mediumProfile())
	if len(ranked) != 2 {
		t.Fatalf("expected 2 candidates, got %d", len(ranked))
	}
	if ranked[0].Symbol != "FIT" {
		t.Fatalf("expected risk-aligned candidate first, got %s", ranked[0].Symbol)
	}
	if ranked[0].MatchScore <= ranked[1].MatchScore {
		t.Fatalf("expected descending match scores: %v <= %v", ranked[0].MatchScore, ranked[1].MatchScore)
	}
}

func TestPersonalizeStocksDoesNotMutateInput(t *testing.T) {
	candidates := []models.StockCandidate{
		{Symbol: "A", RiskLevel: models.RiskMedium, Timeframe: "1M"},
	}
	_ = PersonalizeStocks(candidates, mediumProfile())
	if candidates[0].MatchScore != 0 {
		t.Fatalf("input slice was mutated: %v", candidates[0].MatchScore)
	}
}

func TestPersonalizeStocksForexOnlyProfile(t *testing.T) {
	p := mediumProfile()
	p.PreferredAssets = "forex"
	if got := PersonalizeStocks([]models.StockCandidate{{Symbol: "A"}}, p); got != nil {
		t.Fatalf("expected nil for forex-only profile, got %v", got)
	}
}

func TestPersonalizeForexStocksOnlyProfile(t *testing.T) {
	p := mediumProfile()
	p.PreferredAssets = "stocks"
	if got := PersonalizeForex([]models.ForexCandidate{{Pair: "EUR/USD"}}, p); got != nil {
		t.Fatalf("expected nil for stocks-only profile, got %v", got)
	}
}

func TestPersonalizeForexTightSpreadPreferred(t *testing.T) {
	candidates := []models.ForexCandidate{
		{Pair: "USD/TRY", RiskScore: 40, RiskLevel: models.RiskMedium, SpreadPips: 3.0},
		{Pair: "EUR/USD", RiskScore: 40, RiskLevel: models.RiskMedium, SpreadPips: 0.8},
	}
	ranked := PersonalizeForex(candidates, mediumProfile())
	if ranked[0].Pair != "EUR/USD" {
		t.Fatalf("expected tight-spread pair first, got %s", ranked[0].Pair)
	}
}

func TestPersonalizeStocksStableOnTies(t *testing.T) {
	candidates := []models.StockCandidate{
		{Symbol: "A", RiskLevel: models.RiskMedium, Timeframe: "1M", ConfidenceScore: 50, WinRate: 0.5},
		{Symbol: "B", RiskLevel: models.RiskMedium, Timeframe: "1M", ConfidenceScore: 50, WinRate: 0.5},
	}
	ranked := PersonalizeStocks(candidates, mediumProfile())
	if ranked[0].Symbol != "A" || ranked[1].Symbol != "B" {
		t.Fatalf("expected stable order on equal scores, got %s, %s", ranked[0].Symbol, ranked[1].Symbol)
	}
}
