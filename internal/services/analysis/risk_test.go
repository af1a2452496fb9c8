package analysis

import (
	"testing"

	"FinAdvisor/internal/domain/models"
)

func TestStockRiskHighComposite(t *testing.T) {
	got := StockRisk(StockRiskInput{
		Volatility: 80,
		Beta:       1.8,
		RSI:        85,
		Drawdown:   -20,
		Sentiment:  -0.6,
	})
	if got.Level != models.RiskHigh {
		t.Fatalf("expected high, got %s (score %d)", got.Level, got.Score)
	}
	if got.Score != 76 {
		t.Fatalf("unexpected score %d", got.Score)
	}
	if got.Recommendation == "" {
		t.Fatalf("expected recommendation text")
	}
}

func TestStockRiskCalmInputs(t *testing.T) {
	got := StockRisk(StockRiskInput{
		Volatility: 10,
		Beta:       0.9,
		RSI:        50,
		Drawdown:   -2,
		Sentiment:  0.5,
	})
	if got.Level != models.RiskLow {
		t.Fatalf("expected low, got %s (score %d)", got.Level, got.Score)
	}
}

func TestStockRiskScoreBounds(t *testing.T) {
	worst := StockRisk(StockRiskInput{Volatility: 500, Beta: 10, RSI: 100, Drawdown: -90, Sentiment: -1})
	if worst.Score < 0 || worst.Score > 100 {
		t.Fatalf("score out of range: %d", worst.Score)
	}
	best := StockRisk(StockRiskInput{Volatility: 0, Beta: 0, RSI: 50, Drawdown: 0, Sentiment: 1})
	if best.Score < 0 || best.Score > 100 {
		t.Fatalf("score out of range: %d", best.Score)
	}
	if best.Score >= worst.Score {
		t.Fatalf("expected calm < stressed, got %d >= %d", best.Score, worst.Score)
	}
}

func TestLevelForBoundaries(t *testing.T) {
	cases := []struct {
		score int
		want  models.RiskLevel
	}{
		{0, models.RiskLow},
		{32, models.RiskLow},
		{33, models.RiskMedium},
		{65, models.RiskMedium},
		{66, models.RiskHigh},
		{100, models.RiskHigh},
	}
	for _, c := range cases {
		if got := LevelFor(c.score); got != c.want {
			t.Fatalf("LevelFor(%d) = %s, want %s", c.score, got, c.want)
		}
	}
}

func TestForexRiskLiquidityOrdering(t *testing.T) {
	in := ForexRiskInput{
		ATRVolatility: 0.005,
		Leverage:      50,
		TrendStrength: 1,
		SpreadPips:    1.5,
	}

	in.Liquidity = LiquidityMajor
	major := ForexRisk(in)
	in.Liquidity = LiquidityMinor
	minor := ForexRisk(in)
	in.Liquidity = LiquidityExotic
	exotic := ForexRisk(in)

	if !(major.Score < minor.Score && minor.Score < exotic.Score) {
		t.Fatalf("expected major < minor < exotic, got %d / %d / %d",
			major.Score, minor.Score, exotic.Score)
	}
}

func TestForexRiskTrendReducesRisk(t *testing.T) {
	flat := ForexRisk(ForexRiskInput{ATRVolatility: 0.003, Leverage: 50, Liquidity: LiquidityMajor, TrendStrength: 0, SpreadPips: 0.8})
	trending := ForexRisk(ForexRiskInput{ATRVolatility: 0.003, Leverage: 50, Liquidity: LiquidityMajor, TrendStrength: 2.5, SpreadPips: 0.8})
	if trending.Score >= flat.Score {
		t.Fatalf("expected strong trend to reduce risk: %d >= %d", trending.Score, flat.Score)
	}
}
