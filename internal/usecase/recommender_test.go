package usecase

import (
	"context"
	"sync"
	"testing"
	"time"

	"FinAdvisor/internal/domain/models"
	icache "FinAdvisor/internal/service/cache"
	applogger "FinAdvisor/pkg/logger"
)

// stubGateway serves a fixed universe; symbols in bad come back with a zero
// price and must be skipped by the pipeline.
type stubGateway struct {
	mu         sync.Mutex
	forexCalls int

	stocks []string
	pairs  *models.ForexPairs
	bad    map[string]bool
}

func (g *stubGateway) GetQuote(_ context.Context, symbol string) (*models.Quote, error) {
	if g.bad[symbol] {
		return &models.Quote{}, nil
	}
	return &models.Quote{CurrentPrice: 100, PercentChange: 1.5, PreviousClose: 99, Volume: 1_000_000}, nil
}

func (g *stubGateway) GetStockProfile(_ context.Context, symbol string) (*models.StockProfile, error) {
	return &models.StockProfile{Name: symbol + " Inc"}, nil
}

func (g *stubGateway) GetTechnicalIndicators(_ context.Context, _ string) (*models.Technicals, error) {
	return &models.Technicals{RSI: 55, Volatility: 25, Beta: 1.0}, nil
}

func (g *stubGateway) GetNewsSentiment(_ context.Context, _ string) (*models.NewsSentiment, error) {
	return &models.NewsSentiment{Sentiment: 0.1}, nil
}

func (g *stubGateway) GetStockCandles(_ context.Context, _, _ string, _ int) (*models.CandleSeries, error) {
	return &models.CandleSeries{Closes: []float64{100, 105, 98, 102}}, nil
}

func (g *stubGateway) GetForexQuote(_ context.Context, _ string) (*models.Quote, error) {
	g.mu.Lock()
	g.forexCalls++
	g.mu.Unlock()
	return &models.Quote{CurrentPrice: 1.1000, PercentChange: 0.3, PreviousClose: 1.0967}, nil
}

func (g *stubGateway) CalculateForexTechnicals(_ context.Context, _ string) (*models.ForexTechnicals, error) {
	return &models.ForexTechnicals{ATR: 0.0012, TrendStrength: 1.0}, nil
}

func (g *stubGateway) GetMajorForexPairs(_ context.Context) (*models.ForexPairs, error) {
	return g.pairs, nil
}

func (g *stubGateway) GetTrendingStocks(_ context.Context) ([]string, error) {
	return g.stocks, nil
}

func (g *stubGateway) quoteCalls() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.forexCalls
}

func newTestLogger(t *testing.T) *applogger.Logger {
	t.Helper()
	l, err := applogger.New(&applogger.Config{Level: "error", Format: "json", Output: "stderr"})
	if err != nil {
		t.Fatalf("logger: %v", err)
	}
	return l
}

func newPipeline(t *testing.T, gw *stubGateway, topN int) *Recommender {
	t.Helper()
	log := newTestLogger(t)
	cache := icache.NewInstrumentCache(icache.NewMemoryStore(), gw, time.Minute, log)
	engine := NewEngine(cache, gw, nil, log, "mean-reversion")
	return NewRecommender(engine, gw, nil, log, 5, time.Millisecond, topN)
}

func TestGenerateStocksAppliesProfileDefaults(t *testing.T) {
	gw := &stubGateway{stocks: []string{"AAPL", "MSFT"}}
	r := newPipeline(t, gw, 10)

	profile := &models.UserProfile{}
	recs, err := r.GenerateStocks(context.Background(), profile)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if profile.RiskTolerance != "medium" || profile.InvestmentHorizon != "medium" ||
		profile.InvestmentAmount != 10000 || profile.PreferredAssets != "both" {
		t.Fatalf("defaults not applied: %+v", profile)
	}
	if len(recs) != 2 {
		t.Fatalf("expected 2 recommendations, got %d", len(recs))
	}
	for _, rec := range recs {
		if rec.Timeframe != "1M" {
			t.Fatalf("expected medium-horizon timeframe 1M, got %s", rec.Timeframe)
		}
	}
}

func TestGenerateStocksRejectsInvalidProfile(t *testing.T) {
	gw := &stubGateway{stocks: []string{"AAPL"}}
	r := newPipeline(t, gw, 10)

	_, err := r.GenerateStocks(context.Background(), &models.UserProfile{RiskTolerance: "reckless"})
	if err == nil {
		t.Fatalf("expected validation error for unknown risk tolerance")
	}
}

func TestGenerateStocksSkipsUnavailableSymbol(t *testing.T) {
	gw := &stubGateway{
		stocks: []string{"AAPL", "BAD", "MSFT"},
		bad:    map[string]bool{"BAD": true},
	}
	r := newPipeline(t, gw, 10)

	recs, err := r.GenerateStocks(context.Background(), mediumProfile())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(recs) != 2 {
		t.Fatalf("expected the zero-price symbol to be dropped, got %d recommendations", len(recs))
	}
	for _, rec := range recs {
		if rec.Symbol == "BAD" {
			t.Fatalf("zero-price symbol survived the pipeline")
		}
	}
}

func TestGenerateStocksTruncatesToTopN(t *testing.T) {
	gw := &stubGateway{stocks: []string{"AAPL", "MSFT", "GOOGL", "AMZN"}}
	r := newPipeline(t, gw, 2)

	recs, err := r.GenerateStocks(context.Background(), mediumProfile())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(recs) != 2 {
		t.Fatalf("expected topN=2 recommendations, got %d", len(recs))
	}
}

func TestGenerateForexBoundsMinorAndExoticPairs(t *testing.T) {
	gw := &stubGateway{
		pairs: &models.ForexPairs{
			Major:  []string{"EUR_USD", "USD_JPY", "GBP_USD", "USD_CHF", "AUD_USD", "USD_CAD", "NZD_USD"},
			Minor:  []string{"EUR_GBP", "EUR_JPY", "GBP_JPY", "EUR_CHF", "AUD_JPY", "EUR_AUD", "GBP_CHF"},
			Exotic: []string{"USD_TRY", "USD_ZAR", "USD_MXN", "USD_SGD", "USD_HKD", "USD_NOK"},
		},
	}
	r := newPipeline(t, gw, 10)

	recs, err := r.GenerateForex(context.Background(), mediumProfile())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// all majors plus at most 5 minors and 3 exotics are analyzed
	if got := gw.quoteCalls(); got != 15 {
		t.Fatalf("expected 15 pair quotes (7 majors + 5 minors + 3 exotics), got %d", got)
	}
	if len(recs) != 10 {
		t.Fatalf("expected topN=10 recommendations, got %d", len(recs))
	}
}
