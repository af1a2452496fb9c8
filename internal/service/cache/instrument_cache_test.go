package cache

import (
	"context"
	"math"
	"sync"
	"testing"
	"time"

	"FinAdvisor/internal/domain/models"
	applogger "FinAdvisor/pkg/logger"
)

type fakeGateway struct {
	mu         sync.Mutex
	quoteCalls int
	price      float64
	change     float64
}

func (g *fakeGateway) GetQuote(_ context.Context, _ string) (*models.Quote, error) {
	g.mu.Lock()
	g.quoteCalls++
	g.mu.Unlock()
	if g.price == 0 {
		return &models.Quote{}, nil
	}
	return &models.Quote{CurrentPrice: g.price, PercentChange: g.change, PreviousClose: g.price * 0.99, Volume: 1_000_000}, nil
}

func (g *fakeGateway) GetStockProfile(_ context.Context, symbol string) (*models.StockProfile, error) {
	return &models.StockProfile{Name: symbol + " Inc"}, nil
}

func (g *fakeGateway) GetTechnicalIndicators(_ context.Context, _ string) (*models.Technicals, error) {
	return &models.Technicals{RSI: 55, Volatility: 30, Beta: 1.1}, nil
}

func (g *fakeGateway) GetNewsSentiment(_ context.Context, _ string) (*models.NewsSentiment, error) {
	return &models.NewsSentiment{Sentiment: 0.2}, nil
}

func (g *fakeGateway) GetStockCandles(_ context.Context, _, _ string, _ int) (*models.CandleSeries, error) {
	return &models.CandleSeries{Closes: []float64{100, 110, 99, 105}}, nil
}

func (g *fakeGateway) GetForexQuote(_ context.Context, _ string) (*models.Quote, error) {
	return nil, nil
}

func (g *fakeGateway) CalculateForexTechnicals(_ context.Context, _ string) (*models.ForexTechnicals, error) {
	return nil, nil
}

func (g *fakeGateway) GetMajorForexPairs(_ context.Context) (*models.ForexPairs, error) {
	return &models.ForexPairs{}, nil
}

func (g *fakeGateway) GetTrendingStocks(_ context.Context) ([]string, error) {
	return nil, nil
}

func (g *fakeGateway) calls() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.quoteCalls
}

func testLogger(t *testing.T) *applogger.Logger {
	t.Helper()
	l, err := applogger.New(&applogger.Config{Level: "error", Format: "json", Output: "stderr"})
	if err != nil {
		t.Fatalf("logger: %v", err)
	}
	return l
}

func TestGetOrRefreshFetchesAndCaches(t *testing.T) {
	gw := &fakeGateway{price: 150, change: 2}
	c := NewInstrumentCache(NewMemoryStore(), gw, 5*time.Minute, testLogger(t))

	snap, err := c.GetOrRefresh(context.Background(), "AAPL")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if snap.Price != 150 || snap.Name != "AAPL Inc" {
		t.Fatalf("unexpected snapshot %+v", snap)
	}
	if snap.Drawdown != -10 {
		t.Fatalf("expected candle-derived drawdown -10, got %v", snap.Drawdown)
	}
	if gw.calls() != 1 {
		t.Fatalf("expected one quote fetch, got %d", gw.calls())
	}

	// second read inside the TTL must not touch the gateway
	if _, err := c.GetOrRefresh(context.Background(), "AAPL"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gw.calls() != 1 {
		t.Fatalf("cache hit still hit the gateway: %d calls", gw.calls())
	}
}

func TestGetOrRefreshExpiryTriggersRefetch(t *testing.T) {
	gw := &fakeGateway{price: 150, change: 2}
	c := NewInstrumentCache(NewMemoryStore(), gw, 5*time.Minute, testLogger(t))

	base := time.Now()
	c.now = func() time.Time { return base }

	if _, err := c.GetOrRefresh(context.Background(), "AAPL"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	c.now = func() time.Time { return base.Add(6 * time.Minute) }
	if _, err := c.GetOrRefresh(context.Background(), "AAPL"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gw.calls() != 2 {
		t.Fatalf("expected refetch after TTL, got %d calls", gw.calls())
	}
}

func TestGetOrRefreshReconstruction(t *testing.T) {
	gw := &fakeGateway{price: 200, change: 5}
	c := NewInstrumentCache(NewMemoryStore(), gw, 5*time.Minute, testLogger(t))

	if _, err := c.GetOrRefresh(context.Background(), "MSFT"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	snap, err := c.GetOrRefresh(context.Background(), "MSFT")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if snap.Drawdown != -5 {
		t.Fatalf("expected pinned drawdown on cache hit, got %v", snap.Drawdown)
	}
	wantPrev := 200 / 1.05
	if math.Abs(snap.PrevClose-wantPrev) > 1e-9 {
		t.Fatalf("reconstructed prevClose = %v, want %v", snap.PrevClose, wantPrev)
	}
}

func TestGetOrRefreshZeroPriceUnavailable(t *testing.T) {
	gw := &fakeGateway{price: 0}
	c := NewInstrumentCache(NewMemoryStore(), gw, 5*time.Minute, testLogger(t))

	if _, err := c.GetOrRefresh(context.Background(), "NOPE"); err != ErrUnavailable {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
}
