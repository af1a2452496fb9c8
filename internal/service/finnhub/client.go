package finnhub

import (
	"context"
	"fmt"
	"strings"
	"time"

	"FinAdvisor/internal/domain/models"
	drepo "FinAdvisor/internal/domain/repository"
	"FinAdvisor/internal/service/ratelimit"
	xhttp "FinAdvisor/pkg/http"
)

// Config holds the REST client settings.
type Config struct {
	APIKey         string
	BaseURL        string
	RequestTimeout time.Duration
	RateLimit      float64 // requests per second
	RateBurst      float64
	MaxInflight    int // hard ceiling on concurrent upstream requests
	StockUniverse  []string
}

// Client implements the MarketGateway against the Finnhub REST API.
// Every request is gated by a token bucket and a counting semaphore so the
// number of in-flight upstream calls never exceeds MaxInflight.
type Client struct {
	cfg      Config
	http     *xhttp.Client
	limiter  *ratelimit.Limiter
	inflight chan struct{}
	metrics  drepo.Metrics
}

// New creates a Finnhub REST gateway.
func New(cfg Config, metrics drepo.Metrics) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://finnhub.io/api/v1"
	}
	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = 5 * time.Second
	}
	if cfg.RateLimit <= 0 {
		cfg.RateLimit = 25
	}
	if cfg.RateBurst <= 0 {
		cfg.RateBurst = 30
	}
	if cfg.MaxInflight <= 0 {
		cfg.MaxInflight = 25
	}
	if len(cfg.StockUniverse) == 0 {
		cfg.StockUniverse = defaultStockUniverse
	}
	return &Client{
		cfg:      cfg,
		http:     xhttp.NewClient(xhttp.WithTimeout(cfg.RequestTimeout)),
		limiter:  ratelimit.New(),
		inflight: make(chan struct{}, cfg.MaxInflight),
		metrics:  metrics,
	}
}

var _ drepo.MarketGateway = (*Client)(nil)

// --- wire types ---

type fhQuote struct {
	C  float64 `json:"c"`
	DP float64 `json:"dp"`
	PC float64 `json:"pc"`
	V  float64 `json:"v"`
}

type fhProfile struct {
	Name      string  `json:"name"`
	Exchange  string  `json:"exchange"`
	Industry  string  `json:"finnhubIndustry"`
	MarketCap float64 `json:"marketCapitalization"`
}

type fhSentiment struct {
	Sentiment struct {
		Bearish float64 `json:"bearishPercent"`
		Bullish float64 `json:"bullishPercent"`
	} `json:"sentiment"`
}

type fhCandles struct {
	Status string    `json:"s"`
	Closes []float64 `json:"c"`
	Highs  []float64 `json:"h"`
	Lows   []float64 `json:"l"`
}

type fhIndicator struct {
	Status string    `json:"s"`
	Closes []float64 `json:"c"`
	RSI    []float64 `json:"rsi"`
}

type fhMetric struct {
	Metric struct {
		Beta float64 `json:"beta"`
	} `json:"metric"`
}

// get performs one rate-limited, semaphore-bounded GET with a per-call timeout.
func (c *Client) get(ctx context.Context, endpoint, path string, params map[string][]string, dest interface{}) error {
	select {
	case c.inflight <- struct{}{}:
	case <-ctx.Done():
		return ctx.Err()
	}
	defer func() { <-c.inflight }()

	if err := c.limiter.Wait(ctx, endpoint, c.cfg.RateBurst, c.cfg.RateLimit); err != nil {
		return fmt.Errorf("rate limit wait: %w", err)
	}

	rctx, cancel := context.WithTimeout(ctx, c.cfg.RequestTimeout)
	defer cancel()

	if params == nil {
		params = map[string][]string{}
	}
	params["token"] = []string{c.cfg.APIKey}

	err := c.http.GetJSON(rctx, c.cfg.BaseURL+path, params, dest)

	if c.metrics != nil {
		outcome := "ok"
		if err != nil {
			outcome = "error"
		}
		c.metrics.RecordGatewayRequest(endpoint, outcome)
	}
	if err != nil {
		return fmt.Errorf("finnhub %s: %w", endpoint, err)
	}
	return nil
}

// GetQuote returns the current quote for an equity symbol.
func (c *Client) GetQuote(ctx context.Context, symbol string) (*models.Quote, error) {
	var q fhQuote
	if err := c.get(ctx, "quote", "/quote", map[string][]string{"symbol": {symbol}}, &q); err != nil {
		return nil, err
	}
	return &models.Quote{
		CurrentPrice:  q.C,
		PercentChange: q.DP,
		PreviousClose: q.PC,
		Volume:        q.V,
	}, nil
}

// GetStockProfile returns the fundamental profile for a symbol.
func (c *Client) GetStockProfile(ctx context.Context, symbol string) (*models.StockProfile, error) {
	var p fhProfile
	if err := c.get(ctx, "profile", "/stock/profile2", map[string][]string{"symbol": {symbol}}, &p); err != nil {
		return nil, err
	}
	if p.Name == "" {
		p.Name = symbol
	}
	return &models.StockProfile{
		Name:      p.Name,
		Exchange:  p.Exchange,
		Industry:  p.Industry,
		MarketCap: p.MarketCap,
	}, nil
}

// GetTechnicalIndicators returns RSI, annualized volatility, and beta for a
// symbol. RSI and the close series come from one /indicator request;
// volatility is computed locally from the closes; beta from /stock/metric.
func (c *Client) GetTechnicalIndicators(ctx context.Context, symbol string) (*models.Technicals, error) {
	now := time.Now()
	var ind fhIndicator
	err := c.get(ctx, "indicator", "/indicator", map[string][]string{
		"symbol":     {symbol},
		"resolution": {"D"},
		"from":       {fmt.Sprint(now.AddDate(0, -3, 0).Unix())},
		"to":         {fmt.Sprint(now.Unix())},
		"indicator":  {"rsi"},
		"timeperiod": {"14"},
	}, &ind)
	if err != nil {
		return nil, err
	}
	if ind.Status != "ok" {
		return nil, fmt.Errorf("finnhub indicator: no data for %s", symbol)
	}

	t := &models.Technicals{RSI: 50, Volatility: 25, Beta: 1.0}
	if rsi := lastNonZero(ind.RSI); rsi > 0 {
		t.RSI = rsi
	}
	if vol := AnnualizedVolatility(ind.Closes); vol > 0 {
		t.Volatility = vol
	}

	// Beta is fundamental, not derivable from the close series. Missing beta
	// is tolerated and falls back to 1.0.
	var m fhMetric
	if err := c.get(ctx, "metric", "/stock/metric", map[string][]string{
		"symbol": {symbol},
		"metric": {"all"},
	}, &m); err == nil && m.Metric.Beta > 0 {
		t.Beta = m.Metric.Beta
	}

	return t, nil
}

// GetNewsSentiment returns aggregate news tone in [-1, 1].
func (c *Client) GetNewsSentiment(ctx context.Context, symbol string) (*models.NewsSentiment, error) {
	var s fhSentiment
	if err := c.get(ctx, "sentiment", "/news-sentiment", map[string][]string{"symbol": {symbol}}, &s); err != nil {
		return nil, err
	}
	return &models.NewsSentiment{Sentiment: s.Sentiment.Bullish - s.Sentiment.Bearish}, nil
}

// GetStockCandles returns the last count candles at the given resolution.
func (c *Client) GetStockCandles(ctx context.Context, symbol, resolution string, count int) (*models.CandleSeries, error) {
	return c.candles(ctx, "candle", "/stock/candle", symbol, resolution, count)
}

// GetForexQuote returns the current quote for a pair code like "USD_JPY".
func (c *Client) GetForexQuote(ctx context.Context, pair string) (*models.Quote, error) {
	var q fhQuote
	if err := c.get(ctx, "forex_quote", "/quote", map[string][]string{"symbol": {oandaSymbol(pair)}}, &q); err != nil {
		return nil, err
	}
	return &models.Quote{
		CurrentPrice:  q.C,
		PercentChange: q.DP,
		PreviousClose: q.PC,
		Volume:        q.V,
	}, nil
}

// CalculateForexTechnicals derives ATR(14) and trend strength from 30 daily
// pair candles.
func (c *Client) CalculateForexTechnicals(ctx context.Context, pair string) (*models.ForexTechnicals, error) {
	cs, err := c.candles(ctx, "forex_candle", "/forex/candle", oandaSymbol(pair), "D", 30)
	if err != nil {
		return nil, err
	}
	atr := ATR(cs.Highs, cs.Lows, cs.Closes, 14)
	if atr <= 0 {
		return nil, fmt.Errorf("finnhub forex technicals: no range data for %s", pair)
	}
	return &models.ForexTechnicals{
		ATR:           atr,
		TrendStrength: TrendStrength(cs.Closes, atr),
	}, nil
}

// GetMajorForexPairs returns the pair universe grouped by liquidity tier.
// Finnhub's symbol listing is unstable across plans; the universe is fixed.
func (c *Client) GetMajorForexPairs(_ context.Context) (*models.ForexPairs, error) {
	return &models.ForexPairs{
		Major:  append([]string(nil), majorPairs...),
		Minor:  append([]string(nil), minorPairs...),
		Exotic: append([]string(nil), exoticPairs...),
	}, nil
}

// GetTrendingStocks returns the configured analysis universe.
func (c *Client) GetTrendingStocks(_ context.Context) ([]string, error) {
	return append([]string(nil), c.cfg.StockUniverse...), nil
}

func (c *Client) candles(ctx context.Context, endpoint, path, symbol, resolution string, count int) (*models.CandleSeries, error) {
	now := time.Now()
	from := now.AddDate(0, 0, -count)
	if resolution != "D" {
		// sub-daily windows: approximate count bars at 1h granularity
		from = now.Add(-time.Duration(count) * time.Hour)
	}
	var cs fhCandles
	err := c.get(ctx, endpoint, path, map[string][]string{
		"symbol":     {symbol},
		"resolution": {resolution},
		"from":       {fmt.Sprint(from.Unix())},
		"to":         {fmt.Sprint(now.Unix())},
	}, &cs)
	if err != nil {
		return nil, err
	}
	if cs.Status != "ok" || len(cs.Closes) == 0 {
		return nil, fmt.Errorf("finnhub %s: no data for %s", endpoint, symbol)
	}
	return &models.CandleSeries{Closes: cs.Closes, Highs: cs.Highs, Lows: cs.Lows}, nil
}

func oandaSymbol(pair string) string {
	return "OANDA:" + strings.ToUpper(pair)
}

func lastNonZero(xs []float64) float64 {
	for i := len(xs) - 1; i >= 0; i-- {
		if xs[i] != 0 {
			return xs[i]
		}
	}
	return 0
}

// DefaultStockUniverse returns the built-in equity universe.
func DefaultStockUniverse() []string {
	return append([]string(nil), defaultStockUniverse...)
}

var defaultStockUniverse = []string{
	"AAPL", "MSFT", "GOOGL", "AMZN", "NVDA", "META", "TSLA", "AMD", "NFLX", "CRM",
	"ORCL", "ADBE", "INTC", "CSCO", "QCOM", "JPM", "BAC", "GS", "V", "MA",
	"WMT", "COST", "DIS", "NKE", "MCD", "PFE", "JNJ", "UNH", "XOM", "CVX",
}

var majorPairs = []string{
	"EUR_USD", "USD_JPY", "GBP_USD", "USD_CHF", "AUD_USD", "USD_CAD", "NZD_USD",
}

var minorPairs = []string{
	"EUR_GBP", "EUR_JPY", "GBP_JPY", "EUR_CHF", "AUD_JPY", "CAD_JPY", "EUR_AUD",
}

var exoticPairs = []string{
	"USD_TRY", "USD_ZAR", "USD_MXN", "USD_SGD", "USD_HKD", "USD_NOK",
}
