package usecase

import (
	"context"
	"sync"

	"FinAdvisor/internal/domain/models"
	drepo "FinAdvisor/internal/domain/repository"
	icache "FinAdvisor/internal/service/cache"
	"FinAdvisor/internal/services/analysis"
	applogger "FinAdvisor/pkg/logger"
	"FinAdvisor/pkg/util"
)

// Engine computes one candidate per instrument: snapshot via the cache (or
// gateway for pairs), then risk, confidence, backtest, and projection fields.
type Engine struct {
	cache    *icache.InstrumentCache
	gateway  drepo.MarketGateway
	metrics  drepo.Metrics
	log      *applogger.Logger
	strategy string
}

// NewEngine creates an analysis engine.
func NewEngine(cache *icache.InstrumentCache, gateway drepo.MarketGateway, metrics drepo.Metrics, log *applogger.Logger, strategy string) *Engine {
	if strategy == "" {
		strategy = "mean-reversion"
	}
	return &Engine{cache: cache, gateway: gateway, metrics: metrics, log: log, strategy: strategy}
}

// ProcessStock scores a single equity for the given profile. Returns
// cache.ErrUnavailable when market data is missing; callers skip the symbol.
func (e *Engine) ProcessStock(ctx context.Context, symbol string, profile *models.UserProfile) (*models.StockCandidate, error) {
	snap, err := e.cache.GetOrRefresh(ctx, symbol)
	if err != nil {
		return nil, err
	}

	perf := analysis.SimulateBacktest(symbol, e.strategy)

	risk := analysis.StockRisk(analysis.StockRiskInput{
		Volatility: snap.Technicals.Volatility,
		Beta:       snap.Technicals.Beta,
		RSI:        snap.Technicals.RSI,
		Drawdown:   snap.Drawdown,
		Sentiment:  snap.Sentiment,
	})

	confidence := analysis.Confidence(analysis.ConfidenceInput{
		RSI:               snap.Technicals.RSI,
		Volatility:        snap.Technicals.Volatility,
		Sentiment:         snap.Sentiment,
		HistoricalWinRate: perf.SuccessRate,
		SampleSize:        perf.SampleSize,
	})

	if e.metrics != nil {
		e.metrics.RecordLastPrice(symbol, snap.Price)
	}

	return &models.StockCandidate{
		Symbol:             snap.Key,
		Name:               snap.Name,
		Price:              snap.Price,
		Change24h:          snap.Change24h,
		RiskScore:          risk.Score,
		RiskLevel:          risk.Level,
		ProjectedReturn:    analysis.ProjectedReturn(snap.Technicals.Volatility, snap.Technicals.RSI, profile.InvestmentHorizon),
		Timeframe:          profile.Timeframe(),
		Reason:             risk.Recommendation,
		ConfidenceScore:    confidence,
		HistoricalAccuracy: util.FormatSuccessRate(perf.SuccessRate),
		WinRate:            perf.SuccessRate,
	}, nil
}

// ProcessForexPair scores a single currency pair. Pairs are quoted live and
// not cached; quote and technicals are fetched concurrently.
func (e *Engine) ProcessForexPair(ctx context.Context, pair string, profile *models.UserProfile, liquidity analysis.ForexLiquidity) (*models.ForexCandidate, error) {
	var (
		wg    sync.WaitGroup
		quote *models.Quote
		tech  *models.ForexTechnicals
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		quote, _ = e.gateway.GetForexQuote(ctx, pair)
	}()
	go func() {
		defer wg.Done()
		tech, _ = e.gateway.CalculateForexTechnicals(ctx, pair)
	}()
	wg.Wait()

	if quote == nil || quote.CurrentPrice == 0 {
		if e.metrics != nil {
			e.metrics.RecordSkipped("missing_data")
		}
		return nil, icache.ErrUnavailable
	}

	atr := 0.001
	trend := 0.0
	if tech != nil {
		if tech.ATR > 0 {
			atr = tech.ATR
		}
		trend = tech.TrendStrength
	}

	spread := analysis.SpreadFor(liquidity)

	risk := analysis.ForexRisk(analysis.ForexRiskInput{
		ATRVolatility: atr,
		Leverage:      profile.Leverage(),
		Liquidity:     liquidity,
		TrendStrength: trend,
		SpreadPips:    spread,
	})

	oldRate := quote.PreviousClose
	if oldRate == 0 {
		oldRate = quote.CurrentPrice
	}

	if e.metrics != nil {
		e.metrics.RecordLastPrice(pair, quote.CurrentPrice)
	}

	return &models.ForexCandidate{
		Pair:          util.FormatPair(pair),
		Rate:          quote.CurrentPrice,
		Change24h:     quote.PercentChange,
		PipMovement:   util.FormatPips(analysis.PipMovement(oldRate, quote.CurrentPrice, pair)),
		RiskScore:     risk.Score,
		RiskLevel:     risk.Level,
		Spread:        util.FormatSpread(spread),
		ProjectedPips: util.FormatProjectedPips(analysis.ProjectedPips(trend)),
		Reason:        risk.Recommendation,
		SpreadPips:    spread,
	}, nil
}
