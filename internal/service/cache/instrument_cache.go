package cache

import (
	"context"
	"errors"
	"sync"
	"time"

	"FinAdvisor/internal/domain/models"
	drepo "FinAdvisor/internal/domain/repository"
	"FinAdvisor/internal/services/analysis"
	applogger "FinAdvisor/pkg/logger"
)

// ErrUnavailable marks an instrument whose market data could not be obtained.
// Callers skip the instrument; it is not a request-level failure.
var ErrUnavailable = errors.New("instrument data unavailable")

const (
	// drawdown is only computed on a fresh fetch; cache hits reconstruct the
	// snapshot with this pinned value.
	cachedDrawdown = -5.0

	drawdownCandles  = 30
	candleResolution = "D"
)

// InstrumentCache is the time-bounded snapshot store in front of the gateway.
// Entries are written only by refresh; concurrent refreshes of the same key
// are allowed and resolve as last write wins.
type InstrumentCache struct {
	store   drepo.SnapshotStore
	gateway drepo.MarketGateway
	archive drepo.SnapshotArchive // optional
	metrics drepo.Metrics
	log     *applogger.Logger
	ttl     time.Duration
	now     func() time.Time
}

// NewInstrumentCache creates an instrument cache with the given TTL.
func NewInstrumentCache(store drepo.SnapshotStore, gateway drepo.MarketGateway, ttl time.Duration, log *applogger.Logger) *InstrumentCache {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &InstrumentCache{
		store:   store,
		gateway: gateway,
		log:     log,
		ttl:     ttl,
		now:     time.Now,
	}
}

// SetArchive attaches a best-effort snapshot archive.
func (c *InstrumentCache) SetArchive(a drepo.SnapshotArchive) { c.archive = a }

// SetMetrics attaches a metrics recorder.
func (c *InstrumentCache) SetMetrics(m drepo.Metrics) { c.metrics = m }

// GetOrRefresh returns a usable snapshot for the symbol, serving from the
// store when the entry is younger than the TTL and refreshing from the
// gateway otherwise. Returns ErrUnavailable when the upstream data is
// missing or the price is zero.
func (c *InstrumentCache) GetOrRefresh(ctx context.Context, symbol string) (*models.InstrumentSnapshot, error) {
	rec, err := c.store.FindOne(ctx, symbol)
	if err != nil {
		// The store is an optimization; a read failure falls through to a
		// fresh fetch.
		c.log.Warn("snapshot store read failed", applogger.String("symbol", symbol), applogger.Error(err))
		rec = nil
	}

	if rec != nil && c.now().Sub(rec.FetchedAt) < c.ttl {
		if c.metrics != nil {
			c.metrics.RecordCacheHit("snapshot")
		}
		return reconstruct(rec), nil
	}
	if c.metrics != nil {
		c.metrics.RecordCacheMiss("snapshot")
	}

	return c.refresh(ctx, symbol)
}

// refresh fans out the four gateway requests concurrently, derives drawdown
// from a separate candle request, and stores the result best-effort.
func (c *InstrumentCache) refresh(ctx context.Context, symbol string) (*models.InstrumentSnapshot, error) {
	var (
		wg        sync.WaitGroup
		quote     *models.Quote
		profile   *models.StockProfile
		tech      *models.Technicals
		sentiment *models.NewsSentiment
	)

	wg.Add(4)
	go func() {
		defer wg.Done()
		quote, _ = c.gateway.GetQuote(ctx, symbol)
	}()
	go func() {
		defer wg.Done()
		profile, _ = c.gateway.GetStockProfile(ctx, symbol)
	}()
	go func() {
		defer wg.Done()
		tech, _ = c.gateway.GetTechnicalIndicators(ctx, symbol)
	}()
	go func() {
		defer wg.Done()
		sentiment, _ = c.gateway.GetNewsSentiment(ctx, symbol)
	}()
	wg.Wait()

	if quote == nil || profile == nil || tech == nil || quote.CurrentPrice == 0 {
		if c.metrics != nil {
			c.metrics.RecordSkipped("missing_data")
		}
		return nil, ErrUnavailable
	}

	drawdown := cachedDrawdown
	if candles, err := c.gateway.GetStockCandles(ctx, symbol, candleResolution, drawdownCandles); err == nil && len(candles.Closes) > 0 {
		drawdown = analysis.Drawdown(candles.Closes)
	}

	snap := &models.InstrumentSnapshot{
		Key:        symbol,
		Name:       profile.Name,
		Price:      quote.CurrentPrice,
		Volume:     quote.Volume,
		Change24h:  quote.PercentChange,
		Technicals: *tech,
		Drawdown:   drawdown,
		PrevClose:  quote.PreviousClose,
		FetchedAt:  c.now(),
	}
	if snap.Name == "" {
		snap.Name = symbol
	}
	if sentiment != nil {
		snap.Sentiment = sentiment.Sentiment
	}
	if snap.PrevClose == 0 {
		snap.PrevClose = snap.Price
	}

	// Cache write is best-effort: a failure never blocks the fresh snapshot.
	rec := &models.SnapshotRecord{
		Key:        snap.Key,
		Name:       snap.Name,
		Price:      snap.Price,
		Volume:     snap.Volume,
		Change24h:  snap.Change24h,
		Technicals: snap.Technicals,
		Sentiment:  snap.Sentiment,
		FetchedAt:  snap.FetchedAt,
	}
	if err := c.store.Upsert(ctx, symbol, rec); err != nil {
		c.log.Warn("snapshot store write failed", applogger.String("symbol", symbol), applogger.Error(err))
	}

	if c.archive != nil {
		if err := c.archive.Append(ctx, snap); err != nil {
			c.log.Warn("snapshot archive append failed", applogger.String("symbol", symbol), applogger.Error(err))
		}
	}

	return snap, nil
}

// reconstruct rebuilds a snapshot from a stored record. Drawdown is pinned
// and prevClose is derived algebraically from price and change24h; this
// mirrors the fetch-path approximation and is intentionally not recomputed.
func reconstruct(rec *models.SnapshotRecord) *models.InstrumentSnapshot {
	return &models.InstrumentSnapshot{
		Key:        rec.Key,
		Name:       rec.Name,
		Price:      rec.Price,
		Volume:     rec.Volume,
		Change24h:  rec.Change24h,
		Technicals: rec.Technicals,
		Sentiment:  rec.Sentiment,
		Drawdown:   cachedDrawdown,
		PrevClose:  rec.Price / (1 + rec.Change24h/100),
		FetchedAt:  rec.FetchedAt,
	}
}
