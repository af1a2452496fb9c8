package repository

import (
	"context"

	"FinAdvisor/internal/domain/models"
)

// MarketGateway is the rate-limited upstream market data source. Every call
// carries a bounded timeout through ctx; a timed-out call is reported as an
// error and the caller skips the instrument.
type MarketGateway interface {
	GetQuote(ctx context.Context, symbol string) (*models.Quote, error)
	GetStockProfile(ctx context.Context, symbol string) (*models.StockProfile, error)
	GetTechnicalIndicators(ctx context.Context, symbol string) (*models.Technicals, error)
	GetNewsSentiment(ctx context.Context, symbol string) (*models.NewsSentiment, error)
	GetStockCandles(ctx context.Context, symbol, resolution string, count int) (*models.CandleSeries, error)
	GetForexQuote(ctx context.Context, pair string) (*models.Quote, error)
	CalculateForexTechnicals(ctx context.Context, pair string) (*models.ForexTechnicals, error)
	GetMajorForexPairs(ctx context.Context) (*models.ForexPairs, error)
	GetTrendingStocks(ctx context.Context) ([]string, error)
}

// SnapshotStore persists cached snapshot records keyed by instrument.
// Writes are best-effort from the cache's point of view.
type SnapshotStore interface {
	FindOne(ctx context.Context, key string) (*models.SnapshotRecord, error)
	Upsert(ctx context.Context, key string, rec *models.SnapshotRecord) error
}

// SnapshotArchive appends freshly fetched snapshots to long-term history.
// Best-effort: failures are logged and never block a request.
type SnapshotArchive interface {
	Append(ctx context.Context, snap *models.InstrumentSnapshot) error
	Close() error
}

// RecommendationPublisher emits generated recommendation sets for downstream
// consumers (persistence and delivery live outside this core).
type RecommendationPublisher interface {
	PublishStocks(ctx context.Context, profile *models.UserProfile, recs []models.StockCandidate) error
	PublishForex(ctx context.Context, profile *models.UserProfile, recs []models.ForexCandidate) error
	Close() error
}

// MarketStream is a live trade feed (WebSocket upstream).
type MarketStream interface {
	Connect(ctx context.Context) error
	Subscribe(ctx context.Context) error
	Read(ctx context.Context) (<-chan *models.Tick, <-chan error)
	Reconnect(ctx context.Context) error
	Close() error
	IsConnected() bool
}

// Metrics records operational signals for the pipeline.
type Metrics interface {
	RecordGatewayRequest(endpoint, outcome string)
	RecordCacheHit(kind string)
	RecordCacheMiss(kind string)
	RecordSkipped(reason string)
	RecordError(kind string)
	RecordLastPrice(symbol string, price float64)
	RecordLatency(op string, seconds float64)
}
