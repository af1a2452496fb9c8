package di

import (
	"context"
	"fmt"
	"time"

	"FinAdvisor/internal/domain/repository"
	"FinAdvisor/internal/handler/api"
	mid "FinAdvisor/internal/middleware"
	internalrepo "FinAdvisor/internal/repository"
	icache "FinAdvisor/internal/service/cache"
	"FinAdvisor/internal/service/finnhub"
	"FinAdvisor/internal/usecase"
	pkgch "FinAdvisor/pkg/clickhouse"
	"FinAdvisor/pkg/config"
	xhttp "FinAdvisor/pkg/http"
	pkgkafka "FinAdvisor/pkg/kafka"
	applogger "FinAdvisor/pkg/logger"
	"FinAdvisor/pkg/metrics"
	"FinAdvisor/pkg/server"
)

// ProvideLogger creates the application logger from config.
func ProvideLogger(cfg *config.Config) (*applogger.Logger, error) {
	return applogger.New(&applogger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
}

// ProvideMetrics creates a Prometheus metrics recorder.
func ProvideMetrics() repository.Metrics {
	return metrics.New()
}

// ProvideGateway creates the Finnhub REST market gateway.
func ProvideGateway(cfg *config.Config, m repository.Metrics) repository.MarketGateway {
	return finnhub.New(finnhub.Config{
		APIKey:         cfg.Finnhub.APIKey,
		BaseURL:        cfg.Finnhub.BaseURL,
		RequestTimeout: cfg.Finnhub.RequestTimeout,
		RateLimit:      cfg.Finnhub.RateLimit,
		RateBurst:      cfg.Finnhub.RateBurst,
		MaxInflight:    cfg.Analysis.MaxInflight,
		StockUniverse:  cfg.Analysis.Symbols,
	}, m)
}

// ProvideSnapshotStore picks redis when enabled, in-memory otherwise.
func ProvideSnapshotStore(cfg *config.Config) repository.SnapshotStore {
	if cfg.Redis.Enabled {
		return icache.NewRedisStore(icache.RedisConfig{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
	}
	return icache.NewMemoryStore()
}

// ProvideClickHouseClient creates a ClickHouse client, or nil when disabled.
func ProvideClickHouseClient(cfg *config.Config) (*pkgch.Client, error) {
	if !cfg.ClickHouse.Enabled {
		return nil, nil
	}
	client, err := pkgch.NewClient(
		pkgch.WithHost(cfg.ClickHouse.Host),
		pkgch.WithPort(cfg.ClickHouse.Port),
		pkgch.WithDatabase(cfg.ClickHouse.Database),
		pkgch.WithCredentials(cfg.ClickHouse.User, cfg.ClickHouse.Password),
		pkgch.WithMaxConnections(10, 5),
		pkgch.WithHTTP(cfg.ClickHouse.UseHTTP),
		pkgch.WithAsyncInsert(cfg.ClickHouse.AsyncInsert, cfg.ClickHouse.WaitForAsync),
		pkgch.WithTimeouts(cfg.ClickHouse.DialTimeout, cfg.ClickHouse.ReadTimeout, cfg.ClickHouse.WriteTimeout),
		pkgch.WithMaxExecutionTime(cfg.ClickHouse.MaxExecutionTime),
	)
	if err != nil {
		return nil, fmt.Errorf("clickhouse client: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := client.InitSchema(ctx, internalrepo.SchemaStatements(cfg.ClickHouse.Database)); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("clickhouse schema: %w", err)
	}

	return client, nil
}

// ProvideSnapshotArchive creates the ClickHouse snapshot archive, or nil when
// ClickHouse is disabled.
func ProvideSnapshotArchive(chClient *pkgch.Client, l *applogger.Logger) repository.SnapshotArchive {
	if chClient == nil {
		return nil
	}
	a := internalrepo.NewCHSnapshotArchive(chClient)
	a.SetLogger(l)
	return a
}

// ProvideInstrumentCache creates the TTL snapshot cache.
func ProvideInstrumentCache(
	store repository.SnapshotStore,
	gateway repository.MarketGateway,
	archive repository.SnapshotArchive,
	m repository.Metrics,
	cfg *config.Config,
	l *applogger.Logger,
) *icache.InstrumentCache {
	c := icache.NewInstrumentCache(store, gateway, cfg.Analysis.CacheTTL, l)
	c.SetMetrics(m)
	if archive != nil {
		c.SetArchive(archive)
	}
	return c
}

// ProvideKafkaProducer creates a Kafka producer, or nil when disabled.
func ProvideKafkaProducer(cfg *config.Config) (*pkgkafka.Producer, error) {
	if !cfg.Kafka.Enabled {
		return nil, nil
	}
	producer, err := pkgkafka.NewProducer(
		pkgkafka.WithBrokers(cfg.Kafka.Brokers),
		pkgkafka.WithCompression(cfg.Kafka.Compression),
		pkgkafka.WithRequiredAcks(cfg.Kafka.RequiredAcks),
		pkgkafka.WithBatchSize(cfg.Kafka.BatchSize),
		pkgkafka.WithBatchBytes(cfg.Kafka.BatchBytes),
		pkgkafka.WithBatchTimeout(cfg.Kafka.Linger),
		pkgkafka.WithTimeouts(cfg.Kafka.WriteTimeout, cfg.Kafka.ReadTimeout),
		pkgkafka.WithMaxAttempts(cfg.Kafka.MaxAttempts),
		pkgkafka.WithAsync(cfg.Kafka.Async),
		pkgkafka.WithHashByKey(true),
	)
	if err != nil {
		return nil, fmt.Errorf("kafka producer: %w", err)
	}
	return producer, nil
}

// ProvidePublisher creates the Kafka recommendation publisher, or nil when
// Kafka is disabled.
func ProvidePublisher(producer *pkgkafka.Producer, cfg *config.Config, l *applogger.Logger) repository.RecommendationPublisher {
	if producer == nil {
		return nil
	}
	p := internalrepo.NewKafkaRecommendationPublisher(producer, cfg.Kafka.Topic)
	p.SetLogger(l)
	return p
}

// ProvideEngine creates the per-instrument analysis engine.
func ProvideEngine(
	cache *icache.InstrumentCache,
	gateway repository.MarketGateway,
	m repository.Metrics,
	l *applogger.Logger,
	cfg *config.Config,
) *usecase.Engine {
	return usecase.NewEngine(cache, gateway, m, l, cfg.Analysis.Strategy)
}

// ProvideRecommender creates the recommendation orchestrator.
func ProvideRecommender(
	engine *usecase.Engine,
	gateway repository.MarketGateway,
	publisher repository.RecommendationPublisher,
	m repository.Metrics,
	l *applogger.Logger,
	cfg *config.Config,
) *usecase.Recommender {
	r := usecase.NewRecommender(engine, gateway, m, l,
		cfg.Analysis.BatchSize, cfg.Analysis.BatchDelay, cfg.Analysis.TopN)
	if publisher != nil {
		r.SetPublisher(publisher)
	}
	return r
}

// ProvideMarketStream creates the Finnhub WebSocket stream.
func ProvideMarketStream(cfg *config.Config) repository.MarketStream {
	symbols := cfg.Analysis.Symbols
	if len(symbols) == 0 {
		symbols = finnhub.DefaultStockUniverse()
	}
	return finnhub.NewStream(
		cfg.Finnhub.APIKey,
		cfg.Finnhub.WebSocketURL,
		symbols,
		cfg.Finnhub.ReconnectDelay,
		cfg.Finnhub.PingInterval,
	)
}

// ProvideLiveBoard creates the live-quote board.
func ProvideLiveBoard() *usecase.LiveBoard {
	return usecase.NewLiveBoard()
}

// ProvideQuoteCollector creates the stream collector with its pipeline.
func ProvideQuoteCollector(
	stream repository.MarketStream,
	board *usecase.LiveBoard,
	m repository.Metrics,
) *usecase.QuoteCollector {
	pipe := mid.NewQuotePipeline(board, m, mid.WithMaxRPS(20))
	return usecase.NewQuoteCollector(stream, m, pipe)
}

// ProvideHTTPHandler creates the Echo route handler.
func ProvideHTTPHandler(
	l *applogger.Logger,
	recommender *usecase.Recommender,
	board *usecase.LiveBoard,
	collector *usecase.QuoteCollector,
) xhttp.Handler {
	h := api.NewRecommendationsHandler(l, recommender, board)
	h.SetCollector(collector)
	return h
}

// ProvideApp creates the application server.
func ProvideApp(
	cfg *config.Config,
	l *applogger.Logger,
	handler xhttp.Handler,
	collector *usecase.QuoteCollector,
	publisher repository.RecommendationPublisher,
	chClient *pkgch.Client,
) *server.App {
	return server.New(cfg, l, handler, collector, publisher, chClient)
}
