package usecase

import (
	"context"
	"fmt"
	"time"

	"FinAdvisor/internal/domain/models"
	drepo "FinAdvisor/internal/domain/repository"
	"FinAdvisor/internal/services/analysis"
	applogger "FinAdvisor/pkg/logger"

	"github.com/creasty/defaults"
	"github.com/go-playground/validator/v10"
)

const (
	maxStockUniverse = 30
	maxMinorPairs    = 5
	maxExoticPairs   = 3
)

var validate = validator.New()

// Recommender runs the full pipeline: universe -> batched per-instrument
// analysis -> personalization -> top N, publishing each generated set
// best-effort for downstream persistence.
type Recommender struct {
	engine    *Engine
	gateway   drepo.MarketGateway
	publisher drepo.RecommendationPublisher // optional
	metrics   drepo.Metrics
	log       *applogger.Logger

	batchSize  int
	batchDelay time.Duration
	topN       int
}

// NewRecommender creates the recommendation pipeline.
func NewRecommender(engine *Engine, gateway drepo.MarketGateway, metrics drepo.Metrics, log *applogger.Logger, batchSize int, batchDelay time.Duration, topN int) *Recommender {
	if batchSize <= 0 {
		batchSize = 5
	}
	if batchDelay <= 0 {
		batchDelay = 500 * time.Millisecond
	}
	if topN <= 0 {
		topN = 10
	}
	return &Recommender{
		engine:     engine,
		gateway:    gateway,
		metrics:    metrics,
		log:        log,
		batchSize:  batchSize,
		batchDelay: batchDelay,
		topN:       topN,
	}
}

// SetPublisher attaches a best-effort recommendation publisher.
func (r *Recommender) SetPublisher(p drepo.RecommendationPublisher) { r.publisher = p }

// GenerateStocks produces the personalized top-N equity recommendations.
// A malformed profile or an unreachable universe fails the whole request;
// individual unavailable symbols are skipped silently.
func (r *Recommender) GenerateStocks(ctx context.Context, profile *models.UserProfile) ([]models.StockCandidate, error) {
	start := time.Now()
	if err := normalizeProfile(profile); err != nil {
		return nil, err
	}

	universe, err := r.gateway.GetTrendingStocks(ctx)
	if err != nil {
		return nil, fmt.Errorf("load stock universe: %w", err)
	}
	if len(universe) > maxStockUniverse {
		universe = universe[:maxStockUniverse]
	}

	candidates := BatchProcess(ctx, universe, r.batchSize, r.batchDelay,
		func(ctx context.Context, symbol string) (models.StockCandidate, bool) {
			c, err := r.engine.ProcessStock(ctx, symbol, profile)
			if err != nil {
				r.log.Debug("symbol skipped", applogger.String("symbol", symbol), applogger.Error(err))
				return models.StockCandidate{}, false
			}
			return *c, true
		})

	ranked := PersonalizeStocks(candidates, profile)
	top := truncate(ranked, r.topN)

	if r.publisher != nil {
		if err := r.publisher.PublishStocks(ctx, profile, top); err != nil {
			r.log.Warn("publish stock recommendations failed", applogger.Error(err))
		}
	}

	if r.metrics != nil {
		r.metrics.RecordLatency("generate_stocks", time.Since(start).Seconds())
	}
	r.log.Info("stock recommendations generated",
		applogger.Int("analyzed", len(universe)),
		applogger.Int("scored", len(candidates)),
		applogger.Int("returned", len(top)),
		applogger.Duration("duration_ms", time.Since(start)),
	)
	return top, nil
}

// GenerateForex produces the personalized top-N currency pair
// recommendations over the majors plus a slice of minors and exotics.
func (r *Recommender) GenerateForex(ctx context.Context, profile *models.UserProfile) ([]models.ForexCandidate, error) {
	start := time.Now()
	if err := normalizeProfile(profile); err != nil {
		return nil, err
	}

	pairs, err := r.gateway.GetMajorForexPairs(ctx)
	if err != nil {
		return nil, fmt.Errorf("load forex pairs: %w", err)
	}

	tiers := make(map[string]analysis.ForexLiquidity)
	universe := make([]string, 0, len(pairs.Major)+maxMinorPairs+maxExoticPairs)
	for _, p := range pairs.Major {
		tiers[p] = analysis.LiquidityMajor
		universe = append(universe, p)
	}
	for _, p := range truncate(pairs.Minor, maxMinorPairs) {
		tiers[p] = analysis.LiquidityMinor
		universe = append(universe, p)
	}
	for _, p := range truncate(pairs.Exotic, maxExoticPairs) {
		tiers[p] = analysis.LiquidityExotic
		universe = append(universe, p)
	}

	candidates := BatchProcess(ctx, universe, r.batchSize, r.batchDelay,
		func(ctx context.Context, pair string) (models.ForexCandidate, bool) {
			c, err := r.engine.ProcessForexPair(ctx, pair, profile, tiers[pair])
			if err != nil {
				r.log.Debug("pair skipped", applogger.String("pair", pair), applogger.Error(err))
				return models.ForexCandidate{}, false
			}
			return *c, true
		})

	ranked := PersonalizeForex(candidates, profile)
	top := truncate(ranked, r.topN)

	if r.publisher != nil {
		if err := r.publisher.PublishForex(ctx, profile, top); err != nil {
			r.log.Warn("publish forex recommendations failed", applogger.Error(err))
		}
	}

	if r.metrics != nil {
		r.metrics.RecordLatency("generate_forex", time.Since(start).Seconds())
	}
	r.log.Info("forex recommendations generated",
		applogger.Int("analyzed", len(universe)),
		applogger.Int("scored", len(candidates)),
		applogger.Int("returned", len(top)),
		applogger.Duration("duration_ms", time.Since(start)),
	)
	return top, nil
}

// normalizeProfile applies documented defaults to unset fields and rejects
// malformed profiles. Profile errors are fatal to the request.
func normalizeProfile(profile *models.UserProfile) error {
	if profile == nil {
		return fmt.Errorf("profile is required")
	}
	if err := defaults.Set(profile); err != nil {
		return fmt.Errorf("apply profile defaults: %w", err)
	}
	if err := validate.Struct(profile); err != nil {
		return fmt.Errorf("invalid profile: %w", err)
	}
	return nil
}

func truncate[T any](xs []T, n int) []T {
	if len(xs) > n {
		return xs[:n]
	}
	return xs
}
