package repository

import (
	"context"
	"time"

	"FinAdvisor/internal/domain/models"
	pkgkafka "FinAdvisor/pkg/kafka"
	applogger "FinAdvisor/pkg/logger"
)

// recommendationEvent is the wire shape published to Kafka for downstream
// persistence and delivery.
type recommendationEvent struct {
	AssetClass  string                  `json:"assetClass"`
	GeneratedAt time.Time               `json:"generatedAt"`
	Profile     models.UserProfile      `json:"profile"`
	Stocks      []models.StockCandidate `json:"stocks,omitempty"`
	Forex       []models.ForexCandidate `json:"forex,omitempty"`
}

// KafkaRecommendationPublisher emits recommendation sets to a Kafka topic,
// keyed by asset class so consumers can partition by stream.
type KafkaRecommendationPublisher struct {
	producer *pkgkafka.Producer
	topic    string
	l        *applogger.Logger
}

func NewKafkaRecommendationPublisher(producer *pkgkafka.Producer, topic string) *KafkaRecommendationPublisher {
	return &KafkaRecommendationPublisher{producer: producer, topic: topic}
}

// SetLogger injects a structured logger.
func (p *KafkaRecommendationPublisher) SetLogger(l *applogger.Logger) { p.l = l }

func (p *KafkaRecommendationPublisher) PublishStocks(ctx context.Context, profile *models.UserProfile, recs []models.StockCandidate) error {
	ev := recommendationEvent{
		AssetClass:  "stocks",
		GeneratedAt: time.Now().UTC(),
		Profile:     *profile,
		Stocks:      recs,
	}
	return p.publish(ctx, ev)
}

func (p *KafkaRecommendationPublisher) PublishForex(ctx context.Context, profile *models.UserProfile, recs []models.ForexCandidate) error {
	ev := recommendationEvent{
		AssetClass:  "forex",
		GeneratedAt: time.Now().UTC(),
		Profile:     *profile,
		Forex:       recs,
	}
	return p.publish(ctx, ev)
}

func (p *KafkaRecommendationPublisher) publish(ctx context.Context, ev recommendationEvent) error {
	err := p.producer.Publish(ctx, p.topic, []byte(ev.AssetClass), ev)
	if err != nil && p.l != nil {
		p.l.Error("kafka publish recommendations error",
			applogger.String("asset_class", ev.AssetClass),
			applogger.Error(err),
		)
	}
	return err
}

func (p *KafkaRecommendationPublisher) Close() error {
	if p.producer != nil {
		return p.producer.Close()
	}
	return nil
}
