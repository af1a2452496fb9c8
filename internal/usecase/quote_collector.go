package usecase

import (
	"context"

	"FinAdvisor/internal/domain/models"
	drepo "FinAdvisor/internal/domain/repository"
	mid "FinAdvisor/internal/middleware"
)

// QuoteCollector consumes ticks from the market stream and feeds the
// live board through the quote pipeline.
type QuoteCollector struct {
	stream  drepo.MarketStream
	metrics drepo.Metrics
	pipe    *mid.QuotePipeline
}

// NewQuoteCollector creates a new QuoteCollector instance.
func NewQuoteCollector(stream drepo.MarketStream, metrics drepo.Metrics, pipe *mid.QuotePipeline) *QuoteCollector {
	return &QuoteCollector{stream: stream, metrics: metrics, pipe: pipe}
}

// IsConnected returns true if the market stream is connected.
func (c *QuoteCollector) IsConnected() bool {
	return c.stream.IsConnected()
}

func (c *QuoteCollector) Start(ctx context.Context) error {
	if err := c.stream.Connect(ctx); err != nil {
		return err
	}
	if err := c.stream.Subscribe(ctx); err != nil {
		return err
	}
	c.pipe.Start(ctx)
	tickCh, errCh := c.stream.Read(ctx)
	go c.consume(ctx, tickCh, errCh)
	return nil
}

func (c *QuoteCollector) consume(ctx context.Context, tickCh <-chan *models.Tick, errCh <-chan error) {
	for {
		select {
		case <-ctx.Done():
			return
		case err := <-errCh:
			if err != nil {
				c.metrics.RecordError("stream")
				_ = c.stream.Reconnect(ctx)
			}
		case t := <-tickCh:
			if t == nil {
				continue
			}
			_ = c.pipe.Process(ctx, t)
			c.metrics.RecordLastPrice(t.Symbol, t.Price)
		}
	}
}

// Shutdown stops the pipeline and closes the stream.
func (c *QuoteCollector) Shutdown(ctx context.Context) error {
	c.pipe.Stop()
	return c.stream.Close()
}
