package middleware

import (
	"context"
	"testing"
	"time"

	"FinAdvisor/internal/domain/models"
)

type fakeBoard struct {
	updates []models.Tick
}

func (b *fakeBoard) Update(t *models.Tick) { b.updates = append(b.updates, *t) }

type noopMetrics struct{}

func (noopMetrics) RecordGatewayRequest(string, string) {}
func (noopMetrics) RecordCacheHit(string)               {}
func (noopMetrics) RecordCacheMiss(string)              {}
func (noopMetrics) RecordSkipped(string)                {}
func (noopMetrics) RecordError(string)                  {}
func (noopMetrics) RecordLastPrice(string, float64)     {}
func (noopMetrics) RecordLatency(string, float64)       {}

func validTick(symbol string) *models.Tick {
	return &models.Tick{Symbol: symbol, Price: 100, Volume: 10, Timestamp: time.Now().Unix()}
}

func TestPipelineRejectsInvalidTick(t *testing.T) {
	board := &fakeBoard{}
	p := NewQuotePipeline(board, noopMetrics{})
	p.Start(context.Background())

	if err := p.Process(context.Background(), &models.Tick{Price: 1, Timestamp: 1}); err == nil {
		t.Fatalf("expected validation error for empty symbol")
	}
	if err := p.Process(context.Background(), nil); err == nil {
		t.Fatalf("expected validation error for nil tick")
	}
	if len(board.updates) != 0 {
		t.Fatalf("invalid ticks reached the board: %v", board.updates)
	}
}

func TestPipelineThrottlesPerSymbol(t *testing.T) {
	board := &fakeBoard{}
	p := NewQuotePipeline(board, noopMetrics{}, WithMaxRPS(1))
	p.Start(context.Background())

	if err := p.Process(context.Background(), validTick("AAPL")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// immediate second tick for the same symbol is dropped
	if err := p.Process(context.Background(), validTick("AAPL")); err != nil {
		t.Fatalf("throttled tick must not error: %v", err)
	}
	// a different symbol is unaffected
	if err := p.Process(context.Background(), validTick("MSFT")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(board.updates) != 2 {
		t.Fatalf("expected 2 board updates, got %d", len(board.updates))
	}
}

func TestPipelineStoppedDropsTicks(t *testing.T) {
	board := &fakeBoard{}
	p := NewQuotePipeline(board, noopMetrics{})
	p.Start(context.Background())
	p.Stop()

	if err := p.Process(context.Background(), validTick("AAPL")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(board.updates) != 0 {
		t.Fatalf("stopped pipeline still updated the board")
	}
}
