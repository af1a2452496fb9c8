package middleware

import (
	"context"
	"fmt"
	"sync"
	"time"

	"FinAdvisor/internal/domain/models"
	domrepo "FinAdvisor/internal/domain/repository"
)

// Board is the minimal live-quote sink the pipeline feeds.
type Board interface {
	Update(t *models.Tick)
}

// QuotePipeline sits between the market stream and the live board.
// It validates ticks and throttles per-symbol bursts so a noisy symbol
// cannot starve the rest of the board.
type QuotePipeline struct {
	board   Board
	metrics domrepo.Metrics
	maxRPS  int

	mu       sync.Mutex
	lastSeen map[string]time.Time
	started  bool
}

type PipelineOption func(*QuotePipeline)

// WithMaxRPS sets the max accepted ticks per second per symbol.
func WithMaxRPS(n int) PipelineOption {
	return func(p *QuotePipeline) {
		if n > 0 {
			p.maxRPS = n
		}
	}
}

// NewQuotePipeline creates a pipeline feeding the given board.
func NewQuotePipeline(board Board, metrics domrepo.Metrics, opts ...PipelineOption) *QuotePipeline {
	p := &QuotePipeline{
		board:    board,
		metrics:  metrics,
		maxRPS:   20,
		lastSeen: make(map[string]time.Time),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Start marks the pipeline as running.
func (p *QuotePipeline) Start(ctx context.Context) {
	p.mu.Lock()
	p.started = true
	p.mu.Unlock()
}

// Stop stops the pipeline; subsequent ticks are dropped.
func (p *QuotePipeline) Stop() {
	p.mu.Lock()
	p.started = false
	p.mu.Unlock()
}

func (p *QuotePipeline) running() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.started
}

// Process validates and throttles a tick, then publishes it to the board.
func (p *QuotePipeline) Process(ctx context.Context, t *models.Tick) error {
	if !p.running() {
		return nil
	}
	start := time.Now()
	if err := validateTick(t); err != nil {
		p.metrics.RecordError("pipeline_validate")
		return err
	}
	if !p.allow(t.Symbol, start) {
		// throttled; drop silently
		p.metrics.RecordError("pipeline_throttle")
		return nil
	}

	p.board.Update(t)
	p.metrics.RecordLatency("pipeline_process", time.Since(start).Seconds())
	return nil
}

func validateTick(t *models.Tick) error {
	if t == nil {
		return fmt.Errorf("tick nil")
	}
	if t.Symbol == "" {
		return fmt.Errorf("symbol empty")
	}
	if t.Timestamp <= 0 {
		return fmt.Errorf("timestamp invalid")
	}
	if t.Price < 0 || t.Volume < 0 {
		return fmt.Errorf("negative price/volume")
	}
	return nil
}

func (p *QuotePipeline) allow(symbol string, now time.Time) bool {
	if p.maxRPS <= 0 {
		return true
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	last := p.lastSeen[symbol]
	if !last.IsZero() && now.Sub(last) < time.Second/time.Duration(p.maxRPS) {
		return false
	}
	p.lastSeen[symbol] = now
	return true
}
