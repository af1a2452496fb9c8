package usecase

import (
	"sort"
	"sync"

	"FinAdvisor/internal/domain/models"
)

// LiveBoard keeps the last observed live tick per symbol for the read-only
// ticker surface. It is fed by the quote collector and never touches the
// instrument cache.
type LiveBoard struct {
	mu     sync.RWMutex
	quotes map[string]models.Tick
}

// NewLiveBoard creates an empty live board.
func NewLiveBoard() *LiveBoard {
	return &LiveBoard{quotes: make(map[string]models.Tick)}
}

// Update records the latest tick for its symbol.
func (b *LiveBoard) Update(t *models.Tick) {
	if t == nil || t.Symbol == "" {
		return
	}
	b.mu.Lock()
	b.quotes[t.Symbol] = *t
	b.mu.Unlock()
}

// Snapshot returns all live quotes ordered by symbol.
func (b *LiveBoard) Snapshot() []models.Tick {
	b.mu.RLock()
	out := make([]models.Tick, 0, len(b.quotes))
	for _, t := range b.quotes {
		out = append(out, t)
	}
	b.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool { return out[i].Symbol < out[j].Symbol })
	return out
}
