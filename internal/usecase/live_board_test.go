package usecase

import (
	"testing"

	"FinAdvisor/internal/domain/models"
)

func TestLiveBoardKeepsLatestPerSymbol(t *testing.T) {
	b := NewLiveBoard()
	b.Update(&models.Tick{Symbol: "MSFT", Price: 300, Timestamp: 1})
	b.Update(&models.Tick{Symbol: "AAPL", Price: 150, Timestamp: 1})
	b.Update(&models.Tick{Symbol: "AAPL", Price: 151, Timestamp: 2})
	b.Update(nil)
	b.Update(&models.Tick{Price: 1, Timestamp: 3}) // no symbol, ignored

	got := b.Snapshot()
	if len(got) != 2 {
		t.Fatalf("expected 2 quotes, got %d", len(got))
	}
	if got[0].Symbol != "AAPL" || got[1].Symbol != "MSFT" {
		t.Fatalf("expected symbol order AAPL, MSFT: %v", got)
	}
	if got[0].Price != 151 {
		t.Fatalf("expected latest AAPL price, got %v", got[0].Price)
	}
}
