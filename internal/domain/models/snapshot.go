package models

import "time"

// Technicals holds the indicator inputs used by the risk and confidence scorers.
type Technicals struct {
	RSI        float64 `json:"rsi"`
	Volatility float64 `json:"volatility"`
	Beta       float64 `json:"beta"`
}

// InstrumentSnapshot is the per-instrument market view the analysis engine
// works from. A snapshot with Price == 0 is unusable and must be skipped.
type InstrumentSnapshot struct {
	Key        string     `json:"key"`
	Name       string     `json:"name"`
	Price      float64    `json:"price"`
	Volume     float64    `json:"volume"`
	Change24h  float64    `json:"change24h"` // percent
	Technicals Technicals `json:"technicals"`
	Sentiment  float64    `json:"sentiment"` // [-1, 1]
	Drawdown   float64    `json:"drawdown"`  // percent, <= 0
	PrevClose  float64    `json:"prevClose"`
	FetchedAt  time.Time  `json:"fetchedAt"`
}

// Usable reports whether the snapshot carries enough data to be scored.
func (s *InstrumentSnapshot) Usable() bool {
	return s != nil && s.Price > 0
}

// SnapshotRecord is the subset of a snapshot persisted by the snapshot store.
// Drawdown and PrevClose are deliberately not stored: on a cache hit they are
// reconstructed (drawdown pinned, prevClose derived from price and change24h).
type SnapshotRecord struct {
	Key        string     `json:"key"`
	Name       string     `json:"name"`
	Price      float64    `json:"price"`
	Volume     float64    `json:"volume"`
	Change24h  float64    `json:"change24h"`
	Technicals Technicals `json:"technicals"`
	Sentiment  float64    `json:"sentiment"`
	FetchedAt  time.Time  `json:"fetchedAt"`
}
