package models

// Quote is the gateway's price view of a symbol or pair.
type Quote struct {
	CurrentPrice  float64 `json:"currentPrice"`
	PercentChange float64 `json:"percentChange"`
	PreviousClose float64 `json:"previousClose"`
	Volume        float64 `json:"volume"`
}

// StockProfile is the gateway's fundamental view of an equity.
type StockProfile struct {
	Name      string  `json:"name"`
	Exchange  string  `json:"exchange"`
	Industry  string  `json:"industry"`
	MarketCap float64 `json:"marketCap"`
}

// NewsSentiment is the aggregate news tone for a symbol, in [-1, 1].
type NewsSentiment struct {
	Sentiment float64 `json:"sentiment"`
}

// CandleSeries is a historical close series for a symbol or pair.
type CandleSeries struct {
	Closes []float64 `json:"closes"`
	Highs  []float64 `json:"highs,omitempty"`
	Lows   []float64 `json:"lows,omitempty"`
}

// ForexTechnicals are the pair-level indicator inputs for forex risk scoring.
type ForexTechnicals struct {
	ATR           float64 `json:"atr"`
	TrendStrength float64 `json:"trendStrength"`
}

// ForexPairs groups the tradable pair universe by liquidity tier.
type ForexPairs struct {
	Major  []string `json:"major"`
	Minor  []string `json:"minor"`
	Exotic []string `json:"exotic"`
}

// Tick is a live trade event from the market stream.
type Tick struct {
	Symbol    string  `json:"symbol"`
	Price     float64 `json:"price"`
	Volume    float64 `json:"volume"`
	Timestamp int64   `json:"timestamp"` // unix seconds
}
