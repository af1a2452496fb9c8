package models

// RiskLevel is the discrete band a risk score falls into.
type RiskLevel string

const (
	RiskLow    RiskLevel = "low"
	RiskMedium RiskLevel = "medium"
	RiskHigh   RiskLevel = "high"
)

// RiskAssessment is the output of a risk scorer.
type RiskAssessment struct {
	Score          int       `json:"score"` // 0..100
	Level          RiskLevel `json:"level"`
	Recommendation string    `json:"recommendation"`
}

// BacktestResult holds simulated historical strategy performance.
// Deterministic per (instrument key, strategy name).
type BacktestResult struct {
	SuccessRate float64 `json:"successRate"` // [0, 1]
	SampleSize  int     `json:"sampleSize"`
}

// StockCandidate is a scored equity recommendation. MatchScore is zero until
// the personalizer assigns it.
type StockCandidate struct {
	Symbol             string    `json:"symbol"`
	Name               string    `json:"name"`
	Price              float64   `json:"price"`
	Change24h          float64   `json:"change24h"`
	RiskScore          int       `json:"riskScore"`
	RiskLevel          RiskLevel `json:"riskLevel"`
	ProjectedReturn    float64   `json:"projectedReturn"`
	Timeframe          string    `json:"timeframe"`
	Reason             string    `json:"reason"`
	ConfidenceScore    int       `json:"confidenceScore"`
	HistoricalAccuracy string    `json:"historicalAccuracy"`
	MatchScore         float64   `json:"matchScore"`

	// winRate feeds the personalizer; the serialized form carries only the
	// formatted HistoricalAccuracy text.
	WinRate float64 `json:"-"`
}

// ForexCandidate is a scored currency pair recommendation.
type ForexCandidate struct {
	Pair          string    `json:"pair"` // display form, "USD/JPY"
	Rate          float64   `json:"rate"`
	Change24h     float64   `json:"change24h"`
	PipMovement   string    `json:"pipMovement"`
	RiskScore     int       `json:"riskScore"`
	RiskLevel     RiskLevel `json:"riskLevel"`
	Spread        string    `json:"spread"`
	ProjectedPips string    `json:"projectedPips"`
	Reason        string    `json:"reason"`
	MatchScore    float64   `json:"matchScore"`

	SpreadPips float64 `json:"-"`
}
