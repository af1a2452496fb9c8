package analysis

import "testing"

func TestSimulateBacktestDeterministic(t *testing.T) {
	a := SimulateBacktest("AAPL", "mean-reversion")
	b := SimulateBacktest("AAPL", "mean-reversion")
	if a != b {
		t.Fatalf("expected identical results, got %+v vs %+v", a, b)
	}
}

func TestSimulateBacktestBounds(t *testing.T) {
	for _, key := range []string{"AAPL", "GOOGL", "EUR_USD", "USD_TRY"} {
		r := SimulateBacktest(key, "momentum")
		if r.SuccessRate < 0.40 || r.SuccessRate > 0.75 {
			t.Fatalf("%s: success rate out of range: %f", key, r.SuccessRate)
		}
		if r.SampleSize < 50 || r.SampleSize >= 400 {
			t.Fatalf("%s: sample size out of range: %d", key, r.SampleSize)
		}
	}
}

func TestSimulateBacktestLiquidInstrumentDepth(t *testing.T) {
	// short tickers and USD pairs carry the extended history bonus
	if r := SimulateBacktest("AAPL", "momentum"); r.SampleSize < 200 {
		t.Fatalf("expected extended history for AAPL, got %d", r.SampleSize)
	}
	if r := SimulateBacktest("EUR_USD", "momentum"); r.SampleSize < 200 {
		t.Fatalf("expected extended history for EUR_USD, got %d", r.SampleSize)
	}
	if r := SimulateBacktest("GOOGL", "momentum"); r.SampleSize >= 250 {
		t.Fatalf("expected base history for GOOGL, got %d", r.SampleSize)
	}
}

func TestSimulateBacktestVariesByKey(t *testing.T) {
	a := SimulateBacktest("AAPL", "mean-reversion")
	b := SimulateBacktest("MSFT", "mean-reversion")
	if a == b {
		t.Fatalf("expected different results for different keys")
	}
}
