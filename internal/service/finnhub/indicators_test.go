package finnhub

import (
	"math"
	"testing"
)

func TestAnnualizedVolatilityConstantSeries(t *testing.T) {
	closes := []float64{100, 100, 100, 100, 100}
	if got := AnnualizedVolatility(closes); got != 0 {
		t.Fatalf("expected zero volatility, got %v", got)
	}
}

func TestAnnualizedVolatilityShortSeries(t *testing.T) {
	if got := AnnualizedVolatility([]float64{100, 101}); got != 0 {
		t.Fatalf("expected zero for short series, got %v", got)
	}
}

func TestAnnualizedVolatilityPositive(t *testing.T) {
	closes := []float64{100, 102, 99, 103, 98, 104}
	if got := AnnualizedVolatility(closes); got <= 0 {
		t.Fatalf("expected positive volatility, got %v", got)
	}
}

func TestATRCloseToCloseFallback(t *testing.T) {
	closes := []float64{1.0000, 1.0010, 0.9990}
	got := ATR(nil, nil, closes, 14)
	want := (0.0010 + 0.0020) / 2
	if math.Abs(got-want) > 1e-9 {
		t.Fatalf("ATR = %v, want %v", got, want)
	}
}

func TestATRUsesHighLowRange(t *testing.T) {
	highs := []float64{1.002, 1.004}
	lows := []float64{0.998, 0.996}
	closes := []float64{1.000, 1.001}
	got := ATR(highs, lows, closes, 14)
	if math.Abs(got-0.008) > 1e-9 {
		t.Fatalf("ATR = %v, want 0.008", got)
	}
}

func TestTrendStrengthFlat(t *testing.T) {
	closes := make([]float64, 20)
	for i := range closes {
		closes[i] = 1.1
	}
	if got := TrendStrength(closes, 0.001); got != 0 {
		t.Fatalf("expected zero trend, got %v", got)
	}
}

func TestTrendStrengthRising(t *testing.T) {
	closes := make([]float64, 20)
	for i := range closes {
		closes[i] = 1.0 + float64(i)*0.001
	}
	if got := TrendStrength(closes, 0.001); got <= 0 {
		t.Fatalf("expected positive trend, got %v", got)
	}
}
