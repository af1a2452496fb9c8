package analysis

import "testing"

func TestDrawdownPeakToTrough(t *testing.T) {
	got := Drawdown([]float64{100, 110, 99, 105})
	if got != -10 {
		t.Fatalf("drawdown = %v, want -10", got)
	}
}

func TestDrawdownRisingSeries(t *testing.T) {
	if got := Drawdown([]float64{100, 101, 105, 110}); got != 0 {
		t.Fatalf("drawdown = %v, want 0", got)
	}
}

func TestDrawdownEmpty(t *testing.T) {
	if got := Drawdown(nil); got != 0 {
		t.Fatalf("drawdown = %v, want 0", got)
	}
}

func TestProjectedReturnHorizonScaling(t *testing.T) {
	// neutral RSI and baseline volatility isolate the horizon base
	short := ProjectedReturn(25, 50, "short")
	medium := ProjectedReturn(25, 50, "medium")
	long := ProjectedReturn(25, 50, "long")
	if short != 2 || medium != 5 || long != 10 {
		t.Fatalf("horizon bases = %v / %v / %v", short, medium, long)
	}
}

func TestProjectedReturnMeanReversionTilt(t *testing.T) {
	oversold := ProjectedReturn(25, 20, "medium")
	overbought := ProjectedReturn(25, 80, "medium")
	if oversold <= overbought {
		t.Fatalf("expected oversold > overbought, got %v <= %v", oversold, overbought)
	}
}

func TestProjectedReturnClamped(t *testing.T) {
	if got := ProjectedReturn(1000, 100, "short"); got < -20 {
		t.Fatalf("projected return below floor: %v", got)
	}
}

func TestProjectedPips(t *testing.T) {
	if got := ProjectedPips(2.5); got != 25 {
		t.Fatalf("ProjectedPips(2.5) = %d, want 25", got)
	}
	if got := ProjectedPips(-2.5); got != 25 {
		t.Fatalf("ProjectedPips(-2.5) = %d, want 25", got)
	}
	if got := ProjectedPips(0); got != 50 {
		t.Fatalf("ProjectedPips(0) = %d, want 50", got)
	}
}
