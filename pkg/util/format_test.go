package util

import "testing"

func TestFormatPair(t *testing.T) {
	if got := FormatPair("USD_JPY"); got != "USD/JPY" {
		t.Fatalf("unexpected pair format %q", got)
	}
}

func TestFormatPips(t *testing.T) {
	if got := FormatPips(25); got != "+25 pips" {
		t.Fatalf("unexpected %q", got)
	}
	if got := FormatPips(-8); got != "-8 pips" {
		t.Fatalf("unexpected %q", got)
	}
}

func TestFormatProjectedPips(t *testing.T) {
	if got := FormatProjectedPips(50); got != "+50 pips (1W)" {
		t.Fatalf("unexpected %q", got)
	}
}

func TestFormatSpread(t *testing.T) {
	if got := FormatSpread(0.8); got != "0.8 pips" {
		t.Fatalf("unexpected %q", got)
	}
	if got := FormatSpread(3); got != "3 pips" {
		t.Fatalf("unexpected %q", got)
	}
}

func TestFormatSuccessRate(t *testing.T) {
	if got := FormatSuccessRate(0.625); got != "62.5% success rate in backtests" {
		t.Fatalf("unexpected %q", got)
	}
}
