package analysis

import "testing"

func TestConfidenceNeutralBase(t *testing.T) {
	got := Confidence(ConfidenceInput{RSI: 50, Volatility: 20})
	if got != 50 {
		t.Fatalf("expected 50, got %d", got)
	}
}

func TestConfidenceSentimentConviction(t *testing.T) {
	base := Confidence(ConfidenceInput{RSI: 50, Volatility: 20})
	bullish := Confidence(ConfidenceInput{RSI: 50, Volatility: 20, Sentiment: 1})
	bearish := Confidence(ConfidenceInput{RSI: 50, Volatility: 20, Sentiment: -1})
	if bullish != base+15 || bearish != base+15 {
		t.Fatalf("expected conviction from sentiment magnitude: %d / %d / %d", base, bullish, bearish)
	}
}

func TestConfidenceMonotonicInSampleSize(t *testing.T) {
	for _, winRate := range []float64{0.3, 0.5, 0.7, 0.9} {
		small := Confidence(ConfidenceInput{RSI: 50, Volatility: 20, HistoricalWinRate: winRate, SampleSize: 5})
		large := Confidence(ConfidenceInput{RSI: 50, Volatility: 20, HistoricalWinRate: winRate, SampleSize: 500})
		if small > large {
			t.Fatalf("winRate %.1f: small sample scored higher (%d > %d)", winRate, small, large)
		}
	}
}

func TestConfidenceShrinksSmallSamples(t *testing.T) {
	// 5 wins out of 5 should raise confidence far less than 450/500
	small := Confidence(ConfidenceInput{RSI: 50, Volatility: 20, HistoricalWinRate: 1.0, SampleSize: 5})
	large := Confidence(ConfidenceInput{RSI: 50, Volatility: 20, HistoricalWinRate: 0.9, SampleSize: 500})
	if small >= large {
		t.Fatalf("expected shrinkage on tiny sample: %d >= %d", small, large)
	}
}

func TestConfidenceBounds(t *testing.T) {
	cases := []ConfidenceInput{
		{RSI: 0, Volatility: 200, Sentiment: -1, HistoricalWinRate: 0, SampleSize: 5},
		{RSI: 100, Volatility: 0, Sentiment: 1, HistoricalWinRate: 1, SampleSize: 10000},
		{},
	}
	for _, in := range cases {
		got := Confidence(in)
		if got < 0 || got > 100 {
			t.Fatalf("confidence out of range: %d for %+v", got, in)
		}
	}
}
