package usecase

import (
	"context"
	"testing"
	"time"
)

func TestBatchProcessKeepsOrderAndDrops(t *testing.T) {
	items := []int{1, 2, 3, 4, 5, 6, 7}
	got := BatchProcess(context.Background(), items, 3, 0, func(_ context.Context, i int) (int, bool) {
		return i, i%3 != 0
	})
	want := []int{1, 2, 4, 5, 7}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestBatchProcessPanicIsolated(t *testing.T) {
	items := []int{1, 2, 3}
	got := BatchProcess(context.Background(), items, 3, 0, func(_ context.Context, i int) (int, bool) {
		if i == 2 {
			panic("boom")
		}
		return i, true
	})
	if len(got) != 2 || got[0] != 1 || got[1] != 3 {
		t.Fatalf("expected siblings to survive panic, got %v", got)
	}
}

func TestBatchProcessDelayBetweenGroups(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}
	delay := 30 * time.Millisecond

	start := time.Now()
	got := BatchProcess(context.Background(), items, 2, delay, func(_ context.Context, i int) (int, bool) {
		return i, true
	})
	elapsed := time.Since(start)

	if len(got) != 5 {
		t.Fatalf("expected all items, got %v", got)
	}
	// three groups means two inter-group delays; no delay after the last
	if elapsed < 2*delay {
		t.Fatalf("expected at least %v of pacing, took %v", 2*delay, elapsed)
	}
}

func TestBatchProcessCancelReturnsPartial(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	items := []int{1, 2, 3, 4}
	got := BatchProcess(ctx, items, 2, 50*time.Millisecond, func(_ context.Context, i int) (int, bool) {
		return i, true
	})
	// the running group completes; cancellation stops before the next group
	if len(got) != 2 || got[0] != 1 || got[1] != 2 {
		t.Fatalf("expected first group only, got %v", got)
	}
}

func TestBatchProcessEmpty(t *testing.T) {
	got := BatchProcess(context.Background(), nil, 5, 0, func(_ context.Context, i int) (int, bool) {
		return i, true
	})
	if len(got) != 0 {
		t.Fatalf("expected empty result, got %v", got)
	}
}
