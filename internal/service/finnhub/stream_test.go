package finnhub

import (
	"context"
	"sync"
	"testing"
	"time"
)

func TestStreamSubscribeRequiresConnection(t *testing.T) {
	s := NewStream("key", "wss://example.invalid", []string{"AAPL"}, time.Millisecond, time.Second)
	if err := s.Subscribe(context.Background()); err == nil {
		t.Fatalf("expected error subscribing before connect")
	}
}

func TestStreamConcurrentStateAccess(t *testing.T) {
	s := NewStream("key", "wss://example.invalid", []string{"AAPL"}, time.Millisecond, time.Second)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				_ = s.Close()
			}
		}()
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				_ = s.IsConnected()
			}
		}()
	}
	wg.Wait()

	if s.IsConnected() {
		t.Fatalf("expected disconnected after close")
	}
}
