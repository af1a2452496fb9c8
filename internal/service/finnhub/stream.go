package finnhub

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"FinAdvisor/internal/domain/models"
	drepo "FinAdvisor/internal/domain/repository"

	"github.com/gorilla/websocket"
)

// Stream implements a MarketStream backed by the Finnhub WebSocket feed.
// It powers the live quote board only; cached snapshots are never mutated
// outside the cache refresh path.
type Stream struct {
	apiKey         string
	websocketURL   string
	symbols        []string
	reconnectDelay time.Duration
	pingInterval   time.Duration

	mu        sync.Mutex
	conn      *websocket.Conn
	connected bool
}

// current returns the connection state under the lock; the read and ping
// loops run concurrently with Reconnect and Close.
func (s *Stream) current() (*websocket.Conn, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.conn, s.connected
}

// NewStream creates a Finnhub live trade stream for the given symbols.
func NewStream(apiKey, websocketURL string, symbols []string, reconnectDelay, pingInterval time.Duration) drepo.MarketStream {
	return &Stream{
		apiKey:         apiKey,
		websocketURL:   websocketURL,
		symbols:        symbols,
		reconnectDelay: reconnectDelay,
		pingInterval:   pingInterval,
	}
}

// Connect establishes the WebSocket connection.
func (s *Stream) Connect(ctx context.Context) error {
	u := fmt.Sprintf("%s?token=%s", s.websocketURL, s.apiKey)
	conn, _, err := websocket.DefaultDialer.DialContext(ctx, u, nil)
	if err != nil {
		return fmt.Errorf("finnhub connect: %w", err)
	}
	s.mu.Lock()
	s.conn = conn
	s.connected = true
	s.mu.Unlock()
	return nil
}

// Subscribe subscribes to the configured symbols.
func (s *Stream) Subscribe(ctx context.Context) error {
	conn, connected := s.current()
	if conn == nil || !connected {
		return fmt.Errorf("finnhub not connected")
	}
	for _, sym := range s.symbols {
		msg := map[string]string{"type": "subscribe", "symbol": sym}
		if err := conn.WriteJSON(msg); err != nil {
			return fmt.Errorf("subscribe %s: %w", sym, err)
		}
	}
	return nil
}

type wsTrade struct {
	S string  `json:"s"`
	P float64 `json:"p"`
	V float64 `json:"v"`
	T int64   `json:"t"` // ms
}

type wsMessage struct {
	Type string    `json:"type"`
	Data []wsTrade `json:"data"`
}

// Read streams Tick events and errors.
func (s *Stream) Read(ctx context.Context) (<-chan *models.Tick, <-chan error) {
	ticks := make(chan *models.Tick, 1024)
	errs := make(chan error, 1)

	// ping loop
	go func() {
		ticker := time.NewTicker(s.pingInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if conn, _ := s.current(); conn != nil {
					_ = conn.WriteMessage(websocket.PingMessage, nil)
				}
			}
		}
	}()

	// read loop; channels stay open across reconnects so the consumer can
	// keep ranging over them
	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			default:
				conn, connected := s.current()
				if conn == nil || !connected {
					time.Sleep(s.reconnectDelay)
					continue
				}
				_, b, err := conn.ReadMessage()
				if err != nil {
					select {
					case errs <- fmt.Errorf("finnhub read: %w", err):
					default:
					}
					// wait for the consumer to reconnect
					time.Sleep(s.reconnectDelay)
					continue
				}
				var m wsMessage
				if err := json.Unmarshal(b, &m); err != nil {
					// ignore non-trade frames
					continue
				}
				if m.Type != "trade" {
					continue
				}
				for _, d := range m.Data {
					tick := &models.Tick{Symbol: d.S, Price: d.P, Volume: d.V, Timestamp: d.T / 1000}
					select {
					case ticks <- tick:
					default:
						// drop on backpressure
					}
				}
			}
		}
	}()

	return ticks, errs
}

// Reconnect closes and reconnects.
func (s *Stream) Reconnect(ctx context.Context) error {
	_ = s.Close()
	time.Sleep(s.reconnectDelay)
	if err := s.Connect(ctx); err != nil {
		return err
	}
	return s.Subscribe(ctx)
}

// Close closes the WS connection.
func (s *Stream) Close() error {
	s.mu.Lock()
	conn := s.conn
	s.conn = nil
	s.connected = false
	s.mu.Unlock()
	if conn != nil {
		return conn.Close()
	}
	return nil
}

// IsConnected indicates status.
func (s *Stream) IsConnected() bool {
	_, connected := s.current()
	return connected
}
