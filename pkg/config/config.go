package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Environment string `yaml:"environment"`
	Server      struct {
		Port            int           `yaml:"port"`
		ReadTimeout     time.Duration `yaml:"read_timeout"`
		WriteTimeout    time.Duration `yaml:"write_timeout"`
		ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
	} `yaml:"server"`
	Metrics struct {
		Enabled bool   `yaml:"enabled"`
		Path    string `yaml:"path"`
	} `yaml:"metrics"`
	Finnhub struct {
		APIKey         string        `yaml:"api_key"`
		BaseURL        string        `yaml:"base_url"`
		WebSocketURL   string        `yaml:"websocket_url"`
		RequestTimeout time.Duration `yaml:"request_timeout"`
		RateLimit      float64       `yaml:"rate_limit"` // requests per second
		RateBurst      float64       `yaml:"rate_burst"`
		ReconnectDelay time.Duration `yaml:"reconnect_delay"`
		PingInterval   time.Duration `yaml:"ping_interval"`
	} `yaml:"finnhub"`
	Analysis struct {
		// Universe of equities analyzed per run; defaults applied when empty.
		Symbols []string `yaml:"symbols"`
		// BatchSize instruments are processed concurrently per group.
		BatchSize int `yaml:"batch_size"`
		// BatchDelay separates consecutive groups to respect upstream limits.
		BatchDelay time.Duration `yaml:"batch_delay"`
		// MaxInflight is the hard ceiling on concurrent gateway HTTP calls.
		MaxInflight int           `yaml:"max_inflight"`
		CacheTTL    time.Duration `yaml:"cache_ttl"`
		TopN        int           `yaml:"top_n"`
		Strategy    string        `yaml:"strategy"`
	} `yaml:"analysis"`
	Redis struct {
		Enabled  bool   `yaml:"enabled"`
		Addr     string `yaml:"addr"`
		Password string `yaml:"password"`
		DB       int    `yaml:"db"`
	} `yaml:"redis"`
	Kafka struct {
		Enabled      bool          `yaml:"enabled"`
		Brokers      []string      `yaml:"brokers"`
		Topic        string        `yaml:"topic"`
		RequiredAcks int           `yaml:"required_acks"`
		Compression  string        `yaml:"compression"`
		MaxAttempts  int           `yaml:"max_attempts"`
		Linger       time.Duration `yaml:"linger"`
		BatchBytes   int           `yaml:"batch_bytes"`
		BatchSize    int           `yaml:"batch_size"`
		WriteTimeout time.Duration `yaml:"write_timeout"`
		ReadTimeout  time.Duration `yaml:"read_timeout"`
		Async        bool          `yaml:"async"`
	} `yaml:"kafka"`
	ClickHouse struct {
		Enabled          bool          `yaml:"enabled"`
		Host             string        `yaml:"host"`
		Port             int           `yaml:"port"`
		Database         string        `yaml:"database"`
		User             string        `yaml:"user"`
		Password         string        `yaml:"password"`
		UseHTTP          bool          `yaml:"use_http"`
		AsyncInsert      bool          `yaml:"async_insert"`
		WaitForAsync     bool          `yaml:"wait_for_async_insert"`
		DialTimeout      time.Duration `yaml:"dial_timeout"`
		ReadTimeout      time.Duration `yaml:"read_timeout"`
		WriteTimeout     time.Duration `yaml:"write_timeout"`
		MaxExecutionTime time.Duration `yaml:"max_execution_time"`
	} `yaml:"clickhouse"`
	Log struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"`
		Output string `yaml:"output"`
	} `yaml:"log"`
}

// Load reads and parses a YAML configuration file.
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var c Config
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	c.applyDefaults()

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &c, nil
}

// LoadWithEnv loads config from YAML and overrides with environment variables.
func LoadWithEnv(path string) (*Config, error) {
	c, err := Load(path)
	if err != nil {
		return nil, err
	}

	if v := os.Getenv("FINNHUB_API_KEY"); v != "" {
		c.Finnhub.APIKey = v
	}
	if v := os.Getenv("SYMBOLS"); v != "" {
		c.Analysis.Symbols = strings.Split(v, ",")
	}
	if v := os.Getenv("REDIS_ADDR"); v != "" {
		c.Redis.Addr = v
		c.Redis.Enabled = true
	}
	if v := os.Getenv("KAFKA_BROKERS"); v != "" {
		c.Kafka.Brokers = strings.Split(v, ",")
	}
	if v := os.Getenv("KAFKA_TOPIC"); v != "" {
		c.Kafka.Topic = v
	}

	return c, nil
}

func (c *Config) applyDefaults() {
	if c.Finnhub.BaseURL == "" {
		c.Finnhub.BaseURL = "https://finnhub.io/api/v1"
	}
	if c.Finnhub.WebSocketURL == "" {
		c.Finnhub.WebSocketURL = "wss://ws.finnhub.io"
	}
	if c.Finnhub.RequestTimeout <= 0 {
		c.Finnhub.RequestTimeout = 5 * time.Second
	}
	if c.Finnhub.RateLimit <= 0 {
		c.Finnhub.RateLimit = 25
	}
	if c.Finnhub.RateBurst <= 0 {
		c.Finnhub.RateBurst = 30
	}
	if c.Finnhub.ReconnectDelay <= 0 {
		c.Finnhub.ReconnectDelay = 5 * time.Second
	}
	if c.Finnhub.PingInterval <= 0 {
		c.Finnhub.PingInterval = 20 * time.Second
	}
	if c.Analysis.BatchSize <= 0 {
		c.Analysis.BatchSize = 5
	}
	if c.Analysis.BatchDelay <= 0 {
		c.Analysis.BatchDelay = 500 * time.Millisecond
	}
	if c.Analysis.MaxInflight <= 0 {
		// batch size * per-instrument fan-out: quote, profile, technicals,
		// sentiment, plus one candle request
		c.Analysis.MaxInflight = c.Analysis.BatchSize * 5
	}
	if c.Analysis.CacheTTL <= 0 {
		c.Analysis.CacheTTL = 5 * time.Minute
	}
	if c.Analysis.TopN <= 0 {
		c.Analysis.TopN = 10
	}
	if c.Analysis.Strategy == "" {
		c.Analysis.Strategy = "mean-reversion"
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "console"
	}
	if c.Log.Output == "" {
		c.Log.Output = "stdout"
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Environment == "" {
		return fmt.Errorf("environment is required")
	}
	if c.Finnhub.APIKey == "" {
		return fmt.Errorf("finnhub.api_key is required")
	}
	if c.Redis.Enabled && c.Redis.Addr == "" {
		return fmt.Errorf("redis.addr is required when redis is enabled")
	}
	if c.Kafka.Enabled && len(c.Kafka.Brokers) == 0 {
		return fmt.Errorf("kafka.brokers are required when kafka is enabled")
	}
	if c.Kafka.Enabled && c.Kafka.Topic == "" {
		return fmt.Errorf("kafka.topic is required when kafka is enabled")
	}
	if c.ClickHouse.Enabled && c.ClickHouse.Host == "" {
		return fmt.Errorf("clickhouse.host is required when clickhouse is enabled")
	}
	return nil
}
