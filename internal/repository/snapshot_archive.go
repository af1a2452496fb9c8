package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"FinAdvisor/internal/domain/models"
	pkgch "FinAdvisor/pkg/clickhouse"
	applogger "FinAdvisor/pkg/logger"
)

// CHSnapshotArchive appends fetched snapshots to ClickHouse for long-term
// history. Writes are best-effort from the cache's point of view; any failure
// is returned to the caller to log, never to block a request.
type CHSnapshotArchive struct {
	db *sql.DB
	l  *applogger.Logger
}

func NewCHSnapshotArchive(ch *pkgch.Client) *CHSnapshotArchive {
	return &CHSnapshotArchive{db: ch.DB()}
}

// SetLogger injects a structured logger.
func (a *CHSnapshotArchive) SetLogger(l *applogger.Logger) { a.l = l }

// SchemaStatements returns idempotent DDL for the archive table.
func SchemaStatements(database string) []string {
	return []string{
		fmt.Sprintf("CREATE DATABASE IF NOT EXISTS %s", database),
		fmt.Sprintf(`
        CREATE TABLE IF NOT EXISTS %s.snapshots (
            fetched_at DateTime64(3),
            key        LowCardinality(String),
            name       String,
            price      Float64,
            volume     Float64,
            change_24h Float64,
            rsi        Float64,
            volatility Float64,
            beta       Float64,
            sentiment  Float64,
            drawdown   Float64
        ) ENGINE = MergeTree()
        PARTITION BY toYYYYMM(fetched_at)
        ORDER BY (key, fetched_at)
        TTL toDateTime(fetched_at) + INTERVAL 90 DAY
        `, database),
	}
}

func (a *CHSnapshotArchive) Append(ctx context.Context, snap *models.InstrumentSnapshot) error {
	if snap == nil || snap.Key == "" {
		return fmt.Errorf("snapshot nil or keyless")
	}
	start := time.Now()
	const q = `
        INSERT INTO snapshots
            (fetched_at, key, name, price, volume, change_24h, rsi, volatility, beta, sentiment, drawdown)
        VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
    `
	_, err := a.db.ExecContext(ctx, q,
		snap.FetchedAt,
		snap.Key,
		snap.Name,
		snap.Price,
		snap.Volume,
		snap.Change24h,
		snap.Technicals.RSI,
		snap.Technicals.Volatility,
		snap.Technicals.Beta,
		snap.Sentiment,
		snap.Drawdown,
	)
	if err != nil {
		if a.l != nil {
			a.l.Error("clickhouse snapshot insert error",
				applogger.String("key", snap.Key),
				applogger.Error(err),
			)
		}
		return fmt.Errorf("append snapshot: %w", err)
	}
	if a.l != nil {
		a.l.Debug("clickhouse snapshot insert ok",
			applogger.String("key", snap.Key),
			applogger.Duration("duration_ms", time.Since(start)),
		)
	}
	return nil
}

func (a *CHSnapshotArchive) Close() error {
	if a.db != nil {
		return a.db.Close()
	}
	return nil
}
