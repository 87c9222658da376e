package database

import (
	"context"
	"time"
)

// PoolHealth reports database connectivity and connection pool pressure.
type PoolHealth struct {
	Healthy      bool  `json:"healthy"`
	PingMs       int64 `json:"pingMs"`
	OpenConns    int   `json:"openConns"`
	InUse        int   `json:"inUse"`
	Idle         int   `json:"idle"`
	WaitCount    int64 `json:"waitCount"`
	WaitMs       int64 `json:"waitMs"`
	MaxOpenConns int   `json:"maxOpenConns"`
}

// Health pings the database and snapshots pool statistics. On ping failure
// the status is returned alongside the error so callers can report both.
func (c *Client) Health(ctx context.Context) (*PoolHealth, error) {
	start := time.Now()
	if err := c.db.PingContext(ctx); err != nil {
		return &PoolHealth{PingMs: time.Since(start).Milliseconds()}, err
	}

	stats := c.db.Stats()
	return &PoolHealth{
		Healthy:      true,
		PingMs:       time.Since(start).Milliseconds(),
		OpenConns:    stats.OpenConnections,
		InUse:        stats.InUse,
		Idle:         stats.Idle,
		WaitCount:    stats.WaitCount,
		WaitMs:       stats.WaitDuration.Milliseconds(),
		MaxOpenConns: stats.MaxOpenConnections,
	}, nil
}
