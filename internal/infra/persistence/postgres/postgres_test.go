package postgres

import (
	"bytes"
	"context"
	"database/sql"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPoolMonitor_Observe(t *testing.T) {
	tests := []struct {
		name    string
		prev    sql.DBStats
		cur     sql.DBStats
		wantLog string
	}{
		{
			name: "no new waits",
			prev: sql.DBStats{WaitCount: 3, WaitDuration: time.Second},
			cur:  sql.DBStats{WaitCount: 3, WaitDuration: time.Second},
		},
		{
			name:    "short waits are debug",
			prev:    sql.DBStats{WaitCount: 1},
			cur:     sql.DBStats{WaitCount: 3, WaitDuration: 10 * time.Millisecond},
			wantLog: "level=DEBUG msg=\"Postgres pool wait observed\"",
		},
		{
			name:    "long waits are warnings",
			prev:    sql.DBStats{WaitCount: 1, WaitDuration: time.Millisecond},
			cur:     sql.DBStats{WaitCount: 2, WaitDuration: 80 * time.Millisecond},
			wantLog: "level=WARN msg=\"Postgres pool wait detected\"",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			m := &poolMonitor{logger: slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))}

			m.observe(context.Background(), tt.prev, tt.cur)

			if tt.wantLog == "" {
				assert.Zero(t, buf.Len())

				return
			}
			assert.Contains(t, buf.String(), tt.wantLog)
		})
	}
}

func TestPoolMonitor_RunStopsWithContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	m := &poolMonitor{
		logger:   slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil)),
		stats:    func() sql.DBStats { return sql.DBStats{} },
		interval: time.Millisecond,
	}

	done := make(chan struct{})
	go func() {
		m.run(ctx)
		close(done)
	}()
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("monitor did not stop after cancel")
	}
}
