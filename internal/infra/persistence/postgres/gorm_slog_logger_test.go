package postgres

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"atelier/config"
	deliverycontext "atelier/internal/delivery/context"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestGormLogger(buf *bytes.Buffer, debug bool) logger.Interface {
	cfg := &config.Config{}
	cfg.Env.Debug = debug
	cfg.Database.SlowQueryThreshold = 50 * time.Millisecond

	return newGormSlogLogger(slog.New(slog.NewTextHandler(buf, nil)), cfg)
}

func querySQL() (string, int64) {
	return `SELECT * FROM "nfts"`, 2
}

func TestGormSlogLogger_Trace(t *testing.T) {
	tests := []struct {
		name    string
		debug   bool
		elapsed time.Duration
		err     error
		want    string
	}{
		{name: "failure", err: errors.New("deadlock detected"), want: "query failed"},
		{name: "record not found is silent", err: gorm.ErrRecordNotFound},
		{name: "slow query", elapsed: 80 * time.Millisecond, want: "slow query"},
		{name: "fast query is silent outside debug"},
		{name: "fast query in debug", debug: true, want: "query executed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			l := newTestGormLogger(&buf, tt.debug)

			l.Trace(context.Background(), time.Now().Add(-tt.elapsed), querySQL, tt.err)

			if tt.want == "" {
				assert.Zero(t, buf.Len())

				return
			}
			assert.Contains(t, buf.String(), tt.want)
			assert.Contains(t, buf.String(), "component=gorm")
		})
	}
}

func TestGormSlogLogger_UsesRequestLogger(t *testing.T) {
	var base, scoped bytes.Buffer
	l := newTestGormLogger(&base, false)
	requestLogger := slog.New(slog.NewTextHandler(&scoped, nil)).With(slog.String("request_id", "req-9"))
	ctx := deliverycontext.WithLogger(context.Background(), requestLogger)

	l.Trace(ctx, time.Now(), querySQL, errors.New("boom"))

	assert.Zero(t, base.Len())
	assert.Contains(t, scoped.String(), "request_id=req-9")
}

func TestGormSlogLogger_LogModeSilences(t *testing.T) {
	var buf bytes.Buffer
	l := newTestGormLogger(&buf, true).LogMode(logger.Silent)

	l.Trace(context.Background(), time.Now(), querySQL, errors.New("boom"))
	l.Error(context.Background(), "pool %s", "closed")

	assert.Zero(t, buf.Len())
}
