package context

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestID(t *testing.T) {
	c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	generated := GetRequestID(c)
	assert.Len(t, generated, 36)

	SetRequestID(c, "req-1")
	assert.Equal(t, "req-1", GetRequestID(c))

	ctx := context.Background()
	assert.Empty(t, GetRequestIDFromContext(ctx))
	assert.Equal(t, "req-1", GetRequestIDFromContext(WithRequestID(ctx, "req-1")))
}

func TestWithActor(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	userID := uuid.New()

	ctx := WithLogger(context.Background(), logger)
	ctx = WithActor(ctx, Actor{UserID: userID, Role: "designer"})

	actor, ok := GetActor(ctx)
	require.True(t, ok)
	assert.Equal(t, userID, actor.UserID)

	GetLoggerOrDefault(ctx, nil).Info("saved nft")
	assert.Contains(t, buf.String(), "user_id="+userID.String())
	assert.Contains(t, buf.String(), "role=designer")
}

func TestWithActor_NoLogger(t *testing.T) {
	fallback := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))

	ctx := WithActor(context.Background(), Actor{UserID: uuid.New(), Role: "regular"})

	assert.Nil(t, GetLogger(ctx))
	assert.Same(t, fallback, GetLoggerOrDefault(ctx, fallback))
}
