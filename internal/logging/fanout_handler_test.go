package logging

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFanoutHandler_DeliversToAllTargets(t *testing.T) {
	var a, b bytes.Buffer
	fanout := NewFanoutHandler(
		slog.NewJSONHandler(&a, &slog.HandlerOptions{Level: slog.LevelInfo}),
		slog.NewJSONHandler(&b, &slog.HandlerOptions{Level: slog.LevelError}),
	)

	logger := slog.New(fanout)
	logger.Info("order created", "order_id", 7)
	logger.Error("stock decrement failed", "product_id", 3)

	require.Contains(t, a.String(), "order created")
	require.Contains(t, a.String(), "stock decrement failed")

	// The error-level target only sees the error record.
	require.NotContains(t, b.String(), "order created")
	require.Contains(t, b.String(), "stock decrement failed")
}

func TestFanoutHandler_EnabledWhenAnyTargetIs(t *testing.T) {
	var buf bytes.Buffer
	fanout := NewFanoutHandler(
		slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelError}),
	)

	ctx := context.Background()
	require.False(t, fanout.Enabled(ctx, slog.LevelInfo))
	require.True(t, fanout.Enabled(ctx, slog.LevelError))
}

func TestParseLevel(t *testing.T) {
	require.Equal(t, slog.LevelDebug, parseLevel("debug"))
	require.Equal(t, slog.LevelWarn, parseLevel(" WARN "))
	require.Equal(t, slog.LevelError, parseLevel("error"))
	require.Equal(t, slog.LevelInfo, parseLevel(""))
	require.Equal(t, slog.LevelInfo, parseLevel("verbose"))
}
