package logger_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Matheus-hora48/Teste-Conectar/pkg/logger"
)

func TestParseLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"unknown", slog.LevelInfo},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.want, logger.ParseLevel(tt.in))
		})
	}
}

func TestHandler_ContextAttrs(t *testing.T) {
	t.Parallel()

	buf := new(bytes.Buffer)
	l := logger.NewWithWriter(buf, slog.LevelInfo).With("component", "test")

	ctx := logger.SetRequestID(context.Background(), "req-1")
	ctx = logger.SetUserID(ctx, "user-1")
	ctx = logger.SetIP(ctx, "10.0.0.1")
	ctx = logger.SetMethod(ctx, "GET")
	ctx = logger.SetURL(ctx, "/clients")
	ctx = logger.SetLogType(ctx, "webrequest")

	l.InfoContext(ctx, "hello")

	var got map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))

	require.Equal(t, "hello", got["msg"])
	require.Equal(t, "test", got["component"])
	require.Equal(t, "req-1", got["request_id"])
	require.Equal(t, "user-1", got["user_id"])
	require.Equal(t, "10.0.0.1", got["ip"])
	require.Equal(t, "GET", got["method"])
	require.Equal(t, "/clients", got["url"])
	require.Equal(t, "webrequest", got["type"])
	require.Equal(t, "conectar-api", got["origin_service"])
}

func TestHandler_AnonymousUser(t *testing.T) {
	t.Parallel()

	buf := new(bytes.Buffer)
	l := logger.NewWithWriter(buf, slog.LevelInfo)

	l.InfoContext(context.Background(), "anonymous")

	var got map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))

	v, ok := got["user_id"]
	require.True(t, ok)
	require.Nil(t, v)
	require.Empty(t, logger.RequestIDFromCtx(context.Background()))
}
