// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lastEntry(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.NotEmpty(t, lines)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(lines[len(lines)-1], &entry))
	return entry
}

func TestNewLogger_EntryShape(t *testing.T) {
	t.Cleanup(func() { zerolog.SetGlobalLevel(zerolog.DebugLevel) })

	var buf bytes.Buffer
	l := newLogger(&buf, "go-blog-server", zerolog.DebugLevel)
	l.Debug().Str("user_id", "42").Msg("signup")

	entry := lastEntry(t, &buf)
	assert.Equal(t, "go-blog-server", entry["role"])
	assert.Equal(t, "42", entry["user_id"])
	assert.Equal(t, "debug", entry["level"])
	assert.Contains(t, entry, "time")
	assert.Contains(t, entry["func"], "TestNewLogger_EntryShape")
	assert.Equal(t, "func", zerolog.CallerFieldName)
}

func TestNewLogger_Levels(t *testing.T) {
	t.Cleanup(func() { zerolog.SetGlobalLevel(zerolog.DebugLevel) })

	require.NotNil(t, NewClientLogger("go-blog-client"))
	assert.Equal(t, zerolog.WarnLevel, zerolog.GlobalLevel())

	require.NotNil(t, NewLogger("go-blog-server"))
	assert.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())
}

func TestClientLogger_DropsInfo(t *testing.T) {
	t.Cleanup(func() { zerolog.SetGlobalLevel(zerolog.DebugLevel) })

	var buf bytes.Buffer
	l := newLogger(&buf, "go-blog-client", zerolog.WarnLevel)

	l.Info().Msg("request sent")
	assert.Empty(t, buf.String())

	l.Warn().Msg("token expired")
	assert.Equal(t, "token expired", lastEntry(t, &buf)["message"])
}

func TestSetLevel(t *testing.T) {
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	t.Cleanup(func() { zerolog.SetGlobalLevel(zerolog.DebugLevel) })

	tests := []struct {
		name    string
		level   string
		want    zerolog.Level
		wantErr bool
	}{
		{name: "empty keeps current", level: "", want: zerolog.DebugLevel},
		{name: "known level", level: "error", want: zerolog.ErrorLevel},
		{name: "unknown level is rejected", level: "loud", want: zerolog.ErrorLevel, wantErr: true},
		{name: "back to info", level: "info", want: zerolog.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := SetLevel(tt.level)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.want, zerolog.GlobalLevel())
		})
	}
}

func TestNop(t *testing.T) {
	l := Nop()
	require.NotNil(t, l)

	var buf bytes.Buffer
	l.Logger = l.Output(&buf)
	l.Error().Msg("discarded")
	assert.Empty(t, buf.String())
}

func TestGetChildLogger(t *testing.T) {
	t.Cleanup(func() { zerolog.SetGlobalLevel(zerolog.DebugLevel) })

	var buf bytes.Buffer
	parent := newLogger(&buf, "go-blog-server", zerolog.DebugLevel)

	child := parent.GetChildLogger()
	require.NotNil(t, child)
	assert.NotSame(t, parent, child)

	child.Logger = child.With().Str("trace_id", "abc").Logger()
	child.Info().Msg("from child")
	entry := lastEntry(t, &buf)
	assert.Equal(t, "go-blog-server", entry["role"])
	assert.Equal(t, "abc", entry["trace_id"])

	parent.Info().Msg("from parent")
	assert.NotContains(t, lastEntry(t, &buf), "trace_id")
}

func TestFromContext(t *testing.T) {
	require.NotNil(t, FromContext(context.Background()))

	var buf bytes.Buffer
	zl := zerolog.New(&buf).With().Str("trace_id", "ctx-trace").Logger()
	ctx := zl.WithContext(context.Background())

	FromContext(ctx).Info().Msg("post created")
	assert.Equal(t, "ctx-trace", lastEntry(t, &buf)["trace_id"])
}

func TestFromRequest(t *testing.T) {
	require.NotNil(t, FromRequest(httptest.NewRequest(http.MethodGet, "/posts", nil)))

	var buf bytes.Buffer
	zl := zerolog.New(&buf).With().Str("trace_id", "req-trace").Logger()
	req := httptest.NewRequest(http.MethodGet, "/posts", nil)
	req = req.WithContext(zl.WithContext(req.Context()))

	FromRequest(req).Info().Msg("list posts")
	assert.Equal(t, "req-trace", lastEntry(t, &buf)["trace_id"])
}
