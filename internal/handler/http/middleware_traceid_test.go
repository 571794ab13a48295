package http

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func serveTraceID(t *testing.T, h *Handler, incoming string) (*httptest.ResponseRecorder, *http.Request) {
	t.Helper()
	var seen *http.Request
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = r
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if incoming != "" {
		req.Header.Set(traceIDHeader, incoming)
	}
	rr := httptest.NewRecorder()
	h.withTraceID(next).ServeHTTP(rr, req)
	require.NotNil(t, seen)
	return rr, seen
}

func TestWithTraceID_KeepsValidIncomingID(t *testing.T) {
	h := &Handler{logger: nopLogger()}

	rr, _ := serveTraceID(t, h, "req-123")

	assert.Equal(t, "req-123", rr.Header().Get(traceIDHeader))
}

func TestWithTraceID_GeneratesWhenMissingOrInvalid(t *testing.T) {
	tests := []struct {
		name     string
		incoming string
	}{
		{"missing", ""},
		{"contains space", "has space"},
		{"control char", "bad\x01id"},
		{"non ascii", "трасса"},
		{"too long", strings.Repeat("a", maxTraceIDLength+1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := &Handler{logger: nopLogger()}

			rr, _ := serveTraceID(t, h, tt.incoming)

			got := rr.Header().Get(traceIDHeader)
			assert.NotEqual(t, tt.incoming, got)
			_, err := uuid.Parse(got)
			assert.NoError(t, err)
		})
	}
}

func TestWithTraceID_UniquePerRequest(t *testing.T) {
	h := &Handler{logger: nopLogger()}

	rr1, _ := serveTraceID(t, h, "")
	rr2, _ := serveTraceID(t, h, "")

	assert.NotEqual(t, rr1.Header().Get(traceIDHeader), rr2.Header().Get(traceIDHeader))
}

func TestWithTraceID_AttachesLoggerToContext(t *testing.T) {
	var buf bytes.Buffer
	h := &Handler{logger: newBufferLogger(&buf)}

	_, seen := serveTraceID(t, h, "ctx-trace")
	logger.FromRequest(seen).Info().Msg("inside handler")

	entry := logLines(t, &buf)
	require.NotEmpty(t, entry)
	assert.Equal(t, "ctx-trace", entry[len(entry)-1]["trace_id"])
}

func TestWithTraceID_DoesNotMutateParentLogger(t *testing.T) {
	var buf bytes.Buffer
	h := &Handler{logger: newBufferLogger(&buf)}

	serveTraceID(t, h, "child-only")
	h.logger.Info().Msg("parent")

	entry := logLines(t, &buf)
	require.NotEmpty(t, entry)
	assert.NotContains(t, entry[len(entry)-1], "trace_id")
}

func TestValidTraceID(t *testing.T) {
	assert.True(t, validTraceID("abc-DEF_123.~"))
	assert.True(t, validTraceID(strings.Repeat("x", maxTraceIDLength)))
	assert.False(t, validTraceID(""))
	assert.False(t, validTraceID("tab\tinside"))
}
