package services

import (
	"context"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingHandler captures slog records so tests can assert on them.
type recordingHandler struct {
	mu      sync.Mutex
	records []slog.Record
	attrs   []slog.Attr
}

func (h *recordingHandler) Enabled(context.Context, slog.Level) bool { return true }

func (h *recordingHandler) Handle(_ context.Context, r slog.Record) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.records = append(h.records, r)
	return nil
}

func (h *recordingHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	h.attrs = append(h.attrs, attrs...)
	return h
}

func (h *recordingHandler) WithGroup(string) slog.Handler { return h }

func recordAttrs(r slog.Record) map[string]slog.Value {
	attrs := make(map[string]slog.Value)
	r.Attrs(func(a slog.Attr) bool {
		attrs[a.Key] = a.Value
		return true
	})
	return attrs
}

func TestServiceLogger_SuccessLogsInfo(t *testing.T) {
	handler := &recordingHandler{}
	ops := NewServiceLogger(slog.New(handler), "attempts")

	ops.LogOperation(context.Background(), "submit_attempt", "user-1", 42, "attempt", 15*time.Millisecond, nil)

	require.Len(t, handler.records, 1)
	record := handler.records[0]
	assert.Equal(t, slog.LevelInfo, record.Level)
	assert.Equal(t, "submit_attempt success", record.Message)

	attrs := recordAttrs(record)
	assert.Equal(t, "success", attrs["status"].String())
	assert.Equal(t, "user-1", attrs["user_id"].String())
	assert.Equal(t, uint64(42), attrs["resource_id"].Uint64())
}

func TestServiceLogger_ClassifiesErrors(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		level  slog.Level
		status string
	}{
		{"business rule", NewBusinessRuleError("content_mismatch", "mismatch", nil), slog.LevelWarn, "business_rule_violation"},
		{"rate limited", NewRateLimitError(3), slog.LevelWarn, "rate_limited"},
		{"not found", ErrChallengeNotFound, slog.LevelInfo, "not_found"},
		{"remote failure", NewRemoteServiceError("feedback", assert.AnError), slog.LevelError, "remote_failure"},
		{"unexpected", assert.AnError, slog.LevelError, "error"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			handler := &recordingHandler{}
			ops := NewServiceLogger(slog.New(handler), "challenges")

			ops.LogOperation(context.Background(), "create_challenge", "user-1", 1, "challenge", time.Millisecond, tc.err)

			require.Len(t, handler.records, 1)
			record := handler.records[0]
			assert.Equal(t, tc.level, record.Level)

			attrs := recordAttrs(record)
			assert.Equal(t, tc.status, attrs["status"].String())
			assert.Equal(t, tc.err.Error(), attrs["error"].String())
		})
	}
}

func TestServiceLogger_OperationTimesResult(t *testing.T) {
	handler := &recordingHandler{}
	ops := NewServiceLogger(slog.New(handler), "challenges")

	op := ops.WithOperation(context.Background(), "delete_challenge", "user-1")
	op.LogResult(7, "challenge", nil)

	require.Len(t, handler.records, 1)
	attrs := recordAttrs(handler.records[0])
	assert.Equal(t, "delete_challenge", attrs["operation"].String())
	assert.GreaterOrEqual(t, attrs["duration"].Duration(), time.Duration(0))
}
