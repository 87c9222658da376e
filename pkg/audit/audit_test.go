package audit

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogSink_Record(t *testing.T) {
	var buf bytes.Buffer
	sink := NewLogSink(slog.New(slog.NewJSONHandler(&buf, nil)))

	sink.Record(context.Background(), Event{
		Category: CategoryWorkflow,
		Action:   "execution_completed",
		Actor:    "scheduler",
		Subject:  "exec-42",
		Detail:   map[string]any{"pattern": "code-review"},
	})

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "Audit event", line["msg"])
	assert.Equal(t, CategoryWorkflow, line["category"])
	assert.Equal(t, "execution_completed", line["action"])
	assert.Equal(t, "exec-42", line["subject"])
	assert.Equal(t, map[string]any{"pattern": "code-review"}, line["detail"])
}

func TestNewLogSink_NilLogger(t *testing.T) {
	sink := NewLogSink(nil)
	require.NotNil(t, sink)
	// Must not panic with the default logger.
	sink.Record(context.Background(), Event{Category: CategoryCluster, Action: "leader_elected"})
}

func TestNopSink(t *testing.T) {
	var s Sink = NopSink{}
	s.Record(context.Background(), Event{Category: CategoryTrigger, Action: "fired"})
}
