package logger_adapter

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"
	"time"

	"househunt-service/internal/core/port"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePoster struct {
	tags     []string
	messages []port.Fields
	closed   bool
}

func (f *fakePoster) Post(tag string, message interface{}) error {
	f.tags = append(f.tags, tag)
	f.messages = append(f.messages, message.(port.Fields))
	return nil
}

func (f *fakePoster) Close() error {
	f.closed = true
	return nil
}

func TestFluentLoggerAdapter_LevelsAndFields(t *testing.T) {
	poster := &fakePoster{}
	adapter, err := NewFluentLoggerAdapter(poster, slog.LevelInfo)
	require.NoError(t, err)
	adapter.now = func() time.Time { return time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC) }

	log := adapter.WithFields(port.Fields{"component": "app"})
	log.Debug("dropped", nil)
	log.Info("started", port.Fields{"port": 8085})
	log.Error("failed", errors.New("boom"), nil)

	require.Equal(t, []string{"info", "error"}, poster.tags)
	assert.Equal(t, port.Fields{
		"component": "app",
		"port":      8085,
		"level":     "info",
		"message":   "started",
		"timestamp": "2024-05-01T12:00:00Z",
	}, poster.messages[0])
	assert.Equal(t, "boom", poster.messages[1]["error"])
	assert.Empty(t, adapter.fields, "WithFields does not mutate the parent")

	require.NoError(t, adapter.Close())
	assert.True(t, poster.closed)
}

func TestNewFluentLoggerAdapter_NilClient(t *testing.T) {
	_, err := NewFluentLoggerAdapter(nil, nil)
	assert.Error(t, err)
}

func TestSlogAdapter_JSON(t *testing.T) {
	var buf bytes.Buffer
	log := NewSlogAdapter(SlogConfig{Writer: &buf, Level: slog.LevelDebug, IsJSON: true}).
		WithFields(port.Fields{"service_name": "househunt-service"})

	log.Warn("Request finished", port.Fields{"status_code": 404})

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "WARN", entry["level"])
	assert.Equal(t, "Request finished", entry["msg"])
	assert.Equal(t, "househunt-service", entry["service_name"])
	assert.EqualValues(t, 404, entry["status_code"])
}

type recordingLogger struct {
	entries *[]string
	fields  port.Fields
}

func (r recordingLogger) Info(msg string, _ port.Fields) {
	*r.entries = append(*r.entries, "info:"+msg)
}

func (r recordingLogger) Warn(msg string, _ port.Fields) {
	*r.entries = append(*r.entries, "warn:"+msg)
}

func (r recordingLogger) Error(msg string, _ error, _ port.Fields) {
	*r.entries = append(*r.entries, "error:"+msg)
}

func (r recordingLogger) Debug(msg string, _ port.Fields) {
	*r.entries = append(*r.entries, "debug:"+msg)
}

func (r recordingLogger) WithFields(fields port.Fields) port.LoggerPort {
	return recordingLogger{entries: r.entries, fields: fields}
}

func TestMultiLoggerAdapter_FanOut(t *testing.T) {
	var a, b []string
	multi, err := NewMultiLoggerAdapter(recordingLogger{entries: &a}, recordingLogger{entries: &b})
	require.NoError(t, err)

	enriched := multi.WithFields(port.Fields{"trace_id": "t-1"})
	enriched.Info("hello", nil)
	enriched.Error("oops", errors.New("x"), nil)

	assert.Equal(t, []string{"info:hello", "error:oops"}, a)
	assert.Equal(t, a, b)

	_, err = NewMultiLoggerAdapter()
	assert.Error(t, err)
}
