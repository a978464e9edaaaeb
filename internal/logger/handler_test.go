package logger

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func newTestLogger(cfg Config) (*slog.Logger, *bytes.Buffer) {
	cfg.process()
	var out bytes.Buffer
	base := slog.NewTextHandler(&out, &slog.HandlerOptions{Level: slog.LevelDebug})
	return slog.New(newFilteringHandler(base, &cfg)), &out
}

func TestFilteringHandlerTags(t *testing.T) {
	log, out := newTestLogger(Config{DisabledTags: []string{"Intent"}})

	log.Debug("dropped", tagKey, "intent")
	log.Debug("kept", tagKey, "history")
	log.Debug("untagged")

	assert.NotContains(t, out.String(), "dropped")
	assert.Contains(t, out.String(), "kept")
	assert.Contains(t, out.String(), "untagged")
}

func TestFilteringHandlerEnabledTagsDropUntagged(t *testing.T) {
	log, out := newTestLogger(Config{EnabledTags: []string{"text"}})

	log.Info("selection", tagKey, "text")
	log.Info("plain")

	assert.Contains(t, out.String(), "selection")
	assert.NotContains(t, out.String(), "plain")
}

func TestFilteringHandlerFiles(t *testing.T) {
	log, out := newTestLogger(Config{DisabledFiles: []string{"HANDLER_TEST.GO"}})
	log.Info("from test file")
	assert.Empty(t, out.String())

	log, out = newTestLogger(Config{EnabledPackages: []string{"logger"}})
	log.Info("from logger package")
	assert.Contains(t, out.String(), "from logger package")

	log, out = newTestLogger(Config{EnabledPackages: []string{"app"}})
	log.Info("from elsewhere")
	assert.Empty(t, out.String())
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("warning"))
	assert.Equal(t, slog.LevelError, ParseLevel("err"))
	assert.Equal(t, slog.LevelInfo, ParseLevel("bogus"))
}

func TestSliceToSet(t *testing.T) {
	assert.Nil(t, sliceToSet(nil))
	assert.Nil(t, sliceToSet([]string{""}))
	assert.Equal(t, map[string]struct{}{"core": {}}, sliceToSet([]string{"Core", ""}))
}
