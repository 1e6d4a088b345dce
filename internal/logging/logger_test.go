package logging

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resetState() {
	mutex.Lock()
	defer mutex.Unlock()
	moduleLoggers = make(map[string]*slog.Logger)
	moduleLevelVars = make(map[string]*slog.LevelVar)
	isInitialized = false
	globalConfig = Config{}
}

func TestModuleLevelOverride(t *testing.T) {
	resetState()

	var buf bytes.Buffer
	Initialize(Config{
		Level:  "info",
		Format: "text",
		Output: &buf,
		Modules: map[string]string{
			"led": "debug",
			"cli": "error",
		},
	})

	tests := []struct {
		module    string
		wantDebug bool
		wantInfo  bool
		wantWarn  bool
	}{
		{"led", true, true, true},
		{"cli", false, false, false},
		{"other", false, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.module, func(t *testing.T) {
			handler := GetLogger(tt.module).Handler()
			ctx := context.Background()

			assert.Equal(t, tt.wantDebug, handler.Enabled(ctx, slog.LevelDebug), "debug")
			assert.Equal(t, tt.wantInfo, handler.Enabled(ctx, slog.LevelInfo), "info")
			assert.Equal(t, tt.wantWarn, handler.Enabled(ctx, slog.LevelWarn), "warn")
		})
	}
}

func TestDefaultLevelIsWarn(t *testing.T) {
	resetState()

	var buf bytes.Buffer
	Initialize(Config{Output: &buf})

	logger := GetLogger("led")
	logger.Info("hidden message")
	logger.Warn("visible message")

	output := buf.String()
	assert.NotContains(t, output, "hidden message")
	assert.Contains(t, output, "visible message")
	assert.Contains(t, output, "module=led")
}

func TestJSONFormat(t *testing.T) {
	resetState()

	var buf bytes.Buffer
	Initialize(Config{Level: "debug", Format: "JSON", Output: &buf})

	GetLogger("cli").Debug("json message", "word", "0x01045001")

	output := buf.String()
	assert.Contains(t, output, `"msg":"json message"`)
	assert.Contains(t, output, `"word":"0x01045001"`)
	assert.Contains(t, output, `"module":"cli"`)
}

func TestGetLoggerBeforeInitialize(t *testing.T) {
	resetState()

	loggerBefore := GetLogger("led")
	handlerBefore := loggerBefore.Handler()
	require.False(t, handlerBefore.Enabled(context.Background(), slog.LevelInfo),
		"logger created before Initialize should default to warn")

	var buf bytes.Buffer
	Initialize(Config{
		Level:   "warn",
		Output:  &buf,
		Modules: map[string]string{"led": "debug"},
	})

	loggerAfter := GetLogger("led")
	assert.NotSame(t, loggerBefore, loggerAfter)
	assert.Same(t, loggerAfter, GetLogger("led"))

	// The stale handler shares the module LevelVar.
	assert.True(t, handlerBefore.Enabled(context.Background(), slog.LevelDebug))

	loggerAfter.Debug("after initialize")
	assert.Contains(t, buf.String(), "after initialize")
}

func TestFanoutDebugOutput(t *testing.T) {
	var buf bytes.Buffer

	debugHandler := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	infoHandler := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo})

	logger := slog.New(newFanout(debugHandler, infoHandler)).With("module", "test")
	logger.Debug("debug only message")
	logger.Info("info message")

	output := buf.String()
	assert.Equal(t, 1, strings.Count(output, "debug only message"))
	assert.Equal(t, 2, strings.Count(output, "info message"))
}

type failingHandler struct{ slog.Handler }

func (failingHandler) Handle(context.Context, slog.Record) error {
	return errors.New("journal down")
}

func TestFanoutJoinsErrors(t *testing.T) {
	var buf bytes.Buffer
	console := slog.NewTextHandler(&buf, nil)
	h := newFanout(console, failingHandler{console})

	err := h.Handle(context.Background(), slog.NewRecord(time.Now(), slog.LevelWarn, "ring unavailable", 0))
	assert.EqualError(t, err, "journal down")
	assert.Contains(t, buf.String(), "ring unavailable")
}

func TestJournalHandlerEnabled(t *testing.T) {
	levelVar := &slog.LevelVar{}
	levelVar.Set(slog.LevelWarn)
	h := NewJournalHandler(levelVar)

	assert.False(t, h.Enabled(context.Background(), slog.LevelInfo))
	assert.True(t, h.Enabled(context.Background(), slog.LevelError))

	levelVar.Set(slog.LevelDebug)
	assert.True(t, h.Enabled(context.Background(), slog.LevelDebug))
}

func TestAddAttrToFields(t *testing.T) {
	fields := map[string]string{}

	addAttrToFields(fields, slog.String("led", "ring"), "")
	addAttrToFields(fields, slog.Int("brightness", 80), "")
	addAttrToFields(fields, slog.Group("state", slog.Bool("ok", true)), "req_")
	addAttrToFields(fields, slog.String("control-word", "0x05035002"), "")

	assert.Equal(t, "ring", fields["LED"])
	assert.Equal(t, "80", fields["BRIGHTNESS"])
	assert.Equal(t, "true", fields["REQ_STATE_OK"])
	assert.Equal(t, "0x05035002", fields["CONTROL_WORD"])
}

func TestJournalHandlerWithGroupPrefixesFields(t *testing.T) {
	h := NewJournalHandler(slog.LevelInfo).
		WithAttrs([]slog.Attr{slog.String("module", "led")}).
		WithGroup("acpi").
		WithAttrs([]slog.Attr{slog.String("path", "/proc/acpi/nuc_led")})

	jh, ok := h.(*JournalHandler)
	require.True(t, ok)
	assert.Equal(t, map[string]string{
		"MODULE":    "led",
		"ACPI_PATH": "/proc/acpi/nuc_led",
	}, jh.fields)
}

func TestFieldName(t *testing.T) {
	assert.Equal(t, "WORD", fieldName("word"))
	assert.Equal(t, "LED_STATE", fieldName("led.state"))
	assert.Equal(t, "HIDDEN", fieldName("_hidden"))
}

func TestParseLevelValues(t *testing.T) {
	tests := []struct {
		input string
		want  slog.Level
		ok    bool
	}{
		{"debug", slog.LevelDebug, true},
		{"DEBUG", slog.LevelDebug, true},
		{"info", slog.LevelInfo, true},
		{"warn", slog.LevelWarn, true},
		{"warning", slog.LevelWarn, true},
		{"error", slog.LevelError, true},
		{"invalid", 0, false},
		{"", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := parseLevel(tt.input)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
