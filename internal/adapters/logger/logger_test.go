package logger_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/obtools/internal/adapters/logger"
	"go.trai.ch/zerr"
)

func newBufferedLogger(t *testing.T) (*logger.Logger, *bytes.Buffer) {
	t.Helper()
	t.Setenv("NO_COLOR", "1")
	buf := &bytes.Buffer{}
	lg := logger.New()
	lg.SetOutput(buf)
	return lg, buf
}

func TestLogger_Levels(t *testing.T) {
	lg, buf := newBufferedLogger(t)

	lg.Info("updated App.csproj")
	lg.Warn("configuration Staging|x64 not found")

	assert.Equal(t, "updated App.csproj\n! configuration Staging|x64 not found\n", buf.String())
}

func TestLogger_Error(t *testing.T) {
	lg, buf := newBufferedLogger(t)

	base := zerr.New("unsupported project type")
	err := zerr.With(zerr.Wrap(base, "missing Project root"), "path", "App.csproj")
	lg.Error(err)

	assert.Equal(t,
		"✗ Error: missing Project root (path=App.csproj)\n\n  Caused by:\n    → unsupported project type\n",
		buf.String())
}

func TestLogger_ErrorNil(t *testing.T) {
	lg, buf := newBufferedLogger(t)
	lg.Error(nil)
	assert.Empty(t, buf.String())
}

func TestLogger_JSON(t *testing.T) {
	lg, buf := newBufferedLogger(t)
	lg.SetJSON(true)

	lg.Error(zerr.With(zerr.New("write failed"), "path", "obfuscar.xml"))

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "ERROR", rec["level"])
	assert.Equal(t, "write failed", rec["msg"])
	assert.Equal(t, "obfuscar.xml", rec["path"])
}

func TestLogger_SetOutputNil(t *testing.T) {
	lg := logger.New()
	assert.NotPanics(t, func() { lg.SetOutput(nil) })
}

func TestFormatError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "standard error",
			err:  errors.New("simple error"),
			want: "Error: simple error",
		},
		{
			name: "wrapped chain",
			err:  zerr.Wrap(zerr.Wrap(errors.New("root cause"), "middle layer"), "outer layer"),
			want: "Error: outer layer\n\n  Caused by:\n    → middle layer\n    → root cause",
		},
		{
			name: "metadata sorted by key",
			err:  zerr.With(zerr.With(zerr.New("base error"), "b", 2), "a", "x"),
			want: "Error: base error (a=x, b=2)",
		},
		{
			name: "metadata on plain error stays with it",
			err:  zerr.With(zerr.Wrap(zerr.With(errors.New("no such file"), "path", "a.xml"), "failed to read"), "op", "read"),
			want: "Error: failed to read (op=read)\n\n  Caused by:\n    → no such file (path=a.xml)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, logger.FormatError(tt.err))
		})
	}
}

func TestPrettyHandler_Layout(t *testing.T) {
	tests := []struct {
		name string
		log  func(lg *slog.Logger)
		want string
	}{
		{
			name: "path before message",
			log:  func(lg *slog.Logger) { lg.Info("updated", logger.PathAttr, "App.csproj") },
			want: "App.csproj: updated\n",
		},
		{
			name: "key tag after level marker",
			log: func(lg *slog.Logger) {
				lg.Warn("configuration is not defined", logger.KeyAttr, "Staging|x64", "project", "App")
			},
			want: "! [Staging|x64] configuration is not defined project=App\n",
		},
		{
			name: "values with spaces are quoted",
			log:  func(lg *slog.Logger) { lg.Error("failed", "platform", "Any CPU", "empty", "") },
			want: "✗ failed platform=\"Any CPU\" empty=\"\"\n",
		},
		{
			name: "groups qualify later attributes only",
			log: func(lg *slog.Logger) {
				lg.With("project", "App").WithGroup("cfg").Info("enabled", "debug", true)
			},
			want: "enabled project=App cfg.debug=true\n",
		},
		{
			name: "group values flatten and empty attrs drop",
			log: func(lg *slog.Logger) {
				lg.Info("paths", slog.Group("out", "in", "bin", "out", "obj"), slog.Attr{})
			},
			want: "paths out.in=bin out.out=obj\n",
		},
		{
			name: "below level",
			log:  func(lg *slog.Logger) { lg.Debug("hidden") },
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("NO_COLOR", "1")
			buf := &bytes.Buffer{}
			tt.log(slog.New(logger.NewPrettyHandler(buf, &slog.HandlerOptions{Level: slog.LevelInfo})))
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestLogger_Attrs(t *testing.T) {
	lg, buf := newBufferedLogger(t)

	lg.Info("installed Obfuscar.Console.exe", logger.PathAttr, "_Obfuscar")
	lg.Warn("no configuration matches", "selector", "Staging", "project", "App")

	assert.Equal(t,
		"_Obfuscar: installed Obfuscar.Console.exe\n! no configuration matches selector=Staging project=App\n",
		buf.String())

	lg.SetJSON(true)
	buf.Reset()
	lg.Info("updated", logger.PathAttr, "App.csproj")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "updated", entry["msg"])
	assert.Equal(t, "App.csproj", entry["path"])
}
