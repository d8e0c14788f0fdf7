package logger

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/textileoem/platform/internal/config"
)

// Set groups the application log channels. App is the general-purpose logger;
// the remaining channels receive audit, security and performance events and
// are written to their own rotating files.
type Set struct {
	App         *slog.Logger
	Audit       *slog.Logger
	Security    *slog.Logger
	Performance *slog.Logger
}

// New builds the channel set. The app channel writes JSON to stdout and to a
// rotating combined file; every other channel gets a dedicated rotating file.
func New(cfg *config.Config) *Set {
	level := slog.LevelInfo
	if !cfg.Production() {
		level = slog.LevelDebug
	}

	appOut := io.MultiWriter(os.Stdout, rotatingFile(cfg.LogDir, "combined.log"))
	return &Set{
		App:         channel(appOut, level, ""),
		Audit:       channel(rotatingFile(cfg.LogDir, "audit.log"), slog.LevelInfo, "audit"),
		Security:    channel(rotatingFile(cfg.LogDir, "security.log"), slog.LevelInfo, "security"),
		Performance: channel(rotatingFile(cfg.LogDir, "performance.log"), slog.LevelInfo, "performance"),
	}
}

// NewNop returns a set that discards everything, for tests.
func NewNop() *Set {
	return &Set{
		App:         channel(io.Discard, slog.LevelError, ""),
		Audit:       channel(io.Discard, slog.LevelError, "audit"),
		Security:    channel(io.Discard, slog.LevelError, "security"),
		Performance: channel(io.Discard, slog.LevelError, "performance"),
	}
}

func channel(w io.Writer, level slog.Level, name string) *slog.Logger {
	l := slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
	if name != "" {
		l = l.With(slog.String("channel", name))
	}
	return l
}

func rotatingFile(dir, name string) io.Writer {
	return &lumberjack.Logger{
		Filename:   filepath.Join(dir, name),
		MaxSize:    20, // megabytes
		MaxBackups: 14,
		MaxAge:     14, // days
		Compress:   true,
	}
}
