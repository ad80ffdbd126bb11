// Package iologger provides slog-based logging initialization and configuration.
package iologger

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	app "github.com/gnames/puyadb/pkg"
	"github.com/gnames/puyadb/pkg/config"
	"github.com/lmittmann/tint"
)

// LogFile is the name of the log file inside the log directory.
const LogFile = "puyadb.log"

var (
	mu      sync.Mutex
	logFile *os.File
)

// Init sets the global slog logger and returns the path of the log
// file, or an empty string when logs go to STDOUT or STDERR.
// Bootstrap calls Init twice: first with built-in settings, then with
// the user's. The second call closes the file opened by the first one.
// If append is true, entries are added to the existing log file,
// otherwise the file is truncated. Every record carries the app name
// and version, so runs of different builds can be told apart.
func Init(logDir string, cfg config.LogConfig, append bool) (string, error) {
	mu.Lock()
	defer mu.Unlock()

	var writer io.Writer
	var logPath string

	switch strings.ToLower(cfg.Destination) {
	case "stdout":
		writer = os.Stdout
	case "file":
		logPath = filepath.Join(logDir, LogFile)
		flag := os.O_CREATE | os.O_WRONLY | os.O_TRUNC
		if append {
			flag = os.O_CREATE | os.O_WRONLY | os.O_APPEND
		}
		file, err := os.OpenFile(logPath, flag, 0644)
		if err != nil {
			return "", CreateLogFileError(logPath, err)
		}
		closeFile()
		logFile = file
		writer = file
	default:
		writer = os.Stderr
	}

	if logPath == "" {
		closeFile()
	}

	logger := slog.New(newHandler(writer, cfg, logPath != "")).
		With("app", config.AppName, "version", app.Version)
	slog.SetDefault(logger)

	return logPath, nil
}

// Close closes the log file, if any. The default logger keeps
// working but its file entries are lost.
func Close() error {
	mu.Lock()
	defer mu.Unlock()
	return closeFile()
}

func closeFile() error {
	if logFile == nil {
		return nil
	}
	err := logFile.Close()
	logFile = nil
	return err
}

func newHandler(w io.Writer, cfg config.LogConfig, toFile bool) slog.Handler {
	level := parseLevel(cfg.Level)
	opts := &slog.HandlerOptions{Level: level}

	switch strings.ToLower(cfg.Format) {
	case "text":
		return slog.NewTextHandler(w, opts)
	case "tint":
		// no color codes in a file
		return tint.NewHandler(w, &tint.Options{
			Level:      level,
			TimeFormat: time.Kitchen,
			NoColor:    toFile,
		})
	default:
		return slog.NewJSONHandler(w, opts)
	}
}

// parseLevel converts string level to slog.Level.
func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
