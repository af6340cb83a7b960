package logger

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/linkmill/linkmill/internal/config"
)

// LogFormat selects how log events are rendered.
type LogFormat string

const (
	FormatJSON    LogFormat = "json"
	FormatConsole LogFormat = "console"
	FormatText    LogFormat = "text"
)

func parseFormat(raw string) LogFormat {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "json":
		return FormatJSON
	case "text":
		return FormatText
	default:
		return FormatConsole
	}
}

type writerFactory struct{}

func newWriterFactory() *writerFactory {
	return &writerFactory{}
}

func (wf *writerFactory) consoleWriter(format LogFormat) io.Writer {
	return wf.wrap(os.Stderr, format, false)
}

// fileWriter creates a rotating file writer. Files always use JSON so they
// stay machine-parseable regardless of console format.
func (wf *writerFactory) fileWriter(cfg config.LogConfig) io.Writer {
	if err := os.MkdirAll(filepath.Dir(cfg.LogFile), 0o755); err != nil {
		return wf.wrap(os.Stderr, FormatText, true)
	}

	return &lumberjack.Logger{
		Filename:   cfg.LogFile,
		MaxSize:    cfg.MaxLogSizeMB,
		MaxBackups: cfg.MaxLogBackups,
		LocalTime:  true,
		Compress:   true,
	}
}

func (wf *writerFactory) wrap(output io.Writer, format LogFormat, noColor bool) io.Writer {
	switch format {
	case FormatJSON:
		return output
	case FormatText:
		return zerolog.ConsoleWriter{Out: output, TimeFormat: time.RFC3339, NoColor: true}
	default:
		return zerolog.ConsoleWriter{Out: output, TimeFormat: time.RFC3339, NoColor: noColor}
	}
}
