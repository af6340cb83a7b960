package logger

import (
	"io"
	stdlog "log"
	"strings"

	"github.com/rs/zerolog"

	"github.com/linkmill/linkmill/internal/config"
)

// New creates a zerolog logger from configuration. Console output goes to
// stderr; file output, when configured, rotates via lumberjack.
func New(cfg config.LogConfig) (zerolog.Logger, error) {
	level, err := parseLevel(cfg.LogLevel)
	if err != nil {
		return zerolog.Logger{}, err
	}

	factory := newWriterFactory()
	writers := []io.Writer{factory.consoleWriter(parseFormat(cfg.LogFormat))}
	if cfg.LogFile != "" {
		writers = append(writers, factory.fileWriter(cfg))
	}

	instance := zerolog.New(zerolog.MultiLevelWriter(writers...)).
		Level(level).
		With().
		Timestamp().
		Logger()

	zerolog.SetGlobalLevel(level)
	stdlog.SetOutput(instance)
	stdlog.SetFlags(0)

	return instance, nil
}

func parseLevel(raw string) (zerolog.Level, error) {
	if strings.TrimSpace(raw) == "" {
		return zerolog.InfoLevel, nil
	}
	return zerolog.ParseLevel(strings.ToLower(raw))
}
