package logger_adapter

import (
	"io"
	"log/slog"
	"os"
	"sort"

	"househunt-service/internal/core/port"

	"github.com/lmittmann/tint"
)

// SlogAdapter пишет логи в stdout через slog (цветной вывод через tint)
type SlogAdapter struct {
	logger *slog.Logger
}

type SlogConfig struct {
	// Writer по умолчанию os.Stdout
	Writer    io.Writer
	Level     slog.Leveler
	AddSource bool
	IsJSON    bool
	UseColor  bool
}

func NewSlogAdapter(cfg SlogConfig) *SlogAdapter {
	if cfg.Writer == nil {
		cfg.Writer = os.Stdout
	}
	if cfg.Level == nil {
		cfg.Level = slog.LevelInfo
	}

	var handler slog.Handler
	switch {
	case cfg.IsJSON:
		handler = slog.NewJSONHandler(cfg.Writer, &slog.HandlerOptions{AddSource: cfg.AddSource, Level: cfg.Level})
	case cfg.UseColor:
		handler = tint.NewHandler(cfg.Writer, &tint.Options{
			Level:      cfg.Level,
			AddSource:  cfg.AddSource,
			TimeFormat: "2006-01-02 15:04:05",
		})
	default:
		handler = slog.NewTextHandler(cfg.Writer, &slog.HandlerOptions{AddSource: cfg.AddSource, Level: cfg.Level})
	}

	return &SlogAdapter{logger: slog.New(handler)}
}

// attrs переводит поля в атрибуты slog в алфавитном порядке ключей
func attrs(fields port.Fields) []any {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]any, 0, len(keys))
	for _, k := range keys {
		out = append(out, slog.Any(k, fields[k]))
	}
	return out
}

func (a *SlogAdapter) Info(msg string, fields port.Fields) {
	a.logger.Info(msg, attrs(fields)...)
}

func (a *SlogAdapter) Warn(msg string, fields port.Fields) {
	a.logger.Warn(msg, attrs(fields)...)
}

func (a *SlogAdapter) Error(msg string, err error, fields port.Fields) {
	args := attrs(fields)
	if err != nil {
		args = append(args, tint.Err(err))
	}
	a.logger.Error(msg, args...)
}

func (a *SlogAdapter) Debug(msg string, fields port.Fields) {
	a.logger.Debug(msg, attrs(fields)...)
}

func (a *SlogAdapter) WithFields(fields port.Fields) port.LoggerPort {
	return &SlogAdapter{logger: a.logger.With(attrs(fields)...)}
}
