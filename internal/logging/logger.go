// Package logging configura o slog global. A saída do console (stdout) é da
// interação com o operador, então os logs vão para stderr e/ou arquivo.
package logging

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/KromaEnergia/loja-cli/internal/config"
)

// arquivo de log aberto pelo último Init, se houver
var fileWriter *lumberjack.Logger

// Init instala o logger padrão e devolve o writer usado, para que o logger
// do gorm escreva no mesmo destino.
func Init(cfg config.LoggingConfig) (io.Writer, error) {
	output, err := openOutput(cfg)
	if err != nil {
		return nil, err
	}

	opts := &slog.HandlerOptions{
		Level: ParseLevel(cfg.Level),
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey && len(groups) == 0 {
				a.Value = slog.StringValue(a.Value.Time().Format(time.RFC3339))
			}
			return a
		},
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(output, opts)))
	return output, nil
}

func ParseLevel(level string) slog.Level {
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

func openOutput(cfg config.LoggingConfig) (io.Writer, error) {
	if err := Close(); err != nil {
		return nil, errors.Wrap(err, "close previous log file")
	}
	if cfg.Output == "stderr" {
		return os.Stderr, nil
	}

	if err := os.MkdirAll(filepath.Dir(cfg.FilePath), 0o755); err != nil {
		return nil, errors.Wrapf(err, "create log directory for %s", cfg.FilePath)
	}
	file := &lumberjack.Logger{
		Filename:   cfg.FilePath,
		MaxSize:    cfg.MaxSize,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAge,
		Compress:   cfg.Compress,
	}
	fileWriter = file
	if cfg.Output == "both" {
		return io.MultiWriter(os.Stderr, file), nil
	}
	return file, nil
}

// Close fecha o arquivo de log aberto por Init.
func Close() error {
	if fileWriter == nil {
		return nil
	}
	err := fileWriter.Close()
	fileWriter = nil
	return err
}
