package logger

import (
	"fmt"
	"os"

	"github.com/avc-dev/shortlink/internal/config"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	maxFileSizeMB = 100
	maxBackups    = 7
	maxAgeDays    = 28
)

// New создает JSON логгер с заданным уровнем.
// Пишет в stdout, а при заданном cfg.File еще и в файл с ротацией.
func New(cfg config.LogConfig) (*zap.Logger, error) {
	return newWithStdout(cfg, zapcore.Lock(os.Stdout))
}

func newWithStdout(cfg config.LogConfig, stdout zapcore.WriteSyncer) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", cfg.Level, err)
	}

	syncers := []zapcore.WriteSyncer{stdout}
	if cfg.File != "" {
		syncers = append(syncers, zapcore.AddSync(&lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    maxFileSizeMB,
			MaxBackups: maxBackups,
			MaxAge:     maxAgeDays,
		}))
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderConfig),
		zapcore.NewMultiWriteSyncer(syncers...),
		level,
	)

	return zap.New(core, zap.AddCaller()), nil
}
