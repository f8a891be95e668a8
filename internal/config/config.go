package config

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

const defaultJWTSecret = "shortlink-dev-secret"

// Config содержит конфигурацию приложения
type Config struct {
	ServerAddress   NetworkAddress `env:"SERVER_ADDRESS"`
	GRPCAddress     NetworkAddress `env:"GRPC_ADDRESS"`
	BaseURL         URLPrefix      `env:"BASE_URL" validate:"required"`
	FileStoragePath string         `env:"FILE_STORAGE_PATH"`
	DatabaseDSN     string         `env:"DATABASE_DSN"`
	JWTSecret       string         `env:"JWT_SECRET" validate:"required"`
	ShutdownTimeout time.Duration  `env:"SHUTDOWN_TIMEOUT" validate:"gt=0"`

	Log    LogConfig
	Redis  RedisConfig
	Code   CodeConfig
	Retry  RetryConfig
	Worker WorkerConfig
}

type LogConfig struct {
	Level string `env:"LOG_LEVEL" validate:"oneof=debug info warn error"`
	// File путь к файлу с ротацией, пустой путь отключает запись в файл
	File string `env:"LOG_FILE"`
}

// RedisConfig настройки кэша. Пустой Addr отключает кэш.
type RedisConfig struct {
	Addr     string        `env:"REDIS_ADDR" validate:"omitempty,hostname_port"`
	Password string        `env:"REDIS_PASSWORD"`
	DB       int           `env:"REDIS_DB" validate:"gte=0"`
	TTL      time.Duration `env:"CACHE_TTL" validate:"gt=0"`
}

type CodeConfig struct {
	Length   int    `env:"CODE_LENGTH" validate:"gte=4,lte=32"`
	Strategy string `env:"CODE_STRATEGY" validate:"oneof=random shortuuid"`
}

type RetryConfig struct {
	MaxAttempts int `env:"RETRY_MAX_ATTEMPTS" validate:"gte=1"`
}

type WorkerConfig struct {
	Concurrency int           `env:"WORKER_CONCURRENCY" validate:"gte=1"`
	JobTimeout  time.Duration `env:"WORKER_JOB_TIMEOUT" validate:"gt=0"`
}

// NewDefaultConfig возвращает конфигурацию со значениями по умолчанию
func NewDefaultConfig() *Config {
	return &Config{
		ServerAddress:   NetworkAddress{Host: "localhost", Port: 8080},
		GRPCAddress:     NetworkAddress{Host: "localhost", Port: 3200},
		BaseURL:         URLPrefix("http://localhost:8080/"),
		JWTSecret:       defaultJWTSecret,
		ShutdownTimeout: 10 * time.Second,
		Log: LogConfig{
			Level: "info",
		},
		Redis: RedisConfig{
			TTL: time.Hour,
		},
		Code: CodeConfig{
			Length:   8,
			Strategy: "random",
		},
		Retry: RetryConfig{
			MaxAttempts: 10,
		},
		Worker: WorkerConfig{
			Concurrency: 4,
			JobTimeout:  10 * time.Second,
		},
	}
}

// Load читает конфигурацию из .env, аргументов командной строки и окружения
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	return LoadFromArgs(os.Args[1:])
}

// LoadFromArgs применяет к значениям по умолчанию флаги из args, затем переменные окружения.
// Переменные окружения имеют приоритет над флагами.
func LoadFromArgs(args []string) (*Config, error) {
	cfg := NewDefaultConfig()

	flags := flag.NewFlagSet("shortener", flag.ContinueOnError)
	flags.Var(&cfg.ServerAddress, "a", "address to run HTTP server")
	flags.Var(&cfg.BaseURL, "b", "base URL for shortened URL")
	flags.StringVar(&cfg.FileStoragePath, "f", cfg.FileStoragePath, "path to the JSON lines storage file")
	flags.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "PostgreSQL connection string")
	flags.Var(&cfg.GRPCAddress, "g", "address to run gRPC server")
	flags.StringVar(&cfg.Redis.Addr, "r", cfg.Redis.Addr, "redis address for the link cache")
	flags.StringVar(&cfg.Log.Level, "l", cfg.Log.Level, "log level")

	if err := flags.Parse(args); err != nil {
		return nil, fmt.Errorf("failed to parse flags: %w", err)
	}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}
