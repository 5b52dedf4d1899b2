package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"marketplace/internal/adapters/out/postgres"
	"marketplace/internal/adapters/out/redispub"

	"github.com/joho/godotenv"
)

type Config struct {
	HTTPPort        string
	ShutdownTimeout time.Duration
	LogLevel        string

	DB postgres.Config

	// JWTSecret verifies tokens issued by the auth service.
	JWTSecret string

	// Redis.Addr empty disables real-time notification fan-out.
	Redis redispub.Config

	// SeedPath empty skips seeding.
	SeedPath string
}

// LoadConfig reads the environment, after loading .env from the working
// directory if there is one.
func LoadConfig() (Config, error) {
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	var errList []error
	integer := func(key string, def int) int {
		v, err := intEnv(key, def)
		errList = append(errList, err)
		return v
	}
	duration := func(key string, def time.Duration) time.Duration {
		v, err := durationEnv(key, def)
		errList = append(errList, err)
		return v
	}

	cfg := Config{
		HTTPPort:        env("HTTP_PORT", "8080"),
		ShutdownTimeout: duration("SHUTDOWN_TIMEOUT", 10*time.Second),
		LogLevel:        env("LOG_LEVEL", "info"),
		DB: postgres.Config{
			Host:            env("DB_HOST", "localhost"),
			Port:            env("DB_PORT", "5432"),
			User:            env("DB_USER", "postgres"),
			Password:        os.Getenv("DB_PASSWORD"),
			Name:            env("DB_NAME", "marketplace"),
			SSLMode:         env("DB_SSLMODE", "disable"),
			MaxOpenConns:    integer("DB_MAX_OPEN_CONNS", 25),
			MaxIdleConns:    integer("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetime: duration("DB_CONN_MAX_LIFETIME", 30*time.Minute),
		},
		JWTSecret: os.Getenv("JWT_SECRET"),
		Redis: redispub.Config{
			Addr:     os.Getenv("REDIS_ADDR"),
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       integer("REDIS_DB", 0),
			PoolSize: integer("REDIS_POOL_SIZE", 10),
		},
		SeedPath: os.Getenv("SEED_PATH"),
	}

	if cfg.JWTSecret == "" {
		errList = append(errList, errors.New("JWT_SECRET is required"))
	}
	if err := errors.Join(errList...); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func env(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return def
}

func intEnv(key string, def int) (int, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return v, nil
}

func durationEnv(key string, def time.Duration) (time.Duration, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return def, nil
	}
	v, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return v, nil
}
