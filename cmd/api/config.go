package main

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type config struct {
	addr            string
	allowedOrigins  []string
	maxBodyBytes    int64
	rateLimitRPS    float64
	rateLimitBurst  int
	shutdownTimeout time.Duration
	logLevel        slog.Level
	logFormat       string
	seedFile        string
}

func loadEnvFiles() {
	// Do not override environment provided by the runtime (e.g. Docker).
	_ = godotenv.Load(".env")
	_ = godotenv.Load(".env.local")
}

func loadConfig() config {
	return config{
		addr:            getEnv("APP_ADDR", ":9000"),
		allowedOrigins:  strings.Split(getEnv("CORS_ALLOWED_ORIGINS", "*"), ","),
		maxBodyBytes:    int64(getEnvInt("MAX_BODY_BYTES", 1<<20)),
		rateLimitRPS:    getEnvFloat("RATE_LIMIT_RPS", 20),
		rateLimitBurst:  getEnvInt("RATE_LIMIT_BURST", 40),
		shutdownTimeout: getEnvDuration("SHUTDOWN_TIMEOUT", 10*time.Second),
		logLevel:        parseLevel(getEnv("LOG_LEVEL", "info")),
		logFormat:       strings.ToLower(getEnv("LOG_FORMAT", "text")),
		seedFile:        os.Getenv("BOOKS_SEED_FILE"),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v, err := strconv.Atoi(os.Getenv(key)); err == nil {
		return v
	}
	return def
}

func getEnvFloat(key string, def float64) float64 {
	if v, err := strconv.ParseFloat(os.Getenv(key), 64); err == nil {
		return v
	}
	return def
}

func getEnvDuration(key string, def time.Duration) time.Duration {
	if v, err := time.ParseDuration(os.Getenv(key)); err == nil {
		return v
	}
	return def
}

func parseLevel(s string) slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo
	}
	return level
}

func newLogger(cfg config) *slog.Logger {
	opts := &slog.HandlerOptions{Level: cfg.logLevel}
	if cfg.logFormat == "json" {
		return slog.New(slog.NewJSONHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, opts))
}
