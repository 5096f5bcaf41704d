// internal/config/config.go

package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// ErrInvalid marks a configuration that failed validation
var ErrInvalid = errors.New("invalid configuration")

// MinPongWait is the shortest accepted pong wait. Pings go out at nine tenths
// of it.
const MinPongWait = time.Second

// Config holds all application configuration
type Config struct {
	Environment string
	Server      ServerConfig
	Data        DataConfig
	Log         LogConfig
	WebSocket   WebSocketConfig
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Host            string
	Port            int
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
	CorsOrigins     []string
}

// DataConfig holds sample data configuration
type DataConfig struct {
	Seed uint64
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level string
}

// WebSocketConfig holds live channel configuration
type WebSocketConfig struct {
	WriteWait      time.Duration
	PongWait       time.Duration
	MaxMessageSize int64
}

// Load loads configuration from environment variables, reading a .env file
// first when one exists
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	cfg := FromEnv()
	return cfg, cfg.Validate()
}

// FromEnv builds the configuration from the current environment, falling back
// to defaults for unset or unparsable keys
func FromEnv() Config {
	return Config{
		Environment: getEnv("APP_ENV", "development"),
		Server: ServerConfig{
			Host:            getEnv("SERVER_HOST", "0.0.0.0"),
			Port:            getEnvAsInt("SERVER_PORT", 8501),
			ReadTimeout:     getEnvAsDuration("SERVER_READ_TIMEOUT", 10*time.Second),
			WriteTimeout:    getEnvAsDuration("SERVER_WRITE_TIMEOUT", 10*time.Second),
			ShutdownTimeout: getEnvAsDuration("SERVER_SHUTDOWN_TIMEOUT", 10*time.Second),
			CorsOrigins:     getEnvAsSlice("SERVER_CORS_ORIGINS", []string{"*"}),
		},
		Data: DataConfig{
			Seed: getEnvAsUint("DATA_SEED", 42),
		},
		Log: LogConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
		WebSocket: WebSocketConfig{
			WriteWait:      getEnvAsDuration("WS_WRITE_WAIT", 10*time.Second),
			PongWait:       getEnvAsDuration("WS_PONG_WAIT", 60*time.Second),
			MaxMessageSize: int64(getEnvAsInt("WS_MAX_MESSAGE_SIZE", 64*1024)),
		},
	}
}

// Development reports whether the app runs in the development environment
func (c Config) Development() bool {
	return c.Environment == "development"
}

// Validate checks if config is valid
func (c Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server port %d out of range: %w", c.Server.Port, ErrInvalid)
	}

	if c.Server.ReadTimeout <= 0 || c.Server.WriteTimeout <= 0 || c.Server.ShutdownTimeout <= 0 {
		return fmt.Errorf("server timeouts must be positive: %w", ErrInvalid)
	}

	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log level %q: %w", c.Log.Level, ErrInvalid)
	}

	if c.WebSocket.WriteWait <= 0 {
		return fmt.Errorf("websocket write wait must be positive: %w", ErrInvalid)
	}

	if c.WebSocket.PongWait < MinPongWait {
		return fmt.Errorf("websocket pong wait %s below %s: %w", c.WebSocket.PongWait, MinPongWait, ErrInvalid)
	}

	if c.WebSocket.MaxMessageSize <= 0 {
		return fmt.Errorf("websocket max message size must be positive: %w", ErrInvalid)
	}

	return nil
}

// Helper functions

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsUint(key string, defaultValue uint64) uint64 {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseUint(valueStr, 10, 64); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := getEnv(key, "")
	if value, err := time.ParseDuration(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsSlice(key string, defaultValue []string) []string {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}
	return strings.Split(valueStr, ",")
}
