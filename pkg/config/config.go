package config

import (
	"encoding/hex"
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const DefaultAPIBaseURL = "https://avatar-backend-gdv6e.ondigitalocean.app"

// Storage backends.
const (
	StorageFile  = "file"
	StorageRedis = "redis"
)

// Config holds application configuration.
type Config struct {
	APIBaseURL string

	StorageBackend string
	StoragePath    string
	RedisURL       string
	RedisKeyPrefix string
	// EncryptionKey is the decoded STORAGE_ENCRYPTION_KEY, nil when unset.
	EncryptionKey []byte

	LogEnv   string
	LogLevel string

	// APIRateLimit is a limiter formatted rate such as "10-S"; empty disables throttling.
	APIRateLimit string

	// RequestTimeout bounds each API call; zero leaves calls unbounded.
	RequestTimeout time.Duration

	WizardSettleDelay time.Duration
	MetricsFile       string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("API_BASE_URL", DefaultAPIBaseURL)
	v.SetDefault("STORAGE_BACKEND", StorageFile)
	v.SetDefault("STORAGE_PATH", defaultStoragePath())
	v.SetDefault("REDIS_URL", "redis://localhost:6379/0")
	v.SetDefault("REDIS_KEY_PREFIX", "bizdash:")
	v.SetDefault("STORAGE_ENCRYPTION_KEY", "")
	v.SetDefault("LOG_ENV", "production")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("API_RATE_LIMIT", "")
	v.SetDefault("REQUEST_TIMEOUT", "0s")
	v.SetDefault("WIZARD_SETTLE_DELAY", "1s")
	v.SetDefault("METRICS_FILE", "")
	v.AutomaticEnv()

	cfg := &Config{
		APIBaseURL:     strings.TrimRight(v.GetString("API_BASE_URL"), "/"),
		StorageBackend: strings.ToLower(v.GetString("STORAGE_BACKEND")),
		StoragePath:    v.GetString("STORAGE_PATH"),
		RedisURL:       v.GetString("REDIS_URL"),
		RedisKeyPrefix: v.GetString("REDIS_KEY_PREFIX"),
		LogEnv:         v.GetString("LOG_ENV"),
		LogLevel:       v.GetString("LOG_LEVEL"),
		APIRateLimit:   strings.TrimSpace(v.GetString("API_RATE_LIMIT")),
		MetricsFile:    v.GetString("METRICS_FILE"),
	}

	if cfg.APIBaseURL == "" {
		cfg.APIBaseURL = DefaultAPIBaseURL
		log.Printf("Warning: API_BASE_URL is empty. Defaulting to %s\n", cfg.APIBaseURL)
	}

	if cfg.StorageBackend != StorageFile && cfg.StorageBackend != StorageRedis {
		log.Printf("Warning: Invalid value for STORAGE_BACKEND ('%s'). Defaulting to %s.\n", cfg.StorageBackend, StorageFile)
		cfg.StorageBackend = StorageFile
	}

	if raw := strings.TrimSpace(v.GetString("STORAGE_ENCRYPTION_KEY")); raw != "" {
		key, err := hex.DecodeString(raw)
		if err != nil || len(key) != 32 {
			log.Println("Warning: STORAGE_ENCRYPTION_KEY must be 64 hex characters. Storage will not be encrypted.")
		} else {
			cfg.EncryptionKey = key
		}
	}

	delayStr := v.GetString("WIZARD_SETTLE_DELAY")
	delay, err := time.ParseDuration(delayStr)
	if err != nil || delay < 0 {
		delay = time.Second
		log.Printf("Warning: Invalid value for WIZARD_SETTLE_DELAY ('%s'). Defaulting to %s.\n", delayStr, delay)
	}
	cfg.WizardSettleDelay = delay

	timeoutStr := v.GetString("REQUEST_TIMEOUT")
	timeout, err := time.ParseDuration(timeoutStr)
	if err != nil || timeout < 0 {
		timeout = 0
		log.Printf("Warning: Invalid value for REQUEST_TIMEOUT ('%s'). Requests will not time out.\n", timeoutStr)
	}
	cfg.RequestTimeout = timeout

	return cfg, nil
}
