// Package config loads application settings from the environment.
// A .env file in the working directory is read first when present.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds everything the API and CLI need at startup.
type Config struct {
	Port        string
	Env         string
	JWTSecret   string
	TokenTTL    time.Duration
	CORSOrigins []string

	DB      DBConfig
	Log     LogConfig
	Upload  UploadConfig
	R2      R2Config
	Forms   FormsConfig
	Digest  DigestConfig
	Limits  LimitsConfig
	Catalog CatalogConfig
}

// DBConfig configures the optional PostgreSQL source. An empty URL means
// the built-in fixtures are served instead.
type DBConfig struct {
	URL             string
	MaxConns        int32
	MinConns        int32
	MaxConnIdleTime time.Duration
}

// Enabled reports whether a database URL was configured.
func (c DBConfig) Enabled() bool { return c.URL != "" }

type LogConfig struct {
	Level       string
	ServiceName string
}

type UploadConfig struct {
	Dir     string
	BaseURL string
}

// R2Config switches file storage to Cloudflare R2 when AccountID is set.
type R2Config struct {
	AccountID string
	AccessKey string
	SecretKey string
	Bucket    string
	PublicURL string
}

func (c R2Config) Enabled() bool { return c.AccountID != "" }

// FormsConfig controls the simulated round-trip of dialog submissions.
type FormsConfig struct {
	SubmitDelay time.Duration
}

type DigestConfig struct {
	Enabled      bool
	Schedule     string
	ExpiryWindow int
}

type LimitsConfig struct {
	LoginPerMinute int
	LoginBurst     int
}

// CatalogConfig points at the YAML file with settings-page defaults.
type CatalogConfig struct {
	SettingsFile string
}

// IsProduction reports whether APP_ENV is "production".
func (c *Config) IsProduction() bool { return c.Env == "production" }

// Load reads configuration from the environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Port:        getEnv("PORT", "8080"),
		Env:         getEnv("APP_ENV", "development"),
		JWTSecret:   getEnv("JWT_SECRET", ""),
		TokenTTL:    getEnvAsDuration("TOKEN_TTL", 24*time.Hour),
		CORSOrigins: getEnvAsList("CORS_ORIGINS", []string{"http://localhost:5173", "http://localhost:8080"}),
		DB: DBConfig{
			URL:             getEnv("DATABASE_URL", ""),
			MaxConns:        int32(getEnvAsInt("DB_MAX_CONNS", 10)),
			MinConns:        int32(getEnvAsInt("DB_MIN_CONNS", 1)),
			MaxConnIdleTime: getEnvAsDuration("DB_MAX_CONN_IDLE", 5*time.Minute),
		},
		Log: LogConfig{
			Level:       getEnv("LOG_LEVEL", "info"),
			ServiceName: getEnv("SERVICE_NAME", "inmogestor-api"),
		},
		Upload: UploadConfig{
			Dir:     getEnv("UPLOAD_DIR", "uploads"),
			BaseURL: getEnv("UPLOAD_BASE_URL", "/api/files"),
		},
		R2: R2Config{
			AccountID: getEnv("R2_ACCOUNT_ID", ""),
			AccessKey: getEnv("R2_ACCESS_KEY", ""),
			SecretKey: getEnv("R2_SECRET_KEY", ""),
			Bucket:    getEnv("R2_BUCKET", ""),
			PublicURL: getEnv("R2_PUBLIC_URL", ""),
		},
		Forms: FormsConfig{
			SubmitDelay: getEnvAsDuration("SUBMIT_DELAY", time.Second),
		},
		Digest: DigestConfig{
			Enabled:      getEnvAsBool("DIGEST_ENABLED", true),
			Schedule:     getEnv("DIGEST_SCHEDULE", "0 8 * * *"),
			ExpiryWindow: getEnvAsInt("DIGEST_EXPIRY_WINDOW_DAYS", 60),
		},
		Limits: LimitsConfig{
			LoginPerMinute: getEnvAsInt("LOGIN_RATE_PER_MIN", 5),
			LoginBurst:     getEnvAsInt("LOGIN_RATE_BURST", 5),
		},
		Catalog: CatalogConfig{
			SettingsFile: getEnv("SETTINGS_FILE", ""),
		},
	}

	if cfg.JWTSecret == "" {
		if cfg.IsProduction() {
			return nil, fmt.Errorf("JWT_SECRET is required in production")
		}
		cfg.JWTSecret = "inmogestor-dev-secret"
	}
	if cfg.R2.Enabled() && (cfg.R2.Bucket == "" || cfg.R2.AccessKey == "" || cfg.R2.SecretKey == "") {
		return nil, fmt.Errorf("R2_BUCKET, R2_ACCESS_KEY and R2_SECRET_KEY are required when R2_ACCOUNT_ID is set")
	}
	if cfg.Limits.LoginPerMinute <= 0 {
		return nil, fmt.Errorf("LOGIN_RATE_PER_MIN must be positive, got %d", cfg.Limits.LoginPerMinute)
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
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

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseBool(valueStr); err == nil {
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

func getEnvAsList(key string, defaultValue []string) []string {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}
	var out []string
	for _, part := range strings.Split(valueStr, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
