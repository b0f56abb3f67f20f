package config

import (
	"errors"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

type Config struct {
	Env       string
	Port      int
	APIPrefix string

	Content ContentStoreConfig
	Redis   RedisConfig
	CORS    CORSConfig
	Log     LogConfig
	Cache   CacheConfig
	Exports ExportsConfig
	Join    JoinConfig
}

// ContentStoreConfig identifies the hosted Sanity content store. The values
// are fixed at process start and threaded into the query client.
type ContentStoreConfig struct {
	ProjectID  string
	Dataset    string
	APIVersion string
	UseCDN     bool
	Token      string
	Timeout    time.Duration
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

type CORSConfig struct {
	AllowedOrigins []string
}

type LogConfig struct {
	Level  string
	Format string
}

// CacheConfig governs the optional page view-model cache.
type CacheConfig struct {
	Enabled bool
	TTL     time.Duration
}

// ExportsConfig toggles the downloadable directory/calendar endpoints.
type ExportsConfig struct {
	Enabled bool
}

// JoinConfig gates the membership application endpoint.
type JoinConfig struct {
	Enabled bool
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	cfg := &Config{}

	cfg.Env = v.GetString("ENV")
	cfg.Port = v.GetInt("PORT")
	cfg.APIPrefix = v.GetString("API_PREFIX")

	cfg.Content = ContentStoreConfig{
		ProjectID:  v.GetString("SANITY_PROJECT_ID"),
		Dataset:    v.GetString("SANITY_DATASET"),
		APIVersion: v.GetString("SANITY_API_VERSION"),
		UseCDN:     v.GetBool("SANITY_USE_CDN"),
		Token:      v.GetString("SANITY_TOKEN"),
		Timeout:    parseDuration(v.GetString("SANITY_TIMEOUT"), 10*time.Second),
	}

	cfg.Redis = RedisConfig{
		Host:     v.GetString("REDIS_HOST"),
		Port:     v.GetInt("REDIS_PORT"),
		Password: v.GetString("REDIS_PASSWORD"),
		DB:       v.GetInt("REDIS_DB"),
	}

	cfg.CORS = CORSConfig{AllowedOrigins: splitAndTrim(v.GetString("ALLOWED_ORIGINS"))}

	cfg.Log = LogConfig{
		Level:  v.GetString("LOG_LEVEL"),
		Format: v.GetString("LOG_FORMAT"),
	}

	cfg.Cache = CacheConfig{
		Enabled: v.GetBool("ENABLE_PAGE_CACHE"),
		TTL:     parseDuration(v.GetString("PAGE_CACHE_TTL"), 5*time.Minute),
	}

	cfg.Exports = ExportsConfig{
		Enabled: v.GetBool("ENABLE_EXPORTS"),
	}

	cfg.Join = JoinConfig{
		Enabled: v.GetBool("ENABLE_JOIN_APPLICATIONS"),
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ENV", EnvDevelopment)
	v.SetDefault("PORT", 8080)
	v.SetDefault("API_PREFIX", "/api/v1")

	v.SetDefault("SANITY_PROJECT_ID", "dmupx62x")
	v.SetDefault("SANITY_DATASET", "production")
	v.SetDefault("SANITY_API_VERSION", "2024-01-01")
	v.SetDefault("SANITY_USE_CDN", true)
	v.SetDefault("SANITY_TOKEN", "")
	v.SetDefault("SANITY_TIMEOUT", "10s")

	v.SetDefault("REDIS_HOST", "localhost")
	v.SetDefault("REDIS_PORT", 6379)
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)

	v.SetDefault("ALLOWED_ORIGINS", "")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")

	v.SetDefault("ENABLE_PAGE_CACHE", false)
	v.SetDefault("PAGE_CACHE_TTL", "5m")
	v.SetDefault("ENABLE_EXPORTS", true)
	v.SetDefault("ENABLE_JOIN_APPLICATIONS", true)
}

func parseDuration(raw string, fallback time.Duration) time.Duration {
	if raw == "" {
		return fallback
	}

	d, err := time.ParseDuration(raw)
	if err != nil {
		return fallback
	}

	return d
}

func splitAndTrim(raw string) []string {
	if raw == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}

	return result
}
