package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	// Server
	Port string

	// Row source
	SourceDriver string // "sqlite" | "postgres" | "csv"
	SourcePath   string // SQLite file or CSV file
	SourceURL    string // Postgres DSN
	SourceTable  string

	// Catalog
	RequireCatalog bool // refuse to start when the load yields zero records

	// Paging
	RecordsPerPage int // records per list page
	IndexPerPage   int // cities/specialties per picker page

	// Per-user state
	StoreBackend string // "memory" | "redis"
	RedisAddr    string
	RedisDB      int
	SessionTTL   time.Duration // 0 = keep forever

	// Full-table export (object storage)
	ExportEndpoint  string
	ExportAccessKey string
	ExportSecretKey string
	ExportBucket    string
	ExportObject    string
	ExportUseSSL    bool
	ExportLinkTTL   time.Duration

	// Security
	InternalSecret string // shared secret for the internal reload API

	// Logging
	LogLevel string
}

// fileConfig is the optional YAML overlay (UNIHUB_CONFIG). Environment
// variables win over file values; file values win over defaults.
type fileConfig struct {
	Port           *string `yaml:"port"`
	SourceDriver   *string `yaml:"source_driver"`
	SourcePath     *string `yaml:"source_path"`
	SourceURL      *string `yaml:"database_url"`
	SourceTable    *string `yaml:"source_table"`
	RequireCatalog *bool   `yaml:"require_catalog"`
	RecordsPerPage *int    `yaml:"records_per_page"`
	IndexPerPage   *int    `yaml:"index_per_page"`
	StoreBackend   *string `yaml:"store_backend"`
	RedisAddr      *string `yaml:"redis_addr"`
	RedisDB        *int    `yaml:"redis_db"`
	SessionTTL     *string `yaml:"session_ttl"`
	Export         struct {
		Endpoint  *string `yaml:"endpoint"`
		AccessKey *string `yaml:"access_key"`
		SecretKey *string `yaml:"secret_key"`
		Bucket    *string `yaml:"bucket"`
		Object    *string `yaml:"object"`
		UseSSL    *bool   `yaml:"use_ssl"`
		LinkTTL   *string `yaml:"link_ttl"`
	} `yaml:"export"`
	InternalSecret *string `yaml:"internal_secret"`
	LogLevel       *string `yaml:"log_level"`
}

// Load builds the config from defaults, the optional YAML file named by
// UNIHUB_CONFIG, and environment variables, in increasing precedence.
func Load() (*Config, error) {
	cfg := &Config{
		Port:           "8080",
		SourceDriver:   "sqlite",
		SourcePath:     "./data/universities.db",
		SourceTable:    "universities",
		RequireCatalog: true,
		RecordsPerPage: 5,
		IndexPerPage:   8,
		StoreBackend:   "memory",
		RedisAddr:      "localhost:6379",
		SessionTTL:     24 * time.Hour,
		ExportObject:   "universities.xlsx",
		ExportLinkTTL:  time.Hour,
		LogLevel:       "info",
	}

	if path := os.Getenv("UNIHUB_CONFIG"); path != "" {
		if err := applyFile(cfg, path); err != nil {
			return nil, err
		}
	}
	applyEnv(cfg)

	if cfg.RecordsPerPage < 1 || cfg.IndexPerPage < 1 {
		return nil, fmt.Errorf("page sizes must be positive (records=%d index=%d)",
			cfg.RecordsPerPage, cfg.IndexPerPage)
	}
	switch cfg.StoreBackend {
	case "memory", "redis":
	default:
		return nil, fmt.Errorf("unsupported store backend: %s", cfg.StoreBackend)
	}
	return cfg, nil
}

func applyFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}

	setString(&cfg.Port, fc.Port)
	setString(&cfg.SourceDriver, fc.SourceDriver)
	setString(&cfg.SourcePath, fc.SourcePath)
	setString(&cfg.SourceURL, fc.SourceURL)
	setString(&cfg.SourceTable, fc.SourceTable)
	setBool(&cfg.RequireCatalog, fc.RequireCatalog)
	setInt(&cfg.RecordsPerPage, fc.RecordsPerPage)
	setInt(&cfg.IndexPerPage, fc.IndexPerPage)
	setString(&cfg.StoreBackend, fc.StoreBackend)
	setString(&cfg.RedisAddr, fc.RedisAddr)
	setInt(&cfg.RedisDB, fc.RedisDB)
	if err := setDuration(&cfg.SessionTTL, fc.SessionTTL); err != nil {
		return fmt.Errorf("session_ttl: %w", err)
	}
	setString(&cfg.ExportEndpoint, fc.Export.Endpoint)
	setString(&cfg.ExportAccessKey, fc.Export.AccessKey)
	setString(&cfg.ExportSecretKey, fc.Export.SecretKey)
	setString(&cfg.ExportBucket, fc.Export.Bucket)
	setString(&cfg.ExportObject, fc.Export.Object)
	setBool(&cfg.ExportUseSSL, fc.Export.UseSSL)
	if err := setDuration(&cfg.ExportLinkTTL, fc.Export.LinkTTL); err != nil {
		return fmt.Errorf("export.link_ttl: %w", err)
	}
	setString(&cfg.InternalSecret, fc.InternalSecret)
	setString(&cfg.LogLevel, fc.LogLevel)
	return nil
}

func applyEnv(cfg *Config) {
	cfg.Port = getEnv("PORT", cfg.Port)
	cfg.SourceDriver = getEnv("UNIHUB_SOURCE_DRIVER", cfg.SourceDriver)
	cfg.SourcePath = getEnv("UNIHUB_SOURCE_PATH", cfg.SourcePath)
	cfg.SourceURL = getEnv("UNIHUB_DATABASE_URL", cfg.SourceURL)
	cfg.SourceTable = getEnv("UNIHUB_SOURCE_TABLE", cfg.SourceTable)
	cfg.RequireCatalog = getEnvBool("UNIHUB_REQUIRE_CATALOG", cfg.RequireCatalog)
	cfg.RecordsPerPage = getEnvInt("UNIHUB_RECORDS_PER_PAGE", cfg.RecordsPerPage)
	cfg.IndexPerPage = getEnvInt("UNIHUB_INDEX_PER_PAGE", cfg.IndexPerPage)
	cfg.StoreBackend = getEnv("UNIHUB_STORE_BACKEND", cfg.StoreBackend)
	cfg.RedisAddr = getEnv("UNIHUB_REDIS_ADDR", cfg.RedisAddr)
	cfg.RedisDB = getEnvInt("UNIHUB_REDIS_DB", cfg.RedisDB)
	cfg.SessionTTL = getEnvDuration("UNIHUB_SESSION_TTL", cfg.SessionTTL)
	cfg.ExportEndpoint = getEnv("UNIHUB_EXPORT_ENDPOINT", cfg.ExportEndpoint)
	cfg.ExportAccessKey = getEnv("UNIHUB_EXPORT_ACCESS_KEY", cfg.ExportAccessKey)
	cfg.ExportSecretKey = getEnv("UNIHUB_EXPORT_SECRET_KEY", cfg.ExportSecretKey)
	cfg.ExportBucket = getEnv("UNIHUB_EXPORT_BUCKET", cfg.ExportBucket)
	cfg.ExportObject = getEnv("UNIHUB_EXPORT_OBJECT", cfg.ExportObject)
	cfg.ExportUseSSL = getEnvBool("UNIHUB_EXPORT_USE_SSL", cfg.ExportUseSSL)
	cfg.ExportLinkTTL = getEnvDuration("UNIHUB_EXPORT_LINK_TTL", cfg.ExportLinkTTL)
	cfg.InternalSecret = getEnv("UNIHUB_INTERNAL_SECRET", cfg.InternalSecret)
	cfg.LogLevel = getEnv("LOG_LEVEL", cfg.LogLevel)
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}

func setInt(dst *int, v *int) {
	if v != nil {
		*dst = *v
	}
}

func setBool(dst *bool, v *bool) {
	if v != nil {
		*dst = *v
	}
}

func setDuration(dst *time.Duration, v *string) error {
	if v == nil {
		return nil
	}
	d, err := time.ParseDuration(*v)
	if err != nil {
		return err
	}
	*dst = d
	return nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
