package config

import (
	"time"

	"github.com/spf13/viper"
)

type PasswordScheme string

const (
	PasswordSchemePlain  PasswordScheme = "plain"  // Passwords stored as-is (default, known limitation)
	PasswordSchemeBcrypt PasswordScheme = "bcrypt" // Passwords stored as bcrypt hashes
)

type (
	Config struct {
		HTTP
		Database
		Countries
		CountrySync
		Global
		Tasks
		Auth
	}

	HTTP struct {
		Port int32
		Host string
	}
	Database struct {
		Path string
	}
	Countries struct {
		BaseURL string
		Timeout time.Duration
	}
	CountrySync struct {
		Enabled  bool
		Schedule string // Cron format: "0 */12 * * *" = every 12 hours
	}
	Global struct {
		ShutdownTimeoutInSeconds int
	}
	Tasks struct {
		Enabled           bool
		Workers           int
		MaxRetries        int
		RetryDelay        time.Duration
		TaskTimeout       time.Duration
		ReleaseAfter      time.Duration
		CleanupInterval   time.Duration
		RetentionDuration time.Duration
	}
	Auth struct {
		PasswordScheme  PasswordScheme
		BcryptCost      int
		SessionLifetime time.Duration
		SecureCookies   bool // Set to false for local dev without HTTPS
	}
)

func NewConfig() *Config {
	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("port", 8190)
	v.SetDefault("host", "0.0.0.0")
	v.SetDefault("shutdown_timeout_in_seconds", 2)
	v.SetDefault("database_path", DefaultDatabasePath)
	v.SetDefault("countries_base_url", DefaultCountriesBaseURL)
	v.SetDefault("countries_timeout", "30s")
	v.SetDefault("country_sync_enabled", false)
	v.SetDefault("country_sync_schedule", "0 */12 * * *") // Every 12 hours

	// Auth defaults
	v.SetDefault("auth_password_scheme", "plain")
	v.SetDefault("auth_bcrypt_cost", 12)
	v.SetDefault("auth_session_lifetime", "24h")
	v.SetDefault("auth_secure_cookies", true)

	// Task queue defaults
	v.SetDefault("tasks_enabled", true)
	v.SetDefault("task_workers", 2)
	v.SetDefault("task_max_retries", 3)
	v.SetDefault("task_retry_delay", "1m")
	v.SetDefault("task_timeout", "5m")
	v.SetDefault("task_release_after", "15m")
	v.SetDefault("task_cleanup_interval", "1h")
	v.SetDefault("task_retention_duration", "24h")

	return &Config{
		HTTP: HTTP{
			Port: v.GetInt32("PORT"),
			Host: v.GetString("HOST"),
		},
		Database: Database{
			Path: v.GetString("DATABASE_PATH"),
		},
		Countries: Countries{
			BaseURL: v.GetString("COUNTRIES_BASE_URL"),
			Timeout: v.GetDuration("COUNTRIES_TIMEOUT"),
		},
		CountrySync: CountrySync{
			Enabled:  v.GetBool("COUNTRY_SYNC_ENABLED"),
			Schedule: v.GetString("COUNTRY_SYNC_SCHEDULE"),
		},
		Global: Global{
			ShutdownTimeoutInSeconds: v.GetInt("SHUTDOWN_TIMEOUT_IN_SECONDS"),
		},
		Tasks: Tasks{
			Enabled:           v.GetBool("TASKS_ENABLED"),
			Workers:           v.GetInt("TASK_WORKERS"),
			MaxRetries:        v.GetInt("TASK_MAX_RETRIES"),
			RetryDelay:        v.GetDuration("TASK_RETRY_DELAY"),
			TaskTimeout:       v.GetDuration("TASK_TIMEOUT"),
			ReleaseAfter:      v.GetDuration("TASK_RELEASE_AFTER"),
			CleanupInterval:   v.GetDuration("TASK_CLEANUP_INTERVAL"),
			RetentionDuration: v.GetDuration("TASK_RETENTION_DURATION"),
		},
		Auth: Auth{
			PasswordScheme:  PasswordScheme(v.GetString("AUTH_PASSWORD_SCHEME")),
			BcryptCost:      v.GetInt("AUTH_BCRYPT_COST"),
			SessionLifetime: v.GetDuration("AUTH_SESSION_LIFETIME"),
			SecureCookies:   v.GetBool("AUTH_SECURE_COOKIES"),
		},
	}
}
