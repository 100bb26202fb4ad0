package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Storage
	Postgres PostgresConfig

	// EchoNote specifics
	Gemini         GeminiConfig
	Speech         SpeechConfig
	GoogleCalendar GoogleCalendarConfig
	Auth           AuthConfig
	Upload         UploadConfig

	// Pipeline knobs
	Timezone        string
	RateLimitPerMin int
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type PostgresConfig struct {
	DSN string
}

type GeminiConfig struct {
	APIKey  string
	Model   string
	Timeout time.Duration
}

type SpeechConfig struct {
	CredentialsPath string
	LanguageCode    string
}

type GoogleCalendarConfig struct {
	CredentialsPath string
	CalendarID      string
}

type AuthConfig struct {
	SessionTTL time.Duration
}

type UploadConfig struct {
	Dir      string
	MaxBytes int64
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/echonote/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/echonote/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Storage
	cfg.Postgres.DSN = viper.GetString("postgres.dsn")
	if dsn := viper.GetString("database_url"); dsn != "" {
		cfg.Postgres.DSN = dsn
	}
	if cfg.Postgres.DSN == "" {
		return nil, fmt.Errorf("postgres.dsn is required - set postgres.dsn in config.yaml or DATABASE_URL")
	}

	// Gemini extraction
	cfg.Gemini.APIKey = viper.GetString("gemini.api_key")
	if key := viper.GetString("gemini_api_key"); key != "" {
		cfg.Gemini.APIKey = key
	}
	cfg.Gemini.Model = viper.GetString("gemini.model")
	cfg.Gemini.Timeout = viper.GetDuration("gemini.timeout")
	if cfg.Gemini.APIKey == "" {
		return nil, fmt.Errorf("gemini.api_key is required - set gemini.api_key in config.yaml or GEMINI_API_KEY")
	}

	// Speech-to-text
	cfg.Speech.CredentialsPath = viper.GetString("speech.credentials_path")
	cfg.Speech.LanguageCode = viper.GetString("speech.language_code")

	// Google Calendar
	cfg.GoogleCalendar.CredentialsPath = viper.GetString("google_calendar.credentials_path")
	cfg.GoogleCalendar.CalendarID = viper.GetString("google_calendar.calendar_id")
	if googleCreds := viper.GetString("google_calendar_credentials"); googleCreds != "" {
		cfg.GoogleCalendar.CredentialsPath = googleCreds
	}

	// Auth
	cfg.Auth.SessionTTL = viper.GetDuration("auth.session_ttl")

	// Uploads
	cfg.Upload.Dir = viper.GetString("upload.dir")
	cfg.Upload.MaxBytes = viper.GetInt64("upload.max_bytes")

	// Pipeline knobs
	cfg.Timezone = viper.GetString("timezone")
	cfg.RateLimitPerMin = viper.GetInt("rate_limit_per_min")

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("gemini.model", "gemini-1.5-flash")
	viper.SetDefault("gemini.timeout", "30s")

	viper.SetDefault("speech.language_code", "en-US")

	viper.SetDefault("auth.session_ttl", "24h")

	viper.SetDefault("upload.dir", "./uploads")
	viper.SetDefault("upload.max_bytes", 10<<20)

	viper.SetDefault("timezone", "UTC")
	viper.SetDefault("rate_limit_per_min", 30)
}
