package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, project, DB connection), security settings
// - default: Values common across all environments (timezone, timeout, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server ServerConfig
	DB     DBConfig
	CORS   CORSConfig
	Log    LogConfig
	OAuth  OAuthConfig
	Status StatusConfig
}

type ServerConfig struct {
	Port      string `envconfig:"PORT" required:"true"`
	ProjectID string `envconfig:"GCP_PROJECT" required:"true"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"UTC"`
	// entity namespace, one per project
	Namespace string `envconfig:"DB_NAMESPACE" default:"app"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"*"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Authorization,Content-Type,Accept,Origin,X-App-ID"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"false"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"UTC"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"0"`
}

// OAuthConfig holds the tokeninfo endpoint and the allow-lists a verified
// token must satisfy. Empty allow-lists reject every token.
type OAuthConfig struct {
	TokenInfoURL     string        `envconfig:"OAUTH_TOKENINFO_URL" default:"https://www.googleapis.com/oauth2/v2/tokeninfo"`
	AudiencePrefixes []string      `envconfig:"OAUTH_AUDIENCE_PREFIXES"`
	EmailSuffixes    []string      `envconfig:"OAUTH_EMAIL_SUFFIXES"`
	Timeout          time.Duration `envconfig:"OAUTH_TIMEOUT" default:"10s"`
}

type StatusConfig struct {
	CacheTTL   time.Duration `envconfig:"STATUS_CACHE_TTL" default:"60s"`
	ProbeAppID string        `envconfig:"STATUS_PROBE_APPID" default:"tos-status-probe"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port:      "8889", // Test port
			ProjectID: "tos-api-test",
		},
		DB: DBConfig{
			Host:      "localhost",
			Port:      "15433", // Test DB port
			User:      "test",
			Password:  "test",
			DBName:    "test_db",
			SSLMode:   "disable",
			TimeZone:  "UTC",
			Namespace: "app",
		},
		CORS: CORSConfig{
			AllowOrigins: []string{"*"},
			AllowMethods: []string{"GET", "POST"},
			AllowHeaders: []string{"Authorization", "Content-Type", "Accept", "Origin", "X-App-ID"},
			MaxAge:       12 * time.Hour,
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "UTC",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 0,
		},
		OAuth: OAuthConfig{
			TokenInfoURL:     "http://127.0.0.1/oauth2/v2/tokeninfo",
			AudiencePrefixes: []string{"778899"},
			EmailSuffixes:    []string{"@example.com"},
			Timeout:          5 * time.Second,
		},
		Status: StatusConfig{
			CacheTTL:   60 * time.Second,
			ProbeAppID: "tos-status-probe",
		},
	}
}
