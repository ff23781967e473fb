package app

import (
	"fmt"
	"net/url"
	"os"
	"time"

	"github.com/cristalhq/aconfig"
	"github.com/cristalhq/aconfig/aconfigyaml"
	"github.com/go-faster/errors"
)

// Config holds the complete application configuration, loadable from
// environment variables or a YAML config file. It is read once at startup and
// passed explicitly; nothing reads configuration as ambient global state.
type Config struct {
	Addr      string         `default:"0.0.0.0:8080" usage:"API server listen address"`
	Database  DatabaseConfig `env:"DB"`
	RateLimit RateLimitConfig
	CORS      CORSConfig
	Graceful  GracefulConfig
}

// DatabaseConfig holds PostgreSQL connection parameters. The environment
// names (DB_HOST, DB_PORT, ...) and defaults match the standard deployment.
type DatabaseConfig struct {
	Host     string `env:"HOST"     default:"localhost" usage:"PostgreSQL host"`
	Port     int    `env:"PORT"     default:"5432"      usage:"PostgreSQL port"`
	User     string `env:"USER"     default:"postgres"  usage:"PostgreSQL user"`
	Password string `env:"PASSWORD" default:"postgres"  usage:"PostgreSQL password"`
	Name     string `env:"NAME"     default:"orders_db" usage:"PostgreSQL database name"`

	Migrate      bool          `env:"MIGRATE"       default:"false" usage:"Apply the embedded schema at startup"`
	QueryTimeout time.Duration `env:"QUERY_TIMEOUT" default:"5s"    usage:"Per-transaction deadline"`
}

// URL renders the connection parameters as a pgx-compatible URL.
func (d DatabaseConfig) URL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		url.QueryEscape(d.User), url.QueryEscape(d.Password), d.Host, d.Port, d.Name,
	)
}

// RateLimitConfig controls the per-client sliding window rate limiter.
type RateLimitConfig struct {
	Max    int           `default:"100" usage:"Max requests per window"`
	Window time.Duration `default:"1m"  usage:"Rate limit window duration"`
}

// CORSConfig controls Cross-Origin Resource Sharing headers.
type CORSConfig struct {
	Origins          []string `default:"*" usage:"Allowed CORS origins"`
	AllowCredentials bool     `default:"false" usage:"Allow credentials (cookies, auth headers)"`
}

// GracefulConfig controls graceful shutdown timing.
type GracefulConfig struct {
	ReadinessDelay  time.Duration `default:"3s"  usage:"Delay after readiness=false before shutdown"`
	ShutdownTimeout time.Duration `default:"15s" usage:"Maximum shutdown duration"`
}

// LoadConfig loads configuration from environment variables and optional YAML
// config files, then applies platform defaults.
func LoadConfig() (*Config, error) {
	var cfg Config
	loader := aconfig.LoaderFor(&cfg, aconfig.Config{
		SkipFlags: true,
		Files:     []string{"config.yaml", "/etc/order-intake/config.yaml"},
		FileDecoders: map[string]aconfig.FileDecoder{
			".yaml": aconfigyaml.New(),
		},
	})
	if err := loader.Load(); err != nil {
		return nil, errors.Wrap(err, "load config")
	}
	cfg.applyPlatformDefaults()
	return &cfg, nil
}

// applyPlatformDefaults maps platform-provided environment variables (Railway,
// Render, etc.) that use standard names like PORT to the listen address.
func (c *Config) applyPlatformDefaults() {
	if port := os.Getenv("PORT"); port != "" && c.Addr == "0.0.0.0:8080" {
		c.Addr = "0.0.0.0:" + port
	}
}
