package config

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/ardanlabs/conf/v3"
	"github.com/joho/godotenv"
	"github.com/rs/cors"
)

// MemoryDB is the DB_URL value that selects the in-memory store.
const MemoryDB = "memory"

// DefaultJWTSecret is the development signing secret. It must match the
// JWT.Secret default tag and is refused in production.
const DefaultJWTSecret = "not-so-secret-now-is-it?"

var ErrDefaultSecret = errors.New("JWT_SECRET must be set when ENV=production")

type R2Config struct {
	AccountID       string
	AccessKeyID     string
	SecretAccessKey string `conf:"mask"`
	BucketName      string
	Region          string `conf:"default:auto"`
	PublicBaseURL   string
}

// Enabled reports whether enough R2 settings are present to build a client.
func (c R2Config) Enabled() bool {
	return c.AccountID != "" && c.AccessKeyID != "" && c.SecretAccessKey != "" && c.BucketName != ""
}

type GoogleConfig struct {
	ClientID     string
	ClientSecret string `conf:"mask"`
	RedirectURL  string `conf:"default:http://localhost:8080/api/v1/auth/google/callback"`
}

type Config struct {
	Port        string   `conf:"default:8080"`
	Env         string   `conf:"default:development"`
	LogBackend  string   `conf:"default:zap"`
	FrontendURL string   `conf:"default:http://localhost:5173"`
	CorsOrigins []string `conf:"default:http://localhost:5173"`
	DB          struct {
		URL string `conf:"default:memory,mask"`
	}
	JWT struct {
		Secret string        `conf:"default:not-so-secret-now-is-it?,mask"`
		TTL    time.Duration `conf:"default:24h"`
	}
	Web struct {
		ReadTimeout     time.Duration `conf:"default:5s"`
		WriteTimeout    time.Duration `conf:"default:10s"`
		IdleTimeout     time.Duration `conf:"default:120s"`
		ShutdownTimeout time.Duration `conf:"default:20s"`
	}
	Sweep struct {
		Interval  time.Duration `conf:"default:24h"`
		Retention time.Duration `conf:"default:720h"`
	}
	Ledger struct {
		URL string
	}
	Google GoogleConfig
	R2     R2Config
}

// IsProduction reports whether cookies must be marked secure.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// Validate checks settings that parse fine but are unsafe to run with.
func (c *Config) Validate() error {
	if c.IsProduction() && (c.JWT.Secret == "" || c.JWT.Secret == DefaultJWTSecret) {
		return ErrDefaultSecret
	}
	return nil
}

// Load reads the optional env file named by ENV_FILE (default .env) into the
// process environment and parses the environment into a Config.
// conf.ErrHelpWanted is returned together with the usage text when --help is
// passed.
func Load() (*Config, string, error) {
	envFile := os.Getenv("ENV_FILE")
	if envFile == "" {
		envFile = ".env"
	}
	// A missing env file is fine: the process environment still applies.
	_ = godotenv.Load(envFile)

	var cfg Config
	help, err := conf.Parse("", &cfg)
	if err != nil {
		return nil, help, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, "", err
	}
	return &cfg, "", nil
}

// String renders the config with secrets masked.
func (c *Config) String() string {
	out, err := conf.String(c)
	if err != nil {
		return fmt.Sprintf("config: %v", err)
	}
	return out
}

func (c *Config) CorsOptions() cors.Options {
	return cors.Options{
		AllowedOrigins:   c.CorsOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	}
}
