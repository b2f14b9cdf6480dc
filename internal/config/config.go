// Package config builds the process-wide configuration once at startup.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	ProviderGoogle  = "google"
	ProviderNewsAPI = "newsapi"

	EnvGoogleAPIKey = "GOOGLE_API_KEY"
	EnvGoogleCSEID  = "GOOGLE_CSE_ID"
	EnvNewsAPIKey   = "NEWSAPI_KEY"

	DefaultQuery = "technology news"
)

var (
	ErrUnknownProvider   = errors.New("providers.order contains an unknown provider")
	ErrDuplicateProvider = errors.New("providers.order lists a provider twice")
	ErrNoProviders       = errors.New("providers.order must list at least one provider")
	ErrInvalidMaxResults = errors.New("feed.max_results must be at least 1")
	ErrInvalidPageSize   = errors.New("feed.page_size must be between 1 and 10")
	ErrInvalidTimeout    = errors.New("http.timeout must be positive")
	ErrInvalidLogLevel   = errors.New("logging.level must be one of: debug, info, warn, error")
)

type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Providers ProvidersConfig `yaml:"providers"`
	Feed      FeedConfig      `yaml:"feed"`
	HTTP      HTTPConfig      `yaml:"http"`
	Logging   LoggingConfig   `yaml:"logging"`
}

type ServerConfig struct {
	Addr        string `yaml:"addr"`
	FrontendURL string `yaml:"frontend_url"`
}

// ProvidersConfig holds the priority order and the credentials. Credentials
// are only ever read from the environment.
type ProvidersConfig struct {
	Order        []string `yaml:"order"`
	GoogleAPIKey string   `yaml:"-"`
	GoogleCSEID  string   `yaml:"-"`
	NewsAPIKey   string   `yaml:"-"`
}

type FeedConfig struct {
	DefaultQuery string `yaml:"default_query"`
	MaxResults   int    `yaml:"max_results"`
	PageSize     int    `yaml:"page_size"`
}

type HTTPConfig struct {
	Timeout time.Duration `yaml:"timeout"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

func Default() *Config {
	return &Config{
		Server: ServerConfig{Addr: ":8080"},
		Providers: ProvidersConfig{
			Order: []string{ProviderGoogle, ProviderNewsAPI},
		},
		Feed: FeedConfig{
			DefaultQuery: DefaultQuery,
			MaxResults:   20,
			PageSize:     10,
		},
		HTTP:    HTTPConfig{Timeout: 10 * time.Second},
		Logging: LoggingConfig{Level: "info"},
	}
}

// Load reads the optional YAML file at path on top of the defaults, then
// applies environment overrides. An empty path skips the file.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	cfg.ApplyEnv(os.Getenv)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// ApplyEnv overrides fields from the environment. getenv is injected so tests
// never touch the process environment.
func (c *Config) ApplyEnv(getenv func(string) string) {
	c.Providers.GoogleAPIKey = strings.TrimSpace(getenv(EnvGoogleAPIKey))
	c.Providers.GoogleCSEID = strings.TrimSpace(getenv(EnvGoogleCSEID))
	c.Providers.NewsAPIKey = strings.TrimSpace(getenv(EnvNewsAPIKey))

	if v := getenv("PORT"); v != "" {
		c.Server.Addr = ":" + v
	}
	if v := getenv("LISTEN_ADDR"); v != "" {
		c.Server.Addr = v
	}
	if v := getenv("FRONTEND_URL"); v != "" {
		c.Server.FrontendURL = v
	}
	if v := getenv("NEWS_PROVIDER_ORDER"); v != "" {
		c.Providers.Order = splitList(v)
	}
	if v := getenv("NEWS_MAX_RESULTS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.Feed.MaxResults = n
		}
	}
	if v := getenv("HTTP_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			c.HTTP.Timeout = d
		}
	}
	if v := getenv("LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
}

func (c *Config) Validate() error {
	if len(c.Providers.Order) == 0 {
		return ErrNoProviders
	}

	seen := make(map[string]bool, len(c.Providers.Order))
	for _, name := range c.Providers.Order {
		if name != ProviderGoogle && name != ProviderNewsAPI {
			return fmt.Errorf("%w: %q", ErrUnknownProvider, name)
		}
		if seen[name] {
			return fmt.Errorf("%w: %q", ErrDuplicateProvider, name)
		}
		seen[name] = true
	}

	if c.Feed.MaxResults < 1 {
		return ErrInvalidMaxResults
	}
	if c.Feed.PageSize < 1 || c.Feed.PageSize > 10 {
		return ErrInvalidPageSize
	}
	if c.HTTP.Timeout <= 0 {
		return ErrInvalidTimeout
	}

	switch strings.ToLower(c.Logging.Level) {
	case "debug", "info", "warn", "error":
	default:
		return ErrInvalidLogLevel
	}

	if strings.TrimSpace(c.Feed.DefaultQuery) == "" {
		c.Feed.DefaultQuery = DefaultQuery
	}

	return nil
}

// MissingCredentials returns the names of the required environment variables
// that are unset. All three are required regardless of provider order.
func (c *Config) MissingCredentials() []string {
	var missing []string
	if c.Providers.GoogleAPIKey == "" {
		missing = append(missing, EnvGoogleAPIKey)
	}
	if c.Providers.GoogleCSEID == "" {
		missing = append(missing, EnvGoogleCSEID)
	}
	if c.Providers.NewsAPIKey == "" {
		missing = append(missing, EnvNewsAPIKey)
	}
	return missing
}

func (c *Config) ProviderConfigured(name string) bool {
	switch name {
	case ProviderGoogle:
		return c.Providers.GoogleAPIKey != "" && c.Providers.GoogleCSEID != ""
	case ProviderNewsAPI:
		return c.Providers.NewsAPIKey != ""
	}
	return false
}

func splitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if v := strings.ToLower(strings.TrimSpace(p)); v != "" {
			out = append(out, v)
		}
	}
	return out
}
