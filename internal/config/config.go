// Package config provides configuration loading and validation for the service and CLI.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment variable read by Load.
const EnvPrefix = "TALKTO"

// Representative provider names.
const (
	ProviderFiveCalls = "5calls"
	ProviderCivic     = "civic"
)

// Config holds every runtime setting. Values come from defaults, an optional
// talkto.yaml, then the environment; CLI flags override on top.
type Config struct {
	Port           int      `mapstructure:"port" validate:"min=1,max=65535"`
	Verbose        bool     `mapstructure:"verbose"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`

	// Representatives
	Provider      string `mapstructure:"provider" validate:"oneof=5calls civic"`
	FiveCallsURL  string `mapstructure:"five_calls_url" validate:"required,url"`
	CivicAPIKey   string `mapstructure:"civic_api_key"`
	CivicEndpoint string `mapstructure:"civic_endpoint" validate:"omitempty,url"`

	// Legislative activity. An empty key is reported per request, not at startup.
	CongressURL    string `mapstructure:"congress_url" validate:"required,url"`
	CongressAPIKey string `mapstructure:"congress_api_key"`
	BillLimit      int    `mapstructure:"bill_limit" validate:"min=1,max=250"`

	// Public interest
	TrendsURL string `mapstructure:"trends_url" validate:"required,url"`

	// Outbound HTTP and caching
	HTTPTimeout time.Duration `mapstructure:"http_timeout" validate:"gt=0"`
	CacheTTL    time.Duration `mapstructure:"cache_ttl" validate:"gt=0"`
	CacheSize   int           `mapstructure:"cache_size" validate:"min=1"`

	// Data files override the embedded datasets when set
	OrganizationsFile      string `mapstructure:"organizations_file"`
	LocalOrganizationsFile string `mapstructure:"local_organizations_file"`
}

// Default values.
const (
	DefaultPort         = 8080
	DefaultFiveCallsURL = "https://api.5calls.org"
	DefaultCongressURL  = "https://api.congress.gov"
	DefaultBillLimit    = 50
	DefaultTrendsURL    = "https://trends.google.com"
	DefaultHTTPTimeout  = 15 * time.Second
	DefaultCacheTTL     = time.Hour
	DefaultCacheSize    = 128
)

func setDefaults(v *viper.Viper) {
	v.SetDefault("port", DefaultPort)
	v.SetDefault("verbose", false)
	v.SetDefault("allowed_origins", []string{})
	v.SetDefault("provider", ProviderFiveCalls)
	v.SetDefault("five_calls_url", DefaultFiveCallsURL)
	v.SetDefault("civic_api_key", "")
	v.SetDefault("civic_endpoint", "")
	v.SetDefault("congress_url", DefaultCongressURL)
	v.SetDefault("congress_api_key", "")
	v.SetDefault("bill_limit", DefaultBillLimit)
	v.SetDefault("trends_url", DefaultTrendsURL)
	v.SetDefault("http_timeout", DefaultHTTPTimeout)
	v.SetDefault("cache_ttl", DefaultCacheTTL)
	v.SetDefault("cache_size", DefaultCacheSize)
	v.SetDefault("organizations_file", "")
	v.SetDefault("local_organizations_file", "")
}

// Load reads configuration from an optional file and the environment.
// cfgFile may be empty, in which case ./talkto.yaml and
// $HOME/.config/talkto/talkto.yaml are searched; a missing file is not an error.
func Load(cfgFile string) (*Config, error) {
	v := viper.New()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("talkto")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/talkto")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	// Conventional unprefixed names are honored too
	_ = v.BindEnv("port", EnvPrefix+"_PORT", "PORT")
	_ = v.BindEnv("congress_api_key", EnvPrefix+"_CONGRESS_API_KEY", "CONGRESS_API_KEY")
	_ = v.BindEnv("civic_api_key", EnvPrefix+"_CIVIC_API_KEY", "CIVIC_API_KEY")

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	cfg.Provider = strings.ToLower(strings.TrimSpace(cfg.Provider))

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			fe := fieldErrs[0]
			return fmt.Errorf("config error: '%s' failed '%s' (value %v)", fe.Field(), fe.Tag(), fe.Value())
		}
		return fmt.Errorf("config error: %w", err)
	}

	if c.Provider == ProviderCivic && c.CivicAPIKey == "" {
		return fmt.Errorf("config error: provider %q requires civic_api_key", ProviderCivic)
	}

	return nil
}

// Addr is the listen address for the HTTP server.
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

// HasCongressKey reports whether legislative activity can be served.
func (c *Config) HasCongressKey() bool {
	return c.CongressAPIKey != ""
}
