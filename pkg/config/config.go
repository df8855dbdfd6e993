// Package config defines the runtime configuration for the SDK: default
// addressing of remote operations, HTTP client settings, extra operation
// catalogs and debug mode. It also provides validation, defaulting and
// loading helpers.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/chemspider/chemspider-sdk-go/pkg/model"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// DefaultUserAgent is sent when Config.UserAgent is empty.
const DefaultUserAgent = "chemspider-sdk-go"

// EnvPrefix prefixes every environment variable read by ApplyEnv.
const EnvPrefix = "CHEMSPIDER_"

// Config holds all SDK settings. Use Validate to fill implicit defaults and
// to reject invalid values.
type Config struct {
	// Addressing is the default location of every operation. Per-call
	// overrides are merged over it.
	Addressing model.Addressing `json:"addressing" yaml:"addressing"`
	// UserAgent is sent with every request. Default: chemspider-sdk-go
	UserAgent string `json:"user_agent" yaml:"user_agent"`
	// Token is the ChemSpider security token. When set, it is supplied to
	// operations declaring a "token" parameter that the caller left empty.
	Token string `json:"token" yaml:"token"`
	// Catalogs lists YAML catalog files whose operations are registered in
	// addition to the built-in ChemSpider services.
	Catalogs []string `json:"catalogs" yaml:"catalogs"`
	// Debug enables verbose logging.
	Debug bool `json:"debug" yaml:"debug"`
	// Timeouts configures HTTP deadlines. See Timeouts.WithDefaults for defaults.
	Timeouts Timeouts `json:"timeouts" yaml:"timeouts"`
}

// Timeouts controls HTTP deadlines.
// Zero values will be replaced by sane defaults in WithDefaults.
type Timeouts struct {
	Dial time.Duration `json:"dial" yaml:"dial"` // TCP connect
	HTTP time.Duration `json:"http" yaml:"http"` // whole request, body included
}

// Validate normalizes the configuration by applying implicit defaults for
// UserAgent and Timeouts and verifies the addressing. Addressing fields stay
// unset so the addressing defaults still depend on the final scheme.
func (c *Config) Validate() error {
	if c.UserAgent == "" {
		c.UserAgent = DefaultUserAgent
	}
	if c.Timeouts.Dial < 0 || c.Timeouts.HTTP < 0 {
		return errors.New("timeouts must not be negative")
	}
	c.Timeouts = c.Timeouts.WithDefaults()

	switch strings.ToLower(c.Addressing.Scheme) {
	case "", "http", "https":
	default:
		return fmt.Errorf("unsupported scheme %q", c.Addressing.Scheme)
	}
	if c.Addressing.Port < 0 || c.Addressing.Port > 65535 {
		return fmt.Errorf("port %d out of range", c.Addressing.Port)
	}
	for _, path := range c.Catalogs {
		if strings.TrimSpace(path) == "" {
			return errors.New("empty catalog path")
		}
	}
	return nil
}

// WithDefaults returns a copy of t with zero values replaced by defaults:
//
//	Dial: 10s
//	HTTP: 30s
func (t Timeouts) WithDefaults() Timeouts {
	tt := t
	if tt.Dial == 0 {
		tt.Dial = 10 * time.Second
	}
	if tt.HTTP == 0 {
		tt.HTTP = 30 * time.Second
	}
	return tt
}

// Load reads a YAML configuration file, applies environment overrides and
// validates the result.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	if err := ApplyEnv(cfg); err != nil {
		return nil, err
	}
	return cfg, cfg.Validate()
}

// LoadEnv loads the given dotenv files (".env" when none is given, ignoring
// its absence) and builds a validated configuration from the environment.
func LoadEnv(files ...string) (*Config, error) {
	if len(files) == 0 {
		_ = godotenv.Load()
	} else if err := godotenv.Load(files...); err != nil {
		return nil, err
	}
	cfg := &Config{}
	if err := ApplyEnv(cfg); err != nil {
		return nil, err
	}
	return cfg, cfg.Validate()
}

// ApplyEnv overrides cfg with the CHEMSPIDER_* variables that are set:
//
//	CHEMSPIDER_SCHEME, CHEMSPIDER_HOST, CHEMSPIDER_PORT,
//	CHEMSPIDER_PATH_FORMAT, CHEMSPIDER_QUERY, CHEMSPIDER_USER_AGENT,
//	CHEMSPIDER_TOKEN, CHEMSPIDER_DEBUG, CHEMSPIDER_HTTP_TIMEOUT,
//	CHEMSPIDER_DIAL_TIMEOUT, CHEMSPIDER_CATALOGS (comma separated)
func ApplyEnv(cfg *Config) error {
	setString(&cfg.Addressing.Scheme, "SCHEME")
	setString(&cfg.Addressing.Host, "HOST")
	setString(&cfg.Addressing.PathFormat, "PATH_FORMAT")
	setString(&cfg.Addressing.Query, "QUERY")
	setString(&cfg.UserAgent, "USER_AGENT")
	setString(&cfg.Token, "TOKEN")

	if v, ok := lookup("PORT"); ok {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%sPORT: %w", EnvPrefix, err)
		}
		cfg.Addressing.Port = port
	}
	if v, ok := lookup("DEBUG"); ok {
		debug, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%sDEBUG: %w", EnvPrefix, err)
		}
		cfg.Debug = debug
	}
	if err := setDuration(&cfg.Timeouts.HTTP, "HTTP_TIMEOUT"); err != nil {
		return err
	}
	if err := setDuration(&cfg.Timeouts.Dial, "DIAL_TIMEOUT"); err != nil {
		return err
	}
	if v, ok := lookup("CATALOGS"); ok {
		cfg.Catalogs = nil
		for _, p := range strings.Split(v, ",") {
			if p = strings.TrimSpace(p); p != "" {
				cfg.Catalogs = append(cfg.Catalogs, p)
			}
		}
	}
	return nil
}

func lookup(name string) (string, bool) {
	v, ok := os.LookupEnv(EnvPrefix + name)
	v = strings.TrimSpace(v)
	return v, ok && v != ""
}

func setString(dst *string, name string) {
	if v, ok := lookup(name); ok {
		*dst = v
	}
}

func setDuration(dst *time.Duration, name string) error {
	v, ok := lookup(name)
	if !ok {
		return nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fmt.Errorf("%s%s: %w", EnvPrefix, name, err)
	}
	*dst = d
	return nil
}
