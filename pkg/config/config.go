package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/vippsno/vipps-sdk-go/pkg/transport"
)

// Hosts of the Vipps MobilePay API.
const (
	TestHost       = "https://apitest.vipps.no"
	ProductionHost = "https://api.vipps.no"
)

// Environment variables read by FromEnv.
const (
	EnvClientID             = "VIPPS_CLIENT_ID"
	EnvClientSecret         = "VIPPS_CLIENT_SECRET"
	EnvSubscriptionKey      = "VIPPS_SUBSCRIPTION_KEY"
	EnvMerchantSerialNumber = "VIPPS_MERCHANT_SERIAL_NUMBER"
	EnvPluginName           = "VIPPS_PLUGIN_NAME"
	EnvPluginVersion        = "VIPPS_PLUGIN_VERSION"
	EnvTestMode             = "VIPPS_TEST_MODE"
	EnvHostname             = "VIPPS_HOSTNAME"
	EnvDebug                = "VIPPS_DEBUG"
)

// ErrInvalid is wrapped by every error returned from Validate.
var ErrInvalid = errors.New("invalid config")

// Config holds the merchant credentials and client settings.
// Use Validate to fill implicit defaults and to check for required fields.
type Config struct {
	// ClientID is the merchant's client id from the portal (required).
	ClientID string `json:"client_id" yaml:"client_id"`
	// ClientSecret is the merchant's client secret (required).
	ClientSecret string `json:"client_secret" yaml:"client_secret"`
	// SubscriptionKey is the Ocp-Apim-Subscription-Key (required).
	SubscriptionKey string `json:"subscription_key" yaml:"subscription_key"`
	// MerchantSerialNumber identifies the sales unit (required).
	MerchantSerialNumber string `json:"merchant_serial_number" yaml:"merchant_serial_number"`
	// PluginName and PluginVersion identify the integration built on the SDK.
	PluginName    string `json:"plugin_name" yaml:"plugin_name"`
	PluginVersion string `json:"plugin_version" yaml:"plugin_version"`
	// UseTestMode selects the test environment.
	UseTestMode bool `json:"use_test_mode" yaml:"use_test_mode"`
	// Hostname overrides the API host, e.g. "http://localhost:8080".
	// It must be an absolute http(s) URL.
	Hostname string `json:"hostname" yaml:"hostname"`
	// Debug enables verbose logging.
	Debug bool `json:"debug" yaml:"debug"`
	// Timeouts configures per-request deadlines.
	Timeouts Timeouts `json:"timeouts" yaml:"timeouts"`
	// Retry bounds automatic retries of failed requests.
	Retry transport.RetryPolicy `json:"retry" yaml:"retry"`
}

// Timeouts controls SDK operation deadlines.
// Zero values will be replaced by defaults in WithDefaults.
type Timeouts struct {
	HTTP time.Duration `json:"http" yaml:"http"` // single HTTP round trip
}

// WithDefaults returns a copy of t with zero values replaced by defaults:
//
//	HTTP: 30s
func (t Timeouts) WithDefaults() Timeouts {
	tt := t
	if tt.HTTP == 0 {
		tt.HTTP = 30 * time.Second
	}
	return tt
}

// Validate applies defaults to Timeouts and Retry and verifies that the
// credentials are present and Hostname, if set, is usable.
func (c *Config) Validate() error {
	c.Timeouts = c.Timeouts.WithDefaults()
	c.Retry = c.Retry.WithDefaults()

	var missing []string
	if c.ClientID == "" {
		missing = append(missing, "client id")
	}
	if c.ClientSecret == "" {
		missing = append(missing, "client secret")
	}
	if c.SubscriptionKey == "" {
		missing = append(missing, "subscription key")
	}
	if c.MerchantSerialNumber == "" {
		missing = append(missing, "merchant serial number")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: missing %s", ErrInvalid, strings.Join(missing, ", "))
	}

	if c.Hostname != "" {
		u, err := url.Parse(c.Hostname)
		if err != nil {
			return fmt.Errorf("%w: hostname: %w", ErrInvalid, err)
		}
		if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return fmt.Errorf("%w: hostname %q must be an absolute http(s) URL", ErrInvalid, c.Hostname)
		}
	}
	return nil
}

// BaseURL returns Hostname when set, otherwise the test or production host.
func (c *Config) BaseURL() string {
	if c.Hostname != "" {
		return strings.TrimRight(c.Hostname, "/")
	}
	if c.UseTestMode {
		return TestHost
	}
	return ProductionHost
}

// Identity returns the header identity of c for the given calling system.
func (c *Config) Identity(systemName, systemVersion string) transport.Identity {
	return transport.Identity{
		SubscriptionKey:      c.SubscriptionKey,
		MerchantSerialNumber: c.MerchantSerialNumber,
		SystemName:           systemName,
		SystemVersion:        systemVersion,
		PluginName:           c.PluginName,
		PluginVersion:        c.PluginVersion,
	}
}

// FromEnv builds a Config from the VIPPS_* variables returned by lookup.
// A nil lookup reads the process environment.
func FromEnv(lookup func(string) (string, bool)) (*Config, error) {
	if lookup == nil {
		lookup = os.LookupEnv
	}
	get := func(key string) string {
		v, _ := lookup(key)
		return strings.TrimSpace(v)
	}

	cfg := &Config{
		ClientID:             get(EnvClientID),
		ClientSecret:         get(EnvClientSecret),
		SubscriptionKey:      get(EnvSubscriptionKey),
		MerchantSerialNumber: get(EnvMerchantSerialNumber),
		PluginName:           get(EnvPluginName),
		PluginVersion:        get(EnvPluginVersion),
		Hostname:             get(EnvHostname),
	}

	var err error
	if cfg.UseTestMode, err = parseBool(EnvTestMode, get(EnvTestMode)); err != nil {
		return nil, err
	}
	if cfg.Debug, err = parseBool(EnvDebug, get(EnvDebug)); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadEnvFile reads a dotenv file and builds a Config from it with FromEnv.
// The process environment is not modified and not consulted.
func LoadEnvFile(path string) (*Config, error) {
	vars, err := godotenv.Read(path)
	if err != nil {
		return nil, fmt.Errorf("read env file %s: %w", path, err)
	}
	return FromEnv(func(key string) (string, bool) {
		v, ok := vars[key]
		return v, ok
	})
}

// LoadFile decodes a YAML config file. Durations use Go syntax ("30s").
func LoadFile(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	var cfg Config
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return nil, fmt.Errorf("decode config %s: %w", path, err)
	}
	return &cfg, nil
}

func parseBool(key, v string) (bool, error) {
	if v == "" {
		return false, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("%w: %s: %w", ErrInvalid, key, err)
	}
	return b, nil
}
