package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/cuemby/hutch/pkg/netview"
)

// Config is the service configuration. Every limit and feature flag the
// normalization layer consumes is carried here and injected into the
// packages that need it; nothing reads configuration at call time.
type Config struct {
	API     APIConfig     `yaml:"api"`
	Network NetworkConfig `yaml:"network"`
	Log     LogConfig     `yaml:"log"`
}

// APIConfig configures the HTTP front.
type APIConfig struct {
	Listen string `yaml:"listen"`

	// MaxLimit caps every pagination window.
	MaxLimit int `yaml:"max_limit"`

	// MetadataQuota is the maximum number of metadata items per instance.
	MetadataQuota int `yaml:"metadata_quota"`
}

// NetworkConfig configures address view assembly.
type NetworkConfig struct {
	UseIPv6 bool `yaml:"use_ipv6"`

	// MalformedPolicy is "propagate" or "skip-and-log".
	MalformedPolicy string `yaml:"malformed_policy"`
}

// LogConfig configures logging output.
type LogConfig struct {
	Level string `yaml:"level"`
	JSON  bool   `yaml:"json"`
}

// Default returns the configuration used when no file is supplied.
func Default() Config {
	return Config{
		API: APIConfig{
			Listen:        ":8774",
			MaxLimit:      1000,
			MetadataQuota: 128,
		},
		Network: NetworkConfig{
			UseIPv6:         false,
			MalformedPolicy: string(netview.PolicyPropagate),
		},
		Log: LogConfig{
			Level: "info",
			JSON:  true,
		},
	}
}

// Load reads a YAML configuration file over the defaults.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects configurations the service cannot run with.
func (c Config) Validate() error {
	if c.API.MaxLimit <= 0 {
		return fmt.Errorf("api.max_limit must be positive, got %d", c.API.MaxLimit)
	}
	if c.API.MetadataQuota < 0 {
		return fmt.Errorf("api.metadata_quota must not be negative, got %d", c.API.MetadataQuota)
	}
	switch netview.Policy(c.Network.MalformedPolicy) {
	case netview.PolicyPropagate, netview.PolicySkip:
	default:
		return fmt.Errorf("network.malformed_policy must be %q or %q, got %q",
			netview.PolicyPropagate, netview.PolicySkip, c.Network.MalformedPolicy)
	}
	return nil
}

// NetviewConfig returns the assembler configuration this service config
// implies.
func (c Config) NetviewConfig() netview.Config {
	return netview.Config{
		UseIPv6: c.Network.UseIPv6,
		Policy:  netview.Policy(c.Network.MalformedPolicy),
	}
}
