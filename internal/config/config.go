// Package config handles configuration loading and validation.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/Masterminds/semver/v3"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	apperrors "github.com/zorak1103/dockreport/internal/errors"
	"github.com/zorak1103/dockreport/internal/logging"
)

// Common errors
var (
	Err = errors.New("config error")
)

// Supported runtime backends
const (
	BackendCLI = "cli"
	BackendAPI = "api"
)

// EnvPrefix is the prefix for environment variable overrides.
const EnvPrefix = "DOCKREPORT"

// Config represents the application configuration
type Config struct {
	Runtime RuntimeConfig `mapstructure:"runtime" yaml:"runtime"`
	Docker  DockerConfig  `mapstructure:"docker" yaml:"docker"`
	Output  OutputConfig  `mapstructure:"output" yaml:"output"`
	Log     LogConfig     `mapstructure:"log" yaml:"log"`

	// ConfigFilePath stores the path to the loaded config file (not marshaled from YAML)
	ConfigFilePath string `mapstructure:"-" yaml:"-"`
}

// RuntimeConfig selects how the container runtime is queried
type RuntimeConfig struct {
	Binary     string         `mapstructure:"binary" yaml:"binary"`
	Backend    string         `mapstructure:"backend" yaml:"backend"`
	Timeout    time.Duration  `mapstructure:"timeout" yaml:"timeout"`
	MinVersion string         `mapstructure:"min_version" yaml:"min_version"`
	Commands   CommandsConfig `mapstructure:"commands" yaml:"commands"`
}

// CommandsConfig overrides individual command lines; empty means derived from the binary
type CommandsConfig struct {
	Probe      string `mapstructure:"probe" yaml:"probe"`
	Containers string `mapstructure:"containers" yaml:"containers"`
	Images     string `mapstructure:"images" yaml:"images"`
	Version    string `mapstructure:"version" yaml:"version"`
}

// DockerConfig contains Docker Engine API settings, used by the api backend
type DockerConfig struct {
	SocketPath string `mapstructure:"socket_path" yaml:"socket_path"`
}

// OutputConfig contains report file settings
type OutputConfig struct {
	ReportFile string `mapstructure:"report_file" yaml:"report_file"`
	WriteFile  bool   `mapstructure:"write_file" yaml:"write_file"`
}

// LogConfig contains diagnostic logging settings
type LogConfig struct {
	Level string `mapstructure:"level" yaml:"level"`
}

// autoDetectDockerSocket determines the Docker socket path based on environment and platform.
func autoDetectDockerSocket() string {
	if os.Getenv("DOCKER_HOST") != "" {
		return os.Getenv("DOCKER_HOST")
	}
	if _, err := os.Stat("/var/run/docker.sock"); err == nil {
		return "unix:///var/run/docker.sock"
	}
	return "npipe:////./pipe/docker_engine"
}

// Load reads configuration from file and environment variables
func Load(configPath string) (*Config, error) {
	// Try to load .env file (ignore error if not exists)
	_ = godotenv.Load() // nolint:errcheck // .env file is optional

	v := viper.New()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/dockreport")
		v.AddConfigPath("/etc/dockreport")
	}

	setDefaults(v)

	// Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			configFile := v.ConfigFileUsed()
			if configFile == "" {
				configFile = configPath
			}
			return nil, fmt.Errorf("error reading config file from %s: %w", configFile, err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config from %s: %w", describeSource(v.ConfigFileUsed()), err)
	}

	cfg.ConfigFilePath = v.ConfigFileUsed()

	if cfg.Docker.SocketPath == "" {
		cfg.Docker.SocketPath = autoDetectDockerSocket()
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed for %s: %w", describeSource(v.ConfigFileUsed()), err)
	}

	return &cfg, nil
}

func describeSource(configFile string) string {
	if configFile == "" {
		return "(using defaults and environment variables)"
	}
	return configFile
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("runtime.binary", "docker")
	v.SetDefault("runtime.backend", BackendCLI)
	v.SetDefault("runtime.timeout", "30s")
	v.SetDefault("runtime.min_version", "")

	// Empty defaults are required for AutomaticEnv to see these keys
	v.SetDefault("runtime.commands.probe", "")
	v.SetDefault("runtime.commands.containers", "")
	v.SetDefault("runtime.commands.images", "")
	v.SetDefault("runtime.commands.version", "")

	v.SetDefault("docker.socket_path", autoDetectDockerSocket())

	v.SetDefault("output.report_file", "docker_report.txt")
	v.SetDefault("output.write_file", true)

	v.SetDefault("log.level", "warn")
}

// Validate ensures all required fields are set and values are within valid ranges.
func (c *Config) Validate() error {
	configSource := c.ConfigFilePath
	if configSource == "" {
		configSource = "(defaults/environment)"
	}

	if err := c.validateRequiredFields(configSource); err != nil {
		return err
	}

	return c.validateValues(configSource)
}

func (c *Config) validateRequiredFields(configSource string) error {
	requiredFields := []struct {
		key   string
		value string
	}{
		{"runtime.binary", c.Runtime.Binary},
		{"output.report_file", c.Output.ReportFile},
	}

	for _, field := range requiredFields {
		if strings.TrimSpace(field.value) == "" {
			return invalid(configSource, field.key, "value is required")
		}
	}

	if c.Runtime.Backend == BackendAPI && c.Docker.SocketPath == "" {
		return invalid(configSource, "docker.socket_path", "value is required for the api backend")
	}
	return nil
}

func (c *Config) validateValues(configSource string) error {
	switch c.Runtime.Backend {
	case BackendCLI, BackendAPI:
	default:
		return invalid(configSource, "runtime.backend",
			fmt.Sprintf("must be %q or %q, got %q", BackendCLI, BackendAPI, c.Runtime.Backend))
	}

	if c.Runtime.Timeout < 0 {
		return invalid(configSource, "runtime.timeout",
			fmt.Sprintf("must not be negative, got %s", c.Runtime.Timeout))
	}

	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		return invalid(configSource, "log.level", err.Error())
	}

	if c.Runtime.MinVersion != "" {
		if _, err := semver.NewVersion(c.Runtime.MinVersion); err != nil {
			return invalid(configSource, "runtime.min_version",
				fmt.Sprintf("%q: %v", c.Runtime.MinVersion, err))
		}
	}
	return nil
}

func invalid(configSource, key, reason string) error {
	return &apperrors.ConfigurationError{
		ConfigPath: configSource,
		Key:        key,
		Err:        fmt.Errorf("%w: %s", Err, reason),
	}
}
