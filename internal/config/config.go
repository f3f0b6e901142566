package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/vango-dev/pact/internal/errors"
)

const (
	// DefaultLogLevel is the default slog level name.
	DefaultLogLevel = "info"

	// DefaultLogFormat is the default log handler format.
	DefaultLogFormat = "text"

	// DefaultNamespace is the default Prometheus namespace.
	DefaultNamespace = "pact"

	// DefaultDevtoolsHost is the default devtools listen host.
	DefaultDevtoolsHost = "localhost"

	// DefaultDevtoolsPort is the default devtools listen port.
	DefaultDevtoolsPort = 7331

	// DefaultSnapshotPrefix is the default object key prefix for snapshots.
	DefaultSnapshotPrefix = "passes/"

	// DefaultRegion is the default AWS region for the snapshot bucket.
	DefaultRegion = "us-east-1"
)

// FileNames lists the configuration files Load looks for, in order.
var FileNames = []string{"pact.json", "pact.yaml", "pact.yml", "pact.toml"}

// Config is the complete pact configuration.
type Config struct {
	// Debug enables hook order validation.
	Debug bool `json:"debug,omitempty" yaml:"debug,omitempty" toml:"debug,omitempty"`

	// Effects configures the effect-run phase.
	Effects EffectsConfig `json:"effects" yaml:"effects" toml:"effects"`

	// Log configures the slog handler.
	Log LogConfig `json:"log" yaml:"log" toml:"log"`

	// Metrics configures the Prometheus pass metrics.
	Metrics MetricsConfig `json:"metrics" yaml:"metrics" toml:"metrics"`

	// Devtools configures the devtools HTTP server.
	Devtools DevtoolsConfig `json:"devtools" yaml:"devtools" toml:"devtools"`

	// Snapshots configures where pass snapshots are written.
	Snapshots SnapshotsConfig `json:"snapshots" yaml:"snapshots" toml:"snapshots"`

	configPath string
}

// EffectsConfig configures effect execution.
type EffectsConfig struct {
	// Isolate runs every effect under recover and reports failures instead of
	// aborting the pass at the first panic.
	Isolate bool `json:"isolate,omitempty" yaml:"isolate,omitempty" toml:"isolate,omitempty"`
}

// LogConfig configures logging.
type LogConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `json:"level,omitempty" yaml:"level,omitempty" toml:"level,omitempty"`

	// Format is text or json.
	Format string `json:"format,omitempty" yaml:"format,omitempty" toml:"format,omitempty"`
}

// MetricsConfig configures metric names.
type MetricsConfig struct {
	Namespace string `json:"namespace,omitempty" yaml:"namespace,omitempty" toml:"namespace,omitempty"`
	Subsystem string `json:"subsystem,omitempty" yaml:"subsystem,omitempty" toml:"subsystem,omitempty"`
}

// DevtoolsConfig configures the devtools server.
type DevtoolsConfig struct {
	Host string `json:"host,omitempty" yaml:"host,omitempty" toml:"host,omitempty"`
	Port int    `json:"port,omitempty" yaml:"port,omitempty" toml:"port,omitempty"`
}

// SnapshotsConfig configures snapshot storage.
// Dir selects the file store; Bucket selects the S3 store.
type SnapshotsConfig struct {
	Dir      string `json:"dir,omitempty" yaml:"dir,omitempty" toml:"dir,omitempty"`
	Bucket   string `json:"bucket,omitempty" yaml:"bucket,omitempty" toml:"bucket,omitempty"`
	Prefix   string `json:"prefix,omitempty" yaml:"prefix,omitempty" toml:"prefix,omitempty"`
	Region   string `json:"region,omitempty" yaml:"region,omitempty" toml:"region,omitempty"`
	Endpoint string `json:"endpoint,omitempty" yaml:"endpoint,omitempty" toml:"endpoint,omitempty"`
}

// New returns a Config with defaults applied.
func New() *Config {
	c := &Config{}
	c.applyDefaults()
	return c
}

// Load loads the first configuration file found in dir.
func Load(dir string) (*Config, error) {
	for _, name := range FileNames {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			return LoadFile(path)
		}
	}
	return nil, errors.New("E100").
		WithDetail("No pact configuration found in " + dir).
		WithSuggestion("Run 'pact init' to write a default pact.yaml")
}

// LoadFile loads a configuration file, choosing the format by extension.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.New("E100").WithDetail(path).Wrap(err)
	}

	cfg := &Config{}
	if err := decode(path, data, cfg); err != nil {
		return nil, errors.New("E101").
			WithDetailf("Failed to parse %s: %v", filepath.Base(path), err).
			WithSuggestion("Check the file syntax")
	}

	cfg.configPath = path
	cfg.applyDefaults()

	return cfg, nil
}

func decode(path string, data []byte, cfg *Config) error {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		return json.Unmarshal(data, cfg)
	case ".yaml", ".yml":
		if len(bytes.TrimSpace(data)) == 0 {
			return nil
		}
		return yaml.Unmarshal(data, cfg)
	case ".toml":
		return toml.Unmarshal(data, cfg)
	default:
		return fmt.Errorf("unsupported config format %q", ext)
	}
}

// SaveTo writes the configuration to path in the format of its extension.
func (c *Config) SaveTo(path string) error {
	var buf bytes.Buffer

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		data, err := json.MarshalIndent(c, "", "  ")
		if err != nil {
			return errors.New("E100").Wrap(err)
		}
		buf.Write(data)
		buf.WriteByte('\n')
	case ".yaml", ".yml":
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(c); err != nil {
			return errors.New("E100").Wrap(err)
		}
		enc.Close()
	case ".toml":
		if err := toml.NewEncoder(&buf).Encode(c); err != nil {
			return errors.New("E100").Wrap(err)
		}
	default:
		return errors.New("E100").WithDetailf("unsupported config format %q", ext)
	}

	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return errors.New("E100").Wrap(err)
	}

	c.configPath = path
	return nil
}

// Path returns the path the config was loaded from or saved to.
func (c *Config) Path() string {
	return c.configPath
}

func (c *Config) applyDefaults() {
	if c.Log.Level == "" {
		c.Log.Level = DefaultLogLevel
	}
	if c.Log.Format == "" {
		c.Log.Format = DefaultLogFormat
	}
	if c.Metrics.Namespace == "" {
		c.Metrics.Namespace = DefaultNamespace
	}
	if c.Devtools.Host == "" {
		c.Devtools.Host = DefaultDevtoolsHost
	}
	if c.Devtools.Port == 0 {
		c.Devtools.Port = DefaultDevtoolsPort
	}
	if c.Snapshots.Prefix == "" {
		c.Snapshots.Prefix = DefaultSnapshotPrefix
	}
	if c.Snapshots.Region == "" {
		c.Snapshots.Region = DefaultRegion
	}
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		return errors.New("E102").
			WithDetailf("log.level %q is not one of debug, info, warn, error", c.Log.Level)
	}
	switch strings.ToLower(c.Log.Format) {
	case "text", "json":
	default:
		return errors.New("E102").
			WithDetailf("log.format %q is not one of text, json", c.Log.Format)
	}
	if c.Devtools.Port < 0 || c.Devtools.Port > 65535 {
		return errors.New("E102").
			WithDetail("devtools.port must be between 0 and 65535")
	}
	if c.Snapshots.Endpoint != "" && c.Snapshots.Bucket == "" {
		return errors.New("E102").
			WithDetail("snapshots.endpoint is set but snapshots.bucket is empty")
	}
	return nil
}

// DevtoolsAddress returns the devtools listen address.
func (c *Config) DevtoolsAddress() string {
	return fmt.Sprintf("%s:%d", c.Devtools.Host, c.Devtools.Port)
}

// Exists reports whether dir contains a configuration file.
func Exists(dir string) bool {
	for _, name := range FileNames {
		if _, err := os.Stat(filepath.Join(dir, name)); err == nil {
			return true
		}
	}
	return false
}
