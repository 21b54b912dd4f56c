package bootconfig

import (
	"embed"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed data/defaults.yaml
var dataFS embed.FS

const defaultConfigPath = "data/defaults.yaml"

// EnvAPIEnabledFromConf toggles API access from deployment configuration.
const EnvAPIEnabledFromConf = "IC_API_ENABLED_FROM_CONF"

// Settings is the GST settings snapshot consulted by the API checks.
type Settings struct {
	APISecret string `yaml:"api_secret" json:"api_secret"`
	EnableAPI bool   `yaml:"enable_api" json:"enable_api"`
}

// Config holds the values the host application assembles once at boot.
// It is read-only after construction; helpers receive it explicitly.
type Config struct {
	SalesDocTypes      []string `yaml:"sales_doctypes" json:"sales_doctypes"`
	IndiaStateOptions  []string `yaml:"india_state_options" json:"india_state_options"`
	APIEnabledFromConf bool     `yaml:"ic_api_enabled_from_conf" json:"ic_api_enabled_from_conf"`
	GSTSettings        Settings `yaml:"gst_settings" json:"gst_settings"`
}

var (
	defaultOnce sync.Once
	defaultCfg  Config
	defaultErr  error
)

// Default returns the embedded boot configuration: the Indian state list and
// the stock sales document types.
func Default() (Config, error) {
	defaultOnce.Do(func() {
		f, err := dataFS.Open(defaultConfigPath)
		if err != nil {
			defaultErr = err
			return
		}
		defer func() { _ = f.Close() }()

		cfg, err := Load(f)
		if err != nil {
			defaultErr = err
			return
		}
		defaultCfg = cfg
	})

	if defaultErr != nil {
		return Config{}, defaultErr
	}
	return defaultCfg.Clone(), nil
}

// Load decodes a YAML boot configuration. Unknown keys are rejected. An empty
// document yields the zero Config.
func Load(r io.Reader) (Config, error) {
	if r == nil {
		return Config{}, fmt.Errorf("bootconfig: missing reader")
	}

	var cfg Config
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("bootconfig: decode: %w", err)
	}

	if err := cfg.normalise(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadFile reads a YAML boot configuration from disk.
func LoadFile(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("bootconfig: open %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()
	return Load(f)
}

// LoadFS reads a YAML boot configuration from fsys.
func LoadFS(fsys fs.FS, path string) (Config, error) {
	if fsys == nil {
		return Config{}, fmt.Errorf("bootconfig: missing filesystem")
	}
	f, err := fsys.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("bootconfig: open %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()
	return Load(f)
}

// ApplyEnv overrides deployment flags from the environment. lookup is usually
// os.LookupEnv.
func ApplyEnv(cfg *Config, lookup func(string) (string, bool)) error {
	if cfg == nil || lookup == nil {
		return nil
	}
	raw, ok := lookup(EnvAPIEnabledFromConf)
	if !ok || strings.TrimSpace(raw) == "" {
		return nil
	}
	enabled, err := strconv.ParseBool(strings.TrimSpace(raw))
	if err != nil {
		return fmt.Errorf("bootconfig: %s: %w", EnvAPIEnabledFromConf, err)
	}
	cfg.APIEnabledFromConf = enabled
	return nil
}

// Clone returns a copy that shares no slices with c.
func (c Config) Clone() Config {
	out := c
	if c.SalesDocTypes != nil {
		out.SalesDocTypes = append([]string{}, c.SalesDocTypes...)
	}
	if c.IndiaStateOptions != nil {
		out.IndiaStateOptions = append([]string{}, c.IndiaStateOptions...)
	}
	return out
}

func (c *Config) normalise() error {
	c.SalesDocTypes = trimList(c.SalesDocTypes)

	states := trimList(c.IndiaStateOptions)
	seen := make(map[string]struct{}, len(states))
	for _, state := range states {
		if _, ok := seen[state]; ok {
			return fmt.Errorf("bootconfig: duplicate state option %q", state)
		}
		seen[state] = struct{}{}
	}
	c.IndiaStateOptions = states
	return nil
}

func trimList(values []string) []string {
	if values == nil {
		return nil
	}
	out := make([]string, 0, len(values))
	for _, value := range values {
		value = strings.TrimSpace(value)
		if value == "" {
			continue
		}
		out = append(out, value)
	}
	return out
}
