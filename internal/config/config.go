package config

import (
	"embed"
	"fmt"
	"net/url"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"
)

//go:embed default_config.yaml
var defaultConfigFS embed.FS

// Source is one syndication endpoint the pipeline consumes.
type Source struct {
	Name    string `yaml:"name"`
	URL     string `yaml:"url"`
	Enabled bool   `yaml:"enabled"`
}

type Config struct {
	TransformEndpoint string   `yaml:"transform_endpoint"`
	ProxyEndpoint     string   `yaml:"proxy_endpoint"`
	Sources           []Source `yaml:"sources"`
}

// EnabledSources returns the sources the pipeline should fetch.
func (c *Config) EnabledSources() []Source {
	var out []Source
	for _, s := range c.Sources {
		if s.Enabled {
			out = append(out, s)
		}
	}
	return out
}

// SourceURLs returns the enabled source URLs in config order.
func (c *Config) SourceURLs() []string {
	var urls []string
	for _, s := range c.EnabledSources() {
		urls = append(urls, s.URL)
	}
	return urls
}

func DefaultConfigPath() string {
	return filepath.Join(xdg.ConfigHome, "creativelab", "config.yaml")
}

func StorePath() string {
	return filepath.Join(xdg.DataHome, "creativelab", "creativelab.db")
}

func loadDefaults() (*Config, error) {
	data, err := defaultConfigFS.ReadFile("default_config.yaml")
	if err != nil {
		return nil, fmt.Errorf("reading embedded config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded config: %w", err)
	}
	return &cfg, nil
}

// Load reads the config at path, falling back to the embedded defaults
// (which are written out on first run so users have something to edit).
func Load(path string) (*Config, error) {
	defaults, err := loadDefaults()
	if err != nil {
		return nil, err
	}

	if path == "" {
		path = DefaultConfigPath()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// Best effort; the embedded defaults work either way.
			writeDefaults(path)
			return defaults, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if cfg.TransformEndpoint == "" {
		cfg.TransformEndpoint = defaults.TransformEndpoint
	}
	if cfg.ProxyEndpoint == "" {
		cfg.ProxyEndpoint = defaults.ProxyEndpoint
	}

	if err := validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func writeDefaults(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, _ := defaultConfigFS.ReadFile("default_config.yaml")
	return os.WriteFile(path, data, 0o644)
}

func validate(cfg *Config) error {
	for _, endpoint := range []string{cfg.TransformEndpoint, cfg.ProxyEndpoint} {
		if err := checkHTTPURL(endpoint); err != nil {
			return fmt.Errorf("endpoint %q: %w", endpoint, err)
		}
	}
	for i, s := range cfg.Sources {
		if s.Name == "" {
			return fmt.Errorf("source %d: name is required", i)
		}
		if err := checkHTTPURL(s.URL); err != nil {
			return fmt.Errorf("source %q: %w", s.Name, err)
		}
	}
	return nil
}

func checkHTTPURL(raw string) error {
	if raw == "" {
		return fmt.Errorf("url is required")
	}
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("invalid url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("url scheme must be http or https, got %q", u.Scheme)
	}
	return nil
}
