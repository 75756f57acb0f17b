// Package cli holds the shared wiring used by the wayfarer commands:
// configuration loading, logger setup and planner construction.
package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/aretw0/wayfarer/internal/adapters/llm"
)

// DefaultConfigPath is tried when no --config flag is given.
const DefaultConfigPath = "wayfarer.yaml"

// Duration accepts "30s" style values in YAML and JSON config files.
type Duration time.Duration

func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", s, err)
	}
	*d = Duration(parsed)
	return nil
}

func (d *Duration) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", s, err)
	}
	*d = Duration(parsed)
	return nil
}

// CacheConfig configures the optional Redis read-through cache in front
// of the catalog. An empty address disables it.
type CacheConfig struct {
	Address  string   `yaml:"address" json:"address"`
	Password string   `yaml:"password" json:"password"`
	DB       int      `yaml:"db" json:"db"`
	TTL      Duration `yaml:"ttl" json:"ttl"`
}

// ComposerConfig configures the optional LLM itinerary composer. An
// empty provider disables it and the template fallback is used.
type ComposerConfig struct {
	Provider    string   `yaml:"provider" json:"provider"`
	Model       string   `yaml:"model" json:"model"`
	APIKey      string   `yaml:"api_key" json:"api_key"`
	BaseURL     string   `yaml:"base_url" json:"base_url"`
	Temperature float64  `yaml:"temperature" json:"temperature"`
	MaxTokens   int      `yaml:"max_tokens" json:"max_tokens"`
	MaxAttempts int      `yaml:"max_attempts" json:"max_attempts"`
	Backoff     Duration `yaml:"backoff" json:"backoff"`
}

// LogConfig configures the application logger.
type LogConfig struct {
	Level string `yaml:"level" json:"level"`
	JSON  bool   `yaml:"json" json:"json"`
}

// Config represents the structure of wayfarer.yaml.
type Config struct {
	Catalog  string         `yaml:"catalog" json:"catalog"`
	Timeout  Duration       `yaml:"timeout" json:"timeout"`
	Cache    CacheConfig    `yaml:"cache" json:"cache"`
	Composer ComposerConfig `yaml:"composer" json:"composer"`
	Log      LogConfig      `yaml:"log" json:"log"`
}

// LoadConfig reads a configuration file (YAML or JSON). A missing file at
// the default path is not an error; the zero config is returned so flags
// and defaults take over.
func LoadConfig(path string) (Config, error) {
	var cfg Config

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && path == DefaultConfigPath {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}

	ext := strings.ToLower(filepath.Ext(path))
	if ext == ".json" {
		if err := json.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	} else {
		// Default to YAML
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	}

	cfg.Composer.APIKey = resolveAPIKey(cfg.Composer)
	return cfg, nil
}

// resolveAPIKey falls back to the provider's conventional environment
// variable so keys stay out of config files.
func resolveAPIKey(cfg ComposerConfig) string {
	if cfg.APIKey != "" {
		return cfg.APIKey
	}
	switch cfg.Provider {
	case llm.ProviderOpenAI:
		return os.Getenv("OPENAI_API_KEY")
	case llm.ProviderAnthropic:
		return os.Getenv("ANTHROPIC_API_KEY")
	case llm.ProviderGoogle:
		return os.Getenv("GOOGLE_API_KEY")
	default:
		return ""
	}
}
