package config

import (
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type ServerConfig struct {
	Port string `mapstructure:"port"`
}

type SuggestConfig struct {
	// Provider is "perplexity" or "gemini". The API key is read from the
	// provider-specific env var so a misconfigured key never ends up sent
	// to the wrong host.
	Provider string `mapstructure:"provider"`
	Model    string `mapstructure:"model"`
}

type KitConfig struct {
	APIKey  string `mapstructure:"api_key"`
	FormID  string `mapstructure:"form_id"`
	BaseURL string `mapstructure:"base_url"`
}

type RetailConfig struct {
	AmazonTag string `mapstructure:"amazon_tag"`
}

type PrefsConfig struct {
	Backend   string `mapstructure:"backend"`
	RedisAddr string `mapstructure:"redis_addr"`
}

type QuizConfig struct {
	IncludeAgeStep bool `mapstructure:"include_age_step"`
}

type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	Suggest SuggestConfig `mapstructure:"suggest"`
	Kit     KitConfig     `mapstructure:"kit"`
	Retail  RetailConfig  `mapstructure:"retail"`
	Prefs   PrefsConfig   `mapstructure:"prefs"`
	Quiz    QuizConfig    `mapstructure:"quiz"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// Load reads configuration from the environment, with a .env file as a
// convenience for local development. Every key has a default; env vars use
// the flattened form, e.g. SERVER_PORT, SUGGEST_PROVIDER, PREFS_BACKEND.
func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	applyDefaults(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

func applyDefaults(v *viper.Viper) {
	v.SetDefault("server.port", "8080")
	v.SetDefault("suggest.provider", "perplexity")
	v.SetDefault("suggest.model", "")
	v.SetDefault("kit.api_key", "")
	v.SetDefault("kit.form_id", "")
	v.SetDefault("kit.base_url", "https://api.convertkit.com")
	v.SetDefault("retail.amazon_tag", "aanthony08-21")
	v.SetDefault("prefs.backend", "memory")
	v.SetDefault("prefs.redis_addr", "localhost:6379")
	v.SetDefault("quiz.include_age_step", false)
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")
}

func validate(cfg *Config) error {
	switch cfg.Suggest.Provider {
	case "perplexity", "gemini":
	default:
		return fmt.Errorf("suggest.provider must be 'perplexity' or 'gemini', got %q", cfg.Suggest.Provider)
	}

	switch cfg.Prefs.Backend {
	case "memory":
	case "redis":
		if cfg.Prefs.RedisAddr == "" {
			return fmt.Errorf("prefs.redis_addr is required for the redis backend")
		}
	default:
		return fmt.Errorf("prefs.backend must be 'memory' or 'redis', got %q", cfg.Prefs.Backend)
	}

	return nil
}
