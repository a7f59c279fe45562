// Package config describes the resume-analyzer configuration file and loads it through viper.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvPrefix = "RESUME_ANALYZER"
	FileName  = "resume-analyzer"
)

type Config struct {
	AI           *AIConfig     `mapstructure:"ai" validate:"required"`
	Server       *ServerConfig `mapstructure:"server" validate:"required"`
	Store        *StoreConfig  `mapstructure:"store" validate:"required"`
	DisplayLimit int           `mapstructure:"display-limit" validate:"gte=1,lte=100"`
}

type AIConfig struct {
	Provider    string        `mapstructure:"provider" validate:"omitempty,oneof=gemini"`
	Suggestions bool          `mapstructure:"suggestions"`
	Gemini      *GeminiConfig `mapstructure:"gemini" validate:"required"`
}

type GeminiConfig struct {
	APIKey         string `mapstructure:"api-key"`
	APIKeyFile     string `mapstructure:"api-key-file"`
	Model          string `mapstructure:"model" validate:"required"`
	EmbeddingModel string `mapstructure:"embedding-model" validate:"required"`
	MaxRetries     int    `mapstructure:"max-retries" validate:"gte=1,lte=10"`
	MaxLogLength   int    `mapstructure:"max-log-length" validate:"gte=0"`
}

type ServerConfig struct {
	Listen string `mapstructure:"listen" validate:"required,hostname_port"`
	// RateLimit is requests per second per client IP; 0 disables limiting.
	RateLimit   float64 `mapstructure:"rate-limit" validate:"gte=0"`
	Burst       int     `mapstructure:"burst" validate:"gte=0"`
	MaxUploadMB int64   `mapstructure:"max-upload-mb" validate:"gte=1,lte=100"`
}

// StoreConfig points at the SQLite history database. An empty path disables history.
type StoreConfig struct {
	Path string `mapstructure:"path"`
}

// SetDefaults registers the default value of every key, which also makes the
// keys visible to environment overrides.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("ai.provider", "gemini")
	v.SetDefault("ai.suggestions", true)
	v.SetDefault("ai.gemini.api-key", "")
	v.SetDefault("ai.gemini.api-key-file", "")
	v.SetDefault("ai.gemini.model", "gemini-1.5-flash")
	v.SetDefault("ai.gemini.embedding-model", "text-embedding-004")
	v.SetDefault("ai.gemini.max-retries", 3)
	v.SetDefault("ai.gemini.max-log-length", 200)

	v.SetDefault("server.listen", ":8080")
	v.SetDefault("server.rate-limit", 1.0)
	v.SetDefault("server.burst", 5)
	v.SetDefault("server.max-upload-mb", 10)

	v.SetDefault("store.path", FileName+".db")
	v.SetDefault("display-limit", 10)
}

// Init prepares v: loads an optional .env file, registers defaults, enables
// RESUME_ANALYZER_* environment overrides and reads the config file. A missing
// default config file is not an error; a missing explicit one is.
func Init(v *viper.Viper, cfgFile string) error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("loading .env: %w", err)
	}

	SetDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName(FileName)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile == "" && errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("reading config: %w", err)
	}

	return nil
}

// Load decodes and validates the configuration held by v.
func Load(v *viper.Viper) (*Config, error) {
	var cfg *Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}

	if err := Validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

var validate = validator.New()

// Validate checks value ranges and required sections.
func Validate(cfg *Config) error {
	if cfg == nil {
		return errors.New("config is required")
	}

	if err := validate.Struct(cfg); err != nil {
		var invalid validator.ValidationErrors
		if errors.As(err, &invalid) {
			fields := make([]string, 0, len(invalid))
			for _, fe := range invalid {
				fields = append(fields, fmt.Sprintf("%s (%s)", fe.Namespace(), fe.Tag()))
			}
			return fmt.Errorf("invalid config: %s", strings.Join(fields, ", "))
		}
		return fmt.Errorf("invalid config: %w", err)
	}

	return nil
}
