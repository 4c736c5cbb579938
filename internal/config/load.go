package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/phrazzld/sahayak-api/internal/generation"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable, e.g. SAHAYAK_SERVER_PORT.
const EnvPrefix = "SAHAYAK"

// Default values applied before the config file and environment.
const (
	DefaultPort        = 8080
	DefaultLogLevel    = "info"
	DefaultGeminiModel = "gemini-pro"
	DefaultImageModel  = "gpt-image-1"
	DefaultImageURL    = "https://api.openai.com/v1"
	DefaultImageSize   = "1024x1024"
)

// keys lists every setting so each can be bound to its environment variable;
// viper's Unmarshal ignores AutomaticEnv for keys it has never seen.
var keys = []string{
	"server.port",
	"server.log_level",
	"database.url",
	"auth.jwt_secret",
	"llm.gemini_api_key",
	"llm.model_name",
	"llm.base_url",
	"image.openai_api_key",
	"image.model",
	"image.base_url",
	"image.size",
}

// Load reads configuration from an optional config.yaml in the working
// directory and from SAHAYAK_ environment variables, which take precedence.
// GEMINI_API_KEY, OPENAI_API_KEY and DATABASE_URL are also honoured.
//
// A missing Gemini key or any other validation failure is reported as
// generation.ErrConfiguration.
func Load() (*Config, error) {
	return LoadFile("")
}

// LoadFile is Load with an explicit config file path.
func LoadFile(configFile string) (*Config, error) {
	v := viper.New()

	v.SetConfigType("yaml")
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
	}

	v.SetDefault("server.port", DefaultPort)
	v.SetDefault("server.log_level", DefaultLogLevel)
	v.SetDefault("llm.model_name", DefaultGeminiModel)
	v.SetDefault("image.model", DefaultImageModel)
	v.SetDefault("image.base_url", DefaultImageURL)
	v.SetDefault("image.size", DefaultImageSize)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	for _, key := range keys {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("failed to bind environment variable for %s: %w", key, err)
		}
	}

	aliases := map[string]string{
		"llm.gemini_api_key":   "GEMINI_API_KEY",
		"image.openai_api_key": "OPENAI_API_KEY",
		"database.url":         "DATABASE_URL",
	}
	for key, env := range aliases {
		prefixed := EnvPrefix + "_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
		if err := v.BindEnv(key, prefixed, env); err != nil {
			return nil, fmt.Errorf("failed to bind %s environment variable: %w", env, err)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("configuration file found but could not be read: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("%w: invalid configuration format: %v", generation.ErrConfiguration, err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks cfg against its struct tags.
func Validate(cfg *Config) error {
	validate := validator.New()
	if err := validate.Struct(cfg); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) {
			fields := make([]string, 0, len(fieldErrs))
			for _, fe := range fieldErrs {
				fields = append(fields, fmt.Sprintf("%s (%s)", fe.Namespace(), fe.Tag()))
			}
			return fmt.Errorf("%w: invalid fields: %s", generation.ErrConfiguration, strings.Join(fields, ", "))
		}
		return fmt.Errorf("%w: %v", generation.ErrConfiguration, err)
	}
	return nil
}
