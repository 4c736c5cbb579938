package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/phrazzld/sahayak-api/internal/relay"
	"github.com/spf13/viper"
)

// Settings stored in the CLI config file.
const (
	keyBaseURL = "relay.base_url"
	keyAPIKey  = "relay.api_key"
)

const envPrefix = "SAHAYAK"

// cliConfig is the layout of the CLI config file.
type cliConfig struct {
	Relay relay.Config `mapstructure:"relay"`
}

// configPath returns the explicit path or the default under the user config dir.
func configPath(explicit string) (string, error) {
	if explicit != "" {
		return explicit, nil
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate user config directory: %w", err)
	}
	return filepath.Join(dir, "sahayak", "config.yaml"), nil
}

// readConfigFile loads path into a fresh viper instance. A missing file is
// not an error.
func readConfigFile(path string) (*viper.Viper, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	v.SetConfigPermissions(0o600)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.Is(err, fs.ErrNotExist) && !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	}
	return v, nil
}

// loadRelayConfig reads the relay settings from the config file, with
// SAHAYAK_RELAY_BASE_URL and SAHAYAK_RELAY_API_KEY taking precedence.
func loadRelayConfig(path string) (relay.Config, error) {
	v, err := readConfigFile(path)
	if err != nil {
		return relay.Config{}, err
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	for _, key := range []string{keyBaseURL, keyAPIKey} {
		if err := v.BindEnv(key); err != nil {
			return relay.Config{}, fmt.Errorf("failed to bind environment variable for %s: %w", key, err)
		}
	}

	var cfg cliConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return relay.Config{}, fmt.Errorf("invalid config file %s: %w", path, err)
	}
	return cfg.Relay, nil
}

// saveSetting writes key=value into the config file, keeping other settings.
func saveSetting(path, key, value string) error {
	v, err := readConfigFile(path)
	if err != nil {
		return err
	}
	v.Set(key, value)

	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("failed to write config file %s: %w", path, err)
	}
	return nil
}

// maskKey shows only enough of key to recognise it.
func maskKey(key string) string {
	if key == "" {
		return "(not set)"
	}
	if len(key) <= 8 {
		return strings.Repeat("*", len(key))
	}
	return key[:4] + strings.Repeat("*", 8) + key[len(key)-4:]
}
