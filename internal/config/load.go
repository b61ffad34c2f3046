package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

const envPrefix = "RECALL"

// Load reads configuration. The config file is $RECALL_CONFIG when set
// (and must then exist), otherwise ~/.recall/config.yaml when present.
func Load() (*Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("finding home directory: %w", err)
	}
	return load(os.Getenv(envPrefix+"_CONFIG"), filepath.Join(home, ".recall"))
}

func load(explicitFile, baseDir string) (*Config, error) {
	v := viper.New()
	v.SetDefault("db_path", filepath.Join(baseDir, "recall.db"))
	v.SetDefault("users", DefaultUsers)
	v.SetDefault("log_calls", false)
	v.SetDefault("remind_schedule", DefaultRemindSchedule)
	v.SetDefault("timezone", "")

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	switch {
	case explicitFile != "":
		v.SetConfigFile(explicitFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config file %s: %w", explicitFile, err)
		}
	default:
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(baseDir)
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("reading config file: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	for i, u := range cfg.Users {
		cfg.Users[i] = strings.TrimSpace(u)
	}

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	if _, err := cfg.Location(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &cfg, nil
}
