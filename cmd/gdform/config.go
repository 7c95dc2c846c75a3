package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/pawelWritesCode/gdform/internal/logger"
)

// Config holds command line tool configuration.
type Config struct {
	Log logger.Config `mapstructure:"log"`

	// Engine selects JSON schema validator: "xeipuuv" or "qri".
	Engine string `mapstructure:"engine"`
}

// LoadConfig merges defaults, config file, GDFORM_ environment variables and flags, later ones win.
func LoadConfig(cmd *cobra.Command) (*Config, error) {
	v := viper.New()

	v.SetDefault("log.level", "warn")
	v.SetDefault("log.format", "console")
	v.SetDefault("engine", "xeipuuv")

	if configPath, _ := cmd.Flags().GetString("config"); configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	v.SetEnvPrefix("GDFORM")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	bindings := map[string]string{
		"log.level":  "log-level",
		"log.format": "log-format",
		"engine":     "engine",
	}
	for key, name := range bindings {
		if flag := cmd.Flags().Lookup(name); flag != nil {
			if err := v.BindPFlag(key, flag); err != nil {
				return nil, err
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

// setup loads configuration and builds logger writing to command error output.
func setup(cmd *cobra.Command) (*Config, *zap.Logger, error) {
	cfg, err := LoadConfig(cmd)
	if err != nil {
		return nil, nil, err
	}

	return cfg, logger.New(cfg.Log, cmd.ErrOrStderr()), nil
}
