package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/viper"
)

// Config holds the settings shared by every command
type Config struct {
	Grid GridConfig `yaml:"grid" mapstructure:"grid"`
	Log  LogConfig  `yaml:"log" mapstructure:"log"`
}

// GridConfig sizes the spatial grid used by the scene command
type GridConfig struct {
	CellSize float64 `yaml:"cell_size" mapstructure:"cell_size"`
	Cells    int     `yaml:"cells" mapstructure:"cells"`
}

type LogConfig struct {
	Level string `yaml:"level" mapstructure:"level"`
}

// DefaultConfig returns the settings used when no file or environment overrides them
func DefaultConfig() *Config {
	return &Config{
		Grid: GridConfig{
			CellSize: 1.0,
			Cells:    1024,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// loadConfig reads path, or $HOME/.solids.yaml when path is empty, then
// applies SOLIDS_* environment variables. A missing default file is not an error.
func loadConfig(path string) (*Config, error) {
	v := viper.New()

	defaults := DefaultConfig()
	v.SetDefault("grid.cell_size", defaults.Grid.CellSize)
	v.SetDefault("grid.cells", defaults.Grid.Cells)
	v.SetDefault("log.level", defaults.Log.Level)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
		v.SetConfigName(".solids")
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix("SOLIDS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := validateConfig(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

func validateConfig(config *Config) error {
	if config.Grid.CellSize <= 0 {
		return fmt.Errorf("grid.cell_size must be positive, got %v", config.Grid.CellSize)
	}
	if config.Grid.Cells <= 0 {
		return fmt.Errorf("grid.cells must be positive, got %d", config.Grid.Cells)
	}
	if _, err := log.ParseLevel(config.Log.Level); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}
	return nil
}

func withConfig(ctx context.Context, c *Config) context.Context {
	return context.WithValue(ctx, configKey, c)
}

// configFromContext retrieves the config from ctx, or DefaultConfig() when none is attached
func configFromContext(ctx context.Context) *Config {
	if c, ok := ctx.Value(configKey).(*Config); ok {
		return c
	}
	return DefaultConfig()
}
