package catalog

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config carries the analysis defaults loadable from a YAML file.
type Config struct {
	CatalogPath string `mapstructure:"catalog_path"`
	TopYears    int    `mapstructure:"top_years"`
	SampleSize  int    `mapstructure:"sample_size"`
	SampleSeed  int64  `mapstructure:"sample_seed"`
}

func DefaultConfig() Config {
	return Config{
		TopYears:   5,
		SampleSize: 20,
		SampleSeed: 42,
	}
}

func LoadConfig(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)

	defaults := DefaultConfig()
	v.SetDefault("top_years", defaults.TopYears)
	v.SetDefault("sample_size", defaults.SampleSize)
	v.SetDefault("sample_seed", defaults.SampleSeed)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse catalog config: %w", err)
	}
	return &cfg, nil
}
