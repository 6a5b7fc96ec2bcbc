package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all configuration for the deck generator
type Config struct {
	Input    InputConfig    `mapstructure:"input"`
	Output   OutputConfig   `mapstructure:"output"`
	Log      LogConfig      `mapstructure:"log"`
	Generate GenerateConfig `mapstructure:"generate"`
}

// InputConfig locates the lexicon dataset
type InputConfig struct {
	Path string `mapstructure:"path"`
}

// OutputConfig controls where and how decks are written
type OutputConfig struct {
	Dir    string `mapstructure:"dir"`
	Format string `mapstructure:"format"`
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level   string `mapstructure:"level"`
	Format  string `mapstructure:"format"`
	Verbose bool   `mapstructure:"verbose"`
}

// GenerateConfig selects the language and the entries that become cards
type GenerateConfig struct {
	Language        string `mapstructure:"language"`
	Neo             bool   `mapstructure:"neo"`
	IndividualNames bool   `mapstructure:"individual_names"`
	CollectiveNames bool   `mapstructure:"collective_names"`
	ProperNames     bool   `mapstructure:"proper_names"`
	Phrases         bool   `mapstructure:"phrases"`
	Archaic         bool   `mapstructure:"archaic"`
	OriginMarkers   bool   `mapstructure:"origin_markers"`
	Deprecated      bool   `mapstructure:"deprecated"`
	Filter          string `mapstructure:"filter"`
}

// Load reads configuration from file and environment variables
func Load() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	setDefaults()

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults() {
	viper.SetDefault("input.path", "input/eldamo-data.xml")

	viper.SetDefault("output.dir", "output")
	viper.SetDefault("output.format", "text")

	viper.SetDefault("log.level", "info")
	viper.SetDefault("log.format", "json")
	viper.SetDefault("log.verbose", false)

	viper.SetDefault("generate.language", "")
	viper.SetDefault("generate.neo", false)
	viper.SetDefault("generate.individual_names", false)
	viper.SetDefault("generate.collective_names", false)
	viper.SetDefault("generate.proper_names", false)
	viper.SetDefault("generate.phrases", false)
	viper.SetDefault("generate.archaic", false)
	viper.SetDefault("generate.origin_markers", false)
	viper.SetDefault("generate.deprecated", false)
	viper.SetDefault("generate.filter", "")
}
