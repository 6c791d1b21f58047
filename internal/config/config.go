package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	App      App      `mapstructure:"app"`
	Analysis Analysis `mapstructure:"analysis"`
	Cache    Cache    `mapstructure:"cache"`
	Refine   Refine   `mapstructure:"refine"`
}

// App holds general application configuration.
type App struct {
	Debug    bool   `mapstructure:"debug"`
	LogLevel string `mapstructure:"log_level"`
	DataDir  string `mapstructure:"data_dir"`
}

// Analysis holds pipeline configuration.
type Analysis struct {
	Level           string  `mapstructure:"level"`             // basic, smart, advanced
	TripContext     string  `mapstructure:"trip_context"`      // travel, daily, outing, mixed
	POIRadiusMeters float64 `mapstructure:"poi_radius_meters"` // hotspot search radius
	POILimit        int     `mapstructure:"poi_limit"`         // results per category
}

// Cache holds adapter-result cache configuration.
type Cache struct {
	Enabled bool   `mapstructure:"enabled"`
	TTL     string `mapstructure:"ttl"` // duration string, e.g. "168h"
}

// TTLDuration parses the TTL, defaulting to seven days.
func (c Cache) TTLDuration() time.Duration {
	d, err := time.ParseDuration(c.TTL)
	if err != nil || d <= 0 {
		return 7 * 24 * time.Hour
	}
	return d
}

// Refine holds optional Gemini refinement configuration.
type Refine struct {
	Enabled bool   `mapstructure:"enabled"`
	APIKey  string `mapstructure:"api_key"`
	Model   string `mapstructure:"model"`
}

// Load reads configuration from .env, an optional config file and the
// environment. Precedence: env > file > defaults.
func Load(cfgFile string) (*Config, error) {
	_ = godotenv.Load()

	setDefaults()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
			viper.AddConfigPath(".")
			viper.SetConfigName(".tripweaver")
			viper.SetConfigType("yaml")
		}
	}

	viper.SetEnvPrefix("TRIPWEAVER")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		// A missing config file is fine; anything else is not.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok && cfgFile != "" {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse configuration: %w", err)
	}
	return &cfg, nil
}

func setDefaults() {
	home, _ := os.UserHomeDir()

	viper.SetDefault("app.debug", false)
	viper.SetDefault("app.log_level", "info")
	viper.SetDefault("app.data_dir", filepath.Join(home, ".tripweaver"))

	viper.SetDefault("analysis.level", "smart")
	viper.SetDefault("analysis.trip_context", "travel")
	viper.SetDefault("analysis.poi_radius_meters", 500.0)
	viper.SetDefault("analysis.poi_limit", 5)

	viper.SetDefault("cache.enabled", true)
	viper.SetDefault("cache.ttl", "168h")

	viper.SetDefault("refine.enabled", false)
	viper.SetDefault("refine.model", "gemini-1.5-flash")
}
