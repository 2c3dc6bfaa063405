package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rajeshthapaliya/cross-platform-calorie-calc/internal/app"
	"github.com/rajeshthapaliya/cross-platform-calorie-calc/internal/db"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const envPrefix = "CALPRO"

type Config struct {
	DB struct {
		Driver string `mapstructure:"driver"`
		DSN    string `mapstructure:"dsn"`
	} `mapstructure:"db"`
	Log struct {
		Level string `mapstructure:"level"`
		File  string `mapstructure:"file"`
		JSON  bool   `mapstructure:"json"`
	} `mapstructure:"log"`
	Defaults struct {
		TargetKcal float64 `mapstructure:"target_kcal"`
	} `mapstructure:"defaults"`
	Export struct {
		Dir string `mapstructure:"dir"`
	} `mapstructure:"export"`
}

func (c *Config) Dialect() (db.Dialect, error) {
	return db.ParseDialect(c.DB.Driver)
}

// Load reads calpro.yaml (or the explicit path) with CALPRO_* env overrides.
// A missing config file is not an error unless path was given.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigType("yaml")
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("calpro")
		v.AddConfigPath(".")
		if dir, err := app.ConfigDir(); err == nil {
			v.AddConfigPath(dir)
		}
		v.AddConfigPath("$HOME/.calpro")
	}

	defaultDSN, err := app.DefaultDBPath()
	if err != nil {
		return nil, err
	}
	v.SetDefault("db.driver", string(db.SQLite))
	v.SetDefault("db.dsn", defaultDSN)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", "")
	v.SetDefault("log.json", false)
	v.SetDefault("defaults.target_kcal", 2000)
	v.SetDefault("export.dir", ".")

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if _, err := cfg.Dialect(); err != nil {
		return nil, err
	}
	if cfg.Defaults.TargetKcal <= 0 {
		return nil, fmt.Errorf("defaults.target_kcal must be > 0")
	}
	return &cfg, nil
}
