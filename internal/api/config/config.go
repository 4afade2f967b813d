package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Cfg 全局可访问的配置实例
var Cfg *Config

const envPrefix = "NEWSFEED"

// LoadConfig reads configs/config.yaml (or the given search paths), applies defaults and
// NEWSFEED_* environment overrides, and stores the result in Cfg.
func LoadConfig(paths ...string) error {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	if len(paths) == 0 {
		paths = []string{"./configs"}
	}
	for _, p := range paths {
		v.AddConfigPath(p)
	}

	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return fmt.Errorf("failed to unmarshal config: %w", err)
	}

	Cfg = &cfg

	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "localhost")
	v.SetDefault("server.port", 4000)
	v.SetDefault("server.mode", "release")

	v.SetDefault("database.driver", DriverSQLite)
	v.SetDefault("database.dsn", "./posts.db")
	v.SetDefault("database.max_idle", 1)
	v.SetDefault("database.max_open", 1)
	v.SetDefault("database.max_lifetime", 0)
	v.SetDefault("database.seed", true)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
	v.SetDefault("log.file", "")

	v.SetDefault("cors.allow_origins", []string{
		"http://localhost:5173",
		"http://localhost:5174",
		"http://localhost:5175",
		"http://localhost:5176",
		"http://localhost:3000",
	})

	v.SetDefault("graphql.max_depth", 10)

	v.SetDefault("cron.post_metrics", "@daily")
}
