package config

import (
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Server ServerConfig
	DB     DBConfig
	Upload UploadConfig
	GM     GMConfig
	Round  RoundConfig
}

type ServerConfig struct {
	Address string
}

type DBConfig struct {
	Path string
}

type UploadConfig struct {
	Dir string
}

type GMConfig struct {
	Password      string
	TokenSecret   string
	TokenTTLHours int
}

type RoundConfig struct {
	DefaultMinutes int
}

// Load reads config.yaml if present and applies CITYHUNT_* environment
// overrides (e.g. CITYHUNT_GM_PASSWORD) on top of the defaults.
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./pkg/config")
	viper.AddConfigPath(".")

	viper.SetDefault("server.address", ":3000")
	viper.SetDefault("db.path", "game.db")
	viper.SetDefault("upload.dir", "uploads")
	viper.SetDefault("gm.password", "AR1898")
	viper.SetDefault("gm.tokensecret", "change-me-in-production")
	viper.SetDefault("gm.tokenttlhours", 24)
	viper.SetDefault("round.defaultminutes", 75)

	viper.SetEnvPrefix("cityhunt")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		// Running on defaults and env alone is fine.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, err
	}

	return &config, nil
}
