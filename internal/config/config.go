// Package config loads the process configuration file with viper and keeps
// it live-reloaded via fsnotify, the way the rest of the stack does it.
package config

import (
	"fmt"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// Conf is the process-wide configuration, populated by Init.
var Conf *Config

type Config struct {
	AppName    string     `mapstructure:"appName"`
	Log        LogConf    `mapstructure:"log"`
	HttpPort   int        `mapstructure:"httpPort"`
	MetricPort int        `mapstructure:"metricPort"`
	Database   Database   `mapstructure:"database"`
	Analysis   Analysis   `mapstructure:"analysis"`
}

type LogConf struct {
	Level string `mapstructure:"level"`
}

type Database struct {
	Mongo Mongo `mapstructure:"mongo"`
	Redis Redis `mapstructure:"redis"`
}

type Mongo struct {
	Url         string `mapstructure:"url"`
	Db          string `mapstructure:"db"`
	Collection  string `mapstructure:"collection"`
	MinPoolSize int    `mapstructure:"minPoolSize"`
	MaxPoolSize int    `mapstructure:"maxPoolSize"`
}

type Redis struct {
	Addr         string `mapstructure:"addr"`
	Password     string `mapstructure:"password"`
	DB           int    `mapstructure:"db"`
	PoolSize     int    `mapstructure:"poolSize"`
	MinIdleConns int    `mapstructure:"minIdleConns"`
}

// Analysis tunes the Monte-Carlo analyzer's default sample size and the
// shanten-table cache's TTL.
type Analysis struct {
	DefaultTrials   int `mapstructure:"defaultTrials"`
	ShantenCacheTTL int `mapstructure:"shantenCacheTTLSeconds"`
}

// Init reads configFile into Conf and re-unmarshals on every write.
func Init(configFile string) error {
	Conf = new(Config)
	v := viper.New()
	v.SetConfigFile(configFile)
	v.WatchConfig()
	v.OnConfigChange(func(in fsnotify.Event) {
		_ = v.Unmarshal(Conf)
	})

	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("config: read %s: %w", configFile, err)
	}
	if err := v.Unmarshal(Conf); err != nil {
		return fmt.Errorf("config: unmarshal %s: %w", configFile, err)
	}
	return nil
}
