package config

import (
	"github.com/spf13/viper"
)

// ViperConfig reads keys from a config file (yaml, toml, json, ...) with environment
// variables taking precedence.
type ViperConfig struct {
	getters
	v *viper.Viper
}

func NewViperConfig(v *viper.Viper) *ViperConfig {
	if v == nil {
		v = viper.New()
	}

	v.AutomaticEnv()

	return &ViperConfig{getters: getters{lookup: v.GetString}, v: v}
}

func (c *ViperConfig) LoadFromPath(path string) error {
	c.v.SetConfigFile(path)
	return c.v.ReadInConfig()
}

func (c *ViperConfig) Load() error {
	if c.v.ConfigFileUsed() == "" {
		return nil
	}

	return c.v.ReadInConfig()
}

func (c *ViperConfig) Viper() *viper.Viper {
	return c.v
}
