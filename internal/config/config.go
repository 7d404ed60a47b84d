// Package config reads application settings from the environment, with
// an optional .env file for development.
package config

import "github.com/spf13/viper"

var cfg = func() *viper.Viper {
	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	_ = v.ReadInConfig() // a missing .env file is fine
	v.AutomaticEnv()
	return v
}()

// Get ...
func Get(key string) string {
	return cfg.GetString(key)
}

// GetOrDefault ...
func GetOrDefault(key, def string) string {
	if env := cfg.GetString(key); env != "" {
		return env
	}
	return def
}
