package config

import "github.com/hance08/statement/internal/constants"

type Config struct {
	Storage    StorageConfig  `mapstructure:"storage"`
	Defaults   DefaultsConfig `mapstructure:"defaults"`
	Log        LogConfig      `mapstructure:"log"`
	Security   SecurityConfig `mapstructure:"security"`
	ConfigPath string         `mapstructure:"-"`
}

type StorageConfig struct {
	Driver string `mapstructure:"driver"`
	Path   string `mapstructure:"path"`
}

type DefaultsConfig struct {
	Currency string `mapstructure:"currency"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
	Path  string `mapstructure:"path"`
}

// SecurityConfig controls which operations ask for the passcode again.
// Delete always does.
type SecurityConfig struct {
	ConfirmEdit bool `mapstructure:"confirm_edit"`
}

func NewDefault() *Config {
	return &Config{
		Storage:  StorageConfig{Driver: constants.DriverFile, Path: ""},
		Defaults: DefaultsConfig{Currency: constants.DefaultCurrency},
		Log:      LogConfig{Level: "info", Path: ""},
		Security: SecurityConfig{ConfirmEdit: false},
	}
}

// Keys returns the default values keyed the way viper addresses them.
func (c *Config) Keys() map[string]any {
	return map[string]any{
		"storage.driver":        c.Storage.Driver,
		"storage.path":          c.Storage.Path,
		"defaults.currency":     c.Defaults.Currency,
		"log.level":             c.Log.Level,
		"log.path":              c.Log.Path,
		"security.confirm_edit": c.Security.ConfirmEdit,
	}
}
