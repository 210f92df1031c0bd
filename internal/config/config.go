package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

const (
	KeyData     = "data"
	KeyLogLevel = "log_level"
	KeyDB       = "db"

	DefaultDataPath = "resources.json"
	DefaultLogLevel = "warn"

	EnvPrefix = "RESOURCEDEX"
	appName   = "resourcedex"
)

// Config holds the resolved application settings
type Config struct {
	DataPath string
	LogLevel string
	// DBPath is the SQLite snapshot path, empty means the store default
	DBPath string
}

// DataPath returns the dataset path from RESOURCEDEX_DATA env var,
// falling back to DefaultDataPath.
func DataPath() string {
	if env := os.Getenv(EnvPrefix + "_DATA"); env != "" {
		return ExpandHome(env)
	}
	return DefaultDataPath
}

// NewViper returns a viper instance with defaults and RESOURCEDEX_* env
// bindings. Flags are bound by the caller.
func NewViper() *viper.Viper {
	v := viper.New()
	v.SetDefault(KeyData, DefaultDataPath)
	v.SetDefault(KeyLogLevel, DefaultLogLevel)
	v.SetDefault(KeyDB, "")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v
}

// ReadFile loads an explicit config file, or config.yaml from the user
// config dir when path is empty. A missing default file is not an error.
func ReadFile(v *viper.Viper, path string) error {
	if path != "" {
		v.SetConfigFile(ExpandHome(path))
		return v.ReadInConfig()
	}

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	if dir := configDir(); dir != "" {
		v.AddConfigPath(dir)
	}

	err := v.ReadInConfig()
	var notFound viper.ConfigFileNotFoundError
	if errors.As(err, &notFound) {
		return nil
	}
	return err
}

// FromViper resolves the settings held by v
func FromViper(v *viper.Viper) Config {
	cfg := Config{
		DataPath: ExpandHome(v.GetString(KeyData)),
		LogLevel: strings.ToLower(strings.TrimSpace(v.GetString(KeyLogLevel))),
		DBPath:   ExpandHome(v.GetString(KeyDB)),
	}
	if cfg.DataPath == "" {
		cfg.DataPath = DefaultDataPath
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = DefaultLogLevel
	}
	return cfg
}

// Load reads env vars and the default config file
func Load() (Config, error) {
	v := NewViper()
	if err := ReadFile(v, ""); err != nil {
		return Config{}, err
	}
	return FromViper(v), nil
}

// ExpandHome replaces a leading ~ with the user's home directory
func ExpandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[1:])
}

func configDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, appName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", appName)
}
