package store

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"

	"tableflip.dev/oneframe/pkg/calendar"
)

// Driver selects the persistence backend.
type Driver string

const (
	// DriverDiskv stores one JSON file per entry.
	DriverDiskv Driver = "diskv"
	// DriverSQLite stores entries in a single SQLite database.
	DriverSQLite Driver = "sqlite"
)

// Config is the resolved runtime configuration.
type Config interface {
	BasePath() string
	Driver() Driver
	Locale() calendar.Locale
	LogLevel() string
}

// LoadConfig reads .oneframe.yaml (optional), ONEFRAME_* environment
// variables and defaults.
func LoadConfig() (Config, error) {
	v := viper.New()
	v.SetDefault("path", "~/.oneframe")
	v.SetDefault("driver", string(DriverDiskv))
	v.SetDefault("locale", string(calendar.LocaleEnglish))
	v.SetDefault("log.level", "info")
	v.SetConfigName(".oneframe") // .yaml is implicit
	v.SetEnvPrefix("ONEFRAME")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if override := os.Getenv("ONEFRAME_CONFIG_PATH"); override != "" {
		v.AddConfigPath(override)
	}
	v.AddConfigPath("./")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("store: read config: %w", err)
		}
	}

	path, err := homedir.Expand(v.GetString("path"))
	if err != nil {
		return nil, fmt.Errorf("store: expand path: %w", err)
	}
	driver, err := ParseDriver(v.GetString("driver"))
	if err != nil {
		return nil, err
	}
	locale, err := calendar.ParseLocale(v.GetString("locale"))
	if err != nil {
		return nil, err
	}
	return StaticConfig{
		Path:  path,
		Kind:  driver,
		Lang:  locale,
		Level: v.GetString("log.level"),
	}, nil
}

// ParseDriver validates a driver name.
func ParseDriver(raw string) (Driver, error) {
	switch d := Driver(strings.ToLower(strings.TrimSpace(raw))); d {
	case "":
		return DriverDiskv, nil
	case DriverDiskv, DriverSQLite:
		return d, nil
	}
	return "", fmt.Errorf("store: unknown driver %q", raw)
}

// StaticConfig is a Config with fixed values, used by tests and callers that
// build configuration themselves.
type StaticConfig struct {
	Path  string
	Kind  Driver
	Lang  calendar.Locale
	Level string
}

func (c StaticConfig) BasePath() string        { return c.Path }
func (c StaticConfig) Driver() Driver          { return c.Kind }
func (c StaticConfig) Locale() calendar.Locale { return c.Lang }
func (c StaticConfig) LogLevel() string        { return c.Level }
