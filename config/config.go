// Package config loads the settings of the buttons demo from defaults, a
// YAML file, the environment and command line flags, in increasing order
// of precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	configName = "buttons"
	envPrefix  = "buttons"
)

type Config struct {
	LogLevel    string `mapstructure:"log_level"`
	LogFile     string `mapstructure:"log_file"`
	Theme       string `mapstructure:"theme"`
	MouseMotion bool   `mapstructure:"mouse_motion"`
}

// Defaults are the values used when nothing else sets a key.
func Defaults() map[string]any {
	return map[string]any{
		"log_level":    "info",
		"log_file":     "buttons.log",
		"theme":        "",
		"mouse_motion": true,
	}
}

// UserConfigPath returns the per-user location of buttons.yaml.
func UserConfigPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("could not get user config directory: %w", err)
	}
	return filepath.Join(dir, "buttons", configName+".yaml"), nil
}

// Load builds a T from defaults, the first buttons.yaml found in the user
// config directory or the current directory, the file at path (if not
// empty), BUTTONS_* environment variables and the flags of cmd.
func Load[T any](cmd *cobra.Command, defaults map[string]any, path string) (T, error) {
	var c T
	v := viper.New()

	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(configName)
		v.SetConfigType("yaml")
		if userConfigPath, err := UserConfigPath(); err == nil {
			v.AddConfigPath(filepath.Dir(userConfigPath))
		}
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		// Only an explicit file is required to exist.
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return c, fmt.Errorf("read config: %w", err)
		}
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if cmd != nil {
		var bindErr error
		cmd.Flags().VisitAll(func(f *pflag.Flag) {
			if err := v.BindPFlag(strings.ReplaceAll(f.Name, "-", "_"), f); err != nil && bindErr == nil {
				bindErr = err
			}
		})
		if bindErr != nil {
			return c, fmt.Errorf("bind flags: %w", bindErr)
		}
	}

	if err := v.Unmarshal(&c); err != nil {
		return c, fmt.Errorf("decode config: %w", err)
	}
	return c, nil
}
