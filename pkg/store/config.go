package store

import (
	"errors"
	"fmt"
	"os"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// Config supplies the profile store location and the defaults used when no
// profile is given.
type Config interface {
	BasePath() string
	Defaults() Defaults
}

// Defaults are the picker settings read from the config file or environment.
type Defaults struct {
	Months      int    `json:"months"`
	Mode        string `json:"mode"`
	Orientation string `json:"orientation"`
	WeekStart   string `json:"weekStart"`
}

// LoadConfig reads .datepick.yaml from $DATEPICK_CONFIG_PATH or the working
// directory, overlaid with DATEPICK_* environment variables. A missing file
// is not an error.
func LoadConfig() (Config, error) {
	v := viper.New()
	v.SetDefault("path", "~/.datepick")
	v.SetDefault("months", 1)
	v.SetDefault("mode", "single")
	v.SetDefault("orientation", "horizontal")
	v.SetDefault("week_start", "sunday")
	v.SetConfigName(".datepick") // .yaml is implicit
	v.SetEnvPrefix("DATEPICK")
	v.AutomaticEnv()

	if override := os.Getenv("DATEPICK_CONFIG_PATH"); override != "" {
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
		return nil, fmt.Errorf("store: expand path %q: %w", v.GetString("path"), err)
	}

	return &fileConfig{
		Path: path,
		Defs: Defaults{
			Months:      v.GetInt("months"),
			Mode:        v.GetString("mode"),
			Orientation: v.GetString("orientation"),
			WeekStart:   v.GetString("week_start"),
		},
	}, nil
}

type fileConfig struct {
	Path string   `json:"path"`
	Defs Defaults `json:"defaults"`
}

func (f *fileConfig) BasePath() string {
	return f.Path
}

func (f *fileConfig) Defaults() Defaults {
	return f.Defs
}
