// Package config resolves runtime settings from defaults, an optional
// mintask.yaml in the working directory and MINTASK_* environment variables.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/viper"
)

const (
	FileName  = "mintask"
	EnvPrefix = "MINTASK"

	KeyAppName   = "app_name"
	KeyDataDir   = "data_dir"
	KeyBackend   = "backend"
	KeyLogLevel  = "log_level"
	KeyLoadPause = "load_pause"
	KeySavePause = "save_pause"
)

type Config struct {
	AppName   string
	DataDir   string
	Backend   string
	LogLevel  log.Level
	LoadPause time.Duration
	SavePause time.Duration
}

func Default() Config {
	return Config{
		AppName:   "The Minimalist Tasker",
		DataDir:   "users",
		Backend:   "csv",
		LogLevel:  log.WarnLevel,
		LoadPause: 2 * time.Second,
		SavePause: time.Second,
	}
}

// Load reads configuration with dirs searched for mintask.yaml in order. A
// missing file is not an error.
func Load(dirs ...string) (Config, error) {
	def := Default()
	v := viper.New()
	v.SetDefault(KeyAppName, def.AppName)
	v.SetDefault(KeyDataDir, def.DataDir)
	v.SetDefault(KeyBackend, def.Backend)
	v.SetDefault(KeyLogLevel, def.LogLevel.String())
	v.SetDefault(KeyLoadPause, def.LoadPause)
	v.SetDefault(KeySavePause, def.SavePause)

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	v.SetConfigName(FileName)
	v.SetConfigType("yaml")
	for _, dir := range dirs {
		v.AddConfigPath(dir)
	}
	if len(dirs) > 0 {
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return Config{}, fmt.Errorf("read config: %w", err)
			}
		}
	}

	level, err := log.ParseLevel(strings.ToLower(strings.TrimSpace(v.GetString(KeyLogLevel))))
	if err != nil {
		return Config{}, fmt.Errorf("config: %s: %w", KeyLogLevel, err)
	}
	cfg := Config{
		AppName:   strings.TrimSpace(v.GetString(KeyAppName)),
		DataDir:   strings.TrimSpace(v.GetString(KeyDataDir)),
		Backend:   strings.ToLower(strings.TrimSpace(v.GetString(KeyBackend))),
		LogLevel:  level,
		LoadPause: v.GetDuration(KeyLoadPause),
		SavePause: v.GetDuration(KeySavePause),
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.AppName == "" {
		return errors.New("config: app_name is required")
	}
	if c.DataDir == "" {
		return errors.New("config: data_dir is required")
	}
	switch c.Backend {
	case "csv", "sqlite":
	default:
		return fmt.Errorf("config: unsupported backend %q", c.Backend)
	}
	if c.LoadPause < 0 || c.SavePause < 0 {
		return errors.New("config: pauses must not be negative")
	}
	return nil
}
