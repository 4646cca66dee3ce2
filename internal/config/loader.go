package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/go-viper/mapstructure/v2"
	"github.com/smartparking/parkwatch/internal/errors"
	"github.com/smartparking/parkwatch/internal/render"
	"github.com/spf13/viper"
)

const (
	// ConfigFileName is the default config file name.
	ConfigFileName = ".parkwatch.yaml"
	// GlobalConfigDir is the directory for global config.
	GlobalConfigDir = ".config/parkwatch"
	// GlobalConfigFile is the global config file name.
	GlobalConfigFile = "config.yaml"
	// EnvPrefix prefixes environment overrides, e.g. PARKWATCH_ENDPOINT.
	EnvPrefix = "PARKWATCH"
)

// Load reads config from the specified path. An empty path yields the
// defaults with environment overrides applied.
func Load(path string) (*Config, error) {
	v := newViper()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			if os.IsNotExist(err) {
				return nil, errors.WrapWithCode(err, errors.ErrConfig,
					"Config file not found",
					"Run 'parkwatch init' to create a config file, or specify one with --config")
			}
			return nil, errors.WrapWithCode(err, errors.ErrConfig,
				"Failed to read config file",
				"Check the file exists and is valid YAML")
		}
	}

	return parseConfig(v, path)
}

// Find locates the config file using the search order:
// 1. Explicit path (from --config flag)
// 2. .parkwatch.yaml in current directory
// 3. ~/.config/parkwatch/config.yaml (global defaults)
//
// Returns the path to the config file, or empty string if not found.
func Find(explicit string) (string, error) {
	// 1. Explicit path takes precedence
	if explicit != "" {
		if _, err := os.Stat(explicit); err != nil {
			if os.IsNotExist(err) {
				return "", errors.WrapWithCode(err, errors.ErrConfig,
					"Specified config file not found: "+explicit,
					"Check the path is correct")
			}
			return "", errors.WrapWithCode(err, errors.ErrConfig,
				"Cannot access config file: "+explicit,
				"Check file permissions")
		}
		return explicit, nil
	}

	// 2. Current directory
	cwd, err := os.Getwd()
	if err != nil {
		return "", errors.WrapWithCode(err, errors.ErrConfig,
			"Cannot determine current directory",
			"Check directory permissions")
	}

	localConfig := filepath.Join(cwd, ConfigFileName)
	if _, err := os.Stat(localConfig); err == nil {
		return localConfig, nil
	}

	// 3. Global config
	if global := GlobalPath(); global != "" {
		if _, err := os.Stat(global); err == nil {
			return global, nil
		}
	}

	return "", nil
}

// GlobalPath returns ~/.config/parkwatch/config.yaml, or "" when the home
// directory is unknown.
func GlobalPath() string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return ""
	}
	return filepath.Join(home, GlobalConfigDir, GlobalConfigFile)
}

// LoadOrDefault finds and loads the config. When no file exists it returns
// the defaults with environment overrides.
func LoadOrDefault(explicit string) (*Config, string, error) {
	path, err := Find(explicit)
	if err != nil {
		return nil, "", err
	}
	cfg, err := Load(path)
	if err != nil {
		return nil, "", err
	}
	return cfg, path, nil
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)
	return v
}

// parseConfig converts viper config to our Config struct with defaults merged in.
func parseConfig(v *viper.Viper, path string) (*Config, error) {
	cfg := DefaultConfig()
	// mapstructure reuses a non-nil slice element by element, which would
	// leave default cards behind a shorter configured list.
	cfg.Metrics = nil

	hook := viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		millisecondsHook,
		metricSlotHook,
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
	))
	if err := v.Unmarshal(cfg, hook); err != nil {
		where := "your config"
		if path != "" {
			where = path
		}
		return nil, errors.WrapWithCode(err, errors.ErrConfig,
			"Invalid config format",
			"Check the YAML syntax in "+where)
	}

	if len(cfg.Metrics) == 0 {
		cfg.Metrics = DefaultMetrics()
	}
	cfg.Endpoint = strings.TrimSpace(os.ExpandEnv(cfg.Endpoint))
	cfg.Log.File = ExpandTilde(os.ExpandEnv(cfg.Log.File))

	return cfg, nil
}

// setDefaults registers every scalar key so environment overrides apply
// even when the file omits it.
func setDefaults(v *viper.Viper) {
	v.SetDefault("version", CurrentConfigVersion)
	v.SetDefault("endpoint", DefaultEndpoint)
	v.SetDefault("interval", DefaultInterval.String())
	v.SetDefault("timeout", DefaultTimeout.String())
	v.SetDefault("locale", DefaultLocale)
	v.SetDefault("discard_stale", false)
	v.SetDefault("log.file", "")
	v.SetDefault("log.level", "info")
	v.SetDefault("output.color", "auto")
}

var (
	durationType   = reflect.TypeOf(time.Duration(0))
	metricSlotType = reflect.TypeOf(render.MetricSlot{})
)

// millisecondsHook reads bare numbers as milliseconds, so "interval: 3000"
// means three seconds.
func millisecondsHook(f reflect.Type, t reflect.Type, data interface{}) (interface{}, error) {
	if t != durationType {
		return data, nil
	}
	switch n := data.(type) {
	case int:
		return time.Duration(n) * time.Millisecond, nil
	case int64:
		return time.Duration(n) * time.Millisecond, nil
	case uint64:
		return time.Duration(n) * time.Millisecond, nil
	case float64:
		return time.Duration(n * float64(time.Millisecond)), nil
	case string:
		if ms, err := strconv.ParseInt(strings.TrimSpace(n), 10, 64); err == nil {
			return time.Duration(ms) * time.Millisecond, nil
		}
	}
	return data, nil
}

// metricSlotHook accepts a bare key as shorthand for {key: k}.
func metricSlotHook(f reflect.Type, t reflect.Type, data interface{}) (interface{}, error) {
	if t != metricSlotType || f.Kind() != reflect.String {
		return data, nil
	}
	return render.MetricSlot{Key: reflect.ValueOf(data).String()}, nil
}

// ExpandTilde replaces ~ or ~/path with the user's home directory.
// Does not support ~username syntax - just ~ for the current user.
func ExpandTilde(path string) string {
	if path == "" {
		return path
	}

	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}

	if path == "~" {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return home
	}

	return path
}
