package config

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/smartparking/parkwatch/internal/errors"
	"github.com/smartparking/parkwatch/internal/render"
)

// ValidColors are the accepted output.color values.
var ValidColors = []string{"auto", "always", "never"}

// ValidLogLevels are the accepted log.level values.
var ValidLogLevels = []string{"debug", "info", "warn", "error"}

// Validate checks the config for errors and returns structured error messages.
func Validate(cfg *Config) error {
	if cfg == nil {
		return errors.New(errors.ErrConfig,
			"Config is nil",
			"This is unexpected - try reloading the configuration.")
	}

	if cfg.Version > CurrentConfigVersion {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("This config is from the future (version %d, but parkwatch only knows up to %d)", cfg.Version, CurrentConfigVersion),
			"Upgrade parkwatch, or lower 'version' in your .parkwatch.yaml.")
	}

	if err := ValidateEndpoint(cfg.Endpoint); err != nil {
		return err
	}

	if cfg.Interval < MinInterval {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("Poll interval %s is too short", cfg.Interval),
			fmt.Sprintf("Use at least %s, e.g. 'interval: 3s'.", MinInterval))
	}

	if cfg.Timeout <= 0 {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("Fetch timeout must be positive, got %s", cfg.Timeout),
			"Set 'timeout' to something like 5s.")
	}

	if _, ok := render.LookupLocale(cfg.Locale); !ok {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("Unknown locale '%s'", cfg.Locale),
			fmt.Sprintf("Available locales: %s", strings.Join(render.LocaleNames(), ", ")))
	}

	if err := validateMetrics(cfg.Metrics); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig, err.Error(), "Check the 'metrics' section in your .parkwatch.yaml.")
	}

	if err := validateLog(cfg.Log); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig, err.Error(), "Check the 'log' section in your .parkwatch.yaml.")
	}

	if err := validateOutput(cfg.Output); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig, err.Error(), "Check the 'output' section in your .parkwatch.yaml.")
	}

	return nil
}

// ValidateEndpoint checks that endpoint is an absolute http(s) URL.
func ValidateEndpoint(endpoint string) error {
	if strings.TrimSpace(endpoint) == "" {
		return errors.New(errors.ErrConfig,
			"No endpoint configured",
			"Set 'endpoint' in .parkwatch.yaml, pass --endpoint, or set PARKWATCH_ENDPOINT.")
	}

	u, err := url.Parse(endpoint)
	if err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			fmt.Sprintf("Endpoint '%s' is not a valid URL", endpoint),
			"Use a full URL like http://localhost:8000/dashboard-data")
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("Endpoint '%s' must use http or https", endpoint),
			"Use a full URL like http://localhost:8000/dashboard-data")
	}
	if u.Host == "" {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("Endpoint '%s' has no host", endpoint),
			"Use a full URL like http://localhost:8000/dashboard-data")
	}
	return nil
}

func validateMetrics(metrics []render.MetricSlot) error {
	seen := make(map[string]bool, len(metrics))
	for i, m := range metrics {
		key := strings.TrimSpace(m.Key)
		if key == "" {
			return fmt.Errorf("metric at position %d has no key", i)
		}
		if seen[key] {
			return fmt.Errorf("metric '%s' is listed twice", key)
		}
		seen[key] = true
	}
	return nil
}

func validateLog(l LogConfig) error {
	if l.Level == "" || contains(ValidLogLevels, l.Level) {
		return nil
	}
	return fmt.Errorf("log level '%s' isn't valid - use one of: %s", l.Level, strings.Join(ValidLogLevels, ", "))
}

func validateOutput(out OutputConfig) error {
	if out.Color == "" || contains(ValidColors, out.Color) {
		return nil
	}
	return fmt.Errorf("color '%s' isn't valid - use one of: %s", out.Color, strings.Join(ValidColors, ", "))
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
