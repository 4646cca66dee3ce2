package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/smartparking/parkwatch/internal/config"
	"github.com/smartparking/parkwatch/internal/errors"
	"github.com/spf13/cobra"
)

// GlobalFlags holds the flags available to every command.
type GlobalFlags struct {
	ConfigPath string
	NoColor    bool
	LogFile    string
	Debug      bool
}

// SourceFlags select and read the snapshot endpoint.
type SourceFlags struct {
	Endpoint string
	Locale   string
	Timeout  string
}

// WatchFlags configure the live dashboard.
type WatchFlags struct {
	SourceFlags
	Interval     string
	DiscardStale bool
	Plain        bool
}

// AddGlobalFlags registers --config, --no-color, --log-file and --debug.
func AddGlobalFlags(cmd *cobra.Command, flags *GlobalFlags) {
	cmd.PersistentFlags().StringVar(&flags.ConfigPath, "config", "", "config file (default .parkwatch.yaml, then ~/.config/parkwatch/config.yaml)")
	cmd.PersistentFlags().BoolVar(&flags.NoColor, "no-color", false, "disable colored output")
	cmd.PersistentFlags().StringVar(&flags.LogFile, "log-file", "", "append structured logs to this file")
	cmd.PersistentFlags().BoolVar(&flags.Debug, "debug", false, "log debug messages")
}

// AddSourceFlags registers --endpoint, --locale and --timeout on a command.
func AddSourceFlags(cmd *cobra.Command, flags *SourceFlags) {
	cmd.Flags().StringVar(&flags.Endpoint, "endpoint", "", "snapshot endpoint URL")
	cmd.Flags().StringVar(&flags.Locale, "locale", "", "display locale (en, it)")
	cmd.Flags().StringVar(&flags.Timeout, "timeout", "", "per-fetch timeout (e.g., 5s, 1500ms)")
}

// AddWatchFlags registers the source flags plus --interval, --discard-stale
// and --plain.
func AddWatchFlags(cmd *cobra.Command, flags *WatchFlags) {
	AddSourceFlags(cmd, &flags.SourceFlags)
	cmd.Flags().StringVar(&flags.Interval, "interval", "", "time between fetches (e.g., 3s, 3000)")
	cmd.Flags().BoolVar(&flags.DiscardStale, "discard-stale", false, "drop responses that arrive after a newer one")
	cmd.Flags().BoolVar(&flags.Plain, "plain", false, "print plain text instead of the interactive dashboard")
}

// Apply overrides cfg with every flag that was set.
func (f SourceFlags) Apply(cfg *config.Config) error {
	if f.Endpoint != "" {
		cfg.Endpoint = strings.TrimSpace(f.Endpoint)
	}
	if f.Locale != "" {
		cfg.Locale = f.Locale
	}
	if f.Timeout != "" {
		d, err := ParseDuration("timeout", f.Timeout)
		if err != nil {
			return err
		}
		cfg.Timeout = d
	}
	return nil
}

// Apply overrides cfg with every flag that was set.
func (f WatchFlags) Apply(cfg *config.Config) error {
	if err := f.SourceFlags.Apply(cfg); err != nil {
		return err
	}
	if f.Interval != "" {
		d, err := ParseDuration("interval", f.Interval)
		if err != nil {
			return err
		}
		cfg.Interval = d
	}
	if f.DiscardStale {
		cfg.DiscardStale = true
	}
	return nil
}

// ParseDuration parses a duration flag. A bare number is milliseconds,
// matching the config file.
func ParseDuration(name, flag string) (time.Duration, error) {
	flag = strings.TrimSpace(flag)
	if ms, err := strconv.ParseInt(flag, 10, 64); err == nil {
		if ms <= 0 {
			return 0, errors.New(errors.ErrConfig,
				fmt.Sprintf("--%s must be positive, got %s", name, flag),
				"Try something like 3s, 1500ms or 3000.")
		}
		return time.Duration(ms) * time.Millisecond, nil
	}

	d, err := time.ParseDuration(flag)
	if err != nil {
		return 0, errors.WrapWithCode(err, errors.ErrConfig,
			fmt.Sprintf("'%s' doesn't look like a valid %s", flag, name),
			"Try something like 3s, 1500ms or 3000.")
	}
	if d <= 0 {
		return 0, errors.New(errors.ErrConfig,
			fmt.Sprintf("--%s must be positive, got %s", name, flag),
			"Try something like 3s, 1500ms or 3000.")
	}
	return d, nil
}
