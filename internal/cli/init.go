package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/smartparking/parkwatch/internal/config"
	"github.com/smartparking/parkwatch/internal/errors"
	"github.com/smartparking/parkwatch/internal/render"
	"github.com/smartparking/parkwatch/internal/ui"
	"github.com/smartparking/parkwatch/internal/util"
	"github.com/spf13/cobra"
)

var initOpts InitOptions

// initCmd creates a new .parkwatch.yaml configuration
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create .parkwatch.yaml configuration",
	Long: `Create a parkwatch config file in the current directory, or the global
one with --global.

Prompts for the endpoint, locale and interval on a terminal. When the file
already exists, --endpoint, --locale and --interval update those keys in
place and keep the rest of the file, comments included.

Examples:
  parkwatch init
  parkwatch init --endpoint http://parking.local/dashboard-data
  parkwatch init --global --locale it --force`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := initOpts
		opts.Path = globalFlags.ConfigPath
		if !ui.IsTerminal(os.Stdin) {
			opts.NonInteractive = true
		}
		return Init(opts, cmd.OutOrStdout())
	},
}

func init() {
	initCmd.Flags().StringVar(&initOpts.Endpoint, "endpoint", "", "snapshot endpoint URL")
	initCmd.Flags().StringVar(&initOpts.Locale, "locale", "", "display locale (en, it)")
	initCmd.Flags().StringVar(&initOpts.Interval, "interval", "", "time between fetches (e.g., 3s, 3000)")
	initCmd.Flags().BoolVar(&initOpts.Global, "global", false, "write ~/.config/parkwatch/config.yaml")
	initCmd.Flags().BoolVarP(&initOpts.Force, "force", "f", false, "overwrite existing config")
	initCmd.Flags().BoolVar(&initOpts.NonInteractive, "non-interactive", false, "never prompt")
	rootCmd.AddCommand(initCmd)
}

// InitOptions holds options for the init command.
type InitOptions struct {
	Endpoint       string
	Locale         string
	Interval       string
	Path           string // Explicit target file; overrides Global
	Global         bool   // Write the global config instead of ./.parkwatch.yaml
	Force          bool   // Overwrite existing config without asking
	NonInteractive bool   // Skip prompts, use flags and defaults
}

// target returns the file init writes.
func (o InitOptions) target() (string, error) {
	switch {
	case o.Path != "":
		return o.Path, nil
	case o.Global:
		path := config.GlobalPath()
		if path == "" {
			return "", errors.New(errors.ErrConfig,
				"Can't locate your home directory",
				"Pass the file to write with --config")
		}
		return path, nil
	default:
		return filepath.Join(".", config.ConfigFileName), nil
	}
}

// Init creates a new config file, or updates keys of an existing one.
func Init(opts InitOptions, out io.Writer) error {
	path, err := opts.target()
	if err != nil {
		return err
	}

	_, statErr := os.Stat(path)
	exists := statErr == nil

	if exists && !opts.Force {
		if opts.hasValues() {
			return updateConfig(path, opts, out)
		}

		if opts.NonInteractive {
			return errors.New(errors.ErrConfig,
				fmt.Sprintf("Config file already exists: %s", path),
				"Use --force to overwrite, or pass --endpoint to update it in place")
		}

		var overwrite bool
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewConfirm().
					Title(fmt.Sprintf("Config file '%s' already exists. Overwrite?", path)).
					Value(&overwrite),
			),
		)
		if err := form.Run(); err != nil {
			return errors.WrapWithCode(err, errors.ErrConfig,
				"Failed to get user input",
				"Try running with --force to overwrite")
		}
		if !overwrite {
			fmt.Fprintln(out, "Cancelled.")
			return nil
		}
	}

	cfg := config.DefaultConfig()
	if err := opts.apply(cfg); err != nil {
		return err
	}

	if !opts.NonInteractive && opts.Endpoint == "" {
		if err := promptConfig(cfg); err != nil {
			return err
		}
	}

	if err := validateForWrite(cfg); err != nil {
		return err
	}
	if err := config.WriteFile(path, cfg, true); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to write "+path,
			"Check directory permissions")
	}

	fmt.Fprintf(out, "%s Created %s\n", ui.SymbolSuccess, path)
	fmt.Fprintln(out, "Run 'parkwatch' to open the dashboard.")
	return nil
}

func (o InitOptions) hasValues() bool {
	return o.Endpoint != "" || o.Locale != "" || o.Interval != ""
}

// apply copies the flag values onto cfg.
func (o InitOptions) apply(cfg *config.Config) error {
	flags := WatchFlags{
		SourceFlags: SourceFlags{Endpoint: o.Endpoint, Locale: o.Locale},
		Interval:    o.Interval,
	}
	return flags.Apply(cfg)
}

// updateConfig rewrites only the keys given on the command line.
func updateConfig(path string, opts InitOptions, out io.Writer) error {
	// Validate against a scratch config first so a bad value never reaches the file.
	scratch := config.DefaultConfig()
	if err := opts.apply(scratch); err != nil {
		return err
	}
	if err := validateForWrite(scratch); err != nil {
		return err
	}

	var updates [][2]string
	if opts.Endpoint != "" {
		updates = append(updates, [2]string{"endpoint", scratch.Endpoint})
	}
	if opts.Locale != "" {
		updates = append(updates, [2]string{"locale", scratch.Locale})
	}
	if opts.Interval != "" {
		updates = append(updates, [2]string{"interval", scratch.Interval.String()})
	}

	keys := make([]string, 0, len(updates))
	for _, u := range updates {
		if err := config.SetValue(path, u[0], u[1]); err != nil {
			return errors.WrapWithCode(err, errors.ErrConfig,
				fmt.Sprintf("Failed to update '%s' in %s", u[0], path),
				"Fix the file by hand or recreate it with --force")
		}
		keys = append(keys, u[0])
	}

	fmt.Fprintf(out, "%s Updated %s in %s\n", ui.SymbolSuccess, util.JoinOrNone(keys), path)
	return nil
}

// validateForWrite validates cfg as it will read back: ${VAR} references in
// the endpoint are expanded on load, so they are expanded here too.
func validateForWrite(cfg *config.Config) error {
	check := *cfg
	check.Endpoint = strings.TrimSpace(os.ExpandEnv(cfg.Endpoint))
	return config.Validate(&check)
}

// promptConfig asks for the endpoint, locale and interval.
func promptConfig(cfg *config.Config) error {
	interval := cfg.Interval.String()

	localeOptions := make([]huh.Option[string], 0, len(render.LocaleNames()))
	for _, name := range render.LocaleNames() {
		localeOptions = append(localeOptions, huh.NewOption(name, name))
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Snapshot endpoint").
				Description("URL of the backend's dashboard data (supports ${VAR})").
				Placeholder(config.DefaultEndpoint).
				Value(&cfg.Endpoint).
				Validate(func(s string) error {
					return config.ValidateEndpoint(strings.TrimSpace(os.ExpandEnv(s)))
				}),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Display locale").
				Options(localeOptions...).
				Value(&cfg.Locale),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Refresh interval").
				Description("Time between fetches, e.g. 3s or 3000 (milliseconds)").
				Value(&interval).
				Validate(func(s string) error {
					_, err := ParseDuration("interval", s)
					return err
				}),
		),
	)

	if err := form.Run(); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to get user input",
			"Check terminal compatibility or use --non-interactive with --endpoint")
	}

	cfg.Endpoint = strings.TrimSpace(cfg.Endpoint)
	d, err := ParseDuration("interval", interval)
	if err != nil {
		return err
	}
	cfg.Interval = d
	return nil
}
