package cli

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/smartparking/parkwatch/internal/config"
	"github.com/smartparking/parkwatch/internal/errors"
	"github.com/smartparking/parkwatch/internal/logger"
	"github.com/smartparking/parkwatch/internal/poller"
	"github.com/smartparking/parkwatch/internal/render"
	"github.com/smartparking/parkwatch/internal/snapshot"
)

// app is everything a fetching command needs, resolved from config and flags.
type app struct {
	cfg      *config.Config
	path     string
	log      logger.Logger
	locale   render.Locale
	renderer *render.Renderer
	client   *snapshot.Client
	closer   io.Closer
}

// newApp loads the config, applies flag overrides, validates the result and
// sets up logging and color. interactive is set when the dashboard will own
// the terminal. Callers must Close the app.
func newApp(globals GlobalFlags, interactive bool, apply func(*config.Config) error) (*app, error) {
	cfg, path, err := config.LoadOrDefault(globals.ConfigPath)
	if err != nil {
		return nil, err
	}
	if apply != nil {
		if err := apply(cfg); err != nil {
			return nil, err
		}
	}
	if err := config.Validate(cfg); err != nil {
		return nil, err
	}

	applyColor(globals.NoColor, cfg.Output.Color)

	log, closer, err := openLogger(globals, cfg.Log, interactive)
	if err != nil {
		return nil, err
	}
	logger.SetDefault(log)
	if path != "" {
		log.Debug("loaded config from %s", path)
	}

	locale := render.LocaleOrDefault(cfg.Locale)
	return &app{
		cfg:      cfg,
		path:     path,
		log:      log,
		locale:   locale,
		renderer: render.New(locale),
		client: snapshot.NewClient(cfg.Endpoint,
			snapshot.WithTimeout(cfg.Timeout),
			snapshot.WithUserAgent("parkwatch/"+version),
			snapshot.WithClientLogger(log),
		),
		closer: closer,
	}, nil
}

// Close releases the log file, if any.
func (a *app) Close() {
	logger.SetDefault(logger.Noop())
	if a.closer != nil {
		a.closer.Close()
	}
}

// pollerOptions are the poller settings the config asks for.
func (a *app) pollerOptions(extra ...poller.Option) []poller.Option {
	opts := []poller.Option{
		poller.WithInterval(a.cfg.Interval),
		poller.WithDiscardStale(a.cfg.DiscardStale),
		poller.WithLogger(a.log),
	}
	return append(opts, extra...)
}

// applyColor sets the lipgloss color profile for the output.color setting.
// "auto" leaves terminal detection (and NO_COLOR) to lipgloss.
func applyColor(noColor bool, mode string) {
	switch {
	case noColor || mode == "never":
		lipgloss.SetColorProfile(termenv.Ascii)
	case mode == "always":
		lipgloss.SetColorProfile(termenv.TrueColor)
	}
}

// openLogger returns a file logger when --log-file or log.file is set, a
// stderr debug logger with --debug outside the dashboard, and a no-op
// logger otherwise.
func openLogger(globals GlobalFlags, cfg config.LogConfig, interactive bool) (logger.Logger, io.Closer, error) {
	level := cfg.Level
	if globals.Debug {
		level = "debug"
	}

	path := cfg.File
	if globals.LogFile != "" {
		path = config.ExpandTilde(globals.LogFile)
	}

	if path != "" {
		l, closer, err := logger.OpenFile(path, "parkwatch", level)
		if err != nil {
			return nil, nil, errors.WrapWithCode(err, errors.ErrConfig,
				"Can't open log file "+path,
				"Check the directory exists and is writable, or drop --log-file")
		}
		return l, closer, nil
	}

	if globals.Debug && !interactive {
		return logger.New(os.Stderr, "parkwatch", true), nil, nil
	}
	return logger.Noop(), nil, nil
}
