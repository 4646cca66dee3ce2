package cli

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/smartparking/parkwatch/internal/config"
	"github.com/smartparking/parkwatch/internal/monitor"
	"github.com/smartparking/parkwatch/internal/poller"
	"github.com/smartparking/parkwatch/internal/ui"
	"github.com/spf13/cobra"
)

var watchFlags WatchFlags

// watchCmd starts the live dashboard
var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Live parking dashboard",
	Long: `Poll the snapshot endpoint and show the dashboard until interrupted.

The first fetch starts immediately, then one every interval (default 3s).
On a terminal this opens the interactive dashboard; when output is piped,
or with --plain, every fetch is printed as plain text instead.

Examples:
  parkwatch watch
  parkwatch watch --interval 5s --locale it
  parkwatch watch --plain | tee parking.log`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return watchCommand(cmd, watchFlags)
	},
}

func init() {
	AddWatchFlags(watchCmd, &watchFlags)
	rootCmd.AddCommand(watchCmd)
}

// watchCommand resolves settings and runs the dashboard or the plain printer.
func watchCommand(cmd *cobra.Command, flags WatchFlags) error {
	interactive := !flags.Plain && ui.IsTerminal(os.Stdout) && ui.IsTerminal(os.Stdin)

	a, err := newApp(globalFlags, interactive, func(cfg *config.Config) error {
		return flags.Apply(cfg)
	})
	if err != nil {
		return err
	}
	defer a.Close()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if interactive {
		return runDashboard(ctx, a)
	}
	return runPlain(ctx, a, cmd.OutOrStdout())
}

// runDashboard drives the TUI. Poll outcomes reach the program through a
// Bridge; the "r" key triggers an extra fetch.
func runDashboard(ctx context.Context, a *app) error {
	var p *poller.Poller

	model := monitor.NewModel(monitor.Options{
		Endpoint: a.cfg.Endpoint,
		Interval: a.cfg.Interval,
		Locale:   a.locale,
		Metrics:  a.cfg.Metrics,
		Refresh:  func() { p.Trigger() },
		Renderer: a.renderer,
	})

	program := tea.NewProgram(model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(ctx),
	)
	p = poller.New(a.client, monitor.NewBridge(program).Handler(), a.pollerOptions()...)

	if err := p.Start(ctx); err != nil {
		return err
	}
	a.log.Info("dashboard started for %s", a.cfg.Endpoint)

	_, err := program.Run()
	p.Stop()

	if ctx.Err() != nil {
		// Interrupted by a signal; not a failure.
		return nil
	}
	return err
}

// runPlain prints every outcome to w until ctx is cancelled.
func runPlain(ctx context.Context, a *app, w io.Writer, opts ...poller.Option) error {
	printer := monitor.NewPlainPrinter(w, a.renderer, a.cfg.Metrics)
	p := poller.New(a.client, printer.Handle, a.pollerOptions(opts...)...)

	if err := p.Start(ctx); err != nil {
		return err
	}
	a.log.Info("plain output started for %s", a.cfg.Endpoint)

	<-ctx.Done()
	p.Stop()
	return nil
}
