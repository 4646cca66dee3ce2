package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/smartparking/parkwatch/internal/config"
	"github.com/smartparking/parkwatch/internal/errors"
	"github.com/smartparking/parkwatch/internal/monitor"
	"github.com/smartparking/parkwatch/internal/render"
	"github.com/smartparking/parkwatch/internal/snapshot"
	"github.com/smartparking/parkwatch/internal/ui"
	"github.com/smartparking/parkwatch/internal/util"
	"github.com/spf13/cobra"
)

var (
	onceFlags SourceFlags
	onceJSON  bool
)

// onceCmd fetches a single snapshot
var onceCmd = &cobra.Command{
	Use:   "once",
	Short: "Fetch one snapshot and print it",
	Long: `Fetch the snapshot endpoint once, render it and print the result.

Exits non-zero when the fetch fails. With --json the rendered view and
the raw snapshot are printed inside a {success, data, error} envelope.

Examples:
  parkwatch once
  parkwatch once --json | jq '.data.view.lots'
  parkwatch once --endpoint http://parking.local/dashboard-data --locale it`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return onceCommand(cmd, onceFlags, onceJSON)
	},
}

func init() {
	AddSourceFlags(onceCmd, &onceFlags)
	onceCmd.Flags().BoolVar(&onceJSON, "json", false, "print a JSON envelope")
	rootCmd.AddCommand(onceCmd)
}

// OnceResult is the data of a successful once --json run.
type OnceResult struct {
	Endpoint string             `json:"endpoint"`
	View     render.ViewState   `json:"view"`
	Snapshot *snapshot.Snapshot `json:"snapshot"`
}

func onceCommand(cmd *cobra.Command, flags SourceFlags, asJSON bool) error {
	a, err := newApp(globalFlags, false, func(cfg *config.Config) error {
		return flags.Apply(cfg)
	})
	if err != nil {
		if asJSON {
			_ = WriteJSONFromError(cmd.OutOrStdout(), err)
			return errors.NewExitError(1)
		}
		return err
	}
	defer a.Close()

	var progress io.Writer
	if !asJSON && ui.IsTerminal(os.Stderr) {
		progress = cmd.ErrOrStderr()
	}
	return runOnce(cmd.Context(), a, cmd.OutOrStdout(), progress, asJSON)
}

// runOnce performs one fetch and prints it. progress, when set, receives a
// spinner while the fetch is in flight.
func runOnce(ctx context.Context, a *app, w, progress io.Writer, asJSON bool) error {
	var spinner *ui.Spinner
	if progress != nil {
		spinner = ui.NewSpinner(progress, "Fetching "+a.cfg.Endpoint)
		spinner.Start()
	}

	snap, err := a.client.Fetch(ctx)

	view := render.NewViewState(a.cfg.Metrics, a.locale)
	a.renderer.Render(&view, snap)

	if spinner != nil {
		if err != nil {
			spinner.Fail(monitor.ErrorLabel(err))
		} else {
			spinner.Success(util.Count(len(snap.Lots), "lot", "lots") + ", " +
				util.Count(len(snap.Spaces), "space", "spaces"))
		}
	}

	if asJSON {
		if err != nil {
			if werr := WriteJSONFromError(w, err); werr != nil {
				return werr
			}
			return errors.NewExitError(1)
		}
		return WriteJSONSuccess(w, OnceResult{
			Endpoint: a.cfg.Endpoint,
			View:     view,
			Snapshot: snap,
		})
	}

	fmt.Fprint(w, monitor.RenderPlain(view, a.locale))
	if err != nil {
		a.log.Warn("fetch failed: %s", errors.Summary(err))
		return err
	}
	return nil
}
