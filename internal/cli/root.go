package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/smartparking/parkwatch/internal/errors"
	"github.com/spf13/cobra"
)

var (
	globalFlags GlobalFlags
	rootWatch   WatchFlags
)

// rootCmd runs the dashboard when no subcommand is given.
var rootCmd = &cobra.Command{
	Use:   "parkwatch",
	Short: "Live terminal dashboard for a parking occupancy backend",
	Long: `parkwatch polls a parking backend's dashboard endpoint and shows lot
occupancy, summary metrics and per-space sensor state, refreshed every few
seconds.

Run without a subcommand to start the dashboard (same as 'parkwatch watch').

Examples:
  parkwatch
  parkwatch --endpoint http://parking.local/dashboard-data
  parkwatch once --json`,
	SilenceUsage:  true,
	SilenceErrors: true,
	Args:          cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return watchCommand(cmd, rootWatch)
	},
}

func init() {
	AddGlobalFlags(rootCmd, &globalFlags)
	AddWatchFlags(rootCmd, &rootWatch)
}

// Execute runs the root command and exits with a non-zero code on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(reportError(os.Stderr, err))
	}
}

// reportError prints err unless it only carries an exit code, and returns
// the process exit code.
func reportError(w io.Writer, err error) int {
	if code, ok := errors.GetExitCode(err); ok {
		return code
	}
	msg := err.Error()
	if errors.Code(err) == "" {
		msg = "✗ " + msg + "\n"
	}
	fmt.Fprint(w, msg)
	return 1
}
