package cli

import (
	"fmt"
	"io"
	"runtime"

	"github.com/spf13/cobra"
)

// Set via ldflags from main.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var (
	versionShort bool
	versionJSON  bool
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long:  `Print the version, commit hash, and build date of parkwatch.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		switch {
		case versionJSON:
			return WriteJSONSuccess(out, currentVersion())
		case versionShort:
			fmt.Fprintln(out, version)
			return nil
		default:
			printVersion(out, currentVersion())
			return nil
		}
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
	versionCmd.Flags().BoolVar(&versionShort, "short", false, "Print only the version number")
	versionCmd.Flags().BoolVar(&versionJSON, "json", false, "Print build info as a JSON envelope")
}

// VersionInfo describes the running binary.
type VersionInfo struct {
	Version string `json:"version"`
	Commit  string `json:"commit"`
	Built   string `json:"built"`
	Go      string `json:"go"`
	OS      string `json:"os"`
	Arch    string `json:"arch"`
}

func currentVersion() VersionInfo {
	return VersionInfo{
		Version: version,
		Commit:  commit,
		Built:   date,
		Go:      runtime.Version(),
		OS:      runtime.GOOS,
		Arch:    runtime.GOARCH,
	}
}

func printVersion(w io.Writer, v VersionInfo) {
	fmt.Fprintf(w, "parkwatch %s\n", formatVersion(v.Version))
	fmt.Fprintf(w, "commit: %s\n", v.Commit)
	fmt.Fprintf(w, "built: %s\n", v.Built)
	fmt.Fprintf(w, "go: %s\n", v.Go)
	fmt.Fprintf(w, "os/arch: %s/%s\n", v.OS, v.Arch)
}

// formatVersion adds the 'v' prefix to release versions.
func formatVersion(v string) string {
	if v == "" || v == "dev" || v[0] == 'v' {
		return v
	}
	return "v" + v
}

// SetVersionInfo sets the version information (called from main).
func SetVersionInfo(v, c, d string) {
	version = v
	commit = c
	date = d
}

// GetVersion returns the current version string.
func GetVersion() string {
	return version
}
