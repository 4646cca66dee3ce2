// Package cli implements the parkwatch command-line interface.
//
// # Command Structure
//
// The root command is "parkwatch"; run without a subcommand it behaves like
// "parkwatch watch":
//
//	parkwatch watch       - Live dashboard (TUI on a terminal, plain text otherwise)
//	parkwatch once        - Fetch and print one snapshot, optionally as JSON
//	parkwatch init        - Create or update .parkwatch.yaml
//	parkwatch version     - Print version information
//	parkwatch completion  - Generate shell completions
//
// # Flag Handling
//
// Global flags (--config, --no-color, --log-file, --debug) are defined on
// the root command. Flags that override config values (--endpoint,
// --locale, --timeout, --interval) win over the config file and
// PARKWATCH_* environment variables.
//
// # Exit Codes
//
// Commands return structured errors from internal/errors; Execute prints
// them to stderr and exits 1. Commands that already printed their own
// output (once --json) return an ExitError carrying just the code.
package cli
