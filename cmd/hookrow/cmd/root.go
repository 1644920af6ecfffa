package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/barysiuk/hookrow/internal/logging"
	"github.com/barysiuk/hookrow/internal/tui"
)

// Version info set via ldflags at build time.
var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "hookrow",
	Short: "Get your hooks in a row - generate and manage Claude Code hooks",
	Long: `HookRow generates Claude Code hook commands from guided wizards.

Install danger-command guards, memory update hooks, and skill context
loaders into project or global settings files - from the terminal UI
or directly from the command line.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// The TUI logs to file only; stderr writes would tear the
		// alternate screen.
		if cmd.Name() == "hookrow" {
			if d, err := newDeps(); err == nil {
				logging.Init(logging.Options{
					Verbose: verbose,
					Quiet:   true,
					File:    d.config.LogPath(),
				})
				return
			}
		}
		logging.Init(logging.Options{Verbose: verbose})
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := newDeps()
		if err != nil {
			return err
		}

		app := tui.NewApp(d.config)
		p := tea.NewProgram(app, tea.WithAltScreen())
		if _, err := p.Run(); err != nil {
			return fmt.Errorf("running TUI: %w", err)
		}
		return nil
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("hookrow %s (commit: %s, built: %s)\n", Version, Commit, Date)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.AddCommand(versionCmd)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
