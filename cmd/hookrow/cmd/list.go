package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/barysiuk/hookrow/internal/core"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List installed hooks",
	Long:  `List the hooks installed in a project or global settings file.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		scope, err := resolveScope(cmd)
		if err != nil {
			return err
		}
		dir, err := resolveTargetDir(cmd)
		if err != nil {
			return err
		}

		hooks, err := core.ListHooks(scope, dir)
		if err != nil {
			return err
		}

		path, _ := core.SettingsPath(scope, dir)
		if len(hooks) == 0 {
			fmt.Fprintf(os.Stdout, "No hooks in %s. Use 'hookrow add' to install one.\n", path)
			return nil
		}

		fmt.Fprintf(os.Stdout, "Hooks in %s (%d):\n", path, len(hooks))
		for _, h := range hooks {
			if h.Matcher != "" {
				fmt.Fprintf(os.Stdout, "  [%d] %s (%s): %s\n", h.Index, h.Event, h.Matcher, h.Command)
			} else {
				fmt.Fprintf(os.Stdout, "  [%d] %s: %s\n", h.Index, h.Event, h.Command)
			}
		}
		return nil
	},
}

func init() {
	listCmd.Flags().String("scope", "project", "settings scope: project or global")
	listCmd.Flags().String("dir", "", "project directory (defaults to cwd)")
	rootCmd.AddCommand(listCmd)
}
