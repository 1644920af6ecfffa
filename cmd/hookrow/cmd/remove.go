package cmd

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/barysiuk/hookrow/internal/core"
)

var removeCmd = &cobra.Command{
	Use:   "remove <event> <index>",
	Short: "Remove an installed hook",
	Long: `Remove one hook entry from a settings file.

The event and index match the output of 'hookrow list':

  hookrow remove PreToolUse 0`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		event, err := parseEvent(args[0])
		if err != nil {
			return err
		}
		index, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("invalid index %q", args[1])
		}

		scope, err := resolveScope(cmd)
		if err != nil {
			return err
		}
		dir, err := resolveTargetDir(cmd)
		if err != nil {
			return err
		}

		if err := core.RemoveHook(scope, dir, event, index); err != nil {
			return err
		}

		fmt.Fprintf(os.Stdout, "Removed %s hook #%d\n", event, index)
		return nil
	},
}

func init() {
	removeCmd.Flags().String("scope", "project", "settings scope: project or global")
	removeCmd.Flags().String("dir", "", "project directory (defaults to cwd)")
	rootCmd.AddCommand(removeCmd)
}
