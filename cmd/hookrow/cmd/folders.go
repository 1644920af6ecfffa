package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/barysiuk/hookrow/internal/core"
)

var foldersCmd = &cobra.Command{
	Use:   "folders",
	Short: "List all tracked folders",
	Long:  `List all project folders currently tracked by HookRow.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := newDeps()
		if err != nil {
			return err
		}

		fm := core.NewFolderManager(d.config)
		folders, err := fm.List()
		if err != nil {
			return err
		}

		if len(folders) == 0 {
			fmt.Fprintln(os.Stdout, "No tracked folders. Use 'hookrow folders add' to add one.")
			return nil
		}

		fmt.Fprintf(os.Stdout, "Tracked folders (%d):\n", len(folders))
		for _, f := range folders {
			fmt.Fprintf(os.Stdout, "  %s\n", f.Path)
		}
		return nil
	},
}

var foldersAddCmd = &cobra.Command{
	Use:   "add [path]",
	Short: "Track a project folder",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := newDeps()
		if err != nil {
			return err
		}

		path := ""
		if len(args) == 1 {
			path = args[0]
		}

		fm := core.NewFolderManager(d.config)
		if err := fm.Add(path); err != nil {
			return err
		}

		fmt.Fprintln(os.Stdout, "Folder tracked.")
		return nil
	},
}

var foldersRemoveCmd = &cobra.Command{
	Use:   "remove <path>",
	Short: "Stop tracking a project folder",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := newDeps()
		if err != nil {
			return err
		}

		fm := core.NewFolderManager(d.config)
		if err := fm.Remove(args[0]); err != nil {
			return err
		}

		fmt.Fprintln(os.Stdout, "Folder untracked.")
		return nil
	},
}

func init() {
	foldersCmd.AddCommand(foldersAddCmd)
	foldersCmd.AddCommand(foldersRemoveCmd)
	rootCmd.AddCommand(foldersCmd)
}
