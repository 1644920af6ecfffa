package cmd

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/barysiuk/hookrow/internal/core"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show host platform, detected AI CLIs, and hook counts",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := newDeps()
		if err != nil {
			return err
		}

		platform := core.DetectPlatform()
		shell := core.ShellFor(platform)
		fmt.Fprintf(os.Stdout, "Platform: %s\n", platform)
		fmt.Fprintf(os.Stdout, "Shell:    %s (%s)\n", shell, strings.Join(core.ShellCommand(shell), " "))

		dir, err := resolveTargetDir(cmd)
		if err != nil {
			return err
		}

		fm := core.NewFolderManager(d.config)
		tracked, err := fm.IsTracked(dir)
		if err != nil {
			return err
		}
		state := "untracked"
		if tracked {
			state = "tracked"
		}
		fmt.Fprintf(os.Stdout, "Folder:   %s (%s)\n", dir, state)

		for _, scope := range []core.Scope{core.ScopeProject, core.ScopeGlobal} {
			hooks, listErr := core.ListHooks(scope, dir)
			if listErr != nil {
				fmt.Fprintf(os.Stdout, "Hooks (%s): unreadable: %v\n", scope, listErr)
				continue
			}
			fmt.Fprintf(os.Stdout, "Hooks (%s): %d\n", scope, len(hooks))
		}

		fmt.Fprintln(os.Stdout, "\nAI CLIs:")
		for _, detected := range core.DetectCLITools() {
			if !detected.Installed {
				fmt.Fprintf(os.Stdout, "  %s: not installed\n", detected.Tool.DisplayName)
				continue
			}
			fmt.Fprintf(os.Stdout, "  %s: installed\n", detected.Tool.DisplayName)

			preview := core.PreviewCLIConfig(detected.Tool.Name)
			if preview.Err != "" {
				fmt.Fprintf(os.Stdout, "    config: %s\n", preview.Err)
				continue
			}

			keys := make([]string, 0, len(preview.Fields))
			for k := range preview.Fields {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			for _, k := range keys {
				fmt.Fprintf(os.Stdout, "    %s: %s\n", k, preview.Fields[k])
			}
		}

		return nil
	},
}

func init() {
	statusCmd.Flags().String("dir", "", "project directory (defaults to cwd)")
	rootCmd.AddCommand(statusCmd)
}
