package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/barysiuk/hookrow/internal/core"
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Preview generated hook commands without installing",
	Long: `Preview the exact commands a wizard would write to settings.json.

Nothing is saved. Pass --check to also run the generated scripts
through the shell parser.`,
}

var previewMemoryCmd = &cobra.Command{
	Use:   "memory",
	Short: "Preview the memory update hook",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := memoryConfigFromFlags(cmd)
		if err != nil {
			return err
		}
		return runPreview(cmd, cfg)
	},
}

var previewDangerCmd = &cobra.Command{
	Use:   "danger",
	Short: "Preview danger-command guard hooks",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		// With no selection flags, preview the whole catalog.
		optionsFlag, _ := cmd.Flags().GetString("options")
		allFlag, _ := cmd.Flags().GetBool("all")
		if optionsFlag == "" && !allFlag {
			_ = cmd.Flags().Set("all", "true")
		}

		cfg, err := dangerConfigFromFlags(cmd)
		if err != nil {
			return err
		}
		return runPreview(cmd, cfg)
	},
}

var previewSkillsCmd = &cobra.Command{
	Use:   "skills",
	Short: "Preview the skill context hook",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := skillsConfigFromFlags(cmd)
		if err != nil {
			return err
		}
		return runPreview(cmd, cfg)
	},
}

// runPreview prints the converted hooks a config produces, optionally
// validating each generated script.
func runPreview(cmd *cobra.Command, cfg core.WizardConfig) error {
	platform := core.DetectPlatform()
	check, _ := cmd.Flags().GetBool("check")

	commands := core.BuildCommands(cfg)
	for _, hookCmd := range commands {
		printConverted(hookCmd.Event, core.ConvertToClaudeFormat(hookCmd, platform))
		if check {
			if err := core.ValidateHookCommand(hookCmd); err != nil {
				return fmt.Errorf("generated %s hook does not parse: %w", hookCmd.Event, err)
			}
		}
	}

	if check {
		fmt.Fprintf(os.Stdout, "All %d hook(s) parse cleanly.\n", len(commands))
	}
	return nil
}

func init() {
	addMemoryFlags(previewMemoryCmd)
	addDangerFlags(previewDangerCmd)
	addSkillsFlags(previewSkillsCmd)

	for _, c := range []*cobra.Command{previewMemoryCmd, previewDangerCmd, previewSkillsCmd} {
		c.Flags().Bool("check", false, "validate generated scripts with the shell parser")
		previewCmd.AddCommand(c)
	}
	rootCmd.AddCommand(previewCmd)
}
