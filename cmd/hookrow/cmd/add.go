package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/google/shlex"
	"github.com/spf13/cobra"

	"github.com/barysiuk/hookrow/internal/core"
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Install hooks into a Claude Code settings file",
	Long: `Install generated hooks into a project or global settings file.

Each subcommand runs one wizard non-interactively: flags stand in for
the wizard's configuration step, and the result is written straight to
.claude/settings.json.`,
}

var addMemoryCmd = &cobra.Command{
	Use:   "memory",
	Short: "Install a memory update hook (Stop event)",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := memoryConfigFromFlags(cmd)
		if err != nil {
			return err
		}
		return runWizardInstall(cmd, cfg)
	},
}

var addDangerCmd = &cobra.Command{
	Use:   "danger",
	Short: "Install danger-command guard hooks (PreToolUse event)",
	Long: `Install guard hooks that deny or confirm dangerous commands.

Select protections with --options, or use --all for every protection
in the catalog. Run 'hookrow preview danger --all' to see what each
one generates.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := dangerConfigFromFlags(cmd)
		if err != nil {
			return err
		}
		return runWizardInstall(cmd, cfg)
	},
}

var addSkillsCmd = &cobra.Command{
	Use:   "skills",
	Short: "Install a skill context hook (UserPromptSubmit event)",
	Long: `Install a hook that loads skills into context on each prompt.

Use --auto to let the loader pick skills itself, or map skills to
trigger keywords with repeated --skill flags:

  hookrow add skills --skill "code-review=review,pr" --skill "docs=readme"`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := skillsConfigFromFlags(cmd)
		if err != nil {
			return err
		}
		return runWizardInstall(cmd, cfg)
	},
}

var addCustomCmd = &cobra.Command{
	Use:   "custom <command>",
	Short: "Install a hand-written hook command",
	Long: `Install a custom hook command without a wizard.

The command argument is split into words with shell quoting rules, so
quoted arguments survive intact:

  hookrow add custom --event PreToolUse --matcher Bash 'bash -c "echo checked"'`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		eventFlag, _ := cmd.Flags().GetString("event")
		event, err := parseEvent(eventFlag)
		if err != nil {
			return err
		}

		words, err := shlex.Split(args[0])
		if err != nil {
			return fmt.Errorf("parsing command: %w", err)
		}
		if len(words) == 0 {
			return fmt.Errorf("empty command")
		}

		matcher, _ := cmd.Flags().GetString("matcher")
		timeoutMs, _ := cmd.Flags().GetInt("timeout-ms")

		hookCmd := core.HookCommand{
			Event:     event,
			Matcher:   matcher,
			Command:   words[0],
			Args:      words[1:],
			TimeoutMs: timeoutMs,
		}

		if err := core.ValidateHookCommand(hookCmd); err != nil {
			return fmt.Errorf("invalid hook command: %w", err)
		}

		scope, err := resolveScope(cmd)
		if err != nil {
			return err
		}
		dir, err := resolveTargetDir(cmd)
		if err != nil {
			return err
		}

		converted := core.ConvertToClaudeFormat(hookCmd, core.DetectPlatform())

		if dryRun, _ := cmd.Flags().GetBool("dry-run"); dryRun {
			fmt.Fprintln(os.Stdout, "Would install:")
			printConverted(event, converted)
			return nil
		}

		if err := core.SaveHook(scope, dir, event, converted); err != nil {
			return err
		}
		fmt.Fprintln(os.Stdout, "Installed:")
		printConverted(event, converted)
		return nil
	},
}

// memoryConfigFromFlags reads the memory wizard flags.
func memoryConfigFromFlags(cmd *cobra.Command) (core.MemoryUpdateConfig, error) {
	tool, _ := cmd.Flags().GetString("tool")
	if !core.ValidMemoryTool(tool) {
		return core.MemoryUpdateConfig{}, fmt.Errorf("invalid tool name %q (letters, digits, . _ - only)", tool)
	}
	threshold, _ := cmd.Flags().GetInt("threshold")
	timeout, _ := cmd.Flags().GetInt("timeout")
	return core.MemoryUpdateConfig{Tool: tool, Threshold: threshold, TimeoutSec: timeout}, nil
}

// dangerConfigFromFlags reads the danger wizard flags.
func dangerConfigFromFlags(cmd *cobra.Command) (core.DangerProtectionConfig, error) {
	all, _ := cmd.Flags().GetBool("all")
	if all {
		var ids []string
		for _, opt := range core.DangerOptions() {
			ids = append(ids, opt.ID)
		}
		return core.DangerProtectionConfig{OptionIDs: ids}, nil
	}

	flag, _ := cmd.Flags().GetString("options")
	if flag == "" {
		return core.DangerProtectionConfig{}, fmt.Errorf("no protections selected (use --options or --all)")
	}

	var ids []string
	for _, id := range strings.Split(flag, ",") {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		if _, ok := core.DangerOptionByID(id); !ok {
			return core.DangerProtectionConfig{}, fmt.Errorf("unknown protection %q (run 'hookrow preview danger --all')", id)
		}
		ids = append(ids, id)
	}
	return core.DangerProtectionConfig{OptionIDs: ids}, nil
}

// skillsConfigFromFlags reads the skills wizard flags. Each --skill value
// has the form "name=keyword1,keyword2".
func skillsConfigFromFlags(cmd *cobra.Command) (core.SkillContextConfig, error) {
	auto, _ := cmd.Flags().GetBool("auto")
	pairs, _ := cmd.Flags().GetStringArray("skill")

	if auto && len(pairs) > 0 {
		return core.SkillContextConfig{}, fmt.Errorf("--auto and --skill are mutually exclusive")
	}
	if auto {
		return core.SkillContextConfig{Auto: true}, nil
	}
	if len(pairs) == 0 {
		return core.SkillContextConfig{}, fmt.Errorf("no skills given (use --auto or --skill name=keywords)")
	}

	cfg := core.SkillContextConfig{}
	for _, pair := range pairs {
		name, keywords, found := strings.Cut(pair, "=")
		if !found {
			return core.SkillContextConfig{}, fmt.Errorf("invalid --skill %q (expected name=keyword1,keyword2)", pair)
		}
		cfg.Pairs = append(cfg.Pairs, core.SkillKeywordPair{
			Skill:    strings.TrimSpace(name),
			Keywords: keywords,
		})
	}
	return cfg, nil
}

// addMemoryFlags registers the memory wizard's config flags.
func addMemoryFlags(cmd *cobra.Command) {
	cmd.Flags().String("tool", "claude", "memory helper backend")
	cmd.Flags().Int("threshold", 80, "context-usage percentage noted for review")
	cmd.Flags().Int("timeout", 30, "helper timeout in seconds, noted for review")
}

// addDangerFlags registers the danger wizard's config flags.
func addDangerFlags(cmd *cobra.Command) {
	cmd.Flags().String("options", "", "comma-separated protection IDs")
	cmd.Flags().Bool("all", false, "select every protection")
}

// addSkillsFlags registers the skills wizard's config flags.
func addSkillsFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("auto", false, "let the loader pick skills itself")
	cmd.Flags().StringArray("skill", nil, "skill mapping: name=keyword1,keyword2 (repeatable)")
}

// runWizardInstall checks compatibility and installs (or previews) the hooks
// a wizard config produces.
func runWizardInstall(cmd *cobra.Command, cfg core.WizardConfig) error {
	platform := core.DetectPlatform()

	compat := core.CheckCompatibility(core.WizardRequirements(cfg.Kind()), platform)
	if !compat.Compatible {
		return fmt.Errorf("wizard %s cannot run here: %s", cfg.Kind(), strings.Join(compat.Issues, "; "))
	}
	for _, w := range compat.Warnings {
		fmt.Fprintf(os.Stderr, "warning: %s\n", w)
	}

	scope, err := resolveScope(cmd)
	if err != nil {
		return err
	}
	dir, err := resolveTargetDir(cmd)
	if err != nil {
		return err
	}

	if dryRun, _ := cmd.Flags().GetBool("dry-run"); dryRun {
		fmt.Fprintln(os.Stdout, "Would install:")
		for _, hookCmd := range core.BuildCommands(cfg) {
			printConverted(hookCmd.Event, core.ConvertToClaudeFormat(hookCmd, platform))
		}
		return nil
	}

	results, err := core.InstallWizard(cfg, platform, scope, dir)
	if err != nil {
		// Earlier hooks in the sequence stay installed.
		for _, r := range results {
			fmt.Fprintf(os.Stderr, "installed before failure: %s\n", r.Event)
		}
		return err
	}

	path, _ := core.SettingsPath(scope, dir)
	fmt.Fprintf(os.Stdout, "Installed %d hook(s) to %s:\n", len(results), path)
	for _, r := range results {
		if r.Matcher != "" {
			fmt.Fprintf(os.Stdout, "  %s (%s): %s\n", r.Event, r.Matcher, r.Command)
		} else {
			fmt.Fprintf(os.Stdout, "  %s: %s\n", r.Event, r.Command)
		}
	}
	return nil
}

func init() {
	addMemoryFlags(addMemoryCmd)
	addDangerFlags(addDangerCmd)
	addSkillsFlags(addSkillsCmd)

	addCustomCmd.Flags().String("event", "", "hook event (required)")
	addCustomCmd.Flags().String("matcher", "", "tool-name regex for PreToolUse/PostToolUse")
	addCustomCmd.Flags().Int("timeout-ms", 0, "timeout in milliseconds")
	_ = addCustomCmd.MarkFlagRequired("event")

	for _, c := range []*cobra.Command{addMemoryCmd, addDangerCmd, addSkillsCmd, addCustomCmd} {
		addTargetFlags(c)
		addCmd.AddCommand(c)
	}
	rootCmd.AddCommand(addCmd)
}
