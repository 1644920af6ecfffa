package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/barysiuk/hookrow/internal/core"
)

// resolveTargetDir resolves the --dir flag or falls back to cwd.
func resolveTargetDir(cmd *cobra.Command) (string, error) {
	dir, _ := cmd.Flags().GetString("dir")
	if dir != "" {
		return dir, nil
	}
	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("getting current directory: %w", err)
	}
	return cwd, nil
}

// resolveScope parses the --scope flag into a core.Scope.
func resolveScope(cmd *cobra.Command) (core.Scope, error) {
	flag, _ := cmd.Flags().GetString("scope")
	switch flag {
	case "", "project":
		return core.ScopeProject, nil
	case "global":
		return core.ScopeGlobal, nil
	}
	return "", fmt.Errorf("invalid scope %q (use project or global)", flag)
}

// addTargetFlags registers the flags shared by every hook-writing command.
func addTargetFlags(cmd *cobra.Command) {
	cmd.Flags().String("scope", "project", "settings scope: project or global")
	cmd.Flags().String("dir", "", "project directory (defaults to cwd)")
	cmd.Flags().Bool("dry-run", false, "print the generated hooks without saving")
}

// parseEvent validates and converts an event name argument.
func parseEvent(s string) (core.HookEvent, error) {
	if !core.ValidHookEvent(s) {
		var names []string
		for _, e := range core.AllHookEvents() {
			names = append(names, string(e))
		}
		return "", fmt.Errorf("unknown event %q (valid: %s)", s, strings.Join(names, ", "))
	}
	return core.HookEvent(s), nil
}

// printConverted writes one converted hook in the list/dry-run line format.
func printConverted(event core.HookEvent, hook core.ConvertedHook) {
	for _, entry := range hook.Hooks {
		if hook.Matcher != "" {
			fmt.Fprintf(os.Stdout, "  %s (%s): %s\n", event, hook.Matcher, entry.Command)
		} else {
			fmt.Fprintf(os.Stdout, "  %s: %s\n", event, entry.Command)
		}
	}
}
