package core

import "strings"

// ConvertToClaudeFormat flattens an argv-style hook command into the single
// shell-invocable string Claude Code expects, and wraps it with matcher and
// timeout metadata.
//
// Quoting style for node -e scripts follows the platform threaded through
// the wizard, not the machine doing the converting; generating hooks for a
// Windows target from a Linux box must still produce Windows quoting.
func ConvertToClaudeFormat(cmd HookCommand, p Platform) ConvertedHook {
	var command string

	switch {
	case cmd.Command == "bash" && len(cmd.Args) > 0 && cmd.Args[0] == "-c":
		script := ""
		if len(cmd.Args) > 1 {
			script = cmd.Args[1]
		}
		command = "bash -c " + singleQuote(script)
		command += joinExtraArgs(cmd.Args[2:])

	case cmd.Command == "node" && len(cmd.Args) > 0 && cmd.Args[0] == "-e":
		script := ""
		if len(cmd.Args) > 1 {
			script = cmd.Args[1]
		}
		if p == PlatformWindows {
			command = "node -e " + doubleQuote(script)
		} else {
			command = "node -e " + singleQuote(script)
		}
		command += joinExtraArgs(cmd.Args[2:])

	default:
		parts := []string{cmd.Command}
		for _, a := range cmd.Args {
			parts = append(parts, maybeQuote(a))
		}
		command = strings.Join(parts, " ")
	}

	entry := HookEntry{Type: "command", Command: command}
	if cmd.TimeoutMs > 0 {
		// Milliseconds to whole seconds, rounding up so short timeouts
		// never truncate to zero.
		entry.Timeout = (cmd.TimeoutMs + 999) / 1000
	}

	return ConvertedHook{
		Matcher: cmd.Matcher,
		Hooks:   []HookEntry{entry},
	}
}

// singleQuote wraps s in single quotes, replacing embedded single quotes
// with the close-escape-reopen sequence.
func singleQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}

// doubleQuote wraps s in double quotes, escaping embedded double quotes.
func doubleQuote(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `\"`) + `"`
}

// maybeQuote double-quotes an argument only when it contains whitespace and
// is not already quoted.
func maybeQuote(s string) string {
	if !strings.ContainsAny(s, " \t") {
		return s
	}
	if len(s) >= 2 {
		if (s[0] == '"' && s[len(s)-1] == '"') || (s[0] == '\'' && s[len(s)-1] == '\'') {
			return s
		}
	}
	return doubleQuote(s)
}

// joinExtraArgs renders trailing args after a -c/-e script, selectively
// double-quoted, with a leading space when non-empty.
func joinExtraArgs(args []string) string {
	if len(args) == 0 {
		return ""
	}
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = maybeQuote(a)
	}
	return " " + strings.Join(parts, " ")
}
