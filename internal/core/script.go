package core

import (
	"fmt"
	"strings"

	"mvdan.cc/sh/v3/syntax"
)

// ValidateScript parses a shell script with a bash-dialect parser and
// returns the first syntax error, if any. Used by `hookrow preview --check`
// and by the catalog tests to keep the embedded guard scripts honest.
func ValidateScript(script string) error {
	parser := syntax.NewParser(syntax.Variant(syntax.LangBash))
	if _, err := parser.Parse(strings.NewReader(script), ""); err != nil {
		return fmt.Errorf("invalid shell script: %w", err)
	}
	return nil
}

// ValidateHookCommand validates the script portion of a built hook command.
// Only bash -c commands carry a parseable script; everything else is
// accepted as-is.
func ValidateHookCommand(cmd HookCommand) error {
	if cmd.Command != "bash" || len(cmd.Args) < 2 || cmd.Args[0] != "-c" {
		return nil
	}
	return ValidateScript(cmd.Args[1])
}
