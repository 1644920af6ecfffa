package core

import (
	"strings"
	"testing"
)

func TestConvertToClaudeFormat_BashScript(t *testing.T) {
	cmd := HookCommand{
		Event:   EventPreToolUse,
		Matcher: "Bash",
		Command: "bash",
		Args:    []string{"-c", `echo 'hello world'`},
	}

	got := ConvertToClaudeFormat(cmd, PlatformLinux)
	if got.Matcher != "Bash" {
		t.Errorf("Matcher = %q, want Bash", got.Matcher)
	}
	if len(got.Hooks) != 1 {
		t.Fatalf("expected 1 hook entry, got %d", len(got.Hooks))
	}
	if got.Hooks[0].Type != "command" {
		t.Errorf("Type = %q, want command", got.Hooks[0].Type)
	}
	want := `bash -c 'echo '\''hello world'\'''`
	if got.Hooks[0].Command != want {
		t.Errorf("Command = %q, want %q", got.Hooks[0].Command, want)
	}
}

func TestConvertToClaudeFormat_BashExtraArgs(t *testing.T) {
	cmd := HookCommand{
		Command: "bash",
		Args:    []string{"-c", "run $1", "runner", "two words"},
	}
	got := ConvertToClaudeFormat(cmd, PlatformLinux)
	want := `bash -c 'run $1' runner "two words"`
	if got.Hooks[0].Command != want {
		t.Errorf("Command = %q, want %q", got.Hooks[0].Command, want)
	}
}

func TestConvertToClaudeFormat_NodeQuotingFollowsPlatform(t *testing.T) {
	cmd := HookCommand{
		Command: "node",
		Args:    []string{"-e", `console.log("hi")`},
	}

	posix := ConvertToClaudeFormat(cmd, PlatformMacOS)
	if !strings.HasPrefix(posix.Hooks[0].Command, "node -e '") {
		t.Errorf("posix command = %q, want single-quoted script", posix.Hooks[0].Command)
	}

	win := ConvertToClaudeFormat(cmd, PlatformWindows)
	wantWin := `node -e "console.log(\"hi\")"`
	if win.Hooks[0].Command != wantWin {
		t.Errorf("windows command = %q, want %q", win.Hooks[0].Command, wantWin)
	}
}

func TestConvertToClaudeFormat_TimeoutCeiling(t *testing.T) {
	tests := []struct {
		ms   int
		want int
	}{
		{4500, 5},
		{5000, 5},
		{1, 1},
		{0, 0},
		{10000, 10},
	}
	for _, tt := range tests {
		cmd := HookCommand{Command: "bash", Args: []string{"-c", "true"}, TimeoutMs: tt.ms}
		got := ConvertToClaudeFormat(cmd, PlatformLinux)
		if got.Hooks[0].Timeout != tt.want {
			t.Errorf("TimeoutMs=%d: Timeout = %d, want %d", tt.ms, got.Hooks[0].Timeout, tt.want)
		}
	}
}

func TestConvertToClaudeFormat_GenericCommand(t *testing.T) {
	cmd := HookCommand{
		Command: "python3",
		Args:    []string{"guard.py", "--level", "strict mode", `"already quoted"`},
	}
	got := ConvertToClaudeFormat(cmd, PlatformLinux)
	want := `python3 guard.py --level "strict mode" "already quoted"`
	if got.Hooks[0].Command != want {
		t.Errorf("Command = %q, want %q", got.Hooks[0].Command, want)
	}
}

func TestConvertToClaudeFormat_ShortArgsBestEffort(t *testing.T) {
	// bash with only "-c" and no script must not panic.
	cmd := HookCommand{Command: "bash", Args: []string{"-c"}}
	got := ConvertToClaudeFormat(cmd, PlatformLinux)
	if got.Hooks[0].Command != "bash -c ''" {
		t.Errorf("Command = %q, want bash -c ''", got.Hooks[0].Command)
	}
}

func TestConvertToClaudeFormat_AllDangerTemplates(t *testing.T) {
	for _, opt := range DangerOptions() {
		tmpl, _ := TemplateByID(opt.TemplateID)
		cmd := HookCommand{
			Event:     tmpl.Event,
			Matcher:   tmpl.Matcher,
			Command:   tmpl.Command,
			Args:      tmpl.Args,
			TimeoutMs: tmpl.TimeoutMs,
		}

		got := ConvertToClaudeFormat(cmd, PlatformLinux)
		if got.Matcher != tmpl.Matcher {
			t.Errorf("%s: Matcher = %q, want %q", opt.TemplateID, got.Matcher, tmpl.Matcher)
		}
		command := got.Hooks[0].Command
		if !strings.Contains(command, "bash -c '") {
			t.Errorf("%s: command missing bash -c prefix: %q", opt.TemplateID, command)
		}
		escaped := strings.ReplaceAll(tmpl.Args[1], "'", `'\''`)
		if !strings.Contains(command, escaped) {
			t.Errorf("%s: command does not contain escaped script", opt.TemplateID)
		}
	}
}
