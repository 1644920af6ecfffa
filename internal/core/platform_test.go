package core

import (
	"runtime"
	"testing"
)

func TestDetectPlatform_EnvOverride(t *testing.T) {
	t.Setenv("HOOKROW_PLATFORM", "windows")
	if got := DetectPlatform(); got != PlatformWindows {
		t.Errorf("DetectPlatform() = %q, want %q", got, PlatformWindows)
	}
}

func TestDetectPlatform_InvalidOverrideIgnored(t *testing.T) {
	t.Setenv("HOOKROW_PLATFORM", "beos")
	got := DetectPlatform()
	// Falls through to GOOS-based detection.
	switch runtime.GOOS {
	case "darwin":
		if got != PlatformMacOS {
			t.Errorf("DetectPlatform() = %q, want macos", got)
		}
	case "windows":
		if got != PlatformWindows {
			t.Errorf("DetectPlatform() = %q, want windows", got)
		}
	default:
		if got != PlatformLinux {
			t.Errorf("DetectPlatform() = %q, want linux fallback", got)
		}
	}
}

func TestShellCommand(t *testing.T) {
	tests := []struct {
		kind ShellKind
		want []string
	}{
		{ShellBash, []string{"bash", "-c"}},
		{ShellZsh, []string{"zsh", "-c"}},
		{ShellCmd, []string{"cmd", "/c"}},
		{ShellPowershell, []string{"powershell", "-Command"}},
	}
	for _, tt := range tests {
		got := ShellCommand(tt.kind)
		if len(got) != len(tt.want) {
			t.Fatalf("ShellCommand(%s) = %v, want %v", tt.kind, got, tt.want)
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("ShellCommand(%s)[%d] = %q, want %q", tt.kind, i, got[i], tt.want[i])
			}
		}
	}
}

func TestShellFor_Windows(t *testing.T) {
	if got := ShellFor(PlatformWindows); got != ShellPowershell {
		t.Errorf("ShellFor(windows) = %q, want powershell", got)
	}
}

func TestShellFor_ShellEnv(t *testing.T) {
	tests := []struct {
		shell string
		want  ShellKind
	}{
		{"/usr/bin/zsh", ShellZsh},
		{"zsh", ShellZsh},
		{"/bin/bash", ShellBash},
		{"/usr/bin/fish", ShellBash},
		{"", ShellBash},
	}
	for _, tt := range tests {
		t.Setenv("SHELL", tt.shell)
		if got := ShellFor(PlatformLinux); got != tt.want {
			t.Errorf("ShellFor(linux) with SHELL=%q = %q, want %q", tt.shell, got, tt.want)
		}
	}
}

func TestCheckCompatibility_UnsupportedPlatform(t *testing.T) {
	req := Requirements{Platforms: []Platform{PlatformLinux, PlatformMacOS}}

	result := CheckCompatibility(req, PlatformWindows)
	if result.Compatible {
		t.Error("expected Compatible=false for unsupported platform")
	}
	if len(result.Issues) == 0 {
		t.Error("expected at least one issue for unsupported platform")
	}
}

func TestCheckCompatibility_SupportedPlatform(t *testing.T) {
	req := Requirements{Platforms: []Platform{PlatformLinux, PlatformMacOS}}

	result := CheckCompatibility(req, PlatformLinux)
	if !result.Compatible {
		t.Errorf("expected Compatible=true, got issues: %v", result.Issues)
	}
}

func TestCheckCompatibility_EmptyRequirementsAllowsAll(t *testing.T) {
	for _, p := range []Platform{PlatformLinux, PlatformMacOS, PlatformWindows} {
		result := CheckCompatibility(Requirements{}, p)
		if !result.Compatible {
			t.Errorf("empty requirements should be compatible on %s", p)
		}
	}
}

func TestCheckCompatibility_MissingToolWarnsOnly(t *testing.T) {
	req := Requirements{
		Platforms: []Platform{PlatformLinux, PlatformMacOS, PlatformWindows},
		Tools:     []string{"definitely-not-a-real-binary-xyz"},
	}

	result := CheckCompatibility(req, DetectPlatform())
	if !result.Compatible {
		t.Error("missing tool must not flip Compatible to false")
	}
	if len(result.Warnings) == 0 {
		t.Error("expected a warning for the missing tool")
	}
}
