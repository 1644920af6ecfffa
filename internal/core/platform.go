package core

import (
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"strings"
)

// Platform identifies the host operating system class for command generation.
type Platform string

const (
	PlatformLinux   Platform = "linux"
	PlatformMacOS   Platform = "macos"
	PlatformWindows Platform = "windows"
)

// ShellKind identifies the shell used to invoke generated hook commands.
type ShellKind string

const (
	ShellBash       ShellKind = "bash"
	ShellZsh        ShellKind = "zsh"
	ShellCmd        ShellKind = "cmd"
	ShellPowershell ShellKind = "powershell"
)

// DetectPlatform determines the host platform. Unknown GOOS values fall back
// to linux rather than erroring; downstream builders treat linux as the
// safe POSIX default. HOOKROW_PLATFORM overrides detection (used by tests
// and by users generating hooks for another machine).
func DetectPlatform() Platform {
	if v := os.Getenv("HOOKROW_PLATFORM"); v != "" {
		switch Platform(v) {
		case PlatformLinux, PlatformMacOS, PlatformWindows:
			return Platform(v)
		}
	}
	switch runtime.GOOS {
	case "darwin":
		return PlatformMacOS
	case "windows":
		return PlatformWindows
	default:
		return PlatformLinux
	}
}

// ShellFor returns the default shell for a platform. On POSIX platforms the
// user's $SHELL is consulted so zsh users see zsh in status output, but
// generated commands always target bash for portability.
func ShellFor(p Platform) ShellKind {
	if p == PlatformWindows {
		return ShellPowershell
	}
	if strings.HasSuffix(os.Getenv("SHELL"), "zsh") {
		return ShellZsh
	}
	return ShellBash
}

// ShellCommand returns the argv prefix needed to invoke a shell with a
// script string, e.g. ["bash", "-c"].
func ShellCommand(kind ShellKind) []string {
	switch kind {
	case ShellZsh:
		return []string{"zsh", "-c"}
	case ShellCmd:
		return []string{"cmd", "/c"}
	case ShellPowershell:
		return []string{"powershell", "-Command"}
	default:
		return []string{"bash", "-c"}
	}
}

// Requirements declares what a wizard needs from the host to produce a
// working hook.
type Requirements struct {
	Platforms []Platform // Supported platforms; empty means all.
	Tools     []string   // Binaries expected on PATH; missing ones warn.
}

// CompatResult reports the outcome of a compatibility check. Issues block
// the wizard's Next gate; Warnings do not.
type CompatResult struct {
	Compatible bool
	Issues     []string
	Warnings   []string
}

// CheckCompatibility checks wizard requirements against a platform.
// A platform absent from the requirement list is an issue (blocks the
// wizard); a helper binary missing from PATH is only a warning, since the
// hook may run on a different machine than the one generating it.
func CheckCompatibility(req Requirements, p Platform) CompatResult {
	result := CompatResult{Compatible: true}

	if len(req.Platforms) > 0 {
		supported := false
		for _, rp := range req.Platforms {
			if rp == p {
				supported = true
				break
			}
		}
		if !supported {
			result.Compatible = false
			result.Issues = append(result.Issues,
				fmt.Sprintf("platform %s is not supported (requires %s)", p, joinPlatforms(req.Platforms)))
		}
	}

	for _, tool := range req.Tools {
		if _, err := exec.LookPath(tool); err != nil {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("%s not found on PATH; the generated hook needs it at run time", tool))
		}
	}

	return result
}

func joinPlatforms(ps []Platform) string {
	s := ""
	for i, p := range ps {
		if i > 0 {
			s += ", "
		}
		s += string(p)
	}
	return s
}
