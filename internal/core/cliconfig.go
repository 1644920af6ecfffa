package core

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/tailscale/hujson"
	"github.com/tidwall/gjson"
)

// CLITool describes an installed AI CLI that hookrow can report on.
// Claude Code is the only write target; Codex and Gemini are detected and
// previewed read-only so status output shows the whole toolchain.
type CLITool struct {
	Name        string
	DisplayName string
	DetectPaths []string // Presence of any path means installed.
	ConfigPath  string   // Primary config file (with ~ or $VAR).
}

// cliTools is the fixed tool registry, in display order.
var cliTools = []CLITool{
	{
		Name:        "claude-code",
		DisplayName: "Claude Code",
		DetectPaths: []string{"~/.claude"},
		ConfigPath:  "~/.claude/settings.json",
	},
	{
		Name:        "codex",
		DisplayName: "Codex",
		DetectPaths: []string{"$CODEX_HOME", "~/.codex"},
		ConfigPath:  "~/.codex/config.toml",
	},
	{
		Name:        "gemini-cli",
		DisplayName: "Gemini CLI",
		DetectPaths: []string{"~/.gemini"},
		ConfigPath:  "~/.gemini/settings.json",
	},
}

// DetectCLITools returns the registered tools with detection applied.
func DetectCLITools() []DetectedCLI {
	result := make([]DetectedCLI, 0, len(cliTools))
	for _, t := range cliTools {
		installed := false
		for _, p := range t.DetectPaths {
			if pathExists(expandPath(p)) {
				installed = true
				break
			}
		}
		result = append(result, DetectedCLI{Tool: t, Installed: installed})
	}
	return result
}

// DetectedCLI pairs a tool definition with its detection result.
type DetectedCLI struct {
	Tool      CLITool
	Installed bool
}

// ConfigPreview is a best-effort summary of a CLI's on-disk configuration.
// Err carries a human-readable load failure; previews never abort commands.
type ConfigPreview struct {
	Tool   string
	Path   string
	Fields map[string]string
	Err    string
}

// PreviewCLIConfig reads a tool's config file and extracts a few headline
// fields. Unknown tool names and unreadable files degrade to an Err message.
func PreviewCLIConfig(name string) ConfigPreview {
	var tool *CLITool
	for i := range cliTools {
		if cliTools[i].Name == name {
			tool = &cliTools[i]
			break
		}
	}
	if tool == nil {
		return ConfigPreview{Tool: name, Err: "unknown tool"}
	}

	path := expandPath(tool.ConfigPath)
	preview := ConfigPreview{Tool: tool.Name, Path: path, Fields: map[string]string{}}

	data, err := os.ReadFile(path)
	if err != nil {
		preview.Err = "failed to load config"
		return preview
	}

	switch {
	case strings.HasSuffix(path, ".toml"):
		var raw map[string]any
		if _, err := toml.Decode(string(data), &raw); err != nil {
			preview.Err = "failed to load config"
			return preview
		}
		for _, key := range []string{"model", "model_provider", "approval_policy", "sandbox_mode"} {
			if v, ok := raw[key]; ok {
				preview.Fields[key] = fmt.Sprintf("%v", v)
			}
		}
	default:
		std, err := hujson.Standardize(data)
		if err != nil {
			preview.Err = "failed to load config"
			return preview
		}
		for _, key := range []string{"model", "theme", "preferredEditor", "selectedAuthType"} {
			if v := gjson.GetBytes(std, key); v.Exists() {
				preview.Fields[key] = v.String()
			}
		}
		if hooks := gjson.GetBytes(std, "hooks"); hooks.IsObject() {
			n := 0
			hooks.ForEach(func(_, v gjson.Result) bool {
				n += len(v.Array())
				return true
			})
			preview.Fields["hooks"] = fmt.Sprintf("%d", n)
		}
	}

	return preview
}

// expandPath expands a leading ~ and $VAR references to environment values.
func expandPath(p string) string {
	if strings.HasPrefix(p, "~") {
		if home, err := os.UserHomeDir(); err == nil {
			p = filepath.Join(home, strings.TrimPrefix(p, "~"))
		}
	}
	return os.ExpandEnv(p)
}

// pathExists reports whether a file or directory exists.
func pathExists(p string) bool {
	if p == "" {
		return false
	}
	_, err := os.Stat(p)
	return err == nil
}
