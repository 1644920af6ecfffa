package core

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
)

// WizardKind tags the three guided hook flows.
type WizardKind string

const (
	WizardMemoryUpdate     WizardKind = "memory-update"
	WizardDangerProtection WizardKind = "danger-protection"
	WizardSkillContext     WizardKind = "skill-context"
)

// AllWizardKinds returns the wizard kinds in menu order.
func AllWizardKinds() []WizardKind {
	return []WizardKind{WizardMemoryUpdate, WizardDangerProtection, WizardSkillContext}
}

// WizardConfig is the tagged union of per-wizard configuration. Exactly one
// of the typed configs below implements it; BuildCommands switches
// exhaustively on the concrete type.
type WizardConfig interface {
	Kind() WizardKind
}

// MemoryUpdateConfig configures the memory-update wizard.
//
// Threshold and TimeoutSec are collected and shown in the review step but
// are not embedded in the generated command; the memory helper applies its
// own defaults at run time.
type MemoryUpdateConfig struct {
	Tool       string // Memory helper backend, e.g. "claude", "qwen".
	Threshold  int    // Context-usage percentage that triggers an update.
	TimeoutSec int
}

func (MemoryUpdateConfig) Kind() WizardKind { return WizardMemoryUpdate }

// DangerProtectionConfig configures the danger-protection wizard.
type DangerProtectionConfig struct {
	OptionIDs []string
}

func (DangerProtectionConfig) Kind() WizardKind { return WizardDangerProtection }

// SkillContextConfig configures the skill-context wizard.
type SkillContextConfig struct {
	Auto  bool // Auto mode: let the loader pick skills itself.
	Pairs []SkillKeywordPair
}

func (SkillContextConfig) Kind() WizardKind { return WizardSkillContext }

// placeholderCommand is produced when a builder ends up with nothing to run,
// so previews and submissions degrade to a visible no-op instead of failing.
const placeholderCommand = "true # hookrow: empty configuration"

// WizardRequirements returns the host requirements for a wizard kind.
// All generated commands are POSIX bash one-liners, so Windows is out for
// every flow; the guard scripts additionally need jq at run time.
func WizardRequirements(kind WizardKind) Requirements {
	switch kind {
	case WizardMemoryUpdate:
		return Requirements{Platforms: []Platform{PlatformLinux, PlatformMacOS}}
	case WizardDangerProtection:
		return Requirements{
			Platforms: []Platform{PlatformLinux, PlatformMacOS},
			Tools:     []string{"jq"},
		}
	case WizardSkillContext:
		return Requirements{
			Platforms: []Platform{PlatformLinux, PlatformMacOS},
			Tools:     []string{"jq"},
		}
	}
	return Requirements{}
}

// BuildCommands turns a wizard configuration into the hook commands to
// install. danger-protection yields one command per selected option, in
// catalog order; the other kinds yield exactly one.
func BuildCommands(cfg WizardConfig) []HookCommand {
	switch c := cfg.(type) {
	case MemoryUpdateConfig:
		return []HookCommand{buildMemoryUpdate(c)}
	case DangerProtectionConfig:
		return buildDangerProtection(c)
	case SkillContextConfig:
		return []HookCommand{buildSkillContext(c)}
	default:
		// Unreachable for the known config types; keep previews alive anyway.
		return []HookCommand{{Event: EventStop, Command: "bash", Args: []string{"-c", placeholderCommand}}}
	}
}

// memoryToolRe limits helper names to characters that are inert inside the
// double-quoted payload string. A quote, dollar sign, or backtick in the
// tool name would break out of the generated command.
var memoryToolRe = regexp.MustCompile(`^[A-Za-z0-9._-]+$`)

// ValidMemoryTool reports whether name can be embedded safely into the
// memory-update command.
func ValidMemoryTool(name string) bool {
	return memoryToolRe.MatchString(name)
}

// buildMemoryUpdate produces a Stop hook that asks the memory helper CLI to
// persist session context. The action payload embeds the chosen tool with
// single-quoted values so the helper's loose parser accepts it. Empty or
// unsafe tool names degrade to the placeholder rather than a corrupted
// shell string.
func buildMemoryUpdate(c MemoryUpdateConfig) HookCommand {
	tool := strings.TrimSpace(c.Tool)
	script := placeholderCommand
	if ValidMemoryTool(tool) {
		script = fmt.Sprintf(`ccmem update --payload "{action:'update',tool:'%s'}"`, tool)
	}
	return HookCommand{
		Event:   EventStop,
		Command: "bash",
		Args:    []string{"-c", script},
	}
}

// buildDangerProtection resolves each selected option's template into a hook
// command. Unknown option IDs are skipped; each selected protection becomes
// its own hook so they can be removed independently later.
func buildDangerProtection(c DangerProtectionConfig) []HookCommand {
	var out []HookCommand
	for _, opt := range SelectDangerOptions(c.OptionIDs) {
		t, ok := TemplateByID(opt.TemplateID)
		if !ok {
			continue
		}
		out = append(out, HookCommand{
			Event:     t.Event,
			Matcher:   t.Matcher,
			Command:   t.Command,
			Args:      t.Args,
			TimeoutMs: t.TimeoutMs,
		})
	}
	return out
}

// skillContextPayload is the JSON blob embedded into the keyword-mode
// command. Field order matters for stable previews, hence a struct rather
// than a map.
type skillContextPayload struct {
	Configs []skillConfigEntry `json:"configs"`
}

type skillConfigEntry struct {
	Skill    string   `json:"skill"`
	Keywords []string `json:"keywords"`
}

// buildSkillContext produces a UserPromptSubmit hook. Auto mode defers skill
// selection to the loader; keyword mode embeds the skill/keyword table and
// lets the loader match it against the live prompt arriving on stdin.
func buildSkillContext(c SkillContextConfig) HookCommand {
	if c.Auto {
		return HookCommand{
			Event:   EventUserPromptSubmit,
			Command: "bash",
			Args:    []string{"-c", "skillctx load --mode auto"},
		}
	}

	payload := skillContextPayload{}
	for _, p := range c.Pairs {
		skill := strings.TrimSpace(p.Skill)
		keywords := splitKeywords(p.Keywords)
		if skill == "" || len(keywords) == 0 {
			continue // Incomplete pair contributes nothing.
		}
		payload.Configs = append(payload.Configs, skillConfigEntry{
			Skill:    skill,
			Keywords: keywords,
		})
	}

	if len(payload.Configs) == 0 {
		return HookCommand{
			Event:   EventUserPromptSubmit,
			Command: "bash",
			Args:    []string{"-c", placeholderCommand},
		}
	}

	data, err := json.Marshal(payload)
	if err != nil {
		// Marshal of plain strings cannot fail; degrade rather than error.
		data = []byte(`{"configs":[]}`)
	}
	script := fmt.Sprintf(`skillctx match --config '%s'`, string(data))
	return HookCommand{
		Event:   EventUserPromptSubmit,
		Command: "bash",
		Args:    []string{"-c", script},
	}
}

// splitKeywords splits comma-separated keyword input, trimming whitespace
// and dropping empties.
func splitKeywords(s string) []string {
	var out []string
	for _, k := range strings.Split(s, ",") {
		k = strings.TrimSpace(k)
		if k != "" {
			out = append(out, k)
		}
	}
	return out
}
