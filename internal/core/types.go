// Package core provides the business logic for hookrow.
// It has zero UI dependencies and is independently testable.
package core

import "time"

// Config represents the hookrow configuration stored at ~/.hookrow/config.json.
type Config struct {
	Folders  []TrackedFolder `json:"folders"`
	Settings Settings        `json:"settings"`
}

// TrackedFolder is a project directory registered with hookrow for hook management.
type TrackedFolder struct {
	Path    string    `json:"path"`
	AddedAt time.Time `json:"addedAt,omitempty"`
}

// Settings holds user preferences.
type Settings struct {
	AutoAddCurrentDir bool   `json:"autoAddCurrentDir"`
	LogFile           string `json:"logFile,omitempty"`
}

// Scope selects which settings file a generated hook is written to.
type Scope string

const (
	// ScopeProject writes to <dir>/.claude/settings.json.
	ScopeProject Scope = "project"
	// ScopeGlobal writes to ~/.claude/settings.json.
	ScopeGlobal Scope = "global"
)

// HookEvent is a Claude Code lifecycle event a hook can be bound to.
type HookEvent string

const (
	EventPreToolUse       HookEvent = "PreToolUse"
	EventPostToolUse      HookEvent = "PostToolUse"
	EventUserPromptSubmit HookEvent = "UserPromptSubmit"
	EventSessionStart     HookEvent = "SessionStart"
	EventStop             HookEvent = "Stop"
	EventSubagentStop     HookEvent = "SubagentStop"
	EventNotification     HookEvent = "Notification"
)

// AllHookEvents lists every event hookrow can install hooks for.
func AllHookEvents() []HookEvent {
	return []HookEvent{
		EventPreToolUse,
		EventPostToolUse,
		EventUserPromptSubmit,
		EventSessionStart,
		EventStop,
		EventSubagentStop,
		EventNotification,
	}
}

// ValidHookEvent reports whether s names a known hook event.
func ValidHookEvent(s string) bool {
	for _, e := range AllHookEvents() {
		if string(e) == s {
			return true
		}
	}
	return false
}

// HookCommand is a built but not yet converted hook command: an argv-style
// invocation plus the trigger metadata that travels with it. Builders produce
// these; ConvertToClaudeFormat turns them into the settings.json shape.
type HookCommand struct {
	Event     HookEvent
	Matcher   string // Optional tool-name regex (PreToolUse/PostToolUse only).
	Command   string // Interpreter, e.g. "bash" or "node".
	Args      []string
	TimeoutMs int // 0 means no timeout.
}

// ConvertedHook is the settings.json artifact for a single hook entry.
// This is the only shape that crosses into the Claude settings file.
type ConvertedHook struct {
	Matcher string      `json:"matcher,omitempty"`
	Hooks   []HookEntry `json:"hooks"`
}

// HookEntry is one command inside a ConvertedHook.
type HookEntry struct {
	Type    string `json:"type"`
	Command string `json:"command"`
	Timeout int    `json:"timeout,omitempty"` // Whole seconds.
}

// InstalledHook is a hook entry read back from a settings file.
type InstalledHook struct {
	Event   HookEvent
	Index   int // Position within the event's hook array.
	Matcher string
	Command string
	Timeout int
}

// SkillInfo describes a skill discovered on disk, used to populate the
// skill-context wizard's skill/keyword pair selector.
type SkillInfo struct {
	Name        string
	Description string
	Path        string
}

// SkillKeywordPair binds a skill name to the keywords that should load it.
// Keywords is the raw comma-separated user input; incomplete pairs (missing
// either side) are dropped by the builder before serialization.
type SkillKeywordPair struct {
	Skill    string
	Keywords string
}
