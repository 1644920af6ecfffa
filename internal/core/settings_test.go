package core

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeSettings(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, ".claude", "settings.json")
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestSaveHook_CreatesFile(t *testing.T) {
	dir := t.TempDir()
	hook := ConvertedHook{
		Matcher: "Bash",
		Hooks:   []HookEntry{{Type: "command", Command: "bash -c 'true'", Timeout: 10}},
	}

	if err := SaveHook(ScopeProject, dir, EventPreToolUse, hook); err != nil {
		t.Fatalf("SaveHook() error: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, ".claude", "settings.json"))
	if err != nil {
		t.Fatalf("settings file not created: %v", err)
	}

	var parsed map[string]any
	if err := json.Unmarshal(data, &parsed); err != nil {
		t.Fatalf("settings file is not valid JSON: %v", err)
	}

	hooks, err := ListHooks(ScopeProject, dir)
	if err != nil {
		t.Fatalf("ListHooks() error: %v", err)
	}
	if len(hooks) != 1 {
		t.Fatalf("expected 1 hook, got %d", len(hooks))
	}
	if hooks[0].Event != EventPreToolUse || hooks[0].Matcher != "Bash" {
		t.Errorf("unexpected hook: %+v", hooks[0])
	}
	if hooks[0].Timeout != 10 {
		t.Errorf("Timeout = %d, want 10", hooks[0].Timeout)
	}
}

func TestSaveHook_PreservesExistingSettings(t *testing.T) {
	dir := t.TempDir()
	writeSettings(t, dir, `{"model": "opus", "hooks": {"Stop": [{"hooks": [{"type":"command","command":"existing"}]}]}}`)

	hook := ConvertedHook{Hooks: []HookEntry{{Type: "command", Command: "new"}}}
	if err := SaveHook(ScopeProject, dir, EventStop, hook); err != nil {
		t.Fatalf("SaveHook() error: %v", err)
	}

	data, _ := os.ReadFile(filepath.Join(dir, ".claude", "settings.json"))
	if !strings.Contains(string(data), `"model"`) {
		t.Error("unrelated settings key was dropped")
	}

	hooks, err := ListHooks(ScopeProject, dir)
	if err != nil {
		t.Fatalf("ListHooks() error: %v", err)
	}
	if len(hooks) != 2 {
		t.Fatalf("expected 2 hooks, got %d", len(hooks))
	}
	if hooks[0].Command != "existing" || hooks[1].Command != "new" {
		t.Errorf("append order wrong: %+v", hooks)
	}
}

func TestSaveHook_AcceptsJSONCInput(t *testing.T) {
	dir := t.TempDir()
	writeSettings(t, dir, `{
	// hand-edited settings
	"model": "opus",
}`)

	hook := ConvertedHook{Hooks: []HookEntry{{Type: "command", Command: "x"}}}
	if err := SaveHook(ScopeProject, dir, EventStop, hook); err != nil {
		t.Fatalf("SaveHook() on JSONC input error: %v", err)
	}

	hooks, err := ListHooks(ScopeProject, dir)
	if err != nil {
		t.Fatalf("ListHooks() error: %v", err)
	}
	if len(hooks) != 1 {
		t.Fatalf("expected 1 hook, got %d", len(hooks))
	}
}

func TestSaveHook_MalformedSettings(t *testing.T) {
	dir := t.TempDir()
	writeSettings(t, dir, `{"hooks": `)

	hook := ConvertedHook{Hooks: []HookEntry{{Type: "command", Command: "x"}}}
	if err := SaveHook(ScopeProject, dir, EventStop, hook); err == nil {
		t.Error("expected error for malformed settings file")
	}
}

func TestListHooks_MissingFile(t *testing.T) {
	hooks, err := ListHooks(ScopeProject, t.TempDir())
	if err != nil {
		t.Fatalf("ListHooks() error: %v", err)
	}
	if len(hooks) != 0 {
		t.Errorf("expected no hooks, got %d", len(hooks))
	}
}

func TestRemoveHook(t *testing.T) {
	dir := t.TempDir()
	for _, cmd := range []string{"first", "second"} {
		hook := ConvertedHook{Matcher: "Bash", Hooks: []HookEntry{{Type: "command", Command: cmd}}}
		if err := SaveHook(ScopeProject, dir, EventPreToolUse, hook); err != nil {
			t.Fatalf("SaveHook() error: %v", err)
		}
	}

	if err := RemoveHook(ScopeProject, dir, EventPreToolUse, 0); err != nil {
		t.Fatalf("RemoveHook() error: %v", err)
	}

	hooks, err := ListHooks(ScopeProject, dir)
	if err != nil {
		t.Fatalf("ListHooks() error: %v", err)
	}
	if len(hooks) != 1 {
		t.Fatalf("expected 1 hook after removal, got %d", len(hooks))
	}
	if hooks[0].Command != "second" {
		t.Errorf("wrong hook removed; remaining = %q", hooks[0].Command)
	}
}

func TestRemoveHook_PrunesEmptyEvent(t *testing.T) {
	dir := t.TempDir()
	hook := ConvertedHook{Hooks: []HookEntry{{Type: "command", Command: "only"}}}
	if err := SaveHook(ScopeProject, dir, EventStop, hook); err != nil {
		t.Fatalf("SaveHook() error: %v", err)
	}
	if err := RemoveHook(ScopeProject, dir, EventStop, 0); err != nil {
		t.Fatalf("RemoveHook() error: %v", err)
	}

	data, _ := os.ReadFile(filepath.Join(dir, ".claude", "settings.json"))
	if strings.Contains(string(data), `"Stop"`) {
		t.Error("empty Stop array should have been pruned")
	}
}

func TestRemoveHook_BadIndex(t *testing.T) {
	dir := t.TempDir()
	hook := ConvertedHook{Hooks: []HookEntry{{Type: "command", Command: "only"}}}
	if err := SaveHook(ScopeProject, dir, EventStop, hook); err != nil {
		t.Fatalf("SaveHook() error: %v", err)
	}
	if err := RemoveHook(ScopeProject, dir, EventStop, 5); err == nil {
		t.Error("expected error for out-of-range index")
	}
}

func TestSettingsPath_GlobalUsesHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	path, err := SettingsPath(ScopeGlobal, "")
	if err != nil {
		t.Fatalf("SettingsPath() error: %v", err)
	}
	want := filepath.Join(home, ".claude", "settings.json")
	if path != want {
		t.Errorf("path = %q, want %q", path, want)
	}
}

func TestSettingsPath_ProjectRequiresDir(t *testing.T) {
	if _, err := SettingsPath(ScopeProject, ""); err == nil {
		t.Error("expected error for empty project dir")
	}
}
