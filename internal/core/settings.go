package core

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tailscale/hujson"
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// settingsRelPath is the project-relative Claude settings file.
const settingsRelPath = ".claude/settings.json"

// SettingsPath resolves the settings file for a scope. projectDir is only
// consulted for ScopeProject.
func SettingsPath(scope Scope, projectDir string) (string, error) {
	switch scope {
	case ScopeProject:
		if projectDir == "" {
			return "", fmt.Errorf("project directory is required for project scope")
		}
		return filepath.Join(projectDir, settingsRelPath), nil
	case ScopeGlobal:
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("getting home directory: %w", err)
		}
		return filepath.Join(home, ".claude", "settings.json"), nil
	default:
		return "", fmt.Errorf("unknown scope %q", scope)
	}
}

// SaveHook appends a converted hook under hooks.<event> in the settings
// file for the given scope, creating the file and intermediate objects as
// needed. Existing entries are never modified; resubmitting the same wizard
// appends a duplicate, matching the save API's own semantics.
func SaveHook(scope Scope, projectDir string, event HookEvent, hook ConvertedHook) error {
	path, err := SettingsPath(scope, projectDir)
	if err != nil {
		return err
	}

	content, err := readSettingsFile(path)
	if err != nil {
		return fmt.Errorf("reading settings: %w", err)
	}
	if content == "" {
		content = "{}"
	}

	// Parse as JSONC so a hand-edited file with comments still loads; the
	// patched output is standardized to strict JSON, which is what Claude
	// Code itself writes.
	root, err := hujson.Parse([]byte(content))
	if err != nil {
		return fmt.Errorf("parsing settings: %w", err)
	}

	if root.Find("/hooks") == nil {
		if err := root.Patch([]byte(`[{"op":"add","path":"/hooks","value":{}}]`)); err != nil {
			return fmt.Errorf("creating hooks object: %w", err)
		}
	}
	eventPtr := "/hooks/" + string(event)
	if root.Find(eventPtr) == nil {
		patch := fmt.Sprintf(`[{"op":"add","path":%q,"value":[]}]`, eventPtr)
		if err := root.Patch([]byte(patch)); err != nil {
			return fmt.Errorf("creating %s array: %w", event, err)
		}
	}

	value, err := json.Marshal(hook)
	if err != nil {
		return fmt.Errorf("marshaling hook: %w", err)
	}
	patch := fmt.Sprintf(`[{"op":"add","path":%q,"value":%s}]`, eventPtr+"/-", value)
	if err := root.Patch([]byte(patch)); err != nil {
		return fmt.Errorf("appending hook: %w", err)
	}

	root.Format()
	root.Standardize()

	return writeSettingsFile(path, root.Pack())
}

// ListHooks returns all hooks in the settings file for a scope, in event
// order then array order. A missing file yields an empty list.
func ListHooks(scope Scope, projectDir string) ([]InstalledHook, error) {
	path, err := SettingsPath(scope, projectDir)
	if err != nil {
		return nil, err
	}
	content, err := readSettingsFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading settings: %w", err)
	}
	if content == "" {
		return nil, nil
	}

	std, err := hujson.Standardize([]byte(content))
	if err != nil {
		return nil, fmt.Errorf("parsing settings: %w", err)
	}

	var result []InstalledHook
	for _, event := range AllHookEvents() {
		entries := gjson.GetBytes(std, "hooks."+string(event))
		if !entries.IsArray() {
			continue
		}
		for i, entry := range entries.Array() {
			matcher := entry.Get("matcher").String()
			// One settings entry can hold several commands; flatten them
			// with the same index so removal targets the whole entry.
			for _, h := range entry.Get("hooks").Array() {
				result = append(result, InstalledHook{
					Event:   event,
					Index:   i,
					Matcher: matcher,
					Command: h.Get("command").String(),
					Timeout: int(h.Get("timeout").Int()),
				})
			}
		}
	}
	return result, nil
}

// RemoveHook deletes the hook entry at the given index within an event's
// array. Removing a missing entry is an error; the index came from ListHooks
// and a mismatch means the file changed underneath us.
func RemoveHook(scope Scope, projectDir string, event HookEvent, index int) error {
	path, err := SettingsPath(scope, projectDir)
	if err != nil {
		return err
	}
	content, err := readSettingsFile(path)
	if err != nil {
		return fmt.Errorf("reading settings: %w", err)
	}
	if content == "" {
		return fmt.Errorf("no settings file at %s", path)
	}

	std, err := hujson.Standardize([]byte(content))
	if err != nil {
		return fmt.Errorf("parsing settings: %w", err)
	}

	entryPath := fmt.Sprintf("hooks.%s.%d", event, index)
	if !gjson.GetBytes(std, entryPath).Exists() {
		return fmt.Errorf("no %s hook at index %d", event, index)
	}

	out, err := sjson.DeleteBytes(std, entryPath)
	if err != nil {
		return fmt.Errorf("removing hook: %w", err)
	}

	// Drop the event array entirely once empty, keeping the file tidy.
	if arr := gjson.GetBytes(out, "hooks."+string(event)); arr.IsArray() && len(arr.Array()) == 0 {
		out, err = sjson.DeleteBytes(out, "hooks."+string(event))
		if err != nil {
			return fmt.Errorf("pruning empty event: %w", err)
		}
	}

	root, err := hujson.Parse(out)
	if err != nil {
		return fmt.Errorf("reformatting settings: %w", err)
	}
	root.Format()
	return writeSettingsFile(path, root.Pack())
}

// readSettingsFile reads a settings file, treating a missing file as empty.
func readSettingsFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}

// writeSettingsFile writes atomically via temp file + rename, creating the
// .claude directory if needed.
func writeSettingsFile(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating settings directory: %w", err)
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("writing settings: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("saving settings: %w", err)
	}
	return nil
}
