package core

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestInstallWizard_AllDangerOptionsSequential(t *testing.T) {
	dir := t.TempDir()

	var ids []string
	for _, o := range DangerOptions() {
		ids = append(ids, o.ID)
	}
	cfg := DangerProtectionConfig{OptionIDs: ids}

	results, err := InstallWizard(cfg, PlatformLinux, ScopeProject, dir)
	if err != nil {
		t.Fatalf("InstallWizard() error: %v", err)
	}
	if len(results) != 6 {
		t.Fatalf("expected 6 saves, got %d", len(results))
	}

	// Each save must carry the event/matcher pair of its template, in
	// catalog order.
	for i, opt := range DangerOptions() {
		tmpl, _ := TemplateByID(opt.TemplateID)
		if results[i].Event != tmpl.Event {
			t.Errorf("results[%d].Event = %q, want %q", i, results[i].Event, tmpl.Event)
		}
		if results[i].Matcher != tmpl.Matcher {
			t.Errorf("results[%d].Matcher = %q, want %q", i, results[i].Matcher, tmpl.Matcher)
		}
	}

	// And the settings file must hold all six, in the same order.
	hooks, err := ListHooks(ScopeProject, dir)
	if err != nil {
		t.Fatalf("ListHooks() error: %v", err)
	}
	if len(hooks) != 6 {
		t.Fatalf("expected 6 installed hooks, got %d", len(hooks))
	}
	for i, opt := range DangerOptions() {
		tmpl, _ := TemplateByID(opt.TemplateID)
		if hooks[i].Matcher != tmpl.Matcher {
			t.Errorf("hooks[%d].Matcher = %q, want %q (option %s)",
				i, hooks[i].Matcher, tmpl.Matcher, opt.ID)
		}
	}
}

func TestInstallWizard_MemoryUpdate(t *testing.T) {
	dir := t.TempDir()

	results, err := InstallWizard(MemoryUpdateConfig{Tool: "qwen"}, PlatformLinux, ScopeProject, dir)
	if err != nil {
		t.Fatalf("InstallWizard() error: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("expected 1 save, got %d", len(results))
	}
	if !strings.Contains(results[0].Command, "tool:'qwen'") {
		t.Errorf("command %q missing tool:'qwen'", results[0].Command)
	}

	hooks, _ := ListHooks(ScopeProject, dir)
	if len(hooks) != 1 || hooks[0].Event != EventStop {
		t.Fatalf("expected 1 Stop hook, got %+v", hooks)
	}
}

func TestInstallWizard_SaveFailureSurfaces(t *testing.T) {
	// A regular file where the project directory should be makes the
	// .claude mkdir fail.
	dir := t.TempDir()
	blocked := filepath.Join(dir, "blocked")
	if err := os.WriteFile(blocked, []byte("not a dir"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg := DangerProtectionConfig{OptionIDs: []string{"recursive-delete"}}
	results, err := InstallWizard(cfg, PlatformLinux, ScopeProject, blocked)
	if err == nil {
		t.Error("expected error when settings directory cannot be created")
	}
	if len(results) != 0 {
		t.Errorf("expected no successful saves, got %d", len(results))
	}
}
