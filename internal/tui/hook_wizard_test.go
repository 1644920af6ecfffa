package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/barysiuk/hookrow/internal/core"
)

func activateWizard(t *testing.T, kind core.WizardKind) hookWizardModel {
	t.Helper()
	m := newHookWizardModel()
	return m.activate(openHookWizardMsg{kind: kind, projectDir: t.TempDir()}, 80, 24)
}

func keyPress(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestHookWizard_ActivateBuildsThreeSteps(t *testing.T) {
	m := activateWizard(t, core.WizardDangerProtection)

	if len(m.wizard.steps) != 3 {
		t.Fatalf("steps = %d, want 3", len(m.wizard.steps))
	}
	wantNames := []string{"Compatibility", "Configure", "Review"}
	for i, want := range wantNames {
		if m.wizard.steps[i].name != want {
			t.Errorf("step %d name = %q, want %q", i, m.wizard.steps[i].name, want)
		}
	}
	if len(m.dangerBoxes) != len(core.DangerOptions()) {
		t.Errorf("dangerBoxes = %d, want %d", len(m.dangerBoxes), len(core.DangerOptions()))
	}
}

func TestHookWizard_CompatGatesAdvance(t *testing.T) {
	t.Setenv("HOOKROW_PLATFORM", "windows")

	m := activateWizard(t, core.WizardDangerProtection)
	if m.compat.Compatible {
		t.Fatal("danger protection should be incompatible on windows")
	}

	m, cmd := m.update(keyPress("enter"))
	if cmd != nil {
		t.Error("enter on an incompatible step should not produce a command")
	}
	if m.wizard.activeIdx != 0 {
		t.Errorf("activeIdx = %d, want 0", m.wizard.activeIdx)
	}
}

func TestHookWizard_CompatAdvancesWhenCompatible(t *testing.T) {
	t.Setenv("HOOKROW_PLATFORM", "linux")

	m := activateWizard(t, core.WizardDangerProtection)
	if !m.compat.Compatible {
		t.Fatalf("danger protection should be compatible on linux: %v", m.compat.Issues)
	}

	m, cmd := m.update(keyPress("enter"))
	if cmd == nil {
		t.Fatal("enter on a compatible step should emit wizardNextMsg")
	}
	m, _ = m.update(cmd())
	if m.wizard.activeIdx != 1 {
		t.Errorf("activeIdx = %d, want 1", m.wizard.activeIdx)
	}
}

func TestHookWizard_DangerToggleAndBuildConfig(t *testing.T) {
	t.Setenv("HOOKROW_PLATFORM", "linux")

	m := activateWizard(t, core.WizardDangerProtection)
	m.wizard.activeIdx = 1

	// Check the first option, skip the second, check the third.
	m, _ = m.update(keyPress(" "))
	m, _ = m.update(keyPress("down"))
	m, _ = m.update(keyPress("down"))
	m, _ = m.update(keyPress(" "))

	cfg, ok := m.buildConfig().(core.DangerProtectionConfig)
	if !ok {
		t.Fatalf("buildConfig() = %T, want DangerProtectionConfig", m.buildConfig())
	}
	opts := core.DangerOptions()
	want := []string{opts[0].ID, opts[2].ID}
	if len(cfg.OptionIDs) != len(want) {
		t.Fatalf("OptionIDs = %v, want %v", cfg.OptionIDs, want)
	}
	for i, id := range want {
		if cfg.OptionIDs[i] != id {
			t.Errorf("OptionIDs[%d] = %q, want %q", i, cfg.OptionIDs[i], id)
		}
	}
}

func TestHookWizard_MemoryBuildConfig(t *testing.T) {
	t.Setenv("HOOKROW_PLATFORM", "linux")

	m := activateWizard(t, core.WizardMemoryUpdate)
	m.wizard.activeIdx = 1

	// Type into tool, tab to threshold, tab to timeout.
	for _, r := range "qwen" {
		m, _ = m.update(keyPress(string(r)))
	}
	m, _ = m.update(tea.KeyMsg{Type: tea.KeyTab})
	for _, r := range "75" {
		m, _ = m.update(keyPress(string(r)))
	}
	m, _ = m.update(tea.KeyMsg{Type: tea.KeyTab})
	for _, r := range "45" {
		m, _ = m.update(keyPress(string(r)))
	}

	cfg, ok := m.buildConfig().(core.MemoryUpdateConfig)
	if !ok {
		t.Fatalf("buildConfig() = %T, want MemoryUpdateConfig", m.buildConfig())
	}
	if cfg.Tool != "qwen" {
		t.Errorf("Tool = %q, want %q", cfg.Tool, "qwen")
	}
	if cfg.Threshold != 75 {
		t.Errorf("Threshold = %d, want 75", cfg.Threshold)
	}
	if cfg.TimeoutSec != 45 {
		t.Errorf("TimeoutSec = %d, want 45", cfg.TimeoutSec)
	}
}

func TestHookWizard_SkillAutoToggle(t *testing.T) {
	t.Setenv("HOOKROW_PLATFORM", "linux")

	m := activateWizard(t, core.WizardSkillContext)
	m.wizard.activeIdx = 1

	if !m.skillAuto {
		t.Fatal("skill wizard should start in auto mode")
	}

	cfg, ok := m.buildConfig().(core.SkillContextConfig)
	if !ok {
		t.Fatalf("buildConfig() = %T, want SkillContextConfig", m.buildConfig())
	}
	if !cfg.Auto {
		t.Error("Auto = false, want true")
	}

	// Toggle off auto mode.
	m, _ = m.update(keyPress(" "))
	cfg = m.buildConfig().(core.SkillContextConfig)
	if cfg.Auto {
		t.Error("Auto = true after toggle, want false")
	}
}

func TestHookWizard_ReviewScopeToggle(t *testing.T) {
	t.Setenv("HOOKROW_PLATFORM", "linux")

	m := activateWizard(t, core.WizardDangerProtection)
	m.wizard.activeIdx = 2

	if m.scope != core.ScopeProject {
		t.Fatalf("scope = %q, want project default", m.scope)
	}

	m, _ = m.update(keyPress("g"))
	if m.scope != core.ScopeGlobal {
		t.Errorf("scope = %q after toggle, want global", m.scope)
	}
	m, _ = m.update(keyPress("g"))
	if m.scope != core.ScopeProject {
		t.Errorf("scope = %q after second toggle, want project", m.scope)
	}
}

func TestHookWizard_SummaryMarkdownContainsCommands(t *testing.T) {
	t.Setenv("HOOKROW_PLATFORM", "linux")

	m := activateWizard(t, core.WizardDangerProtection)
	m.dangerBoxes[0].checked = true

	md := m.summaryMarkdown()
	if !strings.Contains(md, "PreToolUse") {
		t.Errorf("summary missing event name:\n%s", md)
	}
	if !strings.Contains(md, "bash -c ") {
		t.Errorf("summary missing converted command:\n%s", md)
	}
	if !strings.Contains(md, ".claude/settings.json") {
		t.Errorf("summary missing target path:\n%s", md)
	}
}

func TestHookWizard_InstallDoneClearsSaving(t *testing.T) {
	t.Setenv("HOOKROW_PLATFORM", "linux")

	m := activateWizard(t, core.WizardDangerProtection)
	m.wizard.activeIdx = 2
	m.saving = true

	m, _ = m.update(hookInstallDoneMsg{kind: core.WizardDangerProtection})
	if m.saving {
		t.Error("saving should clear when the install completes")
	}
}

func TestWizardModel_BackOnFirstStepEmitsBack(t *testing.T) {
	w := newWizardModel("Test", []wizardStep{
		{name: "One", content: compatStepModel{}},
		{name: "Two", content: compatStepModel{}},
	})

	w, cmd := w.update(keyPress("esc"))
	if cmd == nil {
		t.Fatal("esc on step 0 should emit wizardBackMsg")
	}
	if _, ok := cmd().(wizardBackMsg); !ok {
		t.Errorf("cmd() = %T, want wizardBackMsg", cmd())
	}
	if w.activeIdx != 0 {
		t.Errorf("activeIdx = %d, want 0", w.activeIdx)
	}
}

func TestWizardModel_NextOnLastStepEmitsDone(t *testing.T) {
	w := newWizardModel("Test", []wizardStep{
		{name: "Only", content: compatStepModel{}},
	})

	w, cmd := w.update(wizardNextMsg{})
	if cmd == nil {
		t.Fatal("next on the last step should emit wizardDoneMsg")
	}
	if _, ok := cmd().(wizardDoneMsg); !ok {
		t.Errorf("cmd() = %T, want wizardDoneMsg", cmd())
	}
	_ = w
}
