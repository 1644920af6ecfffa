package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/barysiuk/hookrow/internal/core"
)

// Step content models for the hook wizard. These are view holders: all key
// handling lives in hookWizardModel, which injects fresh state before each
// render. Update is a no-op for all of them.

// compatStepModel renders the Compatibility step: what the wizard does, the
// detected host, and any blocking issues or warnings.
type compatStepModel struct {
	kind     core.WizardKind
	platform core.Platform
	shell    core.ShellKind
	compat   core.CompatResult
}

func (compatStepModel) Init() tea.Cmd { return nil }

func (m compatStepModel) Update(tea.Msg) (tea.Model, tea.Cmd) { return m, nil }

func (m compatStepModel) View() string {
	var b strings.Builder

	b.WriteString(normalItemStyle.Render(wizardDescription(m.kind)))
	b.WriteString("\n\n")

	fmt.Fprintf(&b, "%s %s\n",
		mutedStyle.Render("Platform:"), badgeStyle.Render(string(m.platform)))
	fmt.Fprintf(&b, "%s %s\n",
		mutedStyle.Render("Shell:"), badgeStyle.Render(string(m.shell)))

	if len(m.compat.Issues) > 0 {
		b.WriteString("\n")
		for _, issue := range m.compat.Issues {
			b.WriteString(errorStyle.Render("✗ "+issue) + "\n")
		}
	}
	if len(m.compat.Warnings) > 0 {
		b.WriteString("\n")
		for _, w := range m.compat.Warnings {
			b.WriteString(warningStyle.Render("! "+w) + "\n")
		}
	}

	b.WriteString("\n")
	if m.compat.Compatible {
		b.WriteString(helpStyle.Render("enter continue • esc cancel"))
	} else {
		b.WriteString(helpStyle.Render("this wizard cannot run here • esc cancel"))
	}

	return b.String()
}

func wizardDescription(kind core.WizardKind) string {
	switch kind {
	case core.WizardMemoryUpdate:
		return "Installs a Stop hook that asks a memory helper to persist\nsession context when a Claude Code session ends."
	case core.WizardDangerProtection:
		return "Installs PreToolUse guards that deny or confirm dangerous\ncommands before Claude Code runs them."
	case core.WizardSkillContext:
		return "Installs a UserPromptSubmit hook that loads matching skills\ninto context based on prompt keywords."
	}
	return ""
}

// configStepModel renders the Configure step for whichever wizard kind is
// active.
type configStepModel struct {
	kind core.WizardKind

	memInputs [memFieldCount]textinput.Model
	memFocus  int

	dangerBoxes  []dangerCheckbox
	dangerCursor int

	skillAuto   bool
	skillRows   []skillRow
	skillCursor int
}

func (configStepModel) Init() tea.Cmd { return nil }

func (m configStepModel) Update(tea.Msg) (tea.Model, tea.Cmd) { return m, nil }

func (m configStepModel) View() string {
	switch m.kind {
	case core.WizardMemoryUpdate:
		return m.viewMemory()
	case core.WizardDangerProtection:
		return m.viewDanger()
	case core.WizardSkillContext:
		return m.viewSkills()
	}
	return ""
}

func (m configStepModel) viewMemory() string {
	var b strings.Builder

	labels := [memFieldCount]string{"Tool", "Threshold %", "Timeout (s)"}
	for i, input := range m.memInputs {
		label := labels[i]
		if i == m.memFocus {
			b.WriteString(selectedItemStyle.Render("> "+label) + "\n")
		} else {
			b.WriteString(normalItemStyle.Render("  "+label) + "\n")
		}
		b.WriteString("  " + input.View() + "\n\n")
	}

	b.WriteString(mutedStyle.Render("Threshold and timeout are recorded for review only.") + "\n\n")
	b.WriteString(helpStyle.Render("tab next field • enter continue • esc back"))
	return b.String()
}

func (m configStepModel) viewDanger() string {
	var b strings.Builder

	b.WriteString(renderSectionHeader("PROTECTIONS") + "\n\n")
	for i, box := range m.dangerBoxes {
		check := "[ ]"
		if box.checked {
			check = installedStyle.Render("[x]")
		}
		line := fmt.Sprintf("%s %s", check, box.option.Label)
		if i == m.dangerCursor {
			b.WriteString(selectedItemStyle.Render("> ") + line + "\n")
			b.WriteString("      " + mutedStyle.Render(box.option.Description) + "\n")
		} else {
			b.WriteString("  " + normalItemStyle.Render(line) + "\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("space toggle • enter continue • esc back"))
	return b.String()
}

func (m configStepModel) viewSkills() string {
	var b strings.Builder

	check := "[ ]"
	if m.skillAuto {
		check = installedStyle.Render("[x]")
	}
	autoLine := fmt.Sprintf("%s Auto mode (loader picks skills itself)", check)
	if m.skillCursor == 0 {
		b.WriteString(selectedItemStyle.Render("> ") + autoLine + "\n")
	} else {
		b.WriteString("  " + normalItemStyle.Render(autoLine) + "\n")
	}
	b.WriteString("\n")

	if m.skillAuto {
		b.WriteString(mutedStyle.Render("Keyword mapping is disabled in auto mode.") + "\n\n")
		b.WriteString(helpStyle.Render("space toggle auto • enter continue • esc back"))
		return b.String()
	}

	if len(m.skillRows) == 0 {
		b.WriteString(mutedStyle.Render("No skills found under .claude/skills.") + "\n\n")
		b.WriteString(helpStyle.Render("enter continue • esc back"))
		return b.String()
	}

	b.WriteString(renderSectionHeader("SKILLS") + "\n\n")
	for i, row := range m.skillRows {
		name := row.skill.Name
		if m.skillCursor == i+1 {
			b.WriteString(selectedItemStyle.Render("> "+name) + "\n")
		} else {
			b.WriteString(normalItemStyle.Render("  "+name) + "\n")
		}
		if row.skill.Description != "" {
			b.WriteString("    " + mutedStyle.Render(row.skill.Description) + "\n")
		}
		b.WriteString("    " + row.input.View() + "\n\n")
	}

	b.WriteString(mutedStyle.Render("Skills with no keywords are left out of the hook.") + "\n\n")
	b.WriteString(helpStyle.Render("↑/↓ move • type keywords • enter continue • esc back"))
	return b.String()
}

// reviewStepModel renders the Review step: the glamour-rendered summary of
// what will be written, the scope selector, and the submit hint.
type reviewStepModel struct {
	scope    core.Scope
	rendered string
	saving   bool
}

func (reviewStepModel) Init() tea.Cmd { return nil }

func (m reviewStepModel) Update(tea.Msg) (tea.Model, tea.Cmd) { return m, nil }

func (m reviewStepModel) View() string {
	var b strings.Builder

	project := "  project  "
	global := "  global  "
	if m.scope == core.ScopeProject {
		project = selectedItemStyle.Render("[ project ]")
	} else {
		global = selectedItemStyle.Render("[ global ]")
	}
	b.WriteString(mutedStyle.Render("Scope: ") + project + " " + global + "\n")

	if m.rendered != "" {
		b.WriteString(m.rendered)
	} else {
		b.WriteString("\n" + mutedStyle.Render("Rendering preview...") + "\n")
	}

	b.WriteString("\n")
	if m.saving {
		b.WriteString(helpStyle.Render("installing..."))
	} else {
		b.WriteString(helpStyle.Render("g scope • enter install • esc back"))
	}
	return b.String()
}
