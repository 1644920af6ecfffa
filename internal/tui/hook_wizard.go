package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"

	"github.com/barysiuk/hookrow/internal/core"
)

// openHookWizardMsg is emitted by the kind picker when a wizard is selected.
type openHookWizardMsg struct {
	kind       core.WizardKind
	projectDir string
}

// hookInstallDoneMsg is sent when the wizard's install command completes.
type hookInstallDoneMsg struct {
	kind    core.WizardKind
	scope   core.Scope
	results []core.InstallResult
	err     error
}

// reviewRenderedMsg is sent when background glamour rendering of the review
// summary completes.
type reviewRenderedMsg struct {
	content  string
	renderer *glamour.TermRenderer
}

// dangerCheckbox pairs a protection option with its checked state.
type dangerCheckbox struct {
	option  core.DangerOption
	checked bool
}

// skillRow pairs a discovered skill with its keyword input.
type skillRow struct {
	skill core.SkillInfo
	input textinput.Model
}

// Memory step field indices.
const (
	memFieldTool = iota
	memFieldThreshold
	memFieldTimeout
	memFieldCount
)

// hookWizardModel wraps a wizardModel for the hook creation flow.
// Steps: Compatibility → Configure → Review.
//
// The step content models are dumb view holders; this model owns all state
// and handles keys, injecting current state into the active step before
// rendering. The Compatibility step gates Next on the platform check.
type hookWizardModel struct {
	wizard wizardModel

	kind       core.WizardKind
	projectDir string
	platform   core.Platform
	shell      core.ShellKind
	compat     core.CompatResult

	// Memory-update config inputs.
	memInputs [memFieldCount]textinput.Model
	memFocus  int

	// Danger-protection checkboxes.
	dangerBoxes  []dangerCheckbox
	dangerCursor int

	// Skill-context config. Row 0 is the auto-mode toggle; rows 1..n map to
	// skillRows[cursor-1].
	skillAuto   bool
	skillRows   []skillRow
	skillCursor int

	// Review step state.
	scope          core.Scope
	reviewRendered string
	renderer       *glamour.TermRenderer

	saving bool
}

func newHookWizardModel() hookWizardModel {
	return hookWizardModel{scope: core.ScopeProject}
}

// activate initializes the wizard for the selected kind.
func (m hookWizardModel) activate(msg openHookWizardMsg, width, height int) hookWizardModel {
	m.kind = msg.kind
	m.projectDir = msg.projectDir
	m.platform = core.DetectPlatform()
	m.shell = core.ShellFor(m.platform)
	m.compat = core.CheckCompatibility(core.WizardRequirements(msg.kind), m.platform)
	m.scope = core.ScopeProject
	m.saving = false
	m.reviewRendered = ""

	switch msg.kind {
	case core.WizardMemoryUpdate:
		for i := range m.memInputs {
			ti := textinput.New()
			ti.CharLimit = 64
			ti.Width = 24
			m.memInputs[i] = ti
		}
		m.memInputs[memFieldTool].Placeholder = "claude"
		m.memInputs[memFieldThreshold].Placeholder = "80"
		m.memInputs[memFieldTimeout].Placeholder = "30"
		m.memFocus = memFieldTool
		m.memInputs[memFieldTool].Focus()

	case core.WizardDangerProtection:
		opts := core.DangerOptions()
		m.dangerBoxes = make([]dangerCheckbox, len(opts))
		for i, opt := range opts {
			m.dangerBoxes[i] = dangerCheckbox{option: opt}
		}
		m.dangerCursor = 0

	case core.WizardSkillContext:
		skills := core.ScanSkills(msg.projectDir)
		m.skillAuto = true
		m.skillRows = make([]skillRow, len(skills))
		for i, s := range skills {
			ti := textinput.New()
			ti.Placeholder = "keyword1, keyword2"
			ti.CharLimit = 256
			ti.Width = 40
			m.skillRows[i] = skillRow{skill: s, input: ti}
		}
		m.skillCursor = 0
	}

	m.wizard = newWizardModel(wizardTitle(msg.kind), []wizardStep{
		{name: "Compatibility", content: compatStepModel{}},
		{name: "Configure", content: configStepModel{}},
		{name: "Review", content: reviewStepModel{}},
	})
	m.wizard = m.wizard.setSize(width, height)

	return m
}

func wizardTitle(kind core.WizardKind) string {
	switch kind {
	case core.WizardMemoryUpdate:
		return "Memory Update Hook"
	case core.WizardDangerProtection:
		return "Danger Protection Hooks"
	case core.WizardSkillContext:
		return "Skill Context Hook"
	}
	return "Hook Wizard"
}

// setSize updates the layout dimensions.
func (m hookWizardModel) setSize(width, height int) hookWizardModel {
	m.wizard = m.wizard.setSize(width, height)
	return m
}

// buildConfig assembles the wizard config from the collected UI state.
func (m hookWizardModel) buildConfig() core.WizardConfig {
	switch m.kind {
	case core.WizardMemoryUpdate:
		threshold, _ := strconv.Atoi(strings.TrimSpace(m.memInputs[memFieldThreshold].Value()))
		timeout, _ := strconv.Atoi(strings.TrimSpace(m.memInputs[memFieldTimeout].Value()))
		return core.MemoryUpdateConfig{
			Tool:       strings.TrimSpace(m.memInputs[memFieldTool].Value()),
			Threshold:  threshold,
			TimeoutSec: timeout,
		}
	case core.WizardDangerProtection:
		var ids []string
		for _, box := range m.dangerBoxes {
			if box.checked {
				ids = append(ids, box.option.ID)
			}
		}
		return core.DangerProtectionConfig{OptionIDs: ids}
	case core.WizardSkillContext:
		cfg := core.SkillContextConfig{Auto: m.skillAuto}
		if !m.skillAuto {
			for _, row := range m.skillRows {
				cfg.Pairs = append(cfg.Pairs, core.SkillKeywordPair{
					Skill:    row.skill.Name,
					Keywords: row.input.Value(),
				})
			}
		}
		return cfg
	}
	return nil
}

// update handles messages for the hook wizard.
func (m hookWizardModel) update(msg tea.Msg) (hookWizardModel, tea.Cmd) {
	switch msg := msg.(type) {
	case wizardDoneMsg, wizardBackMsg:
		// Handled by app.go.
		return m, nil

	case reviewRenderedMsg:
		m.reviewRendered = msg.content
		if msg.renderer != nil {
			m.renderer = msg.renderer
		}
		return m, nil

	case hookInstallDoneMsg:
		m.saving = false
		// app.go handles the result toast and closing.
		return m, nil

	case wizardNextMsg:
		var cmd tea.Cmd
		m.wizard, cmd = m.wizard.update(msg)
		if m.onReviewStep() {
			return m, tea.Batch(cmd, m.renderReviewCmd())
		}
		return m, cmd
	}

	if m.saving {
		// Ignore input while the install runs; the loading toast spins.
		return m, nil
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch m.wizard.activeIdx {
		case 0:
			if key.Matches(keyMsg, keys.Enter) {
				if !m.compat.Compatible {
					return m, nil
				}
				return m, func() tea.Msg { return wizardNextMsg{} }
			}
		case 1:
			return m.updateConfigStep(keyMsg)
		case 2:
			return m.updateReviewStep(keyMsg)
		}
	}

	// Forward to the wizard for esc handling.
	var cmd tea.Cmd
	m.wizard, cmd = m.wizard.update(msg)
	return m, cmd
}

func (m hookWizardModel) onReviewStep() bool {
	return m.wizard.activeIdx == 2
}

// updateConfigStep handles keys on the Configure step, per wizard kind.
func (m hookWizardModel) updateConfigStep(keyMsg tea.KeyMsg) (hookWizardModel, tea.Cmd) {
	switch m.kind {
	case core.WizardMemoryUpdate:
		switch {
		case key.Matches(keyMsg, keys.Enter):
			return m, func() tea.Msg { return wizardNextMsg{} }
		// Plain up/down only: j and k must reach the text input.
		case keyMsg.String() == "tab", keyMsg.String() == "down":
			return m.focusMemField((m.memFocus + 1) % memFieldCount), nil
		case keyMsg.String() == "shift+tab", keyMsg.String() == "up":
			return m.focusMemField((m.memFocus + memFieldCount - 1) % memFieldCount), nil
		case key.Matches(keyMsg, keys.Back):
			var cmd tea.Cmd
			m.wizard, cmd = m.wizard.update(keyMsg)
			return m, cmd
		}
		var cmd tea.Cmd
		m.memInputs[m.memFocus], cmd = m.memInputs[m.memFocus].Update(keyMsg)
		return m, cmd

	case core.WizardDangerProtection:
		switch {
		case key.Matches(keyMsg, keys.Up):
			if m.dangerCursor > 0 {
				m.dangerCursor--
			}
		case key.Matches(keyMsg, keys.Down):
			if m.dangerCursor < len(m.dangerBoxes)-1 {
				m.dangerCursor++
			}
		case key.Matches(keyMsg, keys.Toggle):
			if len(m.dangerBoxes) > 0 {
				m.dangerBoxes[m.dangerCursor].checked = !m.dangerBoxes[m.dangerCursor].checked
			}
		case key.Matches(keyMsg, keys.Enter):
			return m, func() tea.Msg { return wizardNextMsg{} }
		default:
			var cmd tea.Cmd
			m.wizard, cmd = m.wizard.update(keyMsg)
			return m, cmd
		}
		return m, nil

	case core.WizardSkillContext:
		onAutoRow := m.skillCursor == 0
		switch {
		case key.Matches(keyMsg, keys.Enter):
			return m, func() tea.Msg { return wizardNextMsg{} }
		// Plain up/down only: letters must reach the keyword inputs.
		case keyMsg.String() == "up":
			if m.skillCursor > 0 {
				m = m.focusSkillRow(m.skillCursor - 1)
			}
			return m, nil
		case keyMsg.String() == "down":
			if m.skillCursor < len(m.skillRows) && !m.skillAuto {
				m = m.focusSkillRow(m.skillCursor + 1)
			}
			return m, nil
		case key.Matches(keyMsg, keys.Toggle) && onAutoRow:
			m.skillAuto = !m.skillAuto
			if m.skillAuto {
				m = m.focusSkillRow(0)
			}
			return m, nil
		case key.Matches(keyMsg, keys.Back):
			var cmd tea.Cmd
			m.wizard, cmd = m.wizard.update(keyMsg)
			return m, cmd
		}
		// Typing lands in the focused keyword input.
		if !onAutoRow && m.skillCursor-1 < len(m.skillRows) {
			row := &m.skillRows[m.skillCursor-1]
			var cmd tea.Cmd
			row.input, cmd = row.input.Update(keyMsg)
			return m, cmd
		}
		return m, nil
	}

	return m, nil
}

func (m hookWizardModel) focusMemField(idx int) hookWizardModel {
	m.memInputs[m.memFocus].Blur()
	m.memFocus = idx
	m.memInputs[m.memFocus].Focus()
	return m
}

func (m hookWizardModel) focusSkillRow(idx int) hookWizardModel {
	if m.skillCursor > 0 && m.skillCursor-1 < len(m.skillRows) {
		m.skillRows[m.skillCursor-1].input.Blur()
	}
	m.skillCursor = idx
	if idx > 0 && idx-1 < len(m.skillRows) {
		m.skillRows[idx-1].input.Focus()
	}
	return m
}

// updateReviewStep handles keys on the Review step.
func (m hookWizardModel) updateReviewStep(keyMsg tea.KeyMsg) (hookWizardModel, tea.Cmd) {
	switch {
	case key.Matches(keyMsg, keys.Scope):
		if m.scope == core.ScopeProject {
			m.scope = core.ScopeGlobal
		} else {
			m.scope = core.ScopeProject
		}
		return m, m.renderReviewCmd()

	case key.Matches(keyMsg, keys.Enter):
		return m.startInstall()

	case key.Matches(keyMsg, keys.Back):
		var cmd tea.Cmd
		m.wizard, cmd = m.wizard.update(keyMsg)
		return m, cmd
	}
	return m, nil
}

// startInstall kicks off the hook installation in the background.
func (m hookWizardModel) startInstall() (hookWizardModel, tea.Cmd) {
	m.saving = true

	cfg := m.buildConfig()
	platform := m.platform
	scope := m.scope
	dir := m.projectDir
	kind := m.kind

	return m, func() tea.Msg {
		results, err := core.InstallWizard(cfg, platform, scope, dir)
		return hookInstallDoneMsg{
			kind:    kind,
			scope:   scope,
			results: results,
			err:     err,
		}
	}
}

// renderReviewCmd renders the review summary markdown with glamour in the
// background, reusing the cached renderer across re-renders.
func (m hookWizardModel) renderReviewCmd() tea.Cmd {
	md := m.summaryMarkdown()
	cached := m.renderer
	width := max(20, m.wizard.width-4)

	return func() tea.Msg {
		r := cached
		if r == nil {
			var err error
			r, err = glamour.NewTermRenderer(
				glamour.WithAutoStyle(),
				glamour.WithWordWrap(width),
			)
			if err != nil {
				// Fall back to the raw markdown.
				return reviewRenderedMsg{content: md}
			}
		}
		out, err := r.Render(md)
		if err != nil {
			return reviewRenderedMsg{content: md, renderer: r}
		}
		return reviewRenderedMsg{content: out, renderer: r}
	}
}

// summaryMarkdown builds the review step's markdown: what will be installed,
// where, and the exact commands that will land in settings.json.
func (m hookWizardModel) summaryMarkdown() string {
	var b strings.Builder

	fmt.Fprintf(&b, "## %s\n\n", wizardTitle(m.kind))

	target := "~/.claude/settings.json"
	if m.scope == core.ScopeProject {
		target = m.projectDir + "/.claude/settings.json"
	}
	fmt.Fprintf(&b, "Target: `%s`\n\n", target)

	if m.kind == core.WizardMemoryUpdate {
		threshold := m.memInputs[memFieldThreshold].Value()
		timeout := m.memInputs[memFieldTimeout].Value()
		if threshold != "" || timeout != "" {
			b.WriteString("Threshold and timeout are noted for reference and not part of the generated command.\n\n")
		}
	}

	for _, cmd := range core.BuildCommands(m.buildConfig()) {
		converted := core.ConvertToClaudeFormat(cmd, m.platform)
		fmt.Fprintf(&b, "**%s**", cmd.Event)
		if converted.Matcher != "" {
			fmt.Fprintf(&b, " (matcher: `%s`)", converted.Matcher)
		}
		b.WriteString("\n\n")
		fmt.Fprintf(&b, "```\n%s\n```\n\n", converted.Hooks[0].Command)
	}

	return b.String()
}

// view renders the wizard, injecting current state into the active step.
func (m hookWizardModel) view() string {
	step := m.wizard.activeStep()
	if step == nil {
		return ""
	}

	switch step.content.(type) {
	case compatStepModel:
		step.content = compatStepModel{
			kind:     m.kind,
			platform: m.platform,
			shell:    m.shell,
			compat:   m.compat,
		}
	case configStepModel:
		step.content = configStepModel{
			kind:         m.kind,
			memInputs:    m.memInputs,
			memFocus:     m.memFocus,
			dangerBoxes:  m.dangerBoxes,
			dangerCursor: m.dangerCursor,
			skillAuto:    m.skillAuto,
			skillRows:    m.skillRows,
			skillCursor:  m.skillCursor,
		}
	case reviewStepModel:
		step.content = reviewStepModel{
			scope:    m.scope,
			rendered: m.reviewRendered,
			saving:   m.saving,
		}
	}

	return m.wizard.view()
}
