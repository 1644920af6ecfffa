package tui

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/barysiuk/hookrow/internal/core"
)

// appView represents the active screen.
type appView int

const (
	viewMain         appView = iota // Installed hooks list (default)
	viewKindPicker                  // Wizard kind picker overlay
	viewFolderPicker                // Tracked folder picker overlay
	viewHookPreview                 // Hook detail preview overlay
	viewWizard                      // Hook creation wizard
)

// App is the root Bubbletea model for hookrow.
type App struct {
	// Core dependencies.
	config  *core.ConfigManager
	folders *core.FolderManager

	// View state.
	activeView appView
	width      int
	height     int
	ready      bool

	// Active folder context.
	cwd          string // Directory where hookrow was launched.
	activeFolder string // Currently viewed project folder.
	isTracked    bool

	// Hook list state.
	scope  core.Scope
	hooks  []core.InstalledHook
	cursor int

	// Kind picker state.
	kindCursor int

	// Folder picker state.
	trackedFolders []core.TrackedFolder
	folderCursor   int

	// Hook preview overlay.
	previewViewport viewport.Model
	previewTitle    string

	// Cached glamour renderer (lazy-initialized on first preview).
	glamourRenderer *glamour.TermRenderer

	// Sub-models.
	hookWizard hookWizardModel
	toast      toastModel
	confirm    confirmModel

	// Help bar.
	help help.Model
}

// NewApp creates a new App model with the given core dependencies.
func NewApp(config *core.ConfigManager) App {
	cwd, _ := os.Getwd()

	h := help.New()
	h.ShortSeparator = "  |  "

	return App{
		config:       config,
		folders:      core.NewFolderManager(config),
		cwd:          cwd,
		activeFolder: cwd,
		scope:        core.ScopeProject,
		hookWizard:   newHookWizardModel(),
		toast:        newToastModel(),
		confirm:      newConfirmModel(),
		help:         h,
	}
}

// --- Messages ---

type loadedDataMsg struct {
	hooks     []core.InstalledHook
	folders   []core.TrackedFolder
	isTracked bool
	err       error
}

type errMsg struct {
	err error
}

// previewRenderedMsg is sent when background glamour rendering of a hook
// detail completes.
type previewRenderedMsg struct {
	content  string
	renderer *glamour.TermRenderer
}

// --- Init / Update / View ---

func (a App) Init() tea.Cmd {
	return a.loadDataCmd
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.ready = true
		a.propagateSize()
		return a, nil

	case loadedDataMsg:
		if msg.err != nil {
			a.toast, _ = a.toast.show("load failed: "+msg.err.Error(), toastError)
			return a, nil
		}
		a.hooks = msg.hooks
		a.trackedFolders = msg.folders
		a.isTracked = msg.isTracked
		if a.cursor >= len(a.hooks) {
			a.cursor = max(0, len(a.hooks)-1)
		}
		return a, nil

	case errMsg:
		var cmd tea.Cmd
		a.toast, cmd = a.toast.show(msg.err.Error(), toastError)
		return a, cmd

	case openHookWizardMsg:
		w, h := a.innerContentSize()
		a.hookWizard = a.hookWizard.activate(msg, w, h)
		a.activeView = viewWizard
		return a, nil

	case hookInstallDoneMsg:
		a.hookWizard, _ = a.hookWizard.update(msg)
		if msg.err != nil {
			var cmd tea.Cmd
			a.toast, cmd = a.toast.show("install failed: "+msg.err.Error(), toastError)
			return a, cmd
		}
		a.activeView = viewMain
		a.scope = msg.scope
		var cmd tea.Cmd
		a.toast, cmd = a.toast.show(
			fmt.Sprintf("installed %d hook(s)", len(msg.results)), toastSuccess)
		return a, tea.Batch(cmd, a.loadDataCmd)

	case wizardBackMsg, wizardDoneMsg:
		if a.activeView == viewWizard {
			a.activeView = viewMain
		}
		return a, nil

	case previewRenderedMsg:
		a.glamourRenderer = msg.renderer
		a.previewViewport.SetContent(msg.content)
		return a, nil
	}

	// ctrl+c always quits, regardless of view or focused input.
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.String() == "ctrl+c" {
		return a, tea.Quit
	}

	// Toast housekeeping (timers, spinner ticks).
	var toastCmd tea.Cmd
	a.toast, toastCmd = a.toast.update(msg)

	// The confirm dialog swallows all keys while active.
	var confirmCmd tea.Cmd
	var consumed bool
	a.confirm, confirmCmd, consumed = a.confirm.update(msg)
	if consumed {
		return a, tea.Batch(toastCmd, confirmCmd)
	}

	var cmd tea.Cmd
	switch a.activeView {
	case viewMain:
		a, cmd = a.updateMain(msg)
	case viewKindPicker:
		a, cmd = a.updateKindPicker(msg)
	case viewFolderPicker:
		a, cmd = a.updateFolderPicker(msg)
	case viewHookPreview:
		a, cmd = a.updateHookPreview(msg)
	case viewWizard:
		a.hookWizard, cmd = a.hookWizard.update(msg)
	}

	return a, tea.Batch(toastCmd, cmd)
}

func (a App) updateMain(msg tea.Msg) (App, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return a, nil
	}

	switch {
	case key.Matches(keyMsg, keys.Quit):
		return a, tea.Quit

	case key.Matches(keyMsg, keys.Up):
		if a.cursor > 0 {
			a.cursor--
		}

	case key.Matches(keyMsg, keys.Down):
		if a.cursor < len(a.hooks)-1 {
			a.cursor++
		}

	case key.Matches(keyMsg, keys.Add):
		a.kindCursor = 0
		a.activeView = viewKindPicker

	case key.Matches(keyMsg, keys.Remove):
		if a.cursor < len(a.hooks) {
			hook := a.hooks[a.cursor]
			a.confirm = a.confirm.show(
				fmt.Sprintf("Remove %s hook #%d?", hook.Event, hook.Index),
				a.removeHookCmd(hook))
		}

	case key.Matches(keyMsg, keys.Scope):
		if a.scope == core.ScopeProject {
			a.scope = core.ScopeGlobal
		} else {
			a.scope = core.ScopeProject
		}
		a.cursor = 0
		return a, a.loadDataCmd

	case key.Matches(keyMsg, keys.Folders):
		a.folderCursor = 0
		a.activeView = viewFolderPicker

	case key.Matches(keyMsg, keys.Track):
		if !a.isTracked {
			return a, a.trackActiveFolderCmd()
		}

	case key.Matches(keyMsg, keys.Enter):
		if a.cursor < len(a.hooks) {
			return a.openHookPreview(a.hooks[a.cursor])
		}

	case key.Matches(keyMsg, keys.Refresh):
		return a, a.loadDataCmd
	}

	return a, nil
}

func (a App) updateKindPicker(msg tea.Msg) (App, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return a, nil
	}

	kinds := core.AllWizardKinds()

	switch {
	case key.Matches(keyMsg, keys.Quit):
		return a, tea.Quit
	case key.Matches(keyMsg, keys.Back):
		a.activeView = viewMain
	case key.Matches(keyMsg, keys.Up):
		if a.kindCursor > 0 {
			a.kindCursor--
		}
	case key.Matches(keyMsg, keys.Down):
		if a.kindCursor < len(kinds)-1 {
			a.kindCursor++
		}
	case key.Matches(keyMsg, keys.Enter):
		kind := kinds[a.kindCursor]
		dir := a.activeFolder
		return a, func() tea.Msg {
			return openHookWizardMsg{kind: kind, projectDir: dir}
		}
	}

	return a, nil
}

func (a App) updateFolderPicker(msg tea.Msg) (App, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return a, nil
	}

	// The launch directory is always offered first, then tracked folders.
	choices := a.folderChoices()

	switch {
	case key.Matches(keyMsg, keys.Quit):
		return a, tea.Quit
	case key.Matches(keyMsg, keys.Back):
		a.activeView = viewMain
	case key.Matches(keyMsg, keys.Up):
		if a.folderCursor > 0 {
			a.folderCursor--
		}
	case key.Matches(keyMsg, keys.Down):
		if a.folderCursor < len(choices)-1 {
			a.folderCursor++
		}
	case key.Matches(keyMsg, keys.Enter):
		if a.folderCursor < len(choices) {
			a.activeFolder = choices[a.folderCursor]
			a.activeView = viewMain
			a.cursor = 0
			return a, a.loadDataCmd
		}
	}

	return a, nil
}

func (a App) updateHookPreview(msg tea.Msg) (App, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.Quit):
			return a, tea.Quit
		case key.Matches(keyMsg, keys.Back):
			a.activeView = viewMain
			return a, nil
		}
	}

	var cmd tea.Cmd
	a.previewViewport, cmd = a.previewViewport.Update(msg)
	return a, cmd
}

// openHookPreview opens the detail overlay for the selected hook and kicks
// off background glamour rendering.
func (a App) openHookPreview(hook core.InstalledHook) (App, tea.Cmd) {
	a.previewTitle = fmt.Sprintf("%s #%d", hook.Event, hook.Index)
	a.activeView = viewHookPreview

	w, h := a.innerContentSize()
	a.previewViewport = viewport.New(w, max(0, h-2))
	a.previewViewport.SetContent(mutedStyle.Render("Rendering..."))

	var b strings.Builder
	fmt.Fprintf(&b, "## %s\n\n", a.previewTitle)
	if hook.Matcher != "" {
		fmt.Fprintf(&b, "Matcher: `%s`\n\n", hook.Matcher)
	}
	if hook.Timeout > 0 {
		fmt.Fprintf(&b, "Timeout: %ds\n\n", hook.Timeout)
	}
	fmt.Fprintf(&b, "```\n%s\n```\n", hook.Command)
	md := b.String()

	cached := a.glamourRenderer
	width := w

	return a, func() tea.Msg {
		r := cached
		if r == nil {
			var err error
			r, err = glamour.NewTermRenderer(
				glamour.WithAutoStyle(),
				glamour.WithWordWrap(width),
			)
			if err != nil {
				return previewRenderedMsg{content: md}
			}
		}
		out, err := r.Render(md)
		if err != nil {
			return previewRenderedMsg{content: md, renderer: r}
		}
		return previewRenderedMsg{content: out, renderer: r}
	}
}

// --- Commands ---

func (a App) loadDataCmd() tea.Msg {
	hooks, err := core.ListHooks(a.scope, a.activeFolder)
	if err != nil {
		return loadedDataMsg{err: err}
	}

	folders, err := a.folders.List()
	if err != nil {
		return loadedDataMsg{err: err}
	}

	tracked := false
	for _, f := range folders {
		if f.Path == a.activeFolder {
			tracked = true
			break
		}
	}

	return loadedDataMsg{
		hooks:     hooks,
		folders:   folders,
		isTracked: tracked,
	}
}

func (a App) removeHookCmd(hook core.InstalledHook) tea.Cmd {
	scope := a.scope
	dir := a.activeFolder
	return func() tea.Msg {
		if err := core.RemoveHook(scope, dir, hook.Event, hook.Index); err != nil {
			return errMsg{err: err}
		}
		return a.loadDataCmd()
	}
}

func (a App) trackActiveFolderCmd() tea.Cmd {
	path := a.activeFolder
	return func() tea.Msg {
		if err := a.folders.Add(path); err != nil {
			return errMsg{err: err}
		}
		return a.loadDataCmd()
	}
}

// folderChoices returns the selectable paths for the folder picker: the
// launch directory first, then every tracked folder not already listed.
func (a App) folderChoices() []string {
	choices := []string{a.cwd}
	for _, f := range a.trackedFolders {
		if f.Path != a.cwd {
			choices = append(choices, f.Path)
		}
	}
	return choices
}

// --- Layout ---

func (a *App) propagateSize() {
	w, h := a.innerContentSize()
	a.hookWizard = a.hookWizard.setSize(w, h)
	a.confirm = a.confirm.setSize(w, h)
	if a.activeView == viewHookPreview {
		a.previewViewport.Width = w
		a.previewViewport.Height = max(0, h-2)
	}
}

// innerContentSize computes the text content area available to sub-models:
// the space inside contentStyle after border and padding, minus the header
// and help bar chrome.
func (a App) innerContentSize() (width, height int) {
	header := a.renderHeader()
	helpBar := a.renderHelpBar()

	// JoinVertical separators between header, content, help bar.
	separators := 2
	chromeH := lipgloss.Height(header) + lipgloss.Height(helpBar) + separators

	frameV := contentStyle.GetVerticalFrameSize()
	frameH := contentStyle.GetHorizontalFrameSize()

	width = max(0, a.width-frameH)
	height = max(0, a.height-chromeH-frameV)
	return width, height
}

func (a App) View() string {
	if !a.ready {
		return "loading..."
	}

	header := a.renderHeader()

	var content string
	switch a.activeView {
	case viewMain:
		content = a.renderMain()
	case viewKindPicker:
		content = a.renderKindPicker()
	case viewFolderPicker:
		content = a.renderFolderPicker()
	case viewHookPreview:
		content = a.renderHookPreview()
	case viewWizard:
		content = a.hookWizard.view()
	}

	if a.confirm.active {
		content = a.confirm.view()
	}

	w, h := a.innerContentSize()
	content = clampHeight(clampWidth(content, w), h)

	styled := contentStyle.
		Width(max(0, a.width-contentStyle.GetHorizontalBorderSize())).
		Height(h + contentStyle.GetVerticalPadding()).
		Render(content)

	helpBar := a.renderHelpBar()

	return lipgloss.JoinVertical(lipgloss.Left, header, styled, helpBar)
}

func (a App) renderHeader() string {
	logo := logoStyle.Render("hookrow")

	path := a.activeFolder
	if home, err := os.UserHomeDir(); err == nil && strings.HasPrefix(path, home) {
		path = "~" + strings.TrimPrefix(path, home)
	}

	scopeBadge := badgeStyle.Render("[" + string(a.scope) + "]")

	tracked := ""
	if !a.isTracked && a.scope == core.ScopeProject {
		tracked = warningStyle.Render("  untracked (t to track)")
	}

	return logo + headerPathStyle.Render(path) + scopeBadge + tracked
}

func (a App) renderMain() string {
	var b strings.Builder

	b.WriteString(renderSectionHeader("HOOKS") + "\n\n")

	if len(a.hooks) == 0 {
		b.WriteString("  " + mutedStyle.Render("No hooks installed. Press a to add one.") + "\n")
		return b.String()
	}

	for i, hook := range a.hooks {
		badge := badgeStyle.Render(string(hook.Event))
		summary := hook.Command
		line := fmt.Sprintf("%s %s", badge, summary)
		if hook.Matcher != "" {
			line = fmt.Sprintf("%s (%s) %s", badge, hook.Matcher, summary)
		}
		if i == a.cursor {
			b.WriteString(selectedItemStyle.Render("> ") + line + "\n")
		} else {
			b.WriteString("  " + normalItemStyle.Render(line) + "\n")
		}
	}

	return b.String()
}

func (a App) renderKindPicker() string {
	var b strings.Builder

	b.WriteString(renderSectionHeader("ADD HOOK") + "\n\n")

	for i, kind := range core.AllWizardKinds() {
		title := wizardTitle(kind)
		if i == a.kindCursor {
			b.WriteString(selectedItemStyle.Render("> "+title) + "\n")
			b.WriteString("    " + mutedStyle.Render(wizardDescription(kind)) + "\n")
		} else {
			b.WriteString("  " + normalItemStyle.Render(title) + "\n")
		}
	}

	return b.String()
}

func (a App) renderFolderPicker() string {
	var b strings.Builder

	b.WriteString(renderSectionHeader("FOLDERS") + "\n\n")

	for i, path := range a.folderChoices() {
		label := path
		if path == a.cwd {
			label += mutedStyle.Render("  (current)")
		}
		if i == a.folderCursor {
			b.WriteString(selectedItemStyle.Render("> ") + label + "\n")
		} else {
			b.WriteString("  " + normalItemStyle.Render(label) + "\n")
		}
	}

	return b.String()
}

func (a App) renderHookPreview() string {
	title := sectionHeaderStyle.Render(a.previewTitle)
	return lipgloss.JoinVertical(lipgloss.Left, title, "", a.previewViewport.View())
}

func (a App) renderHelpBar() string {
	if toast := a.toast.view(); toast != "" {
		return toast
	}

	switch a.activeView {
	case viewWizard:
		return " " + helpStyle.Render(wizardKeyHelp)
	case viewHookPreview:
		return " " + helpStyle.Render("↑/↓ scroll • esc back • q quit")
	case viewKindPicker, viewFolderPicker:
		return " " + helpStyle.Render("↑/↓ navigate • enter select • esc back • q quit")
	}

	return " " + a.help.View(keys)
}

// clampHeight truncates content to at most maxLines lines so a sub-model
// that renders too tall cannot push the header off-screen.
func clampHeight(content string, maxLines int) string {
	if maxLines <= 0 {
		return ""
	}
	lines := strings.Split(content, "\n")
	if len(lines) <= maxLines {
		return content
	}
	return strings.Join(lines[:maxLines], "\n")
}

// clampWidth truncates each line to at most maxWidth visible characters
// (ANSI-escape aware). Long lines would otherwise wrap inside the
// Width()-constrained box and inflate its rendered height.
func clampWidth(content string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	lines := strings.Split(content, "\n")
	for i, line := range lines {
		if lipgloss.Width(line) > maxWidth {
			lines[i] = ansi.Truncate(line, maxWidth, "")
		}
	}
	return strings.Join(lines, "\n")
}
