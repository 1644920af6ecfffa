package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// toastType defines the visual style and behavior of a toast notification.
type toastType int

const (
	toastSuccess toastType = iota
	toastError
	toastWarning
	toastLoading // Shows a spinner; persists until dismissed programmatically.
)

// toastAutoDismiss is how long success/error/warning toasts stay visible.
const toastAutoDismiss = 3 * time.Second

// toastModel manages a single toast notification displayed in the help bar
// area. At most one toast is visible at a time; showing a new toast replaces
// the previous one. The model is self-contained and has no App dependencies.
type toastModel struct {
	active  bool
	message string
	kind    toastType
	id      int // Monotonic ID to ignore stale dismiss timers.

	// Spinner for loading toasts.
	spinner spinner.Model

	nextID int
}

// toastDismissMsg is sent by the auto-dismiss timer.
type toastDismissMsg struct {
	id int
}

func newToastModel() toastModel {
	s := spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(spinnerStyle),
	)
	return toastModel{
		spinner: s,
	}
}

// show displays a new toast, replacing any existing one. Returns the model
// and the commands it needs (spinner tick or auto-dismiss timer).
func (m toastModel) show(message string, kind toastType) (toastModel, tea.Cmd) {
	m.active = true
	m.message = message
	m.kind = kind
	m.id = m.nextID
	m.nextID++

	var cmds []tea.Cmd

	switch kind {
	case toastLoading:
		// Spinner runs until dismissed; no timer.
		cmds = append(cmds, m.spinner.Tick)
	case toastSuccess, toastError, toastWarning:
		id := m.id
		cmds = append(cmds, tea.Tick(toastAutoDismiss, func(_ time.Time) tea.Msg {
			return toastDismissMsg{id: id}
		}))
	}

	return m, tea.Batch(cmds...)
}

// dismiss hides the toast immediately.
func (m toastModel) dismiss() toastModel {
	m.active = false
	m.message = ""
	return m
}

// update handles spinner ticks and auto-dismiss messages.
func (m toastModel) update(msg tea.Msg) (toastModel, tea.Cmd) {
	switch msg := msg.(type) {
	case toastDismissMsg:
		// Stale timers carry an old ID and must not dismiss newer toasts.
		if msg.id == m.id {
			m = m.dismiss()
		}
		return m, nil

	case spinner.TickMsg:
		if m.active && m.kind == toastLoading {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
	}

	return m, nil
}

// view renders the toast left-aligned with a 1 char indent, or an empty
// string when no toast is active.
func (m toastModel) view() string {
	if !m.active {
		return ""
	}

	var style lipgloss.Style
	switch m.kind {
	case toastSuccess:
		style = installedStyle
	case toastError:
		style = errorStyle
	case toastWarning:
		style = warningStyle
	case toastLoading:
		return " " + m.spinner.View() + mutedStyle.Render(m.message)
	}

	return " " + style.Render(m.message)
}
