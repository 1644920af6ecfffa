package tui

import (
	"strings"
	"testing"
)

func TestNewToastModel(t *testing.T) {
	m := newToastModel()
	if m.active {
		t.Error("new toast should not be active")
	}
	if m.message != "" {
		t.Errorf("message = %q, want empty", m.message)
	}
	if m.nextID != 0 {
		t.Errorf("nextID = %d, want 0", m.nextID)
	}
}

func TestToastShow_Success(t *testing.T) {
	m := newToastModel()
	m, cmd := m.show("installed 6 hook(s)", toastSuccess)

	if !m.active {
		t.Error("toast should be active after show")
	}
	if m.message != "installed 6 hook(s)" {
		t.Errorf("message = %q, want %q", m.message, "installed 6 hook(s)")
	}
	if m.kind != toastSuccess {
		t.Errorf("kind = %d, want toastSuccess (%d)", m.kind, toastSuccess)
	}
	if cmd == nil {
		t.Error("show(success) should return a cmd for auto-dismiss timer")
	}
}

func TestToastShow_Loading(t *testing.T) {
	m := newToastModel()
	m, cmd := m.show("Installing hooks...", toastLoading)

	if !m.active {
		t.Error("toast should be active after show")
	}
	if m.kind != toastLoading {
		t.Errorf("kind = %d, want toastLoading (%d)", m.kind, toastLoading)
	}
	if cmd == nil {
		t.Error("show(loading) should return a cmd for spinner tick")
	}
}

func TestToastUpdate_DismissMatchingID(t *testing.T) {
	m := newToastModel()
	m, _ = m.show("hello", toastSuccess)
	id := m.id

	m, _ = m.update(toastDismissMsg{id: id})
	if m.active {
		t.Error("toast should be dismissed when IDs match")
	}
}

func TestToastUpdate_IgnoresStaleID(t *testing.T) {
	m := newToastModel()
	m, _ = m.show("first", toastSuccess)
	staleID := m.id
	m, _ = m.show("second", toastError)

	m, _ = m.update(toastDismissMsg{id: staleID})
	if !m.active {
		t.Error("stale dismiss timer should not hide the newer toast")
	}
	if m.message != "second" {
		t.Errorf("message = %q, want %q", m.message, "second")
	}
}

func TestToastView(t *testing.T) {
	m := newToastModel()
	if m.view() != "" {
		t.Error("inactive toast should render empty")
	}

	m, _ = m.show("saved", toastSuccess)
	if !strings.Contains(m.view(), "saved") {
		t.Errorf("view = %q, want it to contain %q", m.view(), "saved")
	}
}
