package update

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/mintask/internal/model"
)

func sampleTasks() []model.Task {
	return []model.Task{
		model.New("Walk dog", 4, 0),
		model.New("Taxes", 1, 1),
		model.New("Email Ana", 1, 2),
	}
}

func TestNewModelSortsByPriority(t *testing.T) {
	m := NewModel("Browse", sampleTasks())
	if len(m.Tasks) != 3 {
		t.Fatalf("expected 3 tasks, got %d", len(m.Tasks))
	}
	if m.Tasks[0].Name != "Taxes" || m.Tasks[1].Name != "Email Ana" || m.Tasks[2].Name != "Walk dog" {
		t.Fatalf("unexpected order: %#v", m.Tasks)
	}
	id, ok := m.SelectedID()
	if !ok || id != 1 {
		t.Fatalf("expected cursor on id 1, got %d %v", id, ok)
	}
}

func TestUpdateMovesCursor(t *testing.T) {
	m := NewModel("Browse", sampleTasks())
	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
	next := updated.(Model)
	id, ok := next.SelectedID()
	if !ok || id != 2 {
		t.Fatalf("expected cursor on id 2 after down, got %d %v", id, ok)
	}
}

func TestUpdateQuitKeys(t *testing.T) {
	for _, msg := range []tea.KeyMsg{
		{Type: tea.KeyRunes, Runes: []rune{'q'}},
		{Type: tea.KeyEsc},
		{Type: tea.KeyCtrlC},
	} {
		m := NewModel("Browse", sampleTasks())
		updated, cmd := m.Update(msg)
		next := updated.(Model)
		if !next.Quitting {
			t.Fatalf("expected quitting flag for %q", msg.String())
		}
		if cmd == nil {
			t.Fatalf("expected quit command for %q", msg.String())
		}
		if next.View() != "" {
			t.Fatal("expected empty view after quitting")
		}
	}
}

func TestUpdateWindowSizeKeepsState(t *testing.T) {
	m := NewModel("Browse", sampleTasks())
	updated, cmd := m.Update(tea.WindowSizeMsg{Width: 80, Height: 30})
	next := updated.(Model)
	if cmd != nil || next.Quitting {
		t.Fatalf("unexpected resize result: quitting=%v cmd=%v", next.Quitting, cmd)
	}
}

func TestViewContainsTitleAndSelection(t *testing.T) {
	out := NewModel("Browse", sampleTasks()).View()
	if !strings.Contains(out, "*  BROWSE  *") {
		t.Fatalf("expected title in view: %q", out)
	}
	if !strings.Contains(out, "Taxes") || !strings.Contains(out, "selected id: 1") {
		t.Fatalf("expected selection in view: %q", out)
	}
}

func TestViewEmpty(t *testing.T) {
	m := NewModel("Browse", nil)
	if _, ok := m.SelectedID(); ok {
		t.Fatal("expected no selection for empty list")
	}
	if !strings.Contains(m.View(), "(no tasks)") {
		t.Fatalf("unexpected empty view: %q", m.View())
	}
}
