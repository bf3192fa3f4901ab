package update

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/mintask/internal/model"
	"github.com/sandeepkv93/mintask/internal/views"
)

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.KeyMsg:
		if m.isQuitKey(typed.String()) {
			m.Quitting = true
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		if h := typed.Height - chromeHeight; h > 0 {
			m.table.SetHeight(h)
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if m.Quitting {
		return ""
	}
	var b strings.Builder
	b.WriteString(views.Title(m.Title) + "\n")
	if len(m.Tasks) == 0 {
		b.WriteString("(no tasks)\n")
	} else {
		b.WriteString(tableFrameStyle.Render(m.table.View()) + "\n")
	}
	footer := fmt.Sprintf("%d tasks", len(m.Tasks))
	if id, ok := m.SelectedID(); ok {
		footer += fmt.Sprintf(" | selected id: %d", id)
	}
	b.WriteString(footerStyle.Render(footer) + "\n")
	b.WriteString(footerStyle.Render("keys: [j/k]move [g/G]top/bottom [q]back"))
	return b.String()
}

// Run shows the browse view until the user quits or ctx is cancelled.
func Run(ctx context.Context, title string, tasks []model.Task, in io.Reader, out io.Writer) error {
	program := tea.NewProgram(NewModel(title, tasks),
		tea.WithContext(ctx),
		tea.WithInput(in),
		tea.WithOutput(out),
	)
	if _, err := program.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return ctx.Err()
		}
		return fmt.Errorf("browse: %w", err)
	}
	return nil
}
