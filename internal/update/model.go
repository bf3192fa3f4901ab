package update

import (
	"strconv"
	"unicode/utf8"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
	"github.com/sandeepkv93/mintask/internal/model"
	"github.com/sandeepkv93/mintask/internal/views"
)

const (
	defaultTableHeight = 10
	// title, border, footer and hint lines around the table
	chromeHeight = 8
)

type GlobalKeyMap struct {
	Quit []string
}

// Model is a read-only, scrollable view over a task collection.
type Model struct {
	Title    string
	Tasks    []model.Task
	Keys     GlobalKeyMap
	Quitting bool

	table table.Model
}

var (
	tableFrameStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("8"))
	footerStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

func NewModel(title string, tasks []model.Task) Model {
	sorted := views.SortByPriority(tasks)
	m := Model{
		Title: title,
		Tasks: sorted,
		Keys:  GlobalKeyMap{Quit: []string{"q", "esc", "ctrl+c"}},
	}
	m.table = table.New(
		table.WithColumns(columnsFor(sorted)),
		table.WithRows(rowsFor(sorted)),
		table.WithFocused(true),
		table.WithHeight(defaultTableHeight),
	)
	styles := table.DefaultStyles()
	styles.Header = styles.Header.Bold(true)
	m.table.SetStyles(styles)
	return m
}

// SelectedID returns the id under the cursor, or false for an empty list.
func (m Model) SelectedID() (int, bool) {
	row := m.table.SelectedRow()
	if len(row) == 0 {
		return 0, false
	}
	id, err := strconv.Atoi(row[0])
	if err != nil {
		return 0, false
	}
	return id, true
}

func columnsFor(tasks []model.Task) []table.Column {
	nameWidth := 4
	for _, t := range tasks {
		if n := utf8.RuneCountInString(t.Name); n > nameWidth {
			nameWidth = n
		}
	}
	if nameWidth > model.MaxNameLength {
		nameWidth = model.MaxNameLength
	}
	return []table.Column{
		{Title: "Id", Width: 4},
		{Title: "Priority", Width: 8},
		{Title: "Name", Width: nameWidth},
	}
}

func rowsFor(tasks []model.Task) []table.Row {
	rows := make([]table.Row, 0, len(tasks))
	for _, r := range views.TaskRows(tasks) {
		rows = append(rows, table.Row(r))
	}
	return rows
}

func (m Model) isQuitKey(key string) bool {
	for _, k := range m.Keys.Quit {
		if k == key {
			return true
		}
	}
	return false
}
