package views

import (
	"sort"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/sandeepkv93/mintask/internal/commands"
	"github.com/sandeepkv93/mintask/internal/model"
)

var (
	tableHeaderStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	tableCellStyle   = lipgloss.NewStyle().Padding(0, 1)
)

// Title frames text as a three line heading. The output is byte-exact and
// carries no styling.
func Title(text string) string {
	border := "\t\t***" + strings.Repeat("*", utf8.RuneCountInString(text)) + "***"
	return border + "\n\t\t*  " + strings.ToUpper(text) + "  *\n" + border
}

// SortByPriority returns a copy ordered by ascending priority. Equal
// priorities keep their input order.
func SortByPriority(tasks []model.Task) []model.Task {
	out := append([]model.Task(nil), tasks...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Priority < out[j].Priority })
	return out
}

func TaskRows(tasks []model.Task) [][]string {
	sorted := SortByPriority(tasks)
	rows := make([][]string, 0, len(sorted))
	for _, t := range sorted {
		rows = append(rows, []string{strconv.Itoa(t.ID), strconv.Itoa(t.Priority), t.Name})
	}
	return rows
}

// RenderTasks draws the Id, Priority, Name table in priority order.
func RenderTasks(tasks []model.Task) string {
	tbl := table.New().
		Border(lipgloss.NormalBorder()).
		BorderTop(false).
		BorderBottom(false).
		BorderLeft(false).
		BorderRight(false).
		BorderColumn(false).
		Headers("Id", "Priority", "Name").
		Rows(TaskRows(tasks)...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return tableHeaderStyle
			}
			return tableCellStyle
		})
	return tbl.Render()
}

func CommandBar() string {
	names := make([]string, 0, len(commands.All))
	for _, c := range commands.All {
		names = append(names, string(c))
	}
	return "\nCommands:\t " + strings.Join(names, "\t ") + "\n"
}
