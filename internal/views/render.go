package views

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/sandeepkv93/mintask/internal/model"
)

type ScreenData struct {
	AppName string
	Tasks   []model.Task
	Message string
	IsError bool
}

var (
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

// RenderScreen is the main screen: heading, task table, command bar and an
// optional status line.
func RenderScreen(data ScreenData) string {
	lines := []string{
		Title(data.AppName),
		RenderTasks(data.Tasks),
		CommandBar(),
	}
	if data.Message != "" {
		lines = append(lines, RenderStatus(data.Message, data.IsError))
	}
	return strings.Join(lines, "\n") + "\n"
}

// RenderTaskScreen is the heading plus the task table, shown before an id
// prompt.
func RenderTaskScreen(title string, tasks []model.Task) string {
	return Title(title) + "\n" + RenderTasks(tasks) + "\n"
}

func RenderStatus(msg string, isErr bool) string {
	if isErr {
		return errorStyle.Render(msg)
	}
	return statusStyle.Render(msg)
}

func RenderMarkdown(md string) string {
	if strings.TrimSpace(md) == "" {
		return ""
	}
	out, err := glamour.Render(md, "dark")
	if err != nil {
		return md
	}
	return strings.TrimSpace(out)
}

const helpMarkdown = `# Commands

| Command | What it does |
|---|---|
| new | add a task with a name (up to 100 characters) and a priority from 1 to 5 |
| modify | change the priority of a task, chosen by id |
| remove | delete a task, chosen by id |
| save | overwrite the database file with the current tasks |
| browse | scroll through the tasks; press q to go back |
| help | show this page |
| exit | optionally save, then quit |

Priority 1 is the most urgent and is listed first.
`

func RenderHelp() string {
	return RenderMarkdown(helpMarkdown)
}
