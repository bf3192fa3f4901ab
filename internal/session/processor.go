package session

import (
	"context"
	"errors"
	"fmt"
	"io"
	"slices"
	"time"

	"github.com/charmbracelet/log"
	"github.com/sandeepkv93/mintask/internal/commands"
	"github.com/sandeepkv93/mintask/internal/model"
	"github.com/sandeepkv93/mintask/internal/storage"
	"github.com/sandeepkv93/mintask/internal/views"
)

type State int

const (
	StateRunning State = iota
	StateExited
)

func (s State) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StateExited:
		return "exited"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

const (
	msgInvalidCommand = "That is not a valid command."
	msgNoID           = "No id was found."
	msgIDNotNumber    = "The id is not a number."
)

type Options struct {
	AppName   string
	Database  string
	Store     storage.Store
	Tasks     []model.Task
	Console   *Console
	Screen    Clearer
	Browser   Browser
	Logger    *log.Logger
	SavePause time.Duration
}

// Processor owns the in-memory task collection for one session and runs the
// command loop against it.
type Processor struct {
	appName   string
	database  string
	store     storage.Store
	tasks     []model.Task
	console   *Console
	screen    Clearer
	browser   Browser
	logger    *log.Logger
	savePause time.Duration
	state     State
}

func New(opts Options) (*Processor, error) {
	if opts.Store == nil {
		return nil, errors.New("session: store is required")
	}
	if opts.Console == nil {
		return nil, errors.New("session: console is required")
	}
	p := &Processor{
		appName:   opts.AppName,
		database:  opts.Database,
		store:     opts.Store,
		tasks:     append([]model.Task(nil), opts.Tasks...),
		console:   opts.Console,
		screen:    opts.Screen,
		browser:   opts.Browser,
		logger:    orDiscard(opts.Logger),
		savePause: opts.SavePause,
		state:     StateRunning,
	}
	if p.screen == nil {
		p.screen = noopScreen{}
	}
	return p, nil
}

func (p *Processor) State() State {
	return p.state
}

func (p *Processor) Tasks() []model.Task {
	return append([]model.Task(nil), p.tasks...)
}

// Run draws the main screen and processes commands until exit. Interrupts
// and closed input surface as ErrInterrupted / ErrInputClosed.
func (p *Processor) Run(ctx context.Context) error {
	p.redraw(commands.Result{})
	for p.state == StateRunning {
		line, err := p.console.Prompt(ctx, "Introduce a command: ")
		if err != nil {
			return err
		}
		if err := p.Handle(ctx, line); err != nil {
			return err
		}
	}
	return nil
}

// Handle runs a single command line.
func (p *Processor) Handle(ctx context.Context, line string) error {
	if p.state != StateRunning {
		return nil
	}
	cmd, err := commands.Parse(line)
	if err != nil {
		p.redraw(commands.Result{Message: msgInvalidCommand})
		return nil
	}
	p.logger.Debug("command", "type", cmd.Type, "tasks", len(p.tasks))

	res, err := commands.Execute(cmd, p.handlers(ctx))
	if err != nil {
		var ce *commands.CommandError
		if errors.As(err, &ce) {
			p.redraw(commands.Result{Message: msgInvalidCommand})
			return nil
		}
		return err
	}
	if res.Exit {
		p.state = StateExited
		return nil
	}
	p.redraw(res)
	return nil
}

func (p *Processor) handlers(ctx context.Context) commands.Handlers {
	h := commands.Handlers{
		New:    func() (commands.Result, error) { return p.newTask(ctx) },
		Modify: func() (commands.Result, error) { return p.modifyTask(ctx) },
		Remove: func() (commands.Result, error) { return p.removeTask(ctx) },
		Save:   func() (commands.Result, error) { return p.saveTasks(ctx) },
		Exit:   func() (commands.Result, error) { return p.exit(ctx) },
		Help:   func() (commands.Result, error) { return commands.Result{Body: views.RenderHelp()}, nil },
	}
	if p.browser != nil {
		h.Browse = func() (commands.Result, error) { return p.browse(ctx) }
	}
	return h
}

func (p *Processor) newTask(ctx context.Context) (commands.Result, error) {
	p.screen.Clear()
	p.console.Println(views.Title("New Task"))

	name, err := p.promptName(ctx)
	if err != nil {
		return commands.Result{}, err
	}
	priority, err := p.promptPriority(ctx, "Task priority (1-5): ", "The priority is not a number.", "Priority is not 1 to 5.")
	if err != nil {
		return commands.Result{}, err
	}
	task := model.New(name, priority, model.NextID(model.TaskIDs(p.tasks)))
	p.tasks = append(p.tasks, task)
	p.logger.Debug("task added", "id", task.ID, "priority", task.Priority)
	return commands.Result{}, nil
}

func (p *Processor) modifyTask(ctx context.Context) (commands.Result, error) {
	p.screen.Clear()
	p.console.Print(views.RenderTaskScreen("Modify Task", p.tasks))

	idx, err := p.promptExistingID(ctx, "\nIntroduce the id of the task whose priority you want to modify: ")
	if err != nil {
		return commands.Result{}, err
	}
	priority, err := p.promptPriority(ctx, "Introduce the new priority for the task: ", "The new priority is not a number.", "Priority is not between 1 and 5.")
	if err != nil {
		return commands.Result{}, err
	}
	p.tasks[idx] = p.tasks[idx].WithPriority(priority)
	p.logger.Debug("task modified", "id", p.tasks[idx].ID, "priority", priority)
	return commands.Result{Message: "The task priority has been modified."}, nil
}

func (p *Processor) removeTask(ctx context.Context) (commands.Result, error) {
	p.screen.Clear()
	p.console.Print(views.RenderTaskScreen("Remove Task", p.tasks))

	idx, err := p.promptExistingID(ctx, "\nIntroduce the id of the task you want to remove: ")
	if err != nil {
		return commands.Result{}, err
	}
	removed := p.tasks[idx]
	p.tasks = slices.Delete(p.tasks, idx, idx+1)
	p.logger.Debug("task removed", "id", removed.ID)
	return commands.Result{Message: "The task has been removed."}, nil
}

func (p *Processor) saveTasks(ctx context.Context) (commands.Result, error) {
	ok, err := p.console.Confirm(ctx, "Saving will overwrite the file. Are you sure you want to save? (yes/no) ")
	if err != nil {
		return commands.Result{}, err
	}
	if !ok {
		return commands.Result{Message: "Tasks have not been saved."}, nil
	}
	if err := p.save(ctx); err != nil {
		if errors.Is(err, ErrInterrupted) {
			return commands.Result{}, err
		}
		return commands.Result{Message: fmt.Sprintf("Tasks could not be saved: %v", err), IsError: true}, nil
	}
	return commands.Result{Message: "The current tasks have been saved."}, nil
}

// exit keeps the session running when the requested save fails so the
// in-memory tasks are not lost.
func (p *Processor) exit(ctx context.Context) (commands.Result, error) {
	ok, err := p.console.Confirm(ctx, "Do you want to save the current tasks before exiting? (yes/no) ")
	if err != nil {
		return commands.Result{}, err
	}
	if ok {
		if err := p.save(ctx); err != nil {
			if errors.Is(err, ErrInterrupted) {
				return commands.Result{}, err
			}
			return commands.Result{Message: fmt.Sprintf("Tasks could not be saved: %v", err), IsError: true}, nil
		}
	}
	p.screen.Clear()
	p.console.Println(fmt.Sprintf("Thank you for using %s.", p.appName))
	return commands.Result{Exit: true}, nil
}

func (p *Processor) browse(ctx context.Context) (commands.Result, error) {
	if err := p.browser.Browse(ctx, p.appName, p.Tasks()); err != nil {
		if ctx.Err() != nil {
			return commands.Result{}, ErrInterrupted
		}
		p.logger.Error("browse failed", "err", err)
		return commands.Result{Message: fmt.Sprintf("Browse view failed: %v", err), IsError: true}, nil
	}
	return commands.Result{}, nil
}

func (p *Processor) save(ctx context.Context) error {
	if err := p.store.Save(ctx, p.tasks, p.database); err != nil {
		p.logger.Error("save failed", "path", p.store.Path(p.database), "err", err)
		return err
	}
	p.logger.Info("tasks saved", "path", p.store.Path(p.database), "count", len(p.tasks))
	p.console.Println("List of tasks saved.")
	return pause(ctx, p.savePause)
}

func (p *Processor) promptName(ctx context.Context) (string, error) {
	for {
		name, err := p.console.Prompt(ctx, "Task name (100 characters): ")
		if err != nil {
			return "", err
		}
		if err := model.ValidateName(name); err != nil {
			p.console.Println("Name is longer than 100 characters.")
			continue
		}
		return name, nil
	}
}

func (p *Processor) promptPriority(ctx context.Context, label, notNumber, outOfRange string) (int, error) {
	for {
		raw, err := p.console.Prompt(ctx, label)
		if err != nil {
			return 0, err
		}
		priority, err := model.ParsePriority(raw)
		switch {
		case errors.Is(err, model.ErrPriorityNotNumber):
			p.console.Println(notNumber)
		case errors.Is(err, model.ErrPriorityOutOfRange):
			p.console.Println(outOfRange)
		default:
			return priority, nil
		}
	}
}

// promptExistingID loops until the user names an id present in the
// collection and returns its index.
func (p *Processor) promptExistingID(ctx context.Context, label string) (int, error) {
	for {
		raw, err := p.console.Prompt(ctx, label)
		if err != nil {
			return 0, err
		}
		id, err := model.ParseID(raw)
		if err != nil {
			p.console.Println(msgIDNotNumber)
			continue
		}
		if idx, ok := model.FindByID(p.tasks, id); ok {
			return idx, nil
		}
		p.console.Println(msgNoID)
	}
}

func (p *Processor) redraw(res commands.Result) {
	p.screen.Clear()
	p.console.Print(views.RenderScreen(views.ScreenData{
		AppName: p.appName,
		Tasks:   p.tasks,
		Message: res.Message,
		IsError: res.IsError,
	}))
	if res.Body != "" {
		p.console.Println(res.Body)
	}
}

func orDiscard(logger *log.Logger) *log.Logger {
	if logger == nil {
		return log.New(io.Discard)
	}
	return logger
}
