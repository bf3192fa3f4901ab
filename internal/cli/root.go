// Package cli wires configuration, storage and the interactive session into
// the mintask command.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/sandeepkv93/mintask/internal/config"
	"github.com/sandeepkv93/mintask/internal/model"
	"github.com/sandeepkv93/mintask/internal/session"
	"github.com/sandeepkv93/mintask/internal/storage"
	"github.com/sandeepkv93/mintask/internal/update"
	"github.com/spf13/cobra"
)

const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string {
	return e.err.Error()
}

func (e *exitError) Unwrap() error {
	return e.err
}

func NewRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mintask [filename]",
		Short: "Keep track of the tasks that matter to you, by priority",
		Long: "mintask keeps a short list of prioritized tasks in users/<filename>.csv.\n" +
			"Without a filename it asks for one. Unknown databases are created empty.",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr(), args)
		},
	}
}

// Execute runs the root command and exits with the appropriate code.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	root := NewRootCmd()
	err := root.ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitCode(err))
	}
	os.Exit(exitSuccess)
}

func exitCode(err error) int {
	var ee *exitError
	if errors.As(err, &ee) {
		return ee.code
	}
	return exitUserError
}

func run(ctx context.Context, in io.Reader, out, errOut io.Writer, args []string) error {
	cfg, err := config.Load(".")
	if err != nil {
		return &exitError{code: exitUserError, err: err}
	}
	logger := newLogger(errOut, cfg.LogLevel)

	store, err := storage.Open(cfg.Backend, cfg.DataDir, logger)
	if err != nil {
		return &exitError{code: exitUserError, err: err}
	}
	console := session.NewConsole(in, out)
	screen := session.NewTermScreen(out)

	name, supplied := "", false
	if len(args) == 1 {
		name, supplied = args[0], true
	}
	startup := session.Startup{Console: console, Store: store, LoadPause: cfg.LoadPause, Logger: logger}
	database, err := startup.Select(ctx, name, supplied)
	if err != nil {
		if interrupted(err) {
			farewell(screen, console, cfg.AppName)
			return nil
		}
		var ve *session.ValidationError
		if errors.As(err, &ve) {
			return &exitError{code: exitUserError, err: err}
		}
		return &exitError{code: exitSysError, err: err}
	}

	tasks, err := store.Load(ctx, database)
	if err != nil {
		logger.Error("load failed", "path", store.Path(database), "err", err)
		return &exitError{code: exitSysError, err: fmt.Errorf("could not load tasks: %w", err)}
	}

	proc, err := session.New(session.Options{
		AppName:  cfg.AppName,
		Database: database,
		Store:    store,
		Tasks:    tasks,
		Console:  console,
		Screen:   screen,
		Browser: session.BrowserFunc(func(ctx context.Context, title string, tasks []model.Task) error {
			return update.Run(ctx, title, tasks, in, out)
		}),
		Logger:    logger,
		SavePause: cfg.SavePause,
	})
	if err != nil {
		return &exitError{code: exitSysError, err: err}
	}

	if err := proc.Run(ctx); err != nil {
		if interrupted(err) {
			farewell(screen, console, cfg.AppName)
			return nil
		}
		return &exitError{code: exitSysError, err: err}
	}
	return nil
}

func interrupted(err error) bool {
	return errors.Is(err, session.ErrInterrupted) || errors.Is(err, session.ErrInputClosed)
}

// farewell ends the program like exit does, without offering to save.
func farewell(screen session.Clearer, console *session.Console, appName string) {
	screen.Clear()
	console.Println(fmt.Sprintf("Application closed. Thank you for using %s.", appName))
}

func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Prefix:          "mintask",
		Level:           level,
		ReportTimestamp: true,
	})
}
