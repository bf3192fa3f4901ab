package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/sandeepkv93/mintask/internal/model"
	"github.com/sandeepkv93/mintask/internal/storage"
)

type ValidationError struct {
	Name string
}

func (e *ValidationError) Error() string {
	return "Database name incorrect."
}

// Startup picks the database the session works on, creating it when it does
// not exist yet.
type Startup struct {
	Console   *Console
	Store     storage.Store
	LoadPause time.Duration
	Logger    *log.Logger
}

// Select resolves the database name. When supplied is false the user is
// asked for a name until a valid one is given; a supplied invalid name is a
// *ValidationError.
func (s Startup) Select(ctx context.Context, name string, supplied bool) (string, error) {
	if s.Console == nil || s.Store == nil {
		return "", errors.New("session: startup needs a console and a store")
	}
	logger := orDiscard(s.Logger)

	if supplied {
		s.Console.Println("Path included. Checking for existing databases.")
		if !model.IsValidDatabaseName(name) {
			return "", &ValidationError{Name: name}
		}
	} else {
		s.Console.Println("No path selected. Select a database.")
		prompted, err := s.promptName(ctx)
		if err != nil {
			return "", err
		}
		name = prompted
	}

	if s.Store.Exists(name) {
		s.Console.Println("Database found. Loading the program.")
		if err := pause(ctx, s.LoadPause); err != nil {
			return "", err
		}
		logger.Debug("opening database", "path", s.Store.Path(name))
		return name, nil
	}

	s.Console.Println("Creating new database")
	if err := s.Store.Create(ctx, name); err != nil {
		logger.Error("create database failed", "path", s.Store.Path(name), "err", err)
		return "", fmt.Errorf("create database %q: %w", name, err)
	}
	logger.Info("created database", "path", s.Store.Path(name))
	return name, nil
}

func (s Startup) promptName(ctx context.Context) (string, error) {
	for {
		name, err := s.Console.Prompt(ctx, "Introduce a name (no spaces): ")
		if err != nil {
			return "", err
		}
		if model.IsValidDatabaseName(name) {
			return name, nil
		}
		s.Console.Println("That name is incorrect. Only letters, numbers, hyphens and underscores allowed.")
	}
}

func pause(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ErrInterrupted
	case <-timer.C:
		return nil
	}
}
