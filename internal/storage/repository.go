package storage

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/sandeepkv93/mintask/internal/model"
)

const (
	BackendCSV    = "csv"
	BackendSQLite = "sqlite"
)

var (
	ErrMalformedRecord = errors.New("storage: malformed record")
	ErrUnknownBackend  = errors.New("storage: unknown backend")
)

// Store persists one task collection per database name. Save replaces the
// whole stored collection.
type Store interface {
	Load(ctx context.Context, database string) ([]model.Task, error)
	Save(ctx context.Context, tasks []model.Task, database string) error
	Create(ctx context.Context, database string) error
	Exists(database string) bool
	Path(database string) string
}

type StorageError struct {
	Op   string
	Path string
	Err  error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage: %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

func Open(backend, dataDir string, logger *log.Logger) (Store, error) {
	switch backend {
	case BackendCSV, "":
		return NewCSVStore(dataDir, logger), nil
	case BackendSQLite:
		return NewSQLiteStore(dataDir, logger), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, backend)
	}
}

func orDiscard(logger *log.Logger) *log.Logger {
	if logger == nil {
		return log.New(io.Discard)
	}
	return logger
}
