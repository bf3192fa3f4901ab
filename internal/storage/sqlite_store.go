package storage

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	_ "github.com/mattn/go-sqlite3"
	"github.com/sandeepkv93/mintask/internal/model"
)

// SQLiteStore keeps each database in its own sqlite file. Every call opens
// and closes its own connection.
type SQLiteStore struct {
	dir    string
	logger *log.Logger
}

func NewSQLiteStore(dir string, logger *log.Logger) *SQLiteStore {
	return &SQLiteStore{dir: dir, logger: orDiscard(logger)}
}

func (s *SQLiteStore) Path(database string) string {
	return filepath.Join(s.dir, database+".db")
}

func (s *SQLiteStore) Exists(database string) bool {
	info, err := os.Stat(s.Path(database))
	return err == nil && info.Mode().IsRegular()
}

func (s *SQLiteStore) Create(ctx context.Context, database string) error {
	if s.Exists(database) {
		return nil
	}
	path := s.Path(database)
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return &StorageError{Op: "create", Path: path, Err: err}
	}
	db, err := openSQLite(ctx, path)
	if err != nil {
		return &StorageError{Op: "create", Path: path, Err: err}
	}
	return closeDB(db, "create", path)
}

func (s *SQLiteStore) Load(ctx context.Context, database string) ([]model.Task, error) {
	path := s.Path(database)
	if !s.Exists(database) {
		return nil, &StorageError{Op: "load", Path: path, Err: os.ErrNotExist}
	}
	db, err := openSQLite(ctx, path)
	if err != nil {
		return nil, &StorageError{Op: "load", Path: path, Err: err}
	}
	defer db.Close()

	rows, err := db.QueryContext(ctx, `SELECT id, name, priority FROM tasks ORDER BY id ASC`)
	if err != nil {
		return nil, &StorageError{Op: "load", Path: path, Err: err}
	}
	defer rows.Close()

	out := make([]model.Task, 0)
	for rows.Next() {
		task, scanErr := scanTask(rows)
		if scanErr != nil {
			return nil, &StorageError{Op: "load", Path: path, Err: fmt.Errorf("%w: %v", ErrMalformedRecord, scanErr)}
		}
		out = append(out, task)
	}
	if err := rows.Err(); err != nil {
		return nil, &StorageError{Op: "load", Path: path, Err: err}
	}
	s.logger.Debug("loaded tasks", "path", path, "count", len(out))
	return out, nil
}

func (s *SQLiteStore) Save(ctx context.Context, tasks []model.Task, database string) error {
	path := s.Path(database)
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return &StorageError{Op: "save", Path: path, Err: err}
	}
	db, err := openSQLite(ctx, path)
	if err != nil {
		return &StorageError{Op: "save", Path: path, Err: err}
	}
	if err := replaceTasks(ctx, db, tasks); err != nil {
		_ = db.Close()
		return &StorageError{Op: "save", Path: path, Err: err}
	}
	if err := closeDB(db, "save", path); err != nil {
		return err
	}
	s.logger.Debug("saved tasks", "path", path, "count", len(tasks))
	return nil
}

func openSQLite(ctx context.Context, path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}
	if err := MigrateUp(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

func replaceTasks(ctx context.Context, db *sql.DB, tasks []model.Task) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM tasks`); err != nil {
		return err
	}
	stmt, err := tx.PrepareContext(ctx, `INSERT INTO tasks (id, name, priority) VALUES (?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()
	for _, t := range tasks {
		if _, err := stmt.ExecContext(ctx, t.ID, t.Name, t.Priority); err != nil {
			return fmt.Errorf("insert task %d: %w", t.ID, err)
		}
	}
	return tx.Commit()
}

func closeDB(db *sql.DB, op, path string) error {
	if err := db.Close(); err != nil {
		return &StorageError{Op: op, Path: path, Err: err}
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanTask(s scanner) (model.Task, error) {
	var out model.Task
	if err := s.Scan(&out.ID, &out.Name, &out.Priority); err != nil {
		return model.Task{}, err
	}
	return out, nil
}
