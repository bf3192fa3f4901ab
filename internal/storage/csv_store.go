package storage

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/sandeepkv93/mintask/internal/model"
)

var csvHeader = []string{"name", "priority", "id"}

type CSVStore struct {
	dir    string
	logger *log.Logger
}

func NewCSVStore(dir string, logger *log.Logger) *CSVStore {
	return &CSVStore{dir: dir, logger: orDiscard(logger)}
}

func (s *CSVStore) Path(database string) string {
	return filepath.Join(s.dir, database+".csv")
}

func (s *CSVStore) Exists(database string) bool {
	info, err := os.Stat(s.Path(database))
	return err == nil && info.Mode().IsRegular()
}

func (s *CSVStore) Create(ctx context.Context, database string) error {
	if s.Exists(database) {
		return nil
	}
	return s.Save(ctx, nil, database)
}

func (s *CSVStore) Load(ctx context.Context, database string) ([]model.Task, error) {
	path := s.Path(database)
	f, err := os.Open(path)
	if err != nil {
		return nil, &StorageError{Op: "load", Path: path, Err: err}
	}
	defer f.Close()

	tasks, err := readTasks(ctx, f)
	if err != nil {
		return nil, &StorageError{Op: "load", Path: path, Err: err}
	}
	s.logger.Debug("loaded tasks", "path", path, "count", len(tasks))
	return tasks, nil
}

func (s *CSVStore) Save(ctx context.Context, tasks []model.Task, database string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	path := s.Path(database)
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return &StorageError{Op: "save", Path: path, Err: err}
	}
	tmp := path + ".tmp"
	if err := writeTasksFile(tmp, tasks); err != nil {
		_ = os.Remove(tmp)
		return &StorageError{Op: "save", Path: path, Err: err}
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return &StorageError{Op: "save", Path: path, Err: err}
	}
	s.logger.Debug("saved tasks", "path", path, "count", len(tasks))
	return nil
}

func writeTasksFile(path string, tasks []model.Task) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := writeTasks(f, tasks); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Sync(); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

func writeTasks(w io.Writer, tasks []model.Task) error {
	cw := csv.NewWriter(w)
	cw.UseCRLF = true
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, t := range tasks {
		if err := cw.Write([]string{t.Name, strconv.Itoa(t.Priority), strconv.Itoa(t.ID)}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func readTasks(ctx context.Context, r io.Reader) ([]model.Task, error) {
	cr := csv.NewReader(r)
	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return []model.Task{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: header: %v", ErrMalformedRecord, err)
	}
	cols, err := headerColumns(header)
	if err != nil {
		return nil, err
	}

	out := make([]model.Task, 0)
	for line := 2; ; line++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedRecord, err)
		}
		priority, err := strconv.Atoi(strings.TrimSpace(rec[cols["priority"]]))
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: priority %q is not an integer", ErrMalformedRecord, line, rec[cols["priority"]])
		}
		id, err := strconv.Atoi(strings.TrimSpace(rec[cols["id"]]))
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: id %q is not an integer", ErrMalformedRecord, line, rec[cols["id"]])
		}
		out = append(out, model.New(rec[cols["name"]], priority, id))
	}
	return out, nil
}

func headerColumns(header []string) (map[string]int, error) {
	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.TrimSpace(name)] = i
	}
	for _, want := range csvHeader {
		if _, ok := cols[want]; !ok {
			return nil, fmt.Errorf("%w: header is missing column %q", ErrMalformedRecord, want)
		}
	}
	return cols, nil
}
