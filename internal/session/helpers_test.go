package session

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/sandeepkv93/mintask/internal/model"
)

type memStore struct {
	databases map[string][]model.Task
	saves     int
	saveErr   error
	createErr error
}

func newMemStore() *memStore {
	return &memStore{databases: make(map[string][]model.Task)}
}

func (s *memStore) Load(_ context.Context, database string) ([]model.Task, error) {
	tasks, ok := s.databases[database]
	if !ok {
		return nil, errors.New("missing database")
	}
	return append([]model.Task(nil), tasks...), nil
}

func (s *memStore) Save(_ context.Context, tasks []model.Task, database string) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	s.saves++
	s.databases[database] = append([]model.Task{}, tasks...)
	return nil
}

func (s *memStore) Create(_ context.Context, database string) error {
	if s.createErr != nil {
		return s.createErr
	}
	if _, ok := s.databases[database]; !ok {
		s.databases[database] = []model.Task{}
	}
	return nil
}

func (s *memStore) Exists(database string) bool {
	_, ok := s.databases[database]
	return ok
}

func (s *memStore) Path(database string) string {
	return "mem/" + database
}

type countingScreen struct {
	out    *bytes.Buffer
	clears int
}

func (s *countingScreen) Clear() {
	s.clears++
	s.out.WriteString("<clear>")
}

type harness struct {
	proc   *Processor
	store  *memStore
	screen *countingScreen
	out    *bytes.Buffer
}

func newHarness(t *testing.T, input string, tasks []model.Task) *harness {
	t.Helper()
	out := &bytes.Buffer{}
	store := newMemStore()
	store.databases["tasks"] = append([]model.Task(nil), tasks...)
	screen := &countingScreen{out: out}
	proc, err := New(Options{
		AppName:  "The Minimalist Tasker",
		Database: "tasks",
		Store:    store,
		Tasks:    tasks,
		Console:  NewConsole(strings.NewReader(input), out),
		Screen:   screen,
	})
	if err != nil {
		t.Fatalf("new processor: %v", err)
	}
	return &harness{proc: proc, store: store, screen: screen, out: out}
}

func (h *harness) run(t *testing.T) error {
	t.Helper()
	return h.proc.Run(context.Background())
}

func assertOutputContains(t *testing.T, out string, wants ...string) {
	t.Helper()
	for _, want := range wants {
		if !strings.Contains(out, want) {
			t.Fatalf("expected output to contain %q, got:\n%s", want, out)
		}
	}
}
