package session

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/sandeepkv93/mintask/internal/model"
)

func newStartup(input string, store *memStore) (Startup, *bytes.Buffer) {
	out := &bytes.Buffer{}
	return Startup{Console: NewConsole(strings.NewReader(input), out), Store: store}, out
}

func TestSelectSuppliedInvalidName(t *testing.T) {
	store := newMemStore()
	s, out := newStartup("", store)
	_, err := s.Select(context.Background(), "javier hi", true)
	var ve *ValidationError
	if !errors.As(err, &ve) || ve.Name != "javier hi" {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if err.Error() != "Database name incorrect." {
		t.Fatalf("unexpected message: %q", err.Error())
	}
	if len(store.databases) != 0 {
		t.Fatal("invalid name must not create a database")
	}
	assertOutputContains(t, out.String(), "Path included. Checking for existing databases.")
}

func TestSelectSuppliedExisting(t *testing.T) {
	store := newMemStore()
	store.databases["davidom"] = []model.Task{model.New("a", 1, 0)}
	s, out := newStartup("", store)
	name, err := s.Select(context.Background(), "davidom", true)
	if err != nil || name != "davidom" {
		t.Fatalf("select = %q, %v", name, err)
	}
	assertOutputContains(t, out.String(), "Database found. Loading the program.")
}

func TestSelectSuppliedNewCreates(t *testing.T) {
	store := newMemStore()
	s, out := newStartup("", store)
	name, err := s.Select(context.Background(), "example_1-2", true)
	if err != nil || name != "example_1-2" {
		t.Fatalf("select = %q, %v", name, err)
	}
	if !store.Exists("example_1-2") {
		t.Fatal("expected database to be created")
	}
	assertOutputContains(t, out.String(), "Creating new database")
}

func TestSelectPromptsUntilValid(t *testing.T) {
	store := newMemStore()
	s, out := newStartup("bad name\nexample&\nmine\n", store)
	name, err := s.Select(context.Background(), "", false)
	if err != nil || name != "mine" {
		t.Fatalf("select = %q, %v", name, err)
	}
	got := out.String()
	assertOutputContains(t, got, "No path selected. Select a database.", "Introduce a name (no spaces): ", "Creating new database")
	if strings.Count(got, "That name is incorrect.") != 2 {
		t.Fatalf("expected two rejections, got:\n%s", got)
	}
}

func TestSelectCreateFailure(t *testing.T) {
	store := newMemStore()
	store.createErr = errors.New("permission denied")
	s, _ := newStartup("", store)
	if _, err := s.Select(context.Background(), "new", true); err == nil || !strings.Contains(err.Error(), "permission denied") {
		t.Fatalf("expected create failure, got %v", err)
	}
}

func TestSelectInputClosed(t *testing.T) {
	s, _ := newStartup("", newMemStore())
	if _, err := s.Select(context.Background(), "", false); !errors.Is(err, ErrInputClosed) {
		t.Fatalf("expected ErrInputClosed, got %v", err)
	}
}
