package model

import (
	"errors"
	"strings"
	"testing"
)

func TestWithPriorityKeepsNameAndID(t *testing.T) {
	task := New("Write report", 3, 7)
	changed := task.WithPriority(1)
	if changed.Name != "Write report" || changed.ID != 7 || changed.Priority != 1 {
		t.Fatalf("unexpected modified task: %+v", changed)
	}
	if task.Priority != 3 {
		t.Fatalf("original task mutated: %+v", task)
	}
}

func TestValidateName(t *testing.T) {
	if err := ValidateName(strings.Repeat("a", 100)); err != nil {
		t.Fatalf("expected 100 characters to be valid, got %v", err)
	}
	if err := ValidateName(strings.Repeat("é", 100)); err != nil {
		t.Fatalf("expected 100 multibyte characters to be valid, got %v", err)
	}
	err := ValidateName(strings.Repeat("a", 101))
	if !errors.Is(err, ErrNameTooLong) {
		t.Fatalf("expected ErrNameTooLong, got %v", err)
	}
}

func TestParsePriority(t *testing.T) {
	cases := []struct {
		in   string
		want int
		err  error
	}{
		{"1", 1, nil},
		{" 5 ", 5, nil},
		{"0", 0, ErrPriorityOutOfRange},
		{"6", 0, ErrPriorityOutOfRange},
		{"-2", 0, ErrPriorityOutOfRange},
		{"high", 0, ErrPriorityNotNumber},
		{"", 0, ErrPriorityNotNumber},
		{"2.5", 0, ErrPriorityNotNumber},
	}
	for _, tc := range cases {
		got, err := ParsePriority(tc.in)
		if !errors.Is(err, tc.err) {
			t.Fatalf("ParsePriority(%q) err = %v, want %v", tc.in, err, tc.err)
		}
		if got != tc.want {
			t.Fatalf("ParsePriority(%q) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestParseID(t *testing.T) {
	if id, err := ParseID(" 12 "); err != nil || id != 12 {
		t.Fatalf("ParseID = %d, %v", id, err)
	}
	if _, err := ParseID("twelve"); !errors.Is(err, ErrIDNotNumber) {
		t.Fatalf("expected ErrIDNotNumber, got %v", err)
	}
}

func TestIsValidDatabaseName(t *testing.T) {
	cases := map[string]bool{
		"davidom":     true,
		"javier hi":   false,
		"example_1-2": true,
		"example&":    false,
		"":            true,
		"../etc":      false,
		"tab\tname":   false,
	}
	for in, want := range cases {
		if got := IsValidDatabaseName(in); got != want {
			t.Fatalf("IsValidDatabaseName(%q) = %v, want %v", in, got, want)
		}
	}
}
