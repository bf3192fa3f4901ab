package model

import (
	"errors"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"
)

const (
	MaxNameLength = 100
	MinPriority   = 1
	MaxPriority   = 5
)

var (
	ErrNameTooLong        = errors.New("model: task name is longer than 100 characters")
	ErrPriorityNotNumber  = errors.New("model: task priority is not a number")
	ErrPriorityOutOfRange = errors.New("model: task priority is not between 1 and 5")
	ErrIDNotNumber        = errors.New("model: task id is not a number")
)

var databaseNamePattern = regexp.MustCompile(`^[A-Za-z0-9_-]*$`)

// Task is a value: edits produce a new Task rather than mutating a shared one.
type Task struct {
	ID       int
	Name     string
	Priority int
}

func New(name string, priority, id int) Task {
	return Task{ID: id, Name: name, Priority: priority}
}

// WithPriority returns a copy of t with the same name and id.
func (t Task) WithPriority(priority int) Task {
	return Task{ID: t.ID, Name: t.Name, Priority: priority}
}

func ValidateName(name string) error {
	if utf8.RuneCountInString(name) > MaxNameLength {
		return ErrNameTooLong
	}
	return nil
}

func ValidatePriority(priority int) error {
	if priority < MinPriority || priority > MaxPriority {
		return ErrPriorityOutOfRange
	}
	return nil
}

func ParsePriority(raw string) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, ErrPriorityNotNumber
	}
	if err := ValidatePriority(v); err != nil {
		return 0, err
	}
	return v, nil
}

func ParseID(raw string) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, ErrIDNotNumber
	}
	return v, nil
}

// IsValidDatabaseName accepts letters, digits, hyphens and underscores only.
// The empty name is accepted.
func IsValidDatabaseName(name string) bool {
	return databaseNamePattern.MatchString(name)
}
