package commands

import (
	"fmt"
	"strings"
)

type Type string

const (
	TypeNew    Type = "new"
	TypeModify Type = "modify"
	TypeRemove Type = "remove"
	TypeSave   Type = "save"
	TypeExit   Type = "exit"
	TypeHelp   Type = "help"
	TypeBrowse Type = "browse"
)

// All lists the supported commands in the order they are advertised.
var All = []Type{TypeNew, TypeSave, TypeModify, TypeRemove, TypeHelp, TypeBrowse, TypeExit}

type ErrorCode string

const (
	ErrCodeEmptyInput     ErrorCode = "empty_input"
	ErrCodeUnknownCommand ErrorCode = "unknown_command"
	ErrCodeHandlerMissing ErrorCode = "handler_missing"
)

type CommandError struct {
	Code    ErrorCode
	Message string
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

type Command struct {
	Type Type
	Raw  string
}

// Parse matches the whole trimmed, lower-cased line against the known
// commands. Arguments are not accepted.
func Parse(input string) (Command, error) {
	head := strings.ToLower(strings.TrimSpace(input))
	if head == "" {
		return Command{}, &CommandError{Code: ErrCodeEmptyInput, Message: "command is empty"}
	}
	switch Type(head) {
	case TypeNew, TypeModify, TypeRemove, TypeSave, TypeExit, TypeHelp, TypeBrowse:
		return Command{Type: Type(head), Raw: input}, nil
	default:
		return Command{}, &CommandError{Code: ErrCodeUnknownCommand, Message: fmt.Sprintf("unsupported command: %s", head)}
	}
}

// IsAffirmative reports whether a yes/no answer means yes.
func IsAffirmative(answer string) bool {
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "yes", "y":
		return true
	default:
		return false
	}
}
