package commands

import "fmt"

// Result tells the caller how to redraw after a command. Body is shown
// unstyled under the status line.
type Result struct {
	Message string
	IsError bool
	Body    string
	Exit    bool
}

type Handler func() (Result, error)

type Handlers struct {
	New    Handler
	Modify Handler
	Remove Handler
	Save   Handler
	Exit   Handler
	Help   Handler
	Browse Handler
}

func (h Handlers) lookup(t Type) (Handler, bool) {
	switch t {
	case TypeNew:
		return h.New, true
	case TypeModify:
		return h.Modify, true
	case TypeRemove:
		return h.Remove, true
	case TypeSave:
		return h.Save, true
	case TypeExit:
		return h.Exit, true
	case TypeHelp:
		return h.Help, true
	case TypeBrowse:
		return h.Browse, true
	default:
		return nil, false
	}
}

func Execute(cmd Command, handlers Handlers) (Result, error) {
	handler, known := handlers.lookup(cmd.Type)
	if !known {
		return Result{}, &CommandError{Code: ErrCodeUnknownCommand, Message: fmt.Sprintf("unknown command type: %s", cmd.Type)}
	}
	if handler == nil {
		return Result{}, &CommandError{Code: ErrCodeHandlerMissing, Message: fmt.Sprintf("%s handler not configured", cmd.Type)}
	}
	return handler()
}
