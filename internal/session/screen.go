package session

import (
	"context"
	"io"

	"github.com/muesli/termenv"
	"github.com/sandeepkv93/mintask/internal/model"
)

type Clearer interface {
	Clear()
}

type TermScreen struct {
	out *termenv.Output
}

func NewTermScreen(w io.Writer) *TermScreen {
	return &TermScreen{out: termenv.NewOutput(w)}
}

func (s *TermScreen) Clear() {
	s.out.ClearScreen()
}

type noopScreen struct{}

func (noopScreen) Clear() {}

type Browser interface {
	Browse(ctx context.Context, title string, tasks []model.Task) error
}

type BrowserFunc func(ctx context.Context, title string, tasks []model.Task) error

func (f BrowserFunc) Browse(ctx context.Context, title string, tasks []model.Task) error {
	return f(ctx, title, tasks)
}
