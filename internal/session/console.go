package session

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/sandeepkv93/mintask/internal/commands"
)

var (
	ErrInterrupted = errors.New("session: interrupted")
	ErrInputClosed = errors.New("session: input closed")
)

// Console is the line-oriented prompt/answer channel with the user. Reads
// honour context cancellation; once a read has been abandoned the console
// refuses further reads.
type Console struct {
	in      *bufio.Reader
	out     io.Writer
	aborted bool
}

func NewConsole(in io.Reader, out io.Writer) *Console {
	return &Console{in: bufio.NewReader(in), out: out}
}

func (c *Console) Print(s string) {
	fmt.Fprint(c.out, s)
}

func (c *Console) Println(s string) {
	fmt.Fprintln(c.out, s)
}

// Prompt writes label and returns the next input line without its line
// ending.
func (c *Console) Prompt(ctx context.Context, label string) (string, error) {
	if c.aborted {
		return "", ErrInterrupted
	}
	if err := ctx.Err(); err != nil {
		c.aborted = true
		return "", ErrInterrupted
	}
	fmt.Fprint(c.out, label)

	type result struct {
		line string
		err  error
	}
	ch := make(chan result, 1)
	go func() {
		line, err := c.in.ReadString('\n')
		ch <- result{line: line, err: err}
	}()

	select {
	case <-ctx.Done():
		c.aborted = true
		return "", ErrInterrupted
	case r := <-ch:
		if r.err != nil {
			if errors.Is(r.err, io.EOF) {
				if r.line != "" {
					return strings.TrimRight(r.line, "\r\n"), nil
				}
				return "", ErrInputClosed
			}
			return "", fmt.Errorf("read input: %w", r.err)
		}
		return strings.TrimRight(r.line, "\r\n"), nil
	}
}

// Confirm asks a yes/no question.
func (c *Console) Confirm(ctx context.Context, question string) (bool, error) {
	answer, err := c.Prompt(ctx, question)
	if err != nil {
		return false, err
	}
	return commands.IsAffirmative(answer), nil
}
