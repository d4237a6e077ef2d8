package ui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

var (
	// ErrEmptyInput is returned when the user provides no input
	ErrEmptyInput = errors.New("empty input")

	// ErrInterrupted is returned when the user interrupts input with Ctrl+C
	ErrInterrupted = errors.New("input interrupted")
)

// MultilinePrompt represents a multi-line input prompt with hints and examples
type MultilinePrompt struct {
	Prompt   string   // The main prompt message
	Hint     string   // Hint text shown to help users
	Examples []string // Example inputs to show users
}

// nextLine returns one line without its terminator. io.EOF means no more
// lines follow; the returned line may still hold text.
type nextLine func() (string, error)

// ReadMultiline displays p and collects lines until an empty line, Ctrl+D
// or the end of input
func (c *Console) ReadMultiline(ctx context.Context, p *MultilinePrompt) (string, error) {
	if err := checkContext(ctx); err != nil {
		return "", err
	}
	if err := p.render(c.out); err != nil {
		return "", err
	}

	return collect(ctx, func() (string, error) {
		return c.src.readLine("> ")
	})
}

func (p *MultilinePrompt) render(w io.Writer) error {
	var b strings.Builder
	color.New(color.Bold).Fprintf(&b, "\n%s\n", p.Prompt)
	if p.Hint != "" {
		color.New(color.FgHiBlack).Fprintf(&b, "   %s\n", p.Hint)
	}
	if len(p.Examples) > 0 {
		color.New(color.FgCyan).Fprint(&b, "\n   Examples:\n")
		for _, example := range p.Examples {
			color.New(color.FgGreen).Fprintf(&b, "   • %s\n", example)
		}
	}
	b.WriteString("\n")

	_, err := fmt.Fprint(w, b.String())
	return err
}

// collect gathers lines from next. A blank line or Ctrl+D ends the input;
// text typed before Ctrl+D on the same line is kept.
func collect(ctx context.Context, next nextLine) (string, error) {
	var lines []string
	for {
		if err := checkContext(ctx); err != nil {
			return "", err
		}

		line, err := next()
		if err != nil && !errors.Is(err, io.EOF) {
			return "", err
		}

		before, _, ctrlD := strings.Cut(line, "\x04")
		if strings.TrimSpace(before) == "" {
			break
		}
		lines = append(lines, before)
		if ctrlD || err != nil {
			break
		}
	}

	result := strings.TrimSpace(strings.Join(lines, "\n"))
	if result == "" {
		return "", ErrEmptyInput
	}
	return result, nil
}

func checkContext(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ErrInterrupted
	default:
		return nil
	}
}
