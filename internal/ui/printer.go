package ui

import (
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"

	"github.com/huimingz/commitkit/internal/git"
	"github.com/huimingz/commitkit/internal/suggest"
)

// PrinterOption is a functional option for Printer
type PrinterOption func(*Printer)

// WithColor enables or disables color output
func WithColor(enabled bool) PrinterOption {
	return func(p *Printer) {
		p.colorEnabled = enabled
	}
}

// Printer writes progress of the commit workflow to the terminal
type Printer struct {
	writer       io.Writer
	colorEnabled bool
}

// NewPrinter creates a new Printer
func NewPrinter(writer io.Writer, opts ...PrinterOption) *Printer {
	p := &Printer{
		writer:       writer,
		colorEnabled: true,
	}

	for _, opt := range opts {
		opt(p)
	}

	return p
}

func (p *Printer) printf(attr color.Attribute, format string, args ...interface{}) error {
	if p.colorEnabled {
		_, err := color.New(attr).Fprintf(p.writer, format, args...)
		return err
	}
	_, err := fmt.Fprintf(p.writer, format, args...)
	return err
}

// PrintStep prints a step in the process
func (p *Printer) PrintStep(step int, message string) error {
	return p.printf(color.FgBlue, "\n📋 Step %d: %s\n", step, message)
}

// PrintProgress prints a progress message
func (p *Printer) PrintProgress(message string) error {
	return p.printf(color.FgYellow, "⏳ %s\n", message)
}

// PrintInfo prints an info message
func (p *Printer) PrintInfo(message string) error {
	return p.printf(color.FgCyan, "ℹ️  %s\n", message)
}

// PrintSuccess prints a success message
func (p *Printer) PrintSuccess(message string) error {
	return p.printf(color.FgGreen, "✅ %s\n", message)
}

// PrintWarning prints a warning message
func (p *Printer) PrintWarning(message string) error {
	return p.printf(color.FgYellow, "⚠️  %s\n", message)
}

// PrintError prints an error message
func (p *Printer) PrintError(message string) error {
	return p.printf(color.FgRed, "❌ Error: %s\n", message)
}

// PrintFiles prints a titled file list, one file per line
func (p *Printer) PrintFiles(title string, marker string, files []string) error {
	if err := p.printf(color.Bold, "%s\n", title); err != nil {
		return err
	}
	for _, f := range files {
		if _, err := fmt.Fprintf(p.writer, " %s %s\n", marker, f); err != nil {
			return err
		}
	}
	return nil
}

// PrintStatus prints the staged, unstaged and untracked files
func (p *Printer) PrintStatus(status *git.Status) error {
	if err := p.printf(color.Bold, "\n📊 Repository status:\n"); err != nil {
		return err
	}

	sections := []struct {
		name  string
		attr  color.Attribute
		files []string
	}{
		{"Staged", color.FgGreen, status.Staged},
		{"Unstaged", color.FgYellow, status.Unstaged},
		{"Untracked", color.FgRed, status.Untracked},
	}
	for _, s := range sections {
		if err := p.printf(s.attr, "  %s (%d)\n", s.name, len(s.files)); err != nil {
			return err
		}
		for _, f := range s.files {
			if _, err := fmt.Fprintf(p.writer, "    %s\n", f); err != nil {
				return err
			}
		}
	}
	return nil
}

// PrintAddResult reports the outcome of staging files
func (p *Printer) PrintAddResult(added []string, requested int) error {
	for _, f := range added {
		if err := p.printf(color.FgGreen, "  ✓ %s\n", f); err != nil {
			return err
		}
	}
	return p.printf(color.FgCyan, "  %d/%d files staged\n", len(added), requested)
}

// PrintSuggestion prints a numbered commit message suggestion
func (p *Printer) PrintSuggestion(s suggest.Suggestion) error {
	if err := p.printf(color.Bold, "\n💡 Suggestion #%d", s.Round); err != nil {
		return err
	}
	if err := p.printf(color.FgHiBlack, " (%s)\n", s.Strategy); err != nil {
		return err
	}
	return p.printf(color.FgCyan, "→ %s\n", s.Text)
}

// PrintDuration prints how long an operation took
func (p *Printer) PrintDuration(operation string, d time.Duration) error {
	return p.printf(color.FgHiBlack, "%s in %s\n", operation, formatDuration(d))
}

// Newline prints a newline
func (p *Printer) Newline() error {
	_, err := fmt.Fprintln(p.writer)
	return err
}

// formatDuration formats a duration in a human-readable format
func formatDuration(d time.Duration) string {
	if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	return fmt.Sprintf("%.2fs", d.Seconds())
}
