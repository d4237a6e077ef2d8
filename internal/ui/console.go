package ui

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"
)

// ErrAborted is returned when the user quits a prompt
var ErrAborted = errors.New("aborted by user")

// lineSource reads one answer after showing prompt. The line comes back
// without its terminator; io.EOF may accompany a final partial line.
type lineSource interface {
	readLine(prompt string) (string, error)
	Close() error
}

// Console reads answers from the user and writes prompts. Every prompt of a
// Console reads through the same source, so no input is lost between them.
type Console struct {
	src lineSource
	out io.Writer
}

// NewConsole creates a Console over arbitrary streams
func NewConsole(input io.Reader, output io.Writer) *Console {
	return &Console{src: &bufferedSource{in: bufio.NewReader(input), out: output}, out: output}
}

// NewStdConsole creates a Console over stdin and stdout. On a terminal all
// prompts share one readline instance; call Close when done.
func NewStdConsole() *Console {
	if !readline.IsTerminal(int(os.Stdin.Fd())) {
		return NewConsole(os.Stdin, os.Stdout)
	}
	return &Console{src: &readlineSource{}, out: os.Stdout}
}

// Output returns the writer prompts are written to
func (c *Console) Output() io.Writer {
	return c.out
}

// Close releases the terminal
func (c *Console) Close() error {
	return c.src.Close()
}

// ReadLine prints prompt and returns the trimmed answer. io.EOF is returned
// only when the input ended before anything was typed.
func (c *Console) ReadLine(prompt string) (string, error) {
	line, err := c.src.readLine(prompt)
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		if errors.Is(err, ErrInterrupted) {
			return "", ErrAborted
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

type bufferedSource struct {
	in  *bufio.Reader
	out io.Writer
}

func (s *bufferedSource) readLine(prompt string) (string, error) {
	if _, err := fmt.Fprint(s.out, prompt); err != nil {
		return "", err
	}
	line, err := s.in.ReadString('\n')
	return strings.TrimRight(line, "\r\n"), err
}

func (s *bufferedSource) Close() error {
	return nil
}

// readlineSource opens the terminal on first use and keeps it until Close
type readlineSource struct {
	rl *readline.Instance
}

func (s *readlineSource) readLine(prompt string) (string, error) {
	if s.rl == nil {
		rl, err := readline.NewEx(&readline.Config{
			InterruptPrompt: "^C",
			EOFPrompt:       "^D",
		})
		if err != nil {
			return "", err
		}
		s.rl = rl
	}

	s.rl.SetPrompt(prompt)
	line, err := s.rl.Readline()
	if errors.Is(err, readline.ErrInterrupt) {
		return "", ErrInterrupted
	}
	return line, err
}

func (s *readlineSource) Close() error {
	if s.rl == nil {
		return nil
	}
	err := s.rl.Close()
	s.rl = nil
	return err
}
