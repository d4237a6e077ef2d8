package ui

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/fatih/color"
)

// answers maps accepted replies to their meaning. Spanish replies are
// accepted alongside English ones.
var answers = map[string]bool{
	"y": true, "yes": true, "s": true, "si": true, "sí": true,
	"n": false, "no": false,
}

// Confirm asks a yes/no question. An empty answer means no.
func (c *Console) Confirm(message string) (bool, error) {
	return c.ConfirmWithDefault(message, false)
}

// ConfirmWithDefault asks a yes/no question until a valid answer is given.
// An empty answer returns defaultYes.
func (c *Console) ConfirmWithDefault(message string, defaultYes bool) (bool, error) {
	hint := "[y/N]"
	if defaultYes {
		hint = "[Y/n]"
	}
	prompt := message + " " + hint + ": "

	for {
		response, err := c.ReadLine(prompt)
		if err != nil {
			return false, err
		}
		if response == "" {
			return defaultYes, nil
		}
		if yes, ok := answers[strings.ToLower(response)]; ok {
			return yes, nil
		}
		if _, err := fmt.Fprintln(c.out, "Please enter 'y' or 'n'"); err != nil {
			return false, err
		}
	}
}

// ShowCommitMessage prints the final commit message between two rules as
// wide as its longest line
func ShowCommitMessage(message string, output io.Writer) error {
	width := 29
	for _, line := range strings.Split(message, "\n") {
		width = max(width, utf8.RuneCountInString(line))
	}
	rule := strings.Repeat("─", width)

	cyan := color.New(color.FgCyan)
	if _, err := color.New(color.Bold).Fprintln(output, "\n📝 Commit Message:"); err != nil {
		return err
	}
	if _, err := cyan.Fprintln(output, rule); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(output, message); err != nil {
		return err
	}
	_, err := cyan.Fprintln(output, rule)
	return err
}
