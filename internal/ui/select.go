package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/fatih/color"
)

const selectionHelp = "Enter file numbers (e.g. 0,2,4), 't' for all, 'n' for none or 'q' to quit: "

// SelectFiles lists files with their indices and asks which ones to pick.
// Invalid answers are reported and the question is asked again. Answering
// 'q' returns ErrAborted.
func (c *Console) SelectFiles(title string, files []string) ([]string, error) {
	if len(files) == 0 {
		return nil, nil
	}

	bold := color.New(color.Bold)
	if _, err := bold.Fprintf(c.out, "\n%s\n", title); err != nil {
		return nil, err
	}
	for i, f := range files {
		if _, err := fmt.Fprintf(c.out, " [%d] %s\n", i, f); err != nil {
			return nil, err
		}
	}

	red := color.New(color.FgRed)
	for {
		answer, err := c.ReadLine(selectionHelp)
		if err != nil {
			return nil, err
		}

		selected, err := ParseSelection(answer, files)
		if err == nil {
			return selected, nil
		}
		if err == ErrAborted {
			return nil, err
		}
		if _, err := red.Fprintf(c.out, "⚠️  Invalid selection: %v\n", err); err != nil {
			return nil, err
		}
	}
}

// ParseSelection resolves a selection answer against files. Indices are
// zero based; duplicates are ignored.
func ParseSelection(answer string, files []string) ([]string, error) {
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "t":
		return append([]string(nil), files...), nil
	case "n":
		return []string{}, nil
	case "q":
		return nil, ErrAborted
	case "":
		return nil, fmt.Errorf("empty answer")
	}

	seen := make(map[int]bool)
	var selected []string
	for _, part := range strings.Split(answer, ",") {
		part = strings.TrimSpace(part)
		i, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("%q is not a number", part)
		}
		if i < 0 || i >= len(files) {
			return nil, fmt.Errorf("%d is out of range [0, %d]", i, len(files)-1)
		}
		if !seen[i] {
			seen[i] = true
			selected = append(selected, files[i])
		}
	}
	return selected, nil
}
