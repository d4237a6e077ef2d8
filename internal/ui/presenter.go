package ui

import (
	"context"
	"strings"

	"github.com/huimingz/commitkit/internal/suggest"
)

const suggestionHelp = "Use this message? [s/y] accept, [o] another option, [q] quit, Enter to type your own: "

// SuggestionPresenter shows suggestions on a Console and reads the decision
type SuggestionPresenter struct {
	console *Console
	printer *Printer
}

// NewSuggestionPresenter creates a presenter writing to the console output
func NewSuggestionPresenter(console *Console, printer *Printer) *SuggestionPresenter {
	return &SuggestionPresenter{console: console, printer: printer}
}

// Present implements suggest.Presenter
func (p *SuggestionPresenter) Present(ctx context.Context, s suggest.Suggestion) (suggest.Response, error) {
	if err := checkContext(ctx); err != nil {
		return suggest.Response{}, err
	}
	if err := p.printer.PrintSuggestion(s); err != nil {
		return suggest.Response{}, err
	}

	answer, err := p.console.ReadLine(suggestionHelp)
	if err != nil {
		return suggest.Response{}, err
	}

	switch strings.ToLower(answer) {
	case "s", "y", "si", "sí", "yes":
		return suggest.Response{Decision: suggest.Accept}, nil
	case "o":
		if err := p.printer.PrintProgress("Generating another option..."); err != nil {
			return suggest.Response{}, err
		}
		return suggest.Response{Decision: suggest.Regenerate}, nil
	case "q":
		return suggest.Response{}, ErrAborted
	}

	custom, err := p.console.ReadLine("Enter your commit message: ")
	if err != nil {
		return suggest.Response{}, err
	}
	return suggest.Response{Decision: suggest.Override, Text: custom}, nil
}
