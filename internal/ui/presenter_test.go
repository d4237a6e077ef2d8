package ui

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/huimingz/commitkit/internal/generator"
	"github.com/huimingz/commitkit/internal/suggest"
)

func TestSuggestionPresenter(t *testing.T) {
	suggestion := suggest.Suggestion{Text: "feat: modificación de main.go", Strategy: generator.FileType, Round: 1}

	tests := []struct {
		name  string
		input string
		want  suggest.Response
	}{
		{"accept spanish", "s\n", suggest.Response{Decision: suggest.Accept}},
		{"accept english", "Y\n", suggest.Response{Decision: suggest.Accept}},
		{"another option", "o\n", suggest.Response{Decision: suggest.Regenerate}},
		{"custom message", "\nfix: handle nil config\n", suggest.Response{Decision: suggest.Override, Text: "fix: handle nil config"}},
		{"unknown key asks for a message", "x\ndocs: typo\n", suggest.Response{Decision: suggest.Override, Text: "docs: typo"}},
		{"blank custom message", "\n\n", suggest.Response{Decision: suggest.Override}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			console, output := newTestConsole(tt.input)
			presenter := NewSuggestionPresenter(console, NewPrinter(output, WithColor(false)))

			got, err := presenter.Present(context.Background(), suggestion)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Contains(t, output.String(), "→ feat: modificación de main.go")
		})
	}
}

func TestSuggestionPresenter_Quit(t *testing.T) {
	console, output := newTestConsole("q\n")
	presenter := NewSuggestionPresenter(console, NewPrinter(output, WithColor(false)))

	_, err := presenter.Present(context.Background(), suggest.Suggestion{Text: "chore: x", Round: 1})
	assert.Equal(t, ErrAborted, err)
}

func TestSuggestionPresenter_DrivesEngine(t *testing.T) {
	console, output := newTestConsole("o\ns\n")
	presenter := NewSuggestionPresenter(console, NewPrinter(output, WithColor(false)))

	session := suggest.NewSession(generator.Context{Files: []string{"readme.md"}, Dominant: "docs"})
	first := session.Next()
	resp, err := presenter.Present(context.Background(), first)
	require.NoError(t, err)
	require.Equal(t, suggest.Regenerate, resp.Decision)

	session.Advance()
	second := session.Next()
	resp, err = presenter.Present(context.Background(), second)
	require.NoError(t, err)
	assert.Equal(t, suggest.Accept, resp.Decision)
	assert.Contains(t, output.String(), "Suggestion #2 (file-type)")
}
