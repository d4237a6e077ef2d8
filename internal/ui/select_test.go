package ui

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSelection(t *testing.T) {
	files := []string{"a.go", "b.go", "c.md"}

	tests := []struct {
		name    string
		answer  string
		want    []string
		wantErr bool
	}{
		{"all", "t", files, false},
		{"all upper case", " T ", files, false},
		{"none", "n", []string{}, false},
		{"single index", "1", []string{"b.go"}, false},
		{"several indices", "2, 0", []string{"c.md", "a.go"}, false},
		{"duplicates ignored", "0,0,1", []string{"a.go", "b.go"}, false},
		{"not a number", "x", nil, true},
		{"out of range", "3", nil, true},
		{"negative", "-1", nil, true},
		{"trailing comma", "0,", nil, true},
		{"empty", "", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseSelection(tt.answer, files)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseSelection_Quit(t *testing.T) {
	_, err := ParseSelection("Q", []string{"a.go"})
	assert.Equal(t, ErrAborted, err)
}

func TestSelectFiles(t *testing.T) {
	files := []string{"main.go", "schema.sql"}

	t.Run("lists files and returns selection", func(t *testing.T) {
		console, output := newTestConsole("1\n")
		got, err := console.SelectFiles("Unstaged files:", files)
		require.NoError(t, err)
		assert.Equal(t, []string{"schema.sql"}, got)
		assert.Contains(t, output.String(), "Unstaged files:")
		assert.Contains(t, output.String(), " [0] main.go\n")
		assert.Contains(t, output.String(), " [1] schema.sql\n")
	})

	t.Run("invalid input is asked again", func(t *testing.T) {
		console, output := newTestConsole("abc\n5\nt\n")
		got, err := console.SelectFiles("Files:", files)
		require.NoError(t, err)
		assert.Equal(t, files, got)
		assert.Contains(t, output.String(), "Invalid selection")
	})

	t.Run("quit aborts", func(t *testing.T) {
		console, _ := newTestConsole("q\n")
		_, err := console.SelectFiles("Files:", files)
		assert.Equal(t, ErrAborted, err)
	})

	t.Run("end of input", func(t *testing.T) {
		console, _ := newTestConsole("")
		_, err := console.SelectFiles("Files:", files)
		assert.Equal(t, io.EOF, err)
	})

	t.Run("nothing to select", func(t *testing.T) {
		console, output := newTestConsole("")
		got, err := console.SelectFiles("Files:", nil)
		require.NoError(t, err)
		assert.Empty(t, got)
		assert.Empty(t, output.String())
	})
}
