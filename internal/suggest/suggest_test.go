package suggest

import (
	"context"
	"errors"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/huimingz/commitkit/internal/analyzer"
	"github.com/huimingz/commitkit/internal/generator"
	"github.com/huimingz/commitkit/internal/taxonomy"
)

type fixedPredictor struct{}

func (fixedPredictor) Predict(text string) taxonomy.CommitType { return taxonomy.Fix }

type stubAnalyzer struct {
	result analyzer.Analysis
	calls  int
}

func (s *stubAnalyzer) Analyze(ctx context.Context, files []string) analyzer.Analysis {
	s.calls++
	return s.result
}

// scriptedPresenter replays responses and records what it was shown
type scriptedPresenter struct {
	responses []Response
	shown     []Suggestion
	err       error
}

func (p *scriptedPresenter) Present(ctx context.Context, s Suggestion) (Response, error) {
	p.shown = append(p.shown, s)
	if p.err != nil {
		return Response{}, p.err
	}
	if len(p.shown) > len(p.responses) {
		return Response{Decision: Accept}, nil
	}
	return p.responses[len(p.shown)-1], nil
}

func sqlContext(seed uint64) generator.Context {
	return generator.Context{
		Branch:   "main",
		Files:    []string{"a.sql", "b.sql"},
		Dominant: taxonomy.CategoryOther,
		Model:    fixedPredictor{},
		Rand:     rand.New(rand.NewPCG(seed, seed)),
	}
}

func newEngine(t *testing.T, a Analyzer) *Engine {
	t.Helper()
	e, err := NewEngine(a, fixedPredictor{}, rand.New(rand.NewPCG(1, 1)))
	require.NoError(t, err)
	return e
}

func TestSession_CyclesStrategies(t *testing.T) {
	session := NewSession(sqlContext(1))

	for i := 0; i < generator.NumStrategies; i++ {
		s := session.Next()
		assert.Equal(t, generator.Strategy(i), s.Strategy)
		assert.Equal(t, i+1, s.Round)
		session.Advance()
	}
	assert.Len(t, session.Seen(), generator.NumStrategies)
	assert.Equal(t, "chore: cambios relacionados con a.sql", session.Seen()[0])
	assert.Equal(t, "chore: cambios en 2 archivos .sql", session.Seen()[1])
}

func TestSession_SkipsSeenMessages(t *testing.T) {
	session := NewSession(sqlContext(1))

	first := session.Next()
	second := session.Next()

	assert.Equal(t, generator.ClassifierBased, first.Strategy)
	assert.Equal(t, generator.FileType, second.Strategy)
	assert.NotEqual(t, first.Text, second.Text)

	// the index stays on the strategy that produced the shown message
	session.Advance()
	assert.Equal(t, generator.Thematic, session.Next().Strategy)
}

func TestSession_NoConsecutiveRepeatsUntilExhausted(t *testing.T) {
	for seed := uint64(0); seed < 5; seed++ {
		session := NewSession(sqlContext(seed))
		previous := ""
		for round := 0; round < 40; round++ {
			before := len(session.Seen())
			s := session.Next()
			require.NotEmpty(t, s.Text)
			if s.Text == previous {
				assert.Equal(t, before, len(session.Seen()), "a repeat is only allowed once every strategy is exhausted")
			}
			previous = s.Text
			session.Advance()
		}

		seen := session.Seen()
		unique := make(map[string]bool)
		for _, text := range seen {
			unique[text] = true
		}
		assert.Len(t, unique, len(seen))
		// 1 classifier + 1 file-type + 3 thematic + 1 descriptive + 6 action-verb
		assert.LessOrEqual(t, len(seen), 12)
	}
}

func TestNewEngine_RequiresModel(t *testing.T) {
	_, err := NewEngine(&stubAnalyzer{}, nil, nil)
	assert.ErrorIs(t, err, ErrNoModel)
}

func TestCommitSuggestion_EmptyChangeSet(t *testing.T) {
	a := &stubAnalyzer{}
	p := &scriptedPresenter{}

	msg, err := newEngine(t, a).CommitSuggestion(context.Background(), "main", nil, p)
	require.NoError(t, err)
	assert.Equal(t, FallbackMessage, msg)
	assert.Zero(t, a.calls)
	assert.Empty(t, p.shown)
}

func TestCommitSuggestion_Decisions(t *testing.T) {
	a := &stubAnalyzer{result: analyzer.Analysis{Dominant: taxonomy.CategoryDocs}}
	files := []string{"readme.md"}

	tests := []struct {
		name      string
		responses []Response
		want      string
		rounds    []int
	}{
		{
			name:   "accept first",
			want:   "docs: cambios relacionados con readme.md",
			rounds: []int{1},
		},
		{
			name:      "regenerate then accept",
			responses: []Response{{Decision: Regenerate}},
			want:      "docs: modificación de readme.md",
			rounds:    []int{1, 2},
		},
		{
			name:      "override",
			responses: []Response{{Decision: Regenerate}, {Decision: Override, Text: "  docs: rewrite readme  "}},
			want:      "docs: rewrite readme",
			rounds:    []int{1, 2},
		},
		{
			name:      "blank override presents the same message again",
			responses: []Response{{Decision: Override, Text: "   "}},
			want:      "docs: cambios relacionados con readme.md",
			rounds:    []int{1, 2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &scriptedPresenter{responses: tt.responses}
			msg, err := newEngine(t, a).CommitSuggestion(context.Background(), "main", files, p)
			require.NoError(t, err)
			assert.Equal(t, tt.want, msg)

			var rounds []int
			for _, s := range p.shown {
				rounds = append(rounds, s.Round)
			}
			assert.Equal(t, tt.rounds, rounds)
		})
	}
}

func TestCommitSuggestion_BlankOverrideKeepsText(t *testing.T) {
	a := &stubAnalyzer{result: analyzer.Analysis{Dominant: taxonomy.CategoryCode}}
	p := &scriptedPresenter{responses: []Response{{Decision: Override}}}

	_, err := newEngine(t, a).CommitSuggestion(context.Background(), "main", []string{"main.go"}, p)
	require.NoError(t, err)
	require.Len(t, p.shown, 2)
	assert.Equal(t, p.shown[0].Text, p.shown[1].Text)
	assert.Equal(t, p.shown[0].Strategy, p.shown[1].Strategy)
}

func TestCommitSuggestion_PresenterError(t *testing.T) {
	a := &stubAnalyzer{result: analyzer.Analysis{Dominant: taxonomy.CategoryCode}}
	aborted := errors.New("aborted")
	p := &scriptedPresenter{err: aborted}

	_, err := newEngine(t, a).CommitSuggestion(context.Background(), "main", []string{"main.go"}, p)
	assert.ErrorIs(t, err, aborted)
	assert.Equal(t, 1, a.calls)
}
