package suggest

import (
	"context"
	"math/rand/v2"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/huimingz/commitkit/internal/analyzer"
	"github.com/huimingz/commitkit/internal/classifier"
	"github.com/huimingz/commitkit/internal/generator"
	"github.com/huimingz/commitkit/internal/log"
)

// FallbackMessage is returned for an empty change set
const FallbackMessage = "chore: general maintenance"

// ErrNoModel is returned when an Engine is built without a classifier
var ErrNoModel = errors.New("suggest: classifier model is required")

// Decision is the user's answer to a presented suggestion
type Decision int

const (
	// Accept takes the presented message
	Accept Decision = iota
	// Regenerate asks for a message from the next strategy
	Regenerate
	// Override replaces the message with Response.Text
	Override
)

// Response carries a Decision and, for Override, the custom message
type Response struct {
	Decision Decision
	Text     string
}

// Presenter shows a suggestion and collects the decision
type Presenter interface {
	Present(ctx context.Context, s Suggestion) (Response, error)
}

// Analyzer summarizes a change set
type Analyzer interface {
	Analyze(ctx context.Context, files []string) analyzer.Analysis
}

// Engine produces commit messages for change sets
type Engine struct {
	analyzer Analyzer
	model    classifier.Predictor
	rng      *rand.Rand
}

// NewEngine creates an Engine. rng may be nil to use the runtime source.
func NewEngine(a Analyzer, model classifier.Predictor, rng *rand.Rand) (*Engine, error) {
	if model == nil {
		return nil, ErrNoModel
	}
	return &Engine{analyzer: a, model: model, rng: rng}, nil
}

// NewSession analyzes files and starts a suggestion session for them
func (e *Engine) NewSession(ctx context.Context, branch string, files []string) *Session {
	analysis := e.analyzer.Analyze(ctx, files)
	return NewSession(generator.Context{
		Branch:     branch,
		Files:      files,
		ChangeText: analysis.Text,
		Dominant:   analysis.Dominant,
		Model:      e.model,
		Rand:       e.rng,
	})
}

// CommitSuggestion runs the suggestion loop until the presenter accepts a
// message or supplies its own. Presenter errors end the loop.
func (e *Engine) CommitSuggestion(ctx context.Context, branch string, files []string, p Presenter) (string, error) {
	if len(files) == 0 {
		log.Debug("Empty change set, using fallback message")
		return FallbackMessage, nil
	}

	session := e.NewSession(ctx, branch, files)
	current := session.Next()
	for {
		resp, err := p.Present(ctx, current)
		if err != nil {
			return "", err
		}

		switch resp.Decision {
		case Accept:
			return current.Text, nil
		case Override:
			if text := strings.TrimSpace(resp.Text); text != "" {
				return text, nil
			}
			session.round++
			current.Round = session.round
		default:
			session.Advance()
			current = session.Next()
		}
	}
}
