// Package suggest negotiates a commit message with the user by walking the
// generator strategies without repeating itself.
package suggest

import (
	"github.com/huimingz/commitkit/internal/generator"
	"github.com/huimingz/commitkit/internal/log"
)

// Suggestion is one proposed commit message
type Suggestion struct {
	Text     string
	Strategy generator.Strategy
	// Round counts presentations in the session, starting at 1
	Round int
}

// Session holds the state of one suggestion loop
type Session struct {
	context generator.Context
	seen    []string
	seenSet map[string]struct{}
	index   int
	round   int
}

// NewSession starts a session at the first strategy
func NewSession(c generator.Context) *Session {
	return &Session{
		context: c,
		seenSet: make(map[string]struct{}),
	}
}

// Next proposes the next message. Strategies whose message was already seen
// are skipped; after a full cycle the last message is returned even if it
// repeats.
func (s *Session) Next() Suggestion {
	var (
		text     string
		strategy generator.Strategy
		repeated bool
	)
	for attempt := 1; ; attempt++ {
		strategy = generator.StrategyAt(s.index)
		text = generator.Generate(strategy, s.context)
		_, repeated = s.seenSet[text]
		log.DebugSuggestion(strategy.String(), text, repeated)
		if !repeated || attempt == generator.NumStrategies {
			break
		}
		s.index++
	}

	if !repeated {
		s.seenSet[text] = struct{}{}
		s.seen = append(s.seen, text)
	}
	s.round++
	return Suggestion{Text: text, Strategy: strategy, Round: s.round}
}

// Advance moves past the strategy that produced the last suggestion
func (s *Session) Advance() {
	s.index++
}

// Seen returns the distinct messages proposed so far, in order
func (s *Session) Seen() []string {
	return append([]string(nil), s.seen...)
}
