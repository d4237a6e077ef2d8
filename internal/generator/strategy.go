// Package generator synthesizes candidate commit messages.
//
// Five independent strategies each turn the same change context into one
// message. Strategies are addressed by a cyclic index so callers can walk
// through them in a fixed order.
package generator

import (
	"math/rand/v2"

	"github.com/huimingz/commitkit/internal/classifier"
	"github.com/huimingz/commitkit/internal/taxonomy"
)

// Strategy identifies one message synthesis approach
type Strategy int

const (
	// ClassifierBased asks the classifier, or the branch name when the change text is too short
	ClassifierBased Strategy = iota
	// FileType derives the message from the dominant file category
	FileType
	// Thematic samples mid-frequency words of the change text
	Thematic
	// Descriptive looks for Spanish action verbs in the change text
	Descriptive
	// ActionVerb names the most touched directory with a random verb
	ActionVerb
)

// NumStrategies is the length of the strategy cycle
const NumStrategies = 5

// MinSignalLength is the change text length (in runes) from which the classifier is consulted
const MinSignalLength = 10

// String returns the strategy name
func (s Strategy) String() string {
	switch s {
	case ClassifierBased:
		return "classifier"
	case FileType:
		return "file-type"
	case Thematic:
		return "thematic"
	case Descriptive:
		return "descriptive"
	case ActionVerb:
		return "action-verb"
	default:
		return "unknown"
	}
}

// StrategyAt maps any index onto the strategy cycle
func StrategyAt(index int) Strategy {
	i := index % NumStrategies
	if i < 0 {
		i += NumStrategies
	}
	return Strategy(i)
}

// Context is everything a strategy may look at
type Context struct {
	Branch     string
	Files      []string
	ChangeText string
	Dominant   taxonomy.FileCategory
	Model      classifier.Predictor

	// Rand drives the thematic and action-verb strategies. Nil uses the
	// runtime's randomly seeded source.
	Rand *rand.Rand
}

// Generate produces the message of strategy s for c
func Generate(s Strategy, c Context) string {
	switch StrategyAt(int(s)) {
	case ClassifierBased:
		return classifierMessage(c)
	case FileType:
		return fileTypeMessage(c)
	case Thematic:
		return thematicMessage(c)
	case Descriptive:
		return descriptiveMessage(c)
	default:
		return actionVerbMessage(c)
	}
}

func (c Context) intN(n int) int {
	if c.Rand != nil {
		return c.Rand.IntN(n)
	}
	return rand.IntN(n)
}

// sample picks up to k distinct items in random order
func (c Context) sample(items []string, k int) []string {
	pool := append([]string(nil), items...)
	k = min(k, len(pool))
	for i := 0; i < k; i++ {
		j := i + c.intN(len(pool)-i)
		pool[i], pool[j] = pool[j], pool[i]
	}
	return pool[:k]
}

// firstFile returns the base name of the first changed file, or def
func (c Context) firstFile(def string) string {
	if len(c.Files) == 0 {
		return def
	}
	return taxonomy.BaseName(c.Files[0])
}
