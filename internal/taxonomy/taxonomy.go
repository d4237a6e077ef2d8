package taxonomy

import "strings"

// CommitType is a conventional commit prefix
type CommitType string

const (
	Feat     CommitType = "feat"
	Fix      CommitType = "fix"
	Refactor CommitType = "refactor"
	Chore    CommitType = "chore"
	Test     CommitType = "test"
	Docs     CommitType = "docs"
	Style    CommitType = "style"
	Perf     CommitType = "perf"
)

// String returns the string representation of the commit type
func (t CommitType) String() string {
	return string(t)
}

// IsValid checks if the commit type belongs to the taxonomy
func (t CommitType) IsValid() bool {
	for _, entry := range Keywords {
		if entry.Type == t {
			return true
		}
	}
	return false
}

// Entry binds a commit type to its trigger keywords
type Entry struct {
	Type     CommitType
	Keywords []string
}

// Keywords is the commit type taxonomy. Order matters: every matcher returns
// the first entry that fires.
var Keywords = []Entry{
	{Type: Feat, Keywords: []string{"add", "create", "implement", "new", "feature"}},
	{Type: Fix, Keywords: []string{"fix", "bug", "error", "issue", "resolve", "solve"}},
	{Type: Refactor, Keywords: []string{"refactor", "restructure", "clean", "improve", "simplify"}},
	{Type: Chore, Keywords: []string{"update", "upgrade", "bump", "maintain", "setup"}},
	{Type: Test, Keywords: []string{"test", "assert", "coverage", "spec", "validate"}},
	{Type: Docs, Keywords: []string{"document", "comment", "readme", "guide", "wiki"}},
	{Type: Style, Keywords: []string{"style", "format", "indent", "css", "layout"}},
	{Type: Perf, Keywords: []string{"performance", "optimize", "speed", "efficiency", "faster"}},
}

// Types returns the commit types in taxonomy order
func Types() []CommitType {
	types := make([]CommitType, 0, len(Keywords))
	for _, entry := range Keywords {
		types = append(types, entry.Type)
	}
	return types
}

// MatchSubstring returns the first commit type with a keyword contained in s.
// s is compared lowercased.
func MatchSubstring(s string) (CommitType, bool) {
	s = strings.ToLower(s)
	for _, entry := range Keywords {
		for _, kw := range entry.Keywords {
			if strings.Contains(s, kw) {
				return entry.Type, true
			}
		}
	}
	return "", false
}

// MatchTokens returns the first commit type with a keyword equal to one of tokens
func MatchTokens(tokens []string) (CommitType, bool) {
	set := make(map[string]struct{}, len(tokens))
	for _, tok := range tokens {
		set[tok] = struct{}{}
	}
	for _, entry := range Keywords {
		for _, kw := range entry.Keywords {
			if _, ok := set[kw]; ok {
				return entry.Type, true
			}
		}
	}
	return "", false
}
