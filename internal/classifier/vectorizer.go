package classifier

import (
	"math"
	"sort"

	"github.com/cockroachdb/errors"
)

// DefaultMaxFeatures caps the vocabulary size
const DefaultMaxFeatures = 1000

// ErrEmptyVocabulary is returned when the training documents contain no terms
var ErrEmptyVocabulary = errors.New("empty vocabulary")

// Vectorizer turns text into L2 normalized TF-IDF vectors
type Vectorizer struct {
	MaxFeatures int
	Terms       []string
	IDF         []float64

	index map[string]int
}

// NewVectorizer creates an unfitted vectorizer
func NewVectorizer(maxFeatures int) *Vectorizer {
	if maxFeatures <= 0 {
		maxFeatures = DefaultMaxFeatures
	}
	return &Vectorizer{MaxFeatures: maxFeatures}
}

// Fit learns the vocabulary and inverse document frequencies of docs.
// When the vocabulary exceeds MaxFeatures, the most frequent terms across
// the corpus are kept, ties resolved alphabetically.
func (v *Vectorizer) Fit(docs []string) error {
	termFreq := make(map[string]int)
	docFreq := make(map[string]int)

	for _, doc := range docs {
		seen := make(map[string]bool)
		for _, term := range Terms(doc) {
			termFreq[term]++
			if !seen[term] {
				seen[term] = true
				docFreq[term]++
			}
		}
	}

	if len(termFreq) == 0 {
		return ErrEmptyVocabulary
	}

	terms := make([]string, 0, len(termFreq))
	for term := range termFreq {
		terms = append(terms, term)
	}
	sort.Strings(terms)

	if len(terms) > v.MaxFeatures {
		sort.SliceStable(terms, func(i, j int) bool {
			return termFreq[terms[i]] > termFreq[terms[j]]
		})
		terms = terms[:v.MaxFeatures]
		sort.Strings(terms)
	}

	n := float64(len(docs))
	idf := make([]float64, len(terms))
	for i, term := range terms {
		idf[i] = math.Log((1+n)/(1+float64(docFreq[term]))) + 1
	}

	v.Terms = terms
	v.IDF = idf
	v.buildIndex()
	return nil
}

// Transform returns the TF-IDF vector of doc. Unknown terms are ignored; a
// document without known terms yields the zero vector.
func (v *Vectorizer) Transform(doc string) []float64 {
	if v.index == nil {
		v.buildIndex()
	}

	vec := make([]float64, len(v.Terms))
	for _, term := range Terms(doc) {
		if i, ok := v.index[term]; ok {
			vec[i]++
		}
	}

	var norm float64
	for i := range vec {
		vec[i] *= v.IDF[i]
		norm += vec[i] * vec[i]
	}
	if norm > 0 {
		norm = math.Sqrt(norm)
		for i := range vec {
			vec[i] /= norm
		}
	}
	return vec
}

// Size returns the number of features
func (v *Vectorizer) Size() int {
	return len(v.Terms)
}

func (v *Vectorizer) buildIndex() {
	v.index = make(map[string]int, len(v.Terms))
	for i, term := range v.Terms {
		v.index[term] = i
	}
}
