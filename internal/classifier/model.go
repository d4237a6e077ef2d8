// Package classifier predicts a commit type from the text of a change.
//
// The model is a TF-IDF vectorizer followed by a multinomial naive Bayes
// classifier, trained on a synthetic corpus built from the keyword taxonomy.
// Training is deterministic: the same taxonomy always yields the same model.
package classifier

import (
	"fmt"

	"github.com/cockroachdb/errors"

	"github.com/huimingz/commitkit/internal/taxonomy"
)

// Predictor maps change text to a commit type
type Predictor interface {
	Predict(text string) taxonomy.CommitType
}

// Sample is a labeled training sentence
type Sample struct {
	Text  string
	Label taxonomy.CommitType
}

var sentenceTemplates = []func(keyword string) string{
	func(k string) string { return fmt.Sprintf("Added %s functionality", k) },
	func(k string) string { return fmt.Sprintf("Implemented %s feature", k) },
	func(k string) string { return fmt.Sprintf("%s module created", Capitalize(k)) },
	func(k string) string { return fmt.Sprintf("Applied %s to improve code", k) },
	func(k string) string { return fmt.Sprintf("New %s implementation", k) },
}

// SyntheticCorpus builds the training set: five sentences per taxonomy keyword
func SyntheticCorpus() []Sample {
	var corpus []Sample
	for _, entry := range taxonomy.Keywords {
		for _, kw := range entry.Keywords {
			for _, tmpl := range sentenceTemplates {
				corpus = append(corpus, Sample{Text: tmpl(kw), Label: entry.Type})
			}
		}
	}
	return corpus
}

// Model is a fitted vectorizer and classifier pair. It is read-only after
// training and safe to share.
type Model struct {
	vectorizer *Vectorizer
	bayes      *NaiveBayes
}

// Train fits a model on samples
func Train(samples []Sample, maxFeatures int) (*Model, error) {
	docs := make([]string, len(samples))
	labels := make([]string, len(samples))
	for i, s := range samples {
		docs[i] = s.Text
		labels[i] = s.Label.String()
	}

	vectorizer := NewVectorizer(maxFeatures)
	if err := vectorizer.Fit(docs); err != nil {
		return nil, errors.Wrap(err, "failed to fit vectorizer")
	}

	features := make([][]float64, len(docs))
	for i, doc := range docs {
		features[i] = vectorizer.Transform(doc)
	}

	bayes := NewNaiveBayes(1.0)
	if err := bayes.Fit(features, labels); err != nil {
		return nil, errors.Wrap(err, "failed to fit classifier")
	}

	return &Model{vectorizer: vectorizer, bayes: bayes}, nil
}

// TrainDefault fits a model on the synthetic corpus
func TrainDefault(maxFeatures int) (*Model, error) {
	return Train(SyntheticCorpus(), maxFeatures)
}

// Predict returns the commit type for text
func (m *Model) Predict(text string) taxonomy.CommitType {
	return taxonomy.CommitType(m.bayes.Predict(m.vectorizer.Transform(text)))
}

// Features returns the vocabulary size
func (m *Model) Features() int {
	return m.vectorizer.Size()
}

// Classes returns the labels the model can predict
func (m *Model) Classes() []string {
	return append([]string(nil), m.bayes.Classes...)
}
