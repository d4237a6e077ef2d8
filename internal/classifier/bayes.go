package classifier

import (
	"math"
	"sort"

	"github.com/cockroachdb/errors"
)

// NaiveBayes is a multinomial naive Bayes classifier over dense feature vectors
type NaiveBayes struct {
	Alpha          float64
	Classes        []string
	ClassLogPrior  []float64
	FeatureLogProb [][]float64
}

// NewNaiveBayes creates an unfitted classifier with additive smoothing alpha
func NewNaiveBayes(alpha float64) *NaiveBayes {
	return &NaiveBayes{Alpha: alpha}
}

// Fit estimates class priors and per-class feature log probabilities.
// Classes are ordered lexicographically.
func (nb *NaiveBayes) Fit(samples [][]float64, labels []string) error {
	if len(samples) == 0 {
		return errors.New("no training samples")
	}
	if len(samples) != len(labels) {
		return errors.Newf("got %d samples but %d labels", len(samples), len(labels))
	}

	nFeatures := len(samples[0])
	classIndex := make(map[string]int)
	for _, label := range labels {
		classIndex[label] = 0
	}
	classes := make([]string, 0, len(classIndex))
	for label := range classIndex {
		classes = append(classes, label)
	}
	sort.Strings(classes)
	for i, label := range classes {
		classIndex[label] = i
	}

	classCount := make([]float64, len(classes))
	featureCount := make([][]float64, len(classes))
	for i := range featureCount {
		featureCount[i] = make([]float64, nFeatures)
	}

	for i, x := range samples {
		if len(x) != nFeatures {
			return errors.Newf("sample %d has %d features, expected %d", i, len(x), nFeatures)
		}
		c := classIndex[labels[i]]
		classCount[c]++
		for j, value := range x {
			featureCount[c][j] += value
		}
	}

	total := float64(len(samples))
	nb.Classes = classes
	nb.ClassLogPrior = make([]float64, len(classes))
	nb.FeatureLogProb = make([][]float64, len(classes))
	for c := range classes {
		nb.ClassLogPrior[c] = math.Log(classCount[c]) - math.Log(total)

		var smoothedTotal float64
		for _, count := range featureCount[c] {
			smoothedTotal += count + nb.Alpha
		}
		logTotal := math.Log(smoothedTotal)

		nb.FeatureLogProb[c] = make([]float64, nFeatures)
		for j, count := range featureCount[c] {
			nb.FeatureLogProb[c][j] = math.Log(count+nb.Alpha) - logTotal
		}
	}

	return nil
}

// JointLogLikelihood returns the unnormalized log posterior of every class
func (nb *NaiveBayes) JointLogLikelihood(x []float64) []float64 {
	scores := make([]float64, len(nb.Classes))
	for c := range nb.Classes {
		score := nb.ClassLogPrior[c]
		for j, value := range x {
			if value != 0 {
				score += value * nb.FeatureLogProb[c][j]
			}
		}
		scores[c] = score
	}
	return scores
}

// Predict returns the most likely class; ties go to the first class
func (nb *NaiveBayes) Predict(x []float64) string {
	scores := nb.JointLogLikelihood(x)
	best := 0
	for c := 1; c < len(scores); c++ {
		if scores[c] > scores[best] {
			best = c
		}
	}
	return nb.Classes[best]
}
