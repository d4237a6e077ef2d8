package classifier

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/spf13/afero"

	"github.com/huimingz/commitkit/internal/log"
	"github.com/huimingz/commitkit/internal/taxonomy"
)

const (
	// ArtifactVersion is bumped whenever the artifact layout changes
	ArtifactVersion = 1

	// DefaultModelFile is the artifact name used beside the executable
	DefaultModelFile = "commitkit-model.json"
)

// ErrInvalidArtifact marks artifacts that decode but cannot be used
var ErrInvalidArtifact = errors.New("invalid model artifact")

// artifact is the on-disk form of a fitted model
type artifact struct {
	Version        int         `json:"version"`
	MaxFeatures    int         `json:"max_features"`
	Terms          []string    `json:"terms"`
	IDF            []float64   `json:"idf"`
	Alpha          float64     `json:"alpha"`
	Classes        []string    `json:"classes"`
	ClassLogPrior  []float64   `json:"class_log_prior"`
	FeatureLogProb [][]float64 `json:"feature_log_prob"`
}

func (a *artifact) validate() error {
	if a.Version != ArtifactVersion {
		return errors.Mark(errors.Newf("unsupported version %d", a.Version), ErrInvalidArtifact)
	}
	if len(a.Terms) == 0 || len(a.Terms) != len(a.IDF) {
		return errors.Mark(errors.New("vocabulary and idf sizes differ"), ErrInvalidArtifact)
	}
	if len(a.Classes) == 0 || len(a.Classes) != len(a.ClassLogPrior) || len(a.Classes) != len(a.FeatureLogProb) {
		return errors.Mark(errors.New("class tables sizes differ"), ErrInvalidArtifact)
	}
	for i, class := range a.Classes {
		if !taxonomy.CommitType(class).IsValid() {
			return errors.Mark(errors.Newf("unknown class %q", class), ErrInvalidArtifact)
		}
		if len(a.FeatureLogProb[i]) != len(a.Terms) {
			return errors.Mark(errors.Newf("class %q has %d features, expected %d", class, len(a.FeatureLogProb[i]), len(a.Terms)), ErrInvalidArtifact)
		}
	}
	return nil
}

// Store persists a model to a single file
type Store struct {
	fs          afero.Fs
	path        string
	maxFeatures int
}

// NewStore creates a store for the artifact at path
func NewStore(fs afero.Fs, path string, maxFeatures int) *Store {
	if maxFeatures <= 0 {
		maxFeatures = DefaultMaxFeatures
	}
	return &Store{fs: fs, path: path, maxFeatures: maxFeatures}
}

// Path returns the artifact location
func (s *Store) Path() string {
	return s.path
}

// MaxFeatures returns the vocabulary cap used when training
func (s *Store) MaxFeatures() int {
	return s.maxFeatures
}

// Load reads and validates the artifact
func (s *Store) Load() (*Model, error) {
	data, err := afero.ReadFile(s.fs, s.path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read model %s", s.path)
	}

	var a artifact
	if err := json.Unmarshal(data, &a); err != nil {
		return nil, errors.Mark(errors.Wrapf(err, "failed to decode model %s", s.path), ErrInvalidArtifact)
	}
	if err := a.validate(); err != nil {
		return nil, err
	}

	vectorizer := &Vectorizer{MaxFeatures: a.MaxFeatures, Terms: a.Terms, IDF: a.IDF}
	vectorizer.buildIndex()
	bayes := &NaiveBayes{
		Alpha:          a.Alpha,
		Classes:        a.Classes,
		ClassLogPrior:  a.ClassLogPrior,
		FeatureLogProb: a.FeatureLogProb,
	}
	return &Model{vectorizer: vectorizer, bayes: bayes}, nil
}

// Save writes the model through a temporary file and a rename, so readers
// never observe a partial artifact
func (s *Store) Save(m *Model) error {
	a := artifact{
		Version:        ArtifactVersion,
		MaxFeatures:    m.vectorizer.MaxFeatures,
		Terms:          m.vectorizer.Terms,
		IDF:            m.vectorizer.IDF,
		Alpha:          m.bayes.Alpha,
		Classes:        m.bayes.Classes,
		ClassLogPrior:  m.bayes.ClassLogPrior,
		FeatureLogProb: m.bayes.FeatureLogProb,
	}

	data, err := json.Marshal(&a)
	if err != nil {
		return errors.Wrap(err, "failed to encode model")
	}

	if dir := filepath.Dir(s.path); dir != "." {
		if err := s.fs.MkdirAll(dir, 0755); err != nil {
			return errors.Wrapf(err, "failed to create %s", dir)
		}
	}

	tmp := s.path + ".tmp"
	if err := afero.WriteFile(s.fs, tmp, data, 0644); err != nil {
		return errors.Wrapf(err, "failed to write %s", tmp)
	}
	if err := s.fs.Rename(tmp, s.path); err != nil {
		_ = s.fs.Remove(tmp)
		return errors.Wrapf(err, "failed to move model into %s", s.path)
	}
	return nil
}

// Train fits a fresh model from the synthetic corpus and persists it.
// A failed write is reported but the fitted model is still returned.
func (s *Store) Train() (*Model, error) {
	start := time.Now()
	model, err := TrainDefault(s.maxFeatures)
	if err != nil {
		return nil, err
	}
	log.DebugDuration("Model training", time.Since(start))

	if err := s.Save(model); err != nil {
		log.Warn("could not persist model: %v", err)
	}
	return model, nil
}

// LoadOrTrain loads the artifact if present and valid; otherwise it trains a
// new model and overwrites the artifact
func (s *Store) LoadOrTrain() (*Model, error) {
	if _, err := s.fs.Stat(s.path); err != nil {
		log.Info("Training new model...")
		return s.Train()
	}

	model, err := s.Load()
	if err != nil {
		log.Warn("failed to load model (%v), training a new one", err)
		return s.Train()
	}

	log.Debug("Loaded model from %s (%d features)", s.path, model.Features())
	return model, nil
}

// LoadOrTrain is a shortcut for NewStore(fs, path, maxFeatures).LoadOrTrain()
func LoadOrTrain(fs afero.Fs, path string, maxFeatures int) (*Model, error) {
	return NewStore(fs, path, maxFeatures).LoadOrTrain()
}

// DefaultModelPath returns the artifact path beside the running executable,
// falling back to the current directory
func DefaultModelPath() string {
	exe, err := os.Executable()
	if err != nil {
		return DefaultModelFile
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Join(filepath.Dir(exe), DefaultModelFile)
}
