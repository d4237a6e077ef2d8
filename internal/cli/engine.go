package cli

import (
	"fmt"
	"math/rand/v2"
	"os"
	"time"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/huimingz/commitkit/internal/analyzer"
	"github.com/huimingz/commitkit/internal/classifier"
	"github.com/huimingz/commitkit/internal/config"
	"github.com/huimingz/commitkit/internal/git"
	"github.com/huimingz/commitkit/internal/log"
	"github.com/huimingz/commitkit/internal/suggest"
)

// loadConfig loads and validates the configuration
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	log.DebugConfig("Configuration", cfg)
	return cfg, nil
}

// resolveSeed prefers an explicit --seed flag over the configured seed
func resolveSeed(cmd *cobra.Command, flagSeed uint64, cfg *config.Config) uint64 {
	if cmd.Flags().Changed("seed") {
		return flagSeed
	}
	return cfg.GetSuggestionConfig().Seed
}

// newRand returns a seeded source, or nil to use the runtime's random source
func newRand(seed uint64) *rand.Rand {
	if seed == 0 {
		return nil
	}
	return rand.New(rand.NewPCG(seed, seed))
}

// modelPath resolves where the classifier artifact lives
func modelPath(cfg *config.ClassifierConfig) string {
	if cfg.ModelPath != "" {
		return cfg.ModelPath
	}
	return classifier.DefaultModelPath()
}

// loadModel loads the classifier, training it when the artifact is missing or unreadable
func loadModel(fs afero.Fs, cfg *config.ClassifierConfig) (*classifier.Model, error) {
	start := time.Now()
	model, err := classifier.LoadOrTrain(fs, modelPath(cfg), cfg.MaxFeatures)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare classifier: %w", err)
	}
	log.DebugDuration("Classifier ready", time.Since(start))
	return model, nil
}

// openRepository returns an executor rooted at the repository containing the
// current directory
func openRepository() (*git.DefaultExecutor, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get current directory: %w", err)
	}

	repo, err := git.OpenRepository(cwd)
	if err != nil {
		return nil, fmt.Errorf("not inside a git repository: %w", err)
	}

	log.Debug("Repository root: %s", repo.Root())
	return git.NewExecutor(repo.Root()), nil
}

// newEngine wires the analyzer and classifier into a suggestion engine
func newEngine(gitExec *git.DefaultExecutor, fs afero.Fs, cfg *config.Config, seed uint64) (*suggest.Engine, error) {
	model, err := loadModel(fs, cfg.GetClassifierConfig())
	if err != nil {
		return nil, err
	}

	a := analyzer.New(gitExec, fs, gitExec.WorkDir())
	return suggest.NewEngine(a, model, newRand(seed))
}
