package cli

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/huimingz/commitkit/internal/classifier"
	"github.com/huimingz/commitkit/internal/ui"
)

var trainMaxFeatures int

var trainCmd = &cobra.Command{
	Use:   "train",
	Short: "Retrain the commit type classifier",
	Long: `Train the commit type classifier from its built-in corpus and save it,
replacing any existing model file.

The model is trained automatically on first use; run this command after
changing classifier.max_features or to repair a damaged model file.`,
	RunE: runTrain,
}

func init() {
	trainCmd.Flags().IntVar(&trainMaxFeatures, "max-features", 0, "Vocabulary size (overrides config)")
	rootCmd.AddCommand(trainCmd)
}

func runTrain(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	classifierCfg := cfg.GetClassifierConfig()
	maxFeatures := classifierCfg.MaxFeatures
	if trainMaxFeatures > 0 {
		maxFeatures = trainMaxFeatures
	}

	store := classifier.NewStore(afero.NewOsFs(), modelPath(classifierCfg), maxFeatures)
	return trainModel(store, ui.NewPrinter(os.Stdout))
}

// trainModel retrains and saves the model, reporting what was built
func trainModel(store *classifier.Store, printer *ui.Printer) error {
	_ = printer.PrintProgress("Training classifier...")

	start := time.Now()
	model, err := classifier.TrainDefault(store.MaxFeatures())
	if err != nil {
		return fmt.Errorf("failed to train classifier: %w", err)
	}
	if err := store.Save(model); err != nil {
		return fmt.Errorf("failed to save classifier: %w", err)
	}

	_ = printer.PrintSuccess(fmt.Sprintf("Model saved to %s", store.Path()))
	_ = printer.PrintInfo(fmt.Sprintf("%d features, classes: %s", model.Features(), strings.Join(model.Classes(), ", ")))
	return printer.PrintDuration("Trained", time.Since(start))
}
