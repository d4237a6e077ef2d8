package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/huimingz/commitkit/internal/generator"
	"github.com/huimingz/commitkit/internal/git"
	"github.com/huimingz/commitkit/internal/suggest"
	"github.com/huimingz/commitkit/internal/ui"
)

var (
	suggestCount int
	suggestSeed  uint64
)

var suggestCmd = &cobra.Command{
	Use:   "suggest [files...]",
	Short: "Preview commit message suggestions without committing",
	Long: `Print the commit messages the commit command would propose.

Without arguments the staged files are used. Nothing is staged or committed.

Examples:
  commitkit suggest
  commitkit suggest --count 3 --seed 7
  commitkit suggest docs/guide.md internal/api/server.go`,
	RunE: runSuggest,
}

func init() {
	suggestCmd.Flags().IntVarP(&suggestCount, "count", "n", generator.NumStrategies, "Number of suggestions to print")
	suggestCmd.Flags().Uint64Var(&suggestSeed, "seed", 0, "Seed for reproducible suggestions (overrides config)")
	rootCmd.AddCommand(suggestCmd)
}

func runSuggest(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	if suggestCount <= 0 {
		return fmt.Errorf("--count must be positive")
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	gitExec, err := openRepository()
	if err != nil {
		return err
	}

	files := args
	if len(files) == 0 {
		files = git.StatusOrEmpty(ctx, gitExec).Staged
	}

	engine, err := newEngine(gitExec, afero.NewOsFs(), cfg, resolveSeed(cmd, suggestSeed, cfg))
	if err != nil {
		return err
	}

	return previewSuggestions(ctx, engine, ui.NewPrinter(os.Stdout), git.BranchOrDefault(ctx, gitExec, "HEAD"), files, suggestCount)
}

// previewSuggestions prints count suggestions for files
func previewSuggestions(ctx context.Context, engine *suggest.Engine, printer *ui.Printer, branch string, files []string, count int) error {
	if len(files) == 0 {
		if err := printer.PrintWarning("No staged files"); err != nil {
			return err
		}
		return printer.PrintSuggestion(suggest.Suggestion{Text: suggest.FallbackMessage, Round: 1})
	}

	session := engine.NewSession(ctx, branch, files)
	for i := 0; i < count; i++ {
		if err := printer.PrintSuggestion(session.Next()); err != nil {
			return err
		}
		session.Advance()
	}
	return nil
}
