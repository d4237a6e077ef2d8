package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/huimingz/commitkit/internal/ui"
)

var (
	commitBranch   string
	commitNoReport bool
	commitSeed     uint64
)

var commitCmd = &cobra.Command{
	Use:   "commit",
	Short: "Stage files, pick a commit message and write a PR summary",
	Long: `Walk through a commit interactively.

This command will:
1. Create a new branch or stay on the current one
2. Stage every .sql file first
3. Show the repository status and let you pick unstaged and untracked files
4. Suggest commit messages from the staged changes until you accept one
   (or type your own)
5. Commit and write PR_suggest.md with the branch, message and files

Examples:
  commitkit commit
  commitkit commit --branch feature/login
  commitkit commit --no-report
  commitkit commit --seed 42`,
	RunE: runCommit,
}

func init() {
	commitCmd.Flags().StringVarP(&commitBranch, "branch", "b", "", "Create and switch to this branch instead of asking")
	commitCmd.Flags().BoolVar(&commitNoReport, "no-report", false, "Do not write the PR summary")
	commitCmd.Flags().Uint64Var(&commitSeed, "seed", 0, "Seed for reproducible suggestions (overrides config)")
	rootCmd.AddCommand(commitCmd)
}

func runCommit(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	printer := ui.NewPrinter(os.Stdout)
	interrupt := NewInterruptHandler(cancel, printer)
	interrupt.Start()
	defer interrupt.Stop()

	gitExec, err := openRepository()
	if err != nil {
		return err
	}

	fs := afero.NewOsFs()
	engine, err := newEngine(gitExec, fs, cfg, resolveSeed(cmd, commitSeed, cfg))
	if err != nil {
		return err
	}

	console := ui.NewStdConsole()
	defer console.Close()

	reportCfg := cfg.GetReportConfig()
	w := &workflow{
		git:      gitExec,
		engine:   engine,
		console:  console,
		printer:  printer,
		fs:       fs,
		root:     gitExec.WorkDir(),
		branch:   commitBranch,
		report:   reportCfg.Enabled && !commitNoReport,
		reportTo: reportCfg.Path,
		apps:     reportCfg.CompatibleApps,
	}

	err = w.run(ctx)
	if errors.Is(err, ui.ErrAborted) {
		_ = printer.PrintInfo("Aborted.")
		return nil
	}
	if err != nil {
		return fmt.Errorf("commit workflow failed: %w", err)
	}
	return nil
}
