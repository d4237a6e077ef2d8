package cli

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"

	"github.com/huimingz/commitkit/internal/git"
	"github.com/huimingz/commitkit/internal/log"
	"github.com/huimingz/commitkit/internal/report"
	"github.com/huimingz/commitkit/internal/suggest"
	"github.com/huimingz/commitkit/internal/ui"
)

// workflow is the interactive commit flow
type workflow struct {
	git     git.Executor
	engine  *suggest.Engine
	console *ui.Console
	printer *ui.Printer
	fs      afero.Fs
	root    string

	// branch is created without asking when set
	branch string

	report   bool
	reportTo string
	apps     []string
}

func (w *workflow) run(ctx context.Context) error {
	_ = w.printer.PrintStep(1, "Branch")
	branch, err := w.selectBranch(ctx)
	if err != nil {
		return err
	}

	_ = w.printer.PrintStep(2, "SQL files")
	w.stageSQL(ctx)

	_ = w.printer.PrintStep(3, "Stage files")
	status := git.StatusOrEmpty(ctx, w.git)
	_ = w.printer.PrintStatus(status)

	if err := w.stageSelection(ctx, "Unstaged files:", status.Unstaged); err != nil {
		return err
	}
	status = git.StatusOrEmpty(ctx, w.git)
	if err := w.stageSelection(ctx, "Untracked files:", status.Untracked); err != nil {
		return err
	}

	_ = w.printer.PrintStep(4, "Commit message")
	staged := git.StatusOrEmpty(ctx, w.git).Staged
	files := w.existing(staged)
	var message string
	if len(staged) == 0 {
		_ = w.printer.PrintWarning("No files staged for commit")
	} else {
		_ = w.printer.PrintFiles("\nFiles ready to commit:", "+", staged)

		message, err = w.engine.CommitSuggestion(ctx, branch, files, ui.NewSuggestionPresenter(w.console, w.printer))
		if err != nil {
			return err
		}

		_ = ui.ShowCommitMessage(message, w.console.Output())
		if err := w.git.Commit(ctx, message); err != nil {
			log.Error("Commit failed: %v", err)
			_ = w.printer.PrintError("commit failed, the PR summary is written anyway")
		} else {
			_ = w.printer.PrintSuccess("Commit created successfully!")
		}
	}

	if w.report {
		_ = w.printer.PrintStep(5, "PR summary")
		if err := w.writeReport(ctx, branch, files, message); err != nil {
			return err
		}
	}

	_ = w.printer.PrintSuccess("Done!")
	return nil
}

// selectBranch creates the requested branch or stays on the current one
func (w *workflow) selectBranch(ctx context.Context) (string, error) {
	name := w.branch
	if name == "" {
		create, err := w.console.Confirm("Create a new branch?")
		if err != nil {
			return "", err
		}
		if create {
			if name, err = w.console.ReadLine("New branch name: "); err != nil {
				return "", err
			}
		}
	}

	if name != "" {
		if err := w.git.CreateBranch(ctx, name); err != nil {
			log.Warn("could not create branch %s: %v", name, err)
		} else {
			_ = w.printer.PrintSuccess(fmt.Sprintf("Switched to new branch %s", name))
			return name, nil
		}
	}

	current := git.BranchOrDefault(ctx, w.git, "HEAD")
	_ = w.printer.PrintInfo(fmt.Sprintf("Staying on current branch: %s", current))
	return current, nil
}

// existing drops paths that are no longer in the working tree, such as
// staged deletions. They are committed but never described.
func (w *workflow) existing(files []string) []string {
	var kept []string
	for _, f := range files {
		path := f
		if !filepath.IsAbs(path) {
			path = filepath.Join(w.root, path)
		}
		if ok, err := afero.Exists(w.fs, path); err == nil && ok {
			kept = append(kept, f)
		}
	}
	return kept
}

// stageSQL stages every .sql file of the working tree
func (w *workflow) stageSQL(ctx context.Context) {
	var sqlFiles []string
	for _, f := range git.StatusOrEmpty(ctx, w.git).All() {
		if strings.HasSuffix(strings.ToLower(f), ".sql") {
			sqlFiles = append(sqlFiles, f)
		}
	}

	if len(sqlFiles) == 0 {
		_ = w.printer.PrintInfo("No SQL files found")
		return
	}

	_ = w.printer.PrintFiles("SQL files found:", "-", sqlFiles)
	_ = w.printer.PrintAddResult(git.AddAll(ctx, w.git, sqlFiles), len(sqlFiles))
}

func (w *workflow) stageSelection(ctx context.Context, title string, files []string) error {
	selected, err := w.console.SelectFiles(title, files)
	if err != nil {
		return err
	}
	if len(selected) > 0 {
		_ = w.printer.PrintAddResult(git.AddAll(ctx, w.git, selected), len(selected))
	}
	return nil
}

func (w *workflow) writeReport(ctx context.Context, branch string, files []string, message string) error {
	notes := report.DefaultTestingNotes
	add, err := w.console.Confirm("Add notes for the 'Consideraciones para Testing' section?")
	if err != nil {
		return err
	}
	if add {
		text, err := w.console.ReadMultiline(ctx, &ui.MultilinePrompt{
			Prompt: "Testing notes:",
			Hint:   "Finish with an empty line.",
		})
		switch {
		case err == nil:
			notes = text
		case !errors.Is(err, ui.ErrEmptyInput):
			return err
		}
	}

	apps := append([]string(nil), w.apps...)
	_ = w.printer.PrintInfo(fmt.Sprintf("Compatible applications: %s", strings.Join(apps, ", ")))
	for {
		more, err := w.console.Confirm("Add another compatible application?")
		if err != nil {
			return err
		}
		if !more {
			break
		}
		app, err := w.console.ReadLine("Application name: ")
		if err != nil {
			return err
		}
		if app != "" {
			apps = append(apps, app)
		}
	}

	r := &report.Report{
		Branch:         branch,
		CommitMessage:  message,
		Files:          files,
		TestingNotes:   notes,
		CompatibleApps: apps,
	}

	path := w.reportTo
	if !filepath.IsAbs(path) {
		path = filepath.Join(w.root, path)
	}
	if err := r.Write(w.fs, path); err != nil {
		log.Error("Failed to write PR summary: %v", err)
		return nil
	}

	_ = w.printer.PrintSuccess(fmt.Sprintf("%s written with %d files", path, len(files)))
	_ = w.printer.PrintInfo(fmt.Sprintf("SQL files included: %d", len(r.SQLFiles())))
	return nil
}
