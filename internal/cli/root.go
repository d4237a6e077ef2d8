package cli

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/huimingz/commitkit/internal/log"
)

// buildInfo is injected by main from linker flags
type buildInfo struct {
	Version   string
	GitCommit string
	BuildTime string
}

var (
	debugMode  bool
	noColor    bool
	configFile string

	build = buildInfo{Version: "dev", GitCommit: "unknown", BuildTime: "unknown"}
)

var rootCmd = &cobra.Command{
	Use:   "commitkit",
	Short: "Offline commit message assistant",
	Long: `commitkit helps developers commit their work:
  - Staging SQL files first, then the files you pick
  - Suggesting conventional commit messages from the staged diff
  - Writing a PR summary (PR_suggest.md) after the commit

Suggestions come from a local classifier and a set of heuristics; nothing
leaves your machine.

Use "commitkit [command] --help" for more information about a command.`,
	SilenceUsage:     true,
	PersistentPreRun: applyGlobalFlags,
}

// applyGlobalFlags runs before every command
func applyGlobalFlags(cmd *cobra.Command, args []string) {
	if noColor {
		color.NoColor = true
	}
	if debugMode {
		log.SetDebugMode(true)
		log.Debug("Debug mode enabled for %s", cmd.CommandPath())
	}
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// SetVersionInfo sets version information from build flags
func SetVersionInfo(v, commit, time string) {
	build = buildInfo{Version: v, GitCommit: commit, BuildTime: time}
}

// GetVersionInfo returns version information
func GetVersionInfo() (string, string, string) {
	return build.Version, build.GitCommit, build.BuildTime
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.BoolVar(&debugMode, "debug", false, "Enable debug mode for verbose output")
	flags.BoolVar(&noColor, "no-color", false, "Disable colored output")
	flags.StringVar(&configFile, "config", "", "Config file path (default: ./.commitkit.yaml, then ~/.commitkit.yaml)")
}
