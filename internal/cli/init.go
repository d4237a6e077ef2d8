package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/huimingz/commitkit/internal/config"
)

const defaultConfigTemplate = `# commitkit configuration file
# Every key is optional; environment variables override it, e.g.
# COMMITKIT_SUGGESTION_SEED=42

classifier:
  # Where the trained model is stored (default: beside the executable)
  # model_path: ~/.cache/commitkit-model.json
  # Vocabulary size of the classifier; run 'commitkit train' after changing it
  max_features: 1000

suggestion:
  # Fixed seed for reproducible suggestions, 0 picks a random one
  seed: 0

report:
  # Write a PR summary after each commit
  enabled: true
  path: PR_suggest.md
  compatible_apps:
    - Web
    - Mobile
`

var (
	initForce bool
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize commitkit configuration",
	Long: `Create a default configuration file (~/.commitkit.yaml).

This command creates a template configuration file with the default
settings. Edit the file to customize the classifier, suggestions and the
PR summary.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("failed to get home directory: %w", err)
		}

		configPath := filepath.Join(homeDir, config.FileName)
		if err := writeConfigTemplate(afero.NewOsFs(), configPath, initForce); err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "✅ Configuration file created: %s\n", configPath)
		fmt.Fprintln(out, "\nNext steps:")
		fmt.Fprintln(out, "  1. Edit the config file to adjust the defaults")
		fmt.Fprintln(out, "  2. Run 'commitkit commit' in a repository with changes")
		return nil
	},
}

// writeConfigTemplate writes the template unless the file exists and force is not set
func writeConfigTemplate(fs afero.Fs, configPath string, force bool) error {
	exists, err := afero.Exists(fs, configPath)
	if err != nil {
		return fmt.Errorf("failed to check config file: %w", err)
	}
	if exists && !force {
		return fmt.Errorf("config file already exists: %s\nUse --force to overwrite", configPath)
	}

	if err := afero.WriteFile(fs, configPath, []byte(defaultConfigTemplate), 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

func init() {
	initCmd.Flags().BoolVarP(&initForce, "force", "f", false, "Overwrite existing config file")
	rootCmd.AddCommand(initCmd)
}
