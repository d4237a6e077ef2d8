package cli

import (
	"fmt"
	"io"
	"runtime"

	"github.com/spf13/cobra"
)

var versionShort bool

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long:  `Print the commitkit version, the commit it was built from and the Go runtime.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return printVersion(cmd.OutOrStdout(), versionShort)
	},
}

func printVersion(out io.Writer, short bool) error {
	if short {
		_, err := fmt.Fprintln(out, build.Version)
		return err
	}
	_, err := fmt.Fprintf(out, "commitkit %s\n  Git Commit: %s\n  Build Time: %s\n  Go Version: %s\n  OS/Arch:    %s/%s\n",
		build.Version, build.GitCommit, build.BuildTime, runtime.Version(), runtime.GOOS, runtime.GOARCH)
	return err
}

func init() {
	versionCmd.Flags().BoolVarP(&versionShort, "short", "s", false, "Print only the version number")
	rootCmd.AddCommand(versionCmd)
}
