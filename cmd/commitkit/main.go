/*
Copyright © 2024 huimingz

commitkit - offline commit message suggestions and PR summaries
*/
package main

import (
	"os"

	"github.com/huimingz/commitkit/internal/cli"
)

// Version information (injected at build time)
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildTime = "unknown"
)

func main() {
	cli.SetVersionInfo(Version, GitCommit, BuildTime)
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
