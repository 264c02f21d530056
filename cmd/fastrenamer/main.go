package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/fastrenamer/fastrenamer/internal/cli"
	"github.com/fastrenamer/fastrenamer/pkg/models"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		if _, ok := models.IsPlanError(err); ok {
			os.Exit(2)
		}
		os.Exit(1)
	}
}

func run() error {
	rootCmd := &cobra.Command{
		Use:   "fastrenamer",
		Short: "Batch file renaming utility",
		Long: `fastrenamer renames batches of files inside a directory.
It computes a full rename plan first (sequential numbering, affixes,
text replacement or folder-name insertion), validates every proposed
name against each other and against the rest of the directory, and only
then applies the plan file by file.`,
		Version:       fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Add global flags
	cli.AddGlobalFlags(rootCmd)

	// Add commands
	rootCmd.AddCommand(cli.NewPreviewCommand())
	rootCmd.AddCommand(cli.NewRenameCommand())
	rootCmd.AddCommand(cli.NewConfigCommand())
	rootCmd.AddCommand(cli.NewVersionCommand())

	return rootCmd.Execute()
}
