package cli

import (
	"github.com/spf13/cobra"
)

// GlobalFlags holds global flag values
type GlobalFlags struct {
	ConfigFile string
	Verbose    bool
	Quiet      bool
}

var globalFlags GlobalFlags

// AddGlobalFlags adds global flags to the root command
func AddGlobalFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVar(
		&globalFlags.ConfigFile,
		"config",
		"",
		"config file (default is $HOME/.config/fastrenamer/config.yaml)",
	)
	cmd.PersistentFlags().BoolVarP(
		&globalFlags.Verbose,
		"verbose",
		"v",
		false,
		"verbose output",
	)
	cmd.PersistentFlags().BoolVarP(
		&globalFlags.Quiet,
		"quiet",
		"q",
		false,
		"suppress non-error output",
	)
}

// GetGlobalFlags returns the global flags
func GetGlobalFlags() *GlobalFlags {
	return &globalFlags
}

// RenameFlags holds the flags shared by the preview and rename commands
type RenameFlags struct {
	Dir         string
	Op          string
	All         bool
	Start       int
	Padding     int
	Template    string
	Position    string
	Text        string
	Separator   string
	Find        string
	ReplaceWith string
	Output      string
	Yes         bool
	// Logging flags
	LogFile   string
	LogFormat string
	LogLevel  string
}

// addRenameFlags registers the flags shared by preview and rename
func addRenameFlags(cmd *cobra.Command, flags *RenameFlags) {
	cmd.Flags().StringVarP(&flags.Dir, "dir", "d", ".", "directory containing the files to rename")
	cmd.Flags().StringVar(&flags.Op, "op", "", "transformation: sequential, affix, replace, folder (required)")
	cmd.MarkFlagRequired("op")

	cmd.Flags().BoolVarP(&flags.All, "all", "a", false, "select every file in the directory")

	// Sequential
	cmd.Flags().IntVar(&flags.Start, "start", 1, "sequential: first counter value")
	cmd.Flags().IntVar(&flags.Padding, "padding", 0, "sequential: zero-pad the counter to this width")
	cmd.Flags().StringVar(&flags.Template, "template", "{n}", "sequential: name template, {n} marks the counter")

	// Affix and folder
	cmd.Flags().StringVar(&flags.Position, "position", "prefix", "where to insert: prefix, suffix")

	// Affix
	cmd.Flags().StringVar(&flags.Text, "text", "", "affix: text to insert")

	// Folder
	cmd.Flags().StringVar(&flags.Separator, "separator", "_", "folder: separator between folder name and base name")

	// Replace
	cmd.Flags().StringVar(&flags.Find, "find", "", "replace: literal text to search for")
	cmd.Flags().StringVar(&flags.ReplaceWith, "replace-with", "", "replace: substitution text (empty deletes the match)")

	cmd.Flags().StringVarP(&flags.Output, "output", "o", "", "output format: human, json")

	// Logging flags
	cmd.Flags().StringVar(&flags.LogFile, "log-file", "", "write logs to file (enables logging)")
	cmd.Flags().StringVar(&flags.LogFormat, "log-format", "text", "log format: text, json")
	cmd.Flags().StringVar(&flags.LogLevel, "log-level", "info", "log level: debug, info, warn, error")
}
