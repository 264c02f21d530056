package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/fastrenamer/fastrenamer/pkg/config"
	"github.com/fastrenamer/fastrenamer/pkg/logging"
	"github.com/fastrenamer/fastrenamer/pkg/models"
	"github.com/fastrenamer/fastrenamer/pkg/output"
	"github.com/fastrenamer/fastrenamer/pkg/plan"
	"github.com/fastrenamer/fastrenamer/pkg/storage"
)

// loadConfig loads configuration from file or returns default
func loadConfig() (*config.Config, error) {
	if globalFlags.ConfigFile != "" {
		return config.LoadFromFile(globalFlags.ConfigFile)
	}
	return config.LoadDefault()
}

// applyFlagsToConfig overrides config values with command-line flags
func applyFlagsToConfig(cmd *cobra.Command, cfg *config.Config, flags *RenameFlags) {
	if cmd.Flags().Changed("start") {
		cfg.Defaults.Start = flags.Start
	}
	if cmd.Flags().Changed("padding") {
		cfg.Defaults.Padding = flags.Padding
	}
	if cmd.Flags().Changed("template") {
		cfg.Defaults.Template = flags.Template
	}
	if cmd.Flags().Changed("separator") {
		cfg.Defaults.Separator = flags.Separator
	}
	if cmd.Flags().Changed("position") {
		cfg.Defaults.Position = models.Position(flags.Position)
	}

	if flags.Output != "" {
		cfg.Output.Format = flags.Output
	}

	// Disable progress in quiet mode
	if globalFlags.Quiet {
		cfg.Output.Progress = false
		cfg.Output.Quiet = true
	}
}

// buildSpec assembles the transformation from the effective configuration
func buildSpec(cfg *config.Config, flags *RenameFlags) models.TransformSpec {
	return models.TransformSpec{
		Kind:        models.TransformKind(flags.Op),
		Start:       cfg.Defaults.Start,
		Padding:     cfg.Defaults.Padding,
		Template:    cfg.Defaults.Template,
		Position:    cfg.Defaults.Position,
		Text:        flags.Text,
		Separator:   cfg.Defaults.Separator,
		Find:        flags.Find,
		ReplaceWith: flags.ReplaceWith,
	}
}

// validateSelection checks the file selection arguments
func validateSelection(flags *RenameFlags, args []string) error {
	if flags.All && len(args) > 0 {
		return fmt.Errorf("cannot combine --all with file arguments")
	}
	if !flags.All && len(args) == 0 {
		return fmt.Errorf("no files selected (list file names or use --all)")
	}
	return nil
}

// buildPlan lists the directory, resolves the selection and computes the
// rename plan. The returned backend is open; the caller must close it.
func buildPlan(ctx context.Context, cmd *cobra.Command, cfg *config.Config, flags *RenameFlags, args []string) (*models.RenamePlan, *storage.Local, error) {
	if err := validateSelection(flags, args); err != nil {
		return nil, nil, err
	}

	backend, err := storage.NewLocal(flags.Dir)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open directory: %w", err)
	}

	entries, err := backend.List(ctx)
	if err != nil {
		backend.Close()
		return nil, nil, fmt.Errorf("failed to list directory: %w", err)
	}

	existing := make([]string, len(entries))
	for i, e := range entries {
		existing[i] = e.Name
	}

	selected := args
	if flags.All {
		selected = existing
	}

	absDir, err := filepath.Abs(flags.Dir)
	if err != nil {
		backend.Close()
		return nil, nil, fmt.Errorf("failed to resolve directory: %w", err)
	}

	result, err := plan.Compute(plan.Request{
		Selected: selected,
		Existing: existing,
		DirName:  filepath.Base(absDir),
		Spec:     buildSpec(cfg, flags),
	})
	if err != nil {
		backend.Close()
		return nil, nil, err
	}

	result.ID = uuid.New().String()
	result.Dir = absDir
	result.CreatedAt = time.Now()

	return result, backend, nil
}

// newFormatter creates the output formatter selected by the configuration
func newFormatter(cfg *config.Config) output.Formatter {
	switch cfg.Output.Format {
	case "json":
		return output.NewJSONFormatter(os.Stdout)
	default:
		if cfg.Output.Progress {
			return output.NewProgressFormatter(os.Stdout, cfg.Output.Color)
		}
		return output.NewHumanFormatter(os.Stdout, cfg.Output.Color)
	}
}

// createLogger creates a logger based on the logging flags
func createLogger(logFile, logFormat, logLevel string) (logging.Logger, error) {
	// If no log file specified, return null logger
	if logFile == "" {
		return logging.NewNullLogger(), nil
	}

	var format logging.Format
	switch logFormat {
	case "json":
		format = logging.FormatJSON
	default:
		format = logging.FormatText
	}

	return logging.NewFileLogger(logFile, format, logging.ParseLevel(logLevel))
}
