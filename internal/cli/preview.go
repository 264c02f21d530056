package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var previewFlags RenameFlags

// NewPreviewCommand creates the preview command
func NewPreviewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "preview [files...]",
		Short: "Compute and display a rename plan without touching any file",
		Long: `Compute the proposed names for the selected files and display the plan.
Nothing is renamed; use the rename command to apply a plan.`,
		RunE: runPreview,
	}

	addRenameFlags(cmd, &previewFlags)

	return cmd
}

func runPreview(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyFlagsToConfig(cmd, cfg, &previewFlags)

	result, backend, err := buildPlan(ctx, cmd, cfg, &previewFlags, args)
	if err != nil {
		return err
	}
	defer backend.Close()

	formatter := newFormatter(cfg)
	return formatter.Plan(result)
}
