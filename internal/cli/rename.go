package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/fastrenamer/fastrenamer/pkg/execute"
	"github.com/fastrenamer/fastrenamer/pkg/logging"
)

var renameFlags RenameFlags

// NewRenameCommand creates the rename command
func NewRenameCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rename [files...]",
		Short: "Compute a rename plan and apply it",
		Long: `Compute the proposed names for the selected files, display the plan,
ask for confirmation and rename the files. Renames within a batch may
exchange names; each file is staged through a temporary name first.`,
		RunE: runRename,
	}

	addRenameFlags(cmd, &renameFlags)
	cmd.Flags().BoolVarP(&renameFlags.Yes, "yes", "y", false, "apply the plan without asking for confirmation")

	return cmd
}

func runRename(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyFlagsToConfig(cmd, cfg, &renameFlags)

	result, backend, err := buildPlan(ctx, cmd, cfg, &renameFlags, args)
	if err != nil {
		return err
	}
	defer backend.Close()

	formatter := newFormatter(cfg)
	if err := formatter.Plan(result); err != nil {
		return err
	}

	if result.ChangeCount() == 0 {
		fmt.Println("Nothing to rename.")
		return nil
	}

	if !renameFlags.Yes {
		ok, err := confirm(result.ChangeCount())
		if err != nil {
			return err
		}
		if !ok {
			fmt.Println("Aborted.")
			return nil
		}
	}

	logger, err := createLogger(renameFlags.LogFile, renameFlags.LogFormat, renameFlags.LogLevel)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer logger.Close()
	logger = logger.WithFields(logging.Fields{"plan_id": result.ID})

	executor := execute.NewExecutor(backend, formatter, logger)

	report, err := executor.Execute(ctx, result)
	if err != nil {
		return fmt.Errorf("rename failed: %w", err)
	}

	// Exit with appropriate code
	os.Exit(report.Status.ExitCode())
	return nil
}

// confirm asks the user to approve the displayed plan
func confirm(count int) (bool, error) {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return false, fmt.Errorf("standard input is not a terminal (use --yes to apply without confirmation)")
	}

	fmt.Printf("Rename %d file(s)? [y/N] ", count)
	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil {
		return false, fmt.Errorf("failed to read confirmation: %w", err)
	}

	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes", nil
}
